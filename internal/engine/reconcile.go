// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// mergeThreshold is the similarity (0–100 Levenshtein ratio) above which two
// normalized names are considered the same entity.
const mergeThreshold = 85

// legalSuffixes are standalone tokens removed before similarity comparison.
var legalSuffixes = map[string]bool{
	"inc":          true,
	"incorporated": true,
	"corp":         true,
	"corporation":  true,
	"llc":          true,
	"ltd":          true,
	"limited":      true,
	"company":      true,
}

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// NormalizeCompanyName canonicalizes a party name for similarity comparison:
// lowercase, strip punctuation, drop legal-entity suffix tokens, and collapse
// the remaining tokens with single spaces.
func NormalizeCompanyName(name string) string {
	name = strings.ToLower(name)
	name = nonWordChars.ReplaceAllString(name, "")

	var kept []string
	for _, w := range strings.Fields(name) {
		if !legalSuffixes[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// mergeParties clusters near-duplicate party mentions in a single forward
// pass. Each unused candidate seeds a group and absorbs every later unused
// candidate whose normalized name scores above the threshold against the
// seed's normalized name. Similarity is checked against the seed only, never
// pairwise among absorbed members, so merging is intentionally
// non-transitive; a union-find closure here would change observable output.
//
// The emitted record takes the longest raw name in the group (first
// encountered on ties), the seed's role, and the maximum confidence.
func mergeParties(parties []types.PartyRecord) []types.PartyRecord {
	merged := make([]types.PartyRecord, 0, len(parties))
	used := make(map[int]bool)

	for i, seed := range parties {
		if used[i] {
			continue
		}

		group := []types.PartyRecord{seed}
		norm := NormalizeCompanyName(seed.Name)

		for j := i + 1; j < len(parties); j++ {
			if used[j] {
				continue
			}
			if fuzzy.Ratio(norm, NormalizeCompanyName(parties[j].Name)) > mergeThreshold {
				group = append(group, parties[j])
				used[j] = true
			}
		}

		best := group[0]
		for _, p := range group[1:] {
			if len(p.Name) > len(best.Name) {
				best = p
			}
		}
		conf := group[0].Confidence
		for _, p := range group[1:] {
			if p.Confidence > conf {
				conf = p.Confidence
			}
		}

		merged = append(merged, types.PartyRecord{
			Name:       best.Name,
			Role:       group[0].Role,
			Confidence: conf,
		})
	}

	return merged
}
