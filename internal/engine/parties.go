// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"regexp"
	"strings"

	"github.com/pdiddy/lexiscan/pkg/types"
)

var (
	// betweenPattern captures the two parties of a "between X and Y" clause,
	// terminated by the first period, comma, or newline.
	betweenPattern = regexp.MustCompile(`(?i)between\s+(.*?)\s+and\s+(.*?)[\.,\n]`)

	// companyPattern matches a capitalized phrase ending in a legal-entity
	// suffix anywhere in the document text.
	companyPattern = regexp.MustCompile(`\b[A-Z][A-Za-z&,\.\s]+(?:Inc|Corp|LLC|Ltd|Limited|Company|Corporation)\b`)

	collapseSpace = regexp.MustCompile(`\s+`)
	leadingJunk   = regexp.MustCompile(`^[^A-Za-z]+`)
	trailingJunk  = regexp.MustCompile(`[^A-Za-z\.,& ]+$`)
)

// collectPartyCandidates gathers raw party names from the three independent
// sources, in fixed order: model entity spans labeled ORG or PARTY, the two
// capture groups of every "between X and Y" clause, and legal-suffix company
// mentions. The concatenated list is then cleaned and deduplicated.
func collectPartyCandidates(fullText string, spans []types.EntitySpan) []string {
	var raw []string

	for _, span := range spans {
		if span.Label == types.LabelOrg || span.Label == types.LabelParty {
			raw = append(raw, span.Text)
		}
	}

	for _, m := range betweenPattern.FindAllStringSubmatch(fullText, -1) {
		raw = append(raw, m[1], m[2])
	}

	raw = append(raw, companyPattern.FindAllString(fullText, -1)...)

	return cleanCandidates(raw)
}

// cleanCandidates normalizes whitespace, strips leading non-letter and
// trailing non-name characters, drops names shorter than four characters,
// and deduplicates by exact string keeping first occurrences in order.
func cleanCandidates(raw []string) []string {
	var cleaned []string
	seen := make(map[string]bool)

	for _, name := range raw {
		name = strings.TrimSpace(collapseSpace.ReplaceAllString(name, " "))
		name = leadingJunk.ReplaceAllString(name, "")
		name = trailingJunk.ReplaceAllString(name, "")

		if len(name) < 4 {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cleaned = append(cleaned, name)
	}

	return cleaned
}

// partyRoleRules is the keyword priority ladder for role classification,
// evaluated first-match-wins against the concatenated context windows.
var partyRoleRules = []struct {
	keywords []string
	role     types.PartyRole
}{
	{[]string{"service provider", "vendor"}, types.RoleServiceProvider},
	{[]string{"client", "customer"}, types.RoleClient},
	{[]string{"supplier"}, types.RoleSupplier},
	{[]string{"contractor"}, types.RoleContractor},
	{[]string{"first party"}, types.RoleFirstParty},
	{[]string{"second party"}, types.RoleSecondParty},
}

// ClassifyPartyRole determines a party's contractual role from the text
// following each mention of its name. Every case-insensitive occurrence
// contributes a window of up to 100 characters; the windows are joined and
// tested against the keyword ladder.
func ClassifyPartyRole(name, fullText string) types.PartyRole {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name) + `(.{0,100})`)
	if err != nil {
		return types.RoleContractingParty
	}

	var windows []string
	for _, m := range pattern.FindAllStringSubmatch(fullText, -1) {
		windows = append(windows, m[1])
	}
	context := strings.ToLower(strings.Join(windows, " "))

	for _, rule := range partyRoleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(context, kw) {
				return rule.role
			}
		}
	}
	return types.RoleContractingParty
}

// classifyParties attaches a role and confidence tier to each cleaned
// candidate name, preserving candidate order.
func classifyParties(names []string, fullText string) []types.PartyRecord {
	parties := make([]types.PartyRecord, 0, len(names))
	for _, name := range names {
		role := ClassifyPartyRole(name, fullText)
		confidence := ConfidenceRole
		if role == types.RoleContractingParty {
			confidence = ConfidenceFallback
		}
		parties = append(parties, types.PartyRecord{
			Name:       name,
			Role:       role,
			Confidence: confidence,
		})
	}
	return parties
}
