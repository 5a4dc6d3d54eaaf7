// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recognizer

import (
	"context"
	"regexp"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// Pattern is the regex baseline recognizer: no model, just surface shapes.
// It exists for environments without a model server and for comparing model
// output against a floor. Organization mentions are emitted as ORG spans;
// the word-by-word shape requires each token to be capitalized, which keeps
// the baseline precise at the cost of recall.
type Pattern struct {
	org *regexp.Regexp
}

// NewPattern creates the baseline recognizer.
func NewPattern() *Pattern {
	return &Pattern{
		org: regexp.MustCompile(`\b(?:[A-Z][A-Za-z&\.]*\s+)+(?:Inc|Corp|LLC|Ltd|Limited|Company|Corporation)\b`),
	}
}

// Recognize scans the document for organization-shaped mentions.
func (p *Pattern) Recognize(_ context.Context, fullText string) ([]types.EntitySpan, error) {
	var spans []types.EntitySpan
	for _, m := range p.org.FindAllString(fullText, -1) {
		spans = append(spans, types.EntitySpan{Text: m, Label: types.LabelOrg})
	}
	return spans, nil
}
