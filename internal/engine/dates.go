// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// datePatterns are the sentence-level date shapes, tried in this order:
// ISO, US slash, day-month-year dash, and long month-name form. The ISO
// shape is matched but has no corresponding parse layout, so those
// candidates always drop at normalization; that asymmetry is deliberate.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`),
	regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}\b`),
}

// dateLayouts are the accepted parse layouts, attempted in order. The first
// successful parse wins; no layout is attempted after a match.
var dateLayouts = []string{
	"January 2, 2006", // April 6, 2007
	"2 January 2006",  // 6 April 2007
	"1/2/2006",        // 04/06/2007
	"2-1-2006",        // 06-04-2007
}

// NormalizeDate parses a raw date substring against the accepted layouts
// and renders the first successful parse as "YYYY-MM-DD". The second return
// is false when no layout matches; callers discard the candidate.
func NormalizeDate(raw string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// dateContextRules is the keyword priority ladder for date context
// classification. Order is load-bearing: the first rule whose keywords
// appear in the lowercased sentence wins and later rules are not evaluated.
var dateContextRules = []struct {
	keywords []string
	label    types.DateContext
}{
	{[]string{"effective", "entered into"}, types.ContextEffective},
	{[]string{"termination", "expire"}, types.ContextTermination},
	{[]string{"advance payment"}, types.ContextAdvancePayment},
	{[]string{"final payment"}, types.ContextFinalPayment},
	{[]string{"payment"}, types.ContextPayment},
	{[]string{"remain in effect until"}, types.ContextValidityEnd},
}

// ClassifyDateContext maps a sentence to a date context label via the
// keyword ladder, defaulting to the generic important-date label.
func ClassifyDateContext(sentence string) types.DateContext {
	lower := strings.ToLower(sentence)
	for _, rule := range dateContextRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return types.ContextImportant
}
