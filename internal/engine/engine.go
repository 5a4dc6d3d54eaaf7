// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine turns raw contract text and recognized entity spans into
// classified, normalized, deduplicated business facts: dates with context
// labels, monetary amounts routed by sentence content, and reconciled
// contracting parties with roles.
//
// The engine is synchronous and stateless per invocation. Candidates that
// fail normalization are dropped silently; only an entirely empty document
// is an error.
package engine

import (
	"errors"
	"strings"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// ErrNoContent reports that the document contained no extractable text.
// Callers must treat this as a terminal, document-level failure rather
// than returning a silently empty response.
var ErrNoContent = errors.New("no extractable text in document")

// Confidence tiers for party role classification. These are fixed values,
// not learned probabilities: a specific role inferred from context carries
// the higher tier, the Contracting Party fallback the lower.
const (
	ConfidenceRole     = 0.92
	ConfidenceFallback = 0.85
)

// Extract runs the full extraction over one document and assembles the
// response. fullText is the concatenated document text, sentences its
// segmentation in document order, and spans the recognition model's entity
// mentions. Sentence order matters: amount routing is last-write-wins for
// the contract value, so sentences must arrive in document order.
func Extract(fullText string, sentences []string, spans []types.EntitySpan) (*types.ExtractionResponse, error) {
	if strings.TrimSpace(fullText) == "" {
		return nil, ErrNoContent
	}

	resp := types.NewExtractionResponse()

	for _, sent := range sentences {
		resp.Dates = append(resp.Dates, extractDates(sent)...)
	}

	for _, sent := range sentences {
		routeAmounts(sent, resp)
	}

	candidates := collectPartyCandidates(fullText, spans)
	parties := classifyParties(candidates, fullText)
	resp.Parties = mergeParties(parties)

	return resp, nil
}

// extractDates finds every date candidate in one sentence and normalizes it.
// Candidates that match a pattern but fail normalization are discarded.
func extractDates(sentence string) []types.DateRecord {
	var records []types.DateRecord
	for _, pattern := range datePatterns {
		for _, raw := range pattern.FindAllString(sentence, -1) {
			iso, ok := NormalizeDate(raw)
			if !ok {
				continue
			}
			records = append(records, types.DateRecord{
				Date:    iso,
				Context: ClassifyDateContext(sentence),
			})
		}
	}
	return records
}

// routeAmounts finds every amount candidate in one sentence, normalizes it,
// and routes it by sentence content. A sentence naming the total contract
// value overwrites the single contract value rather than accumulating; the
// asymmetry with the advance payment list is intentional and preserved.
func routeAmounts(sentence string, resp *types.ExtractionResponse) {
	lower := strings.ToLower(sentence)

	for _, raw := range amountPattern.FindAllString(sentence, -1) {
		rec, ok := NormalizeAmount(raw)
		if !ok {
			continue
		}

		switch {
		case strings.Contains(lower, "total contract value"):
			v := rec
			resp.ContractValue = &v
		case strings.Contains(lower, "advance payment"):
			resp.AdvancePayment = append(resp.AdvancePayment, rec)
		default:
			resp.OtherAmounts = append(resp.OtherAmounts, rec)
		}
	}
}
