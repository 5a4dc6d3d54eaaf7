// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// amountPattern is the sentence-level candidate shape: a digit group with
// optional thousands separators and optional cents, preceded by an optional
// currency token. The token travels with the match so the normalizer can see
// it; a bare number with no token still fails normalization and drops.
var amountPattern = regexp.MustCompile(`(?:(?:INR|USD|Rs\.?|₹|\$)\s?)?\d[\d,]+(?:\.\d{2})?`)

// currencyPattern anchors normalization: a currency token, optional space,
// then digits with optional comma grouping. Cents are not carried into the
// normalized value.
var currencyPattern = regexp.MustCompile(`(INR|USD|Rs\.?|₹|\$)\s?([\d,]+)`)

// NormalizeAmount searches raw for the first currency-tagged number and
// returns it with comma grouping stripped. The second return is false when
// no currency-tagged number is present; callers discard the candidate.
func NormalizeAmount(raw string) (types.AmountRecord, bool) {
	m := currencyPattern.FindStringSubmatch(raw)
	if m == nil {
		return types.AmountRecord{}, false
	}

	value := strings.ReplaceAll(m[2], ",", "")
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return types.AmountRecord{}, false
	}

	return types.AmountRecord{Currency: m[1], Amount: amount}, true
}
