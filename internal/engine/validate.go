// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"time"

	"github.com/pdiddy/lexiscan/pkg/types"
)

// CheckDateOrder sanity-checks the extracted dates: a termination date that
// precedes the agreement effective date is almost certainly an extraction or
// drafting problem. The first date of each context is compared. The returned
// warning is operator-facing output, not an extraction error, and is empty
// when the dates are consistent or either date is absent.
func CheckDateOrder(dates []types.DateRecord) string {
	var effective, termination string

	for _, d := range dates {
		switch d.Context {
		case types.ContextEffective:
			if effective == "" {
				effective = d.Date
			}
		case types.ContextTermination:
			if termination == "" {
				termination = d.Date
			}
		}
	}

	if effective == "" || termination == "" {
		return ""
	}

	eff, err := time.Parse("2006-01-02", effective)
	if err != nil {
		return ""
	}
	term, err := time.Parse("2006-01-02", termination)
	if err != nil {
		return ""
	}

	if term.Before(eff) {
		return fmt.Sprintf("termination date %s precedes effective date %s", termination, effective)
	}
	return ""
}
