package core

import (
	"strconv"
	"strings"
)

// ParseAmount parses a printed payslip amount into signed whole yen.
//
// Comma thousands separators are stripped first. The remainder must be an
// optional single leading minus followed by decimal digits only; anything
// else returns ErrInvalidAmount. Callers that want the document's lenient
// treat-as-zero behavior absorb the error themselves.
//
// Examples:
//
//	ParseAmount("15,000")  -> 15000, nil
//	ParseAmount("-3,000")  -> -3000, nil
//	ParseAmount("---")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return n, nil
}
