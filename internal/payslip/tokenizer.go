package payslip

import "strings"

// Tokenize flattens page texts into one ordered token sequence, splitting
// each page on runs of whitespace. Page order is preserved and no empty
// tokens are produced; duplicate tokens are kept as-is. Byte sequences that
// are not valid UTF-8 are dropped rather than surfaced as an error.
func Tokenize(pages []string) []string {
	var tokens []string
	for _, page := range pages {
		tokens = append(tokens, strings.Fields(strings.ToValidUTF8(page, ""))...)
	}
	return tokens
}
