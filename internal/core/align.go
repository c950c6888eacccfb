package core

import (
	"strings"

	"golang.org/x/text/width"
)

// itemNameWidth is the name column width, in half-width columns.
const itemNameWidth = 16

// DisplayWidth returns the terminal column count of text, counting
// east-asian wide, fullwidth and ambiguous runes as two columns.
func DisplayWidth(text string) int {
	count := 0
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth, width.EastAsianAmbiguous:
			count += 2
		default:
			count++
		}
	}
	return count
}

// AlignText left-pads or right-pads text with spaces to the given number of
// half-width columns. Text already wider than w is returned unchanged.
func AlignText(text string, w int) string {
	fill := w - DisplayWidth(text)
	if fill <= 0 {
		return text
	}
	return text + strings.Repeat(" ", fill)
}
