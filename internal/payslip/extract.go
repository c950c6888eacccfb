package payslip

import (
	"errors"

	"kyuyo/internal/core"
	"kyuyo/internal/dictionary"
	"kyuyo/internal/log"
)

// DeductionSumLabel is the payslip line stating the sum of all itemized
// deductions, used as the reconciliation target.
const DeductionSumLabel = "控除合計"

// Extractor scans a token sequence for the labels listed in the item
// dictionary and pairs each match with the token that follows it.
type Extractor struct {
	defs     []dictionary.Definition
	sumLabel string
	logger   *log.Logger
}

// NewExtractor builds an extractor over the given definitions. Definition
// order is the first-match-wins tie-break and is taken as-is.
func NewExtractor(defs []dictionary.Definition, sumLabel string, logger *log.Logger) *Extractor {
	if sumLabel == "" {
		sumLabel = DeductionSumLabel
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Extractor{defs: defs, sumLabel: sumLabel, logger: logger}
}

// Extract walks the token sequence once. A token equal to a definition name
// becomes a record whose amount is the next token (wrapping to the start
// when the match is the last token, matching the payslip's fixed
// label/value layout). A match on the deduction-sum label becomes the total
// record instead; a later occurrence replaces an earlier one. The amount
// token itself stays in the scan and may match a definition of its own.
//
// No match anywhere yields an empty list and a nil total; that is not an
// error at this level.
func (e *Extractor) Extract(tokens []string) ([]core.Item, *core.Item) {
	var items []core.Item
	var total *core.Item

	for i, tok := range tokens {
		for _, def := range e.defs {
			if tok != def.Name {
				continue
			}
			it := core.NewItem(def.Name, e.amountAt(tokens, i), def.Category, def.Subcategory)
			if def.Name == e.sumLabel {
				total = &it
			} else {
				items = append(items, it)
			}
			break
		}
	}
	return items, total
}

// amountAt parses the token following position i as the matched item's
// amount. A token that is not a plain signed integer is absorbed as zero:
// stray text next to a label must not abort the run, and the reconciliation
// check catches any real damage. Each absorbed token is logged so a zeroed
// line item can be told apart from a genuine zero.
func (e *Extractor) amountAt(tokens []string, i int) int {
	raw := tokens[(i+1)%len(tokens)]
	n, err := core.ParseAmount(raw)
	if errors.Is(err, core.ErrInvalidAmount) {
		e.logger.Debug("non-numeric amount token absorbed as zero",
			log.FieldItemName, tokens[i], log.FieldToken, raw)
		return 0
	}
	return n
}
