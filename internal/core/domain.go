// Package core holds the payslip domain model: deduction line items,
// the salary kind enumeration and the per-month salary aggregate.
package core

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KindNormal Kind = iota
	KindBonus
	KindSpecial
)

type (
	// Kind is the payslip type. Each kind carries its own display label
	// and the infix used in the source PDF filename.
	Kind int

	// Item is a single named deduction with a signed whole-yen amount and
	// a two-level category. Categories may stay empty until assigned.
	Item struct {
		Name        string
		Amount      int
		Category    string
		Subcategory string
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrUnknownKind   = errors.New("unknown salary kind")
)

// kindInfo is the exhaustive per-variant table. Adding a kind means adding
// one row here; nothing branches on Kind anywhere else.
var kindInfo = map[Kind]struct {
	label string
	infix string
}{
	KindNormal:  {label: "給与", infix: "_kyuyo_"},
	KindBonus:   {label: "賞与", infix: "_syoyo_"},
	KindSpecial: {label: "特別金", infix: "_syoyo_"},
}

// Label returns the display label for the kind (e.g. 給与).
func (k Kind) Label() string {
	return kindInfo[k].label
}

// Infix returns the filename infix for the kind (e.g. _kyuyo_).
func (k Kind) Infix() string {
	return kindInfo[k].infix
}

func (k Kind) String() string {
	return k.Label()
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindInfo[k]
	return ok
}

// NewItem builds an item with its categories already assigned.
func NewItem(name string, amount int, category, subcategory string) Item {
	return Item{Name: name, Amount: amount, Category: category, Subcategory: subcategory}
}

// NewItemFromString builds an item from a printed amount token, accepting
// comma thousands separators ("15,000"). Returns ErrInvalidAmount when the
// token is not a plain signed integer.
func NewItemFromString(name, amount string) (Item, error) {
	n, err := ParseAmount(amount)
	if err != nil {
		return Item{}, fmt.Errorf("item %q: %w", name, err)
	}
	return Item{Name: name, Amount: n}, nil
}

// SetCategories assigns the two-level category after construction.
func (it *Item) SetCategories(category, subcategory string) {
	it.Category = category
	it.Subcategory = subcategory
}

// yen renders amounts with comma grouping the way the payslip prints them.
var yen = message.NewPrinter(language.Japanese)

// String renders the item for the confirmation table shown before upload.
// The name column is padded to itemNameWidth half-width columns so that
// mixed full/half-width names line up.
func (it Item) String() string {
	return yen.Sprintf("項目: %s, 金額: %d円", AlignText(it.Name, itemNameWidth), it.Amount)
}
