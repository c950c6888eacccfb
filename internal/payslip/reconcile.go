package payslip

import "kyuyo/internal/core"

// Reconcile checks that the itemized amounts sum to the stated total. This
// is the pipeline's sole correctness gate: a mismatch is the only automated
// signal that tokenizing drifted, an amount was mis-read or the item
// dictionary is missing an entry. Callers must establish that a total
// record exists before calling (ErrTotalMissing); Reconcile assumes one.
func Reconcile(items []core.Item, total core.Item) error {
	sum := 0
	for _, it := range items {
		sum += it.Amount
	}
	if sum != total.Amount {
		return &ReconciliationError{Sum: sum, Stated: total.Amount}
	}
	return nil
}
