package payslip

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentNotFound marks a missing payslip PDF. The wrapping error
	// names the derived filename so the user can check the year/month.
	ErrDocumentNotFound = errors.New("payslip PDF not found")

	// ErrFilename means the inputs could not form a source filename.
	ErrFilename = errors.New("cannot build payslip filename")

	// ErrTotalMissing means no token matched the deduction-sum label, so
	// there is nothing to reconcile against.
	ErrTotalMissing = errors.New("deduction sum not found in payslip")
)

// ReconciliationError reports that the itemized deductions do not add up to
// the payslip's stated total. It is fatal: retrying without fixing the item
// dictionary or the source document would reproduce the same mismatch.
type ReconciliationError struct {
	Sum    int // computed sum of itemized deductions
	Stated int // total printed on the payslip
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("itemized deductions sum to %d yen but the payslip states %d yen", e.Sum, e.Stated)
}
