package payslip

import (
	"errors"
	"testing"

	"kyuyo/internal/core"
)

func TestReconcileMatch(t *testing.T) {
	items := []core.Item{
		{Name: "健康保険", Amount: 10000},
		{Name: "厚生年金", Amount: 20000},
		{Name: "住民税", Amount: 5000},
	}
	if err := Reconcile(items, core.Item{Name: "控除合計", Amount: 35000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcileMismatch(t *testing.T) {
	items := []core.Item{
		{Name: "健康保険", Amount: 10000},
		{Name: "厚生年金", Amount: 20000},
		{Name: "住民税", Amount: 5000},
	}
	err := Reconcile(items, core.Item{Name: "控除合計", Amount: 40000})
	var re *ReconciliationError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ReconciliationError, got %v", err)
	}
	if re.Sum != 35000 || re.Stated != 40000 {
		t.Fatalf("diagnostic payload = %+v, want Sum=35000 Stated=40000", re)
	}
}

func TestReconcileNegativeAmounts(t *testing.T) {
	// Refund lines are negative; they participate in the sum as printed.
	items := []core.Item{
		{Name: "健康保険", Amount: 10000},
		{Name: "保険料還付", Amount: -3000},
	}
	if err := Reconcile(items, core.Item{Name: "控除合計", Amount: 7000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcileEmptyItems(t *testing.T) {
	if err := Reconcile(nil, core.Item{Name: "控除合計", Amount: 0}); err != nil {
		t.Fatalf("empty itemized list reconciles against zero: %v", err)
	}
	if err := Reconcile(nil, core.Item{Name: "控除合計", Amount: 1}); err == nil {
		t.Fatal("expected mismatch")
	}
}
