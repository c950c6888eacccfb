package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"kyuyo/internal/core"
	"kyuyo/internal/payslip"
)

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		year, month string
		ok          bool
	}{
		{"2024", "11", true},
		{"2024", "1", true},
		{"2024", "12", true},
		{"2024", "0", false},
		{"2024", "13", false},
		{"abc", "11", false},
		{"2024", "xyz", false},
	}
	for _, tc := range cases {
		_, _, err := parsePeriod(tc.year, tc.month)
		if (err == nil) != tc.ok {
			t.Fatalf("parsePeriod(%q, %q) err=%v, want ok=%v", tc.year, tc.month, err, tc.ok)
		}
	}
}

func TestConfirmPaydayDefaults(t *testing.T) {
	s := &core.Salary{Year: 2024, Month: 11}
	in := strings.NewReader("\n\n") // accept default day, accept confirmation
	var out bytes.Buffer

	ok, err := confirmPayday(in, &out, s, 25)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	payday, _ := s.Payday()
	if payday != "2024/11/25" {
		t.Fatalf("payday = %q", payday)
	}
	if !strings.Contains(out.String(), "2024/11/25") {
		t.Fatalf("confirmation prompt should echo the payday: %q", out.String())
	}
}

func TestConfirmPaydayExplicitDayAndCancel(t *testing.T) {
	s := &core.Salary{Year: 2024, Month: 11}
	in := strings.NewReader("10\nn\n")
	var out bytes.Buffer

	ok, err := confirmPayday(in, &out, s, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("answer n must cancel")
	}
	if payday, _ := s.Payday(); payday != "2024/11/10" {
		t.Fatalf("payday = %q, want 2024/11/10", payday)
	}
}

func TestConfirmPaydayInvalidDay(t *testing.T) {
	s := &core.Salary{Year: 2023, Month: 2}
	in := strings.NewReader("29\n")
	var out bytes.Buffer

	if _, err := confirmPayday(in, &out, s, 25); err == nil {
		t.Fatal("expected error for 29 Feb 2023")
	}
	if s.PaydaySet() {
		t.Fatal("failed confirmation must not set a payday")
	}
}

func TestDescribeKeepsTaxonomy(t *testing.T) {
	err := describe(payslip.ErrDocumentNotFound)
	if !errors.Is(err, payslip.ErrDocumentNotFound) {
		t.Fatalf("hint must wrap the original condition, got %v", err)
	}

	recErr := &payslip.ReconciliationError{Sum: 1, Stated: 2}
	var re *payslip.ReconciliationError
	if !errors.As(describe(recErr), &re) {
		t.Fatal("hint must keep *ReconciliationError reachable")
	}
}
