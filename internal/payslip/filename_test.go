package payslip

import (
	"errors"
	"testing"

	"kyuyo/internal/core"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		year, month int
		kind        core.Kind
		number      string
		want        string
	}{
		{2024, 11, core.KindNormal, "12345", "202411_kyuyo_12345.pdf"},
		{2024, 6, core.KindBonus, "67890", "202406_syoyo_67890.pdf"},
		{2024, 3, core.KindNormal, "11111", "202403_kyuyo_11111.pdf"},
		{2024, 12, core.KindSpecial, "12345", "202412_syoyo_12345.pdf"},
	}
	for _, tc := range cases {
		got, err := Filename(tc.year, tc.month, tc.kind, tc.number)
		if err != nil {
			t.Fatalf("Filename(%d, %d): %v", tc.year, tc.month, err)
		}
		if got != tc.want {
			t.Fatalf("Filename(%d, %d) = %q, want %q", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestFilenameErrors(t *testing.T) {
	if _, err := Filename(2024, 11, core.KindNormal, "  "); !errors.Is(err, ErrFilename) {
		t.Fatalf("expected ErrFilename for blank employee number, got %v", err)
	}
	if _, err := Filename(2024, 11, core.Kind(99), "12345"); !errors.Is(err, ErrFilename) {
		t.Fatalf("expected ErrFilename for unknown kind, got %v", err)
	}
}
