package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DeductionSource produces the validated deduction records for one period.
// The payslip reader is the real implementation; tests inject fixtures.
type DeductionSource interface {
	// ReadDeductions returns the itemized deductions in extraction order
	// with the deduction-sum record appended last.
	ReadDeductions() ([]Item, error)
}

// Salary is one month's (or one bonus payment's) worth of validated
// deduction records. The upload side reads Items and Payday only.
type Salary struct {
	Year  int
	Month int
	Kind  Kind

	// Items holds the itemized deductions in extraction order; the last
	// entry is always the deduction-sum record.
	Items []Item

	day int // payday day-of-month, 0 until confirmed
}

var ErrPaydayNotSet = errors.New("payday not set")

// NewSalary runs extraction for the period exactly once. Either the returned
// salary carries the full validated record list or the source's error is
// passed through and no salary exists at all.
func NewSalary(year, month int, kind Kind, src DeductionSource) (*Salary, error) {
	items, err := src.ReadDeductions()
	if err != nil {
		return nil, err
	}
	return &Salary{Year: year, Month: month, Kind: kind, Items: items}, nil
}

// SetPayday stores the payday day-of-month after checking that it forms a
// real calendar date within the salary's year and month (so 29 is accepted
// for February 2024 but not 2023). Returns false on any invalid input and
// leaves the previous value untouched.
func (s *Salary) SetPayday(day string) bool {
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return false
	}
	if d < 1 {
		return false
	}
	t := time.Date(s.Year, time.Month(s.Month), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != s.Month || t.Year() != s.Year {
		// time.Date normalizes overflow (Feb 30 -> Mar 1); a changed
		// component means the day does not exist in this month.
		return false
	}
	s.day = d
	return true
}

// PaydaySet reports whether a payday has been confirmed.
func (s *Salary) PaydaySet() bool {
	return s.day != 0
}

// Payday formats the confirmed payday as YYYY/MM/DD.
func (s *Salary) Payday() (string, error) {
	if s.day == 0 {
		return "", ErrPaydayNotSet
	}
	return fmt.Sprintf("%d/%02d/%02d", s.Year, s.Month, s.day), nil
}

// Deductions returns the itemized records without the trailing
// deduction-sum entry. This is the list the upload collaborator records.
func (s *Salary) Deductions(sumLabel string) []Item {
	out := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Name == sumLabel {
			continue
		}
		out = append(out, it)
	}
	return out
}
