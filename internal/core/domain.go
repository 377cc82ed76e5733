package core

import (
	"errors"
	"fmt"
)

// Year bounds accepted for a billing period. Anything outside is assumed to
// be a typo rather than a real invoice date.
const (
	MinYear = 1900
	MaxYear = 3000
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year looks invalid")
)

// Target identifies the billing period an invoice is generated for.
// It is immutable once constructed; every string form derives from the
// two fields.
type Target struct {
	Month int
	Year  int
}

// NewTarget builds a validated Target.
func NewTarget(month, year int) (Target, error) {
	t := Target{Month: month, Year: year}
	return t, t.Validate()
}

func (t Target) Validate() error {
	if t.Month < 1 || t.Month > 12 {
		return ErrInvalidMonth
	}
	if t.Year < MinYear || t.Year > MaxYear {
		return ErrInvalidYear
	}
	return nil
}

// MonthString is the zero-padded two-digit month.
func (t Target) MonthString() string { return fmt.Sprintf("%02d", t.Month) }

// YearString is the four-digit year.
func (t Target) YearString() string { return fmt.Sprintf("%04d", t.Year) }

// String renders the period as YYYY-MM.
func (t Target) String() string { return t.YearString() + "-" + t.MonthString() }

// CreationDate is the first day of the period, formatted YYYY-MM-DD.
func (t Target) CreationDate() string { return t.String() + "-01" }

// DueDate is always day 30 of the period, February included. Invoices have
// been issued that way since the beginning and the output stays
// byte-compatible with them.
func (t Target) DueDate() string { return t.String() + "-30" }

// Filename returns the current-format invoice filename for sequence number n.
func (t Target) Filename(n int) string {
	return fmt.Sprintf("Invoice_%s_%s_#%d.pdf", t.YearString(), t.MonthString(), n)
}
