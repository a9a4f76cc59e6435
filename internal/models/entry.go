package models

import "github.com/shopspring/decimal"

// Kind selects one of a person's two entry lists.
type Kind string

const (
	KindDebt   Kind = "debt"
	KindCredit Kind = "credit"
)

// Valid reports whether k names a known list.
func (k Kind) Valid() bool {
	return k == KindDebt || k == KindCredit
}

// Entry is a single debt or credit line.
type Entry struct {
	// ID is unique within the owning list and never reused.
	ID int64

	// Description is a non-empty free-text label (e.g. "Lunch").
	Description string

	// Amount is strictly positive, in the ledger's single implicit currency.
	Amount decimal.Decimal

	// Date is free text in YYYY-MM-DD form. Only its presence is checked.
	Date string
}

const (
	// MaxAmountScale is the most decimal places an amount may carry.
	MaxAmountScale = 8

	// MaxAmountIntDigits is the most digits an amount may have before the
	// decimal point.
	MaxAmountIntDigits = 15
)

// AmountInRange reports whether a fits within MaxAmountScale decimal places
// and MaxAmountIntDigits integer digits. It only inspects the exponent and
// the coefficient, so it stays cheap for values like 1e30000000.
func AmountInRange(a decimal.Decimal) bool {
	exp := int(a.Exponent())
	if exp < -MaxAmountScale || exp > MaxAmountIntDigits {
		return false
	}
	return a.NumDigits()+exp <= MaxAmountIntDigits
}

// EntryInput carries the raw form fields used to create an Entry.
// Amount is the unparsed text typed by the user.
type EntryInput struct {
	Description string `validate:"required"`
	Amount      string `validate:"required"`
	Date        string `validate:"required"`
}

// CloneEntries returns a copy of entries that is never nil.
func CloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
