package models

import "github.com/shopspring/decimal"

// Status classifies a person's net balance.
type Status string

const (
	StatusTheyOwe   Status = "they_owe"
	StatusOwnerOwes Status = "owner_owes"
	StatusSettled   Status = "settled"
)

// Totals holds the derived figures for one person.
type Totals struct {
	DebtsTotal   decimal.Decimal
	CreditsTotal decimal.Decimal
	Net          decimal.Decimal
	Status       Status
}

// Abs returns the magnitude of the net balance, as shown next to the status.
func (t Totals) Abs() decimal.Decimal {
	return t.Net.Abs()
}

// Sum adds up the amounts of entries. An empty list sums to zero.
func Sum(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Classify maps a net balance to its Status.
func Classify(net decimal.Decimal) Status {
	switch net.Sign() {
	case 1:
		return StatusTheyOwe
	case -1:
		return StatusOwnerOwes
	default:
		return StatusSettled
	}
}

// ComputeTotals derives debts, credits and net for p.
func ComputeTotals(p Person) Totals {
	debts := Sum(p.Debts)
	credits := Sum(p.Credits)
	net := debts.Sub(credits)
	return Totals{
		DebtsTotal:   debts,
		CreditsTotal: credits,
		Net:          net,
		Status:       Classify(net),
	}
}

// PersonTotals pairs a person's identity with its totals.
type PersonTotals struct {
	PersonID int64
	Name     string
	Totals
}

// Summary is the dataset-wide view: per-person totals in dataset order plus
// the grand totals across everyone.
type Summary struct {
	People []PersonTotals
	Totals
}

// Summarize computes a Summary for d.
func Summarize(d Dataset) Summary {
	s := Summary{People: make([]PersonTotals, 0, len(d.People))}
	debts, credits := decimal.Zero, decimal.Zero
	for _, p := range d.People {
		t := ComputeTotals(p)
		s.People = append(s.People, PersonTotals{PersonID: p.ID, Name: p.Name, Totals: t})
		debts = debts.Add(t.DebtsTotal)
		credits = credits.Add(t.CreditsTotal)
	}
	net := debts.Sub(credits)
	s.Totals = Totals{DebtsTotal: debts, CreditsTotal: credits, Net: net, Status: Classify(net)}
	return s
}
