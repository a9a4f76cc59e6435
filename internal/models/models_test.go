package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id int64, amount int64) Entry {
	return Entry{ID: id, Description: "x", Amount: decimal.NewFromInt(amount), Date: "2024-01-01"}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		debts   []Entry
		credits []Entry
		net     string
		status  Status
	}{
		{name: "no entries is settled", net: "0", status: StatusSettled},
		{name: "debt only", debts: []Entry{entry(1, 50)}, net: "50", status: StatusTheyOwe},
		{name: "debt and smaller credit", debts: []Entry{entry(1, 50)}, credits: []Entry{entry(2, 20)}, net: "30", status: StatusTheyOwe},
		{name: "equal debt and credit", debts: []Entry{entry(1, 50)}, credits: []Entry{entry(2, 50)}, net: "0", status: StatusSettled},
		{name: "credit larger", debts: []Entry{entry(1, 10)}, credits: []Entry{entry(2, 25), entry(3, 5)}, net: "-20", status: StatusOwnerOwes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPerson(1, "Ahmed")
			p.Debts = append(p.Debts, tt.debts...)
			p.Credits = append(p.Credits, tt.credits...)

			got := ComputeTotals(p)

			assert.True(t, got.Net.Equal(got.DebtsTotal.Sub(got.CreditsTotal)))
			assert.Equal(t, tt.net, got.Net.String())
			assert.Equal(t, tt.status, got.Status)
			assert.True(t, got.Abs().Sign() >= 0)
		})
	}
}

func TestSum_IsExactForDecimalFractions(t *testing.T) {
	entries := []Entry{
		{ID: 1, Amount: decimal.RequireFromString("0.1")},
		{ID: 2, Amount: decimal.RequireFromString("0.2")},
	}
	assert.Equal(t, "0.3", Sum(entries).String())
}

func TestDatasetClone_IsDeep(t *testing.T) {
	d := NewDataset()
	p := NewPerson(1, "Ahmed")
	p.Debts = append(p.Debts, entry(2, 50))
	d.People = append(d.People, p)

	c := d.Clone()
	c.People[0].Name = "changed"
	c.People[0].Debts[0].Description = "changed"
	c.People[0].Debts = append(c.People[0].Debts, entry(3, 1))

	assert.Equal(t, "Ahmed", d.People[0].Name)
	assert.Equal(t, "x", d.People[0].Debts[0].Description)
	assert.Len(t, d.People[0].Debts, 1)
}

func TestDatasetClone_KeepsEmptySlicesNonNil(t *testing.T) {
	c := NewDataset().Clone()
	require.NotNil(t, c.People)

	c.People = append(c.People, NewPerson(1, "A"))
	cc := c.Clone()
	assert.NotNil(t, cc.People[0].Debts)
	assert.NotNil(t, cc.People[0].Credits)
}

func TestDataset_FindAndMaxID(t *testing.T) {
	d := NewDataset()
	a := NewPerson(10, "A")
	a.Credits = append(a.Credits, entry(40, 1))
	b := NewPerson(20, "B")
	b.Debts = append(b.Debts, entry(30, 1))
	d.People = append(d.People, a, b)

	got, ok := d.Find(20)
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)

	_, ok = d.Find(99)
	assert.False(t, ok)
	assert.Equal(t, -1, d.IndexOf(99))
	assert.Equal(t, int64(40), d.MaxID())
	assert.Equal(t, int64(0), NewDataset().MaxID())
}

func TestPerson_EntriesByKind(t *testing.T) {
	p := NewPerson(1, "A")
	p.SetEntries(KindCredit, []Entry{entry(2, 5)})
	p.SetEntries(KindDebt, []Entry{entry(3, 7), entry(4, 8)})

	assert.Len(t, p.Entries(KindCredit), 1)
	assert.Len(t, p.Entries(KindDebt), 2)
	assert.True(t, KindDebt.Valid())
	assert.False(t, Kind("loan").Valid())
}

func TestSummarize(t *testing.T) {
	d := NewDataset()
	a := NewPerson(1, "A")
	a.Debts = append(a.Debts, entry(3, 50))
	b := NewPerson(2, "B")
	b.Credits = append(b.Credits, entry(4, 80))
	d.People = append(d.People, a, b)

	s := Summarize(d)

	require.Len(t, s.People, 2)
	assert.Equal(t, int64(1), s.People[0].PersonID)
	assert.Equal(t, StatusTheyOwe, s.People[0].Status)
	assert.Equal(t, StatusOwnerOwes, s.People[1].Status)
	assert.Equal(t, "-30", s.Net.String())
	assert.Equal(t, StatusOwnerOwes, s.Status)
}

func TestAmountInRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"50", true},
		{"12.75", true},
		{"0.00000001", true},
		{"999999999999999", true},
		{"999999999999999.99999999", true},
		{"1000000000000000", false},
		{"0.000000001", false},
		{"1e30000000", false},
		{"1e-30000000", false},
		{"1e15", false},
		{"1e14", true},
	}
	for _, tt := range tests {
		a, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, AmountInRange(a), "AmountInRange(%s)", tt.in)
	}
}
