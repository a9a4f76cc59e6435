package store

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/debtbook/internal/models"
)

func TestEncode_EmptyDatasetIsEmptyArray(t *testing.T) {
	data, err := Encode(models.NewDataset())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	data, err = Encode(models.Dataset{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestEncodeDecode_PreservesOrder(t *testing.T) {
	d := sampleDataset()
	// reverse people so the order differs from id order
	d.People[0], d.People[1] = d.People[1], d.People[0]

	data, err := Encode(d)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(d, got))
	assert.Equal(t, "Sara", got.People[0].Name)
	assert.Equal(t, "Lunch", got.People[1].Debts[0].Description)
	assert.Equal(t, "Taxi", got.People[1].Debts[1].Description)
}

func TestDecode_TrailingGarbage(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "closing bracket", value: `[]]`},
		{name: "closing brace", value: `[{"id":1,"name":"A","debts":[],"credits":[]}]}`},
		{name: "second value", value: `[] []`},
		{name: "comma", value: `[],`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.value))
			require.Error(t, err)
		})
	}
}

func TestDecode_TrailingWhitespaceIsFine(t *testing.T) {
	got, err := Decode([]byte("[]\n  "))
	require.NoError(t, err)
	assert.Empty(t, got.People)
}

func TestDecode_RejectsInvalidEntries(t *testing.T) {
	const tmpl = `[{"id":1,"name":%s,"debts":[{"id":2,"description":%s,"amount":%s,"date":%s}],"credits":[]}]`
	tests := []struct {
		name                            string
		person, description, amount, dt string
	}{
		{name: "quoted amount", person: `"A"`, description: `"x"`, amount: `"7.5"`, dt: `"2024-01-01"`},
		{name: "null amount", person: `"A"`, description: `"x"`, amount: `null`, dt: `"2024-01-01"`},
		{name: "bool amount", person: `"A"`, description: `"x"`, amount: `true`, dt: `"2024-01-01"`},
		{name: "huge exponent", person: `"A"`, description: `"x"`, amount: `1e30000000`, dt: `"2024-01-01"`},
		{name: "tiny exponent", person: `"A"`, description: `"x"`, amount: `1e-30000000`, dt: `"2024-01-01"`},
		{name: "empty name", person: `""`, description: `"x"`, amount: `1`, dt: `"2024-01-01"`},
		{name: "blank name", person: `"  "`, description: `"x"`, amount: `1`, dt: `"2024-01-01"`},
		{name: "empty description", person: `"A"`, description: `""`, amount: `1`, dt: `"2024-01-01"`},
		{name: "empty date", person: `"A"`, description: `"x"`, amount: `1`, dt: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(fmt.Sprintf(tmpl, tt.person, tt.description, tt.amount, tt.dt)))
			require.Error(t, err)
		})
	}
}

func TestDecode_MissingAmount(t *testing.T) {
	_, err := Decode([]byte(`[{"id":1,"name":"A","debts":[{"id":2,"description":"x","date":"2024-01-01"}],"credits":[]}]`))
	require.Error(t, err)
}

func TestDecode_ExponentAmountInRange(t *testing.T) {
	got, err := Decode([]byte(`[{"id":1,"name":"A","debts":[{"id":2,"description":"x","amount":1.5e2,"date":"2024-01-01"}],"credits":[]}]`))
	require.NoError(t, err)
	assert.Equal(t, "150", got.People[0].Debts[0].Amount.String())
}

func TestDecode_NonNumericAmount(t *testing.T) {
	_, err := Decode([]byte(`[{"id":1,"name":"A","debts":[{"id":2,"description":"x","amount":"abc","date":"2024-01-01"}],"credits":[]}]`))
	require.Error(t, err)
}
