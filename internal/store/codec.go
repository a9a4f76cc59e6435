package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/debtbook/internal/models"
)

// entryRecord is the persisted shape of an entry. Amount is a raw JSON number
// literal taken from the decimal's exact string form; anything else, a quoted
// number included, is rejected on load.
type entryRecord struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Date        string          `json:"date"`
}

type personRecord struct {
	ID      int64         `json:"id"`
	Name    string        `json:"name"`
	Debts   []entryRecord `json:"debts"`
	Credits []entryRecord `json:"credits"`
}

// Encode serializes d as a JSON array of people.
func Encode(d models.Dataset) ([]byte, error) {
	records := make([]personRecord, 0, len(d.People))
	for _, p := range d.People {
		records = append(records, personRecord{
			ID:      p.ID,
			Name:    p.Name,
			Debts:   encodeEntries(p.Debts),
			Credits: encodeEntries(p.Credits),
		})
	}
	return json.Marshal(records)
}

func encodeEntries(entries []models.Entry) []entryRecord {
	out := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryRecord{
			ID:          e.ID,
			Description: e.Description,
			Amount:      json.RawMessage(e.Amount.String()),
			Date:        e.Date,
		})
	}
	return out
}

// Decode parses data produced by Encode (or by earlier releases, which used
// the same shape) and checks the dataset invariants.
func Decode(data []byte) (models.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var records []personRecord
	if err := dec.Decode(&records); err != nil {
		return models.Dataset{}, fmt.Errorf("decode people: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.Dataset{}, errors.New("decode people: trailing data")
	}

	d := models.Dataset{People: make([]models.Person, 0, len(records))}
	personIDs := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if _, dup := personIDs[r.ID]; dup {
			return models.Dataset{}, fmt.Errorf("duplicate person id %d", r.ID)
		}
		personIDs[r.ID] = struct{}{}
		if strings.TrimSpace(r.Name) == "" {
			return models.Dataset{}, fmt.Errorf("person %d has an empty name", r.ID)
		}

		debts, err := decodeEntries(r.Debts)
		if err != nil {
			return models.Dataset{}, fmt.Errorf("person %d debts: %w", r.ID, err)
		}
		credits, err := decodeEntries(r.Credits)
		if err != nil {
			return models.Dataset{}, fmt.Errorf("person %d credits: %w", r.ID, err)
		}

		d.People = append(d.People, models.Person{
			ID:      r.ID,
			Name:    r.Name,
			Debts:   debts,
			Credits: credits,
		})
	}
	return d, nil
}

func decodeEntries(records []entryRecord) ([]models.Entry, error) {
	out := make([]models.Entry, 0, len(records))
	ids := make(map[int64]struct{}, len(records))
	for _, r := range records {
		if _, dup := ids[r.ID]; dup {
			return nil, fmt.Errorf("duplicate entry id %d", r.ID)
		}
		ids[r.ID] = struct{}{}

		if strings.TrimSpace(r.Description) == "" {
			return nil, fmt.Errorf("entry %d has an empty description", r.ID)
		}
		if strings.TrimSpace(r.Date) == "" {
			return nil, fmt.Errorf("entry %d has an empty date", r.ID)
		}

		amount, err := decodeAmount(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", r.ID, err)
		}

		out = append(out, models.Entry{
			ID:          r.ID,
			Description: r.Description,
			Amount:      amount,
			Date:        r.Date,
		})
	}
	return out, nil
}

// decodeAmount accepts only a bare JSON number that is positive and within
// models.AmountInRange.
func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Decimal{}, errors.New("missing amount")
	}
	if c := raw[0]; c != '-' && (c < '0' || c > '9') {
		return decimal.Decimal{}, fmt.Errorf("amount %s is not a number", raw)
	}

	amount, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %s: %w", raw, err)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount %s is not positive", amount)
	}
	if !models.AmountInRange(amount) {
		return decimal.Decimal{}, fmt.Errorf("amount %s is out of range", raw)
	}
	return amount, nil
}
