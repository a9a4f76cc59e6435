package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/debtbook/internal/common"
	"github.com/dmitrijs2005/debtbook/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type personInput struct {
	Name string `validate:"required"`
}

// checkStruct runs the struct tags of v and converts the first failure into
// a *common.ValidationError.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return common.NewValidationError(strings.ToLower(fe.Field()), "must not be empty")
	}
	return common.NewValidationError("input", err.Error())
}

func normalizePerson(name string) (string, error) {
	in := personInput{Name: strings.TrimSpace(name)}
	if err := checkStruct(in); err != nil {
		return "", err
	}
	return in.Name, nil
}

// normalizeEntry trims the form fields, checks that all are present and
// parses the amount, which must be a number greater than zero. The date is
// kept as free text.
func normalizeEntry(in models.EntryInput) (models.Entry, error) {
	in = models.EntryInput{
		Description: strings.TrimSpace(in.Description),
		Amount:      strings.TrimSpace(in.Amount),
		Date:        strings.TrimSpace(in.Date),
	}
	if err := checkStruct(in); err != nil {
		return models.Entry{}, err
	}

	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return models.Entry{}, common.NewValidationError("amount", "must be a number")
	}
	if !amount.IsPositive() {
		return models.Entry{}, common.NewValidationError("amount", "must be greater than zero")
	}
	if !models.AmountInRange(amount) {
		return models.Entry{}, common.NewValidationError("amount",
			fmt.Sprintf("must have at most %d integer digits and %d decimal places",
				models.MaxAmountIntDigits, models.MaxAmountScale))
	}

	return models.Entry{Description: in.Description, Amount: amount, Date: in.Date}, nil
}
