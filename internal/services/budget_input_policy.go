package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

func ValidateBudgetInput(category string, limit decimal.Decimal) error {
	if strings.TrimSpace(category) == "" || limit.IsZero() {
		return NewValidationError("Please provide category and limit")
	}
	if limit.Sign() <= 0 {
		return NewValidationError("Limit must be a positive number")
	}
	return nil
}
