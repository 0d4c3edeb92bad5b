package services

import (
	"strings"
	"time"

	"github.com/raselhq/studyhub/internal/models"
	"github.com/shopspring/decimal"
)

func ValidateNewTransaction(transaction models.Transaction) error {
	if strings.TrimSpace(transaction.Type) == "" ||
		strings.TrimSpace(transaction.Category) == "" ||
		transaction.Amount.IsZero() ||
		transaction.Date.IsZero() ||
		strings.TrimSpace(transaction.UserID) == "" {
		return NewValidationError("Please provide all required fields")
	}

	if err := ValidateTransactionType(transaction.Type); err != nil {
		return err
	}
	return ValidateTransactionAmount(transaction.Amount)
}

func ValidateTransactionType(kind string) error {
	if !models.IsTransactionType(kind) {
		return NewValidationError("Type must be income or expense")
	}
	return nil
}

func ValidateTransactionAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return NewValidationError("Amount must be a positive number")
	}
	return nil
}

func ValidateTransactionDateRange(from *time.Time, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return NewValidationError("endDate must not be before startDate")
	}
	return nil
}
