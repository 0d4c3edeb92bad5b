package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Type        string          `gorm:"not null;index" json:"type"`
	Category    string          `gorm:"not null;index" json:"category"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `json:"description"`
	UserID      string          `gorm:"column:user_id;not null;index" json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func IsTransactionType(kind string) bool {
	return kind == TransactionIncome || kind == TransactionExpense
}
