package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultBudgetPeriod = "monthly"

// Budget stores only the configured limit; spent, percentage,
// remaining, and status are derived at read time from transactions.
type Budget struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"column:user_id;not null;uniqueIndex:uidx_budget_user_category" json:"userId"`
	Category  string          `gorm:"not null;uniqueIndex:uidx_budget_user_category" json:"category"`
	Limit     decimal.Decimal `gorm:"column:limit_amount;type:DECIMAL(20,8);not null" json:"limit"`
	Period    string          `gorm:"not null;default:monthly" json:"period"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
