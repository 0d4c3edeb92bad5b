package services

import (
	"sort"
	"time"

	"github.com/raselhq/studyhub/internal/models"
	"github.com/shopspring/decimal"
)

type StatsTransactionReader interface {
	ListByUserRange(userID string, from *time.Time, to *time.Time) ([]models.Transaction, error)
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type TransactionStats struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	Balance           decimal.Decimal `json:"balance"`
	CategoryBreakdown []CategoryTotal `json:"categoryBreakdown"`
}

type TransactionStatsService struct {
	transactions StatsTransactionReader
}

func NewTransactionStatsService(transactions StatsTransactionReader) *TransactionStatsService {
	return &TransactionStatsService{transactions: transactions}
}

// Build totals the user's transactions in the optional inclusive date
// range. A type with no transactions contributes zero rather than being
// omitted.
func (service *TransactionStatsService) Build(userID string, from *time.Time, to *time.Time) (TransactionStats, error) {
	transactions, err := service.transactions.ListByUserRange(userID, from, to)
	if err != nil {
		return TransactionStats{}, err
	}

	stats := TransactionStats{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		CategoryBreakdown: make([]CategoryTotal, 0),
	}

	expenseTotals := make(map[string]*CategoryTotal)
	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TransactionIncome:
			stats.TotalIncome = stats.TotalIncome.Add(transaction.Amount)
		case models.TransactionExpense:
			stats.TotalExpenses = stats.TotalExpenses.Add(transaction.Amount)
			entry, exists := expenseTotals[transaction.Category]
			if !exists {
				entry = &CategoryTotal{Category: transaction.Category, Total: decimal.Zero}
				expenseTotals[transaction.Category] = entry
			}
			entry.Total = entry.Total.Add(transaction.Amount)
			entry.Count++
		}
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpenses)

	for _, entry := range expenseTotals {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, *entry)
	}
	sort.Slice(stats.CategoryBreakdown, func(i, j int) bool {
		left, right := stats.CategoryBreakdown[i], stats.CategoryBreakdown[j]
		if !left.Total.Equal(right.Total) {
			return left.Total.GreaterThan(right.Total)
		}
		return left.Category < right.Category
	})

	return stats, nil
}
