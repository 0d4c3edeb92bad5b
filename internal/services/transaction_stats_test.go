package services

import (
	"errors"
	"testing"
	"time"

	"github.com/raselhq/studyhub/internal/models"
)

type stubTransactionReader struct {
	transactions []models.Transaction
	err          error
}

func (stub *stubTransactionReader) ListByUserRange(string, *time.Time, *time.Time) ([]models.Transaction, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.Transaction, len(stub.transactions))
	copy(result, stub.transactions)
	return result, nil
}

func income(t *testing.T, category string, amount string) models.Transaction {
	t.Helper()
	record := expense(t, category, amount)
	record.Type = models.TransactionIncome
	return record
}

func TestTransactionStatsBalanceIdentity(t *testing.T) {
	reader := &stubTransactionReader{transactions: []models.Transaction{
		income(t, "salary", "1200"),
		income(t, "tutoring", "150.25"),
		expense(t, "food", "300.75"),
		expense(t, "rent", "500"),
	}}
	service := NewTransactionStatsService(reader)

	stats, err := service.Build("u1", nil, nil)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if !stats.TotalIncome.Equal(money(t, "1350.25")) {
		t.Fatalf("expected total income 1350.25, got %s", stats.TotalIncome)
	}
	if !stats.TotalExpenses.Equal(money(t, "800.75")) {
		t.Fatalf("expected total expenses 800.75, got %s", stats.TotalExpenses)
	}
	if !stats.Balance.Equal(stats.TotalIncome.Sub(stats.TotalExpenses)) {
		t.Fatalf("balance %s violates income-expenses identity", stats.Balance)
	}
}

func TestTransactionStatsBreakdownOrdering(t *testing.T) {
	reader := &stubTransactionReader{transactions: []models.Transaction{
		expense(t, "food", "40"),
		expense(t, "rent", "500"),
		expense(t, "food", "60"),
		expense(t, "books", "100"),
		expense(t, "coffee", "100"),
	}}
	service := NewTransactionStatsService(reader)

	stats, err := service.Build("u1", nil, nil)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	categories := make([]string, 0, len(stats.CategoryBreakdown))
	for _, entry := range stats.CategoryBreakdown {
		categories = append(categories, entry.Category)
	}

	// Descending by total, equal totals fall back to category name.
	want := []string{"rent", "books", "coffee", "food"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %v", len(want), categories)
	}
	for index := range want {
		if categories[index] != want[index] {
			t.Fatalf("expected breakdown order %v, got %v", want, categories)
		}
	}

	if !stats.CategoryBreakdown[3].Total.Equal(money(t, "100")) {
		t.Fatalf("expected food total 100, got %s", stats.CategoryBreakdown[3].Total)
	}
}

func TestTransactionStatsEmpty(t *testing.T) {
	service := NewTransactionStatsService(&stubTransactionReader{})

	stats, err := service.Build("u1", nil, nil)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if !stats.Balance.IsZero() || !stats.TotalIncome.IsZero() || !stats.TotalExpenses.IsZero() {
		t.Fatalf("expected zero totals for empty history, got %+v", stats)
	}
	if len(stats.CategoryBreakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %v", stats.CategoryBreakdown)
	}
}

func TestTransactionStatsPropagatesReaderErrors(t *testing.T) {
	readErr := errors.New("store down")
	service := NewTransactionStatsService(&stubTransactionReader{err: readErr})
	if _, err := service.Build("u1", nil, nil); !errors.Is(err, readErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
