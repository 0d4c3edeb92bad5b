package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
	"github.com/shopspring/decimal"
)

func transactionBody(kind string, category string, amount string, date string) map[string]any {
	return map[string]any{
		"type":        kind,
		"category":    category,
		"amount":      amount,
		"date":        date,
		"description": "test entry",
	}
}

func createTransaction(t *testing.T, app *fiber.App, userID string, body map[string]any) models.Transaction {
	t.Helper()
	response := performJSON(t, app, http.MethodPost, "/transactions/"+userID, body)
	requireStatus(t, response, http.StatusCreated)

	var result struct {
		Message     string             `json:"message"`
		Transaction models.Transaction `json:"transaction"`
	}
	decodeJSON(t, response, &result)
	if result.Message != "Transaction added successfully" {
		t.Fatalf("unexpected create message: %q", result.Message)
	}
	return result.Transaction
}

type transactionPage struct {
	Transactions []models.Transaction `json:"transactions"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
	Total        int64                `json:"total"`
}

func TestTransactionPagination(t *testing.T) {
	app, _ := newTestApp(t)

	// Distinct dates so newest-first ordering is deterministic.
	for day := 1; day <= 12; day++ {
		createTransaction(t, app, "u1", transactionBody(
			models.TransactionExpense, "food", "10", fmt.Sprintf("2026-03-%02d", day)))
	}

	response := performJSON(t, app, http.MethodGet, "/transactions/u1?page=2&limit=5", nil)
	requireStatus(t, response, http.StatusOK)
	var page transactionPage
	decodeJSON(t, response, &page)

	if page.Total != 12 || page.TotalPages != 3 || page.CurrentPage != 2 {
		t.Fatalf("unexpected page envelope: total=%d totalPages=%d currentPage=%d", page.Total, page.TotalPages, page.CurrentPage)
	}
	if len(page.Transactions) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(page.Transactions))
	}
	// Newest first: page 2 of 12 holds March 7th down to March 3rd.
	if page.Transactions[0].Date.Day() != 7 || page.Transactions[4].Date.Day() != 3 {
		t.Fatalf("unexpected page window: first=%s last=%s", page.Transactions[0].Date, page.Transactions[4].Date)
	}

	// Out-of-range pages return an empty slice, not an error.
	response = performJSON(t, app, http.MethodGet, "/transactions/u1?page=4&limit=5", nil)
	requireStatus(t, response, http.StatusOK)
	decodeJSON(t, response, &page)
	if len(page.Transactions) != 0 || page.Total != 12 {
		t.Fatalf("expected empty out-of-range page, got %d items", len(page.Transactions))
	}
}

func TestTransactionPaginationDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	for day := 1; day <= 12; day++ {
		createTransaction(t, app, "u1", transactionBody(
			models.TransactionIncome, "salary", "5", fmt.Sprintf("2026-03-%02d", day)))
	}

	// Defaults page=1 limit=10; junk values fall back too.
	for _, query := range []string{"", "?page=abc&limit=-2"} {
		response := performJSON(t, app, http.MethodGet, "/transactions/u1"+query, nil)
		requireStatus(t, response, http.StatusOK)
		var page transactionPage
		decodeJSON(t, response, &page)
		if page.CurrentPage != 1 || len(page.Transactions) != 10 || page.TotalPages != 2 {
			t.Fatalf("query %q: unexpected defaults currentPage=%d items=%d totalPages=%d",
				query, page.CurrentPage, len(page.Transactions), page.TotalPages)
		}
	}
}

func TestTransactionFilters(t *testing.T) {
	app, _ := newTestApp(t)

	createTransaction(t, app, "u1", transactionBody(models.TransactionExpense, "food", "20", "2026-03-02"))
	createTransaction(t, app, "u1", transactionBody(models.TransactionExpense, "rent", "500", "2026-03-05"))
	createTransaction(t, app, "u1", transactionBody(models.TransactionIncome, "salary", "1200", "2026-03-10"))
	createTransaction(t, app, "u2", transactionBody(models.TransactionExpense, "food", "99", "2026-03-02"))

	response := performJSON(t, app, http.MethodGet, "/transactions/u1?type=expense", nil)
	requireStatus(t, response, http.StatusOK)
	var page transactionPage
	decodeJSON(t, response, &page)
	if page.Total != 2 {
		t.Fatalf("expected 2 expenses for u1, got %d", page.Total)
	}

	response = performJSON(t, app, http.MethodGet, "/transactions/u1?category=food", nil)
	requireStatus(t, response, http.StatusOK)
	decodeJSON(t, response, &page)
	if page.Total != 1 || !page.Transactions[0].Amount.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected only u1's food expense, got %+v", page.Transactions)
	}

	response = performJSON(t, app, http.MethodGet, "/transactions/u1?startDate=2026-03-04&endDate=2026-03-09", nil)
	requireStatus(t, response, http.StatusOK)
	decodeJSON(t, response, &page)
	if page.Total != 1 || page.Transactions[0].Category != "rent" {
		t.Fatalf("expected only the rent entry inside the window, got %+v", page.Transactions)
	}

	response = performJSON(t, app, http.MethodGet, "/transactions/u1?startDate=2026-03-09&endDate=2026-03-04", nil)
	requireStatus(t, response, http.StatusBadRequest)
	if message := readMessage(t, response); message != "endDate must not be before startDate" {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestTransactionStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	createTransaction(t, app, "u1", transactionBody(models.TransactionIncome, "salary", "1200", "2026-03-01"))
	createTransaction(t, app, "u1", transactionBody(models.TransactionExpense, "food", "300.50", "2026-03-05"))
	createTransaction(t, app, "u1", transactionBody(models.TransactionExpense, "rent", "500", "2026-03-06"))

	response := performJSON(t, app, http.MethodGet, "/transactions/u1/stats", nil)
	requireStatus(t, response, http.StatusOK)
	var stats services.TransactionStats
	decodeJSON(t, response, &stats)

	if !stats.TotalIncome.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("expected income 1200, got %s", stats.TotalIncome)
	}
	if !stats.TotalExpenses.Equal(decimal.RequireFromString("800.50")) {
		t.Fatalf("expected expenses 800.50, got %s", stats.TotalExpenses)
	}
	if !stats.Balance.Equal(decimal.RequireFromString("399.50")) {
		t.Fatalf("expected balance 399.50, got %s", stats.Balance)
	}
	if len(stats.CategoryBreakdown) != 2 || stats.CategoryBreakdown[0].Category != "rent" {
		t.Fatalf("expected rent to lead the breakdown, got %+v", stats.CategoryBreakdown)
	}
}

func TestTransactionValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		body    map[string]any
		message string
	}{
		{
			name:    "missing amount",
			body:    map[string]any{"type": "expense", "category": "food", "date": "2026-03-02"},
			message: "Please provide all required fields",
		},
		{
			name:    "unknown type",
			body:    transactionBody("transfer", "food", "10", "2026-03-02"),
			message: "Type must be income or expense",
		},
		{
			name:    "negative amount",
			body:    transactionBody("expense", "food", "-10", "2026-03-02"),
			message: "Amount must be a positive number",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			response := performJSON(t, app, http.MethodPost, "/transactions/u1", testCase.body)
			requireStatus(t, response, http.StatusBadRequest)
			if message := readMessage(t, response); message != testCase.message {
				t.Fatalf("expected %q, got %q", testCase.message, message)
			}
		})
	}
}

func TestTransactionOwnershipScoping(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTransaction(t, app, "u1", transactionBody(models.TransactionExpense, "food", "20", "2026-03-02"))

	// Another user's path cannot touch the record.
	response := performJSON(t, app, http.MethodPut,
		fmt.Sprintf("/transactions/u2/%d", created.ID), map[string]any{"category": "snacks"})
	requireStatus(t, response, http.StatusNotFound)
	if message := readMessage(t, response); message != "Transaction not found" {
		t.Fatalf("unexpected message: %q", message)
	}

	response = performJSON(t, app, http.MethodDelete, fmt.Sprintf("/transactions/u2/%d", created.ID), nil)
	requireStatus(t, response, http.StatusNotFound)
	response.Body.Close()

	// The owner still can.
	response = performJSON(t, app, http.MethodPut,
		fmt.Sprintf("/transactions/u1/%d", created.ID), map[string]any{"category": "snacks"})
	requireStatus(t, response, http.StatusOK)
	var updated struct {
		Transaction models.Transaction `json:"transaction"`
	}
	decodeJSON(t, response, &updated)
	if updated.Transaction.Category != "snacks" {
		t.Fatalf("expected updated category, got %+v", updated.Transaction)
	}

	response = performJSON(t, app, http.MethodDelete, fmt.Sprintf("/transactions/u1/%d", created.ID), nil)
	requireStatus(t, response, http.StatusOK)
	if message := readMessage(t, response); message != "Transaction deleted successfully" {
		t.Fatalf("unexpected message: %q", message)
	}
}
