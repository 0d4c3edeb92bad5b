package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/db"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
	"github.com/shopspring/decimal"
)

type transactionPayload struct {
	Type        *string          `json:"type"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
}

func (payload transactionPayload) updates() (map[string]any, error) {
	updates := make(map[string]any)
	if payload.Type != nil {
		if err := services.ValidateTransactionType(*payload.Type); err != nil {
			return nil, err
		}
		updates["type"] = *payload.Type
	}
	if payload.Category != nil {
		updates["category"] = *payload.Category
	}
	if payload.Amount != nil {
		if err := services.ValidateTransactionAmount(*payload.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *payload.Amount
	}
	if payload.Date != nil {
		parsed, err := parseDateValue(*payload.Date)
		if err != nil {
			return nil, services.NewValidationError("Invalid date")
		}
		updates["date"] = parsed
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	return updates, nil
}

func (handler *Handler) AddTransaction(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var payload transactionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	transaction := models.Transaction{
		Type:        stringValue(payload.Type),
		Category:    stringValue(payload.Category),
		Description: stringValue(payload.Description),
		UserID:      userID,
	}
	if payload.Amount != nil {
		transaction.Amount = *payload.Amount
	}
	if payload.Date != nil {
		parsed, err := parseDateValue(*payload.Date)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid date")
		}
		transaction.Date = parsed
	}

	if err := services.ValidateNewTransaction(transaction); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.repositories.Transactions.Create(&transaction); err != nil {
		return repoError(c, err, "Transaction not found", "", "Server error adding transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Transaction added successfully",
		"transaction": transaction,
	})
}

func (handler *Handler) GetTransactions(c *fiber.Ctx) error {
	userID := c.Params("userId")

	startDate, err := parseDateQuery(c.Query("startDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid startDate")
	}
	endDate, err := parseDateQuery(c.Query("endDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid endDate")
	}
	if err := services.ValidateTransactionDateRange(startDate, endDate); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	filter := db.TransactionFilter{
		UserID:    userID,
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		StartDate: startDate,
		EndDate:   endDate,
	}
	page := parsePageRequest(c)

	transactions, err := handler.repositories.Transactions.ListPage(filter, page.Offset(), page.Limit)
	if err != nil {
		return repoError(c, err, "Transaction not found", "", "Server error fetching transactions")
	}
	total, err := handler.repositories.Transactions.Count(filter)
	if err != nil {
		return repoError(c, err, "Transaction not found", "", "Server error fetching transactions")
	}

	return c.JSON(fiber.Map{
		"transactions": transactions,
		"totalPages":   totalPages(total, page.Limit),
		"currentPage":  page.Page,
		"total":        total,
	})
}

func (handler *Handler) GetTransactionStats(c *fiber.Ctx) error {
	userID := c.Params("userId")

	startDate, err := parseDateQuery(c.Query("startDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid startDate")
	}
	endDate, err := parseDateQuery(c.Query("endDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid endDate")
	}
	if err := services.ValidateTransactionDateRange(startDate, endDate); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := handler.transactionStats.Build(userID, startDate, endDate)
	if err != nil {
		return repoError(c, err, "Transaction not found", "", "Server error fetching statistics")
	}
	return c.JSON(stats)
}

func (handler *Handler) UpdateTransaction(c *fiber.Ctx) error {
	userID := c.Params("userId")
	id, err := parseIDParam(c, "transactionId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid transaction id")
	}

	var payload transactionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates, err := payload.updates()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	transaction, err := handler.repositories.Transactions.Update(id, userID, updates)
	if err != nil {
		return repoError(c, err, "Transaction not found", "", "Server error updating transaction")
	}

	return c.JSON(fiber.Map{
		"message":     "Transaction updated successfully",
		"transaction": transaction,
	})
}

func (handler *Handler) DeleteTransaction(c *fiber.Ctx) error {
	userID := c.Params("userId")
	id, err := parseIDParam(c, "transactionId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid transaction id")
	}

	if err := handler.repositories.Transactions.Delete(id, userID); err != nil {
		return repoError(c, err, "Transaction not found", "", "Server error deleting transaction")
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted successfully"})
}
