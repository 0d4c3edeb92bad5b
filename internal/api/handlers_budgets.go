package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
	"github.com/shopspring/decimal"
)

func (handler *Handler) GetBudgets(c *fiber.Ctx) error {
	userID := c.Params("userId")

	reports, err := handler.budgetReports.BuildReports(userID, handler.now())
	if err != nil {
		return repoError(c, err, "Budget not found", "", "Server error fetching budgets")
	}
	return c.JSON(reports)
}

// SaveBudget upserts the (user, category) budget atomically.
func (handler *Handler) SaveBudget(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var payload struct {
		Category string           `json:"category"`
		Limit    *decimal.Decimal `json:"limit"`
		Period   string           `json:"period"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	limit := decimal.Zero
	if payload.Limit != nil {
		limit = *payload.Limit
	}
	if err := services.ValidateBudgetInput(payload.Category, limit); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	period := strings.TrimSpace(payload.Period)
	if period == "" {
		period = models.DefaultBudgetPeriod
	}

	budget := models.Budget{
		UserID:   userID,
		Category: payload.Category,
		Limit:    limit,
		Period:   period,
	}
	if err := handler.repositories.Budgets.Upsert(&budget); err != nil {
		return repoError(c, err, "Budget not found", "", "Server error saving budget")
	}

	return c.JSON(fiber.Map{
		"message": "Budget saved successfully",
		"budget":  budget,
	})
}

func (handler *Handler) DeleteBudget(c *fiber.Ctx) error {
	userID := c.Params("userId")
	id, err := parseIDParam(c, "budgetId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid budget id")
	}

	if err := handler.repositories.Budgets.Delete(id, userID); err != nil {
		return repoError(c, err, "Budget not found", "", "Server error deleting budget")
	}

	return c.JSON(fiber.Map{"message": "Budget deleted successfully"})
}

func (handler *Handler) GetBudgetAlerts(c *fiber.Ctx) error {
	userID := c.Params("userId")

	threshold := int64(services.DefaultAlertThreshold)
	if raw := strings.TrimSpace(c.Query("alertThreshold")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid alertThreshold")
		}
		threshold = parsed
	}

	alerts, err := handler.budgetReports.BuildAlerts(userID, threshold, handler.now())
	if err != nil {
		return repoError(c, err, "Budget not found", "", "Server error fetching budget alerts")
	}
	return c.JSON(alerts)
}
