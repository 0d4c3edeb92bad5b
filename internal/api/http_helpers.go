package api

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/services"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// repoError maps a repository failure to the error taxonomy: 404 for a
// missing row, 400 for a uniqueness violation, otherwise a generic 500
// with the original error kept server-side.
func repoError(c *fiber.Ctx, err error, notFoundMessage string, conflictMessage string, serverMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, notFoundMessage)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apiError(c, fiber.StatusBadRequest, conflictMessage)
	}
	log.Printf("store error: %v", err)
	return apiError(c, fiber.StatusInternalServerError, serverMessage)
}

func validationOrRepoError(c *fiber.Ctx, err error, notFoundMessage string, conflictMessage string, serverMessage string) error {
	if services.IsValidationError(err) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return repoError(c, err, notFoundMessage, conflictMessage, serverMessage)
}

// parseIDParam rejects non-numeric identifiers up front instead of
// letting them surface as store failures.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDateValue(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseDateQuery treats an absent value as an open bound.
func parseDateQuery(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := parseDateValue(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseBoolQuery(raw string) *bool {
	switch strings.TrimSpace(raw) {
	case "true":
		value := true
		return &value
	case "false":
		value := false
		return &value
	default:
		return nil
	}
}
