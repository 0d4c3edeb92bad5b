package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type pageRequest struct {
	Page  int
	Limit int
}

func parsePageRequest(c *fiber.Ctx) pageRequest {
	return pageRequest{
		Page:  positiveIntQuery(c, "page", defaultPage),
		Limit: positiveIntQuery(c, "limit", defaultLimit),
	}
}

func positiveIntQuery(c *fiber.Ctx, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func (request pageRequest) Offset() int {
	return (request.Page - 1) * request.Limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
