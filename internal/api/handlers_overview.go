package api

import "github.com/gofiber/fiber/v2"

// GetOverview returns the combined dashboard summary for one user.
func (handler *Handler) GetOverview(c *fiber.Ctx) error {
	overview, err := handler.overview.Build(c.Params("userEmail"), handler.now())
	if err != nil {
		return repoError(c, err, "User not found", "", "Server error fetching overview")
	}
	return c.JSON(overview)
}
