package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/db"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
)

type goalPayload struct {
	UserEmail   *string `json:"userEmail"`
	Title       *string `json:"title"`
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
	Progress    *int    `json:"progress"`
}

func (payload goalPayload) updates() (map[string]any, error) {
	updates := make(map[string]any)
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Subject != nil {
		if err := services.ValidateStudySubject(*payload.Subject); err != nil {
			return nil, err
		}
		updates["subject"] = *payload.Subject
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Deadline != nil {
		parsed, err := parseDateValue(*payload.Deadline)
		if err != nil {
			return nil, services.NewValidationError("Invalid deadline")
		}
		updates["deadline"] = parsed
	}
	if payload.Priority != nil {
		if err := services.ValidateGoalPriority(*payload.Priority); err != nil {
			return nil, err
		}
		updates["priority"] = *payload.Priority
	}
	if payload.Completed != nil {
		updates["completed"] = *payload.Completed
	}
	if payload.Progress != nil {
		if err := services.ValidateGoalProgress(*payload.Progress); err != nil {
			return nil, err
		}
		updates["progress"] = *payload.Progress
	}
	return updates, nil
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	var payload goalPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	goal := models.Goal{
		UserEmail:   stringValue(payload.UserEmail),
		Title:       stringValue(payload.Title),
		Subject:     stringValue(payload.Subject),
		Description: stringValue(payload.Description),
		Priority:    models.PriorityMedium,
	}
	if payload.Deadline != nil {
		parsed, err := parseDateValue(*payload.Deadline)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid deadline")
		}
		goal.Deadline = parsed
	}
	if payload.Priority != nil {
		goal.Priority = *payload.Priority
	}
	if payload.Progress != nil {
		goal.Progress = *payload.Progress
	}

	if err := services.ValidateNewGoal(goal); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.repositories.Goals.Create(&goal); err != nil {
		return repoError(c, err, "Goal not found", "", "Server error creating goal")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Goal created successfully",
		"goal":    goal,
	})
}

func (handler *Handler) GetGoals(c *fiber.Ctx) error {
	filter := db.GoalFilter{
		UserEmail: c.Params("userEmail"),
		Completed: parseBoolQuery(c.Query("completed")),
		Priority:  c.Query("priority"),
	}
	page := parsePageRequest(c)

	goals, err := handler.repositories.Goals.ListPage(filter, page.Offset(), page.Limit)
	if err != nil {
		return repoError(c, err, "Goal not found", "", "Server error fetching goals")
	}
	total, err := handler.repositories.Goals.Count(filter)
	if err != nil {
		return repoError(c, err, "Goal not found", "", "Server error fetching goals")
	}

	return c.JSON(fiber.Map{
		"goals":       goals,
		"totalPages":  totalPages(total, page.Limit),
		"currentPage": page.Page,
		"total":       total,
	})
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid goal id")
	}

	var payload goalPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates, err := payload.updates()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	goal, err := handler.repositories.Goals.Update(id, updates)
	if err != nil {
		return repoError(c, err, "Goal not found", "", "Server error updating goal")
	}

	return c.JSON(fiber.Map{
		"message": "Goal updated successfully",
		"goal":    goal,
	})
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid goal id")
	}

	if err := handler.repositories.Goals.Delete(id); err != nil {
		return repoError(c, err, "Goal not found", "", "Server error deleting goal")
	}

	return c.JSON(fiber.Map{"message": "Goal deleted successfully"})
}

func (handler *Handler) ToggleGoal(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid goal id")
	}

	goal, err := handler.repositories.Goals.ToggleCompleted(id)
	if err != nil {
		return repoError(c, err, "Goal not found", "", "Server error updating goal")
	}

	state := "incomplete"
	if goal.Completed {
		state = "completed"
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Goal marked as %s", state),
		"goal":    goal,
	})
}

func (handler *Handler) GetGoalStats(c *fiber.Ctx) error {
	stats, err := handler.goalStats.Build(c.Params("userEmail"))
	if err != nil {
		return repoError(c, err, "Goal not found", "", "Server error fetching goals statistics")
	}
	return c.JSON(stats)
}
