package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/db"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
)

type sessionPayload struct {
	UserEmail *string  `json:"userEmail"`
	Subject   *string  `json:"subject"`
	Topic     *string  `json:"topic"`
	Date      *string  `json:"date"`
	StartTime *string  `json:"startTime"`
	Duration  *float64 `json:"duration"`
	Completed *bool    `json:"completed"`
	Notes     *string  `json:"notes"`
	Rating    *int     `json:"rating"`
}

func (payload sessionPayload) updates() (map[string]any, error) {
	updates := make(map[string]any)
	if payload.Subject != nil {
		if err := services.ValidateStudySubject(*payload.Subject); err != nil {
			return nil, err
		}
		updates["subject"] = *payload.Subject
	}
	if payload.Topic != nil {
		updates["topic"] = *payload.Topic
	}
	if payload.Date != nil {
		parsed, err := parseDateValue(*payload.Date)
		if err != nil {
			return nil, services.NewValidationError("Invalid date")
		}
		updates["date"] = parsed
	}
	if payload.StartTime != nil {
		updates["start_time"] = *payload.StartTime
	}
	if payload.Duration != nil {
		if err := services.ValidateSessionDuration(*payload.Duration); err != nil {
			return nil, err
		}
		updates["duration"] = *payload.Duration
	}
	if payload.Completed != nil {
		updates["completed"] = *payload.Completed
	}
	if payload.Notes != nil {
		updates["notes"] = *payload.Notes
	}
	if payload.Rating != nil {
		if err := services.ValidateSessionRating(payload.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *payload.Rating
	}
	return updates, nil
}

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	var payload sessionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	session := models.StudySession{
		UserEmail: stringValue(payload.UserEmail),
		Subject:   stringValue(payload.Subject),
		Topic:     stringValue(payload.Topic),
		StartTime: stringValue(payload.StartTime),
		Notes:     stringValue(payload.Notes),
		Rating:    payload.Rating,
	}
	if payload.Date != nil {
		parsed, err := parseDateValue(*payload.Date)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid date")
		}
		session.Date = parsed
	}
	if payload.Duration != nil {
		session.Duration = *payload.Duration
	}

	if err := services.ValidateNewSession(session); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.repositories.Sessions.Create(&session); err != nil {
		return repoError(c, err, "Study session not found", "", "Server error creating study session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Study session created successfully",
		"session": session,
	})
}

func (handler *Handler) GetSessions(c *fiber.Ctx) error {
	date, err := parseDateQuery(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid date")
	}

	filter := db.StudySessionFilter{
		UserEmail: c.Params("userEmail"),
		Completed: parseBoolQuery(c.Query("completed")),
		Subject:   c.Query("subject"),
		Date:      date,
	}
	page := parsePageRequest(c)

	sessions, err := handler.repositories.Sessions.ListPage(filter, page.Offset(), page.Limit)
	if err != nil {
		return repoError(c, err, "Study session not found", "", "Server error fetching study sessions")
	}
	total, err := handler.repositories.Sessions.Count(filter)
	if err != nil {
		return repoError(c, err, "Study session not found", "", "Server error fetching study sessions")
	}

	return c.JSON(fiber.Map{
		"sessions":    sessions,
		"totalPages":  totalPages(total, page.Limit),
		"currentPage": page.Page,
		"total":       total,
	})
}

func (handler *Handler) UpdateSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var payload sessionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates, err := payload.updates()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	session, err := handler.repositories.Sessions.Update(id, updates)
	if err != nil {
		return repoError(c, err, "Study session not found", "", "Server error updating study session")
	}

	return c.JSON(fiber.Map{
		"message": "Study session updated successfully",
		"session": session,
	})
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	if err := handler.repositories.Sessions.Delete(id); err != nil {
		return repoError(c, err, "Study session not found", "", "Server error deleting study session")
	}

	return c.JSON(fiber.Map{"message": "Study session deleted successfully"})
}

func (handler *Handler) ToggleSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	session, err := handler.repositories.Sessions.ToggleCompleted(id)
	if err != nil {
		return repoError(c, err, "Study session not found", "", "Server error updating study session")
	}

	state := "incomplete"
	if session.Completed {
		state = "completed"
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Study session marked as %s", state),
		"session": session,
	})
}

func (handler *Handler) GetSessionStats(c *fiber.Ctx) error {
	startDate, err := parseDateQuery(c.Query("startDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid startDate")
	}
	endDate, err := parseDateQuery(c.Query("endDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid endDate")
	}

	stats, err := handler.sessionStats.Build(c.Params("userEmail"), startDate, endDate)
	if err != nil {
		return repoError(c, err, "Study session not found", "", "Server error fetching session statistics")
	}
	return c.JSON(stats)
}
