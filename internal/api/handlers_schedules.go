package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
)

type schedulePayload struct {
	Date             *string `json:"date"`
	Subject          *string `json:"subject"`
	StartTime        *string `json:"startTime"`
	EndTime          *string `json:"endTime"`
	Day              *string `json:"day"`
	Room             *string `json:"room"`
	Color            *string `json:"color"`
	CreatedBy        *string `json:"createdBy"`
	Notification     *bool   `json:"notification"`
	NotificationTime *int    `json:"notificationTime"`
}

func (payload schedulePayload) updates() (map[string]any, error) {
	updates := make(map[string]any)
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIfPresent("date", payload.Date)
	setIfPresent("subject", payload.Subject)
	setIfPresent("start_time", payload.StartTime)
	setIfPresent("end_time", payload.EndTime)
	setIfPresent("room", payload.Room)
	setIfPresent("color", payload.Color)
	setIfPresent("created_by", payload.CreatedBy)
	if payload.Day != nil {
		if err := services.ValidateScheduleDay(*payload.Day); err != nil {
			return nil, err
		}
		updates["day"] = *payload.Day
	}
	if payload.Notification != nil {
		updates["notification"] = *payload.Notification
	}
	if payload.NotificationTime != nil {
		updates["notification_time"] = *payload.NotificationTime
	}
	return updates, nil
}

func (handler *Handler) AddSchedule(c *fiber.Ctx) error {
	var payload schedulePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	schedule := models.Schedule{
		Date:             stringValue(payload.Date),
		Subject:          stringValue(payload.Subject),
		StartTime:        stringValue(payload.StartTime),
		EndTime:          stringValue(payload.EndTime),
		Day:              stringValue(payload.Day),
		Room:             stringValue(payload.Room),
		Color:            "blue",
		Attendance:       models.AttendancePending,
		CreatedBy:        stringValue(payload.CreatedBy),
		Notification:     false,
		NotificationTime: 15,
	}
	if payload.Color != nil {
		schedule.Color = *payload.Color
	}
	if payload.Notification != nil {
		schedule.Notification = *payload.Notification
	}
	if payload.NotificationTime != nil {
		schedule.NotificationTime = *payload.NotificationTime
	}

	if err := services.ValidateNewSchedule(schedule); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.repositories.Schedules.Create(&schedule); err != nil {
		return repoError(c, err, "Class not found", "", "Server error adding class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Class added successfully",
		"schedule": schedule,
	})
}

// GetSchedules lists the entries owned by the email in the path,
// optionally narrowed to one day.
func (handler *Handler) GetSchedules(c *fiber.Ctx) error {
	email := c.Params("email")

	day := c.Query("day")
	if day != "" {
		if err := services.ValidateScheduleDay(day); err != nil {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	schedules, err := handler.repositories.Schedules.ListByOwner(email, day)
	if err != nil {
		return repoError(c, err, "Class not found", "", "Server error fetching schedules")
	}
	return c.JSON(schedules)
}

func (handler *Handler) UpdateSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var payload schedulePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates, err := payload.updates()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	schedule, err := handler.repositories.Schedules.Update(id, updates)
	if err != nil {
		return repoError(c, err, "Class not found", "", "Server error updating class")
	}

	return c.JSON(fiber.Map{
		"message":  "Class updated",
		"schedule": schedule,
	})
}

func (handler *Handler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	if err := handler.repositories.Schedules.Delete(id); err != nil {
		return repoError(c, err, "Class not found", "", "Server error deleting class")
	}

	return c.JSON(fiber.Map{"message": "Class deleted"})
}

// MarkAttendance moves the attendance state; any of the three values is
// reachable from any other, everything else is rejected untouched.
func (handler *Handler) MarkAttendance(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var payload struct {
		Attendance string `json:"attendance"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := services.ValidateAttendanceStatus(payload.Attendance); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	schedule, err := handler.repositories.Schedules.SetAttendance(id, payload.Attendance)
	if err != nil {
		return repoError(c, err, "Class not found", "", "Server error updating class")
	}

	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Attendance marked as %s", payload.Attendance),
		"schedule": schedule,
	})
}
