package services

import (
	"fmt"
	"strings"

	"github.com/raselhq/studyhub/internal/models"
)

func ValidateNewSchedule(schedule models.Schedule) error {
	missing := make([]string, 0)
	appendMissing := func(field string, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	appendMissing("date", schedule.Date)
	appendMissing("subject", schedule.Subject)
	appendMissing("startTime", schedule.StartTime)
	appendMissing("endTime", schedule.EndTime)
	appendMissing("day", schedule.Day)
	appendMissing("createdBy", schedule.CreatedBy)

	if len(missing) > 0 {
		return NewValidationError(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	return ValidateScheduleDay(schedule.Day)
}

func ValidateScheduleDay(day string) error {
	if !models.IsScheduleDay(day) {
		return NewValidationError("Invalid day")
	}
	return nil
}

func ValidateAttendanceStatus(status string) error {
	if !models.IsAttendanceStatus(status) {
		return NewValidationError("Invalid attendance status")
	}
	return nil
}
