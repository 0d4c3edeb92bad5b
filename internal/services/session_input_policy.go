package services

import (
	"strings"

	"github.com/raselhq/studyhub/internal/models"
)

func ValidateNewSession(session models.StudySession) error {
	if strings.TrimSpace(session.Subject) == "" ||
		strings.TrimSpace(session.Topic) == "" ||
		session.Date.IsZero() ||
		strings.TrimSpace(session.StartTime) == "" ||
		session.Duration == 0 ||
		strings.TrimSpace(session.UserEmail) == "" {
		return NewValidationError("Subject, topic, date, startTime, duration, and userEmail are required")
	}

	if err := ValidateStudySubject(session.Subject); err != nil {
		return err
	}
	if err := ValidateSessionDuration(session.Duration); err != nil {
		return err
	}
	return ValidateSessionRating(session.Rating)
}

func ValidateSessionDuration(duration float64) error {
	if duration < models.MinSessionDurationHours || duration > models.MaxSessionDurationHours {
		return NewValidationError("Duration must be between 0.5 and 8 hours")
	}
	return nil
}

func ValidateSessionRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return NewValidationError("Rating must be between 1 and 5")
	}
	return nil
}
