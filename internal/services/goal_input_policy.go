package services

import (
	"strings"

	"github.com/raselhq/studyhub/internal/models"
)

func ValidateNewGoal(goal models.Goal) error {
	if strings.TrimSpace(goal.Title) == "" ||
		strings.TrimSpace(goal.Subject) == "" ||
		goal.Deadline.IsZero() ||
		strings.TrimSpace(goal.UserEmail) == "" {
		return NewValidationError("Title, subject, deadline, and userEmail are required")
	}

	if err := ValidateStudySubject(goal.Subject); err != nil {
		return err
	}
	if err := ValidateGoalPriority(goal.Priority); err != nil {
		return err
	}
	return ValidateGoalProgress(goal.Progress)
}

func ValidateStudySubject(subject string) error {
	if !models.IsStudySubject(subject) {
		return NewValidationError("Invalid subject")
	}
	return nil
}

func ValidateGoalPriority(priority string) error {
	if !models.IsGoalPriority(priority) {
		return NewValidationError("Invalid priority")
	}
	return nil
}

func ValidateGoalProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return NewValidationError("Progress must be between 0 and 100")
	}
	return nil
}
