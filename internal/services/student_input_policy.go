package services

import (
	"fmt"
	"strings"

	"github.com/raselhq/studyhub/internal/models"
)

// ValidateNewStudent requires every profile field to be present.
func ValidateNewStudent(student models.Student) error {
	missing := make([]string, 0)
	appendMissing := func(field string, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	appendMissing("fullName", student.FullName)
	appendMissing("gender", student.Gender)
	appendMissing("phone", student.Phone)
	appendMissing("college", student.College)
	appendMissing("studentId", student.StudentID)
	appendMissing("major", student.Major)
	appendMissing("year", student.Year)
	appendMissing("email", student.Email)

	if len(missing) > 0 {
		return NewValidationError(fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}
	return nil
}
