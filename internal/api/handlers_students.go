package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
	"gorm.io/gorm"
)

type studentPayload struct {
	FullName  *string `json:"fullName"`
	Gender    *string `json:"gender"`
	Phone     *string `json:"phone"`
	College   *string `json:"college"`
	StudentID *string `json:"studentId"`
	Major     *string `json:"major"`
	Year      *string `json:"year"`
	Email     *string `json:"email"`
}

func (payload studentPayload) updates() map[string]any {
	updates := make(map[string]any)
	setIfPresent := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setIfPresent("full_name", payload.FullName)
	setIfPresent("gender", payload.Gender)
	setIfPresent("phone", payload.Phone)
	setIfPresent("college", payload.College)
	setIfPresent("student_id", payload.StudentID)
	setIfPresent("major", payload.Major)
	setIfPresent("year", payload.Year)
	setIfPresent("email", payload.Email)
	return updates
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func (handler *Handler) AddStudent(c *fiber.Ctx) error {
	var payload studentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	student := models.Student{
		FullName:  stringValue(payload.FullName),
		Gender:    stringValue(payload.Gender),
		Phone:     stringValue(payload.Phone),
		College:   stringValue(payload.College),
		StudentID: stringValue(payload.StudentID),
		Major:     stringValue(payload.Major),
		Year:      stringValue(payload.Year),
		Email:     stringValue(payload.Email),
	}

	if err := services.ValidateNewStudent(student); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.repositories.Students.Create(&student); err != nil {
		return repoError(c, err,
			"Student not found",
			"A student with that studentId or email already exists",
			"Server error adding student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": student,
	})
}

// GetStudents lists everyone, or a single student when ?email= is set.
func (handler *Handler) GetStudents(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		student, err := handler.repositories.Students.FindByEmail(email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apiError(c, fiber.StatusNotFound, "Student not found")
			}
			return repoError(c, err, "Student not found", "", "Server error fetching students")
		}
		return c.JSON(student)
	}

	students, err := handler.repositories.Students.ListAll()
	if err != nil {
		return repoError(c, err, "Student not found", "", "Server error fetching students")
	}
	return c.JSON(students)
}

func (handler *Handler) UpdateStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var payload studentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	student, err := handler.repositories.Students.Update(id, payload.updates())
	if err != nil {
		return repoError(c, err,
			"Student not found",
			"A student with that studentId or email already exists",
			"Server error updating student")
	}

	return c.JSON(fiber.Map{
		"message": "Student updated",
		"student": student,
	})
}

func (handler *Handler) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	if err := handler.repositories.Students.Delete(id); err != nil {
		return repoError(c, err, "Student not found", "", "Server error deleting student")
	}

	return c.JSON(fiber.Map{"message": "Student deleted"})
}
