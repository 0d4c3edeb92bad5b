package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/raselhq/studyhub/internal/models"
	"github.com/raselhq/studyhub/internal/services"
)

func goalBody(owner string, title string, subject string) map[string]any {
	return map[string]any{
		"userEmail": owner,
		"title":     title,
		"subject":   subject,
		"deadline":  "2026-06-01",
	}
}

func createGoal(t *testing.T, app *fiber.App, body map[string]any) models.Goal {
	t.Helper()
	response := performJSON(t, app, http.MethodPost, "/goals/", body)
	requireStatus(t, response, http.StatusCreated)

	var result struct {
		Message string      `json:"message"`
		Goal    models.Goal `json:"goal"`
	}
	decodeJSON(t, response, &result)
	if result.Message != "Goal created successfully" {
		t.Fatalf("unexpected create message: %q", result.Message)
	}
	return result.Goal
}

func TestCreateGoalDefaultsToMediumPriority(t *testing.T) {
	app, _ := newTestApp(t)

	created := createGoal(t, app, goalBody("rahim@example.com", "Pass finals", "Physics"))
	if created.Priority != models.PriorityMedium {
		t.Fatalf("expected medium priority by default, got %q", created.Priority)
	}
	if created.Completed || created.Progress != 0 {
		t.Fatalf("expected fresh goal state, got %+v", created)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(body map[string]any) { delete(body, "title") },
			message: "Title, subject, deadline, and userEmail are required",
		},
		{
			name:    "unknown subject",
			mutate:  func(body map[string]any) { body["subject"] = "Astrology" },
			message: "Invalid subject",
		},
		{
			name:    "unknown priority",
			mutate:  func(body map[string]any) { body["priority"] = "urgent" },
			message: "Invalid priority",
		},
		{
			name:    "progress out of range",
			mutate:  func(body map[string]any) { body["progress"] = 101 },
			message: "Progress must be between 0 and 100",
		},
		{
			name:    "garbled deadline",
			mutate:  func(body map[string]any) { body["deadline"] = "next week" },
			message: "Invalid deadline",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			body := goalBody("rahim@example.com", "Pass finals", "Physics")
			testCase.mutate(body)
			response := performJSON(t, app, http.MethodPost, "/goals/", body)
			requireStatus(t, response, http.StatusBadRequest)
			if message := readMessage(t, response); message != testCase.message {
				t.Fatalf("expected %q, got %q", testCase.message, message)
			}
		})
	}
}

func TestToggleGoalRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	created := createGoal(t, app, goalBody("rahim@example.com", "Pass finals", "Physics"))
	path := fmt.Sprintf("/goals/%d/toggle", created.ID)

	response := performJSON(t, app, http.MethodPatch, path, nil)
	requireStatus(t, response, http.StatusOK)
	var toggled struct {
		Message string      `json:"message"`
		Goal    models.Goal `json:"goal"`
	}
	decodeJSON(t, response, &toggled)
	if toggled.Message != "Goal marked as completed" || !toggled.Goal.Completed {
		t.Fatalf("expected completed after first toggle, got %+v", toggled)
	}

	// A second toggle restores the original state.
	response = performJSON(t, app, http.MethodPatch, path, nil)
	requireStatus(t, response, http.StatusOK)
	decodeJSON(t, response, &toggled)
	if toggled.Message != "Goal marked as incomplete" || toggled.Goal.Completed {
		t.Fatalf("expected incomplete after second toggle, got %+v", toggled)
	}
}

func TestGetGoalsOrderingAndFilters(t *testing.T) {
	app, _ := newTestApp(t)

	early := goalBody("rahim@example.com", "Lab report", "Chemistry")
	early["deadline"] = "2026-04-01"
	early["priority"] = models.PriorityLow
	createGoal(t, app, early)

	urgent := goalBody("rahim@example.com", "Midterm prep", "Physics")
	urgent["deadline"] = "2026-05-01"
	urgent["priority"] = models.PriorityHigh
	createGoal(t, app, urgent)

	relaxed := goalBody("rahim@example.com", "Reading list", "English")
	relaxed["deadline"] = "2026-05-01"
	relaxed["priority"] = models.PriorityLow
	createGoal(t, app, relaxed)

	createGoal(t, app, goalBody("karim@example.com", "Other owner", "Biology"))

	response := performJSON(t, app, http.MethodGet, "/goals/rahim@example.com", nil)
	requireStatus(t, response, http.StatusOK)
	var page struct {
		Goals       []models.Goal `json:"goals"`
		TotalPages  int           `json:"totalPages"`
		CurrentPage int           `json:"currentPage"`
		Total       int64         `json:"total"`
	}
	decodeJSON(t, response, &page)

	if page.Total != 3 || page.TotalPages != 1 || page.CurrentPage != 1 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	// Deadline first, then priority breaks the tie.
	wantTitles := []string{"Lab report", "Midterm prep", "Reading list"}
	for index, want := range wantTitles {
		if page.Goals[index].Title != want {
			t.Fatalf("position %d: expected %q, got %q", index, want, page.Goals[index].Title)
		}
	}

	response = performJSON(t, app, http.MethodGet, "/goals/rahim@example.com?priority=low&completed=false", nil)
	requireStatus(t, response, http.StatusOK)
	decodeJSON(t, response, &page)
	if page.Total != 2 {
		t.Fatalf("expected 2 low-priority open goals, got %d", page.Total)
	}
}

func TestGoalStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	first := createGoal(t, app, goalBody("rahim@example.com", "Pass finals", "Physics"))
	createGoal(t, app, goalBody("rahim@example.com", "Problem sets", "Physics"))
	createGoal(t, app, goalBody("rahim@example.com", "Essay", "English"))

	response := performJSON(t, app, http.MethodPatch, fmt.Sprintf("/goals/%d/toggle", first.ID), nil)
	requireStatus(t, response, http.StatusOK)
	response.Body.Close()

	response = performJSON(t, app, http.MethodGet, "/goals/rahim@example.com/stats", nil)
	requireStatus(t, response, http.StatusOK)
	var stats services.GoalStats
	decodeJSON(t, response, &stats)

	if stats.TotalGoals != 3 || stats.CompletedGoals != 1 || stats.ProgressPercentage != 33 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(stats.BySubject) != 2 || stats.BySubject[0].Subject != "English" || stats.BySubject[1].Completed != 1 {
		t.Fatalf("unexpected subject breakdown: %+v", stats.BySubject)
	}
}

func TestGoalNotFoundAndBadID(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPatch, "/goals/77/toggle", nil)
	requireStatus(t, response, http.StatusNotFound)
	if message := readMessage(t, response); message != "Goal not found" {
		t.Fatalf("unexpected message: %q", message)
	}

	response = performJSON(t, app, http.MethodDelete, "/goals/abc", nil)
	requireStatus(t, response, http.StatusBadRequest)
	if message := readMessage(t, response); message != "Invalid goal id" {
		t.Fatalf("unexpected message: %q", message)
	}
}
