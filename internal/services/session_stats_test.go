package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/raselhq/studyhub/internal/models"
)

type stubSessionReader struct {
	sessions []models.StudySession
	err      error
}

func (stub *stubSessionReader) ListByUserRange(string, *time.Time, *time.Time) ([]models.StudySession, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.StudySession, len(stub.sessions))
	copy(result, stub.sessions)
	return result, nil
}

func session(subject string, hours float64, completed bool, rating *int) models.StudySession {
	return models.StudySession{
		Subject:   subject,
		Topic:     "topic",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		Duration:  hours,
		Completed: completed,
		Rating:    rating,
		UserEmail: "u1@example.com",
	}
}

func ratingOf(value int) *int {
	return &value
}

func TestSessionStatsAveragesRatedSessionsOnly(t *testing.T) {
	reader := &stubSessionReader{sessions: []models.StudySession{
		session("Physics", 2, true, ratingOf(5)),
		session("Physics", 1.5, true, ratingOf(3)),
		session("Physics", 1, false, nil),
		session("English", 0.5, false, nil),
	}}
	service := NewSessionStatsService(reader)

	stats, err := service.Build("u1@example.com", nil, nil)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	if stats.TotalSessions != 4 || stats.CompletedSessions != 2 {
		t.Fatalf("expected 4 sessions with 2 completed, got %d/%d", stats.TotalSessions, stats.CompletedSessions)
	}
	if stats.TotalHours != 5 {
		t.Fatalf("expected 5 total hours, got %v", stats.TotalHours)
	}
	if stats.CompletionPercentage != 50 {
		t.Fatalf("expected completion percentage 50, got %d", stats.CompletionPercentage)
	}

	if len(stats.BySubject) != 2 || stats.BySubject[0].Subject != "English" {
		t.Fatalf("expected subjects sorted by name, got %+v", stats.BySubject)
	}

	english := stats.BySubject[0]
	if english.AverageRating != 0 {
		t.Fatalf("unrated subject must average 0, got %v", english.AverageRating)
	}

	physics := stats.BySubject[1]
	if physics.TotalSessions != 3 || physics.TotalHours != 4.5 || physics.CompletedSessions != 2 {
		t.Fatalf("unexpected physics entry: %+v", physics)
	}
	if math.Abs(physics.AverageRating-4) > 1e-9 {
		t.Fatalf("expected rated-only average 4, got %v", physics.AverageRating)
	}
}

func TestSessionStatsEmpty(t *testing.T) {
	service := NewSessionStatsService(&stubSessionReader{})

	stats, err := service.Build("u1@example.com", nil, nil)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if stats.TotalSessions != 0 || stats.TotalHours != 0 || stats.CompletionPercentage != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestSessionStatsPropagatesReaderErrors(t *testing.T) {
	readErr := errors.New("store down")
	service := NewSessionStatsService(&stubSessionReader{err: readErr})
	if _, err := service.Build("u1@example.com", nil, nil); !errors.Is(err, readErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
