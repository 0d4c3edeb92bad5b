package services

import (
	"sort"
	"time"

	"github.com/raselhq/studyhub/internal/models"
)

type StatsSessionReader interface {
	ListByUserRange(userEmail string, from *time.Time, to *time.Time) ([]models.StudySession, error)
}

type SessionSubjectStats struct {
	Subject           string  `json:"subject"`
	TotalSessions     int     `json:"totalSessions"`
	TotalHours        float64 `json:"totalHours"`
	CompletedSessions int     `json:"completedSessions"`
	AverageRating     float64 `json:"averageRating"`
}

type SessionStats struct {
	BySubject            []SessionSubjectStats `json:"bySubject"`
	TotalSessions        int                   `json:"totalSessions"`
	TotalHours           float64               `json:"totalHours"`
	CompletedSessions    int                   `json:"completedSessions"`
	CompletionPercentage int                   `json:"completionPercentage"`
}

type SessionStatsService struct {
	sessions StatsSessionReader
}

func NewSessionStatsService(sessions StatsSessionReader) *SessionStatsService {
	return &SessionStatsService{sessions: sessions}
}

func (service *SessionStatsService) Build(userEmail string, from *time.Time, to *time.Time) (SessionStats, error) {
	sessions, err := service.sessions.ListByUserRange(userEmail, from, to)
	if err != nil {
		return SessionStats{}, err
	}

	grouped := make(map[string]*SessionSubjectStats)
	ratingSums := make(map[string]float64)
	ratingCounts := make(map[string]int)
	totalHours := 0.0
	completed := 0

	for _, session := range sessions {
		entry, exists := grouped[session.Subject]
		if !exists {
			entry = &SessionSubjectStats{Subject: session.Subject}
			grouped[session.Subject] = entry
		}
		entry.TotalSessions++
		entry.TotalHours += session.Duration
		totalHours += session.Duration
		if session.Completed {
			entry.CompletedSessions++
			completed++
		}
		// Unrated sessions stay out of the average.
		if session.Rating != nil {
			ratingSums[session.Subject] += float64(*session.Rating)
			ratingCounts[session.Subject]++
		}
	}

	bySubject := make([]SessionSubjectStats, 0, len(grouped))
	for subject, entry := range grouped {
		if ratingCounts[subject] > 0 {
			entry.AverageRating = ratingSums[subject] / float64(ratingCounts[subject])
		}
		bySubject = append(bySubject, *entry)
	}
	sort.Slice(bySubject, func(i, j int) bool {
		return bySubject[i].Subject < bySubject[j].Subject
	})

	return SessionStats{
		BySubject:            bySubject,
		TotalSessions:        len(sessions),
		TotalHours:           totalHours,
		CompletedSessions:    completed,
		CompletionPercentage: CompletionPercentage(completed, len(sessions)),
	}, nil
}
