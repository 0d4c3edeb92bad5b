package services

import (
	"math"
	"sort"

	"github.com/raselhq/studyhub/internal/models"
)

type StatsGoalReader interface {
	ListByUser(userEmail string) ([]models.Goal, error)
}

type GoalSubjectStats struct {
	Subject         string  `json:"subject"`
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	AverageProgress float64 `json:"averageProgress"`
}

type GoalStats struct {
	BySubject          []GoalSubjectStats `json:"bySubject"`
	TotalGoals         int                `json:"totalGoals"`
	CompletedGoals     int                `json:"completedGoals"`
	ProgressPercentage int                `json:"progressPercentage"`
}

type GoalStatsService struct {
	goals StatsGoalReader
}

func NewGoalStatsService(goals StatsGoalReader) *GoalStatsService {
	return &GoalStatsService{goals: goals}
}

func (service *GoalStatsService) Build(userEmail string) (GoalStats, error) {
	goals, err := service.goals.ListByUser(userEmail)
	if err != nil {
		return GoalStats{}, err
	}

	grouped := make(map[string]*GoalSubjectStats)
	completed := 0
	for _, goal := range goals {
		entry, exists := grouped[goal.Subject]
		if !exists {
			entry = &GoalSubjectStats{Subject: goal.Subject}
			grouped[goal.Subject] = entry
		}
		entry.Total++
		entry.AverageProgress += float64(goal.Progress)
		if goal.Completed {
			entry.Completed++
			completed++
		}
	}

	bySubject := make([]GoalSubjectStats, 0, len(grouped))
	for _, entry := range grouped {
		entry.AverageProgress = entry.AverageProgress / float64(entry.Total)
		bySubject = append(bySubject, *entry)
	}
	sort.Slice(bySubject, func(i, j int) bool {
		return bySubject[i].Subject < bySubject[j].Subject
	})

	return GoalStats{
		BySubject:          bySubject,
		TotalGoals:         len(goals),
		CompletedGoals:     completed,
		ProgressPercentage: CompletionPercentage(completed, len(goals)),
	}, nil
}

// CompletionPercentage rounds completed/total to a whole percent, 0
// when total is zero.
func CompletionPercentage(completed int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
