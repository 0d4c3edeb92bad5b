package services

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Overview is the dashboard summary for one user: the owner identifier
// doubles as the budget owner key, matching how the frontend stores it.
type Overview struct {
	Goals    GoalStats      `json:"goals"`
	Sessions SessionStats   `json:"sessions"`
	Budgets  []BudgetReport `json:"budgets"`
}

type OverviewService struct {
	goals    *GoalStatsService
	sessions *SessionStatsService
	budgets  *BudgetReportService
}

func NewOverviewService(goals *GoalStatsService, sessions *SessionStatsService, budgets *BudgetReportService) *OverviewService {
	return &OverviewService{
		goals:    goals,
		sessions: sessions,
		budgets:  budgets,
	}
}

func (service *OverviewService) Build(userEmail string, now time.Time) (Overview, error) {
	var overview Overview

	group := errgroup.Group{}
	group.Go(func() error {
		var err error
		overview.Goals, err = service.goals.Build(userEmail)
		return err
	})
	group.Go(func() error {
		var err error
		overview.Sessions, err = service.sessions.Build(userEmail, nil, nil)
		return err
	})
	group.Go(func() error {
		var err error
		overview.Budgets, err = service.budgets.BuildReports(userEmail, now)
		return err
	})
	if err := group.Wait(); err != nil {
		return Overview{}, err
	}

	return overview, nil
}
