package api

import (
	"time"

	"github.com/raselhq/studyhub/internal/db"
	"github.com/raselhq/studyhub/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	location *time.Location

	repositories *db.Repositories

	budgetReports    *services.BudgetReportService
	transactionStats *services.TransactionStatsService
	goalStats        *services.GoalStatsService
	sessionStats     *services.SessionStatsService
	overview         *services.OverviewService

	// now is swappable so tests can pin the current-month window.
	now func() time.Time
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:       database,
		location: location,
		now:      time.Now,
	}
	return handler.withDependencies(database)
}
