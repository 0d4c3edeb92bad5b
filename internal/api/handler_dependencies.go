package api

import (
	"github.com/raselhq/studyhub/internal/db"
	"github.com/raselhq/studyhub/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.budgetReports = services.NewBudgetReportService(
		handler.repositories.Budgets,
		handler.repositories.Transactions,
		handler.location,
	)
	handler.transactionStats = services.NewTransactionStatsService(handler.repositories.Transactions)
	handler.goalStats = services.NewGoalStatsService(handler.repositories.Goals)
	handler.sessionStats = services.NewSessionStatsService(handler.repositories.Sessions)
	handler.overview = services.NewOverviewService(
		handler.goalStats,
		handler.sessionStats,
		handler.budgetReports,
	)
	return handler
}
