package services

import (
	"fmt"
	"time"

	"github.com/raselhq/studyhub/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	BudgetStatusGood    = "good"
	BudgetStatusWarning = "warning"
	BudgetStatusOver    = "over"
)

const DefaultAlertThreshold = 80

type BudgetReader interface {
	ListByUser(userID string) ([]models.Budget, error)
}

type ExpenseReader interface {
	ListExpensesSince(userID string, since time.Time) ([]models.Transaction, error)
}

// BudgetReport is a budget with its derived figures; none of the
// derived fields are ever persisted.
type BudgetReport struct {
	models.Budget
	Spent      decimal.Decimal `json:"spent"`
	Percentage int64           `json:"percentage"`
	Remaining  decimal.Decimal `json:"remaining"`
	Status     string          `json:"status"`
}

type BudgetAlert struct {
	Category   string          `json:"category"`
	Spent      decimal.Decimal `json:"spent"`
	Limit      decimal.Decimal `json:"limit"`
	Percentage int64           `json:"percentage"`
	Message    string          `json:"message"`
}

type BudgetReportService struct {
	budgets  BudgetReader
	expenses ExpenseReader
	location *time.Location
}

func NewBudgetReportService(budgets BudgetReader, expenses ExpenseReader, location *time.Location) *BudgetReportService {
	if location == nil {
		location = time.UTC
	}
	return &BudgetReportService{
		budgets:  budgets,
		expenses: expenses,
		location: location,
	}
}

// BuildReports computes current-month utilization for every budget the
// user owns, in store order.
func (service *BudgetReportService) BuildReports(userID string, now time.Time) ([]BudgetReport, error) {
	monthStart := MonthStart(now, service.location)

	var budgets []models.Budget
	var expenses []models.Transaction

	group := errgroup.Group{}
	group.Go(func() error {
		var err error
		budgets, err = service.budgets.ListByUser(userID)
		return err
	})
	group.Go(func() error {
		var err error
		expenses, err = service.expenses.ListExpensesSince(userID, monthStart)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	spentByCategory := SumExpensesByCategory(expenses)

	reports := make([]BudgetReport, 0, len(budgets))
	for _, budget := range budgets {
		spent := spentByCategory[budget.Category]
		percentage := BudgetPercentage(spent, budget.Limit)
		reports = append(reports, BudgetReport{
			Budget:     budget,
			Spent:      spent,
			Percentage: percentage,
			Remaining:  budget.Limit.Sub(spent),
			Status:     BudgetStatus(percentage),
		})
	}
	return reports, nil
}

// BuildAlerts keeps the reports whose percentage reaches the threshold,
// preserving report order.
func (service *BudgetReportService) BuildAlerts(userID string, threshold int64, now time.Time) ([]BudgetAlert, error) {
	reports, err := service.BuildReports(userID, now)
	if err != nil {
		return nil, err
	}

	alerts := make([]BudgetAlert, 0)
	for _, report := range reports {
		if report.Percentage < threshold {
			continue
		}
		alerts = append(alerts, BudgetAlert{
			Category:   report.Category,
			Spent:      report.Spent,
			Limit:      report.Limit,
			Percentage: report.Percentage,
			Message:    budgetAlertMessage(report),
		})
	}
	return alerts, nil
}

func SumExpensesByCategory(expenses []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(expenses))
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}
	return totals
}

// BudgetPercentage rounds spent/limit to a whole percent; a
// non-positive limit yields 0 instead of a division error.
func BudgetPercentage(spent decimal.Decimal, limit decimal.Decimal) int64 {
	if limit.Sign() <= 0 {
		return 0
	}
	return spent.Div(limit).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func BudgetStatus(percentage int64) string {
	switch {
	case percentage > 100:
		return BudgetStatusOver
	case percentage > 80:
		return BudgetStatusWarning
	default:
		return BudgetStatusGood
	}
}

func budgetAlertMessage(report BudgetReport) string {
	if report.Percentage >= 100 {
		overspend := report.Spent.Sub(report.Limit)
		return fmt.Sprintf("You've exceeded your %s budget by $%s", report.Category, overspend.StringFixed(2))
	}
	return fmt.Sprintf("You've used %d%% of your %s budget", report.Percentage, report.Category)
}
