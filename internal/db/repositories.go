package db

import "gorm.io/gorm"

type Repositories struct {
	Students     *StudentRepository
	Schedules    *ScheduleRepository
	Transactions *TransactionRepository
	Budgets      *BudgetRepository
	Goals        *GoalRepository
	Sessions     *StudySessionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Students:     NewStudentRepository(database),
		Schedules:    NewScheduleRepository(database),
		Transactions: NewTransactionRepository(database),
		Budgets:      NewBudgetRepository(database),
		Goals:        NewGoalRepository(database),
		Sessions:     NewStudySessionRepository(database),
	}
}
