package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)

	students := app.Group("/students")
	students.Post("/add", handler.AddStudent)
	students.Get("/", handler.GetStudents)
	students.Put("/:id", handler.UpdateStudent)
	students.Delete("/:id", handler.DeleteStudent)

	schedule := app.Group("/schedule")
	schedule.Post("/add", handler.AddSchedule)
	schedule.Get("/:email", handler.GetSchedules)
	schedule.Put("/:id", handler.UpdateSchedule)
	schedule.Delete("/:id", handler.DeleteSchedule)
	schedule.Patch("/:id/attendance", handler.MarkAttendance)

	transactions := app.Group("/transactions")
	transactions.Get("/:userId/stats", handler.GetTransactionStats)
	transactions.Get("/:userId", handler.GetTransactions)
	transactions.Post("/:userId", handler.AddTransaction)
	transactions.Put("/:userId/:transactionId", handler.UpdateTransaction)
	transactions.Delete("/:userId/:transactionId", handler.DeleteTransaction)

	budget := app.Group("/budget")
	budget.Get("/:userId/alerts", handler.GetBudgetAlerts)
	budget.Get("/:userId", handler.GetBudgets)
	budget.Post("/:userId", handler.SaveBudget)
	budget.Delete("/:userId/:budgetId", handler.DeleteBudget)

	goals := app.Group("/goals")
	goals.Post("/", handler.CreateGoal)
	goals.Get("/:userEmail/stats", handler.GetGoalStats)
	goals.Get("/:userEmail", handler.GetGoals)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)
	goals.Patch("/:id/toggle", handler.ToggleGoal)

	sessions := app.Group("/study-sessions")
	sessions.Post("/", handler.CreateSession)
	sessions.Get("/:userEmail/stats", handler.GetSessionStats)
	sessions.Get("/:userEmail", handler.GetSessions)
	sessions.Put("/:id", handler.UpdateSession)
	sessions.Delete("/:id", handler.DeleteSession)
	sessions.Patch("/:id/toggle", handler.ToggleSession)

	app.Get("/overview/:userEmail", handler.GetOverview)
}
