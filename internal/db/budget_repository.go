package db

import (
	"github.com/raselhq/studyhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepository struct {
	database *gorm.DB
}

func NewBudgetRepository(database *gorm.DB) *BudgetRepository {
	return &BudgetRepository{database: database}
}

func (repo *BudgetRepository) ListByUser(userID string) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// Upsert writes the budget in one statement keyed on (user_id,
// category), so concurrent saves for the same key cannot create
// duplicates. The updated row is loaded back into budget.
func (repo *BudgetRepository) Upsert(budget *models.Budget) error {
	if err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.Assignments(map[string]any{
			"limit_amount": budget.Limit,
			"period":       budget.Period,
			"updated_at":   gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(budget).Error; err != nil {
		return err
	}

	return repo.database.
		Where("user_id = ? AND category = ?", budget.UserID, budget.Category).
		First(budget).Error
}

func (repo *BudgetRepository) Delete(id uint, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
