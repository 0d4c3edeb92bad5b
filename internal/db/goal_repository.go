package db

import (
	"github.com/raselhq/studyhub/internal/models"
	"gorm.io/gorm"
)

type GoalFilter struct {
	UserEmail string
	Completed *bool
	Priority  string
}

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) filtered(filter GoalFilter) *gorm.DB {
	query := repo.database.Model(&models.Goal{}).Where("user_email = ?", filter.UserEmail)
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	return query
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) ListPage(filter GoalFilter, offset int, limit int) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.filtered(filter).
		Order(`deadline ASC, CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, id ASC`).
		Offset(offset).
		Limit(limit).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) Count(filter GoalFilter) (int64, error) {
	var total int64
	if err := repo.filtered(filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *GoalRepository) ListByUser(userEmail string) ([]models.Goal, error) {
	return repo.ListPage(GoalFilter{UserEmail: userEmail}, 0, -1)
}

func (repo *GoalRepository) Update(id uint, updates map[string]any) (models.Goal, error) {
	if len(updates) > 0 {
		result := repo.database.Model(&models.Goal{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return models.Goal{}, result.Error
		}
		if result.RowsAffected == 0 {
			return models.Goal{}, gorm.ErrRecordNotFound
		}
	}

	var goal models.Goal
	if err := repo.database.First(&goal, id).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// ToggleCompleted negates the flag inside the store, so two concurrent
// toggles cannot lose an update.
func (repo *GoalRepository) ToggleCompleted(id uint) (models.Goal, error) {
	result := repo.database.Model(&models.Goal{}).
		Where("id = ?", id).
		Update("completed", gorm.Expr("NOT completed"))
	if result.Error != nil {
		return models.Goal{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Goal{}, gorm.ErrRecordNotFound
	}

	var goal models.Goal
	if err := repo.database.First(&goal, id).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (repo *GoalRepository) Delete(id uint) error {
	result := repo.database.Delete(&models.Goal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
