package db

import (
	"time"

	"github.com/raselhq/studyhub/internal/models"
	"gorm.io/gorm"
)

type TransactionFilter struct {
	UserID    string
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

type TransactionRepository struct {
	database *gorm.DB
}

func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{database: database}
}

func (repo *TransactionRepository) filtered(filter TransactionFilter) *gorm.DB {
	query := repo.database.Model(&models.Transaction{}).Where("user_id = ?", filter.UserID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}

func (repo *TransactionRepository) Create(transaction *models.Transaction) error {
	return repo.database.Create(transaction).Error
}

func (repo *TransactionRepository) ListPage(filter TransactionFilter, offset int, limit int) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.filtered(filter).
		Order("date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *TransactionRepository) Count(filter TransactionFilter) (int64, error) {
	var total int64
	if err := repo.filtered(filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListByUserRange feeds the statistics computation; nil bounds mean an
// open interval on that side.
func (repo *TransactionRepository) ListByUserRange(userID string, from *time.Time, to *time.Time) ([]models.Transaction, error) {
	return repo.ListPage(TransactionFilter{UserID: userID, StartDate: from, EndDate: to}, 0, -1)
}

func (repo *TransactionRepository) ListExpensesSince(userID string, since time.Time) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.
		Where("user_id = ? AND type = ? AND date >= ?", userID, models.TransactionExpense, since).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *TransactionRepository) Update(id uint, userID string, updates map[string]any) (models.Transaction, error) {
	if len(updates) > 0 {
		result := repo.database.Model(&models.Transaction{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if result.Error != nil {
			return models.Transaction{}, result.Error
		}
		if result.RowsAffected == 0 {
			return models.Transaction{}, gorm.ErrRecordNotFound
		}
	}

	var transaction models.Transaction
	if err := repo.database.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

func (repo *TransactionRepository) Delete(id uint, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
