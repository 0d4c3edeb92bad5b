package db

import (
	"time"

	"github.com/raselhq/studyhub/internal/models"
	"gorm.io/gorm"
)

type StudySessionFilter struct {
	UserEmail string
	Completed *bool
	Subject   string
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

type StudySessionRepository struct {
	database *gorm.DB
}

func NewStudySessionRepository(database *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{database: database}
}

func (repo *StudySessionRepository) filtered(filter StudySessionFilter) *gorm.DB {
	query := repo.database.Model(&models.StudySession{}).Where("user_email = ?", filter.UserEmail)
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}

func (repo *StudySessionRepository) Create(session *models.StudySession) error {
	return repo.database.Create(session).Error
}

func (repo *StudySessionRepository) ListPage(filter StudySessionFilter, offset int, limit int) ([]models.StudySession, error) {
	sessions := make([]models.StudySession, 0)
	if err := repo.filtered(filter).
		Order("date ASC, start_time ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *StudySessionRepository) Count(filter StudySessionFilter) (int64, error) {
	var total int64
	if err := repo.filtered(filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *StudySessionRepository) ListByUserRange(userEmail string, from *time.Time, to *time.Time) ([]models.StudySession, error) {
	return repo.ListPage(StudySessionFilter{UserEmail: userEmail, StartDate: from, EndDate: to}, 0, -1)
}

func (repo *StudySessionRepository) Update(id uint, updates map[string]any) (models.StudySession, error) {
	if len(updates) > 0 {
		result := repo.database.Model(&models.StudySession{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return models.StudySession{}, result.Error
		}
		if result.RowsAffected == 0 {
			return models.StudySession{}, gorm.ErrRecordNotFound
		}
	}

	var session models.StudySession
	if err := repo.database.First(&session, id).Error; err != nil {
		return models.StudySession{}, err
	}
	return session, nil
}

func (repo *StudySessionRepository) ToggleCompleted(id uint) (models.StudySession, error) {
	result := repo.database.Model(&models.StudySession{}).
		Where("id = ?", id).
		Update("completed", gorm.Expr("NOT completed"))
	if result.Error != nil {
		return models.StudySession{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StudySession{}, gorm.ErrRecordNotFound
	}

	var session models.StudySession
	if err := repo.database.First(&session, id).Error; err != nil {
		return models.StudySession{}, err
	}
	return session, nil
}

func (repo *StudySessionRepository) Delete(id uint) error {
	result := repo.database.Delete(&models.StudySession{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
