package db

import (
	"github.com/raselhq/studyhub/internal/models"
	"gorm.io/gorm"
)

// scheduleDayOrder sorts the day enum by weekday position instead of
// alphabetically.
const scheduleDayOrder = `CASE day
  WHEN 'monday' THEN 1
  WHEN 'tuesday' THEN 2
  WHEN 'wednesday' THEN 3
  WHEN 'thursday' THEN 4
  WHEN 'friday' THEN 5
  WHEN 'saturday' THEN 6
  WHEN 'sunday' THEN 7
  ELSE 8 END, start_time ASC, id ASC`

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

func (repo *ScheduleRepository) Create(schedule *models.Schedule) error {
	return repo.database.Create(schedule).Error
}

func (repo *ScheduleRepository) ListByOwner(email string, day string) ([]models.Schedule, error) {
	query := repo.database.Where("created_by = ?", email)
	if day != "" {
		query = query.Where("day = ?", day)
	}

	schedules := make([]models.Schedule, 0)
	if err := query.Order(scheduleDayOrder).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *ScheduleRepository) FindByID(id uint) (models.Schedule, error) {
	var schedule models.Schedule
	if err := repo.database.First(&schedule, id).Error; err != nil {
		return models.Schedule{}, err
	}
	return schedule, nil
}

func (repo *ScheduleRepository) Update(id uint, updates map[string]any) (models.Schedule, error) {
	if len(updates) > 0 {
		result := repo.database.Model(&models.Schedule{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return models.Schedule{}, result.Error
		}
		if result.RowsAffected == 0 {
			return models.Schedule{}, gorm.ErrRecordNotFound
		}
	}
	return repo.FindByID(id)
}

func (repo *ScheduleRepository) SetAttendance(id uint, status string) (models.Schedule, error) {
	result := repo.database.Model(&models.Schedule{}).Where("id = ?", id).Update("attendance", status)
	if result.Error != nil {
		return models.Schedule{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Schedule{}, gorm.ErrRecordNotFound
	}
	return repo.FindByID(id)
}

func (repo *ScheduleRepository) Delete(id uint) error {
	result := repo.database.Delete(&models.Schedule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
