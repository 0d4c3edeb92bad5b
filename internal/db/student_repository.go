package db

import (
	"github.com/raselhq/studyhub/internal/models"
	"gorm.io/gorm"
)

type StudentRepository struct {
	database *gorm.DB
}

func NewStudentRepository(database *gorm.DB) *StudentRepository {
	return &StudentRepository{database: database}
}

func (repo *StudentRepository) Create(student *models.Student) error {
	return repo.database.Create(student).Error
}

func (repo *StudentRepository) ListAll() ([]models.Student, error) {
	students := make([]models.Student, 0)
	if err := repo.database.Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *StudentRepository) FindByEmail(email string) (models.Student, error) {
	var student models.Student
	if err := repo.database.Where("email = ?", email).First(&student).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (repo *StudentRepository) FindByID(id uint) (models.Student, error) {
	var student models.Student
	if err := repo.database.First(&student, id).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// Update applies a partial field update and returns the updated row.
func (repo *StudentRepository) Update(id uint, updates map[string]any) (models.Student, error) {
	if len(updates) > 0 {
		result := repo.database.Model(&models.Student{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return models.Student{}, result.Error
		}
		if result.RowsAffected == 0 {
			return models.Student{}, gorm.ErrRecordNotFound
		}
	}
	return repo.FindByID(id)
}

func (repo *StudentRepository) Delete(id uint) error {
	result := repo.database.Delete(&models.Student{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
