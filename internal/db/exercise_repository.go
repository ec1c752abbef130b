package db

import (
	"github.com/fisiotrack/fisiotrack/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) List() ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.Order("name ASC, id ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ExerciseRepository) CreateBatch(exercises []models.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return repo.database.Create(&exercises).Error
}

// SaveResponses replaces the checklist stored for an assessment.
func (repo *ExerciseRepository) SaveResponses(assessmentID string, responses []models.ExerciseResponse) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).Delete(&models.ExerciseResponse{}).Error; err != nil {
			return err
		}
		if len(responses) == 0 {
			return nil
		}
		return tx.Create(&responses).Error
	})
}

func (repo *ExerciseRepository) ListResponses(assessmentID string) ([]models.ExerciseResponse, error) {
	responses := make([]models.ExerciseResponse, 0)
	if err := repo.database.
		Where("assessment_id = ?", assessmentID).
		Order("exercise_name ASC, id ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
