package db

import (
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	database *gorm.DB
}

func NewAssessmentRepository(database *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{database: database}
}

func (repo *AssessmentRepository) Create(assessment *models.Assessment) error {
	return repo.database.Create(assessment).Error
}

func (repo *AssessmentRepository) FindByID(assessmentID string) (models.Assessment, error) {
	var assessment models.Assessment
	if err := repo.database.First(&assessment, "id = ?", assessmentID).Error; err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

func (repo *AssessmentRepository) FindByShareToken(token string) (models.Assessment, error) {
	var assessment models.Assessment
	if err := repo.database.First(&assessment, "share_token = ?", token).Error; err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

func (repo *AssessmentRepository) UpdateByID(assessmentID string, updates map[string]any) error {
	return repo.database.Model(&models.Assessment{}).Where("id = ?", assessmentID).Updates(updates).Error
}

func (repo *AssessmentRepository) ListPending() ([]models.Assessment, error) {
	return repo.list(repo.database.
		Where("is_completed = ? AND is_sent_to_patient = ?", false, false).
		Order("created_at DESC, id DESC"))
}

func (repo *AssessmentRepository) ListSent() ([]models.Assessment, error) {
	return repo.list(repo.database.
		Where("is_completed = ? AND is_sent_to_patient = ?", false, true).
		Order("created_at DESC, id DESC"))
}

func (repo *AssessmentRepository) ListCompleted() ([]models.Assessment, error) {
	return repo.list(repo.database.
		Where("is_completed = ?", true).
		Order("completed_at DESC, id DESC"))
}

func (repo *AssessmentRepository) ListByPatient(patientID string) ([]models.Assessment, error) {
	return repo.list(repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at DESC, id DESC"))
}

func (repo *AssessmentRepository) list(query *gorm.DB) ([]models.Assessment, error) {
	assessments := make([]models.Assessment, 0)
	if err := query.Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

// Complete inserts the response and flips the completion flags as one
// transaction, so the two records cannot diverge.
func (repo *AssessmentRepository) Complete(assessmentID string, response *models.AssessmentResponse, completedAt time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(response).Error; err != nil {
			return err
		}
		return tx.Model(&models.Assessment{}).Where("id = ?", assessmentID).Updates(map[string]any{
			"is_completed": true,
			"completed_at": completedAt,
		}).Error
	})
}

func (repo *AssessmentRepository) FindResponseByAssessment(assessmentID string) (models.AssessmentResponse, bool, error) {
	var response models.AssessmentResponse
	result := repo.database.
		Where("assessment_id = ?", assessmentID).
		Limit(1).
		Find(&response)
	if result.Error != nil {
		return models.AssessmentResponse{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AssessmentResponse{}, false, nil
	}
	return response, true, nil
}

func (repo *AssessmentRepository) ListResponsesByPatient(patientID string) ([]models.AssessmentResponse, error) {
	responses := make([]models.AssessmentResponse, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("submitted_at DESC, id DESC").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
