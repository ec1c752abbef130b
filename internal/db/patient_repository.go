package db

import (
	"github.com/fisiotrack/fisiotrack/internal/models"
	"gorm.io/gorm"
)

type PatientRepository struct {
	database *gorm.DB
}

func NewPatientRepository(database *gorm.DB) *PatientRepository {
	return &PatientRepository{database: database}
}

func (repo *PatientRepository) List() ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (repo *PatientRepository) FindByID(patientID string) (models.Patient, error) {
	var patient models.Patient
	if err := repo.database.First(&patient, "id = ?", patientID).Error; err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (repo *PatientRepository) Create(patient *models.Patient) error {
	return repo.database.Create(patient).Error
}

func (repo *PatientRepository) UpdateByID(patientID string, updates map[string]any) error {
	return repo.database.Model(&models.Patient{}).Where("id = ?", patientID).Updates(updates).Error
}

func (repo *PatientRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Patient{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCascade removes the patient together with every dependent record in a
// single transaction, so a failed delete leaves nothing orphaned.
func (repo *PatientRepository) DeleteCascade(patientID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.PainRecord{}).Error; err != nil {
			return err
		}
		assessmentIDs := tx.Model(&models.Assessment{}).Select("id").Where("patient_id = ?", patientID)
		if err := tx.Where("assessment_id IN (?)", assessmentIDs).Delete(&models.ExerciseResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.AssessmentResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", patientID).Delete(&models.Assessment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Patient{}, "id = ?", patientID).Error
	})
}
