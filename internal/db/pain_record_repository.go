package db

import (
	"github.com/fisiotrack/fisiotrack/internal/models"
	"gorm.io/gorm"
)

type PainRecordRepository struct {
	database *gorm.DB
}

func NewPainRecordRepository(database *gorm.DB) *PainRecordRepository {
	return &PainRecordRepository{database: database}
}

func (repo *PainRecordRepository) ListByPatient(patientID string) ([]models.PainRecord, error) {
	records := make([]models.PainRecord, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *PainRecordRepository) FindByID(recordID string) (models.PainRecord, error) {
	var record models.PainRecord
	if err := repo.database.First(&record, "id = ?", recordID).Error; err != nil {
		return models.PainRecord{}, err
	}
	return record, nil
}

func (repo *PainRecordRepository) Create(record *models.PainRecord) error {
	return repo.database.Create(record).Error
}

func (repo *PainRecordRepository) UpdateByID(recordID string, updates map[string]any) error {
	return repo.database.Model(&models.PainRecord{}).Where("id = ?", recordID).Updates(updates).Error
}

func (repo *PainRecordRepository) DeleteByID(recordID string) error {
	return repo.database.Delete(&models.PainRecord{}, "id = ?", recordID).Error
}
