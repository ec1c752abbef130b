package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPainRecordNotFound = errors.New("pain record not found")

type PainRecordRepository interface {
	ListByPatient(patientID string) ([]models.PainRecord, error)
	FindByID(recordID string) (models.PainRecord, error)
	Create(record *models.PainRecord) error
	UpdateByID(recordID string, updates map[string]any) error
	DeleteByID(recordID string) error
}

type PainRecordPatientReader interface {
	FindByID(patientID string) (models.Patient, error)
}

type PainRecordService struct {
	records  PainRecordRepository
	patients PainRecordPatientReader
}

func NewPainRecordService(records PainRecordRepository, patients PainRecordPatientReader) *PainRecordService {
	return &PainRecordService{records: records, patients: patients}
}

func (service *PainRecordService) CreatePainRecord(patientID string, date time.Time, painLevel int, notes string) (models.PainRecord, error) {
	if err := ValidatePainLevel(painLevel); err != nil {
		return models.PainRecord{}, err
	}
	if _, err := service.patients.FindByID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PainRecord{}, ErrPatientNotFound
		}
		return models.PainRecord{}, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	record := models.PainRecord{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Date:      date,
		PainLevel: painLevel,
		Notes:     strings.TrimSpace(notes),
	}
	if err := service.records.Create(&record); err != nil {
		return models.PainRecord{}, fmt.Errorf("create pain record: %w", err)
	}
	return record, nil
}

type PainRecordUpdate struct {
	Date      *time.Time
	PainLevel *int
	Notes     *string
}

func (service *PainRecordService) UpdatePainRecord(recordID string, update PainRecordUpdate) (models.PainRecord, error) {
	record, err := service.GetPainRecord(recordID)
	if err != nil {
		return models.PainRecord{}, err
	}

	updates := make(map[string]any)
	if update.Date != nil && !update.Date.IsZero() {
		updates["date"] = *update.Date
		record.Date = *update.Date
	}
	if update.PainLevel != nil {
		if err := ValidatePainLevel(*update.PainLevel); err != nil {
			return models.PainRecord{}, err
		}
		updates["pain_level"] = *update.PainLevel
		record.PainLevel = *update.PainLevel
	}
	if update.Notes != nil {
		notes := strings.TrimSpace(*update.Notes)
		updates["notes"] = notes
		record.Notes = notes
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := service.records.UpdateByID(recordID, updates); err != nil {
		return models.PainRecord{}, fmt.Errorf("update pain record: %w", err)
	}
	return record, nil
}

func (service *PainRecordService) DeletePainRecord(recordID string) error {
	if _, err := service.GetPainRecord(recordID); err != nil {
		return err
	}
	if err := service.records.DeleteByID(recordID); err != nil {
		return fmt.Errorf("delete pain record: %w", err)
	}
	return nil
}

func (service *PainRecordService) GetPainRecord(recordID string) (models.PainRecord, error) {
	record, err := service.records.FindByID(recordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PainRecord{}, ErrPainRecordNotFound
	}
	if err != nil {
		return models.PainRecord{}, err
	}
	return record, nil
}

func (service *PainRecordService) ListByPatient(patientID string) ([]models.PainRecord, error) {
	return service.records.ListByPatient(patientID)
}
