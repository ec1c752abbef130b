package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrInvalidPatientName  = errors.New("invalid patient name")
	ErrInvalidPatientEmail = errors.New("invalid patient email")
)

const maxPatientNameLength = 120

type PatientRepository interface {
	List() ([]models.Patient, error)
	FindByID(patientID string) (models.Patient, error)
	Create(patient *models.Patient) error
	UpdateByID(patientID string, updates map[string]any) error
	DeleteCascade(patientID string) error
}

type PatientService struct {
	patients PatientRepository
}

func NewPatientService(patients PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

func (service *PatientService) CreatePatient(name string, email string, phone string) (models.Patient, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || len(name) > maxPatientNameLength {
		return models.Patient{}, ErrInvalidPatientName
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return models.Patient{}, ErrInvalidPatientEmail
		}
	}

	patient := models.Patient{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
	if err := service.patients.Create(&patient); err != nil {
		return models.Patient{}, fmt.Errorf("create patient: %w", err)
	}
	return patient, nil
}

type PatientUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

func (service *PatientService) UpdatePatient(patientID string, update PatientUpdate) (models.Patient, error) {
	patient, err := service.GetPatient(patientID)
	if err != nil {
		return models.Patient{}, err
	}

	updates := make(map[string]any)
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" || len(name) > maxPatientNameLength {
			return models.Patient{}, ErrInvalidPatientName
		}
		updates["name"] = name
		patient.Name = name
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return models.Patient{}, ErrInvalidPatientEmail
			}
		}
		updates["email"] = email
		patient.Email = email
	}
	if update.Phone != nil {
		phone := strings.TrimSpace(*update.Phone)
		updates["phone"] = phone
		patient.Phone = phone
	}
	if len(updates) == 0 {
		return patient, nil
	}

	if err := service.patients.UpdateByID(patientID, updates); err != nil {
		return models.Patient{}, fmt.Errorf("update patient: %w", err)
	}
	return patient, nil
}

func (service *PatientService) DeletePatient(patientID string) error {
	if _, err := service.GetPatient(patientID); err != nil {
		return err
	}
	if err := service.patients.DeleteCascade(patientID); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (service *PatientService) GetPatient(patientID string) (models.Patient, error) {
	patient, err := service.patients.FindByID(patientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Patient{}, ErrPatientNotFound
	}
	if err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (service *PatientService) ListPatients() ([]models.Patient, error) {
	return service.patients.List()
}
