package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/fisiotrack/fisiotrack/internal/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAssessmentNotFound    = errors.New("assessment not found")
	ErrAssessmentCompleted   = errors.New("assessment already completed")
	ErrAssessmentExpired     = errors.New("assessment expired")
	ErrAssessmentAlreadySent = errors.New("assessment already sent")
	ErrInvalidSubmitter      = errors.New("invalid submitter")
)

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	FindByID(assessmentID string) (models.Assessment, error)
	FindByShareToken(token string) (models.Assessment, error)
	UpdateByID(assessmentID string, updates map[string]any) error
	ListPending() ([]models.Assessment, error)
	ListSent() ([]models.Assessment, error)
	ListCompleted() ([]models.Assessment, error)
	ListByPatient(patientID string) ([]models.Assessment, error)
	Complete(assessmentID string, response *models.AssessmentResponse, completedAt time.Time) error
	FindResponseByAssessment(assessmentID string) (models.AssessmentResponse, bool, error)
	ListResponsesByPatient(patientID string) ([]models.AssessmentResponse, error)
}

type AssessmentPatientReader interface {
	FindByID(patientID string) (models.Patient, error)
}

// AssessmentService owns the Pending -> Sent -> Completed lifecycle. The
// direct Pending -> Completed transition stays legal: the therapist can record
// a response without ever sending the assessment out.
type AssessmentService struct {
	assessments AssessmentRepository
	patients    AssessmentPatientReader
}

func NewAssessmentService(assessments AssessmentRepository, patients AssessmentPatientReader) *AssessmentService {
	return &AssessmentService{assessments: assessments, patients: patients}
}

func (service *AssessmentService) Create(patientID string) (models.Assessment, error) {
	patient, err := service.patients.FindByID(patientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Assessment{}, ErrPatientNotFound
	}
	if err != nil {
		return models.Assessment{}, err
	}

	token, err := security.NewShareToken()
	if err != nil {
		return models.Assessment{}, fmt.Errorf("generate share token: %w", err)
	}

	createdAt := time.Now()
	assessment := models.Assessment{
		ID:          uuid.NewString(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		ShareToken:  token,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(models.AssessmentLifetime),
	}
	if err := service.assessments.Create(&assessment); err != nil {
		return models.Assessment{}, fmt.Errorf("create assessment: %w", err)
	}
	return assessment, nil
}

func (service *AssessmentService) SendToPatient(assessmentID string) (models.Assessment, error) {
	assessment, err := service.GetByID(assessmentID)
	if err != nil {
		return models.Assessment{}, err
	}
	if assessment.IsCompleted {
		return models.Assessment{}, ErrAssessmentCompleted
	}
	if assessment.IsSentToPatient {
		return models.Assessment{}, ErrAssessmentAlreadySent
	}
	now := time.Now()
	if assessment.Expired(now) {
		return models.Assessment{}, ErrAssessmentExpired
	}

	if err := service.assessments.UpdateByID(assessment.ID, map[string]any{
		"is_sent_to_patient": true,
		"sent_at":            now,
	}); err != nil {
		return models.Assessment{}, fmt.Errorf("send assessment: %w", err)
	}

	assessment.IsSentToPatient = true
	assessment.SentAt = &now
	return assessment, nil
}

// Complete records the response and marks the assessment completed. The
// patient id on the response comes from the stored assessment, never from the
// caller. A completed assessment never accepts a second response; expiry is
// enforced for patient submissions only, since the therapist may enter a late
// result during a visit.
func (service *AssessmentService) Complete(assessmentID string, painLevel int, notes string, submittedBy string) (models.AssessmentResponse, error) {
	if submittedBy != models.SubmittedByPatient && submittedBy != models.SubmittedByTherapist {
		return models.AssessmentResponse{}, ErrInvalidSubmitter
	}
	if err := ValidatePainLevel(painLevel); err != nil {
		return models.AssessmentResponse{}, err
	}

	assessment, err := service.GetByID(assessmentID)
	if err != nil {
		return models.AssessmentResponse{}, err
	}
	if assessment.IsCompleted {
		return models.AssessmentResponse{}, ErrAssessmentCompleted
	}
	now := time.Now()
	if submittedBy == models.SubmittedByPatient && assessment.Expired(now) {
		return models.AssessmentResponse{}, ErrAssessmentExpired
	}

	response := models.AssessmentResponse{
		ID:           uuid.NewString(),
		AssessmentID: assessment.ID,
		PatientID:    assessment.PatientID,
		PainLevel:    painLevel,
		Notes:        strings.TrimSpace(notes),
		SubmittedAt:  now,
		SubmittedBy:  submittedBy,
	}
	if err := service.assessments.Complete(assessment.ID, &response, now); err != nil {
		return models.AssessmentResponse{}, fmt.Errorf("complete assessment: %w", err)
	}
	return response, nil
}

func (service *AssessmentService) GetByID(assessmentID string) (models.Assessment, error) {
	assessment, err := service.assessments.FindByID(assessmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Assessment{}, ErrAssessmentNotFound
	}
	if err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

func (service *AssessmentService) GetByShareToken(token string) (models.Assessment, error) {
	assessment, err := service.assessments.FindByShareToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Assessment{}, ErrAssessmentNotFound
	}
	if err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

func (service *AssessmentService) ResponseFor(assessmentID string) (models.AssessmentResponse, bool, error) {
	return service.assessments.FindResponseByAssessment(assessmentID)
}

func (service *AssessmentService) ListPending() ([]models.Assessment, error) {
	return service.assessments.ListPending()
}

func (service *AssessmentService) ListSent() ([]models.Assessment, error) {
	return service.assessments.ListSent()
}

func (service *AssessmentService) ListCompleted() ([]models.Assessment, error) {
	return service.assessments.ListCompleted()
}

func (service *AssessmentService) ListForPatient(patientID string) ([]models.Assessment, error) {
	return service.assessments.ListByPatient(patientID)
}

func (service *AssessmentService) ListResponsesForPatient(patientID string) ([]models.AssessmentResponse, error) {
	return service.assessments.ListResponsesByPatient(patientID)
}
