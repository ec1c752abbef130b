package legacy

import (
	"errors"
	"fmt"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/fisiotrack/fisiotrack/internal/security"
	"gorm.io/gorm"
)

const completionFlagKey = "legacy_import_completed"

type Outcome string

const (
	OutcomeAlreadyDone Outcome = "already_done"
	OutcomeMigrated    Outcome = "migrated"
)

type Result struct {
	Outcome     Outcome
	Patients    int
	PainRecords int
	Assessments int
	Responses   int
}

// Import copies everything the legacy file store holds into the database,
// exactly once. The inserts and the completion flag are written in a single
// transaction: a partial failure rolls back entirely, so the retry on the
// next start cannot duplicate rows.
func Import(store *Store, database *gorm.DB) (Result, error) {
	done, err := importCompleted(database)
	if err != nil {
		return Result{}, fmt.Errorf("check import flag: %w", err)
	}
	if done {
		return Result{Outcome: OutcomeAlreadyDone}, nil
	}

	snapshot, err := store.Load()
	if err != nil {
		return Result{}, fmt.Errorf("load legacy data: %w", err)
	}

	patients := convertPatients(snapshot.Patients)
	painRecords := convertPainRecords(snapshot.PainRecords)
	assessments, err := convertAssessments(snapshot)
	if err != nil {
		return Result{}, err
	}
	responses := convertResponses(snapshot)

	err = database.Transaction(func(tx *gorm.DB) error {
		if len(patients) > 0 {
			if err := tx.Create(&patients).Error; err != nil {
				return fmt.Errorf("insert patients: %w", err)
			}
		}
		if len(painRecords) > 0 {
			if err := tx.Create(&painRecords).Error; err != nil {
				return fmt.Errorf("insert pain records: %w", err)
			}
		}
		if len(assessments) > 0 {
			if err := tx.Create(&assessments).Error; err != nil {
				return fmt.Errorf("insert assessments: %w", err)
			}
		}
		if len(responses) > 0 {
			if err := tx.Create(&responses).Error; err != nil {
				return fmt.Errorf("insert assessment responses: %w", err)
			}
		}
		return tx.Create(&models.AppState{Key: completionFlagKey, Value: "true"}).Error
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Outcome:     OutcomeMigrated,
		Patients:    len(patients),
		PainRecords: len(painRecords),
		Assessments: len(assessments),
		Responses:   len(responses),
	}, nil
}

func importCompleted(database *gorm.DB) (bool, error) {
	var state models.AppState
	err := database.First(&state, "key = ?", completionFlagKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return state.Value == "true", nil
}

func convertPatients(records []legacyPatient) []models.Patient {
	patients := make([]models.Patient, 0, len(records))
	for _, record := range records {
		patients = append(patients, models.Patient{
			ID:        record.ID,
			Name:      record.Name,
			Email:     record.Email,
			Phone:     record.Phone,
			CreatedAt: record.CreatedAt,
		})
	}
	return patients
}

func convertPainRecords(records []legacyPainRecord) []models.PainRecord {
	painRecords := make([]models.PainRecord, 0, len(records))
	for _, record := range records {
		painRecords = append(painRecords, models.PainRecord{
			ID:        record.ID,
			PatientID: record.PatientID,
			Date:      record.Date,
			PainLevel: record.PainLevel,
			Notes:     record.Notes,
		})
	}
	return painRecords
}

func convertAssessments(snapshot Snapshot) ([]models.Assessment, error) {
	patientNames := make(map[string]string, len(snapshot.Patients))
	for _, patient := range snapshot.Patients {
		patientNames[patient.ID] = patient.Name
	}

	assessments := make([]models.Assessment, 0, len(snapshot.Assessments))
	for _, record := range snapshot.Assessments {
		// The oldest legacy records predate the denormalized name and the
		// share link; both are backfilled here.
		name := record.PatientName
		if name == "" {
			name = patientNames[record.PatientID]
		}
		token, err := security.NewShareToken()
		if err != nil {
			return nil, fmt.Errorf("generate share token: %w", err)
		}
		assessments = append(assessments, models.Assessment{
			ID:              record.ID,
			PatientID:       record.PatientID,
			PatientName:     name,
			ShareToken:      token,
			CreatedAt:       record.CreatedAt,
			ExpiresAt:       record.ExpiresAt,
			IsCompleted:     record.IsCompleted,
			CompletedAt:     record.CompletedAt,
			IsSentToPatient: record.IsSentToPatient,
			SentAt:          record.SentAt,
		})
	}
	return assessments, nil
}

func convertResponses(snapshot Snapshot) []models.AssessmentResponse {
	assessmentPatients := make(map[string]string, len(snapshot.Assessments))
	for _, assessment := range snapshot.Assessments {
		assessmentPatients[assessment.ID] = assessment.PatientID
	}

	responses := make([]models.AssessmentResponse, 0, len(snapshot.Responses))
	for _, record := range snapshot.Responses {
		patientID := record.PatientID
		if patientID == "" {
			patientID = assessmentPatients[record.AssessmentID]
		}
		submittedBy := record.SubmittedBy
		if submittedBy == "" {
			submittedBy = models.SubmittedByPatient
		}
		responses = append(responses, models.AssessmentResponse{
			ID:           record.ID,
			AssessmentID: record.AssessmentID,
			PatientID:    patientID,
			PainLevel:    record.PainLevel,
			Notes:        record.Notes,
			SubmittedAt:  record.SubmittedAt,
			SubmittedBy:  submittedBy,
		})
	}
	return responses
}
