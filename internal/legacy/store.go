package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Store reads the JSON documents the pre-database release of FisioTrack kept
// on disk, one file per collection. A missing file means the collection was
// never written and is treated as empty.
type Store struct {
	dir string
}

const (
	patientsFile    = "fisiotrack-patients.json"
	painRecordsFile = "fisiotrack-pain-records.json"
	assessmentsFile = "fisiotrack-assessments.json"
	responsesFile   = "fisiotrack-assessment-responses.json"
)

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

type legacyPatient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type legacyPainRecord struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patientId"`
	Date      time.Time `json:"date"`
	PainLevel int       `json:"painLevel"`
	Notes     string    `json:"notes"`
}

type legacyAssessment struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patientId"`
	PatientName     string     `json:"patientName"`
	CreatedAt       time.Time  `json:"createdAt"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	IsCompleted     bool       `json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt"`
	IsSentToPatient bool       `json:"isSentToPatient"`
	SentAt          *time.Time `json:"sentAt"`
}

type legacyResponse struct {
	ID           string    `json:"id"`
	AssessmentID string    `json:"assessmentId"`
	PatientID    string    `json:"patientId"`
	PainLevel    int       `json:"painLevel"`
	Notes        string    `json:"notes"`
	SubmittedAt  time.Time `json:"submittedAt"`
	SubmittedBy  string    `json:"submittedBy"`
}

// Snapshot holds everything the legacy release persisted, read in one pass so
// a parse error surfaces before anything is written to the database.
type Snapshot struct {
	Patients    []legacyPatient
	PainRecords []legacyPainRecord
	Assessments []legacyAssessment
	Responses   []legacyResponse
}

func (store *Store) Load() (Snapshot, error) {
	var snapshot Snapshot
	if err := store.readCollection(patientsFile, &snapshot.Patients); err != nil {
		return Snapshot{}, err
	}
	if err := store.readCollection(painRecordsFile, &snapshot.PainRecords); err != nil {
		return Snapshot{}, err
	}
	if err := store.readCollection(assessmentsFile, &snapshot.Assessments); err != nil {
		return Snapshot{}, err
	}
	if err := store.readCollection(responsesFile, &snapshot.Responses); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

func (store *Store) readCollection(fileName string, target any) error {
	raw, err := os.ReadFile(filepath.Join(store.dir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read legacy file %s: %w", fileName, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse legacy file %s: %w", fileName, err)
	}
	return nil
}
