package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"gorm.io/gorm"
)

type stubPatientRepository struct {
	patients map[string]models.Patient
	updates  map[string]map[string]any
	deleted  []string
}

func newStubPatientRepository() *stubPatientRepository {
	return &stubPatientRepository{
		patients: map[string]models.Patient{},
		updates:  map[string]map[string]any{},
	}
}

func (repo *stubPatientRepository) List() ([]models.Patient, error) {
	patients := make([]models.Patient, 0, len(repo.patients))
	for _, patient := range repo.patients {
		patients = append(patients, patient)
	}
	return patients, nil
}

func (repo *stubPatientRepository) FindByID(patientID string) (models.Patient, error) {
	patient, ok := repo.patients[patientID]
	if !ok {
		return models.Patient{}, gorm.ErrRecordNotFound
	}
	return patient, nil
}

func (repo *stubPatientRepository) Create(patient *models.Patient) error {
	repo.patients[patient.ID] = *patient
	return nil
}

func (repo *stubPatientRepository) UpdateByID(patientID string, updates map[string]any) error {
	repo.updates[patientID] = updates
	return nil
}

func (repo *stubPatientRepository) DeleteCascade(patientID string) error {
	repo.deleted = append(repo.deleted, patientID)
	delete(repo.patients, patientID)
	return nil
}

func TestCreatePatientTrimsFields(t *testing.T) {
	repo := newStubPatientRepository()
	service := NewPatientService(repo)

	patient, err := service.CreatePatient("  Carla Lima  ", " carla@example.com ", " 11 91234-5678 ")
	if err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	if patient.ID == "" {
		t.Fatal("expected generated patient id")
	}
	if patient.Name != "Carla Lima" || patient.Email != "carla@example.com" || patient.Phone != "11 91234-5678" {
		t.Fatalf("expected trimmed fields, got %+v", patient)
	}
	if patient.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
}

func TestCreatePatientRejectsEmptyName(t *testing.T) {
	service := NewPatientService(newStubPatientRepository())

	if _, err := service.CreatePatient("   ", "", ""); !errors.Is(err, ErrInvalidPatientName) {
		t.Fatalf("expected ErrInvalidPatientName, got %v", err)
	}
}

func TestCreatePatientRejectsLongName(t *testing.T) {
	service := NewPatientService(newStubPatientRepository())

	if _, err := service.CreatePatient(strings.Repeat("a", maxPatientNameLength+1), "", ""); !errors.Is(err, ErrInvalidPatientName) {
		t.Fatalf("expected ErrInvalidPatientName, got %v", err)
	}
}

func TestCreatePatientRejectsBadEmail(t *testing.T) {
	service := NewPatientService(newStubPatientRepository())

	if _, err := service.CreatePatient("Carla Lima", "not-an-email", ""); !errors.Is(err, ErrInvalidPatientEmail) {
		t.Fatalf("expected ErrInvalidPatientEmail, got %v", err)
	}
}

func TestCreatePatientAllowsEmptyEmail(t *testing.T) {
	service := NewPatientService(newStubPatientRepository())

	if _, err := service.CreatePatient("Carla Lima", "", ""); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
}

func TestUpdatePatientPartial(t *testing.T) {
	repo := newStubPatientRepository()
	service := NewPatientService(repo)
	created, _ := service.CreatePatient("Carla Lima", "carla@example.com", "")

	newPhone := " 11 95555-0000 "
	updated, err := service.UpdatePatient(created.ID, PatientUpdate{Phone: &newPhone})
	if err != nil {
		t.Fatalf("UpdatePatient: %v", err)
	}
	if updated.Phone != "11 95555-0000" {
		t.Fatalf("expected updated phone, got %q", updated.Phone)
	}
	if updated.Name != "Carla Lima" {
		t.Fatalf("expected untouched name, got %q", updated.Name)
	}
	updates := repo.updates[created.ID]
	if len(updates) != 1 || updates["phone"] != "11 95555-0000" {
		t.Fatalf("expected a single phone update, got %v", updates)
	}
}

func TestUpdatePatientNoChanges(t *testing.T) {
	repo := newStubPatientRepository()
	service := NewPatientService(repo)
	created, _ := service.CreatePatient("Carla Lima", "", "")

	if _, err := service.UpdatePatient(created.ID, PatientUpdate{}); err != nil {
		t.Fatalf("UpdatePatient: %v", err)
	}
	if _, ok := repo.updates[created.ID]; ok {
		t.Fatal("expected no repository update for an empty change set")
	}
}

func TestUpdatePatientNotFound(t *testing.T) {
	service := NewPatientService(newStubPatientRepository())

	name := "Novo Nome"
	if _, err := service.UpdatePatient("missing", PatientUpdate{Name: &name}); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDeletePatientCascades(t *testing.T) {
	repo := newStubPatientRepository()
	service := NewPatientService(repo)
	created, _ := service.CreatePatient("Carla Lima", "", "")

	if err := service.DeletePatient(created.ID); err != nil {
		t.Fatalf("DeletePatient: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != created.ID {
		t.Fatalf("expected cascade delete for %s, got %v", created.ID, repo.deleted)
	}
}

func TestDeletePatientNotFound(t *testing.T) {
	service := NewPatientService(newStubPatientRepository())

	if err := service.DeletePatient("missing"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}
