package db

import (
	"testing"
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
)

func TestPatientListOrdersNewestFirst(t *testing.T) {
	database := openTestDB(t)
	repo := NewPatientRepository(database)
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	for _, patient := range []models.Patient{
		{ID: "p1", Name: "Primeiro", CreatedAt: base},
		{ID: "p3", Name: "Empate B", CreatedAt: base.Add(time.Hour)},
		{ID: "p2", Name: "Empate A", CreatedAt: base.Add(time.Hour)},
	} {
		record := patient
		if err := repo.Create(&record); err != nil {
			t.Fatalf("create patient %s: %v", patient.ID, err)
		}
	}

	patients, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(patients))
	}
	if patients[0].ID != "p3" || patients[1].ID != "p2" || patients[2].ID != "p1" {
		t.Fatalf("expected p3, p2, p1 order, got %s, %s, %s", patients[0].ID, patients[1].ID, patients[2].ID)
	}
}

func TestPatientUpdateByID(t *testing.T) {
	database := openTestDB(t)
	repo := NewPatientRepository(database)

	patient := models.Patient{ID: "p1", Name: "Antes", CreatedAt: time.Now().UTC()}
	if err := repo.Create(&patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	if err := repo.UpdateByID("p1", map[string]any{"name": "Depois", "phone": "11 90000-0000"}); err != nil {
		t.Fatalf("UpdateByID: %v", err)
	}

	updated, err := repo.FindByID("p1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if updated.Name != "Depois" || updated.Phone != "11 90000-0000" {
		t.Fatalf("expected updated fields, got %+v", updated)
	}
}

func TestPatientDeleteCascadeRemovesDependents(t *testing.T) {
	database := openTestDB(t)
	patients := NewPatientRepository(database)
	painRecords := NewPainRecordRepository(database)
	assessments := NewAssessmentRepository(database)
	exercises := NewExerciseRepository(database)

	now := time.Now().UTC()
	patient := models.Patient{ID: "p1", Name: "Ana Souza", CreatedAt: now}
	if err := patients.Create(&patient); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	keep := models.Patient{ID: "p2", Name: "Outro Paciente", CreatedAt: now}
	if err := patients.Create(&keep); err != nil {
		t.Fatalf("create second patient: %v", err)
	}

	record := models.PainRecord{ID: "r1", PatientID: "p1", Date: now, PainLevel: 5}
	if err := painRecords.Create(&record); err != nil {
		t.Fatalf("create pain record: %v", err)
	}
	keepRecord := models.PainRecord{ID: "r2", PatientID: "p2", Date: now, PainLevel: 2}
	if err := painRecords.Create(&keepRecord); err != nil {
		t.Fatalf("create second pain record: %v", err)
	}

	assessment := models.Assessment{ID: "a1", PatientID: "p1", PatientName: "Ana Souza", ShareToken: "token-a1", CreatedAt: now, ExpiresAt: now.Add(models.AssessmentLifetime)}
	if err := assessments.Create(&assessment); err != nil {
		t.Fatalf("create assessment: %v", err)
	}
	response := models.AssessmentResponse{ID: "resp1", AssessmentID: "a1", PatientID: "p1", PainLevel: 6, SubmittedAt: now, SubmittedBy: models.SubmittedByPatient}
	if err := assessments.Complete("a1", &response, now); err != nil {
		t.Fatalf("complete assessment: %v", err)
	}
	if err := exercises.SaveResponses("a1", []models.ExerciseResponse{
		{ID: "ex1", AssessmentID: "a1", ExerciseID: "e1", ExerciseName: "Ponte", Completed: true},
	}); err != nil {
		t.Fatalf("save exercise responses: %v", err)
	}

	if err := patients.DeleteCascade("p1"); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	if _, err := patients.FindByID("p1"); err == nil {
		t.Fatal("expected patient to be gone")
	}
	if _, err := patients.FindByID("p2"); err != nil {
		t.Fatalf("expected the other patient to survive: %v", err)
	}

	records, err := painRecords.ListByPatient("p1")
	if err != nil {
		t.Fatalf("ListByPatient: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no pain records, got %d", len(records))
	}

	remaining, err := assessments.ListByPatient("p1")
	if err != nil {
		t.Fatalf("ListByPatient assessments: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no assessments, got %d", len(remaining))
	}

	if _, ok, err := assessments.FindResponseByAssessment("a1"); err != nil || ok {
		t.Fatalf("expected no response left, ok=%v err=%v", ok, err)
	}

	checklist, err := exercises.ListResponses("a1")
	if err != nil {
		t.Fatalf("ListResponses: %v", err)
	}
	if len(checklist) != 0 {
		t.Fatalf("expected no exercise responses, got %d", len(checklist))
	}

	keptRecords, err := painRecords.ListByPatient("p2")
	if err != nil {
		t.Fatalf("ListByPatient p2: %v", err)
	}
	if len(keptRecords) != 1 {
		t.Fatalf("expected the other patient's record to survive, got %d", len(keptRecords))
	}
}
