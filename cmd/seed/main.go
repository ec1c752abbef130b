package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fisiotrack/fisiotrack/internal/db"
	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/joho/godotenv"
)

const patientCount = 12

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join("data", "fisiotrack.db")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)
	setup := services.NewSetupService(repos.Users, repos.Exercises)
	if err := setup.EnsureExerciseCatalog(); err != nil {
		log.Fatalf("exercise catalog init failed: %v", err)
	}

	patients := services.NewPatientService(repos.Patients)
	painRecords := services.NewPainRecordService(repos.PainRecords, repos.Patients)
	assessments := services.NewAssessmentService(repos.Assessments, repos.Patients)

	gofakeit.Seed(time.Now().UnixNano())

	for i := 0; i < patientCount; i++ {
		patient, err := patients.CreatePatient(gofakeit.Name(), gofakeit.Email(), gofakeit.Phone())
		if err != nil {
			log.Fatalf("seed patient: %v", err)
		}

		recordCount := gofakeit.Number(5, 20)
		for j := 0; j < recordCount; j++ {
			date := time.Now().AddDate(0, 0, -gofakeit.Number(0, 60))
			notes := ""
			if gofakeit.Bool() {
				notes = gofakeit.Sentence(8)
			}
			if _, err := painRecords.CreatePainRecord(patient.ID, date, gofakeit.Number(models.MinPainLevel, models.MaxPainLevel), notes); err != nil {
				log.Fatalf("seed pain record: %v", err)
			}
		}

		assessmentCount := gofakeit.Number(0, 3)
		for j := 0; j < assessmentCount; j++ {
			assessment, err := assessments.Create(patient.ID)
			if err != nil {
				log.Fatalf("seed assessment: %v", err)
			}
			switch gofakeit.Number(0, 2) {
			case 1:
				if _, err := assessments.SendToPatient(assessment.ID); err != nil {
					log.Fatalf("seed assessment send: %v", err)
				}
			case 2:
				submittedBy := models.SubmittedByTherapist
				if gofakeit.Bool() {
					if _, err := assessments.SendToPatient(assessment.ID); err != nil {
						log.Fatalf("seed assessment send: %v", err)
					}
					submittedBy = models.SubmittedByPatient
				}
				notes := ""
				if gofakeit.Bool() {
					notes = gofakeit.Sentence(6)
				}
				if _, err := assessments.Complete(assessment.ID, gofakeit.Number(models.MinPainLevel, models.MaxPainLevel), notes, submittedBy); err != nil {
					log.Fatalf("seed assessment response: %v", err)
				}
			}
		}

		log.Printf("seeded patient %s with %d pain records and %d assessments", patient.Name, recordCount, assessmentCount)
	}

	log.Printf("seeded %d patients into %s", patientCount, dbPath)
}
