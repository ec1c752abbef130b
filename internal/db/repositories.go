package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Patients    *PatientRepository
	PainRecords *PainRecordRepository
	Assessments *AssessmentRepository
	Exercises   *ExerciseRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Patients:    NewPatientRepository(database),
		PainRecords: NewPainRecordRepository(database),
		Assessments: NewAssessmentRepository(database),
		Exercises:   NewExerciseRepository(database),
	}
}
