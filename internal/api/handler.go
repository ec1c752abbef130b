package api

import (
	"github.com/fisiotrack/fisiotrack/internal/db"
	"github.com/fisiotrack/fisiotrack/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repos        *db.Repositories
	patients     *services.PatientService
	painRecords  *services.PainRecordService
	assessments  *services.AssessmentService
	exercises    *services.ExerciseService
	stats        *services.StatsService
	export       *services.ExportService
	secretKey    []byte
	cookieSecure bool
}

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool) *Handler {
	repos := db.NewRepositories(database)
	stats := services.NewStatsService(repos.PainRecords, repos.Assessments)
	return &Handler{
		repos:        repos,
		patients:     services.NewPatientService(repos.Patients),
		painRecords:  services.NewPainRecordService(repos.PainRecords, repos.Patients),
		assessments:  services.NewAssessmentService(repos.Assessments, repos.Patients),
		exercises:    services.NewExerciseService(repos.Exercises),
		stats:        stats,
		export:       services.NewExportService(stats),
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
	}
}
