package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	// Patient-facing routes, keyed by an unguessable share token.
	assess := api.Group("/assess")
	assess.Get("/:token", handler.ShowSharedAssessment)
	assess.Post("/:token", handler.SubmitSharedAssessment)

	patients := api.Group("/patients", handler.AuthRequired)
	patients.Get("", handler.ListPatients)
	patients.Post("", handler.CreatePatient)
	patients.Get("/:id", handler.GetPatient)
	patients.Patch("/:id", handler.UpdatePatient)
	patients.Delete("/:id", handler.DeletePatient)
	patients.Get("/:id/pain-records", handler.ListPatientPainRecords)
	patients.Get("/:id/assessments", handler.ListPatientAssessments)
	patients.Get("/:id/trend", handler.PatientPainTrend)
	patients.Get("/:id/export/summary", handler.ExportSummary)
	patients.Get("/:id/export/csv", handler.ExportCSV)
	patients.Get("/:id/export/json", handler.ExportJSON)

	painRecords := api.Group("/pain-records", handler.AuthRequired)
	painRecords.Post("", handler.CreatePainRecord)
	painRecords.Patch("/:id", handler.UpdatePainRecord)
	painRecords.Delete("/:id", handler.DeletePainRecord)

	assessments := api.Group("/assessments", handler.AuthRequired)
	assessments.Get("", handler.ListAssessments)
	assessments.Post("", handler.CreateAssessment)
	assessments.Get("/:id", handler.GetAssessment)
	assessments.Post("/:id/send", handler.SendAssessment)
	assessments.Post("/:id/complete", handler.CompleteAssessment)
	assessments.Get("/:id/response", handler.GetAssessmentResponse)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.ListExercises)
}
