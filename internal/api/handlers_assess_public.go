package api

import (
	"time"

	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

// sharedAssessmentView is what the patient sees behind the share link. It
// deliberately carries no identifiers beyond the patient's first-person view.
type sharedAssessmentView struct {
	PatientName string    `json:"patientName"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Status      string    `json:"status"`
	Expired     bool      `json:"expired"`
}

type sharedSubmissionPayload struct {
	PainLevel int                      `json:"painLevel"`
	Notes     string                   `json:"notes"`
	Exercises []services.ExerciseCheck `json:"exercises"`
}

func (handler *Handler) ShowSharedAssessment(c *fiber.Ctx) error {
	assessment, err := handler.assessments.GetByShareToken(c.Params("token"))
	if err != nil {
		return respondServiceError(c, err)
	}

	checklist, err := handler.exercises.Checklist(assessment.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"assessment": sharedAssessmentView{
			PatientName: assessment.PatientName,
			CreatedAt:   assessment.CreatedAt,
			ExpiresAt:   assessment.ExpiresAt,
			Status:      assessment.Status(),
			Expired:     assessment.Expired(time.Now()),
		},
		"exercises": checklist,
	})
}

func (handler *Handler) SubmitSharedAssessment(c *fiber.Ctx) error {
	assessment, err := handler.assessments.GetByShareToken(c.Params("token"))
	if err != nil {
		return respondServiceError(c, err)
	}

	var payload sharedSubmissionPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	response, err := handler.assessments.Complete(assessment.ID, payload.PainLevel, payload.Notes, models.SubmittedByPatient)
	if err != nil {
		return respondServiceError(c, err)
	}

	// The exercise checklist sits outside the main response record; a
	// checklist failure after a recorded response is reported, not rolled
	// back.
	checklist := make([]models.ExerciseResponse, 0)
	if len(payload.Exercises) > 0 {
		checklist, err = handler.exercises.SaveChecklist(assessment.ID, payload.Exercises)
		if err != nil {
			return respondServiceError(c, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"response":  response,
		"exercises": checklist,
	})
}
