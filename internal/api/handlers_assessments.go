package api

import (
	"github.com/fisiotrack/fisiotrack/internal/models"
	"github.com/gofiber/fiber/v2"
)

type createAssessmentPayload struct {
	PatientID string `json:"patientId"`
}

type completeAssessmentPayload struct {
	PainLevel int    `json:"painLevel"`
	Notes     string `json:"notes"`
}

func sharePath(assessment models.Assessment) string {
	return "/assess/" + assessment.ShareToken
}

// ListAssessments returns one bucket when ?status= is set, otherwise all
// three, so the dashboard tabs load in a single request.
func (handler *Handler) ListAssessments(c *fiber.Ctx) error {
	switch c.Query("status") {
	case models.AssessmentStatusPending:
		return handler.respondAssessmentList(c, handler.assessments.ListPending)
	case models.AssessmentStatusSent:
		return handler.respondAssessmentList(c, handler.assessments.ListSent)
	case models.AssessmentStatusCompleted:
		return handler.respondAssessmentList(c, handler.assessments.ListCompleted)
	case "":
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid status")
	}

	pending, err := handler.assessments.ListPending()
	if err != nil {
		return respondServiceError(c, err)
	}
	sent, err := handler.assessments.ListSent()
	if err != nil {
		return respondServiceError(c, err)
	}
	completed, err := handler.assessments.ListCompleted()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"pending":   pending,
		"sent":      sent,
		"completed": completed,
	})
}

func (handler *Handler) respondAssessmentList(c *fiber.Ctx, list func() ([]models.Assessment, error)) error {
	assessments, err := list()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(assessments)
}

func (handler *Handler) CreateAssessment(c *fiber.Ctx) error {
	var payload createAssessmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	assessment, err := handler.assessments.Create(payload.PatientID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"assessment": assessment,
		"shareUrl":   sharePath(assessment),
	})
}

func (handler *Handler) GetAssessment(c *fiber.Ctx) error {
	assessment, err := handler.assessments.GetByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	response, found, err := handler.assessments.ResponseFor(assessment.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	checklist, err := handler.exercises.Checklist(assessment.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	payload := fiber.Map{
		"assessment": assessment,
		"status":     assessment.Status(),
		"exercises":  checklist,
	}
	if found {
		payload["response"] = response
	}
	return c.JSON(payload)
}

func (handler *Handler) SendAssessment(c *fiber.Ctx) error {
	assessment, err := handler.assessments.SendToPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"assessment": assessment,
		"shareUrl":   sharePath(assessment),
	})
}

func (handler *Handler) CompleteAssessment(c *fiber.Ctx) error {
	var payload completeAssessmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	response, err := handler.assessments.Complete(c.Params("id"), payload.PainLevel, payload.Notes, models.SubmittedByTherapist)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

func (handler *Handler) GetAssessmentResponse(c *fiber.Ctx) error {
	assessment, err := handler.assessments.GetByID(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	response, found, err := handler.assessments.ResponseFor(assessment.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "response not found")
	}
	return c.JSON(response)
}
