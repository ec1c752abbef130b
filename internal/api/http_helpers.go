package api

import (
	"errors"

	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
// Anything unmapped is a persistence failure and gets a generic 500 so store
// internals never leak to the client.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPatientNotFound),
		errors.Is(err, services.ErrAssessmentNotFound),
		errors.Is(err, services.ErrPainRecordNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidPainLevel),
		errors.Is(err, services.ErrInvalidPatientName),
		errors.Is(err, services.ErrInvalidPatientEmail),
		errors.Is(err, services.ErrInvalidSubmitter),
		errors.Is(err, services.ErrExerciseNotFound):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAssessmentCompleted),
		errors.Is(err, services.ErrAssessmentAlreadySent):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAssessmentExpired):
		return apiError(c, fiber.StatusGone, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
