package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) PatientPainTrend(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	points, err := handler.stats.PainTrend(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	summary, err := handler.stats.Summary(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"patientId": patient.ID,
		"points":    points,
		"summary":   summary,
	})
}
