package api

import (
	"time"

	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type createPainRecordPayload struct {
	PatientID string     `json:"patientId"`
	Date      *time.Time `json:"date"`
	PainLevel int        `json:"painLevel"`
	Notes     string     `json:"notes"`
}

type updatePainRecordPayload struct {
	Date      *time.Time `json:"date"`
	PainLevel *int       `json:"painLevel"`
	Notes     *string    `json:"notes"`
}

func (handler *Handler) CreatePainRecord(c *fiber.Ctx) error {
	var payload createPainRecordPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date := time.Time{}
	if payload.Date != nil {
		date = *payload.Date
	}

	record, err := handler.painRecords.CreatePainRecord(payload.PatientID, date, payload.PainLevel, payload.Notes)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdatePainRecord(c *fiber.Ctx) error {
	var payload updatePainRecordPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, err := handler.painRecords.UpdatePainRecord(c.Params("id"), services.PainRecordUpdate{
		Date:      payload.Date,
		PainLevel: payload.PainLevel,
		Notes:     payload.Notes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) DeletePainRecord(c *fiber.Ctx) error {
	if err := handler.painRecords.DeletePainRecord(c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
