package api

import (
	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type createPatientPayload struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}

type updatePatientPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (handler *Handler) ListPatients(c *fiber.Ctx) error {
	patients, err := handler.patients.ListPatients()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(patients)
}

func (handler *Handler) CreatePatient(c *fiber.Ctx) error {
	var payload createPatientPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	patient, err := handler.patients.CreatePatient(payload.Name, payload.Email, payload.Phone)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

func (handler *Handler) GetPatient(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(patient)
}

func (handler *Handler) UpdatePatient(c *fiber.Ctx) error {
	var payload updatePatientPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	patient, err := handler.patients.UpdatePatient(c.Params("id"), services.PatientUpdate{
		Name:  payload.Name,
		Email: payload.Email,
		Phone: payload.Phone,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(patient)
}

func (handler *Handler) DeletePatient(c *fiber.Ctx) error {
	if err := handler.patients.DeletePatient(c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ListPatientPainRecords(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	records, err := handler.painRecords.ListByPatient(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(records)
}

func (handler *Handler) ListPatientAssessments(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	assessments, err := handler.assessments.ListForPatient(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(assessments)
}
