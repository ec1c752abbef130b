package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fisiotrack/fisiotrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	summary, err := handler.export.BuildSummary(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	entries, err := handler.export.BuildEntries(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, exportFileName(patient.ID, "json"))
	return c.JSON(fiber.Map{
		"patient": patient,
		"entries": entries,
	})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	patient, err := handler.patients.GetPatient(c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	rows, err := handler.export.BuildCSVRows(patient.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	if err := writer.WriteAll(rows); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportFileName(patient.ID, "csv"))
	return c.Send(buffer.Bytes())
}

func exportFileName(patientID string, extension string) string {
	return fmt.Sprintf("attachment; filename=fisiotrack-%s.%s", patientID, extension)
}
