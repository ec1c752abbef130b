package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	exercises, err := handler.exercises.ListCatalog()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(exercises)
}
