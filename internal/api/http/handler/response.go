package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/datalux_backend/internal/service/contact"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func unprocessable(c fiber.Ctx, details []contact.FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "validation failed",
		"details": details,
	})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
