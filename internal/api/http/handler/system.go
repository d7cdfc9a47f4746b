package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/datalux_backend/pkg/constants"
)

//go:embed openapi.json
var openAPIDoc []byte

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) Health(c fiber.Ctx) error {
	return ok(c, fiber.Map{"status": "healthy", "service": constants.ServiceName})
}

func (h *SystemHandler) Root(c fiber.Ctx) error {
	return ok(c, fiber.Map{
		"message": constants.ServiceName,
		"version": constants.ServiceVersion,
		"docs":    constants.DocsPath,
	})
}

// Docs serves the OpenAPI document for the public endpoints.
func (h *SystemHandler) Docs(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(openAPIDoc)
}
