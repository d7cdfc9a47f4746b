package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/datalux_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/datalux_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Service *string `json:"service"`
	Message string  `json:"message"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return unprocessable(c, []contact.FieldError{{Field: "body", Message: "invalid JSON body"}})
	}

	in := contact.CreateRequest{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
	}
	if meta, ok := middleware.RequestMetaFromFiber(c); ok {
		in.IPAddress = meta.ClientIP
		in.UserAgent = meta.UserAgent
	} else {
		in.IPAddress = c.IP()
		in.UserAgent = c.Get(fiber.HeaderUserAgent)
	}

	rec, err := h.svc.Submit(c.Context(), in)
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			return unprocessable(c, verr.Fields)
		}
		return internalError(c)
	}
	return created(c, rec)
}
