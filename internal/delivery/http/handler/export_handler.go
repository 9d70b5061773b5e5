package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type workbookBuilder interface {
	BuildWorkbook(clientID string) (string, []byte, error)
}

type ExportHandler struct {
	exports workbookBuilder
}

func NewExportHandler(exports workbookBuilder) *ExportHandler {
	return &ExportHandler{exports: exports}
}

func (h *ExportHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/:id/export", h.HandleExport)
}

func (h *ExportHandler) HandleExport(c fiber.Ctx) error {
	id := c.Params("id")

	filename, content, err := h.exports.BuildWorkbook(id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClientNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "client not found", nil, err)
		case errors.Is(err, usecase.ErrExportNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "no results stored for client", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(content)
}
