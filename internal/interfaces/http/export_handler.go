package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-editor/internal/application/export"
	"github.com/jhoicas/invoice-editor/internal/domain"
)

// ExportHandler descargas de la factura de la sesión.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

type exportFunc func(ctx context.Context, sessionID string) ([]byte, string, error)

// Image godoc
// @Summary      Descargar imagen PNG
// @Description  Escala 2, fondo blanco, sin botones ni bordes de inputs. Nombre: <número>.png o invoice.png.
// @Tags         export
// @Produce      png
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse  "EXPORT_UNAVAILABLE"
// @Router       /api/session/export.png [get]
func (h *ExportHandler) Image(c *fiber.Ctx) error {
	return h.send(c, h.uc.ExportImage, "image/png")
}

// PDF godoc
// @Summary      Descargar PDF
// @Tags         export
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/session/export.pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	return h.send(c, h.uc.ExportPDF, "application/pdf")
}

// Spreadsheet godoc
// @Summary      Descargar hoja XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/session/export.xlsx [get]
func (h *ExportHandler) Spreadsheet(c *fiber.Ctx) error {
	return h.send(c, h.uc.ExportSpreadsheet, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *ExportHandler) send(c *fiber.Ctx, fn exportFunc, contentType string) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	data, filename, err := fn(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
