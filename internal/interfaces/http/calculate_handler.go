package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-editor/internal/application/dto"
	"github.com/jhoicas/invoice-editor/internal/application/editor"
)

// CalculateHandler cálculo de filas y totales sin sesión (público).
type CalculateHandler struct {
	uc *editor.UseCase
}

// NewCalculateHandler construye el handler.
func NewCalculateHandler(uc *editor.UseCase) *CalculateHandler {
	return &CalculateHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular impuestos y totales
// @Description  CGST y SGST por fila y totales de la factura. Texto no numérico vale 0.
// @Tags         calculate
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRequest  true  "filas"
// @Success      200   {object}  dto.CalculateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculate [post]
func (h *CalculateHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Calculate(in))
}
