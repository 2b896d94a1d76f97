package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-editor/internal/application/dto"
	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/domain"
	"github.com/jhoicas/invoice-editor/pkg/jwt"
)

// TokenConfig firma de los tokens de sesión.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// SessionHandler maneja la sesión del editor: filas, cabecera y viewport.
type SessionHandler struct {
	uc     *editor.UseCase
	tokens TokenConfig
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *editor.UseCase, tokens TokenConfig) *SessionHandler {
	return &SessionHandler{uc: uc, tokens: tokens}
}

// Open godoc
// @Summary      Abrir sesión de edición
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  false  "cabecera, filas iniciales y ancho de viewport"
// @Success      201   {object}  dto.OpenSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	view, err := h.uc.Open(in)
	if err != nil {
		return writeError(c, err)
	}
	token, err := jwt.Generate(h.tokens.Secret, view.SessionID, h.tokens.Issuer, h.tokens.ExpMinutes)
	if err != nil {
		_ = h.uc.Close(view.SessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TOKEN_ERROR", Message: "no se pudo firmar el token"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OpenSessionResponse{Token: token, Invoice: view})
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InvoiceView
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	view, err := h.uc.View(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// SetHeader godoc
// @Summary      Actualizar número, fecha y destinatario
// @Tags         session
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.HeaderRequest  true  "cabecera"
// @Success      200   {object}  dto.InvoiceView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/header [put]
func (h *SessionHandler) SetHeader(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	var in dto.HeaderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := h.uc.SetHeader(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// AddRow godoc
// @Summary      Agregar fila
// @Description  Agrega una fila con cantidad, tarifa y porcentajes en cero.
// @Tags         rows
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.InvoiceView
// @Router       /api/session/rows [post]
func (h *SessionHandler) AddRow(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	view, err := h.uc.AddRow(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// RemoveLastRow godoc
// @Summary      Eliminar la última fila
// @Tags         rows
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InvoiceView
// @Failure      409  {object}  dto.ErrorResponse  "NO_ROWS"
// @Router       /api/session/rows/last [delete]
func (h *SessionHandler) RemoveLastRow(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	view, err := h.uc.RemoveLastRow(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// UpdateRow godoc
// @Summary      Editar fila
// @Description  Los campos numéricos se envían como texto; lo que no se pueda interpretar vale 0.
// @Tags         rows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        index  path  int                   true  "índice de la fila (desde 1)"
// @Param        body   body  dto.UpdateRowRequest  true  "campos a modificar"
// @Success      200    {object}  dto.InvoiceView
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/session/rows/{index} [patch]
func (h *SessionHandler) UpdateRow(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	index, err := c.ParamsInt("index")
	if err != nil || index < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice de fila inválido"})
	}
	var in dto.UpdateRowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	view, err := h.uc.UpdateRow(id, index, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// SetViewport godoc
// @Summary      Informar ancho del viewport
// @Description  Programa un ajuste de fuente (con debounce).
// @Tags         layout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ViewportRequest  true  "ancho en px"
// @Success      202   {object}  dto.LayoutView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/viewport [put]
func (h *SessionHandler) SetViewport(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	var in dto.ViewportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetViewport(id, in.Width)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// Layout godoc
// @Summary      Estado del ajuste de fuente
// @Tags         layout
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LayoutView
// @Router       /api/session/layout [get]
func (h *SessionHandler) Layout(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	out, err := h.uc.Layout(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar sesión
// @Tags         session
// @Security     BearerAuth
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session [delete]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	id := GetSessionID(c)
	if id == "" {
		return writeError(c, domain.ErrUnauthorized)
	}
	if err := h.uc.Close(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
