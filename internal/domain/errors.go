package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Ninguna operación de cálculo falla: estos errores solo son avisos para el usuario.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrNoRows            = errors.New("No rows to remove")
	ErrRowNotFound       = errors.New("fila no encontrada")
	ErrExportUnavailable = errors.New("exportación no disponible")
	ErrSessionClosed     = errors.New("sesión cerrada")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrTooManySessions   = errors.New("demasiadas sesiones abiertas")
)
