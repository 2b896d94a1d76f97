package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EditorUC *editor.UseCase
	ExportUC *export.UseCase
	Tokens   TokenConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Público
	sessionHandler := NewSessionHandler(deps.EditorUC, deps.Tokens)
	api.Post("/sessions", sessionHandler.Open)
	api.Post("/calculate", NewCalculateHandler(deps.EditorUC).Calculate)

	// Sesión (requiere Bearer Token de la sesión)
	session := api.Group("/session", SessionMiddleware(deps.Tokens.Secret))
	session.Get("/", sessionHandler.Get)
	session.Delete("/", sessionHandler.Close)
	session.Put("/header", sessionHandler.SetHeader)
	session.Put("/viewport", sessionHandler.SetViewport)
	session.Get("/layout", sessionHandler.Layout)

	rows := session.Group("/rows")
	rows.Post("/", sessionHandler.AddRow)
	rows.Delete("/last", sessionHandler.RemoveLastRow)
	rows.Patch("/:index", sessionHandler.UpdateRow)

	exportHandler := NewExportHandler(deps.ExportUC)
	session.Get("/export.png", exportHandler.Image)
	session.Get("/export.pdf", exportHandler.PDF)
	session.Get("/export.xlsx", exportHandler.Spreadsheet)
}
