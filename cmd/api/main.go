// @title        Invoice Editor API
// @version      1.0
// @description  Editor de facturas con cálculo de CGST/SGST, ajuste de fuente y exportación.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <token de sesión>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/invoice-editor/docs"
	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
	infrapdf "github.com/jhoicas/invoice-editor/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-editor/internal/infrastructure/render"
	"github.com/jhoicas/invoice-editor/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/invoice-editor/internal/interfaces/http"
	"github.com/jhoicas/invoice-editor/pkg/config"
	"github.com/jhoicas/invoice-editor/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		// los tokens emitidos dejan de valer al reiniciar; las sesiones tampoco sobreviven
		cfg.Session.Secret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío, se usa un secreto efímero")
	}

	formatter := invoice.NewFormatter(cfg.Format.Locale, cfg.Format.CurrencySymbol)

	// Render: mide el documento para el ajuste de fuente y genera el PNG.
	// Sin fuentes el editor sigue funcionando, pero sin medición ni imagen.
	var (
		measurer editor.TextMeasurer
		renderer export.ImageRenderer
	)
	if r, err := render.NewRenderer(); err != nil {
		log.Error().Err(err).Msg("render no disponible, exportación PNG deshabilitada")
	} else {
		measurer, renderer = r, r
	}

	fitCfg := editor.FitConfig{
		BaseFontSize:    cfg.Editor.BaseFontSize,
		MinFontSize:     cfg.Editor.MinFontSize,
		Step:            cfg.Editor.FontStep,
		MaxIterations:   cfg.Editor.MaxFitIterations,
		Debounce:        time.Duration(cfg.Editor.DebounceMs) * time.Millisecond,
		RowAddDelay:     time.Duration(cfg.Editor.RowAddDelayMs) * time.Millisecond,
		DefaultViewport: cfg.Editor.DefaultViewport,
	}
	registry := editor.NewRegistry(editor.RegistryConfig{
		TTL:     time.Duration(cfg.Session.Expiration) * time.Minute,
		MaxOpen: cfg.Session.MaxOpen,
	})
	editorUC := editor.NewUseCase(registry, formatter, measurer, fitCfg, log.Component("editor"))

	// Desalojo de sesiones cuyo token ya venció; se detiene al apagar.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go editorUC.SweepExpired(sweepCtx, time.Duration(cfg.Session.SweepSeconds)*time.Second)

	exportUC := export.NewUseCase(
		editorUC,
		renderer,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		spreadsheet.NewExcelExporter(),
		export.Options{
			Scale:           cfg.Export.Scale,
			Background:      cfg.Export.Background,
			UseCORS:         cfg.Export.UseCORS,
			DefaultFilename: cfg.Export.DefaultFilename,
		},
		log.Component("export"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.AllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Disposition",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Invoice Editor API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI deshabilitada")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EditorUC: editorUC,
		ExportUC: exportUC,
		Tokens: httpRouter.TokenConfig{
			Secret:     cfg.Session.Secret,
			Issuer:     cfg.Session.Issuer,
			ExpMinutes: cfg.Session.Expiration,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
