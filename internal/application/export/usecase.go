// Package export genera los archivos descargables de la factura (PNG, PDF, XLSX)
// a partir del estado actual de una sesión del editor.
package export

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/domain"
)

// Selectores de controles interactivos que no deben aparecer en la imagen.
var interactiveSelectors = []string{"#add-item", "#remove-item", "#download-image", ".table-actions", ".form-actions"}

// PreCaptureHook modifica la copia del documento antes de rasterizar.
type PreCaptureHook func(doc *editor.Document)

// StripInteractive oculta botones y acciones y hace que los inputs se vean como texto plano.
func StripInteractive(doc *editor.Document) {
	doc.HideControls(interactiveSelectors...)
	doc.FlattenInputs()
}

// Options configuración de la exportación.
type Options struct {
	Scale           float64
	Background      string // hex, ej. #ffffff
	UseCORS         bool
	DefaultFilename string // sin extensión
	PreCapture      PreCaptureHook
}

// CaptureSource provee el estado de la sesión (editor.UseCase).
type CaptureSource interface {
	Capture(id string) (editor.Capture, error)
}

// UseCase exporta la factura de una sesión.
type UseCase struct {
	source CaptureSource
	image  ImageRenderer
	pdf    PDFGenerator
	sheet  SpreadsheetExporter
	opts   Options
	log    zerolog.Logger
}

// NewUseCase construye el caso de uso. Cualquier generador puede ser nil:
// la exportación correspondiente devuelve domain.ErrExportUnavailable.
func NewUseCase(source CaptureSource, image ImageRenderer, pdf PDFGenerator, sheet SpreadsheetExporter, opts Options, log zerolog.Logger) *UseCase {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	if opts.DefaultFilename == "" {
		opts.DefaultFilename = "invoice"
	}
	if opts.PreCapture == nil {
		opts.PreCapture = StripInteractive
	}
	return &UseCase{source: source, image: image, pdf: pdf, sheet: sheet, opts: opts, log: log}
}

// ExportImage rasteriza la factura a PNG sobre una copia sin controles interactivos.
// El nombre es "<número de factura>.png" o el nombre por defecto.
func (uc *UseCase) ExportImage(ctx context.Context, sessionID string) ([]byte, string, error) {
	if uc.image == nil {
		return nil, "", domain.ErrExportUnavailable
	}
	capture, err := uc.source.Capture(sessionID)
	if err != nil {
		return nil, "", err
	}

	doc := capture.Document.Clone()
	uc.opts.PreCapture(&doc)

	bg, err := parseHexColor(uc.opts.Background)
	if err != nil {
		uc.log.Warn().Err(err).Str("background", uc.opts.Background).Msg("color de fondo inválido, se usa blanco")
		bg = color.White
	}

	data, err := uc.image.RenderPNG(ctx, doc, RenderOptions{
		Scale:      uc.opts.Scale,
		Background: bg,
		UseCORS:    uc.opts.UseCORS,
	})
	if err != nil {
		return nil, "", fmt.Errorf("export: render png: %w", err)
	}

	filename := uc.filename(capture.Snapshot.Header.Number, "png")
	uc.log.Info().Str("session_id", sessionID).Str("filename", filename).Int("bytes", len(data)).Msg("imagen exportada")
	return data, filename, nil
}

// ExportPDF genera el PDF de la factura.
func (uc *UseCase) ExportPDF(ctx context.Context, sessionID string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", domain.ErrExportUnavailable
	}
	capture, err := uc.source.Capture(sessionID)
	if err != nil {
		return nil, "", err
	}
	doc := capture.Document.Clone()
	uc.opts.PreCapture(&doc)

	data, err := uc.pdf.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar pdf: %w", err)
	}
	return data, uc.filename(capture.Snapshot.Header.Number, "pdf"), nil
}

// ExportSpreadsheet genera la hoja XLSX con las filas y los totales.
func (uc *UseCase) ExportSpreadsheet(ctx context.Context, sessionID string) ([]byte, string, error) {
	if uc.sheet == nil {
		return nil, "", domain.ErrExportUnavailable
	}
	capture, err := uc.source.Capture(sessionID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.sheet.ExportXLSX(ctx, capture.Snapshot)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar xlsx: %w", err)
	}
	return data, uc.filename(capture.Snapshot.Header.Number, "xlsx"), nil
}

var filenameReplacer = strings.NewReplacer("/", "-", "\\", "-", "\"", "", "\n", "", "\r", "")

func (uc *UseCase) filename(invoiceNumber, ext string) string {
	base := filenameReplacer.Replace(strings.TrimSpace(invoiceNumber))
	if base == "" {
		base = uc.opts.DefaultFilename
	}
	return base + "." + ext
}

// parseHexColor acepta #rgb y #rrggbb.
func parseHexColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, fmt.Errorf("color hex inválido: %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color hex inválido: %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
