package export

import (
	"context"
	"image/color"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
)

// RenderOptions opciones de captura de la imagen.
type RenderOptions struct {
	Scale      float64
	Background color.Color
	UseCORS    bool // recursos remotos; el render local no carga ninguno
}

// ImageRenderer rasteriza el documento a PNG.
type ImageRenderer interface {
	RenderPNG(ctx context.Context, doc editor.Document, opts RenderOptions) ([]byte, error)
}

// PDFGenerator genera la representación PDF del documento.
type PDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc editor.Document) ([]byte, error)
}

// SpreadsheetExporter genera una hoja de cálculo con valores numéricos.
type SpreadsheetExporter interface {
	ExportXLSX(ctx context.Context, snap editor.Snapshot) ([]byte, error)
}
