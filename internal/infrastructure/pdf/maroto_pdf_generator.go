// Package pdf genera la versión PDF de la factura a partir del mismo documento
// que se rasteriza para la imagen.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TAX INVOICE                 │  Invoice No + Date           │
//	│  Bill To                                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Description | HSN | … | CGST | SGST | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Items / Subtotal / CGST / SGST / Grand Total      │
//	│  QR: número de factura + total                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
)

var _ export.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ancho (grilla de 12) por columna de la tabla; Description ocupa dos.
var columnSizes = map[string]int{"Description": 2}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author va a los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, doc editor.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(doc.Columns))
	m.AddRows(tableDetailRows(doc)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Totals))

	if qr := qrRow(doc); qr != nil {
		m.AddRows(line.NewRow(3))
		m.AddRows(qr)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y destinatario (izq), número y fecha (der).
func headerRow(doc editor.Document) core.Row {
	number, date, billTo := field(doc, "Invoice No"), field(doc, "Date"), field(doc, "Bill To")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bill To: "+nonEmpty(billTo, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(number, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+nonEmpty(date, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(columns []string) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(columnSize(c)).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: columnAlign(c),
			Color: colorPrimary, Top: 2, Left: 0.5, Right: 0.5,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por ítem, en el orden del documento.
func tableDetailRows(doc editor.Document) []core.Row {
	result := make([]core.Row, 0, len(doc.Rows))
	for _, cells := range doc.Rows {
		cols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			name := ""
			if i < len(doc.Columns) {
				name = doc.Columns[i]
			}
			cols = append(cols, col.New(columnSize(name)).Add(text.New(
				pdfText(cell.Value),
				props.Text{Size: 7, Align: columnAlign(name), Top: 1, Left: 0.5, Right: 0.5},
			)))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha; el último va resaltado.
func totalsRow(totals []editor.Field) core.Row {
	labels := make([]core.Component, 0, len(totals))
	values := make([]core.Component, 0, len(totals))
	for i, t := range totals {
		top := float64(i) * 5
		p := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top}
		v := props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}
		if i == len(totals)-1 {
			p.Size, p.Color = 10, colorPrimary
			v.Size, v.Color, v.Style = 10, colorPrimary, fontstyle.Bold
		}
		labels = append(labels, text.New(t.Label+":", p))
		values = append(values, text.New(pdfText(t.Value), v))
	}

	return row.New(float64(len(totals))*5 + 4).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

// qrRow: referencia de pago (número + total). nil sin número de factura.
func qrRow(doc editor.Document) core.Row {
	number := field(doc, "Invoice No")
	if number == "" {
		return nil
	}
	grand := ""
	if n := len(doc.Totals); n > 0 {
		grand = pdfText(doc.Totals[n-1].Value)
	}
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(number+"|"+grand, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(text.New("Invoice "+number+" · "+grand, props.Text{
			Size: 8, Top: 12, Left: 3, Color: colorGray,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func field(doc editor.Document, label string) string {
	for _, f := range doc.Fields {
		if f.Label == label {
			return f.Value
		}
	}
	return ""
}

func columnSize(name string) int {
	if s, ok := columnSizes[name]; ok {
		return s
	}
	return 1
}

func columnAlign(name string) align.Type {
	switch name {
	case "Description", "HSN", "Mfg":
		return align.Left
	case "#":
		return align.Center
	default:
		return align.Right
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// pdfText reemplaza el símbolo de rupia: helvetica (cp1252) no lo tiene.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs. ")
}
