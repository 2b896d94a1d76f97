package editor

import (
	"strconv"
	"strings"

	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

// InputStyle estilo interactivo de un campo editable.
type InputStyle struct {
	Border     bool
	Background bool
	Outline    bool
}

// Field celda o campo con etiqueta. Input indica que el usuario lo edita.
type Field struct {
	Label string
	Value string
	Input bool
	Style InputStyle
}

// Control botón o grupo de acciones del editor (no forma parte de la factura impresa).
type Control struct {
	ID     string
	Class  string
	Label  string
	Hidden bool
}

// Document representación renderizable de la factura, equivalente al subárbol visible del editor.
type Document struct {
	Title    string
	FontSize float64
	Fields   []Field
	Columns  []string
	Rows     [][]Field
	Totals   []Field
	Controls []Control
}

// Columnas de la tabla de ítems.
var documentColumns = []string{
	"#", "Description", "HSN", "Mfg", "Qty", "Rate",
	"CGST %", "CGST", "SGST %", "SGST", "Total",
}

var defaultInputStyle = InputStyle{Border: true, Background: true, Outline: true}

// BuildDocument arma el documento a partir del estado calculado.
func BuildDocument(snap Snapshot, f *invoice.Formatter, fontSize float64) Document {
	input := func(label, value string) Field {
		return Field{Label: label, Value: value, Input: true, Style: defaultInputStyle}
	}
	cell := func(value string) Field { return Field{Value: value} }

	doc := Document{
		Title:    "TAX INVOICE",
		FontSize: fontSize,
		Fields: []Field{
			input("Invoice No", snap.Header.Number),
			input("Date", snap.Header.Date),
			input("Bill To", snap.Header.BillTo),
		},
		Columns: append([]string(nil), documentColumns...),
		Rows:    make([][]Field, 0, len(snap.Rows)),
		Controls: []Control{
			{ID: "add-item", Class: "table-actions", Label: "Add Item"},
			{ID: "remove-item", Class: "table-actions", Label: "Remove Item"},
			{ID: "download-image", Class: "form-actions", Label: "Download Image"},
		},
	}

	for _, r := range snap.Rows {
		doc.Rows = append(doc.Rows, []Field{
			cell(strconv.Itoa(r.Index)),
			input("", r.Item.Description),
			input("", r.Item.HSN),
			input("", r.Item.MfgDate),
			input("", r.Item.Quantity.String()),
			input("", r.Item.Rate.String()),
			input("", r.Item.CGSTPercent.String()),
			cell(f.Amount(r.Result.CGST)),
			input("", r.Item.SGSTPercent.String()),
			cell(f.Amount(r.Result.SGST)),
			cell(f.Amount(r.Result.Total)),
		})
	}

	doc.Totals = []Field{
		{Label: "Items", Value: f.Amount(snap.Totals.ItemCount)},
		{Label: "Subtotal", Value: f.Amount(snap.Totals.Subtotal)},
		{Label: "CGST", Value: f.Amount(snap.Totals.TotalCGST)},
		{Label: "SGST", Value: f.Amount(snap.Totals.TotalSGST)},
		{Label: "Grand Total", Value: f.Currency(snap.Totals.GrandTotal)},
	}
	return doc
}

// Clone copia profunda; la exportación trabaja sobre la copia.
func (d Document) Clone() Document {
	out := d
	out.Fields = append([]Field(nil), d.Fields...)
	out.Columns = append([]string(nil), d.Columns...)
	out.Totals = append([]Field(nil), d.Totals...)
	out.Controls = append([]Control(nil), d.Controls...)
	out.Rows = make([][]Field, len(d.Rows))
	for i, r := range d.Rows {
		out.Rows[i] = append([]Field(nil), r...)
	}
	return out
}

// HideControls oculta los controles que coinciden con algún selector "#id" o ".clase".
func (d *Document) HideControls(selectors ...string) {
	for i := range d.Controls {
		c := &d.Controls[i]
		for _, sel := range selectors {
			switch {
			case strings.HasPrefix(sel, "#") && c.ID == sel[1:]:
				c.Hidden = true
			case strings.HasPrefix(sel, ".") && c.Class == sel[1:]:
				c.Hidden = true
			}
		}
	}
}

// FlattenInputs quita borde, fondo y outline de los campos editables para que se vean como texto.
func (d *Document) FlattenInputs() {
	flat := func(fs []Field) {
		for i := range fs {
			if fs[i].Input {
				fs[i].Style = InputStyle{}
			}
		}
	}
	flat(d.Fields)
	for _, r := range d.Rows {
		flat(r)
	}
}

// VisibleControls controles no ocultos.
func (d Document) VisibleControls() []Control {
	var out []Control
	for _, c := range d.Controls {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}
