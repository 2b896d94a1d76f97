// Package spreadsheet exporta la factura a XLSX con celdas numéricas,
// para que los montos se puedan seguir operando en la hoja.
package spreadsheet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
)

var _ export.SpreadsheetExporter = (*ExcelExporter)(nil)

const sheetName = "Invoice"

var itemHeaders = []string{
	"#", "Description", "HSN", "Mfg Date", "Qty", "Rate",
	"CGST %", "CGST", "SGST %", "SGST", "Base", "Total",
}

// ExcelExporter implementa export.SpreadsheetExporter con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ExportXLSX escribe cabecera, ítems y totales en una sola hoja.
func (e *ExcelExporter) ExportXLSX(ctx context.Context, snap editor.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("spreadsheet: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: estilo: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: estilo: %w", err)
	}
	money := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &money})
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: estilo: %w", err)
	}

	w := &sheetWriter{f: f}

	// cabecera de la factura
	w.set(1, 1, "Invoice No")
	w.set(2, 1, snap.Header.Number)
	w.set(1, 2, "Date")
	w.set(2, 2, snap.Header.Date)
	w.set(1, 3, "Bill To")
	w.set(2, 3, snap.Header.BillTo)
	w.style(1, 1, 1, 3, bold)

	// tabla de ítems
	const tableTop = 5
	for i, h := range itemHeaders {
		w.set(i+1, tableTop, h)
	}
	w.style(1, tableTop, len(itemHeaders), tableTop, headerStyle)

	for i, r := range snap.Rows {
		y := tableTop + 1 + i
		w.set(1, y, r.Index)
		w.set(2, y, r.Item.Description)
		w.set(3, y, r.Item.HSN)
		w.set(4, y, r.Item.MfgDate)
		w.num(5, y, r.Item.Quantity)
		w.num(6, y, r.Item.Rate)
		w.num(7, y, r.Item.CGSTPercent)
		w.num(8, y, r.Result.CGST)
		w.num(9, y, r.Item.SGSTPercent)
		w.num(10, y, r.Result.SGST)
		w.num(11, y, r.Result.Base)
		w.num(12, y, r.Result.Total)
	}
	if n := len(snap.Rows); n > 0 {
		w.style(6, tableTop+1, 12, tableTop+n, moneyStyle)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// totales
	top := tableTop + len(snap.Rows) + 2
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Items", snap.Totals.ItemCount},
		{"Subtotal", snap.Totals.Subtotal},
		{"CGST", snap.Totals.TotalCGST},
		{"SGST", snap.Totals.TotalSGST},
		{"Grand Total", snap.Totals.GrandTotal},
	}
	for i, t := range totals {
		w.set(11, top+i, t.label)
		w.num(12, top+i, t.value)
	}
	w.style(11, top, 11, top+len(totals)-1, bold)
	w.style(12, top, 12, top+len(totals)-1, moneyStyle)

	if w.err != nil {
		return nil, fmt.Errorf("spreadsheet: escribir celdas: %w", w.err)
	}
	if err := f.SetColWidth(sheetName, "A", "L", 14); err != nil {
		return nil, fmt.Errorf("spreadsheet: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no chequear cada celda.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellValue(sheetName, cell, v)
}

func (w *sheetWriter) num(col, row int, d decimal.Decimal) {
	w.set(col, row, d.InexactFloat64())
}

func (w *sheetWriter) style(c1, r1, c2, r2, style int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(c1, r1)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(c2, r2)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(sheetName, from, to, style)
}
