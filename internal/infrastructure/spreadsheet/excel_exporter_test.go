package spreadsheet_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/infrastructure/spreadsheet"
)

func snapshot(rows int) editor.Snapshot {
	items := make([]entity.LineItem, 0, rows)
	for i := 0; i < rows; i++ {
		it := entity.NewLineItem()
		it.Description = "Widget"
		it.Quantity = decimal.NewFromInt(2)
		it.Rate = decimal.NewFromInt(100)
		it.CGSTPercent = decimal.NewFromInt(9)
		it.SGSTPercent = decimal.NewFromInt(9)
		items = append(items, it)
	}
	return editor.NewSession("s1", entity.InvoiceHeader{Number: "INV-9"}, items).Snapshot()
}

func TestExportXLSX_CeldasNumericas(t *testing.T) {
	out, err := spreadsheet.NewExcelExporter().ExportXLSX(context.Background(), snapshot(2))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	number, err := f.GetCellValue("Invoice", "B1")
	require.NoError(t, err)
	assert.Equal(t, "INV-9", number)

	desc, err := f.GetCellValue("Invoice", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Widget", desc)

	typ, err := f.GetCellType("Invoice", "L6")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)

	// filas 6 y 7 ítems, totales desde la 9: Items, Subtotal, CGST, SGST, Grand Total
	label, err := f.GetCellValue("Invoice", "K13")
	require.NoError(t, err)
	assert.Equal(t, "Grand Total", label)

	raw, err := f.GetCellValue("Invoice", "L13", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "472", raw)
}

func TestExportXLSX_SinFilas(t *testing.T) {
	out, err := spreadsheet.NewExcelExporter().ExportXLSX(context.Background(), snapshot(0))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	raw, err := f.GetCellValue("Invoice", "L11", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0", raw)
}
