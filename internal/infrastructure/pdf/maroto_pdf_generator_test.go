package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
	"github.com/jhoicas/invoice-editor/internal/infrastructure/pdf"
)

func buildDoc(number string, rows int) editor.Document {
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
	snap := editor.NewSession("s1", entity.InvoiceHeader{Number: number, Date: "2024-07-01"}, items).Snapshot()
	return editor.BuildDocument(snap, invoice.NewFormatter("en-IN", "₹"), 12)
}

func TestGenerateInvoicePDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("Invoice Editor")

	out, err := g.GenerateInvoicePDF(context.Background(), buildDoc("INV-001", 3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateInvoicePDF_SinNumeroNiFilas(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator("")

	out, err := g.GenerateInvoicePDF(context.Background(), buildDoc("", 0))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateInvoicePDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewMarotoPDFGenerator("").GenerateInvoicePDF(ctx, buildDoc("INV-1", 1))
	assert.ErrorIs(t, err, context.Canceled)
}
