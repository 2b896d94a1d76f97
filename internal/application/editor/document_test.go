package editor_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

func sampleSnapshot() editor.Snapshot {
	s := editor.NewSession("s1", entity.InvoiceHeader{Number: "INV-7"}, []entity.LineItem{{
		Description: "Widget",
		Quantity:    decimal.NewFromInt(2),
		Rate:        decimal.NewFromInt(100),
		CGSTPercent: decimal.NewFromInt(9),
		SGSTPercent: decimal.NewFromInt(9),
	}})
	return s.Snapshot()
}

func TestBuildDocument(t *testing.T) {
	doc := editor.BuildDocument(sampleSnapshot(), invoice.NewFormatter("en-IN", "₹"), 12)

	assert.Equal(t, 12.0, doc.FontSize)
	require.Len(t, doc.Rows, 1)
	assert.Len(t, doc.Rows[0], len(doc.Columns))
	assert.Equal(t, "1", doc.Rows[0][0].Value)
	assert.Equal(t, "236.00", doc.Rows[0][10].Value)
	assert.Equal(t, "₹236.00", doc.Totals[len(doc.Totals)-1].Value)
	assert.Equal(t, "INV-7", doc.Fields[0].Value)
	assert.Len(t, doc.VisibleControls(), 3)
}

func TestDocument_PreCaptura(t *testing.T) {
	doc := editor.BuildDocument(sampleSnapshot(), invoice.NewFormatter("en-IN", "₹"), 12)
	clone := doc.Clone()

	clone.HideControls("#download-image", ".table-actions")
	clone.FlattenInputs()

	assert.Empty(t, clone.VisibleControls())
	assert.Equal(t, editor.InputStyle{}, clone.Fields[0].Style)
	assert.Equal(t, editor.InputStyle{}, clone.Rows[0][1].Style)

	// el original no se modifica
	assert.Len(t, doc.VisibleControls(), 3)
	assert.True(t, doc.Fields[0].Style.Border)
	assert.True(t, doc.Rows[0][1].Style.Border)
}
