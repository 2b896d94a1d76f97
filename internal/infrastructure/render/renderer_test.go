package render_test

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
	"github.com/jhoicas/invoice-editor/internal/infrastructure/render"
)

func sampleDoc(fontSize float64, rows int) editor.Document {
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
	header := entity.InvoiceHeader{Number: "INV-001", Date: "2024-07-01", BillTo: "Acme"}
	snap := editor.NewSession("s1", header, items).Snapshot()
	return editor.BuildDocument(snap, invoice.NewFormatter("en-IN", "₹"), fontSize)
}

func TestContainerWidth_CreceConLaFuente(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	small := r.ContainerWidth(sampleDoc(9, 2))
	large := r.ContainerWidth(sampleDoc(12, 2))

	assert.Greater(t, small, 0.0)
	assert.Greater(t, large, small)
}

func TestContainerWidth_TextoLargoEnsancha(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	doc := sampleDoc(12, 1)
	before := r.ContainerWidth(doc)
	doc.Rows[0][1].Value = "A very long description that should push the table wider than before"
	after := r.ContainerWidth(doc)

	assert.Greater(t, after, before)
}

func TestContainerWidth_FuenteInvalida(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.ContainerWidth(sampleDoc(0, 1)))
}

func TestRenderPNG_DimensionesYFondo(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	doc := sampleDoc(12, 2)
	export.StripInteractive(&doc)

	data, err := r.RenderPNG(context.Background(), doc, export.RenderOptions{
		Scale:      2,
		Background: color.White,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	want := r.ContainerWidth(doc) * 2
	assert.InEpsilon(t, want, float64(img.Bounds().Dx()), 0.05)

	cr, cg, cb, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), cr)
	assert.Equal(t, uint32(0xffff), cg)
	assert.Equal(t, uint32(0xffff), cb)
}

func TestRenderPNG_EscalaPorDefecto(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	doc := sampleDoc(12, 1)
	data, err := r.RenderPNG(context.Background(), doc, export.RenderOptions{})
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int(math.Ceil(r.ContainerWidth(doc))), cfg.Width)
}

func TestRenderPNG_MasFilasMasAlto(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	one, err := r.RenderPNG(context.Background(), sampleDoc(12, 1), export.RenderOptions{Scale: 1})
	require.NoError(t, err)
	five, err := r.RenderPNG(context.Background(), sampleDoc(12, 5), export.RenderOptions{Scale: 1})
	require.NoError(t, err)

	c1, err := png.DecodeConfig(bytes.NewReader(one))
	require.NoError(t, err)
	c5, err := png.DecodeConfig(bytes.NewReader(five))
	require.NoError(t, err)
	assert.Greater(t, c5.Height, c1.Height)
}

func TestRenderPNG_ContextoCancelado(t *testing.T) {
	r, err := render.NewRenderer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RenderPNG(ctx, sampleDoc(12, 1), export.RenderOptions{Scale: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
