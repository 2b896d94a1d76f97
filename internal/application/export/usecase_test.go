package export_test

import (
	"context"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
	"github.com/jhoicas/invoice-editor/internal/domain"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

type fakeSource struct {
	header entity.InvoiceHeader
	err    error
}

func (f fakeSource) Capture(string) (editor.Capture, error) {
	if f.err != nil {
		return editor.Capture{}, f.err
	}
	snap := editor.NewSession("s1", f.header, []entity.LineItem{entity.NewLineItem()}).Snapshot()
	return editor.Capture{
		Snapshot: snap,
		Document: editor.BuildDocument(snap, invoice.NewFormatter("en-IN", "₹"), 11.5),
	}, nil
}

type fakeRenderer struct {
	doc  editor.Document
	opts export.RenderOptions
}

func (r *fakeRenderer) RenderPNG(_ context.Context, doc editor.Document, opts export.RenderOptions) ([]byte, error) {
	r.doc = doc
	r.opts = opts
	return []byte("png"), nil
}

func TestExportImage_SinRenderer(t *testing.T) {
	uc := export.NewUseCase(fakeSource{}, nil, nil, nil, export.Options{}, zerolog.Nop())

	_, _, err := uc.ExportImage(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrExportUnavailable)
	_, _, err = uc.ExportPDF(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrExportUnavailable)
	_, _, err = uc.ExportSpreadsheet(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrExportUnavailable)
}

func TestExportImage_NombreYOpciones(t *testing.T) {
	r := &fakeRenderer{}
	uc := export.NewUseCase(fakeSource{header: entity.InvoiceHeader{Number: "INV/2024/07"}}, r, nil, nil,
		export.Options{Scale: 2, Background: "#ffffff", UseCORS: true}, zerolog.Nop())

	data, name, err := uc.ExportImage(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, []byte("png"), data)
	assert.Equal(t, "INV-2024-07.png", name)
	assert.Equal(t, 2.0, r.opts.Scale)
	assert.True(t, r.opts.UseCORS)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, r.opts.Background)
	assert.Equal(t, 11.5, r.doc.FontSize, "se exporta con la fuente ajustada")
}

func TestExportImage_NombrePorDefecto(t *testing.T) {
	r := &fakeRenderer{}
	uc := export.NewUseCase(fakeSource{}, r, nil, nil, export.Options{}, zerolog.Nop())

	_, name, err := uc.ExportImage(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "invoice.png", name)
}

func TestExportImage_PreCapturaOcultaControles(t *testing.T) {
	r := &fakeRenderer{}
	uc := export.NewUseCase(fakeSource{}, r, nil, nil, export.Options{}, zerolog.Nop())

	_, _, err := uc.ExportImage(context.Background(), "s1")
	require.NoError(t, err)

	assert.Empty(t, r.doc.VisibleControls())
	for _, f := range r.doc.Fields {
		assert.Equal(t, editor.InputStyle{}, f.Style)
	}
}

func TestExportImage_FondoInvalidoUsaBlanco(t *testing.T) {
	r := &fakeRenderer{}
	uc := export.NewUseCase(fakeSource{}, r, nil, nil, export.Options{Background: "#zz"}, zerolog.Nop())

	_, _, err := uc.ExportImage(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, color.White, r.opts.Background)
}

func TestExportImage_FondoCorto(t *testing.T) {
	r := &fakeRenderer{}
	uc := export.NewUseCase(fakeSource{}, r, nil, nil, export.Options{Background: "#f00"}, zerolog.Nop())

	_, _, err := uc.ExportImage(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, r.opts.Background)
}

func TestExportImage_SesionInexistente(t *testing.T) {
	uc := export.NewUseCase(fakeSource{err: domain.ErrNotFound}, &fakeRenderer{}, nil, nil, export.Options{}, zerolog.Nop())

	_, _, err := uc.ExportImage(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportImage_HookPersonalizado(t *testing.T) {
	r := &fakeRenderer{}
	called := false
	uc := export.NewUseCase(fakeSource{}, r, nil, nil, export.Options{
		PreCapture: func(doc *editor.Document) {
			called = true
			doc.Title = "COPY"
		},
	}, zerolog.Nop())

	_, _, err := uc.ExportImage(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "COPY", r.doc.Title)
}
