// Package render rasteriza la factura a PNG y mide su ancho para el ajuste de fuente.
// Usa las fuentes Go (gofont) embebidas, así que no depende de fuentes del sistema.
//
// Disposición (márgenes y rellenos proporcionales al tamaño de fuente):
//
//	┌───────────────────────────────────────────────┐
//	│ TAX INVOICE                                   │
//	│ Invoice No: …   Date: …   Bill To: …          │
//	│ # │ Description │ … │ CGST │ SGST │ Total     │
//	│ 1 │ …           │ … │      │      │           │
//	│                          Subtotal     400.00  │
//	│                       Grand Total    ₹472.00  │
//	│ [Add Item] [Remove Item] [Download Image]     │
//	└───────────────────────────────────────────────┘
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/application/export"
)

var (
	_ export.ImageRenderer = (*Renderer)(nil)
	_ editor.TextMeasurer  = (*Renderer)(nil)
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorText      = color.RGBA{R: 33, G: 37, B: 41, A: 255}
	colorMuted     = color.RGBA{R: 108, G: 117, B: 125, A: 255}
	colorRule      = color.RGBA{R: 222, G: 226, B: 230, A: 255}
	colorInputBg   = color.RGBA{R: 248, G: 249, B: 250, A: 255}
	colorInputLine = color.RGBA{R: 173, G: 181, B: 189, A: 255}
	colorOutline   = color.RGBA{R: 134, G: 183, B: 254, A: 255}
	colorButton    = color.RGBA{R: 13, G: 110, B: 253, A: 255}
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer implementa export.ImageRenderer y editor.TextMeasurer.
// Las fuentes parseadas son de solo lectura; las faces se crean por llamada.
type Renderer struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewRenderer parsea las fuentes embebidas.
func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parsear fuente regular: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parsear fuente bold: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

// ContainerWidth ancho en px del documento con doc.FontSize. Cero si no se puede medir.
func (r *Renderer) ContainerWidth(doc editor.Document) float64 {
	l, err := r.layout(doc, doc.FontSize)
	if err != nil {
		return 0
	}
	defer l.close()
	return l.width
}

// RenderPNG dibuja el documento con la escala y el fondo indicados.
func (r *Renderer) RenderPNG(ctx context.Context, doc editor.Document, opts export.RenderOptions) ([]byte, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	l, err := r.layout(doc, doc.FontSize*scale)
	if err != nil {
		return nil, err
	}
	defer l.close()

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(l.width)), int(math.Ceil(l.height))))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	l.paint(img, doc)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render: codificar png: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Layout ────────────────────────────────────────────────────────────────────

type docLayout struct {
	fs, margin, pad, lh, gap float64

	regular, bold, title font.Face

	titleW    float64
	fieldsW   float64
	colWidths []float64
	tableW    float64
	totLabelW float64
	totValueW float64
	controlsW float64

	contentW float64
	width    float64
	height   float64
}

func (r *Renderer) layout(doc editor.Document, fontSize float64) (*docLayout, error) {
	if fontSize <= 0 {
		return nil, fmt.Errorf("render: tamaño de fuente inválido %v", fontSize)
	}
	newFace := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	}
	l := &docLayout{
		fs:     fontSize,
		margin: fontSize * 2,
		pad:    fontSize * 0.6,
		lh:     fontSize * 1.8,
		gap:    fontSize * 1.5,
	}
	var err error
	if l.regular, err = newFace(r.regular, fontSize); err != nil {
		return nil, fmt.Errorf("render: face regular: %w", err)
	}
	if l.bold, err = newFace(r.bold, fontSize); err != nil {
		l.close()
		return nil, fmt.Errorf("render: face bold: %w", err)
	}
	if l.title, err = newFace(r.bold, fontSize*1.5); err != nil {
		l.close()
		return nil, fmt.Errorf("render: face título: %w", err)
	}

	l.titleW = measure(l.title, doc.Title)

	for i, f := range doc.Fields {
		if i > 0 {
			l.fieldsW += l.gap
		}
		l.fieldsW += measure(l.bold, f.Label+": ") + measure(l.regular, f.Value) + 2*l.pad
	}

	l.colWidths = make([]float64, len(doc.Columns))
	for i, c := range doc.Columns {
		l.colWidths[i] = measure(l.bold, c)
	}
	for _, row := range doc.Rows {
		for i, cell := range row {
			if i >= len(l.colWidths) {
				break
			}
			l.colWidths[i] = math.Max(l.colWidths[i], measure(l.regular, cell.Value))
		}
	}
	for i := range l.colWidths {
		l.colWidths[i] += 2 * l.pad
		l.tableW += l.colWidths[i]
	}

	for _, t := range doc.Totals {
		l.totLabelW = math.Max(l.totLabelW, measure(l.bold, t.Label))
		l.totValueW = math.Max(l.totValueW, measure(l.bold, t.Value))
	}

	for i, c := range doc.VisibleControls() {
		if i > 0 {
			l.controlsW += l.pad
		}
		l.controlsW += measure(l.bold, c.Label) + 2*l.pad
	}

	l.contentW = max(l.titleW, l.fieldsW, l.tableW, l.totLabelW+l.gap+l.totValueW, l.controlsW)
	l.width = l.contentW + 2*l.margin

	l.height = 2*l.margin + l.lh*1.5 + l.lh + l.gap + l.lh*float64(len(doc.Rows)+1) + l.gap + l.lh*float64(len(doc.Totals))
	if len(doc.VisibleControls()) > 0 {
		l.height += l.gap + l.lh
	}
	return l, nil
}

func (l *docLayout) close() {
	for _, f := range []font.Face{l.regular, l.bold, l.title} {
		if f != nil {
			_ = f.Close()
		}
	}
}

// ── Dibujo ────────────────────────────────────────────────────────────────────

func (l *docLayout) paint(img *image.RGBA, doc editor.Document) {
	x0 := l.margin
	y := l.margin

	l.text(img, l.title, colorText, x0, y, l.lh*1.5, doc.Title)
	y += l.lh * 1.5

	x := x0
	for _, f := range doc.Fields {
		label := f.Label + ": "
		lw := measure(l.bold, label)
		l.text(img, l.bold, colorMuted, x, y, l.lh, label)
		vw := measure(l.regular, f.Value) + 2*l.pad
		l.input(img, f, x+lw, y, vw)
		l.text(img, l.regular, colorText, x+lw+l.pad, y, l.lh, f.Value)
		x += lw + vw + l.gap
	}
	y += l.lh + l.gap

	// cabecera de la tabla
	x = x0
	for i, c := range doc.Columns {
		l.text(img, l.bold, colorText, x+l.pad, y, l.lh, c)
		x += l.colWidths[i]
	}
	y += l.lh
	l.hline(img, x0, x0+l.tableW, y, colorText)

	for _, row := range doc.Rows {
		x = x0
		for i, cell := range row {
			if i >= len(l.colWidths) {
				break
			}
			l.input(img, cell, x+1, y+1, l.colWidths[i]-2)
			l.text(img, l.regular, colorText, x+l.pad, y, l.lh, cell.Value)
			x += l.colWidths[i]
		}
		y += l.lh
		l.hline(img, x0, x0+l.tableW, y, colorRule)
	}
	y += l.gap

	// totales alineados a la derecha
	right := x0 + l.contentW
	for i, t := range doc.Totals {
		face := l.regular
		if i == len(doc.Totals)-1 {
			face = l.bold
		}
		l.text(img, l.bold, colorMuted, right-l.totValueW-l.gap-l.totLabelW, y, l.lh, t.Label)
		l.text(img, face, colorText, right-measure(face, t.Value), y, l.lh, t.Value)
		y += l.lh
	}

	controls := doc.VisibleControls()
	if len(controls) == 0 {
		return
	}
	y += l.gap
	x = x0
	for _, c := range controls {
		w := measure(l.bold, c.Label) + 2*l.pad
		l.fill(img, x, y, w, l.lh, colorButton)
		l.text(img, l.bold, colorWhite, x+l.pad, y, l.lh, c.Label)
		x += w + l.pad
	}
}

// input dibuja fondo, borde y outline según el estilo del campo.
func (l *docLayout) input(img *image.RGBA, f editor.Field, x, y, w float64) {
	if !f.Input {
		return
	}
	h := l.lh - 2
	if f.Style.Background {
		l.fill(img, x, y, w, h, colorInputBg)
	}
	if f.Style.Outline {
		l.rect(img, x-1, y-1, w+2, h+2, colorOutline)
	}
	if f.Style.Border {
		l.rect(img, x, y, w, h, colorInputLine)
	}
}

func (l *docLayout) text(img *image.RGBA, face font.Face, c color.Color, x, top, boxH float64, s string) {
	if s == "" {
		return
	}
	m := face.Metrics()
	asc := float64(m.Ascent) / 64
	desc := float64(m.Descent) / 64
	baseline := top + (boxH-(asc+desc))/2 + asc
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(baseline * 64)},
	}
	d.DrawString(s)
}

func (l *docLayout) fill(img *image.RGBA, x, y, w, h float64, c color.Color) {
	r := image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (l *docLayout) hline(img *image.RGBA, x1, x2, y float64, c color.Color) {
	l.fill(img, x1, y, x2-x1, 1, c)
}

func (l *docLayout) rect(img *image.RGBA, x, y, w, h float64, c color.Color) {
	l.fill(img, x, y, w, 1, c)
	l.fill(img, x, y+h-1, w, 1, c)
	l.fill(img, x, y, 1, h, c)
	l.fill(img, x+w-1, y, 1, h, c)
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
