package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

func item(qty, rate, cgst, sgst float64) entity.LineItem {
	return entity.LineItem{
		Quantity:    decimal.NewFromFloat(qty),
		Rate:        decimal.NewFromFloat(rate),
		CGSTPercent: decimal.NewFromFloat(cgst),
		SGSTPercent: decimal.NewFromFloat(sgst),
	}
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got)
}

// Escenario de referencia: 2 × 100 con CGST 9% y SGST 9%.
func TestCompute_Escenario(t *testing.T) {
	r := invoice.Compute(item(2, 100, 9, 9))

	assertDec(t, "200", r.Base, "base")
	assertDec(t, "18", r.CGST, "cgst")
	assertDec(t, "18", r.SGST, "sgst")
	assertDec(t, "236", r.Total, "total")
	assertDec(t, "2", r.Quantity, "cantidad")
}

func TestCompute_TotalEsSumaDeComponentes(t *testing.T) {
	cases := []entity.LineItem{
		item(3, 19.99, 2.5, 2.5),
		item(0.333, 1234.56, 14, 14),
		item(7, 0.01, 0, 28),
		item(1, 1, 150, -5), // porcentajes fuera de rango se aceptan
	}
	for _, it := range cases {
		r := invoice.Compute(it)
		assert.True(t, r.Total.Equal(r.Base.Add(r.CGST).Add(r.SGST)),
			"total debe ser base + cgst + sgst para %+v", it)
	}
}

func TestCompute_CantidadOTarifaCero(t *testing.T) {
	for _, it := range []entity.LineItem{item(0, 500, 9, 9), item(4, 0, 18, 18), entity.NewLineItem()} {
		r := invoice.Compute(it)
		assert.True(t, r.Base.IsZero())
		assert.True(t, r.CGST.IsZero())
		assert.True(t, r.SGST.IsZero())
		assert.True(t, r.Total.IsZero())
	}
}

func TestCompute_PorcentajesSinClamp(t *testing.T) {
	r := invoice.Compute(item(1, 100, 150, 0))
	assertDec(t, "150", r.CGST, "cgst > 100% no se recorta")
	assertDec(t, "250", r.Total, "total")
}

func TestAggregate_Vacio(t *testing.T) {
	totals := invoice.Aggregate(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalCGST.IsZero())
	assert.True(t, totals.TotalSGST.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
	assert.True(t, totals.ItemCount.IsZero())
}

func TestAggregate_DosFilas(t *testing.T) {
	totals := invoice.Aggregate(invoice.ComputeAll([]entity.LineItem{
		item(2, 100, 9, 9),
		item(2, 100, 9, 9),
	}))

	assertDec(t, "400", totals.Subtotal, "subtotal")
	assertDec(t, "36", totals.TotalCGST, "total cgst")
	assertDec(t, "36", totals.TotalSGST, "total sgst")
	assertDec(t, "472", totals.GrandTotal, "gran total")
	assertDec(t, "4", totals.ItemCount, "cantidad de ítems")
}

func TestAggregate_Conmutativo(t *testing.T) {
	a := item(3, 33.33, 6, 6)
	b := item(1.5, 999.99, 12, 12)

	ab := invoice.Aggregate([]entity.LineResult{invoice.Compute(a), invoice.Compute(b)})
	ba := invoice.Aggregate([]entity.LineResult{invoice.Compute(b), invoice.Compute(a)})

	assert.True(t, ab.Subtotal.Equal(invoice.Compute(a).Base.Add(invoice.Compute(b).Base)))
	assert.True(t, ab.Subtotal.Equal(ba.Subtotal))
	assert.True(t, ab.GrandTotal.Equal(ba.GrandTotal))
	assert.True(t, ab.ItemCount.Equal(ba.ItemCount))
}

func TestAggregate_GranTotalEsSumaDeTotalesDeFila(t *testing.T) {
	items := []entity.LineItem{item(2, 10.5, 9, 9), item(5, 3.2, 2.5, 2.5), item(1, 99, 0, 0)}
	results := invoice.ComputeAll(items)
	sum := decimal.Zero
	for _, r := range results {
		sum = sum.Add(r.Total)
	}
	assert.True(t, invoice.Aggregate(results).GrandTotal.Equal(sum))
}
