// Package invoice contiene el motor de recálculo de la factura (servicio de dominio puro).
//
//	base  = cantidad × tarifa
//	cgst  = base × cgst% / 100
//	sgst  = base × sgst% / 100
//	total = base + cgst + sgst
//
// No se redondea al calcular; el redondeo a dos decimales es responsabilidad del formateo.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-editor/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Compute calcula los valores derivados de una fila. Función pura.
// Los porcentajes fuera de [0,100] se aceptan tal cual (sin validación).
func Compute(item entity.LineItem) entity.LineResult {
	base := item.Quantity.Mul(item.Rate)
	cgst := base.Mul(item.CGSTPercent).Div(hundred)
	sgst := base.Mul(item.SGSTPercent).Div(hundred)
	return entity.LineResult{
		Quantity: item.Quantity,
		Base:     base,
		CGST:     cgst,
		SGST:     sgst,
		Total:    base.Add(cgst).Add(sgst),
	}
}

// ComputeAll aplica Compute a cada fila conservando el orden.
func ComputeAll(items []entity.LineItem) []entity.LineResult {
	results := make([]entity.LineResult, 0, len(items))
	for _, it := range items {
		results = append(results, Compute(it))
	}
	return results
}

// Aggregate suma los resultados en orden de fila. Secuencia vacía → totales en cero.
func Aggregate(results []entity.LineResult) entity.InvoiceTotals {
	totals := entity.InvoiceTotals{
		Subtotal:  decimal.Zero,
		TotalCGST: decimal.Zero,
		TotalSGST: decimal.Zero,
		ItemCount: decimal.Zero,
	}
	for _, r := range results {
		totals.Subtotal = totals.Subtotal.Add(r.Base)
		totals.TotalCGST = totals.TotalCGST.Add(r.CGST)
		totals.TotalSGST = totals.TotalSGST.Add(r.SGST)
		totals.ItemCount = totals.ItemCount.Add(r.Quantity)
	}
	totals.GrandTotal = totals.Subtotal.Add(totals.TotalCGST).Add(totals.TotalSGST)
	return totals
}
