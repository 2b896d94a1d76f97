package entity

import "github.com/shopspring/decimal"

// LineItem representa una fila editable de la tabla de la factura.
// No tiene identidad propia: se identifica por su posición.
type LineItem struct {
	Description string
	HSN         string
	MfgDate     string // texto libre, tal como lo escribe el usuario
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	CGSTPercent decimal.Decimal
	SGSTPercent decimal.Decimal
}

// NewLineItem devuelve una fila vacía con todos los valores numéricos en cero.
func NewLineItem() LineItem {
	return LineItem{
		Quantity:    decimal.Zero,
		Rate:        decimal.Zero,
		CGSTPercent: decimal.Zero,
		SGSTPercent: decimal.Zero,
	}
}

// LineResult valores derivados de una fila. Se recalcula en cada cambio, nunca se cachea.
type LineResult struct {
	Quantity decimal.Decimal
	Base     decimal.Decimal
	CGST     decimal.Decimal
	SGST     decimal.Decimal
	Total    decimal.Decimal
}

// InvoiceTotals suma elemento a elemento de los LineResult actuales.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	TotalCGST  decimal.Decimal
	TotalSGST  decimal.Decimal
	GrandTotal decimal.Decimal
	ItemCount  decimal.Decimal
}
