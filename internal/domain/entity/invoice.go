package entity

// InvoiceHeader datos de cabecera editables de la factura.
// Number se usa además para nombrar los archivos exportados.
type InvoiceHeader struct {
	Number string
	Date   string
	BillTo string
}
