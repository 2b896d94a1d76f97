package dto

// RowInput valores de una fila tal como los escribe el usuario (texto libre).
// Los campos numéricos aceptan string o número JSON y se interpretan de forma
// tolerante: texto inválido → 0.
type RowInput struct {
	Description string     `json:"description,omitempty"`
	HSN         string     `json:"hsn,omitempty"`
	MfgDate     string     `json:"mfg_date,omitempty"`
	Quantity    NumberText `json:"quantity"`
	Rate        NumberText `json:"rate"`
	CGSTPercent NumberText `json:"cgst_percent"`
	SGSTPercent NumberText `json:"sgst_percent"`
}

// UpdateRowRequest body para PATCH /api/session/rows/:index.
// Solo se modifican los campos presentes.
type UpdateRowRequest struct {
	Description *string     `json:"description,omitempty"`
	HSN         *string     `json:"hsn,omitempty"`
	MfgDate     *string     `json:"mfg_date,omitempty"`
	Quantity    *NumberText `json:"quantity,omitempty"`
	Rate        *NumberText `json:"rate,omitempty"`
	CGSTPercent *NumberText `json:"cgst_percent,omitempty"`
	SGSTPercent *NumberText `json:"sgst_percent,omitempty"`
}

// HeaderRequest body para PUT /api/session/header.
type HeaderRequest struct {
	InvoiceNumber string `json:"invoice_number"`
	Date          string `json:"date"`
	BillTo        string `json:"bill_to"`
}

// OpenSessionRequest body para POST /api/sessions.
type OpenSessionRequest struct {
	Header        HeaderRequest `json:"header"`
	Rows          []RowInput    `json:"rows"`
	ViewportWidth float64       `json:"viewport_width,omitempty"`
}

// ViewportRequest body para PUT /api/session/viewport.
type ViewportRequest struct {
	Width float64 `json:"width"`
}

// RowView fila calculada y formateada para mostrar.
type RowView struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	HSN         string `json:"hsn"`
	MfgDate     string `json:"mfg_date"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	CGSTPercent string `json:"cgst_percent"`
	SGSTPercent string `json:"sgst_percent"`
	CGSTAmount  string `json:"cgst_amount"`
	SGSTAmount  string `json:"sgst_amount"`
	Total       string `json:"total"`
}

// TotalsView totales formateados. GrandTotal lleva el símbolo de moneda.
type TotalsView struct {
	Subtotal   string `json:"subtotal"`
	TotalCGST  string `json:"total_cgst"`
	TotalSGST  string `json:"total_sgst"`
	GrandTotal string `json:"grand_total"`
	ItemsCount string `json:"items_count"`
}

// InvoiceView estado completo del editor para el cliente.
type InvoiceView struct {
	SessionID string        `json:"session_id"`
	Header    HeaderRequest `json:"header"`
	Rows      []RowView     `json:"rows"`
	Totals    TotalsView    `json:"totals"`
	Layout    LayoutView    `json:"layout"`
}

// LayoutView estado del ajuste de fuente.
type LayoutView struct {
	FontSize      float64 `json:"font_size"`
	MinFontSize   float64 `json:"min_font_size"`
	ViewportWidth float64 `json:"viewport_width"`
	ContentWidth  float64 `json:"content_width"`
	Overflowing   bool    `json:"overflowing"`
	Runs          int     `json:"runs"`
	Pending       bool    `json:"pending"`
}

// OpenSessionResponse token de la sesión más su estado inicial.
type OpenSessionResponse struct {
	Token   string      `json:"token"`
	Invoice InvoiceView `json:"invoice"`
}

// CalculateRequest body para POST /api/calculate (sin sesión).
type CalculateRequest struct {
	Rows []RowInput `json:"rows"`
}

// CalculateResponse filas y totales calculados.
type CalculateResponse struct {
	Rows   []RowView  `json:"rows"`
	Totals TotalsView `json:"totals"`
}
