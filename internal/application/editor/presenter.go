package editor

import (
	"github.com/jhoicas/invoice-editor/internal/application/dto"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

func (uc *UseCase) present(ws *Workspace, snap Snapshot) dto.InvoiceView {
	return dto.InvoiceView{
		SessionID: ws.Session.ID(),
		Header: dto.HeaderRequest{
			InvoiceNumber: snap.Header.Number,
			Date:          snap.Header.Date,
			BillTo:        snap.Header.BillTo,
		},
		Rows:   presentRows(snap.Rows, uc.formatter),
		Totals: presentTotals(snap.Totals, uc.formatter),
		Layout: presentLayout(ws.Fit.State()),
	}
}

func presentRows(rows []Row, f *invoice.Formatter) []dto.RowView {
	out := make([]dto.RowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RowView{
			Index:       r.Index,
			Description: r.Item.Description,
			HSN:         r.Item.HSN,
			MfgDate:     r.Item.MfgDate,
			Quantity:    r.Item.Quantity.String(),
			Rate:        r.Item.Rate.String(),
			CGSTPercent: r.Item.CGSTPercent.String(),
			SGSTPercent: r.Item.SGSTPercent.String(),
			CGSTAmount:  f.Amount(r.Result.CGST),
			SGSTAmount:  f.Amount(r.Result.SGST),
			Total:       f.Amount(r.Result.Total),
		})
	}
	return out
}

func presentTotals(t entity.InvoiceTotals, f *invoice.Formatter) dto.TotalsView {
	return dto.TotalsView{
		Subtotal:   f.Amount(t.Subtotal),
		TotalCGST:  f.Amount(t.TotalCGST),
		TotalSGST:  f.Amount(t.TotalSGST),
		GrandTotal: f.Currency(t.GrandTotal),
		ItemsCount: f.Amount(t.ItemCount),
	}
}

func presentLayout(s LayoutState) dto.LayoutView {
	return dto.LayoutView{
		FontSize:      s.FontSize,
		MinFontSize:   s.MinFontSize,
		ViewportWidth: s.ViewportWidth,
		ContentWidth:  s.ContentWidth,
		Overflowing:   s.Overflowing,
		Runs:          s.Runs,
		Pending:       s.Pending,
	}
}
