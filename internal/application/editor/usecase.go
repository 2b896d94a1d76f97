package editor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-editor/internal/application/dto"
	"github.com/jhoicas/invoice-editor/internal/domain"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
	"github.com/jhoicas/invoice-editor/internal/domain/layout"
)

// Capture estado de una sesión listo para exportar.
type Capture struct {
	Snapshot Snapshot
	Document Document
}

// UseCase adaptador entre los eventos del usuario y el modelo del editor.
// Cada operación recalcula y devuelve el estado formateado.
type UseCase struct {
	registry  *Registry
	formatter *invoice.Formatter
	measurer  TextMeasurer
	fitCfg    FitConfig
	log       zerolog.Logger
}

// NewUseCase construye el caso de uso. measurer puede ser nil: sin medición no hay desborde.
func NewUseCase(registry *Registry, formatter *invoice.Formatter, measurer TextMeasurer, fitCfg FitConfig, log zerolog.Logger) *UseCase {
	return &UseCase{
		registry:  registry,
		formatter: formatter,
		measurer:  measurer,
		fitCfg:    fitCfg,
		log:       log,
	}
}

// Open crea una sesión con las filas y cabecera iniciales y programa el primer ajuste.
func (uc *UseCase) Open(in dto.OpenSessionRequest) (dto.InvoiceView, error) {
	items := make([]entity.LineItem, 0, len(in.Rows))
	for _, r := range in.Rows {
		items = append(items, lineItemFromInput(r))
	}

	session := NewSession(uuid.New().String(), headerFromRequest(in.Header), items)
	cfg := uc.fitCfg
	if in.ViewportWidth > 0 {
		cfg.DefaultViewport = in.ViewportWidth
	}
	fit := NewFitScheduler(cfg, uc.measureSource(session),
		uc.log.With().Str("session_id", session.ID()).Logger())
	session.Subscribe(fit.OnChange)

	ws := &Workspace{Session: session, Fit: fit}
	if err := uc.registry.Add(ws); err != nil {
		ws.release()
		uc.log.Warn().Err(err).Int("open_sessions", uc.registry.Len()).Msg("sesión rechazada")
		return dto.InvoiceView{}, err
	}
	fit.Schedule("open")

	uc.log.Info().
		Str("session_id", session.ID()).
		Int("rows", len(items)).
		Int("open_sessions", uc.registry.Len()).
		Msg("sesión de edición abierta")
	return uc.present(ws, session.Snapshot()), nil
}

// View estado actual de la sesión.
func (uc *UseCase) View(id string) (dto.InvoiceView, error) {
	ws, err := uc.registry.Get(id)
	if err != nil {
		return dto.InvoiceView{}, err
	}
	return uc.present(ws, ws.Session.Snapshot()), nil
}

// AddRow agrega una fila vacía.
func (uc *UseCase) AddRow(id string) (dto.InvoiceView, error) {
	return uc.apply(id, func(s *Session) (Snapshot, error) { return s.AddRow() })
}

// RemoveLastRow elimina la última fila; domain.ErrNoRows si no hay filas.
func (uc *UseCase) RemoveLastRow(id string) (dto.InvoiceView, error) {
	return uc.apply(id, func(s *Session) (Snapshot, error) { return s.RemoveLastRow() })
}

// UpdateRow modifica los campos presentes de la fila index (1-based).
func (uc *UseCase) UpdateRow(id string, index int, in dto.UpdateRowRequest) (dto.InvoiceView, error) {
	patch := RowPatch{
		Description: in.Description,
		HSN:         in.HSN,
		MfgDate:     in.MfgDate,
		Quantity:    in.Quantity.Ptr(),
		Rate:        in.Rate.Ptr(),
		CGSTPercent: in.CGSTPercent.Ptr(),
		SGSTPercent: in.SGSTPercent.Ptr(),
	}
	return uc.apply(id, func(s *Session) (Snapshot, error) { return s.UpdateRow(index, patch) })
}

// SetHeader reemplaza la cabecera de la factura.
func (uc *UseCase) SetHeader(id string, in dto.HeaderRequest) (dto.InvoiceView, error) {
	return uc.apply(id, func(s *Session) (Snapshot, error) { return s.SetHeader(headerFromRequest(in)) })
}

// SetViewport registra el ancho visible del cliente.
func (uc *UseCase) SetViewport(id string, width float64) (dto.LayoutView, error) {
	if width <= 0 {
		return dto.LayoutView{}, fmt.Errorf("%w: ancho de viewport debe ser positivo", domain.ErrInvalidInput)
	}
	ws, err := uc.registry.Get(id)
	if err != nil {
		return dto.LayoutView{}, err
	}
	ws.Fit.SetViewport(width)
	return presentLayout(ws.Fit.State()), nil
}

// Layout estado del ajuste de fuente.
func (uc *UseCase) Layout(id string) (dto.LayoutView, error) {
	ws, err := uc.registry.Get(id)
	if err != nil {
		return dto.LayoutView{}, err
	}
	return presentLayout(ws.Fit.State()), nil
}

// Close cierra la sesión y cancela su ajuste pendiente.
func (uc *UseCase) Close(id string) error {
	ws, err := uc.registry.Remove(id)
	if err != nil {
		return err
	}
	ws.release()
	uc.log.Info().Str("session_id", id).Msg("sesión de edición cerrada")
	return nil
}

// SweepExpired desaloja las sesiones vencidas cada interval hasta que ctx se cancele.
func (uc *UseCase) SweepExpired(ctx context.Context, interval time.Duration) {
	uc.registry.Run(ctx, interval, func(evicted int) {
		if evicted > 0 {
			uc.log.Info().
				Int("evicted", evicted).
				Int("open_sessions", uc.registry.Len()).
				Msg("sesiones vencidas desalojadas")
		}
	})
}

// Capture devuelve el estado actual con el documento al tamaño de fuente ajustado.
func (uc *UseCase) Capture(id string) (Capture, error) {
	ws, err := uc.registry.Get(id)
	if err != nil {
		return Capture{}, err
	}
	snap := ws.Session.Snapshot()
	return Capture{
		Snapshot: snap,
		Document: BuildDocument(snap, uc.formatter, ws.Fit.FontSize()),
	}, nil
}

// Formatter formateador de montos compartido.
func (uc *UseCase) Formatter() *invoice.Formatter { return uc.formatter }

// Calculate cálculo sin sesión: filas en texto libre → filas y totales formateados.
func (uc *UseCase) Calculate(in dto.CalculateRequest) dto.CalculateResponse {
	items := make([]entity.LineItem, 0, len(in.Rows))
	for _, r := range in.Rows {
		items = append(items, lineItemFromInput(r))
	}
	snap := NewSession("", entity.InvoiceHeader{}, items).Snapshot()
	return dto.CalculateResponse{
		Rows:   presentRows(snap.Rows, uc.formatter),
		Totals: presentTotals(snap.Totals, uc.formatter),
	}
}

func (uc *UseCase) apply(id string, fn func(*Session) (Snapshot, error)) (dto.InvoiceView, error) {
	ws, err := uc.registry.Get(id)
	if err != nil {
		return dto.InvoiceView{}, err
	}
	snap, err := fn(ws.Session)
	if err != nil {
		return dto.InvoiceView{}, err
	}
	return uc.present(ws, snap), nil
}

// measureSource arma el documento una vez por pasada y mide a distintos tamaños.
func (uc *UseCase) measureSource(session *Session) MeasureSource {
	return func() layout.MeasureFunc {
		if uc.measurer == nil {
			return func(float64) float64 { return 0 }
		}
		doc := BuildDocument(session.Snapshot(), uc.formatter, uc.fitCfg.BaseFontSize)
		return func(fontSize float64) float64 {
			doc.FontSize = fontSize
			return uc.measurer.ContainerWidth(doc)
		}
	}
}

func lineItemFromInput(in dto.RowInput) entity.LineItem {
	return entity.LineItem{
		Description: strings.TrimSpace(in.Description),
		HSN:         strings.TrimSpace(in.HSN),
		MfgDate:     strings.TrimSpace(in.MfgDate),
		Quantity:    invoice.ParseNumber(in.Quantity.String()),
		Rate:        invoice.ParseNumber(in.Rate.String()),
		CGSTPercent: invoice.ParseNumber(in.CGSTPercent.String()),
		SGSTPercent: invoice.ParseNumber(in.SGSTPercent.String()),
	}
}

func headerFromRequest(in dto.HeaderRequest) entity.InvoiceHeader {
	return entity.InvoiceHeader{
		Number: strings.TrimSpace(in.InvoiceNumber),
		Date:   strings.TrimSpace(in.Date),
		BillTo: strings.TrimSpace(in.BillTo),
	}
}
