package editor

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-editor/internal/domain/layout"
	"github.com/jhoicas/invoice-editor/pkg/debounce"
)

// FitConfig parámetros del ajuste de fuente de una sesión.
type FitConfig struct {
	BaseFontSize    float64
	MinFontSize     float64
	Step            float64
	MaxIterations   int
	Debounce        time.Duration
	RowAddDelay     time.Duration
	DefaultViewport float64
}

// DefaultFitConfig 12px → 9px en pasos de 0.5, 40 iteraciones, debounce de 120ms.
func DefaultFitConfig() FitConfig {
	return FitConfig{
		BaseFontSize:    layout.DefaultFontSize,
		MinFontSize:     layout.DefaultMinFontSize,
		Step:            layout.DefaultStep,
		MaxIterations:   layout.DefaultMaxIterations,
		Debounce:        120 * time.Millisecond,
		RowAddDelay:     60 * time.Millisecond,
		DefaultViewport: 1024,
	}
}

// MeasureSource captura el contenido actual y devuelve la función de medición para una pasada.
type MeasureSource func() layout.MeasureFunc

// LayoutState estado observable del ajuste.
type LayoutState struct {
	FontSize      float64
	MinFontSize   float64
	ViewportWidth float64
	ContentWidth  float64
	Overflowing   bool
	Runs          int
	Pending       bool
}

// FitScheduler ejecuta el ajuste de fuente a través de un debounce propio.
// Se dispara al abrir la sesión, al cambiar el viewport y ante cada cambio de contenido.
type FitScheduler struct {
	cfg    FitConfig
	source MeasureSource
	log    zerolog.Logger

	runMu sync.Mutex // una pasada a la vez

	mu       sync.Mutex
	state    layout.FitState
	viewport float64
	last     layout.FitResult
	runs     int

	debouncer *debounce.Debouncer
}

// NewFitScheduler construye el scheduler; no programa nada hasta el primer disparo.
func NewFitScheduler(cfg FitConfig, source MeasureSource, log zerolog.Logger) *FitScheduler {
	s := &FitScheduler{
		cfg:    cfg,
		source: source,
		log:    log,
		state: layout.FitState{
			FontSize:      cfg.BaseFontSize,
			MinFontSize:   cfg.MinFontSize,
			MaxIterations: cfg.MaxIterations,
		},
		viewport: cfg.DefaultViewport,
	}
	s.debouncer = debounce.New(cfg.Debounce, s.adjust)
	return s
}

// Schedule programa un ajuste (con debounce).
func (s *FitScheduler) Schedule(reason string) {
	s.log.Trace().Str("reason", reason).Msg("ajuste programado")
	s.debouncer.Trigger()
}

// OnChange consume las notificaciones de contenido de la sesión.
func (s *FitScheduler) OnChange(ev ChangeEvent) {
	if ev.Kind == ChangeRowAdded {
		// deja que la fila se inserte antes de medir
		s.debouncer.TriggerAfter(s.cfg.RowAddDelay)
		return
	}
	s.Schedule(string(ev.Kind))
}

// SetViewport registra el nuevo ancho visible y programa un ajuste.
func (s *FitScheduler) SetViewport(width float64) {
	s.mu.Lock()
	s.viewport = width
	s.mu.Unlock()
	s.Schedule("resize")
}

// FontSize tamaño de fuente actual.
func (s *FitScheduler) FontSize() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FontSize
}

// State estado del ajuste.
func (s *FitScheduler) State() LayoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LayoutState{
		FontSize:      s.state.FontSize,
		MinFontSize:   s.state.MinFontSize,
		ViewportWidth: s.viewport,
		ContentWidth:  s.last.Width,
		Overflowing:   s.last.Overflowing,
		Runs:          s.runs,
		Pending:       s.debouncer.Pending(),
	}
}

// Stop cancela el ajuste pendiente.
func (s *FitScheduler) Stop() {
	s.debouncer.Stop()
}

// adjust una pasada de ajuste. La medición corre sin el lock de estado.
func (s *FitScheduler) adjust() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	state := s.state
	viewport := s.viewport
	s.mu.Unlock()

	res := layout.FitWithMeasure(s.source(), viewport, state, s.cfg.Step)

	s.mu.Lock()
	s.state.FontSize = res.FontSize
	s.last = res
	s.runs++
	s.mu.Unlock()

	ev := s.log.Debug().
		Float64("font_size", res.FontSize).
		Float64("content_width", res.Width).
		Float64("viewport", viewport).
		Int("iterations", res.Iterations)
	if res.Overflowing {
		ev.Bool("overflowing", true)
	}
	ev.Msg("ajuste de fuente")
}
