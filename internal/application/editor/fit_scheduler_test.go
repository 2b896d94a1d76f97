package editor_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-editor/internal/application/editor"
	"github.com/jhoicas/invoice-editor/internal/domain/layout"
)

func testFitConfig() editor.FitConfig {
	cfg := editor.DefaultFitConfig()
	cfg.Debounce = 20 * time.Millisecond
	cfg.RowAddDelay = 5 * time.Millisecond
	cfg.DefaultViewport = 1000
	return cfg
}

// proportionalSource: el contenido mide 110px por punto de fuente.
func proportionalSource(calls *atomic.Int32) editor.MeasureSource {
	return func() layout.MeasureFunc {
		calls.Add(1)
		return func(fs float64) float64 { return fs * 110 }
	}
}

func TestFitScheduler_RafagaUnaPasada(t *testing.T) {
	var passes atomic.Int32
	s := editor.NewFitScheduler(testFitConfig(), proportionalSource(&passes), zerolog.Nop())
	defer s.Stop()

	for i := 0; i < 25; i++ {
		s.OnChange(editor.ChangeEvent{Kind: editor.ChangeRowUpdated, Index: 1, Rows: 1})
	}

	assert.Eventually(t, func() bool { return s.State().Runs == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, s.State().Runs)
	assert.Equal(t, int32(1), passes.Load())
}

func TestFitScheduler_ReduceHastaQueEntra(t *testing.T) {
	var passes atomic.Int32
	s := editor.NewFitScheduler(testFitConfig(), proportionalSource(&passes), zerolog.Nop())
	defer s.Stop()

	s.Schedule("open")
	assert.Eventually(t, func() bool { return s.State().Runs == 1 }, time.Second, 5*time.Millisecond)

	st := s.State()
	assert.Equal(t, 9.0, st.FontSize, "12px → 9px: 9 × 110 = 990 ≤ 1000")
	assert.False(t, st.Overflowing)
	assert.Equal(t, 990.0, st.ContentWidth)
}

func TestFitScheduler_NoCreceAlAgrandarViewport(t *testing.T) {
	var passes atomic.Int32
	s := editor.NewFitScheduler(testFitConfig(), proportionalSource(&passes), zerolog.Nop())
	defer s.Stop()

	s.SetViewport(1000)
	assert.Eventually(t, func() bool { return s.State().Runs == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 9.0, s.FontSize())

	s.SetViewport(5000)
	assert.Eventually(t, func() bool { return s.State().Runs == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 9.0, s.FontSize(), "sin auto-grow")
	assert.Equal(t, 5000.0, s.State().ViewportWidth)
}

func TestFitScheduler_PisoConDesbordePersistente(t *testing.T) {
	src := func() layout.MeasureFunc { return func(float64) float64 { return 1e6 } }
	s := editor.NewFitScheduler(testFitConfig(), src, zerolog.Nop())
	defer s.Stop()

	s.Schedule("open")
	assert.Eventually(t, func() bool { return s.State().Runs == 1 }, time.Second, 5*time.Millisecond)

	st := s.State()
	assert.Equal(t, 9.0, st.FontSize)
	assert.True(t, st.Overflowing)
}

func TestFitScheduler_FilaAgregadaUsaEsperaExtra(t *testing.T) {
	var passes atomic.Int32
	s := editor.NewFitScheduler(testFitConfig(), proportionalSource(&passes), zerolog.Nop())
	defer s.Stop()

	s.OnChange(editor.ChangeEvent{Kind: editor.ChangeRowAdded, Index: 1, Rows: 1})
	s.Schedule("resize")

	assert.Eventually(t, func() bool { return s.State().Runs == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, s.State().Runs)
}

func TestFitScheduler_StopCancelaPendiente(t *testing.T) {
	var passes atomic.Int32
	s := editor.NewFitScheduler(testFitConfig(), proportionalSource(&passes), zerolog.Nop())

	s.Schedule("open")
	s.Stop()
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 0, s.State().Runs)
	assert.Equal(t, 12.0, s.FontSize())
}
