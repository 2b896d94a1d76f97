package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-editor/pkg/debounce"
)

const delay = 30 * time.Millisecond

func TestDebouncer_RafagaUnaEjecucion(t *testing.T) {
	var runs atomic.Int32
	d := debounce.New(delay, func() { runs.Add(1) })

	for i := 0; i < 10; i++ {
		d.Trigger()
	}
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	// no debe llegar una segunda ejecución
	time.Sleep(3 * delay)
	assert.Equal(t, int32(1), runs.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_PeriodosSeparados(t *testing.T) {
	var runs atomic.Int32
	d := debounce.New(delay, func() { runs.Add(1) })

	d.Trigger()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	d.Trigger()
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_StopCancela(t *testing.T) {
	var runs atomic.Int32
	d := debounce.New(delay, func() { runs.Add(1) })

	d.Trigger()
	d.Stop()
	d.Trigger()
	time.Sleep(3 * delay)

	assert.Equal(t, int32(0), runs.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_TriggerAfter(t *testing.T) {
	var runs atomic.Int32
	d := debounce.New(delay, func() { runs.Add(1) })

	d.TriggerAfter(10 * time.Millisecond)
	d.Trigger()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * delay)
	assert.Equal(t, int32(1), runs.Load(), "el disparo diferido se agrupa con el inmediato")
}
