// Package debounce agrupa ráfagas de disparos en una sola ejecución diferida.
package debounce

import (
	"sync"
	"time"
)

// Debouncer es dueño de su propio timer. Cada Trigger cancela la ejecución pendiente
// y la reprograma; fn se ejecuta como máximo una vez por periodo de silencio.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// New construye el debouncer. fn corre en la goroutine del timer.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger (re)programa la ejecución. No hace nada después de Stop.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// TriggerAfter dispara tras una espera adicional (ej. dejar que se inserte una fila).
func (d *Debouncer) TriggerAfter(wait time.Duration) {
	if wait <= 0 {
		d.Trigger()
		return
	}
	time.AfterFunc(wait, d.Trigger)
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// un Trigger posterior o un Stop invalidan esta ejecución
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn()
}

// Pending indica si hay una ejecución programada.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancela la ejecución pendiente y desactiva el debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
