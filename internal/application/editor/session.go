// Package editor mantiene el modelo explícito del editor de facturas: filas,
// cabecera y los valores derivados, más el ajuste de fuente asociado a cada sesión.
package editor

import (
	"fmt"
	"sync"

	"github.com/jhoicas/invoice-editor/internal/domain"
	"github.com/jhoicas/invoice-editor/internal/domain/entity"
	"github.com/jhoicas/invoice-editor/internal/domain/invoice"
)

// ChangeKind tipo de cambio de contenido.
type ChangeKind string

const (
	ChangeRowAdded      ChangeKind = "row_added"
	ChangeRowRemoved    ChangeKind = "row_removed"
	ChangeRowUpdated    ChangeKind = "row_updated"
	ChangeHeaderUpdated ChangeKind = "header_updated"
)

// ChangeEvent notificación explícita de "contenido cambiado".
type ChangeEvent struct {
	Kind  ChangeKind
	Index int // fila afectada (1-based), 0 si no aplica
	Rows  int // cantidad de filas después del cambio
}

// ChangeListener consumidor de notificaciones. Se invoca fuera del lock de la sesión.
type ChangeListener func(ChangeEvent)

// RowPatch campos a modificar en una fila; nil = sin cambio. Los numéricos son texto libre.
type RowPatch struct {
	Description *string
	HSN         *string
	MfgDate     *string
	Quantity    *string
	Rate        *string
	CGSTPercent *string
	SGSTPercent *string
}

func (p RowPatch) apply(it *entity.LineItem) {
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.HSN != nil {
		it.HSN = *p.HSN
	}
	if p.MfgDate != nil {
		it.MfgDate = *p.MfgDate
	}
	if p.Quantity != nil {
		it.Quantity = invoice.ParseNumber(*p.Quantity)
	}
	if p.Rate != nil {
		it.Rate = invoice.ParseNumber(*p.Rate)
	}
	if p.CGSTPercent != nil {
		it.CGSTPercent = invoice.ParseNumber(*p.CGSTPercent)
	}
	if p.SGSTPercent != nil {
		it.SGSTPercent = invoice.ParseNumber(*p.SGSTPercent)
	}
}

// Row fila numerada con su resultado calculado.
type Row struct {
	Index  int
	Item   entity.LineItem
	Result entity.LineResult
}

// Snapshot vista inmutable del editor. Totals siempre es la suma de los Result de Rows.
type Snapshot struct {
	Header entity.InvoiceHeader
	Rows   []Row
	Totals entity.InvoiceTotals
}

// Session estado de un editor abierto. Las mutaciones se serializan con mu.
type Session struct {
	id string

	mu        sync.Mutex
	header    entity.InvoiceHeader
	items     []entity.LineItem
	listeners []ChangeListener
	closed    bool
}

// NewSession crea la sesión con las filas iniciales (se copian).
func NewSession(id string, header entity.InvoiceHeader, items []entity.LineItem) *Session {
	cp := make([]entity.LineItem, len(items))
	copy(cp, items)
	return &Session{id: id, header: header, items: cp}
}

// ID identificador de la sesión.
func (s *Session) ID() string { return s.id }

// Subscribe registra un consumidor de cambios de contenido.
func (s *Session) Subscribe(l ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot recalcula todas las filas y los totales.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	results := invoice.ComputeAll(s.items)
	rows := make([]Row, len(s.items))
	for i, it := range s.items {
		rows[i] = Row{Index: i + 1, Item: it, Result: results[i]}
	}
	return Snapshot{
		Header: s.header,
		Rows:   rows,
		Totals: invoice.Aggregate(results),
	}
}

// AddRow agrega una fila vacía al final.
func (s *Session) AddRow() (Snapshot, error) {
	return s.mutate(func() (ChangeEvent, error) {
		s.items = append(s.items, entity.NewLineItem())
		return ChangeEvent{Kind: ChangeRowAdded, Index: len(s.items), Rows: len(s.items)}, nil
	})
}

// RemoveLastRow elimina la última fila. Sin filas devuelve domain.ErrNoRows.
func (s *Session) RemoveLastRow() (Snapshot, error) {
	return s.mutate(func() (ChangeEvent, error) {
		n := len(s.items)
		if n == 0 {
			return ChangeEvent{}, domain.ErrNoRows
		}
		s.items = s.items[:n-1]
		return ChangeEvent{Kind: ChangeRowRemoved, Index: n, Rows: n - 1}, nil
	})
}

// UpdateRow aplica el patch sobre la fila index (1-based).
func (s *Session) UpdateRow(index int, patch RowPatch) (Snapshot, error) {
	return s.mutate(func() (ChangeEvent, error) {
		if index < 1 || index > len(s.items) {
			return ChangeEvent{}, fmt.Errorf("%w: índice %d", domain.ErrRowNotFound, index)
		}
		patch.apply(&s.items[index-1])
		return ChangeEvent{Kind: ChangeRowUpdated, Index: index, Rows: len(s.items)}, nil
	})
}

// SetHeader reemplaza la cabecera.
func (s *Session) SetHeader(h entity.InvoiceHeader) (Snapshot, error) {
	return s.mutate(func() (ChangeEvent, error) {
		s.header = h
		return ChangeEvent{Kind: ChangeHeaderUpdated, Rows: len(s.items)}, nil
	})
}

// Close descarta los consumidores; las mutaciones posteriores fallan.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = nil
}

// mutate ejecuta fn bajo el lock, recalcula y notifica a los consumidores ya sin el lock.
func (s *Session) mutate(fn func() (ChangeEvent, error)) (Snapshot, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Snapshot{}, domain.ErrSessionClosed
	}
	ev, err := fn()
	if err != nil {
		s.mu.Unlock()
		return Snapshot{}, err
	}
	snap := s.snapshotLocked()
	listeners := append([]ChangeListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
	return snap, nil
}
