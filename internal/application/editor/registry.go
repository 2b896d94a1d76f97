package editor

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/invoice-editor/internal/domain"
)

// Workspace una sesión abierta con su scheduler de ajuste.
type Workspace struct {
	Session   *Session
	Fit       *FitScheduler
	ExpiresAt time.Time // cero = no vence
}

func (ws *Workspace) expired(now time.Time) bool {
	return !ws.ExpiresAt.IsZero() && !now.Before(ws.ExpiresAt)
}

// release detiene el ajuste pendiente y cierra la sesión.
func (ws *Workspace) release() {
	ws.Fit.Stop()
	ws.Session.Close()
}

// RegistryConfig límites del registro. Valores cero = sin límite.
type RegistryConfig struct {
	TTL     time.Duration // vida de una sesión desde que se abre (igual a la del token)
	MaxOpen int           // sesiones abiertas a la vez
	Now     func() time.Time
}

// Registry sesiones abiertas en memoria. No hay persistencia.
// Las sesiones vencidas se desalojan al accederlas, al registrar otra o en Sweep.
type Registry struct {
	cfg   RegistryConfig
	mu    sync.RWMutex
	items map[string]*Workspace
}

// NewRegistry construye un registro vacío.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Registry{cfg: cfg, items: make(map[string]*Workspace)}
}

// Add registra el workspace bajo el ID de su sesión y le asigna el vencimiento.
// domain.ErrTooManySessions si se alcanzó MaxOpen aun después de desalojar vencidas.
func (r *Registry) Add(ws *Workspace) error {
	now := r.cfg.Now()

	r.mu.Lock()
	evicted := r.evictLocked(now)
	if r.cfg.MaxOpen > 0 && len(r.items) >= r.cfg.MaxOpen {
		r.mu.Unlock()
		releaseAll(evicted)
		return domain.ErrTooManySessions
	}
	if r.cfg.TTL > 0 {
		ws.ExpiresAt = now.Add(r.cfg.TTL)
	}
	r.items[ws.Session.ID()] = ws
	r.mu.Unlock()

	releaseAll(evicted)
	return nil
}

// Get busca un workspace; domain.ErrNotFound si no existe o ya venció.
func (r *Registry) Get(id string) (*Workspace, error) {
	now := r.cfg.Now()

	r.mu.RLock()
	ws, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if ws.expired(now) {
		r.mu.Lock()
		// otro Get/Sweep pudo haberlo quitado ya
		if cur, ok := r.items[id]; ok && cur == ws {
			delete(r.items, id)
			r.mu.Unlock()
			ws.release()
		} else {
			r.mu.Unlock()
		}
		return nil, domain.ErrNotFound
	}
	return ws, nil
}

// Remove quita y devuelve el workspace.
func (r *Registry) Remove(id string) (*Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.items, id)
	return ws, nil
}

// Sweep desaloja las sesiones vencidas y devuelve cuántas quitó.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	evicted := r.evictLocked(r.cfg.Now())
	r.mu.Unlock()

	releaseAll(evicted)
	return len(evicted)
}

// Run ejecuta Sweep cada interval hasta que ctx se cancele.
// onSweep (opcional) recibe la cantidad desalojada en cada pasada.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(evicted int)) {
	if interval <= 0 || r.cfg.TTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := r.Sweep()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}

// Len cantidad de sesiones abiertas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// evictLocked quita del mapa las vencidas; se liberan después, sin el lock.
func (r *Registry) evictLocked(now time.Time) []*Workspace {
	if r.cfg.TTL <= 0 {
		return nil
	}
	var out []*Workspace
	for id, ws := range r.items {
		if ws.expired(now) {
			delete(r.items, id)
			out = append(out, ws)
		}
	}
	return out
}

func releaseAll(wss []*Workspace) {
	for _, ws := range wss {
		ws.release()
	}
}
