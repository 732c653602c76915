package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/models"
)

type registeredListener struct {
	id       uint64
	listener EventListener
}

// listenerRegistry is an ordered set of event listeners owned by one client.
type listenerRegistry struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []registeredListener
}

func (r *listenerRegistry) add(listener EventListener) func() {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, registeredListener{id: id, listener: listener})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *listenerRegistry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = slices.DeleteFunc(r.listeners, func(l registeredListener) bool {
		return l.id == id
	})
}

func (r *listenerRegistry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = nil
}

func (r *listenerRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners)
}

// dispatch calls a snapshot of the listeners so that a listener may dispose
// itself or register others while the event is delivered.
func (r *listenerRegistry) dispatch(ctx context.Context, event models.ConsentEvent) {
	r.mu.Lock()
	snapshot := slices.Clone(r.listeners)
	r.mu.Unlock()

	for _, l := range snapshot {
		r.call(ctx, l, event)
	}
}

func (r *listenerRegistry) call(ctx context.Context, l registeredListener, event models.ConsentEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(ctx).Error().
				Str("event", string(event.Name)).
				Interface("panic", rec).
				Msg("consent event listener panicked")
		}
	}()

	l.listener(ctx, event)
}
