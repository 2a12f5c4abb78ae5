// Package optimistic applies store mutations locally before the remote system
// of record confirms them, and rolls them back when it refuses.
//
// A mutation captures a snapshot of the slice of state it touches, applies
// itself under the store lock, releases the lock for the remote call, and then
// either adopts the server's canonical response or restores the snapshot.
// Responses are not ordered against each other: when two mutations of the same
// entity are in flight, whichever response lands last wins.
package optimistic

import (
	"context"
	"log"
	"sync"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
)

// Engine owns a store's lock, its error field and its loading flag
type Engine struct {
	store string
	bus   *events.Bus

	mu      sync.Mutex
	err     error
	loading int
}

// NewEngine creates an engine for the named store. bus may be nil.
func NewEngine(store string, bus *events.Bus) *Engine {
	return &Engine{store: store, bus: bus}
}

// Op describes one optimistic mutation.
// Capture, Apply, Reconcile and Restore run while the store lock is held.
type Op[S, R any] struct {
	Name     string
	EntityID string

	// Capture snapshots the state Apply is about to change
	Capture func() S
	// Apply mutates local state; an error aborts before any remote call
	Apply func() error
	// Send performs the remote call without the lock held
	Send func(ctx context.Context) (R, error)
	// Reconcile adopts the server's response
	Reconcile func(R)
	// Restore puts the snapshot back
	Restore func(S)
}

// Do runs op through the apply, send, reconcile or rollback cycle.
// Local errors from Apply are returned as is; remote errors come back coded
// sync_failed after the snapshot has been restored.
func Do[S, R any](ctx context.Context, e *Engine, op Op[S, R]) (R, error) {
	var zero R

	e.mu.Lock()
	snapshot := op.Capture()
	if err := op.Apply(); err != nil {
		op.Restore(snapshot)
		e.mu.Unlock()
		return zero, err
	}
	e.mu.Unlock()
	e.emit(events.EventTypeStateChanged, op.Name, op.EntityID, nil)

	resp, err := op.Send(ctx)

	e.mu.Lock()
	if err != nil {
		op.Restore(snapshot)
		syncErr := dnderr.SyncFailed(err, op.Name).WithMeta("store", e.store)
		if op.EntityID != "" {
			syncErr = syncErr.WithMeta("entity_id", op.EntityID)
		}
		e.err = syncErr
		e.mu.Unlock()

		log.Printf("Optimistic: %s %s on %q rolled back: %v", e.store, op.Name, op.EntityID, err)
		e.emit(events.EventTypeSyncFailed, op.Name, op.EntityID, syncErr)
		return zero, syncErr
	}
	if op.Reconcile != nil {
		op.Reconcile(resp)
	}
	e.mu.Unlock()

	e.emit(events.EventTypeSyncConfirmed, op.Name, op.EntityID, nil)
	return resp, nil
}

// Remote runs a non-optimistic call: nothing changes locally until send
// succeeds, then commit runs under the lock. Failures set the error field.
func Remote[R any](ctx context.Context, e *Engine, name string, send func(context.Context) (R, error), commit func(R)) (R, error) {
	return remote(ctx, e, name, false, send, commit)
}

// Load is Remote with the loading flag raised for the duration of send
func Load[R any](ctx context.Context, e *Engine, name string, send func(context.Context) (R, error), commit func(R)) (R, error) {
	return remote(ctx, e, name, true, send, commit)
}

func remote[R any](ctx context.Context, e *Engine, name string, loading bool, send func(context.Context) (R, error), commit func(R)) (R, error) {
	var zero R

	if loading {
		e.mu.Lock()
		e.loading++
		e.mu.Unlock()
	}

	resp, err := send(ctx)

	e.mu.Lock()
	if loading {
		e.loading--
	}
	if err != nil {
		syncErr := dnderr.SyncFailed(err, name).WithMeta("store", e.store)
		e.err = syncErr
		e.mu.Unlock()

		log.Printf("Optimistic: %s %s failed: %v", e.store, name, err)
		e.emit(events.EventTypeSyncFailed, name, "", syncErr)
		return zero, syncErr
	}
	if commit != nil {
		commit(resp)
	}
	e.mu.Unlock()

	e.emit(events.EventTypeStateChanged, name, "", nil)
	return resp, nil
}

// Read runs fn under the store lock
func (e *Engine) Read(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn()
}

// Write runs a purely local mutation under the store lock and notifies observers
func (e *Engine) Write(name string, fn func() error) error {
	e.mu.Lock()
	err := fn()
	e.mu.Unlock()
	if err != nil {
		return err
	}
	e.emit(events.EventTypeStateChanged, name, "", nil)
	return nil
}

// Err returns the last sync failure, if any
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// ClearError forgets the last sync failure
func (e *Engine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = nil
}

// Loading reports whether a load is in flight
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading > 0
}

func (e *Engine) emit(t events.EventType, op, entityID string, err error) {
	if e.bus == nil {
		return
	}
	emitErr := e.bus.Emit(&events.StoreEvent{
		Type:      t,
		Store:     e.store,
		Operation: op,
		EntityID:  entityID,
		Err:       err,
	})
	if emitErr != nil {
		log.Printf("Optimistic: observer of %s failed: %v", e.store, emitErr)
	}
}
