package emailtype

import (
	"context"
	"errors"
	"maps"
)

// Registrar contributes email type definitions during the registration sweep.
// The host broadcasts the sweep once at startup; every package that sends
// templated email hangs its types on it.
type Registrar interface {
	RegisterEmailTypes(r *Registry)
}

// RegistrarFunc adapts a plain function to the Registrar interface.
type RegistrarFunc func(r *Registry)

// RegisterEmailTypes calls f.
func (f RegistrarFunc) RegisterEmailTypes(r *Registry) { f(r) }

// Store mirrors registered definitions to persistent storage for display.
type Store interface {
	// UpsertEmailType inserts or updates the snapshot row for a type id.
	UpsertEmailType(ctx context.Context, id string, def Definition) error
}

// Registry is the process-wide mapping of type id to declared contract.
//
// It follows a single-writer-then-many-readers lifecycle: the host populates
// it through one registration sweep before serving requests, after which it
// is read-only. It is deliberately not locked; registration completing before
// the first render call is the host's responsibility.
type Registry struct {
	types map[string]Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Definition)}
}

// Register adds or replaces the definition for id. Re-registering an id
// overwrites the previous definition (last registration wins) while keeping
// its original position. An empty id is rejected and leaves the registry
// untouched.
func (r *Registry) Register(id string, def Definition) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := r.types[id]; !exists {
		r.order = append(r.order, id)
	}
	r.types[id] = def
	return nil
}

// Get returns the definition registered for id.
func (r *Registry) Get(id string) (Definition, bool) {
	def, ok := r.types[id]
	return def, ok
}

// Types returns a copy of the registered definitions keyed by id.
func (r *Registry) Types() map[string]Definition {
	return maps.Clone(r.types)
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.types) }

// Sweep runs every registrar against the registry. The host calls it exactly
// once at startup, before any send or preview.
func (r *Registry) Sweep(registrars ...Registrar) {
	for _, reg := range registrars {
		if reg != nil {
			reg.RegisterEmailTypes(r)
		}
	}
}

// SyncToStore mirrors every registered definition to storage, one idempotent
// upsert per type in registration order. Upserts continue past individual
// failures; the joined error reports every type that could not be written.
func (r *Registry) SyncToStore(ctx context.Context, store Store) error {
	var errs []error
	for _, id := range r.order {
		if err := store.UpsertEmailType(ctx, id, r.types[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
