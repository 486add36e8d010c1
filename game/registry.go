package game

import (
	"fmt"
	"math"
)

// Registry owns the authoritative session-id -> entity mapping. It is not
// goroutine-safe: a single owner (the field actor) drives every mutation,
// and nothing outside ever sees the raw map.
type Registry struct {
	entities map[string]*Entity
	order    []string // join order, for reproducible snapshots
}

func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]*Entity)}
}

// Add creates an entity at the origin with the placeholder color. A
// duplicate id is a broken transport invariant, not a recoverable input.
func (r *Registry) Add(id string) (Entity, error) {
	if _, ok := r.entities[id]; ok {
		return Entity{}, fmt.Errorf("entity %q already registered", id)
	}
	e := &Entity{ID: id, Color: DefaultColor}
	r.entities[id] = e
	r.order = append(r.order, id)
	return *e, nil
}

// Remove deletes the entity. Removing an absent id is a no-op so that
// duplicate disconnect signals are harmless.
func (r *Registry) Remove(id string) {
	if _, ok := r.entities[id]; !ok {
		return
	}
	delete(r.entities, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SetTarget records a new destination and marks the entity moving.
// Reports false for unknown ids (late events after disconnect).
func (r *Registry) SetTarget(id string, x, y float64) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	e.TargetX = x
	e.TargetY = y
	e.IsMoving = true
	return true
}

// SetPosition refines the authoritative position from a client report and
// clears IsMoving once within ReachedEpsilon of the target.
func (r *Registry) SetPosition(id string, x, y float64) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	e.X = x
	e.Y = y
	if math.Hypot(e.TargetX-e.X, e.TargetY-e.Y) < ReachedEpsilon {
		e.IsMoving = false
	}
	return true
}

// SetArkAddress registers a payment address and recolors the blob
// deterministically from it.
func (r *Registry) SetArkAddress(id, addr string) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	e.ArkAddress = addr
	e.Color = ColorForAddress(addr)
	return true
}

// SetBalance stores a self-reported balance. Negative or non-finite
// amounts are rejected and the previous value retained.
func (r *Registry) SetBalance(id string, amount float64) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return false
	}
	e.AvailableBalance = amount
	e.HasBalance = true
	return true
}

// ArkAddress reports the registered address for id. The two booleans keep
// "no such entity" distinguishable from "entity has no address".
func (r *Registry) ArkAddress(id string) (addr string, registered, found bool) {
	e, ok := r.entities[id]
	if !ok {
		return "", false, false
	}
	return e.ArkAddress, e.ArkAddress != "", true
}

// Get returns a copy of the entity.
func (r *Registry) Get(id string) (Entity, bool) {
	e, ok := r.entities[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Snapshot returns copies of all entities in join order.
func (r *Registry) Snapshot() []Entity {
	out := make([]Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.entities[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.entities)
}
