package payment

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// The three rejection kinds a requester can see. "not found" and "no
// payment address" are deliberately distinguishable.
var (
	ErrTargetNotFound = errors.New("target not found")
	ErrNoArkAddress   = errors.New("target has no payment address")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// Directory is the lookup surface the relay needs from the entity
// registry: nothing more than address resolution.
type Directory interface {
	ArkAddress(id string) (addr string, registered, found bool)
}

// Relay resolves payment targets. It routes intents, it never settles:
// fund movement belongs entirely to the Provider on the client side.
type Relay struct {
	dir Directory
}

func NewRelay(dir Directory) *Relay {
	return &Relay{dir: dir}
}

// Resolve validates the amount and maps the target id to its registered
// address, or reports the specific missing precondition.
func (r *Relay) Resolve(toID string, amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidAmount
	}
	if !decimal.NewFromFloat(amount).IsPositive() {
		return "", ErrInvalidAmount
	}
	addr, registered, found := r.dir.ArkAddress(toID)
	if !found {
		return "", ErrTargetNotFound
	}
	if !registered {
		return "", ErrNoArkAddress
	}
	return addr, nil
}
