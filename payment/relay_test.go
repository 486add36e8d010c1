package payment

import (
	"errors"
	"math"
	"testing"
)

type fakeDirectory map[string]string

func (d fakeDirectory) ArkAddress(id string) (string, bool, bool) {
	addr, ok := d[id]
	if !ok {
		return "", false, false
	}
	return addr, addr != "", true
}

func TestResolveSuccess(t *testing.T) {
	r := NewRelay(fakeDirectory{"b": "ark1qbob"})
	addr, err := r.Resolve("b", 100)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if addr != "ark1qbob" {
		t.Fatalf("resolved address = %q", addr)
	}
}

func TestResolveTargetNotFound(t *testing.T) {
	r := NewRelay(fakeDirectory{})
	if _, err := r.Resolve("ghost", 100); !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
}

func TestResolveNoAddressDistinctFromNotFound(t *testing.T) {
	r := NewRelay(fakeDirectory{"b": ""})
	if _, err := r.Resolve("b", 100); !errors.Is(err, ErrNoArkAddress) {
		t.Fatalf("err = %v, want ErrNoArkAddress", err)
	}
}

func TestResolveRejectsBadAmounts(t *testing.T) {
	r := NewRelay(fakeDirectory{"b": "ark1qbob"})
	for _, bad := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		if _, err := r.Resolve("b", bad); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v: err = %v, want ErrInvalidAmount", bad, err)
		}
	}
}
