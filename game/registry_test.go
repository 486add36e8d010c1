package game

import (
	"math"
	"testing"
)

func TestAddStartsAtOrigin(t *testing.T) {
	r := NewRegistry()
	e, err := r.Add("p1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.X != 0 || e.Y != 0 {
		t.Fatalf("new entity position = (%f,%f), want origin", e.X, e.Y)
	}
	if e.IsMoving {
		t.Fatalf("new entity should not be moving")
	}
	if e.Color != DefaultColor {
		t.Fatalf("new entity color = %q, want %q", e.Color, DefaultColor)
	}
}

func TestAddDuplicateFails(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("p1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := r.Add("p1"); err == nil {
		t.Fatalf("expected error on duplicate id")
	}
}

func TestLenTracksConnectDisconnect(t *testing.T) {
	r := NewRegistry()
	seq := []struct {
		add bool
		id  string
	}{
		{true, "a"}, {true, "b"}, {false, "a"}, {true, "c"},
		{false, "a"}, // duplicate disconnect, no-op
		{false, "b"}, {false, "c"},
	}
	open := map[string]bool{}
	for _, s := range seq {
		if s.add {
			if _, err := r.Add(s.id); err != nil {
				t.Fatalf("add %q: %v", s.id, err)
			}
			open[s.id] = true
		} else {
			r.Remove(s.id)
			delete(open, s.id)
		}
		if got := len(r.Snapshot()); got != len(open) {
			t.Fatalf("snapshot length = %d, want %d", got, len(open))
		}
	}
}

func TestSetTargetIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Add("p1")
	if !r.SetTarget("p1", 40, 60) {
		t.Fatalf("set target failed")
	}
	once, _ := r.Get("p1")
	r.SetTarget("p1", 40, 60)
	twice, _ := r.Get("p1")
	if once != twice {
		t.Fatalf("repeated SetTarget changed state: %+v vs %+v", once, twice)
	}
	if !twice.IsMoving || twice.TargetX != 40 || twice.TargetY != 60 {
		t.Fatalf("unexpected state after SetTarget: %+v", twice)
	}
}

func TestSetTargetUnknownIDIsDropped(t *testing.T) {
	r := NewRegistry()
	if r.SetTarget("ghost", 1, 2) {
		t.Fatalf("expected SetTarget on unknown id to report false")
	}
}

func TestSetPositionClearsIsMovingNearTarget(t *testing.T) {
	r := NewRegistry()
	r.Add("p1")
	r.SetTarget("p1", 100, 0)
	r.SetPosition("p1", 50, 0)
	e, _ := r.Get("p1")
	if !e.IsMoving {
		t.Fatalf("still far from target, should be moving")
	}
	r.SetPosition("p1", 97, 0)
	e, _ = r.Get("p1")
	if e.IsMoving {
		t.Fatalf("within epsilon of target, should have stopped")
	}
}

func TestSetArkAddressRecolorsDeterministically(t *testing.T) {
	r1 := NewRegistry()
	r1.Add("p1")
	r1.SetArkAddress("p1", "abc")
	e1, _ := r1.Get("p1")

	// Same address on a different session in a fresh registry must yield
	// the same color: cross-process consistency, not per-session caching.
	r2 := NewRegistry()
	r2.Add("other")
	r2.SetArkAddress("other", "abc")
	e2, _ := r2.Get("other")

	if e1.Color != e2.Color {
		t.Fatalf("same address colored differently: %q vs %q", e1.Color, e2.Color)
	}
	if e1.Color == DefaultColor {
		t.Fatalf("registered address should replace the placeholder color")
	}
	if e1.ArkAddress != "abc" {
		t.Fatalf("ark address = %q, want %q", e1.ArkAddress, "abc")
	}
}

func TestSetBalanceRejectsBadAmounts(t *testing.T) {
	r := NewRegistry()
	r.Add("p1")
	if !r.SetBalance("p1", 250) {
		t.Fatalf("valid balance rejected")
	}
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if r.SetBalance("p1", bad) {
			t.Fatalf("balance %v should be rejected", bad)
		}
	}
	e, _ := r.Get("p1")
	if e.AvailableBalance != 250 {
		t.Fatalf("previous balance not retained: %f", e.AvailableBalance)
	}
}

func TestSnapshotJoinOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.Add(id)
	}
	r.Remove("b")
	r.Add("d")
	snap := r.Snapshot()
	want := []string{"a", "c", "d"}
	if len(snap) != len(want) {
		t.Fatalf("snapshot length = %d, want %d", len(snap), len(want))
	}
	for i, id := range want {
		if snap[i].ID != id {
			t.Fatalf("snapshot[%d] = %q, want %q", i, snap[i].ID, id)
		}
	}
}
