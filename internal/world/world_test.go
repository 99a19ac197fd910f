package world

import (
	"errors"
	"math"
	"testing"
)

// checkInvariants asserts the two world invariants: no significant
// overlap between members, and every member within the boundaries.
func checkInvariants(t *testing.T, w *World) {
	t.Helper()
	members := w.Entities()
	for i, a := range members {
		if !WithinBoundaries(a, w) {
			t.Errorf("invariant: %s at %v leaves the boundaries", a.Kind(), a.Position())
		}
		for _, b := range members[i+1:] {
			if SignificantOverlap(a, b) {
				t.Errorf("invariant: %s and %s significantly overlap", a.Kind(), b.Kind())
			}
		}
	}
}

func TestNewWorldDefaults(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantW, wantH  float64
	}{
		{"valid", 400, 600, 400, 600},
		{"negative width", -5, 600, 1000, 600},
		{"NaN height", 400, math.NaN(), 400, 1000},
		{"zero is valid", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := New(tc.width, tc.height)
			if w.Width() != tc.wantW || w.Height() != tc.wantH {
				t.Errorf("dimensions = %v x %v, expected %v x %v",
					w.Width(), w.Height(), tc.wantW, tc.wantH)
			}
		})
	}
}

func TestAddEntity(t *testing.T) {
	w := New(1000, 1000)

	if err := w.AddEntity(nil); !errors.Is(err, ErrNilEntity) {
		t.Errorf("nil entity: err = %v, expected ErrNilEntity", err)
	}

	s := mustShip(t, 500, 500, 0, 0, 10, 0)
	if err := w.AddEntity(s); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	if s.World() != w {
		t.Error("added entity should reference its world")
	}

	// Already owned, even by the same world.
	if err := w.AddEntity(s); !errors.Is(err, ErrOwned) {
		t.Errorf("re-add: err = %v, expected ErrOwned", err)
	}
	other := New(1000, 1000)
	if err := other.AddEntity(s); !errors.Is(err, ErrOwned) {
		t.Errorf("second world: err = %v, expected ErrOwned", err)
	}

	// Significant overlap with a member.
	tooClose := mustShip(t, 505, 500, 0, 0, 10, 0)
	if err := w.AddEntity(tooClose); !errors.Is(err, ErrOverlap) {
		t.Errorf("overlap: err = %v, expected ErrOverlap", err)
	}

	// Outside the boundaries.
	outside := mustShip(t, 5, 500, 0, 0, 10, 0)
	if err := w.AddEntity(outside); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds: err = %v, expected ErrOutOfBounds", err)
	}

	checkInvariants(t, w)
}

func TestRemoveEntity(t *testing.T) {
	w := New(1000, 1000)
	s := mustShip(t, 500, 500, 0, 0, 10, 0)
	if err := w.AddEntity(s); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	if err := w.RemoveEntity(nil); !errors.Is(err, ErrNilEntity) {
		t.Errorf("nil: err = %v, expected ErrNilEntity", err)
	}

	if err := w.RemoveEntity(s); err != nil {
		t.Fatalf("RemoveEntity: %v", err)
	}
	if s.World() != nil {
		t.Error("removed entity still references the world")
	}
	if err := w.RemoveEntity(s); !errors.Is(err, ErrNotMember) {
		t.Errorf("non-member: err = %v, expected ErrNotMember", err)
	}

	// A removed entity is free to join another world.
	other := New(1000, 1000)
	if err := other.AddEntity(s); err != nil {
		t.Errorf("re-adding a removed entity: %v", err)
	}
}

func TestWorldTerminate(t *testing.T) {
	w := New(1000, 1000)
	s := mustShip(t, 500, 500, 0, 0, 10, 0)
	if err := w.AddEntity(s); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	w.Terminate()

	if !w.IsTerminated() {
		t.Error("world not terminated")
	}
	if s.World() != nil {
		t.Error("member not disowned by Terminate")
	}
	if err := w.AddEntity(mustShip(t, 100, 100, 0, 0, 10, 0)); !errors.Is(err, ErrTerminated) {
		t.Errorf("add to terminated world: err = %v, expected ErrTerminated", err)
	}
}

func TestEntityAt(t *testing.T) {
	w := New(1000, 1000)
	s := mustShip(t, 500, 500, 0, 0, 10, 0)
	if err := w.AddEntity(s); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	if got := w.EntityAt(500, 500); got != Entity(s) {
		t.Errorf("EntityAt(500, 500) = %v, expected the ship", got)
	}
	if got := w.EntityAt(500, 501); got != nil {
		t.Errorf("EntityAt(500, 501) = %v, expected nil", got)
	}
}

func TestKindFilters(t *testing.T) {
	w := New(1000, 1000)
	s := mustShip(t, 200, 200, 0, 0, 10, 0)
	a := mustAsteroid(t, 500, 500, 0, 0, 10)
	p, err := NewPlanetoid(800, 800, 0, 0, 10, 0)
	if err != nil {
		t.Fatalf("NewPlanetoid: %v", err)
	}
	for _, e := range []Entity{s, a, p} {
		if err := w.AddEntity(e); err != nil {
			t.Fatalf("AddEntity: %v", err)
		}
	}

	if got := len(w.Ships()); got != 1 {
		t.Errorf("Ships() = %d entries, expected 1", got)
	}
	if got := len(w.Asteroids()); got != 1 {
		t.Errorf("Asteroids() = %d entries, expected 1", got)
	}
	if got := len(w.Planetoids()); got != 1 {
		t.Errorf("Planetoids() = %d entries, expected 1", got)
	}
	if got := len(w.Bullets()); got != 0 {
		t.Errorf("Bullets() = %d entries, expected 0", got)
	}
}

func TestNextCollisionQueries(t *testing.T) {
	w := New(1000, 1000)

	if _, ok := w.NextCollisionTime(); ok {
		t.Error("empty world should predict no collision")
	}

	a := mustShip(t, 100, 100, 10, 0, 10, 0)
	b := mustShip(t, 200, 100, -10, 0, 10, 0)
	if err := w.AddEntity(a); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	if err := w.AddEntity(b); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	tc, ok := w.NextCollisionTime()
	if !ok || math.Abs(tc-4.0) > 1e-9 {
		t.Errorf("NextCollisionTime = %v, %v, expected 4.0", tc, ok)
	}

	ca, cb, ok := w.NextCollisionObjects()
	if !ok || ca != Entity(a) || cb != Entity(b) {
		t.Errorf("NextCollisionObjects = %v, %v, expected the two ships", ca, cb)
	}

	at, ok := w.NextCollisionPosition()
	if !ok || math.Abs(at.X()-150) > 1e-9 || math.Abs(at.Y()-100) > 1e-9 {
		t.Errorf("NextCollisionPosition = %v, expected (150, 100)", at)
	}
}

func TestEvolveInvalidDuration(t *testing.T) {
	w := New(1000, 1000)
	if err := w.Evolve(-1, nil); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative: err = %v, expected ErrInvalidDuration", err)
	}
	if err := w.Evolve(math.NaN(), nil); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("NaN: err = %v, expected ErrInvalidDuration", err)
	}
	if err := w.Evolve(5, nil); err != nil {
		t.Errorf("empty world: err = %v, expected nil", err)
	}
}

func TestEvolveHeadOn(t *testing.T) {
	w := New(1000, 1000)
	a := mustShip(t, 100, 100, 10, 0, 10, 0)
	b := mustShip(t, 200, 100, -10, 0, 10, 0)
	if err := w.AddEntity(a); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}
	if err := w.AddEntity(b); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	if err := w.Evolve(5, nil); err != nil {
		t.Fatalf("Evolve: %v", err)
	}

	// Equal masses swap velocities at t=4; one more second of drift.
	if v := a.Velocity(); math.Abs(v.X()+10) > 1e-9 || math.Abs(v.Y()) > 1e-9 {
		t.Errorf("a velocity = %v, expected (-10, 0)", v)
	}
	if v := b.Velocity(); math.Abs(v.X()-10) > 1e-9 || math.Abs(v.Y()) > 1e-9 {
		t.Errorf("b velocity = %v, expected (10, 0)", v)
	}
	if p := a.Position(); math.Abs(p.X()-130) > 1e-9 {
		t.Errorf("a position = %v, expected x=130", p)
	}
	if p := b.Position(); math.Abs(p.X()-170) > 1e-9 {
		t.Errorf("b position = %v, expected x=170", p)
	}

	checkInvariants(t, w)
}

func TestEvolveNoEventJustAdvances(t *testing.T) {
	w := New(1000, 1000)
	s := mustShip(t, 500, 500, 10, 5, 10, 0)
	if err := w.AddEntity(s); err != nil {
		t.Fatalf("AddEntity: %v", err)
	}

	if err := w.Evolve(2, nil); err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	if p := s.Position(); math.Abs(p.X()-520) > 1e-9 || math.Abs(p.Y()-510) > 1e-9 {
		t.Errorf("position = %v, expected (520, 510)", p)
	}
	checkInvariants(t, w)
}
