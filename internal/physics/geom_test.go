package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTimeToCollision(t *testing.T) {
	tests := []struct {
		name     string
		pa, va   mgl64.Vec2
		ra       float64
		pb, vb   mgl64.Vec2
		rb       float64
		expected float64
	}{
		{
			name: "head-on equal speeds",
			pa:   mgl64.Vec2{100, 100}, va: mgl64.Vec2{10, 0}, ra: 10,
			pb: mgl64.Vec2{200, 100}, vb: mgl64.Vec2{-10, 0}, rb: 10,
			expected: 4.0,
		},
		{
			name: "chasing, closing at 10",
			pa:   mgl64.Vec2{0, 0}, va: mgl64.Vec2{20, 0}, ra: 5,
			pb: mgl64.Vec2{110, 0}, vb: mgl64.Vec2{10, 0}, rb: 5,
			expected: 10.0,
		},
		{
			name: "receding",
			pa:   mgl64.Vec2{100, 100}, va: mgl64.Vec2{-10, 0}, ra: 10,
			pb: mgl64.Vec2{200, 100}, vb: mgl64.Vec2{10, 0}, rb: 10,
			expected: math.Inf(1),
		},
		{
			name: "parallel same velocity",
			pa:   mgl64.Vec2{0, 0}, va: mgl64.Vec2{5, 5}, ra: 10,
			pb: mgl64.Vec2{100, 0}, vb: mgl64.Vec2{5, 5}, rb: 10,
			expected: math.Inf(1),
		},
		{
			name: "near miss",
			pa:   mgl64.Vec2{0, 0}, va: mgl64.Vec2{1, 0}, ra: 1,
			pb: mgl64.Vec2{10, 5}, vb: mgl64.Vec2{0, 0}, rb: 1,
			expected: math.Inf(1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeToCollision(tc.pa, tc.va, tc.ra, tc.pb, tc.vb, tc.rb)
			if math.IsInf(tc.expected, 1) {
				if !math.IsInf(got, 1) {
					t.Errorf("TimeToCollision() = %v, expected +Inf", got)
				}
				return
			}
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("TimeToCollision() = %v, expected %v", got, tc.expected)
			}
			// Symmetric in its arguments
			rev := TimeToCollision(tc.pb, tc.vb, tc.rb, tc.pa, tc.va, tc.ra)
			if math.Abs(rev-got) > 1e-9 {
				t.Errorf("TimeToCollision() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestTimeToCollisionNeverNaN(t *testing.T) {
	// Coincident centres make the discriminant path degenerate; the
	// contract is "no event", never NaN.
	got := TimeToCollision(mgl64.Vec2{5, 5}, mgl64.Vec2{}, 1, mgl64.Vec2{5, 5}, mgl64.Vec2{}, 1)
	if math.IsNaN(got) {
		t.Fatal("TimeToCollision returned NaN")
	}
}

func TestTimeToWall(t *testing.T) {
	tests := []struct {
		name     string
		p, v     mgl64.Vec2
		r        float64
		expected float64
	}{
		{"heading right", mgl64.Vec2{100, 100}, mgl64.Vec2{10, 0}, 10, 89},
		{"heading left", mgl64.Vec2{100, 100}, mgl64.Vec2{-10, 0}, 10, 9},
		{"heading down-left, horizontal first", mgl64.Vec2{100, 100}, mgl64.Vec2{-10, -20}, 10, 4.5},
		{"at rest", mgl64.Vec2{500, 500}, mgl64.Vec2{}, 10, math.Inf(1)},
		{"outside the box", mgl64.Vec2{2000, 100}, mgl64.Vec2{-10, 0}, 10, math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TimeToWall(tc.p, tc.v, tc.r, 1000, 1000)
			if math.IsInf(tc.expected, 1) {
				if !math.IsInf(got, 1) {
					t.Errorf("TimeToWall() = %v, expected +Inf", got)
				}
				return
			}
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("TimeToWall() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestContactPoint(t *testing.T) {
	pa := mgl64.Vec2{100, 100}
	va := mgl64.Vec2{10, 0}
	pb := mgl64.Vec2{200, 100}
	vb := mgl64.Vec2{-10, 0}

	at := ContactPoint(pa, va, 10, pb, vb, 4.0)
	if math.Abs(at.X()-150) > 1e-9 || math.Abs(at.Y()-100) > 1e-9 {
		t.Errorf("ContactPoint() = %v, expected (150, 100)", at)
	}
}

func TestWallContactPoint(t *testing.T) {
	// Heading straight right from the centre: contact on the right wall.
	at := WallContactPoint(mgl64.Vec2{500, 500}, mgl64.Vec2{100, 0}, 10, 1000, 1000)
	if math.Abs(at.X()-1000) > 1e-9 || math.Abs(at.Y()-500) > 1e-9 {
		t.Errorf("WallContactPoint() = %v, expected (1000, 500)", at)
	}

	// Heading straight down: contact on the bottom wall.
	at = WallContactPoint(mgl64.Vec2{500, 500}, mgl64.Vec2{0, -100}, 10, 1000, 1000)
	if math.Abs(at.X()-500) > 1e-9 || math.Abs(at.Y()) > 1e-9 {
		t.Errorf("WallContactPoint() = %v, expected (500, 0)", at)
	}
}

func TestInsideBox(t *testing.T) {
	tests := []struct {
		name     string
		p        mgl64.Vec2
		r        float64
		expected bool
	}{
		{"centre", mgl64.Vec2{500, 500}, 10, true},
		{"snug against left wall", mgl64.Vec2{9.9, 500}, 10, true},
		{"through the left wall", mgl64.Vec2{5, 500}, 10, false},
		{"through the top wall", mgl64.Vec2{500, 995}, 10, false},
		{"outside entirely", mgl64.Vec2{-50, 500}, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InsideBox(tc.p, tc.r, 1000, 1000); got != tc.expected {
				t.Errorf("InsideBox(%v, %v) = %v, expected %v", tc.p, tc.r, got, tc.expected)
			}
		})
	}
}

func TestCapSpeed(t *testing.T) {
	tests := []struct {
		name string
		v    mgl64.Vec2
		max  float64
	}{
		{"under the cap", mgl64.Vec2{100, 200}, 300000},
		{"exactly at the cap", mgl64.Vec2{300000, 0}, 300000},
		{"over the cap", mgl64.Vec2{400000, 0}, 300000},
		{"over the cap diagonally", mgl64.Vec2{300000, 300000}, 300000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CapSpeed(tc.v, tc.max)
			if got.Len() > tc.max*(1+1e-12) {
				t.Errorf("CapSpeed() speed %v exceeds cap %v", got.Len(), tc.max)
			}
			if tc.v.Len() <= tc.max && got != tc.v {
				t.Errorf("CapSpeed() changed an in-cap velocity: %v -> %v", tc.v, got)
			}
			// Direction is preserved: cross product stays zero.
			cross := tc.v.X()*got.Y() - tc.v.Y()*got.X()
			if math.Abs(cross) > 1e-3 {
				t.Errorf("CapSpeed() changed direction: %v -> %v", tc.v, got)
			}
		})
	}
}

func TestCapSpeedNaN(t *testing.T) {
	got := CapSpeed(mgl64.Vec2{math.NaN(), 10}, 300000)
	if got.X() != 0 || got.Y() != 0 {
		t.Errorf("CapSpeed() with NaN = %v, expected zero vector", got)
	}
}
