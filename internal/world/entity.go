// Package world implements the simulation core: circular entities, the
// world container that owns them, the continuous-time collision loop and
// the per-pair collision resolver. All state is plain values behind a
// synchronous API; the package never renders, logs or sleeps.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/astro-sim/internal/physics"
)

// Kind identifies one of the closed set of entity variants.
type Kind int

const (
	KindShip Kind = iota
	KindBullet
	KindAsteroid
	KindPlanetoid
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	case KindPlanetoid:
		return "planetoid"
	default:
		return "unknown"
	}
}

// Entity class constants. The engine is unitless; these match the classic
// game scale (positions in km-like units, speeds capped at light speed).
const (
	// MaxSpeed is the speed cap applied to every entity.
	MaxSpeed = 300000.0

	ShipMinRadius  = 10.0
	ShipMinDensity = 1.42e12

	BulletMinRadius = 1.0
	BulletDensity   = 7.8e12

	AsteroidMinRadius = 5.0
	AsteroidDensity   = 2.65e12

	PlanetoidMinRadius = 5.0
	PlanetoidDensity   = 0.917e12
)

// Entity is a mobile circular body living in at most one World. The set of
// implementations is closed: Ship, Bullet, Asteroid and Planetoid.
type Entity interface {
	Kind() Kind
	Position() mgl64.Vec2
	Velocity() mgl64.Vec2
	Radius() float64
	Orientation() float64
	Mass() float64

	// World returns the owning world, or nil for a free entity.
	World() *World

	// IsDestroyed reports whether the entity is marked for removal on the
	// next sweep.
	IsDestroyed() bool

	// IsTerminated reports whether the entity has been detached for good.
	IsTerminated() bool

	// Destroy marks the entity for removal. Actual removal happens in the
	// world's sweep so resolution never mutates the set it iterates.
	Destroy()

	// Terminate detaches the entity from its world and makes it inert.
	Terminate()

	// Move advances the entity linearly for dt seconds. Variants layer
	// their own behavior on top (thruster acceleration, erosion).
	Move(dt float64) error

	SetPosition(x, y float64) error
	SetVelocity(vx, vy float64)
	SetOrientation(theta float64)

	base() *body
}

// body carries the state shared by every entity variant.
type body struct {
	kind Kind

	pos mgl64.Vec2
	vel mgl64.Vec2

	radius      float64
	orientation float64
	mass        float64

	minRadius float64
	density   float64

	world      *World
	destroyed  bool
	terminated bool
}

func newBody(kind Kind, x, y, vx, vy, radius, minRadius, density float64) (body, error) {
	b := body{kind: kind, minRadius: minRadius, density: density}
	if err := b.SetPosition(x, y); err != nil {
		return body{}, err
	}
	if math.IsNaN(radius) || radius < minRadius {
		return body{}, ErrInvalidRadius
	}
	b.radius = radius
	b.SetVelocity(vx, vy)
	b.mass = sphereMass(radius, density)
	return b, nil
}

// sphereMass derives the mass of a rigid disc treated as a sphere of the
// given density.
func sphereMass(radius, density float64) float64 {
	return (4.0 / 3.0) * math.Pi * radius * radius * radius * density
}

func (b *body) base() *body          { return b }
func (b *body) Kind() Kind           { return b.kind }
func (b *body) Position() mgl64.Vec2 { return b.pos }
func (b *body) Velocity() mgl64.Vec2 { return b.vel }
func (b *body) Radius() float64      { return b.radius }
func (b *body) Orientation() float64 { return b.orientation }
func (b *body) Mass() float64        { return b.mass }
func (b *body) World() *World        { return b.world }
func (b *body) IsDestroyed() bool    { return b.destroyed }
func (b *body) IsTerminated() bool   { return b.terminated }

// Destroy marks this entity for removal on the next sweep.
func (b *body) Destroy() { b.destroyed = true }

// Terminate detaches the entity from its world, if any, and makes it
// inert. A terminated entity is never referenced by the world again.
func (b *body) Terminate() {
	if b.world != nil {
		b.world.drop(b)
	}
	b.terminated = true
}

// SetPosition places the entity, rejecting NaN coordinates.
func (b *body) SetPosition(x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) {
		return ErrInvalidPosition
	}
	b.pos = mgl64.Vec2{x, y}
	return nil
}

// SetVelocity sets the velocity, scaling it back onto the speed cap while
// preserving its direction. NaN components collapse to zero. Total: it
// never fails.
func (b *body) SetVelocity(vx, vy float64) {
	b.vel = physics.CapSpeed(mgl64.Vec2{vx, vy}, MaxSpeed)
}

// SetOrientation sets the facing angle. Nominal: callers ensure
// 0 <= theta <= 2π.
func (b *body) SetOrientation(theta float64) {
	b.orientation = theta
}

// Move advances the entity linearly for dt seconds.
func (b *body) Move(dt float64) error {
	if math.IsNaN(dt) || dt < 0 {
		return ErrInvalidDuration
	}
	b.pos = b.pos.Add(b.vel.Mul(dt))
	return nil
}

// attach records the owning world. Called only by World.
func (b *body) attach(w *World) {
	if b.world == nil {
		b.world = w
	}
}

// detach clears the world back-reference. Called only by World.
func (b *body) detach() {
	b.world = nil
}

// Distance returns the centre-to-centre distance between two entities.
// The distance from an entity to itself is zero.
func Distance(a, b Entity) float64 {
	if a == b {
		return 0
	}
	return b.Position().Sub(a.Position()).Len()
}

// Overlap reports whether the discs of two entities touch or intersect.
func Overlap(a, b Entity) bool {
	return Distance(a, b) <= a.Radius()+b.Radius()
}

// SignificantOverlap reports whether the centre distance is at most 99% of
// the summed radii.
func SignificantOverlap(a, b Entity) bool {
	return Distance(a, b) <= 0.99*(a.Radius()+b.Radius())
}

// ApparentlyCollide reports whether the centre distance lies within
// [99%, 101%] of the summed radii.
func ApparentlyCollide(a, b Entity) bool {
	d := Distance(a, b)
	sum := a.Radius() + b.Radius()
	return 0.99*sum <= d && d <= 1.01*sum
}

// WithinBoundaries reports whether the entity apparently lies inside the
// world: each wall is at least 99% of the radius away from the centre.
func WithinBoundaries(e Entity, w *World) bool {
	if w == nil {
		return false
	}
	return physics.InsideBox(e.Position(), e.Radius(), w.Width(), w.Height())
}
