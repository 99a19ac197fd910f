package world

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/astro-sim/internal/physics"
)

// World dimension limits.
const (
	MaxDimension  = math.MaxFloat64
	DefaultWidth  = 1000.0
	DefaultHeight = 1000.0
)

// World is an axis-aligned rectangle that exclusively owns a set of
// entities and advances them through time with an event-driven collision
// loop. Membership is unique by identity; after every public call no two
// members significantly overlap and every member lies within the
// boundaries.
type World struct {
	width  float64
	height float64

	// entities keeps insertion order so collision tie-breaking and
	// program scheduling stay deterministic.
	entities []Entity

	rng        *rand.Rand
	terminated bool
}

// New creates an empty world. Dimensions outside [0, MaxDimension], or
// NaN, fall back to the 1000x1000 default. The teleport RNG starts from a
// fixed seed; use Reseed for reproducible variation.
func New(width, height float64) *World {
	w := &World{rng: rand.New(rand.NewSource(1))}
	if math.IsNaN(width) || width < 0 || width > MaxDimension {
		width = DefaultWidth
	}
	if math.IsNaN(height) || height < 0 || height > MaxDimension {
		height = DefaultHeight
	}
	w.width = width
	w.height = height
	return w
}

// Reseed resets the world's random source, which drives planetoid
// teleports. Worlds with equal seeds and histories evolve identically.
func (w *World) Reseed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// Width returns the world width.
func (w *World) Width() float64 { return w.width }

// Height returns the world height.
func (w *World) Height() float64 { return w.height }

// IsTerminated reports whether the world has been shut down.
func (w *World) IsTerminated() bool { return w.terminated }

// Terminate disowns every member and marks the world terminated. A
// terminated world rejects new entities.
func (w *World) Terminate() {
	for _, e := range w.snapshot() {
		e.base().detach()
	}
	w.entities = nil
	w.terminated = true
}

// Entities returns the members in insertion order.
func (w *World) Entities() []Entity {
	return w.snapshot()
}

// Ships returns the member ships in insertion order.
func (w *World) Ships() []*Ship {
	var out []*Ship
	for _, e := range w.entities {
		if s, ok := e.(*Ship); ok {
			out = append(out, s)
		}
	}
	return out
}

// Bullets returns the member bullets in insertion order.
func (w *World) Bullets() []*Bullet {
	var out []*Bullet
	for _, e := range w.entities {
		if b, ok := e.(*Bullet); ok {
			out = append(out, b)
		}
	}
	return out
}

// Asteroids returns the member asteroids in insertion order.
func (w *World) Asteroids() []*Asteroid {
	var out []*Asteroid
	for _, e := range w.entities {
		if a, ok := e.(*Asteroid); ok {
			out = append(out, a)
		}
	}
	return out
}

// Planetoids returns the member planetoids in insertion order.
func (w *World) Planetoids() []*Planetoid {
	var out []*Planetoid
	for _, e := range w.entities {
		if p, ok := e.(*Planetoid); ok {
			out = append(out, p)
		}
	}
	return out
}

func (w *World) snapshot() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// AddEntity inserts a free entity into the world, establishing the
// ownership back-reference. It fails when the entity is nil, terminated,
// already owned (by a world or a magazine), significantly overlaps a
// member, or does not lie within the boundaries.
func (w *World) AddEntity(e Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if w.terminated {
		return ErrTerminated
	}
	if e.IsTerminated() {
		return ErrTerminated
	}
	if e.base().world != nil {
		return ErrOwned
	}
	if b, ok := e.(*Bullet); ok && b.loadedInto != nil {
		return ErrOwned
	}
	if w.significantOverlapAny(e) {
		return ErrOverlap
	}
	if !physics.InsideBox(e.Position(), e.Radius(), w.width, w.height) {
		return ErrOutOfBounds
	}
	e.base().attach(w)
	w.entities = append(w.entities, e)
	return nil
}

// RemoveEntity detaches a member from the world. Removing a non-member is
// an error.
func (w *World) RemoveEntity(e Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	for i, m := range w.entities {
		if m == e {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			e.base().detach()
			return nil
		}
	}
	return ErrNotMember
}

// drop removes the entity owning the given body without surfacing
// membership errors. Used by Entity.Terminate.
func (w *World) drop(b *body) {
	for i, m := range w.entities {
		if m.base() == b {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			break
		}
	}
	b.detach()
}

// significantOverlapAny reports whether e significantly overlaps any
// member other than itself.
func (w *World) significantOverlapAny(e Entity) bool {
	for _, m := range w.entities {
		if m != e && SignificantOverlap(e, m) {
			return true
		}
	}
	return false
}

// EntityAt returns the first member whose centre equals (x, y) exactly,
// or nil.
func (w *World) EntityAt(x, y float64) Entity {
	for _, e := range w.entities {
		p := e.Position()
		if p.X() == x && p.Y() == y {
			return e
		}
	}
	return nil
}

// collision is a predicted next event: two entities, or one entity and
// the world boundary when b is nil.
type collision struct {
	a Entity
	b Entity
	t float64
}

// nextCollision scans all entity pairs and entity-boundary candidates for
// the earliest impact. Ties resolve in insertion order, which keeps the
// loop deterministic. NaN impact times are treated as "no event".
func (w *World) nextCollision() (collision, bool) {
	best := collision{t: math.Inf(1)}
	found := false

	for i, a := range w.entities {
		for _, b := range w.entities[i+1:] {
			t := physics.TimeToCollision(
				a.Position(), a.Velocity(), a.Radius(),
				b.Position(), b.Velocity(), b.Radius(),
			)
			if !math.IsNaN(t) && t < best.t {
				best = collision{a: a, b: b, t: t}
				found = true
			}
		}

		t := physics.TimeToWall(a.Position(), a.Velocity(), a.Radius(), w.width, w.height)
		if !math.IsNaN(t) && t < best.t {
			best = collision{a: a, t: t}
			found = true
		}
	}
	return best, found
}

// NextCollisionTime returns the time until the earliest predicted
// collision. The second result is false when the world holds no upcoming
// event.
func (w *World) NextCollisionTime() (float64, bool) {
	c, ok := w.nextCollision()
	if !ok {
		return 0, false
	}
	return c.t, true
}

// NextCollisionObjects returns the pair involved in the earliest predicted
// collision. The second entity is nil for a boundary event.
func (w *World) NextCollisionObjects() (Entity, Entity, bool) {
	c, ok := w.nextCollision()
	if !ok {
		return nil, nil, false
	}
	return c.a, c.b, true
}

// NextCollisionPosition returns the contact point of the earliest
// predicted collision.
func (w *World) NextCollisionPosition() (mgl64.Vec2, bool) {
	c, ok := w.nextCollision()
	if !ok {
		return mgl64.Vec2{}, false
	}
	return w.contactPoint(c), true
}

func (w *World) contactPoint(c collision) mgl64.Vec2 {
	if c.b == nil {
		return physics.WallContactPoint(c.a.Position(), c.a.Velocity(), c.a.Radius(), w.width, w.height)
	}
	return physics.ContactPoint(
		c.a.Position(), c.a.Velocity(), c.a.Radius(),
		c.b.Position(), c.b.Velocity(), c.t,
	)
}

// Evolve advances the world by dt seconds: repeatedly find the earliest
// collision, advance everything up to it (ship programs run for the same
// slice), resolve the pair, notify the listener, sweep destroyed members
// and continue with the remaining time. A nil listener is valid.
func (w *World) Evolve(dt float64, listener CollisionListener) error {
	if math.IsNaN(dt) || dt < 0 {
		return ErrInvalidDuration
	}

	for dt > 0 && len(w.entities) > 0 {
		c, found := w.nextCollision()
		if !found || c.t > dt {
			return w.advance(dt)
		}

		// Glancing contacts can predict a marginally negative time;
		// resolve them without moving backwards.
		if err := w.advance(math.Max(c.t, 0)); err != nil {
			return err
		}

		// Entities have been advanced to the moment of contact, so the
		// contact point is computed from current positions.
		at := w.contactPoint(collision{a: c.a, b: c.b})
		w.resolve(c.a, c.b)
		w.notify(listener, c.a, c.b, at)
		w.sweep()

		dt -= c.t
	}
	return nil
}

// advance runs every ship's program for dt, then moves every entity by
// dt. A program error aborts the advance; physics state stays consistent.
func (w *World) advance(dt float64) error {
	for _, s := range w.Ships() {
		if s.program == nil {
			continue
		}
		if err := s.program.Run(s, w, dt); err != nil {
			return err
		}
	}
	for _, e := range w.snapshot() {
		if e.World() != w {
			continue // removed by a program side effect
		}
		if err := e.Move(dt); err != nil {
			return err
		}
	}
	w.sweep()
	return nil
}

// sweep terminates every destroyed member, removing it from the world.
func (w *World) sweep() {
	for _, e := range w.snapshot() {
		if e.IsDestroyed() {
			e.Terminate()
		}
	}
}

// notify reports the resolved event to the listener: boundary events
// always, object events only when the collision destroyed both entities.
func (w *World) notify(listener CollisionListener, a, b Entity, at mgl64.Vec2) {
	if listener == nil {
		return
	}
	if b == nil {
		listener.BoundaryCollision(a, at.X(), at.Y())
		return
	}
	if a.IsDestroyed() && b.IsDestroyed() {
		listener.ObjectCollision(a, b, at.X(), at.Y())
	}
}

// randomPosition returns a uniformly random in-world position for an
// entity of the given radius.
func (w *World) randomPosition(radius float64) mgl64.Vec2 {
	x := radius + w.rng.Float64()*(w.width-2*radius)
	y := radius + w.rng.Float64()*(w.height-2*radius)
	return mgl64.Vec2{x, y}
}
