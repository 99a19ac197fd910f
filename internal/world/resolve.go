package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// resolve applies the per-pair collision rules. b is nil for a boundary
// event. Resolution flips destroyed flags and adjusts velocities, with two
// exceptions: an own-bullet reload takes the bullet out of the world at
// once, and a planetoid teleport moves the ship. Destroyed members are
// removed in the following sweep.
func (w *World) resolve(a, b Entity) {
	if b == nil {
		w.resolveBoundary(a)
		return
	}

	switch x := a.(type) {
	case *Ship:
		switch y := b.(type) {
		case *Ship:
			bounce(x, y)
		case *Bullet:
			resolveShipBullet(x, y)
		case *Asteroid:
			x.Destroy()
		case *Planetoid:
			w.teleport(x)
		}
	case *Bullet:
		switch y := b.(type) {
		case *Ship:
			resolveShipBullet(y, x)
		default:
			// Bullets destroy whatever else they hit, and themselves.
			x.Destroy()
			y.Destroy()
		}
	case *Asteroid:
		switch y := b.(type) {
		case *Ship:
			y.Destroy()
		case *Bullet:
			x.Destroy()
			y.Destroy()
		default:
			bounce(a, b)
		}
	case *Planetoid:
		switch y := b.(type) {
		case *Ship:
			w.teleport(y)
		case *Bullet:
			x.Destroy()
			y.Destroy()
		default:
			bounce(a, b)
		}
	}
}

// bounce performs an elastic momentum exchange between two equal-rule
// bodies (ship-ship and minor-planet-minor-planet collisions).
func bounce(a, b Entity) {
	dp := b.Position().Sub(a.Position())
	dv := b.Velocity().Sub(a.Velocity())

	sigma := a.Radius() + b.Radius()
	ma, mb := a.Mass(), b.Mass()

	j := 2 * ma * mb * dv.Dot(dp) / ((ma + mb) * sigma)
	impulse := dp.Mul(j / sigma)

	va := a.Velocity().Add(impulse.Mul(1 / ma))
	vb := b.Velocity().Sub(impulse.Mul(1 / mb))

	a.SetVelocity(va.X(), va.Y())
	b.SetVelocity(vb.X(), vb.Y())
}

// resolveShipBullet reloads a ship's own bullet and destroys both bodies
// for a foreign one.
func resolveShipBullet(s *Ship, b *Bullet) {
	if b.source != s {
		s.Destroy()
		b.Destroy()
		return
	}

	// Own bullet: back into the magazine, good as new.
	b.resetBounces()
	if w := b.world; w != nil {
		_ = w.RemoveEntity(b)
	}
	b.pos = s.pos
	b.vel = mgl64.Vec2{}
	b.loadedInto = s
	s.magazine = append(s.magazine, b)
}

// teleport moves a ship that grazed a planetoid to a uniformly random
// in-world position. A landing spot that significantly overlaps another
// member destroys the ship instead.
func (w *World) teleport(s *Ship) {
	at := w.randomPosition(s.radius)
	s.pos = at
	if w.significantOverlapAny(s) {
		s.Destroy()
	}
}

// resolveBoundary reflects an entity off the nearest wall. Corner ties
// invert both velocity components. Bullets expire on their third wall
// hit.
func (w *World) resolveBoundary(e Entity) {
	if b, ok := e.(*Bullet); ok {
		if b.recordBounce() {
			b.Destroy()
			return
		}
	}

	bd := e.base()
	left := bd.pos.X() - bd.radius
	right := w.width - bd.pos.X() - bd.radius
	bottom := bd.pos.Y() - bd.radius
	top := w.height - bd.pos.Y() - bd.radius

	vertical := math.Min(left, right)
	horizontal := math.Min(bottom, top)

	vx, vy := bd.vel.X(), bd.vel.Y()
	switch {
	case vertical == horizontal:
		e.SetVelocity(-vx, -vy)
	case vertical < horizontal:
		e.SetVelocity(-vx, vy)
	default:
		e.SetVelocity(vx, -vy)
	}
}
