package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ship-specific constants.
const (
	// ShipThrustForce is the default thruster force.
	ShipThrustForce = 1.1e18

	// MuzzleSpeed is the speed a fired bullet leaves the ship with.
	MuzzleSpeed = 250.0
)

// ShipProgram is the contract between a ship and its attached program
// interpreter. Run executes the program against the ship and its world for
// a slice of dt simulated seconds and either finishes, suspends internally
// until the next slice, or fails with a program error.
type ShipProgram interface {
	Run(ship *Ship, w *World, dt float64) error
}

// Ship is an entity with a thruster, a facing direction, a magazine of
// bullets not currently in the world, and an optionally attached program.
type Ship struct {
	body

	thrusterOn  bool
	thrustForce float64

	magazine []*Bullet
	program  ShipProgram
}

// NewShip creates a free ship. The given mass is used when it is at least
// the mass derived from the minimum ship density; otherwise the derived
// mass applies. Orientation is nominal: 0 <= orientation <= 2π.
func NewShip(x, y, vx, vy, radius, orientation, mass float64) (*Ship, error) {
	b, err := newBody(KindShip, x, y, vx, vy, radius, ShipMinRadius, ShipMinDensity)
	if err != nil {
		return nil, err
	}
	s := &Ship{body: b, thrustForce: ShipThrustForce}
	s.SetOrientation(orientation)
	if !math.IsNaN(mass) && mass >= s.mass {
		s.mass = mass
	}
	return s, nil
}

// ThrusterOn reports whether the thruster is firing.
func (s *Ship) ThrusterOn() bool { return s.thrusterOn }

// SetThruster toggles the thruster. Acceleration is applied during Move.
func (s *Ship) SetThruster(on bool) { s.thrusterOn = on }

// ThrustForce returns the thruster force.
func (s *Ship) ThrustForce() float64 { return s.thrustForce }

// SetThrustForce overrides the thruster force. Non-positive and NaN values
// reset it to the default.
func (s *Ship) SetThrustForce(f float64) {
	if math.IsNaN(f) || f <= 0 {
		f = ShipThrustForce
	}
	s.thrustForce = f
}

// Move advances the ship, applying thruster acceleration over the step
// along the current orientation.
func (s *Ship) Move(dt float64) error {
	if err := s.body.Move(dt); err != nil {
		return err
	}
	if s.thrusterOn {
		a := s.thrustForce / s.mass
		dv := mgl64.Vec2{math.Cos(s.orientation), math.Sin(s.orientation)}.Mul(a * dt)
		v := s.vel.Add(dv)
		s.SetVelocity(v.X(), v.Y())
	}
	return nil
}

// Turn rotates the ship by delta radians. Nominal: callers ensure the
// resulting orientation stays within [0, 2π).
func (s *Ship) Turn(delta float64) {
	s.orientation += delta
}

// Program returns the attached program, or nil.
func (s *Ship) Program() ShipProgram { return s.program }

// AttachProgram attaches a program to the ship, replacing any prior one.
func (s *Ship) AttachProgram(p ShipProgram) { s.program = p }

// Magazine returns the bullets currently loaded, in load order.
func (s *Ship) Magazine() []*Bullet {
	out := make([]*Bullet, len(s.magazine))
	copy(out, s.magazine)
	return out
}

// MagazineSize returns the number of loaded bullets.
func (s *Ship) MagazineSize() int { return len(s.magazine) }

// LoadBullet puts a free bullet into the magazine and records this ship as
// its source. A bullet that is in a world or in a magazine cannot be
// loaded.
func (s *Ship) LoadBullet(b *Bullet) error {
	if b == nil {
		return ErrNilEntity
	}
	if b.world != nil || b.loadedInto != nil {
		return ErrOwned
	}
	b.loadedInto = s
	b.source = s
	s.magazine = append(s.magazine, b)
	return nil
}

// UnloadBullet removes a bullet from the magazine without firing it.
func (s *Ship) UnloadBullet(b *Bullet) error {
	if b == nil {
		return ErrNilEntity
	}
	for i, m := range s.magazine {
		if m == b {
			s.magazine = append(s.magazine[:i], s.magazine[i+1:]...)
			b.loadedInto = nil
			return nil
		}
	}
	return ErrNotMember
}

// Fire takes the most recently loaded bullet, places it on the ship's rim
// along the current orientation with the muzzle speed, and adds it to the
// ship's world. When the placement would overlap a member or leave the
// boundaries the bullet is destroyed instead of placed. Firing with an
// empty magazine, or while the ship is not in a world, does nothing.
func (s *Ship) Fire() {
	if s.world == nil || len(s.magazine) == 0 {
		return
	}

	b := s.magazine[len(s.magazine)-1]
	s.magazine = s.magazine[:len(s.magazine)-1]
	b.loadedInto = nil

	dir := mgl64.Vec2{math.Cos(s.orientation), math.Sin(s.orientation)}
	at := s.pos.Add(dir.Mul(s.radius + b.radius))
	b.pos = at
	b.vel = dir.Mul(MuzzleSpeed)

	if err := s.world.AddEntity(b); err != nil {
		b.Terminate()
	}
}
