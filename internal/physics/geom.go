// Package physics provides the pure collision-prediction math for the
// simulator. It contains no entity or world types (and no Bubble Tea) so the
// formulas stay independently testable.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NoCollision is the largest finite float64. The functions in this package
// do not return it: they report "no event" as +Inf.
const NoCollision = math.MaxFloat64

func noEvent(t float64) bool {
	return math.IsNaN(t) || math.IsInf(t, 1)
}

// TimeToCollision returns the time until two moving discs first touch.
// Returns +Inf when the discs are receding or their paths never close the
// gap. A negative result means the discs already overlap while still
// closing; its magnitude is how long ago they first touched.
func TimeToCollision(pa, va mgl64.Vec2, ra float64, pb, vb mgl64.Vec2, rb float64) float64 {
	dp := pb.Sub(pa)
	dv := vb.Sub(va)

	dvdp := dv.Dot(dp)
	if dvdp >= 0 {
		return math.Inf(1)
	}

	dvdv := dv.Dot(dv)
	dpdp := dp.Dot(dp)
	sigma := ra + rb

	d := dvdp*dvdp - dvdv*(dpdp-sigma*sigma)
	if d <= 0 {
		return math.Inf(1)
	}

	t := -(dvdp + math.Sqrt(d)) / dvdv
	if math.IsNaN(t) {
		return math.Inf(1)
	}
	return t
}

// TimeToWall returns the time until a disc moving inside an axis-aligned
// box of the given width and height reaches a wall. The vertical and
// horizontal walls are considered independently; the minimum wins. A disc
// at rest, or one that is not inside the box, never reaches a wall.
func TimeToWall(p, v mgl64.Vec2, r, width, height float64) float64 {
	if !InsideBox(p, r, width, height) {
		return math.Inf(1)
	}

	vertical := math.Inf(1)
	switch {
	case v.X() > 0:
		vertical = (width - p.X() - r) / v.X()
	case v.X() < 0:
		vertical = (p.X() - r) / -v.X()
	}

	horizontal := math.Inf(1)
	switch {
	case v.Y() > 0:
		horizontal = (height - p.Y() - r) / v.Y()
	case v.Y() < 0:
		horizontal = (p.Y() - r) / -v.Y()
	}

	t := math.Min(vertical, horizontal)
	if math.IsNaN(t) {
		return math.Inf(1)
	}
	return math.Max(t, 0)
}

// ContactPoint extrapolates both discs to the impact time t and returns the
// point of contact: on the line between the projected centres, at distance
// ra from the first disc's centre.
func ContactPoint(pa, va mgl64.Vec2, ra float64, pb, vb mgl64.Vec2, t float64) mgl64.Vec2 {
	ca := pa.Add(va.Mul(t))
	cb := pb.Add(vb.Mul(t))

	dir := cb.Sub(ca)
	if n := dir.Len(); n > 0 {
		dir = dir.Mul(1 / n)
	}
	return ca.Add(dir.Mul(ra))
}

// WallContactPoint extrapolates a disc to the wall impact time and returns
// the point where the rim meets the wall. Whichever wall is reached first
// (vertical or horizontal) receives the radius offset.
func WallContactPoint(p, v mgl64.Vec2, r, width, height float64) mgl64.Vec2 {
	t := TimeToWall(p, v, r, width, height)
	if noEvent(t) {
		return p
	}
	c := p.Add(v.Mul(t))

	vertical := math.Inf(1)
	if v.X() != 0 {
		vertical = math.Abs((p.X() - r) / v.X())
		if v.X() > 0 {
			vertical = (width - p.X() - r) / v.X()
		}
	}
	horizontal := math.Inf(1)
	if v.Y() != 0 {
		horizontal = math.Abs((p.Y() - r) / v.Y())
		if v.Y() > 0 {
			horizontal = (height - p.Y() - r) / v.Y()
		}
	}

	if vertical < horizontal {
		if v.X() > 0 {
			return mgl64.Vec2{c.X() + r, c.Y()}
		}
		return mgl64.Vec2{c.X() - r, c.Y()}
	}
	if v.Y() > 0 {
		return mgl64.Vec2{c.X(), c.Y() + r}
	}
	return mgl64.Vec2{c.X(), c.Y() - r}
}

// InsideBox reports whether a disc of radius r centred at p lies apparently
// within the box: the distance from each wall to the centre is at least 99%
// of the radius.
func InsideBox(p mgl64.Vec2, r, width, height float64) bool {
	margin := 0.99 * r
	return p.X() >= margin && p.Y() >= margin &&
		p.X()+margin <= width && p.Y()+margin <= height
}

// CapSpeed scales v back onto the speed limit while preserving its
// direction. NaN components collapse to the zero vector; the operation is
// total and never fails.
func CapSpeed(v mgl64.Vec2, maxSpeed float64) mgl64.Vec2 {
	if math.IsNaN(v.X()) || math.IsNaN(v.Y()) {
		return mgl64.Vec2{}
	}
	speed := v.Len()
	if speed <= maxSpeed {
		return v
	}
	scale := maxSpeed / speed
	return v.Mul(scale)
}
