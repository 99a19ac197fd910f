package world

// maxBulletBounces is the wall hit that destroys a bullet; it survives the
// hits before it.
const maxBulletBounces = 3

// Bullet is a small dense entity fired by ships. A bullet is in exactly
// one of: a world, one ship's magazine, or neither.
type Bullet struct {
	body

	bounces    int
	source     *Ship
	loadedInto *Ship
}

// NewBullet creates a free bullet with no source ship.
func NewBullet(x, y, vx, vy, radius float64) (*Bullet, error) {
	b, err := newBody(KindBullet, x, y, vx, vy, radius, BulletMinRadius, BulletDensity)
	if err != nil {
		return nil, err
	}
	return &Bullet{body: b}, nil
}

// BounceCount returns the number of world-boundary bounces so far.
func (b *Bullet) BounceCount() int { return b.bounces }

// Source returns the ship that fired or loaded this bullet, or nil if it
// never belonged to one.
func (b *Bullet) Source() *Ship { return b.source }

// LoadedInto returns the ship whose magazine currently holds the bullet,
// or nil when the bullet is free or in a world.
func (b *Bullet) LoadedInto() *Ship { return b.loadedInto }

// recordBounce increments the bounce counter and reports whether the
// bullet has hit a boundary for the final time.
func (b *Bullet) recordBounce() (expired bool) {
	b.bounces++
	return b.bounces >= maxBulletBounces
}

// resetBounces clears the bounce counter; used when a bullet is reloaded
// into its source ship.
func (b *Bullet) resetBounces() { b.bounces = 0 }

// Terminate additionally drops the bullet from any magazine holding it.
func (b *Bullet) Terminate() {
	if b.loadedInto != nil {
		_ = b.loadedInto.UnloadBullet(b)
	}
	b.body.Terminate()
}
