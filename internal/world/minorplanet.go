package world

// PlanetoidErosion is the radius lost per unit of distance travelled.
const PlanetoidErosion = 1e-6

// Asteroid is a purely ballistic minor planet. Colliding ships are
// destroyed; the asteroid itself survives everything but bullets.
type Asteroid struct {
	body
}

// NewAsteroid creates a free asteroid.
func NewAsteroid(x, y, vx, vy, radius float64) (*Asteroid, error) {
	b, err := newBody(KindAsteroid, x, y, vx, vy, radius, AsteroidMinRadius, AsteroidDensity)
	if err != nil {
		return nil, err
	}
	return &Asteroid{body: b}, nil
}

// Planetoid is a minor planet whose radius erodes with the distance it
// travels. When the radius falls below the minimum the planetoid
// self-destructs.
type Planetoid struct {
	body

	travelled  float64
	baseRadius float64
}

// NewPlanetoid creates a free planetoid. The given travelled distance is
// applied to the radius immediately, so a planetoid spawned mid-journey
// starts already eroded.
func NewPlanetoid(x, y, vx, vy, radius, travelled float64) (*Planetoid, error) {
	b, err := newBody(KindPlanetoid, x, y, vx, vy, radius, PlanetoidMinRadius, PlanetoidDensity)
	if err != nil {
		return nil, err
	}
	p := &Planetoid{body: b, baseRadius: radius}
	if travelled > 0 {
		p.travelled = travelled
		p.erode()
	}
	if p.destroyed {
		return nil, ErrInvalidRadius
	}
	return p, nil
}

// Travelled returns the total distance this planetoid has moved.
func (p *Planetoid) Travelled() float64 { return p.travelled }

// Move advances the planetoid and erodes its radius by the distance
// covered.
func (p *Planetoid) Move(dt float64) error {
	if err := p.body.Move(dt); err != nil {
		return err
	}
	p.travelled += p.vel.Len() * dt
	p.erode()
	return nil
}

func (p *Planetoid) erode() {
	r := p.baseRadius - p.travelled*PlanetoidErosion
	if r < PlanetoidMinRadius {
		p.radius = PlanetoidMinRadius
		p.Destroy()
		return
	}
	p.radius = r
	p.mass = sphereMass(r, PlanetoidDensity)
}
