package scenario

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/vovakirdan/astro-sim/internal/config"
	"github.com/vovakirdan/astro-sim/internal/program"
	"github.com/vovakirdan/astro-sim/internal/world"
)

func init() {
	Register("headon", "Two ships on a head-on collision course", buildHeadOn)
	Register("gauntlet", "A programmed ship emptying its magazine", buildGauntlet)
	Register("rockfield", "A ship adrift in an asteroid field", buildRockField)
	Register("duel", "Two programmed ships trading fire", buildDuel)
}

// gunnerSource fires until the magazine runs dry, forever.
const gunnerSource = `while true { fire; skip; }`

// duelistSource fires whenever another ship is still out there.
const duelistSource = `
while true {
	s := ship;
	if !(s == null) {
		fire;
	}
	skip;
}
`

// shipProgram loads the program configured for the scenario, falling
// back to the given source.
func shipProgram(cfg config.SimConfig, fallback string) (*program.Program, error) {
	src := fallback
	if cfg.Scenario.Program != "" {
		data, err := os.ReadFile(cfg.Scenario.Program)
		if err != nil {
			return nil, fmt.Errorf("scenario: read program: %w", err)
		}
		src = string(data)
	}
	return program.Parse(src)
}

// loadMagazine fills a ship's magazine with n fresh bullets.
func loadMagazine(s *world.Ship, n int) error {
	for i := 0; i < n; i++ {
		b, err := world.NewBullet(s.Position().X(), s.Position().Y(), 0, 0, 2)
		if err != nil {
			return err
		}
		if err := s.LoadBullet(b); err != nil {
			return err
		}
	}
	return nil
}

func newWorld(cfg config.SimConfig, seed int64) *world.World {
	w := world.New(cfg.World.Width, cfg.World.Height)
	w.Reseed(seed)
	return w
}

func buildHeadOn(cfg config.SimConfig, seed int64) (*world.World, error) {
	w := newWorld(cfg, seed)

	speed := cfg.Scenario.Speed
	if speed <= 0 {
		speed = 10
	}
	cy := w.Height() / 2

	left, err := world.NewShip(w.Width()*0.2, cy, speed, 0, 10, 0, math.NaN())
	if err != nil {
		return nil, err
	}
	right, err := world.NewShip(w.Width()*0.8, cy, -speed, 0, 10, math.Pi, math.NaN())
	if err != nil {
		return nil, err
	}

	if err := w.AddEntity(left); err != nil {
		return nil, err
	}
	if err := w.AddEntity(right); err != nil {
		return nil, err
	}
	return w, nil
}

func buildGauntlet(cfg config.SimConfig, seed int64) (*world.World, error) {
	w := newWorld(cfg, seed)

	s, err := world.NewShip(w.Width()/2, w.Height()/2, 0, 0, 15, 0, math.NaN())
	if err != nil {
		return nil, err
	}
	bullets := cfg.Scenario.BulletsPerShip
	if bullets <= 0 {
		bullets = 3
	}
	if err := loadMagazine(s, bullets); err != nil {
		return nil, err
	}

	prog, err := shipProgram(cfg, gunnerSource)
	if err != nil {
		return nil, err
	}
	s.AttachProgram(prog)

	if err := w.AddEntity(s); err != nil {
		return nil, err
	}
	return w, nil
}

func buildRockField(cfg config.SimConfig, seed int64) (*world.World, error) {
	w := newWorld(cfg, seed)
	rng := rand.New(rand.NewSource(seed))

	speed := cfg.Scenario.Speed
	if speed <= 0 {
		speed = 25
	}

	s, err := world.NewShip(w.Width()/2, w.Height()/2, 0, 0, 15, 0, math.NaN())
	if err != nil {
		return nil, err
	}
	if err := w.AddEntity(s); err != nil {
		return nil, err
	}

	asteroids := cfg.Scenario.Asteroids
	if asteroids <= 0 {
		asteroids = 4
	}
	for i := 0; i < asteroids; i++ {
		if err := placeRock(w, rng, speed, false); err != nil {
			return nil, err
		}
	}

	planetoids := cfg.Scenario.Planetoids
	for i := 0; i < planetoids; i++ {
		if err := placeRock(w, rng, speed, true); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// placeRock drops a minor planet at a random free spot. Crowded worlds
// give up after a bounded number of attempts.
func placeRock(w *world.World, rng *rand.Rand, speed float64, planetoid bool) error {
	for attempt := 0; attempt < 64; attempt++ {
		radius := 10 + rng.Float64()*20
		x := radius + rng.Float64()*(w.Width()-2*radius)
		y := radius + rng.Float64()*(w.Height()-2*radius)
		angle := rng.Float64() * 2 * math.Pi
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle) * speed

		var e world.Entity
		var err error
		if planetoid {
			e, err = world.NewPlanetoid(x, y, vx, vy, radius, 0)
		} else {
			e, err = world.NewAsteroid(x, y, vx, vy, radius)
		}
		if err != nil {
			return err
		}
		if err := w.AddEntity(e); err == nil {
			return nil
		}
	}
	return fmt.Errorf("scenario: no free spot for a minor planet")
}

func buildDuel(cfg config.SimConfig, seed int64) (*world.World, error) {
	w := newWorld(cfg, seed)

	bullets := cfg.Scenario.BulletsPerShip
	if bullets <= 0 {
		bullets = 3
	}

	cy := w.Height() / 2
	setups := []struct {
		x, orientation float64
	}{
		{w.Width() * 0.15, 0},
		{w.Width() * 0.85, math.Pi},
	}

	for _, su := range setups {
		s, err := world.NewShip(su.x, cy, 0, 0, 15, su.orientation, math.NaN())
		if err != nil {
			return nil, err
		}
		if err := loadMagazine(s, bullets); err != nil {
			return nil, err
		}
		prog, err := shipProgram(cfg, duelistSource)
		if err != nil {
			return nil, err
		}
		s.AttachProgram(prog)
		if err := w.AddEntity(s); err != nil {
			return nil, err
		}
	}
	return w, nil
}
