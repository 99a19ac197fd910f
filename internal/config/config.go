// Package config provides YAML-based simulation configuration loading
// for the simulator CLI and viewer.
package config

// SimConfig contains all host-side configuration for a simulation run.
// Entity class constants (speed cap, densities, minimum radii) are fixed
// by the engine and intentionally not configurable.
type SimConfig struct {
	World    WorldConfig    `yaml:"world"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Scenario ScenarioConfig `yaml:"scenario"`
}

// WorldConfig defines the world rectangle.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ViewerConfig defines pacing for the TUI viewer. The headless runner
// ignores it and paces itself with its --step and --duration flags.
type ViewerConfig struct {
	TickRate  int     `yaml:"tick_rate"`  // Render ticks per second
	TimeScale float64 `yaml:"time_scale"` // Simulated seconds per wall second
}

// ScenarioConfig parameterizes the built-in scenario builders.
type ScenarioConfig struct {
	Ships          int     `yaml:"ships"`
	BulletsPerShip int     `yaml:"bullets_per_ship"`
	Asteroids      int     `yaml:"asteroids"`
	Planetoids     int     `yaml:"planetoids"`
	Speed          float64 `yaml:"speed"`   // Typical entity speed
	Program        string  `yaml:"program"` // Path to a ship program file, optional
}
