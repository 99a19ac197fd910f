package config

import (
	_ "embed"
)

//go:embed defaults/sim.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the default simulation configuration.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		World: WorldConfig{
			Width:  1000,
			Height: 1000,
		},
		Viewer: ViewerConfig{
			TickRate:  30,
			TimeScale: 1.0,
		},
		Scenario: ScenarioConfig{
			Ships:          2,
			BulletsPerShip: 3,
			Asteroids:      4,
			Planetoids:     1,
			Speed:          25,
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by the
// `astrosim config` subcommand.
func DefaultYAML() []byte {
	return defaultSimYAML
}
