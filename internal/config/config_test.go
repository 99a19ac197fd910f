package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSimConfig(t *testing.T) {
	cfg := DefaultSimConfig()

	if cfg.World.Width != 1000 || cfg.World.Height != 1000 {
		t.Errorf("default world = %v x %v, expected 1000 x 1000", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Viewer.TickRate <= 0 {
		t.Error("default tick rate must be positive")
	}
	if cfg.Viewer.TimeScale <= 0 {
		t.Error("default time scale must be positive")
	}
	if cfg.Scenario.Ships <= 0 {
		t.Error("default scenario must include ships")
	}
}

func TestLoadSimEmbeddedDefault(t *testing.T) {
	// With no custom path and no local config files, the embedded YAML
	// must match the hardcoded defaults.
	cfg, err := LoadSim("")
	if err != nil {
		t.Fatalf("LoadSim: %v", err)
	}
	want := DefaultSimConfig()
	if cfg.World != want.World {
		t.Errorf("embedded world = %+v, expected %+v", cfg.World, want.World)
	}
	if cfg.Viewer != want.Viewer {
		t.Errorf("embedded viewer = %+v, expected %+v", cfg.Viewer, want.Viewer)
	}
}

func TestDefaultYAMLParses(t *testing.T) {
	// The dump handed out by `astrosim config` must itself load back
	// into the default configuration.
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadSim(path)
	if err != nil {
		t.Fatalf("LoadSim: %v", err)
	}
	want := DefaultSimConfig()
	if cfg.World != want.World || cfg.Viewer != want.Viewer || cfg.Scenario != want.Scenario {
		t.Errorf("round-tripped config = %+v, expected %+v", cfg, want)
	}
}

func TestLoadSimCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	data := []byte("world:\n  width: 250\n  height: 400\nviewer:\n  tick_rate: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadSim(path)
	if err != nil {
		t.Fatalf("LoadSim: %v", err)
	}
	if cfg.World.Width != 250 || cfg.World.Height != 400 {
		t.Errorf("world = %v x %v, expected 250 x 400", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Viewer.TickRate != 10 {
		t.Errorf("tick rate = %d, expected 10", cfg.Viewer.TickRate)
	}
}

func TestLoadSimMissingCustomPath(t *testing.T) {
	if _, err := LoadSim(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing custom config should fail loudly")
	}
}

func TestLoadSimMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	if err := os.WriteFile(path, []byte("world: ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadSim(path); err == nil {
		t.Fatal("malformed custom config should fail loudly")
	}
}
