// Package scenario provides a global registry of named world builders.
// Scenarios register themselves in init() functions, allowing the CLI to
// discover and build them without hardcoded dependencies.
package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/astro-sim/internal/config"
	"github.com/vovakirdan/astro-sim/internal/world"
)

// BuildFunc constructs a populated world from the scenario configuration
// and a seed. Equal inputs must build identical worlds.
type BuildFunc func(cfg config.SimConfig, seed int64) (*world.World, error)

// Info contains metadata about a registered scenario.
type Info struct {
	ID    string
	Title string
}

var (
	builders = make(map[string]BuildFunc)
	titles   = make(map[string]string)
	mu       sync.RWMutex
)

// Register adds a scenario builder to the registry.
// Typically called from an init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id, title string, f BuildFunc) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := builders[id]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", id))
	}

	builders[id] = f
	titles[id] = title
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(builders))
	for id := range builders {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := builders[id]
	return ok
}

// Build constructs the world for a scenario by its ID.
// Returns an error if the scenario ID is not registered.
func Build(id string, cfg config.SimConfig, seed int64) (*world.World, error) {
	mu.RLock()
	f, ok := builders[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", id)
	}

	return f(cfg, seed)
}
