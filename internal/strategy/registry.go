// Package strategy provides the interchangeable emotion decision strategies
// and a registry for them. Strategies register themselves in init()
// functions, allowing the platform to discover and instantiate them without
// hardcoded dependencies.
package strategy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/npc-quest/internal/emotion"
)

// Info contains metadata about a registered strategy.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() emotion.Strategy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("strategy: %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered strategies, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new strategy by name.
// Returns an error if the name is not registered.
func Create(name string) (emotion.Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("strategy: unknown strategy %q", name)
	}

	return f(), nil
}

// Exists checks if a strategy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
