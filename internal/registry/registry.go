// Package registry provides a global registry of built-in maps.
// Maps register themselves in init() functions, allowing the command line
// and the platform to list and load them by name.
package registry

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/tilemap"
)

// MapInfo contains metadata about a registered map.
type MapInfo struct {
	Name   string
	Title  string
	Width  int
	Height int
}

// Factory builds a fresh copy of a map with the requested dimensions.
// A map that does not have those dimensions is a *tilemap.MapFormatError.
type Factory func(w, h int) (*tilemap.Map, error)

type entry struct {
	info    MapInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a map to the registry.
// Typically called from an init() function.
// Panics if a map with the same name is already registered.
func Register(info MapInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.Name]; exists {
		panic(fmt.Sprintf("registry: map %q already registered", info.Name))
	}
	entries[info.Name] = entry{info: info, factory: f}
}

// List returns information about all registered maps, sorted by name.
func List() []MapInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]MapInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Info returns the metadata of a registered map.
func Info(name string) (MapInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	return e.info, ok
}

// Create builds a new copy of the named map.
// Returns an error if the name is not registered.
func Create(name string, w, h int) (*tilemap.Map, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown map %q", name)
	}
	m, err := e.factory(w, h)
	if err != nil {
		return nil, fmt.Errorf("registry: map %q: %w", name, err)
	}
	return m, nil
}

// Exists checks if a map with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}

// Resolve loads a map by reference: a registered name, or else a path to a
// map file.
func Resolve(ref string, w, h int) (*tilemap.Map, error) {
	if Exists(ref) {
		return Create(ref, w, h)
	}
	return LoadFile(ref, w, h)
}

// LoadFile parses a map file from disk.
func LoadFile(path string, w, h int) (*tilemap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %w", path, err)
	}
	defer f.Close()

	m, err := tilemap.Parse(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}
