package plot

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh, uninitialised driver instance.
type Factory func() Driver

// DriverEntry describes a registered driver.
type DriverEntry struct {
	// Name is the value accepted by Open (case-sensitive).
	Name string

	// Priority orders default selection (higher = preferred).
	//   - 100: interactive windows
	//   - 50: interactive terminals
	//   - 10-11: file drivers, pgm first
	//   - 0: the no-op driver
	Priority int

	Factory Factory

	// Available reports whether the driver can run in this process.
	Available func() bool
}

// Registry maps driver names to factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*DriverEntry
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry. Most code uses the process-wide
// registry through Register and Open.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*DriverEntry)}
}

// DefaultRegistry returns the process-wide registry drivers add themselves to.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a driver to the process-wide registry.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Register adds a driver. A nil available func means always available.
// Registering an existing name replaces it.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &DriverEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a driver.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*DriverEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Names lists every registered driver, highest priority first.
func (r *Registry) Names() []string {
	return r.names(false)
}

// Available lists the drivers that can run here, highest priority first.
func (r *Registry) Available() []string {
	return r.names(true)
}

func (r *Registry) names(onlyAvailable bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*DriverEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})

	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}

// Default returns the highest-priority available driver.
func (r *Registry) Default() (*DriverEntry, error) {
	avail := r.Available()
	if len(avail) == 0 {
		return nil, ErrNoDriver
	}
	e, _ := r.Lookup(avail[0])
	return e, nil
}

// Resolve picks the driver for a requested name. An empty name selects the
// default; an unknown name falls back to the default with a warning. A known
// driver that cannot run here is an error, there is no silent degradation.
func (r *Registry) Resolve(name string) (*DriverEntry, error) {
	if name != "" {
		if e, ok := r.Lookup(name); ok {
			if !e.Available() {
				return nil, fmt.Errorf("%w: %s", ErrUnavailable, name)
			}
			return e, nil
		}
	}

	e, err := r.Default()
	if err != nil {
		return nil, err
	}
	if name != "" {
		Logger().Warn("unknown driver, using default",
			"requested", name, "driver", e.Name)
	}
	return e, nil
}

// Require is Resolve without fallback: the name must be registered and
// available.
func (r *Registry) Require(name string) (*DriverEntry, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
	}
	if !e.Available() {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, name)
	}
	return e, nil
}
