// pkg/dialects/registry.go
package dialects

import (
	"sync"

	"github.com/russenger/modelsql/pkg/dialects/common"
)

// Factory creates a new Dialect instance.
type Factory func() common.Dialect

var (
	dialectsMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a dialect available under the given name. Registering a nil
// factory, or the same name twice, panics: both are wiring mistakes caught at
// init time.
func Register(name string, factory Factory) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	if factory == nil {
		panic("dialects: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("dialects: Register called twice for dialect " + name)
	}
	registry[name] = factory
}

// Get retrieves a dialect factory by name, nil when unknown.
func Get(name string) Factory {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	return registry[name]
}

// Registered returns the names of all registered dialects.
func Registered() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	list := make([]string, 0, len(registry))
	for name := range registry {
		list = append(list, name)
	}
	return list
}
