package schema

import (
	"fmt"
	"sync"
)

var (
	registry   = make(map[string]TableSpec)
	loadOrder  []string
	registryMu sync.RWMutex
)

// Register adds a table spec to the registry. Registration order is load
// order: tables with foreign-key parents must be registered after their
// referents. Panics if the spec is malformed or already registered.
func Register(spec TableSpec) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[spec.Name]; exists {
		panic(fmt.Sprintf("table already registered: %s", spec.Name))
	}
	if err := check(spec); err != nil {
		panic(fmt.Sprintf("invalid table spec %s: %v", spec.Name, err))
	}

	registry[spec.Name] = spec
	loadOrder = append(loadOrder, spec.Name)
}

// Get returns a table spec by name.
func Get(name string) (TableSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	spec, ok := registry[name]
	return spec, ok
}

// Ordered returns all registered specs in dependency (registration)
// order. Foreign-key parents always precede their children.
func Ordered() []TableSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]TableSpec, 0, len(loadOrder))
	for _, name := range loadOrder {
		result = append(result, registry[name])
	}
	return result
}

// Count returns the number of registered tables.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// check enforces the structural invariants of a spec at registration
// time: every alias target, cast key, JSON column and key column must be
// a member of Columns, and all names must be safe SQL identifiers.
func check(spec TableSpec) error {
	if !ValidIdentifier(spec.Name) {
		return fmt.Errorf("unsafe table name %q", spec.Name)
	}
	if len(spec.Columns) == 0 {
		return fmt.Errorf("no columns defined")
	}
	seen := make(map[string]bool, len(spec.Columns))
	for _, c := range spec.Columns {
		if !ValidIdentifier(c) {
			return fmt.Errorf("unsafe column name %q", c)
		}
		if seen[c] {
			return fmt.Errorf("duplicate column %q", c)
		}
		seen[c] = true
	}
	for alias, target := range spec.Aliases {
		if target == Drop {
			continue
		}
		if !seen[target] {
			return fmt.Errorf("alias %q targets unknown column %q", alias, target)
		}
	}
	for c := range spec.Casts {
		if !seen[c] {
			return fmt.Errorf("cast defined for unknown column %q", c)
		}
	}
	for _, c := range spec.JSONColumns {
		if !seen[c] {
			return fmt.Errorf("JSON coercion defined for unknown column %q", c)
		}
	}
	if spec.Upsert && len(spec.KeyColumns) == 0 {
		return fmt.Errorf("upsert enabled without key columns")
	}
	for _, c := range spec.KeyColumns {
		if !seen[c] {
			return fmt.Errorf("key column %q not in column list", c)
		}
	}
	return nil
}
