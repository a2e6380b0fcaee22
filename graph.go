package reify

import (
	"fmt"
	"sort"
	"strings"
)

// Conventional names of the top-level subtrees of a learning pipeline
// configuration.
const (
	KeyOptimizer      = "Optimizer"
	KeyBehaviorSearch = "BehaviorSearch"
	KeyEnvironment    = "Environment"
)

// Graph is a fully resolved top-level configuration: a mapping from
// subtree name to resolved value. Values that were typed nodes are live
// objects; ownership of those objects passes to whoever fetches them.
type Graph struct {
	entries map[string]any
}

// Keys returns the names of the top-level entries in sorted order.
func (g *Graph) Keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the resolved value under name, or a *KeyError when the
// entry is absent.
func (g *Graph) Lookup(name string) (any, error) {
	v, ok := g.entries[name]
	if !ok {
		return nil, &KeyError{Key: name, Available: g.Keys()}
	}
	return v, nil
}

// Optimizer returns the entry named "Optimizer".
func (g *Graph) Optimizer() (any, error) { return g.Lookup(KeyOptimizer) }

// BehaviorSearch returns the entry named "BehaviorSearch".
func (g *Graph) BehaviorSearch() (any, error) { return g.Lookup(KeyBehaviorSearch) }

// Environment returns the entry named "Environment".
func (g *Graph) Environment() (any, error) { return g.Lookup(KeyEnvironment) }

// KeyError reports that a requested top-level entry is absent from the
// resolved configuration.
type KeyError struct {
	Key       string
	Available []string
}

func (e *KeyError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no entry '%s' in configuration (configuration is empty)", e.Key)
	}
	return fmt.Sprintf("no entry '%s' in configuration (available: %s)",
		e.Key, strings.Join(e.Available, ", "))
}
