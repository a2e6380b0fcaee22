package registry

import (
	"fmt"
	"log/slog"
	"sort"
)

// Component holds the compiled Go parts of a constructible component.
type Component struct {
	// NewArgs returns a pointer to a fresh argument struct that the
	// builder binds configuration keys onto. Nil means the component
	// accepts no arguments.
	NewArgs func() any

	// Construct is the factory invoked with the bound arguments. Its
	// signature must be either
	//
	//	func(ctx context.Context, args *T) (any, error)
	//
	// where *T is the type produced by NewArgs, or
	//
	//	func(ctx context.Context) (any, error)
	//
	// when NewArgs is nil.
	Construct any
}

// Module is the interface a group of components implements to be
// registered as a unit.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered components for a single application
// instance, keyed by package path and component name.
type Registry struct {
	packages map[string]map[string]*Component
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{packages: make(map[string]map[string]*Component)}
}

// Register adds a component under the given package path and name.
// Registering the same (package, name) pair twice is a programmer error
// and panics.
func (r *Registry) Register(pkg, name string, c *Component) {
	if pkg == "" || name == "" {
		panic("registry: package and name must not be empty")
	}
	if c == nil || c.Construct == nil {
		panic(fmt.Sprintf("registry: component '%s.%s' has no constructor", pkg, name))
	}
	names, ok := r.packages[pkg]
	if !ok {
		names = make(map[string]*Component)
		r.packages[pkg] = names
	}
	if _, exists := names[name]; exists {
		panic(fmt.Sprintf("registry: component '%s.%s' already registered", pkg, name))
	}
	slog.Debug("Registering component.", "package", pkg, "name", name)
	names[name] = c
}

// Resolve parses the reserved "type"/"package" values into a
// TypeReference and looks the component up. packageValue may be empty.
func (r *Registry) Resolve(typeValue, packageValue string) (*Component, TypeReference, error) {
	ref, err := ParseTypeReference(typeValue, packageValue)
	if err != nil {
		return nil, TypeReference{}, err
	}
	c, err := r.Lookup(ref)
	if err != nil {
		return nil, ref, err
	}
	return c, ref, nil
}

// Lookup returns the component registered under ref, or a
// *ResolutionError naming both the package and the component when either
// is unknown.
func (r *Registry) Lookup(ref TypeReference) (*Component, error) {
	names, ok := r.packages[ref.Package]
	if !ok {
		return nil, &ResolutionError{Ref: ref, PackageKnown: false}
	}
	c, ok := names[ref.Name]
	if !ok {
		return nil, &ResolutionError{Ref: ref, PackageKnown: true, Registered: sortedKeys(names)}
	}
	return c, nil
}

// Packages returns the registered package paths in sorted order.
func (r *Registry) Packages() []string {
	return sortedKeys(r.packages)
}

// Names returns the component names registered under a package path, in
// sorted order.
func (r *Registry) Names(pkg string) []string {
	return sortedKeys(r.packages[pkg])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
