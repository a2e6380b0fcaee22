// Package testutil provides helpers for registering throwaway components
// in tests.
package testutil

import (
	"context"

	"github.com/reifylab/reify/registry"
)

// SimpleModule is a test helper for registering a single component under
// an arbitrary package path and name.
type SimpleModule struct {
	Package   string
	Name      string
	Component *registry.Component
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Package != "" && m.Name != "" && m.Component != nil {
		r.Register(m.Package, m.Name, m.Component)
	}
}

// NoArgComponent returns a component with no argument struct whose
// factory returns obj. Useful for tests that only care about resolution,
// not construction.
func NoArgComponent(obj any) *registry.Component {
	return &registry.Component{
		Construct: func(ctx context.Context) (any, error) {
			return obj, nil
		},
	}
}
