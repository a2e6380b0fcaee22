package builder

import (
	"context"
	"fmt"

	"github.com/reifylab/reify/internal/ctxlog"
	"github.com/reifylab/reify/node"
	"github.com/reifylab/reify/registry"
)

// Builder resolves configuration trees against a component registry.
type Builder struct {
	reg *registry.Registry
}

// New creates a Builder backed by the given registry.
func New(reg *registry.Registry) *Builder {
	if reg == nil {
		panic("builder: registry must not be nil")
	}
	return &Builder{reg: reg}
}

// Resolve turns a configuration node into its resolved value: the scalar
// itself, a []any for sequences, a map[string]any for plain mappings, or
// a constructed object for typed mappings. The input node is never
// mutated; every container in the result is freshly built.
func (b *Builder) Resolve(ctx context.Context, n node.Node) (any, error) {
	switch n.Kind() {
	case node.Null, node.Bool, node.Number, node.String:
		return n.Scalar(), nil
	case node.Sequence:
		return b.resolveSequence(ctx, n)
	case node.Mapping:
		if n.IsTyped() {
			return b.resolveTyped(ctx, n)
		}
		return b.resolveMapping(ctx, n)
	}
	return nil, fmt.Errorf("cannot resolve node of kind %s", n.Kind())
}

func (b *Builder) resolveSequence(ctx context.Context, n node.Node) (any, error) {
	out := make([]any, n.Len())
	for i := range out {
		v, err := b.Resolve(ctx, n.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (b *Builder) resolveMapping(ctx context.Context, n node.Node) (any, error) {
	out := make(map[string]any, n.Len())
	for _, k := range n.Keys() {
		child, _ := n.Get(k)
		v, err := b.Resolve(ctx, child)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// resolveTyped constructs an object from a mapping that carries the
// reserved "type" key. All non-reserved siblings are resolved first, so
// nested typed nodes reach the constructor as live objects.
func (b *Builder) resolveTyped(ctx context.Context, n node.Node) (any, error) {
	typeValue, err := reservedString(n, node.KeyType)
	if err != nil {
		return nil, err
	}
	packageValue, err := optionalReservedString(n, node.KeyPackage)
	if err != nil {
		return nil, err
	}

	args := make(map[string]any, n.Len())
	for _, k := range n.Keys() {
		if k == node.KeyType || k == node.KeyPackage {
			continue
		}
		child, _ := n.Get(k)
		v, err := b.Resolve(ctx, child)
		if err != nil {
			return nil, err
		}
		args[k] = v
	}

	comp, ref, err := b.reg.Resolve(typeValue, packageValue)
	if err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("Constructing component.", "type", ref.String(), "args", len(args))
	return construct(ctx, ref, comp, args)
}

func reservedString(n node.Node, key string) (string, error) {
	child, _ := n.Get(key)
	s, ok := child.Scalar().(string)
	if !ok {
		return "", fmt.Errorf("reserved key %q must be a string, got %s", key, child.Kind())
	}
	return s, nil
}

func optionalReservedString(n node.Node, key string) (string, error) {
	if _, ok := n.Get(key); !ok {
		return "", nil
	}
	return reservedString(n, key)
}
