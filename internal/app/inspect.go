package app

import (
	"context"
	"fmt"

	"github.com/reifylab/reify/internal/ctxlog"
	"github.com/reifylab/reify/node"
	"github.com/reifylab/reify/registry"
)

// typedNode is one "type"-carrying mapping found during the walk.
type typedNode struct {
	path string // dotted location within the file, e.g. "Optimizer.search"
	ref  registry.TypeReference
	err  error // non-nil when the reference is malformed
}

// inspectFile loads one configuration file, prints its tree, and verifies
// every typed node's reference.
func (a *App) inspectFile(ctx context.Context, path, entry string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Inspecting configuration file.", "path", path)

	root, err := loaderFor(path).Load(ctx, path)
	if err != nil {
		return err
	}
	root, err = entryOf(root, entry)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a.printer.header(path)
	a.printer.printNode(root, 0)

	var typed []typedNode
	collectTypedNodes(root, entry, &typed)
	a.printer.summary(len(typed))

	for _, t := range typed {
		if t.err != nil {
			return fmt.Errorf("%s: typed node at '%s': %w", path, t.path, t.err)
		}
		logger.Debug("Typed node reference is well-formed.", "at", t.path, "ref", t.ref.String())
	}
	return nil
}

// collectTypedNodes walks the tree and records every mapping carrying the
// reserved "type" key, parsing its reference along the way.
func collectTypedNodes(n node.Node, at string, out *[]typedNode) {
	switch n.Kind() {
	case node.Sequence:
		for i := 0; i < n.Len(); i++ {
			collectTypedNodes(n.Index(i), fmt.Sprintf("%s[%d]", at, i), out)
		}
	case node.Mapping:
		if n.IsTyped() {
			*out = append(*out, parseTypedNode(n, at))
		}
		for _, k := range n.Keys() {
			if k == node.KeyType || k == node.KeyPackage {
				continue
			}
			child, _ := n.Get(k)
			collectTypedNodes(child, joinPath(at, k), out)
		}
	}
}

func parseTypedNode(n node.Node, at string) typedNode {
	tn, _ := n.Get(node.KeyType)
	typeValue, ok := tn.Scalar().(string)
	if !ok {
		return typedNode{path: at, err: fmt.Errorf("reserved key %q must be a string, got %s", node.KeyType, tn.Kind())}
	}
	var packageValue string
	if pn, ok := n.Get(node.KeyPackage); ok {
		packageValue, ok = pn.Scalar().(string)
		if !ok {
			return typedNode{path: at, err: fmt.Errorf("reserved key %q must be a string, got %s", node.KeyPackage, pn.Kind())}
		}
	}
	ref, err := registry.ParseTypeReference(typeValue, packageValue)
	return typedNode{path: at, ref: ref, err: err}
}

func joinPath(at, key string) string {
	if at == "" {
		return key
	}
	return at + "." + key
}
