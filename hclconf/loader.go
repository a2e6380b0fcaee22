// Package hclconf loads HCL configuration files into the node model.
//
// The object-graph conventions are the same as for YAML: every top-level
// attribute becomes an entry of the root mapping, and any object value
// carrying a "type" attribute is constructed by the builder. Expressions
// are evaluated without a variable scope; configurations are data, not
// templates.
package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/reifylab/reify/internal/ctxlog"
	"github.com/reifylab/reify/node"
)

// DefaultFilename is the conventional name of the pipeline configuration
// file in HCL form.
const DefaultFilename = "learning_config.hcl"

// Loader reads a single HCL file into a node.Node.
type Loader struct{}

// NewLoader creates an HCL Loader.
func NewLoader() *Loader { return &Loader{} }

// Load implements conf.Loader. The root of an HCL configuration is always
// a mapping of the file's top-level attributes.
func (l *Loader) Load(ctx context.Context, path string) (node.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL configuration.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return node.Node{}, fmt.Errorf("parse HCL %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return node.Node{}, fmt.Errorf("read attributes of %s: %w", path, diags)
	}

	entries := make(map[string]node.Node, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return node.Node{}, fmt.Errorf("evaluate attribute %q in %s: %w", name, path, diags)
		}
		n, err := fromCty(val)
		if err != nil {
			return node.Node{}, fmt.Errorf("attribute %q in %s: %w", name, path, err)
		}
		entries[name] = n
	}

	logger.Debug("HCL configuration loaded.", "path", path, "attributes", len(attrs))
	return node.NewMapping(entries), nil
}

// fromCty translates an evaluated cty value into the node model.
func fromCty(v cty.Value) (node.Node, error) {
	if v.IsNull() {
		return node.Node{}, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return node.NewString(v.AsString()), nil
	case ty == cty.Bool:
		return node.NewBool(v.True()), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == 0 {
				return node.NewInt(i), nil
			}
		}
		f, _ := bf.Float64()
		return node.NewFloat(f), nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		elems := make([]node.Node, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			n, err := fromCty(ev)
			if err != nil {
				return node.Node{}, err
			}
			elems = append(elems, n)
		}
		return node.NewSequence(elems), nil
	case ty.IsObjectType() || ty.IsMapType():
		entries := make(map[string]node.Node, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			n, err := fromCty(ev)
			if err != nil {
				return node.Node{}, err
			}
			entries[kv.AsString()] = n
		}
		return node.NewMapping(entries), nil
	}

	return node.Node{}, fmt.Errorf("unsupported HCL value of type %s", ty.FriendlyName())
}
