package node

import (
	"fmt"
	"math"
	"sort"
)

// Reserved mapping keys that mark a mapping as a typed node.
const (
	KeyType    = "type"
	KeyPackage = "package"
)

// Node is one configuration value. The zero value is the Null node.
// Nodes are immutable once built; resolution never mutates its input.
type Node struct {
	kind    Kind
	scalar  any // bool, int64, uint64, float64, or string
	seq     []Node
	mapping map[string]Node
}

// NewBool returns a Bool node.
func NewBool(v bool) Node { return Node{kind: Bool, scalar: v} }

// NewInt returns a Number node holding an integer.
func NewInt(v int64) Node { return Node{kind: Number, scalar: v} }

// NewFloat returns a Number node holding a float.
func NewFloat(v float64) Node { return Node{kind: Number, scalar: v} }

// NewString returns a String node.
func NewString(v string) Node { return Node{kind: String, scalar: v} }

// NewSequence returns a Sequence node over the given elements, preserving
// their order. The slice is copied.
func NewSequence(elems []Node) Node {
	s := make([]Node, len(elems))
	copy(s, elems)
	return Node{kind: Sequence, seq: s}
}

// NewMapping returns a Mapping node over the given entries. The map is copied.
func NewMapping(entries map[string]Node) Node {
	m := make(map[string]Node, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Node{kind: Mapping, mapping: m}
}

// FromGo converts a decoded Go value (the shape produced by unmarshalling
// YAML or JSON into any) into a Node. Supported inputs: nil, bool, all
// integer and float widths, string, []any, map[string]any, and
// map[any]any with string keys.
func FromGo(v any) (Node, error) {
	switch t := v.(type) {
	case nil:
		return Node{}, nil
	case Node:
		return t, nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return fromUint(uint64(t)), nil
	case uint8:
		return NewInt(int64(t)), nil
	case uint16:
		return NewInt(int64(t)), nil
	case uint32:
		return NewInt(int64(t)), nil
	case uint64:
		return fromUint(t), nil
	case float32:
		return NewFloat(float64(t)), nil
	case float64:
		return NewFloat(t), nil
	case []any:
		elems := make([]Node, len(t))
		for i, e := range t {
			n, err := FromGo(e)
			if err != nil {
				return Node{}, fmt.Errorf("sequence index %d: %w", i, err)
			}
			elems[i] = n
		}
		return Node{kind: Sequence, seq: elems}, nil
	case map[string]any:
		m := make(map[string]Node, len(t))
		for k, e := range t {
			n, err := FromGo(e)
			if err != nil {
				return Node{}, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = n
		}
		return Node{kind: Mapping, mapping: m}, nil
	case map[any]any:
		m := make(map[string]Node, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return Node{}, fmt.Errorf("mapping key %v (%T) is not a string", k, k)
			}
			n, err := FromGo(e)
			if err != nil {
				return Node{}, fmt.Errorf("key %q: %w", ks, err)
			}
			m[ks] = n
		}
		return Node{kind: Mapping, mapping: m}, nil
	default:
		return Node{}, fmt.Errorf("unsupported configuration value of type %T", v)
	}
}

func fromUint(v uint64) Node {
	if v <= math.MaxInt64 {
		return NewInt(int64(v))
	}
	return Node{kind: Number, scalar: v}
}

// Kind returns the variant held by the node.
func (n Node) Kind() Kind { return n.kind }

// Scalar returns the Go value of a scalar node: nil for Null, bool for
// Bool, int64/uint64/float64 for Number, string for String. It returns nil
// for containers.
func (n Node) Scalar() any { return n.scalar }

// Len returns the number of elements of a Sequence or entries of a
// Mapping, and 0 for scalars.
func (n Node) Len() int {
	switch n.kind {
	case Sequence:
		return len(n.seq)
	case Mapping:
		return len(n.mapping)
	default:
		return 0
	}
}

// Index returns the i-th element of a Sequence node. It panics when the
// node is not a Sequence or the index is out of range.
func (n Node) Index(i int) Node {
	if n.kind != Sequence {
		panic(fmt.Sprintf("node: Index on %s node", n.kind))
	}
	return n.seq[i]
}

// Get returns the value under a mapping key. The second result is false
// when the key is absent or the node is not a Mapping.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != Mapping {
		return Node{}, false
	}
	v, ok := n.mapping[key]
	return v, ok
}

// Keys returns the keys of a Mapping node in sorted order, nil otherwise.
// Construction does not depend on key order; sorting keeps traversal and
// diagnostics deterministic.
func (n Node) Keys() []string {
	if n.kind != Mapping {
		return nil
	}
	keys := make([]string, 0, len(n.mapping))
	for k := range n.mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsTyped reports whether the node is a mapping carrying the reserved
// "type" key, i.e. destined to become a constructed object.
func (n Node) IsTyped() bool {
	if n.kind != Mapping {
		return false
	}
	_, ok := n.mapping[KeyType]
	return ok
}

func (n Node) String() string {
	switch n.kind {
	case Null:
		return "null"
	case Bool, Number:
		return fmt.Sprintf("%v", n.scalar)
	case String:
		return fmt.Sprintf("%q", n.scalar)
	case Sequence:
		return fmt.Sprintf("sequence(len=%d)", len(n.seq))
	case Mapping:
		return fmt.Sprintf("mapping(len=%d)", len(n.mapping))
	}
	return "<invalid>"
}
