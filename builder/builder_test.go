package builder_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reifylab/reify/builder"
	"github.com/reifylab/reify/internal/testutil"
	"github.com/reifylab/reify/node"
	"github.com/reifylab/reify/registry"
)

type searchArgs struct {
	Depth int
}

type fakeSearch struct {
	depth int
}

type optimizerArgs struct {
	Seed   int
	Rate   float64
	Search *fakeSearch
	Tags   []any
}

type fakeOptimizer struct {
	args optimizerArgs
}

// testRegistry registers a small component set under the "optimizers" and
// "searches" packages.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()
	mods := []registry.Module{
		&testutil.SimpleModule{
			Package: "searches",
			Name:    "TreeSearch",
			Component: &registry.Component{
				NewArgs: func() any { return new(searchArgs) },
				Construct: func(ctx context.Context, a *searchArgs) (any, error) {
					if a.Depth < 0 {
						return nil, fmt.Errorf("depth must not be negative, got %d", a.Depth)
					}
					return &fakeSearch{depth: a.Depth}, nil
				},
			},
		},
		&testutil.SimpleModule{
			Package: "optimizers",
			Name:    "FakeOptimizer",
			Component: &registry.Component{
				NewArgs: func() any { return new(optimizerArgs) },
				Construct: func(ctx context.Context, a *optimizerArgs) (any, error) {
					return &fakeOptimizer{args: *a}, nil
				},
			},
		},
		&testutil.SimpleModule{
			Package:   "envs",
			Name:      "EmptyEnv",
			Component: testutil.NoArgComponent(&struct{ name string }{name: "empty"}),
		},
	}
	for _, m := range mods {
		m.Register(reg)
	}
	return reg
}

func resolve(t *testing.T, raw any) (any, error) {
	t.Helper()
	n, err := node.FromGo(raw)
	require.NoError(t, err)
	return builder.New(testRegistry(t)).Resolve(context.Background(), n)
}

func TestResolve_ScalarIdentity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bool", true, true},
		{"int", 42, int64(42)},
		{"float", 0.5, 0.5},
		{"string", "x", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolve(t, tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_SequencePreservesLengthAndOrder(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, []any{"a", 2, []any{true}})
	require.NoError(t, err)

	seq, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, seq, 3)
	require.Equal(t, "a", seq[0])
	require.Equal(t, int64(2), seq[1])
	require.Equal(t, []any{true}, seq[2])
}

func TestResolve_PlainMappingKeepsKeySet(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, map[string]any{
		"name":  "experiment-1",
		"steps": []any{1, 2},
		"meta":  map[string]any{"owner": "lab"},
	})
	require.NoError(t, err)

	m, ok := got.(map[string]any)
	require.True(t, ok)
	require.Len(t, m, 3)
	require.Equal(t, "experiment-1", m["name"])
	require.Equal(t, []any{int64(1), int64(2)}, m["steps"])
	require.Equal(t, map[string]any{"owner": "lab"}, m["meta"])
}

func TestResolve_TypedNodeConstructsObject(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, map[string]any{
		"type": "optimizers.FakeOptimizer",
		"seed": 7,
		"rate": 0.1,
		"tags": []any{"fast"},
	})
	require.NoError(t, err)

	opt, ok := got.(*fakeOptimizer)
	require.True(t, ok)
	require.Equal(t, 7, opt.args.Seed)
	require.Equal(t, 0.1, opt.args.Rate)
	require.Equal(t, []any{"fast"}, opt.args.Tags)
}

func TestResolve_ExplicitPackageKey(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, map[string]any{
		"type":    "FakeOptimizer",
		"package": "optimizers",
		"seed":    3,
	})
	require.NoError(t, err)

	opt, ok := got.(*fakeOptimizer)
	require.True(t, ok)
	require.Equal(t, 3, opt.args.Seed)
}

func TestResolve_NestedTypedNodeIsConstructedBottomUp(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, map[string]any{
		"type": "optimizers.FakeOptimizer",
		"search": map[string]any{
			"type":  "searches.TreeSearch",
			"depth": 4,
		},
	})
	require.NoError(t, err)

	// The parent constructor must receive a live *fakeSearch, not the raw
	// sub-mapping.
	opt, ok := got.(*fakeOptimizer)
	require.True(t, ok)
	require.NotNil(t, opt.args.Search)
	require.Equal(t, 4, opt.args.Search.depth)
}

func TestResolve_TypedNodeInsideContainers(t *testing.T) {
	t.Parallel()

	got, err := resolve(t, map[string]any{
		"candidates": []any{
			map[string]any{"type": "searches.TreeSearch", "depth": 1},
			map[string]any{"type": "searches.TreeSearch", "depth": 2},
		},
	})
	require.NoError(t, err)

	m := got.(map[string]any)
	seq := m["candidates"].([]any)
	require.Len(t, seq, 2)
	require.Equal(t, 1, seq[0].(*fakeSearch).depth)
	require.Equal(t, 2, seq[1].(*fakeSearch).depth)
}

func TestResolve_UnexpectedArgument(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]any{
		"type":  "searches.TreeSearch",
		"debth": 4, // misspelled
	})
	require.Error(t, err)

	var consErr *builder.ConstructionError
	require.True(t, errors.As(err, &consErr))
	require.Equal(t, "searches.TreeSearch", consErr.Type)
	require.Contains(t, err.Error(), "searches.TreeSearch")
	require.Contains(t, err.Error(), "debth")
}

func TestResolve_ConstructorRejection(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]any{
		"type":  "searches.TreeSearch",
		"depth": -1,
	})
	require.Error(t, err)

	var consErr *builder.ConstructionError
	require.True(t, errors.As(err, &consErr))
	require.Equal(t, map[string]any{"depth": int64(-1)}, consErr.Args)
	require.Contains(t, err.Error(), "depth must not be negative")
}

func TestResolve_ArgumentsForNoArgComponent(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]any{
		"type":  "envs.EmptyEnv",
		"extra": 1,
	})
	require.Error(t, err)

	var consErr *builder.ConstructionError
	require.True(t, errors.As(err, &consErr))
	require.Contains(t, err.Error(), "accepts no arguments")
}

func TestResolve_UnknownComponent(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]any{"type": "optimizers.Missing"})
	require.Error(t, err)

	var resErr *registry.ResolutionError
	require.True(t, errors.As(err, &resErr))
	require.Contains(t, err.Error(), "Missing")
	require.Contains(t, err.Error(), "optimizers")
}

func TestResolve_BareTypeWithoutPackage(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]any{"type": "FakeOptimizer"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no package qualifier")
}

func TestResolve_NonStringTypeValue(t *testing.T) {
	t.Parallel()

	_, err := resolve(t, map[string]any{"type": 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"type" must be a string`)
}

func TestResolve_ReturnsFreshContainers(t *testing.T) {
	t.Parallel()

	n, err := node.FromGo(map[string]any{"a": []any{1}})
	require.NoError(t, err)

	b := builder.New(testRegistry(t))
	first, err := b.Resolve(context.Background(), n)
	require.NoError(t, err)
	second, err := b.Resolve(context.Background(), n)
	require.NoError(t, err)

	require.Equal(t, first, second)
	first.(map[string]any)["a"] = "mutated"
	require.NotEqual(t, first, second)
}
