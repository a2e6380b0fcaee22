package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func noopComponent() *Component {
	return &Component{
		Construct: func(ctx context.Context) (any, error) { return nil, nil },
	}
}

func TestParseTypeReference_DottedPath(t *testing.T) {
	t.Parallel()

	ref, err := ParseTypeReference("pkg.sub.ClassName", "")
	require.NoError(t, err)
	require.Equal(t, "pkg.sub", ref.Package)
	require.Equal(t, "ClassName", ref.Name)
	require.Equal(t, "pkg.sub.ClassName", ref.String())
}

func TestParseTypeReference_ExplicitPackage(t *testing.T) {
	t.Parallel()

	// An explicit package is taken verbatim; the type value is never split.
	ref, err := ParseTypeReference("ClassName", "pkg.sub")
	require.NoError(t, err)
	require.Equal(t, "pkg.sub", ref.Package)
	require.Equal(t, "ClassName", ref.Name)

	ref, err = ParseTypeReference("Outer.Inner", "pkg")
	require.NoError(t, err)
	require.Equal(t, "pkg", ref.Package)
	require.Equal(t, "Outer.Inner", ref.Name)
}

func TestParseTypeReference_BareNameFails(t *testing.T) {
	t.Parallel()

	_, err := ParseTypeReference("ClassName", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ClassName")
	require.Contains(t, err.Error(), "package")
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	t.Parallel()

	r := New()
	c := noopComponent()
	r.Register("optimizers", "CMAESOptimizer", c)

	got, ref, err := r.Resolve("optimizers.CMAESOptimizer", "")
	require.NoError(t, err)
	require.Same(t, c, got)
	require.Equal(t, TypeReference{Package: "optimizers", Name: "CMAESOptimizer"}, ref)

	got, _, err = r.Resolve("CMAESOptimizer", "optimizers")
	require.NoError(t, err)
	require.Same(t, c, got)
}

func TestRegistry_UnknownPackage(t *testing.T) {
	t.Parallel()

	r := New()
	_, _, err := r.Resolve("optimizers.CMAESOptimizer", "")
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	require.Equal(t, "optimizers", resErr.Ref.Package)
	require.Equal(t, "CMAESOptimizer", resErr.Ref.Name)
	require.Contains(t, err.Error(), "CMAESOptimizer")
	require.Contains(t, err.Error(), "optimizers")
}

func TestRegistry_UnknownName(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("optimizers", "RandomOptimizer", noopComponent())

	_, _, err := r.Resolve("optimizers.CMAESOptimizer", "")
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	require.True(t, resErr.PackageKnown)
	require.Contains(t, err.Error(), "'CMAESOptimizer' does not exist in package 'optimizers'")
	require.Contains(t, err.Error(), "RandomOptimizer")
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("pkg", "Thing", noopComponent())
	require.Panics(t, func() {
		r.Register("pkg", "Thing", noopComponent())
	})
}

func TestRegistry_MissingConstructorPanics(t *testing.T) {
	t.Parallel()

	r := New()
	require.Panics(t, func() {
		r.Register("pkg", "Thing", &Component{})
	})
}

func TestRegistry_PackagesAndNames(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("b", "Two", noopComponent())
	r.Register("a", "One", noopComponent())
	r.Register("a", "Three", noopComponent())

	require.Equal(t, []string{"a", "b"}, r.Packages())
	require.Equal(t, []string{"One", "Three"}, r.Names("a"))
	require.Empty(t, r.Names("missing"))
}
