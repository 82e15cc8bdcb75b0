package pointset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/pointset/pointset"
)

func TestPoint_Distance(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 5.0, pointset.Point{X: 0, Y: 0}.Distance(pointset.Point{X: 3, Y: 4}), 1e-12)
	require.Zero(t, pointset.Point{X: 1, Y: 1}.Distance(pointset.Point{X: 1, Y: 1}))
}

func TestPoint_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "(0.7, 0.2)", pointset.Point{X: 0.7, Y: 0.2}.String())
	require.Equal(t, "(-1, 3.5)", pointset.Point{X: -1, Y: 3.5}.String())
}

func TestTolerance_Equal(t *testing.T) {
	t.Parallel()

	p := pointset.Point{X: 1, Y: 1}

	t.Run("Default", func(t *testing.T) {
		t.Parallel()

		require.True(t, pointset.DefaultTolerance.Equal(p, p))
		require.False(t, pointset.DefaultTolerance.Equal(p, pointset.Point{X: 1, Y: 1.001}))
		require.False(t, pointset.DefaultTolerance.Equal(p, pointset.Point{X: 1 + 1e-12, Y: 1}))
	})

	t.Run("Zero", func(t *testing.T) {
		t.Parallel()

		require.True(t, pointset.Tolerance(0).Equal(p, p))
		require.False(t, pointset.Tolerance(0).Equal(p, pointset.Point{X: 1 + 1e-15, Y: 1}))
		require.False(t, pointset.Tolerance(0).Less(p, p))
	})

	t.Run("Wide", func(t *testing.T) {
		t.Parallel()

		tol := pointset.Tolerance(0.01)

		require.True(t, tol.Equal(p, pointset.Point{X: 1.005, Y: 0.995}))
		require.False(t, tol.Equal(p, pointset.Point{X: 1.02, Y: 1}))
	})
}

func TestTolerance_Less(t *testing.T) {
	t.Parallel()

	tol := pointset.Tolerance(0.01)

	a := pointset.Point{X: 1, Y: 5}
	b := pointset.Point{X: 2, Y: 0}
	c := pointset.Point{X: 1.005, Y: 6}

	require.True(t, tol.Less(a, b))
	require.False(t, tol.Less(b, a))

	// X coordinates within tolerance fall through to Y.
	require.True(t, tol.Less(a, c))
	require.False(t, tol.Less(c, a))

	// Equal points are not less than each other.
	near := pointset.Point{X: 1.001, Y: 5.001}
	require.False(t, tol.Less(a, near))
	require.False(t, tol.Less(near, a))
}
