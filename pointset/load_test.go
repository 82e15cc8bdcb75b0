package pointset_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/pointset/pointset"
)

func TestReadFrom(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		pairs int
		want  []pointset.Point
	}{
		"Pairs": {
			input: "0.7 0.2\n0.5 0.4\n",
			pairs: 2,
			want:  []pointset.Point{{X: 0.7, Y: 0.2}, {X: 0.5, Y: 0.4}},
		},
		"AnyWhitespace": {
			input: "1\t2 3\n\n4",
			pairs: 2,
			want:  []pointset.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		"TrailingHalfPair": {
			input: "1 2 3",
			pairs: 1,
			want:  []pointset.Point{{X: 1, Y: 2}},
		},
		"StopsAtGarbage": {
			input: "1 2 3 x 5 6",
			pairs: 1,
			want:  []pointset.Point{{X: 1, Y: 2}},
		},
		"StopsAtNaN": {
			input: "0 0 nan 1 0.5 0.5",
			pairs: 1,
			want:  []pointset.Point{{X: 0, Y: 0}},
		},
		"StopsAtInfinity": {
			input: "0 0 1 -Inf 0.5 0.5",
			pairs: 1,
			want:  []pointset.Point{{X: 0, Y: 0}},
		},
		"Duplicates": {
			input: "1 2 1 2",
			pairs: 2,
			want:  []pointset.Point{{X: 1, Y: 2}},
		},
		"Empty": {
			input: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := pointset.NewTree()

			pairs, err := pointset.ReadFrom(s, strings.NewReader(tc.input))

			require.NoError(t, err)
			require.Equal(t, tc.pairs, pairs)
			require.ElementsMatch(t, tc.want, collect(s.Cursor()))
		})
	}
}

func TestReadFrom_readerError(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken")

	s := pointset.NewOrdered()

	_, err := pointset.ReadFrom(s, iotest.ErrReader(errBroken))

	require.ErrorIs(t, err, errBroken)
	require.True(t, s.Empty())
}

func TestOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("0.7 0.2 0.5 0.4 0.2 0.3 0.4 0.7 0.9 0.6 0.1"), 0o600))

	t.Run("Tree", func(t *testing.T) {
		t.Parallel()

		s := pointset.Open(path)

		require.Equal(t, 5, s.Len())
		require.ElementsMatch(t, samplePoints, collect(s.Cursor()))
	})

	t.Run("Ordered", func(t *testing.T) {
		t.Parallel()

		s := pointset.OpenOrdered(path)

		require.Equal(t, 5, s.Len())
		require.ElementsMatch(t, samplePoints, collect(s.Cursor()))
	})

	t.Run("Missing", func(t *testing.T) {
		t.Parallel()

		s := pointset.Open(filepath.Join(t.TempDir(), "missing.txt"))

		require.True(t, s.Empty())
		require.Zero(t, s.Len())
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3 4 5"), 0o600))

	s := pointset.NewOrdered()

	pairs, err := pointset.Load(s, path)
	require.NoError(t, err)
	require.Equal(t, 2, pairs)
	require.Equal(t, 2, s.Len())

	pairs, err = pointset.Load(s, filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Zero(t, pairs)
	require.Equal(t, 2, s.Len())
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	s := newSample(pointset.NewOrdered)

	var buf bytes.Buffer

	n, err := s.WriteTo(&buf)

	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, "(0.2, 0.3)\n(0.4, 0.7)\n(0.5, 0.4)\n(0.7, 0.2)\n(0.9, 0.6)\n", buf.String())
}
