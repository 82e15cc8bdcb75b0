// Package pointset implements sets of 2-D points supporting membership,
// rectangle range and k-nearest-neighbour queries.
//
// Two implementations share the [Set] contract: [NewTree] partitions the
// plane with a binary tree alternately split on X and Y, and [NewOrdered]
// keeps points in a B-tree in (X, Y) order and answers queries by scanning.
// The ordered set is mainly a reference for checking the tree.
//
// Sets are not safe for concurrent use; callers must serialise mutation
// against all other access.
package pointset

import "io"

// Set is a set of points.
type Set interface {
	// Insert adds p. Inserting a point equal to one already in the set, within
	// the set's tolerance, does nothing. Points with a NaN or infinite
	// coordinate are ignored.
	Insert(p Point)

	// Contains reports whether a point equal to p is in the set.
	Contains(p Point) bool

	// Range returns a cursor over the points inside r, boundary included.
	Range(r Rect) *Cursor

	// Nearest returns the point closest to p. It returns false if the set is
	// empty. When several points are equally close, which one is returned is
	// unspecified.
	Nearest(p Point) (Point, bool)

	// NearestK returns a cursor over the k points closest to p, nearest first.
	// Fewer points are returned when the set holds fewer than k.
	NearestK(p Point, k int) *Cursor

	// Len returns the number of points in the set.
	Len() int

	// Empty reports whether the set has no points.
	Empty() bool

	// Cursor returns a cursor over every point in the set.
	Cursor() *Cursor

	// Clone returns an independent copy of the set.
	Clone() Set

	// WriteTo writes every point in the set, one per line.
	WriteTo(w io.Writer) (int64, error)
}

// options configures a [Set].
type options struct {
	tolerance Tolerance
}

// Option configures a [Set] created by [NewTree] or [NewOrdered].
type Option func(*options)

// WithTolerance sets the tolerance used to decide whether two points are
// equal. It defaults to [DefaultTolerance].
func WithTolerance(tolerance Tolerance) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

func newOptions(opts []Option) options {
	o := options{
		tolerance: DefaultTolerance,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
