package pointset

import (
	"io"

	"github.com/google/btree"
)

// btreeDegree is the degree of the B-tree backing an ordered set.
const btreeDegree = 32

// ordered is a [Set] that stores points in (X, Y) order.
//
// Queries are answered by scanning: Range walks the X interval of the query
// rectangle and Nearest considers every point. It exists to check the
// partition tree, and as a fallback when insertion order would make the tree
// degenerate.
type ordered struct {
	points    *btree.BTreeG[Point]
	tolerance Tolerance
}

// NewOrdered creates an empty ordered set.
func NewOrdered(opts ...Option) Set {
	o := newOptions(opts)

	return &ordered{
		points:    btree.NewG(btreeDegree, o.tolerance.Less),
		tolerance: o.tolerance,
	}
}

var _ Set = &ordered{}

// Insert adds p unless an equal point is already present or p has a NaN or
// infinite coordinate.
func (o *ordered) Insert(p Point) {
	if !p.finite() || o.points.Has(p) {
		return
	}

	o.points.ReplaceOrInsert(p)
}

// Contains reports whether a point equal to p is in the set.
func (o *ordered) Contains(p Point) bool {
	return o.points.Has(p)
}

// Range returns a cursor over the points inside r in (X, Y) order.
func (o *ordered) Range(r Rect) *Cursor {
	var points []Point

	o.points.AscendGreaterOrEqual(r.Low, func(p Point) bool {
		if o.tolerance.Less(r.High, p) {
			return false
		}

		if r.Contains(p) {
			points = append(points, p)
		}

		return true
	})

	return newCursor(points)
}

// Nearest returns the point closest to p.
func (o *ordered) Nearest(p Point) (Point, bool) {
	if o.points.Len() == 0 {
		return Point{}, false
	}

	return o.nearest(p, 1)[0], true
}

// NearestK returns a cursor over the k points closest to p, nearest first.
func (o *ordered) NearestK(p Point, k int) *Cursor {
	if k <= 0 {
		return newCursor(nil)
	}

	return newCursor(o.nearest(p, k))
}

// nearest scans every point, keeping the k closest.
func (o *ordered) nearest(target Point, k int) []Point {
	cand := newCandidates(k)

	o.points.Ascend(func(p Point) bool {
		cand.Offer(target.Distance(p), p)

		return true
	})

	return cand.Drain()
}

// Len returns the number of points in the set.
func (o *ordered) Len() int {
	return o.points.Len()
}

// Empty reports whether the set has no points.
func (o *ordered) Empty() bool {
	return o.points.Len() == 0
}

// Cursor returns a cursor over every point in (X, Y) order.
func (o *ordered) Cursor() *Cursor {
	points := make([]Point, 0, o.points.Len())

	o.points.Ascend(func(p Point) bool {
		points = append(points, p)

		return true
	})

	return newCursor(points)
}

// Clone returns a copy of the set. The underlying B-tree is copied lazily, so
// later writes to either set are not seen by the other.
func (o *ordered) Clone() Set {
	return &ordered{
		points:    o.points.Clone(),
		tolerance: o.tolerance,
	}
}

// WriteTo writes every point in (X, Y) order, one per line.
func (o *ordered) WriteTo(w io.Writer) (int64, error) {
	return writePoints(w, o.Cursor())
}
