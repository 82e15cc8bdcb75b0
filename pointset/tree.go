package pointset

import "io"

// tree is a [Set] backed by a partition tree.
//
// The shape of the tree depends only on insertion order; it is never
// rebalanced.
type tree struct {
	root      *node
	size      int
	tolerance Tolerance
}

// NewTree creates an empty set backed by a partition tree.
func NewTree(opts ...Option) Set {
	o := newOptions(opts)

	return &tree{
		tolerance: o.tolerance,
	}
}

// Ensure that tree implements the [Set] interface.
var _ Set = &tree{}

// Insert adds p to the tree, unless an equal point is already present or p
// has a NaN or infinite coordinate.
func (t *tree) Insert(p Point) {
	if !p.finite() || t.Contains(p) {
		return
	}

	t.size++

	if t.root == nil {
		t.root = newNode(p, true)

		return
	}

	t.root.insert(p)
}

// Contains reports whether a point equal to p is in the tree.
func (t *tree) Contains(p Point) bool {
	if t.root == nil {
		return false
	}

	return t.root.contains(p, t.tolerance)
}

// Range returns a cursor over the points inside r in pre-order.
func (t *tree) Range(r Rect) *Cursor {
	if t.root == nil {
		return newCursor(nil)
	}

	search := rectSearch{rect: r}
	search.walk(t.root)

	return newCursor(search.points)
}

// Nearest returns the point closest to p.
func (t *tree) Nearest(p Point) (Point, bool) {
	if t.root == nil {
		return Point{}, false
	}

	cand := newCandidates(1)
	t.root.nearest(p, cand)

	return cand.Drain()[0], true
}

// NearestK returns a cursor over the k points closest to p, nearest first.
func (t *tree) NearestK(p Point, k int) *Cursor {
	if k <= 0 || t.root == nil {
		return newCursor(nil)
	}

	cand := newCandidates(k)
	t.root.nearest(p, cand)

	return newCursor(cand.Drain())
}

// Len returns the number of distinct points in the tree.
func (t *tree) Len() int {
	return t.size
}

// Empty reports whether the tree has no points.
func (t *tree) Empty() bool {
	return t.root == nil
}

// Cursor returns a cursor over every point: left subtree, right subtree,
// then the node itself.
func (t *tree) Cursor() *Cursor {
	if t.root == nil {
		return newCursor(nil)
	}

	return newCursor(t.root.collectAll(make([]Point, 0, t.size)))
}

// Clone returns a deep copy of the tree sharing no nodes with t.
func (t *tree) Clone() Set {
	return &tree{
		root:      t.root.clone(),
		size:      t.size,
		tolerance: t.tolerance,
	}
}

// WriteTo writes every point in enumeration order, one per line.
func (t *tree) WriteTo(w io.Writer) (int64, error) {
	return writePoints(w, t.Cursor())
}
