package pointset

// Node reexports the internal [node] type.
type Node = node

// Root returns the root node of a tree-backed set, or nil for other sets.
func Root(s Set) *Node {
	t, ok := s.(*tree)
	if !ok {
		return nil
	}

	return t.root
}

// Depth reexports the internal [depth] method.
func (n *Node) Depth() int {
	return n.depth()
}

// Region returns the bounding rectangle of the subtree rooted at n.
func (n *Node) Region() Rect {
	return n.region
}

// Children returns the child nodes of n.
func (n *Node) Children() (left, right *Node) {
	return n.left, n.right
}

// SplitX reports whether n partitions its subtree on X.
func (n *Node) SplitX() bool {
	return n.splitX
}

// Value returns the point stored at n.
func (n *Node) Value() Point {
	return n.value
}

// RangeVisits runs a range query on a tree-backed set and returns the points
// found and the number of nodes visited.
func RangeVisits(s Set, r Rect) ([]Point, int) {
	search := rectSearch{rect: r}
	search.walk(s.(*tree).root)

	return search.points, search.visited
}

// NearestVisits runs a k-nearest query on a tree-backed set and returns the
// points found and the number of nodes visited.
func NearestVisits(s Set, p Point, k int) ([]Point, int) {
	cand := newCandidates(k)
	s.(*tree).root.nearest(p, cand)

	return cand.Drain(), cand.offered
}

// Candidates reexports the internal [candidates] type.
type Candidates = candidates

// NewCandidates reexports [newCandidates].
func NewCandidates(k int) *Candidates {
	return newCandidates(k)
}
