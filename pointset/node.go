package pointset

// node is a node of the partition tree.
//
// region is the minimal rectangle covering value and every point stored
// below this node. The split axis alternates by depth, starting with X at the
// root.
type node struct {
	value  Point
	left   *node
	right  *node
	splitX bool
	region Rect
}

// newNode creates a leaf holding p.
func newNode(p Point, splitX bool) *node {
	return &node{
		value:  p,
		splitX: splitX,
		region: PointRect(p),
	}
}

// goesLeft reports whether p belongs in the left subtree of n. The comparison
// is exact: a coordinate equal to the split value goes right.
func (n *node) goesLeft(p Point) bool {
	return p.axis(n.splitX) < n.value.axis(n.splitX)
}

// insert adds p below n, widening every region on the way down.
func (n *node) insert(p Point) {
	for cur := n; ; {
		cur.region = cur.region.Expand(p)

		next := &cur.right
		if cur.goesLeft(p) {
			next = &cur.left
		}

		if *next == nil {
			*next = newNode(p, !cur.splitX)

			return
		}

		cur = *next
	}
}

// contains reports whether a point equal to p within tol is stored at or
// below n, following the same routing as insert.
func (n *node) contains(p Point, tol Tolerance) bool {
	for cur := n; cur != nil; {
		if tol.Equal(p, cur.value) {
			return true
		}

		if cur.goesLeft(p) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return false
}

// rectSearch collects the points inside rect.
type rectSearch struct {
	rect    Rect
	points  []Point
	visited int
}

// walk appends, in pre-order, every point below n that lies in the search
// rectangle. Subtrees whose region does not intersect it are skipped.
func (s *rectSearch) walk(n *node) {
	s.visited++

	if s.rect.Contains(n.value) {
		s.points = append(s.points, n.value)
	}

	if n.left != nil && n.left.region.Intersects(s.rect) {
		s.walk(n.left)
	}

	if n.right != nil && n.right.region.Intersects(s.rect) {
		s.walk(n.right)
	}
}

// collectAll appends every point below n: left subtree, right subtree, then
// n itself.
func (n *node) collectAll(out []Point) []Point {
	if n.left != nil {
		out = n.left.collectAll(out)
	}

	if n.right != nil {
		out = n.right.collectAll(out)
	}

	return append(out, n.value)
}

// nearest offers n and its descendants to cand, skipping subtrees whose region
// is farther than the worst candidate once cand is full.
func (n *node) nearest(target Point, cand *candidates) {
	cand.Offer(target.Distance(n.value), n.value)

	switch {
	case n.left != nil && n.right != nil:
		near, far := n.left, n.right
		nearDist, farDist := near.region.Distance(target), far.region.Distance(target)

		if farDist < nearDist {
			near, far = far, near
		}

		near.nearest(target, cand)

		// The worst candidate may have improved while visiting near, so the
		// bound for far is checked only now.
		if cand.Admits(farDist) {
			far.nearest(target, cand)
		}
	case n.left != nil:
		if cand.Admits(n.left.region.Distance(target)) {
			n.left.nearest(target, cand)
		}
	case n.right != nil:
		if cand.Admits(n.right.region.Distance(target)) {
			n.right.nearest(target, cand)
		}
	}
}

// clone returns a deep copy of the subtree rooted at n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}

	return &node{
		value:  n.value,
		left:   n.left.clone(),
		right:  n.right.clone(),
		splitX: n.splitX,
		region: n.region,
	}
}

// depth returns the number of levels in the subtree rooted at n.
func (n *node) depth() int {
	if n == nil {
		return 0
	}

	return 1 + max(n.left.depth(), n.right.depth())
}
