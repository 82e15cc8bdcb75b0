package pointset

import "iter"

// Cursor is a single-pass forward view over the results of one query.
//
// A cursor owns its results; advancing it never affects the set that
// produced it. An exhausted (or nil) cursor marks the end of the results.
type Cursor struct {
	points []Point
}

// newCursor creates a cursor that yields points in order.
func newCursor(points []Point) *Cursor {
	return &Cursor{points: points}
}

// Valid reports whether the cursor has a current point.
func (c *Cursor) Valid() bool {
	return c != nil && len(c.points) > 0
}

// Point returns the current point. It panics if the cursor is exhausted.
func (c *Cursor) Point() Point {
	if !c.Valid() {
		panic("pointset: Point called on exhausted cursor")
	}

	return c.points[0]
}

// Next advances the cursor. Advancing an exhausted cursor is a no-op.
func (c *Cursor) Next() {
	if c.Valid() {
		c.points = c.points[1:]
	}
}

// Len returns the number of points not yet consumed.
func (c *Cursor) Len() int {
	if c == nil {
		return 0
	}

	return len(c.points)
}

// Equal reports whether both cursors are exhausted, or both have current
// points that are equal within [DefaultTolerance].
//
// It is intended for end detection, not structural comparison.
func (c *Cursor) Equal(other *Cursor) bool {
	if !c.Valid() || !other.Valid() {
		return c.Valid() == other.Valid()
	}

	return DefaultTolerance.Equal(c.Point(), other.Point())
}

// All returns an iterator that drains the cursor.
func (c *Cursor) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for ; c.Valid(); c.Next() {
			if !yield(c.Point()) {
				return
			}
		}
	}
}
