package pointset

import "math"

// Rect is an axis-aligned rectangle with inclusive bounds.
//
// Low must not exceed High on either axis; Rect does not enforce this.
type Rect struct {
	Low  Point
	High Point
}

// PointRect returns the degenerate rectangle covering only p.
func PointRect(p Point) Rect {
	return Rect{Low: p, High: p}
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Point) bool {
	return r.Low.X <= p.X && p.X <= r.High.X &&
		r.Low.Y <= p.Y && p.Y <= r.High.Y
}

// Intersects reports whether r and other share at least one point.
func (r Rect) Intersects(other Rect) bool {
	return r.Low.X <= other.High.X && other.Low.X <= r.High.X &&
		r.Low.Y <= other.High.Y && other.Low.Y <= r.High.Y
}

// Distance returns the Euclidean distance from p to the closest point of r,
// which is zero when p is inside r.
func (r Rect) Distance(p Point) float64 {
	dx := max(0, r.Low.X-p.X, p.X-r.High.X)
	dy := max(0, r.Low.Y-p.Y, p.Y-r.High.Y)

	return math.Hypot(dx, dy)
}

// Expand returns the smallest rectangle covering both r and p.
func (r Rect) Expand(p Point) Rect {
	return Rect{
		Low:  Point{X: min(r.Low.X, p.X), Y: min(r.Low.Y, p.Y)},
		High: Point{X: max(r.High.X, p.X), Y: max(r.High.Y, p.Y)},
	}
}
