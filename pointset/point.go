package pointset

import (
	"math"
	"strconv"
)

// DefaultTolerance is the machine epsilon for float64.
const DefaultTolerance Tolerance = 0x1p-52

// Point is an immutable 2-D coordinate.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// axis returns the X coordinate when x is set, and the Y coordinate otherwise.
func (p Point) axis(x bool) float64 {
	if x {
		return p.X
	}

	return p.Y
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " +
		strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Tolerance is the absolute difference below which two coordinates are
// considered equal.
//
// A tree-backed set routes points by exact coordinate comparison, so a point
// within tolerance of a stored one may still be stored separately if an
// ancestor's split value falls between them.
type Tolerance float64

// Equal reports whether both coordinates of a and b differ by less than the
// tolerance.
func (t Tolerance) Equal(a, b Point) bool {
	return t.same(a.X, b.X) && t.same(a.Y, b.Y)
}

// Less orders points lexicographically on (X, Y). Coordinates within the
// tolerance compare equal, so Less agrees with [Tolerance.Equal].
func (t Tolerance) Less(a, b Point) bool {
	if !t.same(a.X, b.X) {
		return a.X < b.X
	}

	if !t.same(a.Y, b.Y) {
		return a.Y < b.Y
	}

	return false
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b
// under [Tolerance.Less]. It is suitable for [slices.SortFunc].
func (t Tolerance) Compare(a, b Point) int {
	switch {
	case t.Less(a, b):
		return -1
	case t.Less(b, a):
		return 1
	default:
		return 0
	}
}

// same reports whether a and b are equal within t. Identical values are
// always the same, so a zero tolerance means exact equality.
func (t Tolerance) same(a, b float64) bool {
	return a == b || math.Abs(a-b) < float64(t)
}

// finite reports whether neither coordinate of p is NaN or infinite.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
