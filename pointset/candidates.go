package pointset

import (
	"slices"

	"github.com/tidwall/tinyqueue"
)

// candidate is a point paired with its distance to the search target.
type candidate struct {
	dist  float64
	point Point
}

// Less orders candidates farthest-first, so the queue head is the worst
// candidate.
func (c *candidate) Less(other tinyqueue.Item) bool {
	return c.dist > other.(*candidate).dist
}

// candidates is a bounded set of the k best nearest-neighbour candidates
// seen so far.
type candidates struct {
	k       int
	queue   *tinyqueue.Queue
	offered int
}

func newCandidates(k int) *candidates {
	return &candidates{
		k:     k,
		queue: tinyqueue.New(nil),
	}
}

// Len returns the number of candidates held.
func (c *candidates) Len() int {
	return c.queue.Len()
}

// Full reports whether k candidates are held.
func (c *candidates) Full() bool {
	return c.queue.Len() >= c.k
}

// Worst returns the distance of the farthest candidate held. It must only be
// called on a non-empty set.
func (c *candidates) Worst() float64 {
	return c.queue.Peek().(*candidate).dist
}

// Admits reports whether a subtree at lower-bound distance dist may still
// contain a useful candidate.
func (c *candidates) Admits(dist float64) bool {
	return !c.Full() || dist <= c.Worst()
}

// Offer adds p at distance dist if there is room, or if it is strictly
// closer than the worst candidate, which is then evicted.
func (c *candidates) Offer(dist float64, p Point) {
	c.offered++

	if c.k <= 0 {
		return
	}

	if c.Full() && dist >= c.Worst() {
		return
	}

	c.queue.Push(&candidate{dist: dist, point: p})

	if c.queue.Len() > c.k {
		c.queue.Pop()
	}
}

// Drain empties the set and returns its points nearest-first.
func (c *candidates) Drain() []Point {
	points := make([]Point, 0, c.queue.Len())

	for c.queue.Len() > 0 {
		points = append(points, c.queue.Pop().(*candidate).point)
	}

	slices.Reverse(points)

	return points
}
