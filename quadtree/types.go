package quadtree

import "math"

// Capacity is the number of points a node holds inline before it
// subdivides.
const Capacity = 4

// Point is a 2-D point in the indexed space.
type Point struct {
	X, Y float64
}

// AABB is an axis-aligned bounding box described by its centre and
// half-dimension (half the side length of the square it bounds).
type AABB struct {
	Center        Point
	HalfDimension float64
}

// ContainsPoint reports whether p lies within the box, inclusive of its
// boundary on every side.
func (a AABB) ContainsPoint(p Point) bool {
	return math.Abs(a.Center.X-p.X) <= a.HalfDimension &&
		math.Abs(a.Center.Y-p.Y) <= a.HalfDimension
}

// Intersects reports whether a and o overlap, including when they merely
// touch at a shared edge or corner.
func (a AABB) Intersects(o AABB) bool {
	return math.Abs(a.Center.X-o.Center.X) <= a.HalfDimension+o.HalfDimension &&
		math.Abs(a.Center.Y-o.Center.Y) <= a.HalfDimension+o.HalfDimension
}

// QuadTree is a point quadtree bounded by a fixed root AABB.
//
// The zero value is not usable; construct one with New.
type QuadTree struct {
	boundary AABB
	capacity int
	points   []Point
	divided  bool

	nw, ne, sw, se *QuadTree
}

// Option configures a QuadTree at construction time.
type Option func(q *QuadTree)

// WithCapacity overrides the default per-node capacity (Capacity) before
// a node subdivides. Every child created by a later subdivision inherits
// the same capacity.
func WithCapacity(n int) Option {
	return func(q *QuadTree) {
		if n > 0 {
			q.capacity = n
		}
	}
}

// New returns an empty quadtree bounded by boundary.
func New(boundary AABB, opts ...Option) *QuadTree {
	q := &QuadTree{boundary: boundary, capacity: Capacity}
	for _, opt := range opts {
		opt(q)
	}

	return q
}
