package quadtree

// Insert stores p, returning false iff p lies outside the root's
// boundary. Duplicate points are permitted.
//
// Complexity: O(log n) expected, O(n) worst case for a degenerate tree.
func (q *QuadTree) Insert(p Point) bool {
	if !q.boundary.ContainsPoint(p) {
		return false
	}

	if !q.divided && len(q.points) < q.capacity {
		q.points = append(q.points, p)

		return true
	}

	if !q.divided {
		q.subdivide()
	}

	for _, child := range [...]*QuadTree{q.nw, q.ne, q.sw, q.se} {
		if child.Insert(p) {
			return true
		}
	}

	panic("quadtree: in-bounds point rejected by every child after subdivision")
}

// subdivide partitions q's boundary into four disjoint quadrants of half
// the half-dimension. q's own inline points are left in place.
func (q *QuadTree) subdivide() {
	half := q.boundary.HalfDimension / 2
	cx, cy := q.boundary.Center.X, q.boundary.Center.Y

	q.nw = New(AABB{Center: Point{cx - half, cy - half}, HalfDimension: half}, WithCapacity(q.capacity))
	q.ne = New(AABB{Center: Point{cx + half, cy - half}, HalfDimension: half}, WithCapacity(q.capacity))
	q.sw = New(AABB{Center: Point{cx - half, cy + half}, HalfDimension: half}, WithCapacity(q.capacity))
	q.se = New(AABB{Center: Point{cx + half, cy + half}, HalfDimension: half}, WithCapacity(q.capacity))
	q.divided = true
}

// QueryRange returns every stored point lying inside r.
//
// Complexity: O(k + log n) where k is the result size, amortized over a
// balanced tree.
func (q *QuadTree) QueryRange(r AABB) []Point {
	var out []Point
	q.queryRange(r, &out)

	return out
}

func (q *QuadTree) queryRange(r AABB, out *[]Point) {
	if !q.boundary.Intersects(r) {
		return
	}
	for _, p := range q.points {
		if r.ContainsPoint(p) {
			*out = append(*out, p)
		}
	}
	if !q.divided {
		return
	}
	q.nw.queryRange(r, out)
	q.ne.queryRange(r, out)
	q.sw.queryRange(r, out)
	q.se.queryRange(r, out)
}

// Points returns every point stored in the tree, in implementation-defined
// order.
func (q *QuadTree) Points() []Point {
	out := make([]Point, len(q.points))
	copy(out, q.points)
	if q.divided {
		out = append(out, q.nw.Points()...)
		out = append(out, q.ne.Points()...)
		out = append(out, q.sw.Points()...)
		out = append(out, q.se.Points()...)
	}

	return out
}
