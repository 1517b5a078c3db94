package core

import "iter"

// HasVertex reports whether v is a vertex of the graph.
//
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// NeighboursOf returns an immutable view of v's neighbour list, or nil if v
// is absent. The returned slice is only valid until the next mutation of
// the graph; callers that need it to outlive a mutation must copy it.
//
// Complexity: O(1).
func (g *Graph[V]) NeighboursOf(v V) []V {
	return g.adjacency[v]
}

// Vertices returns every vertex exactly once, in implementation-defined
// order. The order is not stable across mutations.
//
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// All returns an iterator over every vertex exactly once, the idiomatic
// replacement for a hand-rolled forward iterator. Range order matches
// Vertices and is equally unstable across mutations.
//
// Complexity: O(V).
func (g *Graph[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range g.adjacency {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges enumerates every undirected edge twice: once as (u, v) and once as
// (v, u). Output order is unspecified; compare as multisets.
//
// Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, len(g.adjacency))
	for v, neighbours := range g.adjacency {
		for _, n := range neighbours {
			out = append(out, Edge[V]{Source: v, Destination: n})
		}
	}

	return out
}

// Equal reports whether g and o have the same vertex set and, for every
// vertex, the same neighbour multiset (order does not matter).
//
// Complexity: O(V + E).
func (g *Graph[V]) Equal(o *Graph[V]) bool {
	if len(g.adjacency) != len(o.adjacency) {
		return false
	}
	for v, neighbours := range g.adjacency {
		on, ok := o.adjacency[v]
		if !ok || len(on) != len(neighbours) {
			return false
		}
		if !sameMultiset(neighbours, on) {
			return false
		}
	}

	return true
}

func sameMultiset[V comparable](a, b []V) bool {
	counts := make(map[V]int, len(a))
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}

// Empty reports whether g has no vertices.
func Empty[V comparable](g *Graph[V]) bool { return len(g.Vertices()) == 0 }

// NumberOfVertices returns |V|.
func NumberOfVertices[V comparable](g *Graph[V]) int { return len(g.adjacency) }

// NumberOfEdges returns the doubled edge count (see Edges).
func NumberOfEdges[V comparable](g *Graph[V]) int {
	n := 0
	for _, neighbours := range g.adjacency {
		n += len(neighbours)
	}

	return n
}

// Contains reports whether v is a vertex of g.
func Contains[V comparable](g *Graph[V], v V) bool { return g.HasVertex(v) }

// Connected reports whether destination is a neighbour of source.
func Connected[V comparable](g *Graph[V], source, destination V) bool {
	return contains(g.adjacency[source], destination)
}

// DisjointUnion returns a copy of a with every edge of b added.
func DisjointUnion[V comparable](a, b *Graph[V]) *Graph[V] {
	g := a.Clone()
	for _, e := range b.Edges() {
		g.AddEdge(e.Source, e.Destination)
	}

	return g
}
