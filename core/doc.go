// Package core implements an undirected simple graph parameterised over a
// vertex value type V.
//
// A Graph[V] is a mapping from vertex values to an ordered slice of
// neighbour values. Two invariants hold after every exported mutation
// except SetEdges, which stores a neighbour list verbatim, and
// ModifyVertex onto an already-present vertex (see their docs):
//
//   - symmetry: v is a neighbour of u iff u is a neighbour of v
//   - simplicity: no self-loops, no duplicate neighbours
//
// V needs only to be comparable: the graph uses Go's built-in map equality
// and hashing, so there is no separate Eq/Hash interface to implement.
// Values flow by copy across every method boundary; the graph never aliases
// a caller-held reference, and the slice returned by NeighboursOf is only
// valid until the next mutation of the graph.
//
// The graph is single-threaded by design (see the module's design notes);
// none of its methods are safe to call concurrently with a mutation of the
// same Graph.
package core
