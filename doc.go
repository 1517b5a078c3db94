// Package graph is an in-memory toolkit for grid-based spatial
// reasoning: classify a grid, extract its wall outlines, route through
// the resulting graph, and index the points along the way.
//
// Six small packages compose into that pipeline (shortestpath builds on
// core and pqueue; the others stand alone):
//
//   - core        — generic undirected simple Graph[V], mutation & query
//   - pqueue      — generic priority queue with a true modify-key primitive
//   - shortestpath — Dijkstra over a core.Graph via a pluggable distance func
//   - quadtree    — recursive 2-D point index with range queries
//   - marchingsquares — grid-to-segments extraction, with image preprocessing
//   - graphio     — plaintext and XML graph interchange formats
//
// A typical pipeline: classify an image or hand-built grid into
// marchingsquares.CellType values, extract wall segments, build a
// core.Graph keyed by segment endpoints, then call shortestpath.Dijkstra
// to route between two points. quadtree indexes the same 2-D point set
// independently, for callers that need fast range queries rather than
// shortest paths.
//
// The repository ships no runnable example program; each package's tests
// exercise its piece of the pipeline.
package graph
