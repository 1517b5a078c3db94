// Package shortestpath computes minimum-distance paths over a core.Graph
// using Dijkstra's algorithm, with the edge distance supplied by the
// caller as a pluggable function rather than baked into the graph.
//
// Dijkstra relaxes each discovered vertex's tentative distance through
// pqueue.ModifyKey rather than the classic lazy decrease-key (push a
// duplicate, skip stale pops later): the queue never carries more than one
// live entry per vertex.
//
// Complexity: O((V + E) log V).
package shortestpath
