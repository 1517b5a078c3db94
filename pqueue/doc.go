// Package pqueue implements a generic, indexed priority queue: a
// multiset of (key, value) pairs supporting push, top, pop and, crucially,
// modify-key — moving an already-queued value to a new key without a full
// rebuild.
//
// Ordering is a strict weak ordering on K; among entries with equal keys,
// pop returns them in FIFO (insertion) order. modify-key is what lets
// shortestpath relax a vertex's tentative distance in O(log n) instead of
// re-pushing a stale duplicate and filtering it out later.
package pqueue
