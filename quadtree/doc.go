// Package quadtree implements a point quadtree: a recursive spatial index
// over 2-D points supporting bounded-region range queries without a full
// scan.
//
// Each node holds up to Capacity points inline; once full it subdivides
// into four quadrants (NW, NE, SW, SE) of half its half-dimension, and
// routes further insertions to whichever child's region accepts the
// point, tried in that order. Boundaries are closed on all sides, so a
// point lying exactly on the line shared by two quadrants may land in
// whichever one claims it first.
package quadtree
