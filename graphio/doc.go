// Package graphio reads and writes core.Graph values in two plain
// interchange formats: a blank-line-delimited plaintext record format and
// an XML document format. Both are driven by caller-supplied parse and
// serialise functions, so the package never assumes anything about V
// beyond what core.Graph itself requires.
//
// Neither reader enforces edge symmetry on the caller's behalf: both load
// each vertex's neighbour list with core.Graph.SetEdges exactly as read,
// so a file describing an undirected graph must already list both
// directions of every edge.
package graphio
