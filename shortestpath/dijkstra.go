package shortestpath

import (
	"github.com/cs0rbagomba/graph/core"
	"github.com/cs0rbagomba/graph/pqueue"
)

// Dijkstra returns a minimum-total-distance path from source to
// destination, or nil if destination is unreachable (or either endpoint is
// absent from graph). Ties among equal tentative distances are broken by
// queue insertion order, so the result is deterministic for a fixed graph
// iteration order and a deterministic distance function.
func Dijkstra[V comparable, W Weight](graph *core.Graph[V], source, destination V, distance Distance[V, W]) []V {
	if !graph.HasVertex(source) || !graph.HasVertex(destination) {
		return nil
	}

	best := map[V]tentative[V, W]{
		source: {hasPredecessor: false},
	}

	queue := pqueue.New[W, V]()
	for _, n := range graph.NeighboursOf(source) {
		d := distance(source, n)
		best[n] = tentative[V, W]{distance: d, predecessor: source, hasPredecessor: true}
		queue.Push(d, n)
	}

	for !queue.Empty() {
		uDist, u := queue.Pop()
		if u == destination {
			break
		}
		for _, v := range graph.NeighboursOf(u) {
			alt := uDist + distance(u, v)
			entry, seen := best[v]
			switch {
			case !seen:
				best[v] = tentative[V, W]{distance: alt, predecessor: u, hasPredecessor: true}
				queue.Push(alt, v)
			case alt < entry.distance:
				old := entry.distance
				best[v] = tentative[V, W]{distance: alt, predecessor: u, hasPredecessor: true}
				queue.ModifyKey(old, v, alt)
			}
		}
	}

	if _, ok := best[destination]; !ok {
		return nil
	}

	return reconstruct(best, destination)
}

// reconstruct walks best from destination back to the source (identified
// by hasPredecessor == false) and returns the path in source-to-
// destination order.
func reconstruct[V comparable, W Weight](best map[V]tentative[V, W], destination V) []V {
	var reversed []V
	cur := destination
	for {
		reversed = append(reversed, cur)
		entry := best[cur]
		if !entry.hasPredecessor {
			break
		}
		cur = entry.predecessor
	}

	path := make([]V, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}

	return path
}
