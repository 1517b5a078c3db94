package pqueue

// item is one heap slot. seq breaks ties between equal keys so pop
// preserves insertion order; index is maintained by innerHeap.Swap so
// ModifyKey can call heap.Fix in O(log n) without a linear search.
type item[K Ordered, T comparable] struct {
	key   K
	value T
	seq   uint64
	index int
}

type innerHeap[K Ordered, T comparable] []*item[K, T]

func (h innerHeap[K, T]) Len() int { return len(h) }

func (h innerHeap[K, T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h innerHeap[K, T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap[K, T]) Push(x any) {
	it := x.(*item[K, T])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap[K, T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}
