package pqueue

import "container/heap"

// Push inserts (key, value). Duplicates — including an exact repeat of an
// existing (key, value) pair — are permitted; the queue is a multiset.
//
// Complexity: O(log n).
func (pq *PriorityQueue[K, T]) Push(key K, value T) {
	it := &item[K, T]{key: key, value: value, seq: pq.seq}
	pq.seq++
	heap.Push(&pq.h, it)
	pk := pairKey[K, T]{key: key, value: value}
	pq.index[pk] = append(pq.index[pk], it)
}

// Top returns the entry with the smallest key without removing it. It
// panics if the queue is empty — callers must check Empty first.
func (pq *PriorityQueue[K, T]) Top() (K, T) {
	if pq.Empty() {
		panic("pqueue: Top on empty queue")
	}

	return pq.h[0].key, pq.h[0].value
}

// Pop removes and returns the entry with the smallest key. Among entries
// sharing that key, the one pushed earliest is returned. It panics if the
// queue is empty.
//
// Complexity: O(log n).
func (pq *PriorityQueue[K, T]) Pop() (K, T) {
	if pq.Empty() {
		panic("pqueue: Pop on empty queue")
	}
	it := heap.Pop(&pq.h).(*item[K, T])
	pq.forget(it)

	return it.key, it.value
}

// ModifyKey relocates the entry (oldKey, value) to newKey, reports true on
// success. It reports false if no entry with that exact (oldKey, value)
// pair is present. newKey == oldKey is a no-op that still reports true.
//
// When more than one entry shares (oldKey, value) — an exact duplicate —
// an arbitrary one of them is relocated; since the pairs are
// indistinguishable, the choice is immaterial to callers.
//
// Complexity: O(log n).
func (pq *PriorityQueue[K, T]) ModifyKey(oldKey K, value T, newKey K) bool {
	pk := pairKey[K, T]{key: oldKey, value: value}
	entries := pq.index[pk]
	if len(entries) == 0 {
		return false
	}

	it := entries[len(entries)-1]
	pq.index[pk] = entries[:len(entries)-1]
	if len(pq.index[pk]) == 0 {
		delete(pq.index, pk)
	}

	it.key = newKey
	heap.Fix(&pq.h, it.index)

	newPk := pairKey[K, T]{key: newKey, value: value}
	pq.index[newPk] = append(pq.index[newPk], it)

	return true
}

// Contains reports whether (key, value) is currently queued.
func (pq *PriorityQueue[K, T]) Contains(key K, value T) bool {
	return len(pq.index[pairKey[K, T]{key: key, value: value}]) > 0
}

// Empty reports whether the queue holds no entries.
func (pq *PriorityQueue[K, T]) Empty() bool { return pq.h.Len() == 0 }

// Size returns the number of entries currently queued.
func (pq *PriorityQueue[K, T]) Size() int { return pq.h.Len() }

func (pq *PriorityQueue[K, T]) forget(it *item[K, T]) {
	pk := pairKey[K, T]{key: it.key, value: it.value}
	entries := pq.index[pk]
	for i, e := range entries {
		if e == it {
			entries[i] = entries[len(entries)-1]
			entries = entries[:len(entries)-1]
			break
		}
	}
	if len(entries) == 0 {
		delete(pq.index, pk)
	} else {
		pq.index[pk] = entries
	}
}
