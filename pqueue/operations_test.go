package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs0rbagomba/graph/pqueue"
)

func TestPopOrderIsNonDecreasing(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(5, "a")
	pq.Push(1, "b")
	pq.Push(3, "c")
	pq.Push(2, "d")

	var keys []int
	for !pq.Empty() {
		k, _ := pq.Pop()
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2, 3, 5}, keys)
}

func TestFIFOAmongEqualKeys(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(1, "a")
	pq.Push(1, "b")
	pq.Push(1, "c")

	_, v1 := pq.Pop()
	_, v2 := pq.Pop()
	_, v3 := pq.Pop()
	assert.Equal(t, []string{"a", "b", "c"}, []string{v1, v2, v3})
}

// TestModifyKeyScenario pushes (3,A),(1,B),(2,C), moves B to key 4 and A
// to key 1, and checks the resulting pop order: keys [1,2,4], values
// [A,C,B].
func TestModifyKeyScenario(t *testing.T) {
	require := require.New(t)
	pq := pqueue.New[int, string]()
	pq.Push(3, "A")
	pq.Push(1, "B")
	pq.Push(2, "C")

	require.True(pq.ModifyKey(1, "B", 4))
	require.True(pq.ModifyKey(3, "A", 1))

	var keys []int
	var values []string
	for !pq.Empty() {
		k, v := pq.Pop()
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal([]int{1, 2, 4}, keys)
	require.Equal([]string{"A", "C", "B"}, values)
}

func TestModifyKeyReportsAbsence(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(1, "A")
	assert.False(t, pq.ModifyKey(2, "A", 5), "wrong old key")
	assert.False(t, pq.ModifyKey(1, "ghost", 5), "wrong value")
}

func TestModifyKeyNoOpSameKeyStillSucceeds(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(1, "A")
	assert.True(t, pq.ModifyKey(1, "A", 1))
	k, v := pq.Top()
	assert.Equal(t, 1, k)
	assert.Equal(t, "A", v)
}

func TestContains(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(1, "A")
	assert.True(t, pq.Contains(1, "A"))
	assert.False(t, pq.Contains(1, "B"))
	pq.Pop()
	assert.False(t, pq.Contains(1, "A"))
}

func TestEmptyAndSize(t *testing.T) {
	pq := pqueue.New[int, string]()
	assert.True(t, pq.Empty())
	assert.Equal(t, 0, pq.Size())

	pq.Push(1, "A")
	pq.Push(2, "B")
	assert.False(t, pq.Empty())
	assert.Equal(t, 2, pq.Size())
}

func TestTopDoesNotRemove(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(1, "A")
	pq.Top()
	assert.Equal(t, 1, pq.Size())
}

func TestPopOnEmptyPanics(t *testing.T) {
	pq := pqueue.New[int, string]()
	assert.Panics(t, func() { pq.Pop() })
}

func TestTopOnEmptyPanics(t *testing.T) {
	pq := pqueue.New[int, string]()
	assert.Panics(t, func() { pq.Top() })
}

func TestDuplicateExactEntries(t *testing.T) {
	pq := pqueue.New[int, string]()
	pq.Push(1, "A")
	pq.Push(1, "A")
	assert.Equal(t, 2, pq.Size())
	assert.True(t, pq.ModifyKey(1, "A", 5))
	assert.Equal(t, 2, pq.Size())
	assert.True(t, pq.Contains(1, "A"))
	assert.True(t, pq.Contains(5, "A"))
}
