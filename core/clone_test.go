package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs0rbagomba/graph/core"
)

func TestCloneIsDeepAndIndependent(t *testing.T) {
	require := require.New(t)
	original := core.NewGraph[string]()
	original.AddEdge("A", "B")

	clone := original.Clone()
	require.True(original.Equal(clone))

	clone.AddEdge("A", "C")
	assert.False(t, original.Equal(clone), "mutating the clone must not affect the original")
	assert.False(t, core.Connected(original, "A", "C"))
	assert.True(t, core.Connected(clone, "A", "C"))
}

func TestCloneOfEmptyGraph(t *testing.T) {
	g := core.NewGraph[int]()
	clone := g.Clone()
	assert.True(t, core.Empty(clone))
}
