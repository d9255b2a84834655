package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/topology"
)

func emptyStore() candidates {
	var v candidates
	for i := range v {
		v[i] = fullDomain
	}
	return v
}

func TestAssignCollapsesDomain(t *testing.T) {
	v := emptyStore()
	ok := v.assign(topology.Index(0, 0), 5)
	require.True(t, ok)
	assert.Equal(t, 1, v.count(0))
	assert.Equal(t, uint8(5), v.single(0))
}

func TestAssignEliminatesFromPeers(t *testing.T) {
	v := emptyStore()
	cell := topology.Index(4, 4)
	require.True(t, v.assign(cell, 7))
	for _, p := range topology.PeersOf[cell] {
		assert.Falsef(t, v.has(p, 7), "peer %s still admits 7", topology.Names[p])
	}
}

func TestEliminateIsIdempotent(t *testing.T) {
	v := emptyStore()
	cell := topology.Index(2, 3)
	require.True(t, v.eliminate(cell, 9))
	after := v
	require.True(t, v.eliminate(cell, 9)) // already absent: no-op
	assert.Equal(t, after, v)
}

func TestEliminateLastCandidateContradicts(t *testing.T) {
	v := emptyStore()
	v[0] = digitBit(3)
	assert.False(t, v.eliminate(0, 3))
}

func TestDuplicateGivensInRowContradict(t *testing.T) {
	// two 1s in row A must fail during initial constraint application
	b, err := domain.ParseGrid("11" + strings.Repeat("0", 79))
	require.NoError(t, err)
	_, ok := fromBoard(b)
	assert.False(t, ok)
}

func TestHiddenSinglePlacement(t *testing.T) {
	// eliminate 4 from every cell of row A except A9; propagation must
	// assign 4 there
	v := emptyStore()
	for c := 0; c < 8; c++ {
		require.True(t, v.eliminate(topology.Index(0, c), 4))
	}
	cell := topology.Index(0, 8)
	assert.Equal(t, 1, v.count(cell))
	assert.Equal(t, uint8(4), v.single(cell))
}

func TestCopyOnBranchIsolation(t *testing.T) {
	v := emptyStore()
	branch := v
	require.True(t, branch.assign(0, 1))
	assert.Equal(t, fullDomain, v[0], "sibling branch observed a mutation")
}
