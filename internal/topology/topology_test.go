package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cells []int) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = Names[c]
	}
	return out
}

func TestTableSizes(t *testing.T) {
	assert.Len(t, Names, 81)
	assert.Len(t, Units, 27)

	// every cell appears in exactly 3 units
	count := [Cells]int{}
	for _, u := range Units {
		for _, cell := range u {
			count[cell]++
		}
	}
	for i, n := range count {
		assert.Equalf(t, 3, n, "cell %s is in %d units", Names[i], n)
	}
}

func TestPeersOfEveryCell(t *testing.T) {
	for i := 0; i < Cells; i++ {
		seen := map[int]bool{}
		for _, p := range PeersOf[i] {
			require.NotEqual(t, i, p, "cell %s is its own peer", Names[i])
			require.Falsef(t, seen[p], "duplicate peer %s of %s", Names[p], Names[i])
			seen[p] = true
		}
		assert.Len(t, seen, PeersPerCell)
	}
}

func TestPeerRelationIsSymmetric(t *testing.T) {
	peer := func(a, b int) bool {
		for _, p := range PeersOf[a] {
			if p == b {
				return true
			}
		}
		return false
	}
	for a := 0; a < Cells; a++ {
		for _, b := range PeersOf[a] {
			assert.Truef(t, peer(b, a), "%s peers %s but not vice versa", Names[a], Names[b])
		}
	}
}

func TestC2UnitsAndPeers(t *testing.T) {
	c2 := Index(2, 1) // row C, column 2
	require.Equal(t, "C2", Names[c2])

	var got [][]string
	for _, u := range UnitsOf[c2] {
		got = append(got, names(Units[u][:]))
	}
	assert.ElementsMatch(t, []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9"}, got[0])
	assert.ElementsMatch(t, []string{"A2", "B2", "C2", "D2", "E2", "F2", "G2", "H2", "I2"}, got[1])
	assert.ElementsMatch(t, []string{"A1", "A2", "A3", "B1", "B2", "B3", "C1", "C2", "C3"}, got[2])

	assert.ElementsMatch(t, []string{
		"A2", "B2", "D2", "E2", "F2", "G2", "H2", "I2",
		"C1", "C3", "C4", "C5", "C6", "C7", "C8", "C9",
		"A1", "A3", "B1", "B3",
	}, names(PeersOf[c2][:]))
}

func TestCross(t *testing.T) {
	got := Cross("AB", "12")
	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, got)
}

func TestBoxCells(t *testing.T) {
	// box 4 is the center box
	center := Box(4)
	assert.ElementsMatch(t, []string{"D4", "D5", "D6", "E4", "E5", "E6", "F4", "F5", "F6"},
		names(center[:]))
	assert.Equal(t, 4, BoxAt(4, 4))
}
