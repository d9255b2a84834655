package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const easyGrid = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"

func TestParseGrid(t *testing.T) {
	b, err := ParseGrid(easyGrid)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), b.Values[0][2])
	assert.Equal(t, uint8(0), b.Values[0][0])
	assert.True(t, b.Fixed[0][2])
	assert.False(t, b.Fixed[0][0])
}

func TestParseGridFiltersNoise(t *testing.T) {
	noisy := "4.....8.5 .3...|....\n...7..... .2.....6.\n....8.4.. ....1....\n...6.3.7. 5..2..... 1.4......"
	b, err := ParseGrid(noisy)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), b.Values[0][0])
	assert.Equal(t, uint8(5), b.Values[0][8])
}

func TestParseGridRejectsShortInput(t *testing.T) {
	short := easyGrid[:80] // one cell missing
	b, err := ParseGrid(short)
	assert.Nil(t, b)
	var ge *GridError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 80, ge.Got)
}

func TestParseGridRejectsLongInput(t *testing.T) {
	_, err := ParseGrid(easyGrid + "1")
	var ge *GridError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 82, ge.Got)
}

func TestGridStringRoundTrip(t *testing.T) {
	b, err := ParseGrid(easyGrid)
	require.NoError(t, err)
	dotted := GridString(b)
	b2, err := ParseGrid(dotted)
	require.NoError(t, err)
	assert.Equal(t, b.Values, b2.Values)
}

func TestBoardCloneIsolation(t *testing.T) {
	b, err := ParseGrid(easyGrid)
	require.NoError(t, err)
	cp := b.Clone()
	cp.Values[0][0] = 9
	assert.Equal(t, uint8(0), b.Values[0][0])
}

func TestSearchParamsNormalized(t *testing.T) {
	p := SearchParams{}.Normalized(true)
	assert.Equal(t, DefaultCoolingRate, p.CoolingRate)
	assert.Equal(t, DefaultAnnealIterations, p.MaxIterations)
	assert.Zero(t, p.InitialTemperature, "temperature must stay as given")

	p = SearchParams{}.Normalized(false)
	assert.Equal(t, DefaultClimbIterations, p.MaxIterations)

	p = SearchParams{CoolingRate: 0.5, MaxIterations: 7}.Normalized(true)
	assert.Equal(t, 0.5, p.CoolingRate)
	assert.Equal(t, 7, p.MaxIterations)
}
