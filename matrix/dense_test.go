// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch/core"
	"github.com/katalvlaran/vfmatch/matrix"
)

func TestDenseAccessors(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, []float64{0, 0, 7}, m.Row(1))
	assert.Equal(t, []float64{0, 7}, m.Col(2, nil))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
	assert.NoError(t, m.Set(0, 0, math.Inf(1)))

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRowAliasesBuffer(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	m.Row(0)[1] = 3
	v, _ := m.At(0, 1)
	assert.Equal(t, 3.0, v)
	assert.Nil(t, m.Row(5))

	c := m.Clone()
	c.Row(0)[1] = 9
	v, _ = m.At(0, 1)
	assert.Equal(t, 3.0, v)
}

func TestFloydWarshallErrors(t *testing.T) {
	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
	ns, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.FloydWarshall(ns), matrix.ErrNonSquare)
	_, err := matrix.Distances(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestDistancesDirectedPath(t *testing.T) {
	// 0 -> 1 -> 2, plus 3 isolated.
	g, _ := core.NewGraphN(4)
	require.NoError(t, g.AddEdge(0, 1, nil))
	require.NoError(t, g.AddEdge(1, 2, nil))

	d, err := matrix.Distances(g)
	require.NoError(t, err)

	inf := math.Inf(1)
	want := [][]float64{
		{0, 1, 2, inf},
		{inf, 0, 1, inf},
		{inf, inf, 0, inf},
		{inf, inf, inf, 0},
	}
	for i, row := range want {
		assert.Equal(t, row, d.Row(i), "row %d", i)
	}
}

func TestDistancesEmptyGraph(t *testing.T) {
	d, err := matrix.Distances(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, d.Rows())
	assert.Equal(t, "", d.String())
}
