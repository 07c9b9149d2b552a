// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/vfmatch/core"
)

// GraphSuite exercises construction and the read surface of core.Graph.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	var err error
	s.g, err = core.NewGraphN(4)
	s.Require().NoError(err)
	// 0 -> 2, 0 -> 1, 1 -> 2, 3 -> 0 (inserted out of order on purpose)
	s.Require().NoError(s.g.AddEdge(0, 2, "b"))
	s.Require().NoError(s.g.AddEdge(0, 1, "a"))
	s.Require().NoError(s.g.AddEdge(1, 2, nil))
	s.Require().NoError(s.g.AddEdge(3, 0, nil))
}

func (s *GraphSuite) TestCounts() {
	s.Equal(4, s.g.NodeCount())
	s.Equal(4, s.g.EdgeCount())
	s.Equal(2, s.g.OutEdgeCount(0))
	s.Equal(1, s.g.InEdgeCount(0))
	s.Equal(2, s.g.InEdgeCount(2))
	s.Equal(0, s.g.OutEdgeCount(2))
}

func (s *GraphSuite) TestAdjacencyRowsAreSorted() {
	n, attr := s.g.OutEdge(0, 0)
	s.Equal(1, n)
	s.Equal("a", attr)
	n, attr = s.g.OutEdge(0, 1)
	s.Equal(2, n)
	s.Equal("b", attr)

	n, _ = s.g.InEdge(2, 0)
	s.Equal(0, n)
	n, _ = s.g.InEdge(2, 1)
	s.Equal(1, n)
}

func (s *GraphSuite) TestHasEdgeAndAttr() {
	s.True(s.g.HasEdge(0, 1))
	s.False(s.g.HasEdge(1, 0))
	s.False(s.g.HasEdge(-1, 0))
	s.False(s.g.HasEdge(9, 0))
	s.Equal("b", s.g.EdgeAttr(0, 2))
	s.Nil(s.g.EdgeAttr(2, 0))
}

func (s *GraphSuite) TestAddEdgeErrors() {
	s.ErrorIs(s.g.AddEdge(0, 1, nil), core.ErrDuplicateEdge)
	s.ErrorIs(s.g.AddEdge(0, 7, nil), core.ErrNodeOutOfRange)
	s.ErrorIs(s.g.AddEdge(2, 2, nil), core.ErrLoopNotAllowed)
	s.ErrorIs(s.g.SetNodeAttr(-1, "x"), core.ErrNodeOutOfRange)
	s.Equal(4, s.g.EdgeCount())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	c := s.g.Clone()
	s.Require().NoError(c.AddEdge(2, 3, nil))
	s.True(c.HasEdge(2, 3))
	s.False(s.g.HasEdge(2, 3))
	s.Equal(5, c.EdgeCount())
}

func (s *GraphSuite) TestEdgesOrder() {
	var got [][2]int
	s.g.Edges(func(from, to int, _ core.Attr) bool {
		got = append(got, [2]int{from, to})
		return true
	})
	s.Equal([][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 0}}, got)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestLoopsAndComparators(t *testing.T) {
	g := core.NewGraph(
		core.WithLoops(),
		core.WithNodeComparator(core.EqualAttrs),
	)
	a := g.AddNode("x")
	b := g.AddNode("y")
	require.NoError(t, g.AddEdge(a, a, nil))
	require.True(t, g.HasEdge(a, a))
	require.Equal(t, 1, g.InEdgeCount(a))

	require.True(t, g.CompatibleNode(g.NodeAttr(a), "x"))
	require.False(t, g.CompatibleNode(g.NodeAttr(a), g.NodeAttr(b)))
	// default edge comparator accepts everything
	require.True(t, g.CompatibleEdge(1, "different"))
}

func TestNewGraphNNegative(t *testing.T) {
	_, err := core.NewGraphN(-1)
	require.ErrorIs(t, err, core.ErrNegativeCount)
}
