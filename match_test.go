package vfmatch_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch"
	"github.com/katalvlaran/vfmatch/builder"
	"github.com/katalvlaran/vfmatch/search"
	"github.com/katalvlaran/vfmatch/vf2"
)

func TestMatchShuffledGrid(t *testing.T) {
	g1 := builder.MustBuild(nil, builder.Grid(4, 5))
	g2, perm, err := builder.Shuffle(g1, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	run, err := vfmatch.Match(context.Background(), g1, g2)
	require.NoError(t, err)
	assert.Equal(t, vf2.ModeIsomorphism, run.Mode)
	assert.GreaterOrEqual(t, run.InitTime, time.Duration(0))
	require.True(t, run.Result.Found)
	require.Equal(t, 20, run.Result.Size)
	require.Len(t, perm, 20)

	img := make([]int, 20)
	for k := range run.Result.Core1 {
		img[run.Result.Core1[k]] = run.Result.Core2[k]
	}
	g1.Edges(func(u, v int, _ any) bool {
		assert.True(t, g2.HasEdge(img[u], img[v]), "edge %d->%d", u, v)
		return true
	})
}

func TestMatchForwardsOptions(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	pattern := builder.MustBuild(nil, builder.Path(3))

	run, err := vfmatch.Match(context.Background(), pattern, g,
		vfmatch.WithStateOptions(vf2.WithSortedNodes()),
		vfmatch.WithSearchOptions(search.WithAnchorPruning(false)),
	)
	require.NoError(t, err)
	assert.Equal(t, vf2.ModeSubgraph, run.Mode)
	assert.True(t, run.Result.Found)

	_, err = vfmatch.Match(context.Background(), g, g, vfmatch.WithStateOptions(vf2.WithMode(vf2.Mode(9))))
	assert.ErrorIs(t, err, vf2.ErrOptionViolation)

	_, err = vfmatch.Match(context.Background(), nil, g)
	assert.ErrorIs(t, err, vf2.ErrGraphNil)
}
