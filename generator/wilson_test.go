package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/beka-birhanu/labyrinth/maze"
	"github.com/beka-birhanu/labyrinth/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Reject invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, -1}, {maxMazeDimension + 1, 2}} {
			_, err := New(dims[0], dims[1], 1)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("Same seed gives the same maze", func(t *testing.T) {
		a, err := New(8, 11, 7)
		require.NoError(t, err)
		b, err := New(8, 11, 7)
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("Spanning tree over every room", func(t *testing.T) {
		m, err := New(6, 9, 3)
		require.NoError(t, err)

		rooms := m.Rows * m.Cols
		assert.Len(t, m.passages, rooms-1)

		g := m.Grid()
		open := strings.Count(g.String(), "1") - strings.Count(fmt.Sprintf("%d,%d", g.Height, g.Width), "1")
		assert.Equal(t, rooms+(rooms-1)+2, open)
	})
}

func TestGridFormat(t *testing.T) {
	m, err := New(4, 5, 11)
	require.NoError(t, err)

	g := m.Grid()
	assert.Equal(t, 11, g.Width)
	assert.Equal(t, 9, g.Height)
	assert.True(t, g.IsTraversable(maze.Start))
	assert.True(t, g.IsTraversable(g.Exit()))
	assert.Equal(t, maze.Coordinate{X: 10, Y: 7}, g.Exit())

	parsed, err := maze.Parse(m.String())
	require.NoError(t, err)
	assert.Equal(t, g.Digest(), parsed.Digest())
}

func TestGeneratedMazesAreSolvable(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		t.Run(fmt.Sprintf("Seed %d", seed), func(t *testing.T) {
			m, err := New(1+int(seed%5), 1+int(seed%7), seed)
			require.NoError(t, err)
			g := m.Grid()

			want, err := solver.Exhaustive(g)
			require.NoError(t, err)
			got, err := solver.Solve(g)
			require.NoError(t, err)

			assert.Equal(t, want, got)
			assert.Zero(t, g.VisitedCount())
		})
	}
}
