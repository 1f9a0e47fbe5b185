package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) Layout {
	t.Helper()
	l, err := ParseLayout(lines)
	require.NoError(t, err)
	return l
}

func TestIsValidPosition(t *testing.T) {
	g := mustParse(t,
		"S.#",
		"..H",
	).Grid

	t.Run("free cell inside bounds", func(t *testing.T) {
		require.True(t, IsValidPosition(Position{0, 1}, g))
	})

	t.Run("wall cell", func(t *testing.T) {
		require.False(t, IsValidPosition(Position{0, 2}, g), "Walls should not be valid")
	})

	t.Run("out of bounds on each axis", func(t *testing.T) {
		require.False(t, IsValidPosition(Position{-1, 0}, g))
		require.False(t, IsValidPosition(Position{2, 0}, g))
		require.False(t, IsValidPosition(Position{0, -1}, g))
		require.False(t, IsValidPosition(Position{0, 3}, g))
	})
}

func TestApplyMove(t *testing.T) {
	p := Position{2, 2}
	require.Equal(t, Position{1, 2}, ApplyMove(p, Up))
	require.Equal(t, Position{3, 2}, ApplyMove(p, Down))
	require.Equal(t, Position{2, 1}, ApplyMove(p, Left))
	require.Equal(t, Position{2, 3}, ApplyMove(p, Right))
	require.Equal(t, p, ApplyMove(p, Stay))

	t.Run("does not check bounds", func(t *testing.T) {
		require.Equal(t, Position{-1, 0}, ApplyMove(Position{0, 0}, Up))
	})
}

func TestStayIsIdentity(t *testing.T) {
	g := mustParse(t,
		"S#.",
		".#H",
	).Grid
	for r := -1; r <= g.Rows(); r++ {
		for c := -1; c <= g.Cols(); c++ {
			p := Position{r, c}
			require.Equal(t, IsValidPosition(p, g), IsValidPosition(ApplyMove(p, Stay), g),
				"STAY should not change validity of %v", p)
		}
	}
}

func TestNeighbors(t *testing.T) {
	t.Run("open cell returns all four in fixed order", func(t *testing.T) {
		g := NewGrid(3, 3)
		got := Neighbors(Position{1, 1}, g)
		require.Equal(t, []Neighbor{
			{Position{0, 1}, Up},
			{Position{2, 1}, Down},
			{Position{1, 0}, Left},
			{Position{1, 2}, Right},
		}, got)
	})

	t.Run("walls and borders are filtered", func(t *testing.T) {
		g := mustParse(t,
			"S#",
			".H",
		).Grid
		got := Neighbors(Position{0, 0}, g)
		require.Equal(t, []Neighbor{{Position{1, 0}, Down}}, got)
	})

	t.Run("idempotent on unchanged grid", func(t *testing.T) {
		g := mustParse(t,
			"S..",
			".#.",
			"..H",
		).Grid
		for _, p := range g.FreeCells() {
			require.Equal(t, Neighbors(p, g), Neighbors(p, g))
		}
	})

	t.Run("enclosed cell has no neighbors", func(t *testing.T) {
		g := mustParse(t,
			"H#.",
			"#S#",
			".#.",
		).Grid
		require.Empty(t, Neighbors(Position{1, 1}, g))
	})
}

func TestManhattanDistance(t *testing.T) {
	a := Position{0, 0}
	b := Position{3, -4}
	require.Equal(t, 7, ManhattanDistance(a, b))
	require.Equal(t, ManhattanDistance(a, b), ManhattanDistance(b, a), "Distance should be symmetric")
	require.Zero(t, ManhattanDistance(b, b))
}

func TestFromMatrix(t *testing.T) {
	t.Run("nonzero values are walls", func(t *testing.T) {
		g, err := FromMatrix([][]int{
			{0, 1},
			{2, 0},
		})
		require.NoError(t, err)
		require.Equal(t, 2, g.Rows())
		require.Equal(t, 2, g.Cols())
		require.Equal(t, Wall, g.At(Position{0, 1}))
		require.Equal(t, Wall, g.At(Position{1, 0}))
		require.Equal(t, []Position{{0, 0}, {1, 1}}, g.FreeCells())
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		_, err := FromMatrix([][]int{{0, 0}, {0}})
		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("empty matrix is rejected", func(t *testing.T) {
		_, err := FromMatrix(nil)
		require.ErrorIs(t, err, ErrInvalidGrid)
	})
}

func TestClone(t *testing.T) {
	g := NewGrid(2, 2)
	clone := g.Clone()
	clone.Set(Position{0, 0}, Wall)
	require.Equal(t, Free, g.At(Position{0, 0}), "Clone should not share cells")
	require.Equal(t, Wall, clone.At(Position{0, 0}))
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "UP", Up.String())
	require.Equal(t, "STAY", Stay.String())
	require.Equal(t, "Move(9)", Move(9).String())
}
