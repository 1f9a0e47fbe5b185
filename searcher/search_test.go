package searcher

import (
	"testing"

	"pursuit/experiments/metrics"
	"pursuit/grid"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, lines ...string) grid.Layout {
	t.Helper()
	l, err := grid.ParseLayout(lines)
	require.NoError(t, err)
	return l
}

// requireFeasible checks that every step of path lands on a valid cell and ends at goal.
func requireFeasible(t *testing.T, path Path, start, goal grid.Position, g grid.Grid) {
	t.Helper()
	pos := start
	for i, m := range path {
		require.NotEqual(t, grid.Stay, m, "Path should only contain directional moves")
		pos = grid.ApplyMove(pos, m)
		require.True(t, grid.IsValidPosition(pos, g), "Step %d of path leaves the free cells at %v", i, pos)
	}
	require.Equal(t, goal, pos, "Path should end at the goal")
}

var maze = []string{
	"S....#....",
	".###.#.##.",
	".#...#..#.",
	".#.###.##.",
	".#........",
	".####.###.",
	"......#..H",
}

func TestBFS(t *testing.T) {
	t.Run("open grid follows first-discovered order", func(t *testing.T) {
		g := grid.NewGrid(3, 3)
		got := BFS(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}, g)
		require.Equal(t, Path{grid.Down, grid.Down, grid.Right, grid.Right}, got)
	})

	t.Run("maze path is feasible", func(t *testing.T) {
		l := parse(t, maze...)
		got := BFS(l.Seeker, l.Hider, l.Grid)
		require.NotEmpty(t, got)
		requireFeasible(t, got, l.Seeker, l.Hider, l.Grid)
	})

	t.Run("start equals goal", func(t *testing.T) {
		g := grid.NewGrid(2, 2)
		require.Empty(t, BFS(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 1, Col: 1}, g))
	})

	t.Run("goal behind walls", func(t *testing.T) {
		l := parse(t,
			"S.#.",
			"..#H",
		)
		require.Empty(t, BFS(l.Seeker, l.Hider, l.Grid))
	})

	t.Run("walled-in start", func(t *testing.T) {
		l := parse(t,
			".#..",
			"#S#.",
			".#.H",
		)
		require.Empty(t, BFS(l.Seeker, l.Hider, l.Grid))
	})
}

func TestAStar(t *testing.T) {
	t.Run("equal f-costs break ties in insertion order", func(t *testing.T) {
		g := grid.NewGrid(3, 3)
		got := AStar(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}, g)
		require.Equal(t, Path{grid.Down, grid.Down, grid.Right, grid.Right}, got)
	})

	t.Run("maze path is feasible", func(t *testing.T) {
		l := parse(t, maze...)
		got := AStar(l.Seeker, l.Hider, l.Grid)
		require.NotEmpty(t, got)
		requireFeasible(t, got, l.Seeker, l.Hider, l.Grid)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		l := parse(t, maze...)
		first := AStar(l.Seeker, l.Hider, l.Grid)
		for i := 0; i < 20; i++ {
			require.Equal(t, first, AStar(l.Seeker, l.Hider, l.Grid), "Repeated searches should return the same path")
		}
	})

	t.Run("start equals goal", func(t *testing.T) {
		g := grid.NewGrid(2, 2)
		require.Empty(t, AStar(grid.Position{Row: 0, Col: 1}, grid.Position{Row: 0, Col: 1}, g))
	})

	t.Run("walled-in start", func(t *testing.T) {
		l := parse(t,
			".#..",
			"#S#.",
			".#.H",
		)
		require.Empty(t, AStar(l.Seeker, l.Hider, l.Grid))
	})

	t.Run("detour around a wall", func(t *testing.T) {
		l := parse(t,
			"S#H",
			".#.",
			"...",
		)
		got := AStar(l.Seeker, l.Hider, l.Grid)
		require.Len(t, got, 6)
		requireFeasible(t, got, l.Seeker, l.Hider, l.Grid)
	})
}

func TestBFSAndAStarAgreeOnLength(t *testing.T) {
	l := parse(t, maze...)
	cells := l.Grid.FreeCells()
	for _, start := range cells {
		for _, goal := range cells {
			bfs := BFS(start, goal, l.Grid)
			astar := AStar(start, goal, l.Grid)
			require.Len(t, astar, len(bfs), "BFS and A* should both be optimal from %v to %v", start, goal)
			if start != goal {
				require.NotEmpty(t, astar, "Every free cell of the maze is connected")
				requireFeasible(t, astar, start, goal, l.Grid)
			}
		}
	}
}

func TestDistances(t *testing.T) {
	t.Run("labels reachable cells with shortest distance", func(t *testing.T) {
		l := parse(t,
			"S.#",
			".##",
			"..H",
		)
		dist, order := Distances(l.Seeker, l.Grid)
		require.Equal(t, map[grid.Position]int{
			{Row: 0, Col: 0}: 0,
			{Row: 1, Col: 0}: 1,
			{Row: 0, Col: 1}: 1,
			{Row: 2, Col: 0}: 2,
			{Row: 2, Col: 1}: 3,
			{Row: 2, Col: 2}: 4,
		}, dist)
		require.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, order,
			"Order should follow BFS discovery")
	})

	t.Run("isolated start only labels itself", func(t *testing.T) {
		l := parse(t,
			"S#",
			"#H",
		)
		dist, order := Distances(l.Seeker, l.Grid)
		require.Equal(t, map[grid.Position]int{l.Seeker: 0}, dist)
		require.Equal(t, []grid.Position{l.Seeker}, order)
	})
}

func TestSearcherMetrics(t *testing.T) {
	collector := metrics.NewCollector()
	s := New(WithMetrics(collector))
	l := parse(t,
		"S#H",
		"...",
	)

	collector.Start()
	s.BFS(l.Seeker, l.Hider, l.Grid)
	s.AStar(l.Seeker, grid.Position{Row: -5, Col: -5}, l.Grid)
	got := collector.Complete()

	require.Equal(t, 2, got.Searches)
	require.Equal(t, 1, got.Failures, "The unreachable goal should count as a failed search")
	require.Positive(t, got.Expansions)
}
