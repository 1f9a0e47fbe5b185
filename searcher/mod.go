package searcher

import (
	"pursuit/experiments/metrics"
	"pursuit/grid"
)

// Path is a sequence of moves leading from a start position to a goal.
// An empty path means the goal is unreachable or already reached.
type Path []grid.Move

type Option func(s *Searcher)

// Searcher runs grid searches and reports the work done to a metrics collector.
type Searcher struct {
	metrics metrics.Collector
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var defaultSearcher = New()

// BFS finds a shortest path using the default searcher.
func BFS(start, goal grid.Position, g grid.Grid) Path {
	return defaultSearcher.BFS(start, goal, g)
}

// AStar finds a shortest path using the default searcher.
func AStar(start, goal grid.Position, g grid.Grid) Path {
	return defaultSearcher.AStar(start, goal, g)
}

// Distances labels every cell reachable from start with its BFS distance.
func Distances(start grid.Position, g grid.Grid) (map[grid.Position]int, []grid.Position) {
	return defaultSearcher.Distances(start, g)
}

type step struct {
	from grid.Position
	move grid.Move
}

// reconstruct walks parent links back from goal to start.
func reconstruct(parents map[grid.Position]step, start, goal grid.Position) Path {
	var reversed Path
	for pos := goal; pos != start; {
		s := parents[pos]
		reversed = append(reversed, s.move)
		pos = s.from
	}

	path := make(Path, len(reversed))
	for i, m := range reversed {
		path[len(reversed)-1-i] = m
	}
	return path
}
