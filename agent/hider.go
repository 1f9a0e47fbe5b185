package agent

import (
	"pursuit/grid"
	"pursuit/searcher"

	"github.com/rs/zerolog/log"
)

// Hider runs towards the reachable cell furthest from the seeker. It picks
// a new target every replanInterval steps or once its path runs out.
type Hider struct {
	searcher       *searcher.Searcher
	replanInterval int
	target         grid.Position
	path           searcher.Path
}

func NewHider(opts ...Option) *Hider {
	o := newOptions(opts)
	return &Hider{
		searcher:       o.searcher,
		replanInterval: o.replanInterval,
	}
}

func (h *Hider) Side() Side { return SideHider }

// Target returns the cell the hider is currently heading to.
func (h *Hider) Target() grid.Position { return h.target }

// Path returns the remaining cached moves.
func (h *Hider) Path() searcher.Path { return h.path }

// shouldReplan is true on steps 1, 1+interval, 1+2*interval... and whenever
// the cached path is exhausted.
func (h *Hider) shouldReplan(step int) bool {
	return len(h.path) == 0 || (step-1)%h.replanInterval == 0
}

func (h *Hider) replan(g grid.Grid, own, opponent grid.Position, step int) {
	h.target = h.FindFurthestPosition(own, opponent, g)
	h.path = h.searcher.AStar(own, h.target, g)
	log.Debug().Msgf("hider step %d: new target %v, %d moves", step, h.target, len(h.path))
}

func (h *Hider) Decide(g grid.Grid, own, opponent grid.Position, step int) grid.Move {
	if h.shouldReplan(step) {
		h.replan(g, own, opponent, step)
	} else if !grid.IsValidPosition(grid.ApplyMove(own, h.path[0]), g) {
		// The grid changed under the cached path
		h.replan(g, own, opponent, step)
	}

	if len(h.path) > 0 {
		next := h.path[0]
		h.path = h.path[1:]
		return next
	}

	return h.flee(g, own, opponent, step)
}

// flee picks the move that strictly increases the Manhattan distance to the
// opponent the most, keeping the earliest candidate on ties.
func (h *Hider) flee(g grid.Grid, own, opponent grid.Position, step int) grid.Move {
	best := grid.Stay
	bestDistance := grid.ManhattanDistance(own, opponent)

	for _, m := range grid.AllMoves {
		next := grid.ApplyMove(own, m)
		if !grid.IsValidPosition(next, g) {
			continue
		}
		if d := grid.ManhattanDistance(next, opponent); d > bestDistance {
			bestDistance = d
			best = m
		}
	}

	log.Debug().Msgf("hider step %d: no path to target, fleeing %s", step, best)
	return best
}

// FindFurthestPosition returns, among the cells with the largest BFS
// distance from the opponent, the one closest to own by Manhattan distance.
// If the opponent cannot reach any other cell, own is returned.
func (h *Hider) FindFurthestPosition(own, opponent grid.Position, g grid.Grid) grid.Position {
	dist, order := h.searcher.Distances(opponent, g)
	if len(order) <= 1 {
		return own
	}

	maxDistance := -1
	var furthest []grid.Position
	for _, pos := range order {
		switch d := dist[pos]; {
		case d > maxDistance:
			maxDistance = d
			furthest = []grid.Position{pos}
		case d == maxDistance:
			furthest = append(furthest, pos)
		}
	}

	best := furthest[0]
	bestDistance := grid.ManhattanDistance(own, best)
	for _, pos := range furthest[1:] {
		if d := grid.ManhattanDistance(own, pos); d < bestDistance {
			bestDistance = d
			best = pos
		}
	}
	return best
}
