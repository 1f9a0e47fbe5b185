package agent

import (
	"pursuit/grid"
	"pursuit/searcher"

	"github.com/rs/zerolog/log"
)

// Seeker chases the opponent by planning towards where it is expected to
// be next turn. The plan is recomputed every turn.
type Seeker struct {
	searcher *searcher.Searcher
	path     searcher.Path
}

func NewSeeker(opts ...Option) *Seeker {
	o := newOptions(opts)
	return &Seeker{searcher: o.searcher}
}

func (s *Seeker) Side() Side { return SideSeeker }

// Path returns the path computed on the last turn.
func (s *Seeker) Path() searcher.Path { return s.path }

func (s *Seeker) Decide(g grid.Grid, own, opponent grid.Position, step int) grid.Move {
	predicted := PredictOpponentPosition(own, opponent, g)

	s.path = s.searcher.AStar(own, predicted, g)
	if len(s.path) > 0 {
		return s.path[0]
	}

	// Predicted cell unreachable, chase the current one
	s.path = s.searcher.AStar(own, opponent, g)
	if len(s.path) > 0 {
		log.Debug().Msgf("seeker step %d: predicted %v unreachable, chasing %v", step, predicted, opponent)
		return s.path[0]
	}

	if m, ok := firstValidMove(own, g); ok {
		log.Debug().Msgf("seeker step %d: opponent unreachable, moving %s", step, m)
		return m
	}

	log.Debug().Msgf("seeker step %d: enclosed at %v", step, own)
	return grid.Stay
}
