package agent

import (
	"fmt"

	"pursuit/grid"
	"pursuit/meta"
	"pursuit/searcher"
)

type Side string

const (
	SideSeeker Side = "seeker"
	SideHider  Side = "hider"
)

type Agent interface {
	// Decide returns the move to play this turn. It never fails; Stay is the
	// fallback when nothing better exists.
	Decide(g grid.Grid, own, opponent grid.Position, step int) grid.Move
	Side() Side
}

type Option func(o *options)

type options struct {
	searcher       *searcher.Searcher
	replanInterval int
}

// WithSearcher makes the agent run its searches through s, e.g. to collect metrics.
func WithSearcher(s *searcher.Searcher) Option {
	return func(o *options) {
		if s != nil {
			o.searcher = s
		}
	}
}

// WithReplanInterval sets how many steps the hider follows a path before
// picking a new target. Only the hider uses it.
func WithReplanInterval(steps int) Option {
	return func(o *options) {
		if steps > 0 {
			o.replanInterval = steps
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		searcher:       searcher.New(),
		replanInterval: meta.REPLAN_INTERVAL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates an agent playing the given side.
func New(side Side, opts ...Option) (Agent, error) {
	switch side {
	case SideSeeker:
		return NewSeeker(opts...), nil
	case SideHider:
		return NewHider(opts...), nil
	default:
		return nil, fmt.Errorf("unknown side %q", side)
	}
}

// firstValidMove scans directional moves in fixed order.
func firstValidMove(pos grid.Position, g grid.Grid) (grid.Move, bool) {
	for _, m := range grid.Moves {
		if grid.IsValidPosition(grid.ApplyMove(pos, m), g) {
			return m, true
		}
	}
	return grid.Stay, false
}
