package engine

import (
	"fmt"
	"time"

	"pursuit/agent"
	"pursuit/experiments/metrics"
	"pursuit/grid"
	"pursuit/meta"

	"github.com/rs/zerolog/log"
)

// Player pairs an agent with the collector its searcher reports to.
type Player struct {
	Agent   agent.Agent
	Metrics metrics.Collector
}

type Option func(e *LocalEngine)

func WithMaxSteps(steps int) Option {
	return func(e *LocalEngine) {
		if steps > 0 && steps <= MaxSteps {
			e.maxSteps = steps
		}
	}
}

// LocalEngine runs a match in-process. Each step the seeker moves first,
// then the hider; the step number starts at 1.
type LocalEngine struct {
	grid      grid.Grid
	seeker    Player
	hider     Player
	SeekerPos grid.Position
	HiderPos  grid.Position
	maxSteps  int
}

func NewLocalEngine(layout grid.Layout, seeker, hider Player, options ...Option) *LocalEngine {
	if seeker.Agent == nil || hider.Agent == nil {
		panic("both a seeker and a hider are required")
	}
	if seeker.Agent.Side() != agent.SideSeeker || hider.Agent.Side() != agent.SideHider {
		panic(fmt.Sprintf("agents play the wrong sides: %s, %s", seeker.Agent.Side(), hider.Agent.Side()))
	}
	if seeker.Metrics == nil {
		seeker.Metrics = metrics.NewDummyCollector()
	}
	if hider.Metrics == nil {
		hider.Metrics = metrics.NewDummyCollector()
	}

	e := &LocalEngine{
		grid:      layout.Grid.Clone(),
		seeker:    seeker,
		hider:     hider,
		SeekerPos: layout.Seeker,
		HiderPos:  layout.Hider,
		maxSteps:  meta.MAX_STEPS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	var moveMetrics []metrics.MoveMetric
	gameMetric := metrics.GameMetric{StartTime: time.Now()}

	log.Info().Msgf("match starting: seeker at %v, hider at %v, %d steps", e.SeekerPos, e.HiderPos, e.maxSteps)

	winner, steps := agent.SideHider, 0
	if e.captured() {
		winner = agent.SideSeeker
	}
	for step := 1; step <= e.maxSteps && winner != agent.SideSeeker; step++ {
		steps = step

		var m metrics.MoveMetric
		e.SeekerPos, m = e.play(e.seeker, e.SeekerPos, e.HiderPos, step)
		moveMetrics = append(moveMetrics, m)
		if e.captured() {
			winner = agent.SideSeeker
			break
		}

		e.HiderPos, m = e.play(e.hider, e.HiderPos, e.SeekerPos, step)
		moveMetrics = append(moveMetrics, m)
		if e.captured() {
			winner = agent.SideSeeker
			break
		}

		log.Debug().Msgf("after step %d:\n%s", step, grid.Render(e.grid, e.SeekerPos, e.HiderPos))
	}

	gameMetric.Winner = string(winner)
	gameMetric.Captured = winner == agent.SideSeeker
	gameMetric.Steps = steps
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("match over after %d steps: %s wins", gameMetric.Steps, winner)
	return gameMetric.Winner, gameMetric, moveMetrics
}

func (e *LocalEngine) captured() bool {
	return e.SeekerPos == e.HiderPos
}

// play asks one agent for its move and applies it. Moves into walls or off
// the grid are replaced by Stay.
func (e *LocalEngine) play(p Player, own, opponent grid.Position, step int) (grid.Position, metrics.MoveMetric) {
	p.Metrics.Start()
	move := p.Agent.Decide(e.grid, own, opponent, step)
	searchMetric := p.Metrics.Complete()

	next := grid.ApplyMove(own, move)
	if !grid.IsValidPosition(next, e.grid) {
		log.Warn().Msgf("%s played illegal move %s from %v at step %d, staying", p.Agent.Side(), move, own, step)
		move = grid.Stay
		next = own
	}

	return next, metrics.MoveMetric{
		Step:         step,
		Side:         string(p.Agent.Side()),
		Move:         move.String(),
		SearchMetric: searchMetric,
	}
}
