package experiments

import (
	"fmt"

	"pursuit/agent"
	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/grid"
	"pursuit/searcher"

	"github.com/rs/zerolog/log"
)

type Summary struct {
	Games        int
	SeekerWins   int
	HiderWins    int
	AverageSteps float64
	OutputDir    string // Empty when no records were written
}

// Run plays cfg.Games matches between a fresh seeker and hider and writes
// the game and move records when cfg.OutputDir is set.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	fixed, err := cfg.FixedLayout()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load layout: %w", err)
	}

	summary := Summary{Games: cfg.Games}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	totalSteps := 0

	log.Info().Msgf("starting %d games...", cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		layout, source, err := pickLayout(cfg, fixed, i)
		if err != nil {
			return Summary{}, err
		}

		log.Info().Msgf("starting game %d of %d on %s...", i+1, cfg.Games, source)
		log.Debug().Msgf("layout:\n%s", layout)

		winner, gameMetric, moveMetrics := newMatch(cfg, layout).Run()
		switch winner {
		case string(agent.SideSeeker):
			summary.SeekerWins++
		default:
			summary.HiderWins++
		}
		totalSteps += gameMetric.Steps

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, Layout: source, GameMetric: gameMetric})
		for _, m := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: m})
		}
	}
	summary.AverageSteps = float64(totalSteps) / float64(cfg.Games)

	log.Info().Msgf("finished: seeker won %d, hider won %d, %.1f steps on average",
		summary.SeekerWins, summary.HiderWins, summary.AverageSteps)

	if cfg.OutputDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, err
	}
	summary.OutputDir = writer.Dir()
	log.Info().Msgf("records written to %s", summary.OutputDir)

	return summary, nil
}

func pickLayout(cfg config.Config, fixed *grid.Layout, game int) (grid.Layout, string, error) {
	if fixed != nil {
		source := "inline"
		if cfg.LayoutFile != "" {
			source = cfg.LayoutFile
		}
		return *fixed, source, nil
	}

	seed := cfg.Seed + uint64(game)
	gen := cfg.Generator
	layout, err := GenerateLayout(gen.Rows, gen.Cols, gen.Density, seed)
	if err != nil {
		return grid.Layout{}, "", fmt.Errorf("failed to generate layout for game %d: %w", game+1, err)
	}
	return layout, fmt.Sprintf("seed=%d", seed), nil
}

func newMatch(cfg config.Config, layout grid.Layout) engine.Engine {
	seekerMetrics := metrics.NewCollector()
	hiderMetrics := metrics.NewCollector()

	seeker := agent.NewSeeker(
		agent.WithSearcher(searcher.New(searcher.WithMetrics(seekerMetrics))),
	)
	hider := agent.NewHider(
		agent.WithSearcher(searcher.New(searcher.WithMetrics(hiderMetrics))),
		agent.WithReplanInterval(cfg.ReplanInterval),
	)

	return engine.NewLocalEngine(layout,
		engine.Player{Agent: seeker, Metrics: seekerMetrics},
		engine.Player{Agent: hider, Metrics: hiderMetrics},
		engine.WithMaxSteps(cfg.MaxSteps),
	)
}
