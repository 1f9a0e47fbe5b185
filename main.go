package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pursuit/config"
	"pursuit/experiments"
	"pursuit/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cmd := &cli.Command{
		Name:  "pursuit",
		Usage: "play seeker and hider agents against each other on a grid",
		Commands: []*cli.Command{
			playCommand(),
			generateCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("pursuit failed")
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "run a batch of matches and optionally record them as CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "layout", Usage: "layout file (overrides the config)"},
			&cli.IntFlag{Name: "games", Usage: "number of matches"},
			&cli.IntFlag{Name: "max-steps", Usage: "steps before the hider wins"},
			&cli.IntFlag{Name: "replan-interval", Usage: "steps between hider re-plans"},
			&cli.Uint64Flag{Name: "seed", Usage: "seed of the first generated layout"},
			&cli.StringFlag{Name: "out", Usage: "directory for game and move records"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			if cmd.IsSet("layout") {
				cfg.LayoutFile = cmd.String("layout")
				cfg.Layout = nil
			}
			if cmd.IsSet("games") {
				cfg.Games = cmd.Int("games")
			}
			if cmd.IsSet("max-steps") {
				cfg.MaxSteps = cmd.Int("max-steps")
			}
			if cmd.IsSet("replan-interval") {
				cfg.ReplanInterval = cmd.Int("replan-interval")
			}
			if cmd.IsSet("seed") {
				cfg.Seed = cmd.Uint64("seed")
			}
			if cmd.IsSet("out") {
				cfg.OutputDir = cmd.String("out")
			}
			if cmd.IsSet("log-level") {
				cfg.LogLevel = cmd.String("log-level")
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.Level()
			zerolog.SetGlobalLevel(level)

			summary, err := experiments.Run(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("games: %d, seeker wins: %d, hider wins: %d, average steps: %.1f\n",
				summary.Games, summary.SeekerWins, summary.HiderWins, summary.AverageSteps)
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "print a random layout",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Value: meta.GRID_SIZE},
			&cli.IntFlag{Name: "cols", Value: meta.GRID_SIZE},
			&cli.FloatFlag{Name: "density", Value: meta.WALL_DENSITY},
			&cli.Uint64Flag{Name: "seed", Value: 1},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			layout, err := experiments.GenerateLayout(cmd.Int("rows"), cmd.Int("cols"), cmd.Float("density"), cmd.Uint64("seed"))
			if err != nil {
				return err
			}
			fmt.Println(layout)
			return nil
		},
	}
}
