package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"pursuit/grid"
	"pursuit/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables that override the config file
const (
	EnvLogLevel  = "PURSUIT_LOG_LEVEL"
	EnvGames     = "PURSUIT_GAMES"
	EnvMaxSteps  = "PURSUIT_MAX_STEPS"
	EnvOutputDir = "PURSUIT_OUTPUT_DIR"
	EnvSeed      = "PURSUIT_SEED"
)

type Generator struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Density float64 `yaml:"density"`
}

// Config describes a batch of matches.
type Config struct {
	LogLevel       string    `yaml:"log_level"`
	Games          int       `yaml:"games"`
	MaxSteps       int       `yaml:"max_steps"`
	ReplanInterval int       `yaml:"replan_interval"`
	OutputDir      string    `yaml:"output_dir"` // No records are written when empty
	Seed           uint64    `yaml:"seed"`
	Layout         []string  `yaml:"layout"`
	LayoutFile     string    `yaml:"layout_file"`
	Generator      Generator `yaml:"generator"`
}

func Default() Config {
	return Config{
		LogLevel:       "info",
		Games:          meta.GAMES,
		MaxSteps:       meta.MAX_STEPS,
		ReplanInterval: meta.REPLAN_INTERVAL,
		Seed:           1,
		Generator: Generator{
			Rows:    meta.GRID_SIZE,
			Cols:    meta.GRID_SIZE,
			Density: meta.WALL_DENSITY,
		},
	}
}

// Load reads the YAML file at path (skipped when empty) over the defaults,
// then applies the environment, loading envFiles (or .env) first if present.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvOutputDir); ok {
		c.OutputDir = v
	}
	for key, target := range map[string]*int{EnvGames: &c.Games, EnvMaxSteps: &c.MaxSteps} {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
		}
		*target = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an unsigned integer: %v", ErrInvalidConfig, EnvSeed, err)
		}
		c.Seed = seed
	}
	return nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.MaxSteps <= 0 || c.MaxSteps > meta.MAX_STEPS_LIMIT {
		return fmt.Errorf("%w: max_steps must be in [1, %d], got %d", ErrInvalidConfig, meta.MAX_STEPS_LIMIT, c.MaxSteps)
	}
	if c.ReplanInterval <= 0 {
		return fmt.Errorf("%w: replan_interval must be positive, got %d", ErrInvalidConfig, c.ReplanInterval)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(c.Layout) > 0 && c.LayoutFile != "" {
		return fmt.Errorf("%w: layout and layout_file are mutually exclusive", ErrInvalidConfig)
	}
	if len(c.Layout) == 0 && c.LayoutFile == "" {
		g := c.Generator
		if g.Rows <= 0 || g.Cols <= 0 || g.Rows*g.Cols < 2 {
			return fmt.Errorf("%w: generator needs room for two agents, got %dx%d", ErrInvalidConfig, g.Rows, g.Cols)
		}
		if g.Density < 0 || g.Density >= 1 {
			return fmt.Errorf("%w: generator density must be in [0, 1), got %v", ErrInvalidConfig, g.Density)
		}
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// FixedLayout returns the configured layout, or nil when layouts should be generated.
func (c Config) FixedLayout() (*grid.Layout, error) {
	switch {
	case len(c.Layout) > 0:
		l, err := grid.ParseLayout(c.Layout)
		if err != nil {
			return nil, err
		}
		return &l, nil
	case c.LayoutFile != "":
		f, err := os.Open(c.LayoutFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open layout: %w", err)
		}
		defer f.Close()
		l, err := grid.ReadLayout(f)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", c.LayoutFile, err)
		}
		return &l, nil
	default:
		return nil, nil
	}
}
