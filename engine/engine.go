package engine

import (
	"pursuit/experiments/metrics"
	"pursuit/meta"
)

const MaxSteps = meta.MAX_STEPS_LIMIT

type Engine interface {
	// Run plays a match until the seeker catches the hider or the step limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
