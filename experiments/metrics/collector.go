package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration   time.Duration
	Searches   int
	Failures   int // Searches that returned an empty path
	Expansions int
}

type MoveMetric struct {
	Step int
	Side string
	Move string
	SearchMetric
}

type GameMetric struct {
	Winner    string
	Captured  bool
	Steps     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector records the search work an agent does while deciding one move.
type Collector interface {
	Start()
	AddSearch(found bool)
	AddExpansion()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	searches   atomic.Int32
	failures   atomic.Int32
	expansions atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.searches.Store(0)
	m.failures.Store(0)
	m.expansions.Store(0)
}

func (m *collector) AddSearch(found bool) {
	m.searches.Add(1)
	if !found {
		m.failures.Add(1)
	}
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:   time.Since(m.startTime),
		Searches:   int(m.searches.Load()),
		Failures:   int(m.failures.Load()),
		Expansions: int(m.expansions.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddSearch(found bool)   {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
