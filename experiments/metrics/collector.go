package metrics

import (
	"isolation/game"
	"time"
)

type SearchMetric struct {
	Depth      int // Deepest fully completed depth limit
	Iterations int // Completed depth-limited passes
	Nodes      int // Layer entries across all passes, completed or not
	Cutoffs    int
	Duration   time.Duration
	TimedOut   bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records statistics of one decision call. Start resets it.
type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	CompleteIteration(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	depth      int
	iterations int
	nodes      int
	cutoffs    int
	timedOut   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	*m = collector{startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) CompleteIteration(depth int) {
	m.iterations++
	m.depth = depth
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Iterations: m.iterations,
		Nodes:      m.nodes,
		Cutoffs:    m.cutoffs,
		Duration:   time.Since(m.startTime),
		TimedOut:   m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                      {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) CompleteIteration(depth int) {}
func (m *dummyCollector) SetTimedOut()                {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
