package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/pkg/errors"
)

// Values returned by the min/max layers when the player to move is stuck or
// the depth budget runs out. Only evaluators report ±Inf.
const (
	TerminalWin  = 1.0
	TerminalLoss = -1.0
)

// ErrTimeout is returned by every search frame once the clock drops below the
// threshold. Only the top-level decision call may act on it.
var ErrTimeout = errors.New("search timed out")

// Searcher picks a move for the active player of state before clock runs out.
type Searcher interface {
	// GetMove returns a legal move of state, or game.NoMove if none
	GetMove(state game.State, clock Clock) game.Move
	// Search is GetMove plus the metrics of the decision call
	Search(state game.State, clock Clock) (game.Move, metrics.SearchMetric)
}

// Engine is a depth-limited search over state.
type Engine interface {
	Decide(state game.State, depth int, timer Timer) (game.Move, error)
}
