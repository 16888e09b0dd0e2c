package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns a move for the active player and performance metrics (if collected) from the search
	FindMove(state game.State, clock searcher.Clock) (game.Move, metrics.SearchMetric)
}
