package engine

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

type Engine interface {
	// Run plays the game till one player cannot move, forfeits or runs out of time
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Outcome is how a game ended.
type Outcome string

const (
	Isolated Outcome = "isolated" // The loser had no legal moves
	Timeout  Outcome = "timeout"  // The loser answered after its time ran out
	Forfeit  Outcome = "forfeit"  // The loser played an illegal move or none at all
)
