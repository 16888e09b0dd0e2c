package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	r *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal
// move. The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{r: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State, _ searcher.Clock) (game.Move, metrics.SearchMetric) {
	return Sample(a.r, state.LegalMoves()), metrics.SearchMetric{}
}

// Sample picks a uniformly random move, or game.NoMove from an empty slice.
func Sample(r *rand.Rand, moves []game.Move) game.Move {
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[r.Intn(len(moves))]
}
