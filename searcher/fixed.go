package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

var _ Searcher = &FixedDepth{}

// FixedDepth runs one engine pass at a fixed depth. A pass cut short by the
// clock yields game.NoMove.
type FixedDepth struct {
	settings
	engine Engine
	depth  int
}

// NewFixedMinimax searches depth plies with plain minimax.
func NewFixedMinimax(depth int, options ...Option) *FixedDepth {
	s := newSettings(options)
	return &FixedDepth{settings: s, engine: &Minimax{settings: s}, depth: depth}
}

// NewFixedAlphaBeta searches depth plies with alpha-beta pruning.
func NewFixedAlphaBeta(depth int, options ...Option) *FixedDepth {
	s := newSettings(options)
	return &FixedDepth{settings: s, engine: &AlphaBeta{settings: s}, depth: depth}
}

func (f *FixedDepth) GetMove(state game.State, clock Clock) game.Move {
	move, _ := f.Search(state, clock)
	return move
}

func (f *FixedDepth) Search(state game.State, clock Clock) (game.Move, metrics.SearchMetric) {
	f.metrics.Start()

	move, err := f.engine.Decide(state, f.depth, NewTimer(clock, f.threshold))
	if err != nil {
		log.Debug().Int("depth", f.depth).Msg("search timed out")
		f.metrics.SetTimedOut()
		return game.NoMove, f.metrics.Complete()
	}

	f.metrics.CompleteIteration(f.depth)
	return move, f.metrics.Complete()
}
