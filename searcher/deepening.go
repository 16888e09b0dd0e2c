package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

var _ Searcher = &IterativeDeepening{}

// IterativeDeepening runs alpha-beta at depth 1, 2, 3, ... until the clock
// runs out and answers with the move of the last completed depth.
type IterativeDeepening struct {
	settings
	engine *AlphaBeta
}

func NewIterativeDeepening(options ...Option) *IterativeDeepening {
	s := newSettings(options)
	return &IterativeDeepening{
		settings: s,
		engine:   &AlphaBeta{settings: s},
	}
}

func (d *IterativeDeepening) GetMove(state game.State, clock Clock) game.Move {
	move, _ := d.Search(state, clock)
	return move
}

// Search deepens until the clock runs out, the optional max depth is reached
// or a pass explores the whole game tree without hitting the depth limit.
func (d *IterativeDeepening) Search(state game.State, clock Clock) (game.Move, metrics.SearchMetric) {
	timer := NewTimer(clock, d.threshold)
	d.metrics.Start()

	best := game.NoMove
	for depth := 1; d.maxDepth <= 0 || depth <= d.maxDepth; depth++ {
		move, exhausted, err := d.engine.decide(state, depth, timer)
		if err != nil {
			// ErrTimeout is the only error a pass returns. The unfinished
			// depth is discarded
			log.Debug().Int("depth", depth).Msg("search timed out")
			d.metrics.SetTimedOut()
			break
		}

		best = move
		d.metrics.CompleteIteration(depth)
		log.Debug().Int("depth", depth).Stringer("move", best).Msg("completed depth")

		if exhausted {
			log.Debug().Int("depth", depth).Msg("game tree exhausted")
			break
		}
	}
	return best, d.metrics.Complete()
}
