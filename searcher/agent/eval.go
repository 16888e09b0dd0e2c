package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays whatever s finds.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State, clock searcher.Clock) (game.Move, metrics.SearchMetric) {
	return a.searcher.Search(state, clock)
}
