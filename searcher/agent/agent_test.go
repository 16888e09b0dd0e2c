package agent

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomAgent(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		board := game.NewBoard(5, 5).Apply(game.Move{Row: 2, Col: 2}).Apply(game.Move{Row: 0, Col: 0})
		a := NewRandomAgent(7)

		for i := 0; i < 20; i++ {
			move, _ := a.FindMove(board, searcher.Unlimited())
			require.Contains(t, board.LegalMoves(), move)
		}
	})

	t.Run("same seed replays the same moves", func(t *testing.T) {
		board := game.NewBoard(5, 5)
		a, b := NewRandomAgent(42), NewRandomAgent(42)

		for i := 0; i < 10; i++ {
			moveA, _ := a.FindMove(board, searcher.Unlimited())
			moveB, _ := b.FindMove(board, searcher.Unlimited())
			require.Equal(t, moveA, moveB)
		}
	})

	t.Run("no legal moves", func(t *testing.T) {
		require.Equal(t, game.NoMove, Sample(rand.New(rand.NewSource(1)), nil))
	})
}

func TestSearchAgent(t *testing.T) {
	board := game.NewBoard(4, 4).Apply(game.Move{Row: 0, Col: 0}).Apply(game.Move{Row: 3, Col: 3})
	collector := metrics.NewCollector()
	a := NewSearchAgent(searcher.NewFixedAlphaBeta(2, searcher.WithMetrics(collector)))

	move, metric := a.FindMove(board, searcher.Unlimited())

	require.Contains(t, board.LegalMoves(), move)
	require.Equal(t, 2, metric.Depth, "Agent should pass the search metrics through")
	require.Positive(t, metric.Nodes)
}
