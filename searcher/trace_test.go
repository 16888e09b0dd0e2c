package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	t.Run("records every visited node", func(t *testing.T) {
		trace := NewTrace()
		collector := metrics.NewCollector()
		a := NewAlphaBeta(WithEvaluator(mockEvaluator), WithMetrics(collector), WithTrace(trace))

		_, err := a.Decide(aimaTree(), 2, unlimitedTimer())

		require.NoError(t, err)
		require.Equal(t, collector.Complete().Nodes, trace.Len(), "Trace should hold one node per layer entry")
		require.Equal(t, game.Move{Row: 0, Col: 0}, trace.nodes[1].move)
		require.Equal(t, 3.0, trace.nodes[1].value, "First reply should back up its min value")
		require.True(t, trace.nodes[1+4].cut, "Second reply should be marked as pruned")
	})

	t.Run("each pass replaces the previous tree", func(t *testing.T) {
		trace := NewTrace()
		m := NewMinimax(WithEvaluator(mockEvaluator), WithTrace(trace))

		_, err := m.Decide(aimaTree(), 2, unlimitedTimer())
		require.NoError(t, err)
		_, err = m.Decide(aimaTree(), 1, unlimitedTimer())
		require.NoError(t, err)

		require.Equal(t, 4, trace.Len(), "Only the depth one pass should remain")
	})

	t.Run("renders dot", func(t *testing.T) {
		trace := NewTrace()
		a := NewAlphaBeta(WithEvaluator(mockEvaluator), WithTrace(trace))
		_, err := a.Decide(aimaTree(), 2, unlimitedTimer())
		require.NoError(t, err)

		dot := trace.ToDot()

		require.Contains(t, dot, "digraph")
		require.Contains(t, dot, "n10")
		require.Contains(t, dot, "dashed")
	})
}
