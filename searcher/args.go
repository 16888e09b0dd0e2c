package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
)

type Option func(s *settings)

type settings struct {
	evaluate  game.Evaluator
	threshold float64 // Milliseconds
	maxDepth  int
	metrics   metrics.Collector
	trace     *Trace
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		evaluate:  game.EvaluatorFunc(game.ScoreMobility),
		threshold: meta.TimerThreshold,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func WithEvaluator(evaluate game.Evaluator) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithThreshold sets the remaining milliseconds at which the search aborts.
func WithThreshold(threshold float64) Option {
	return func(s *settings) {
		if threshold >= 0 {
			s.threshold = threshold
		}
	}
}

// WithMaxDepth caps iterative deepening. Zero means no cap.
func WithMaxDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// WithTrace records the tree explored by the most recent depth-limited pass.
func WithTrace(trace *Trace) Option {
	return func(s *settings) {
		s.trace = trace
	}
}
