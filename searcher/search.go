package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

// pass holds what one depth-limited search needs. It is created by Decide and
// dropped when Decide returns, so nothing carries over between calls.
type pass struct {
	self      game.Player
	evaluate  game.Evaluator
	timer     Timer
	metrics   metrics.Collector
	trace     *Trace
	truncated bool // Some leaf was cut off by the depth limit rather than by the game ending
}

func newPass(state game.State, s settings, timer Timer) *pass {
	if s.trace != nil {
		s.trace.reset(state.ActivePlayer())
	}
	return &pass{
		self:     state.ActivePlayer(),
		evaluate: s.evaluate,
		timer:    timer,
		metrics:  s.metrics,
		trace:    s.trace,
	}
}

// enter is the checkpoint at the top of every layer.
func (p *pass) enter() error {
	if err := p.timer.check(); err != nil {
		return err
	}
	p.metrics.AddNode()
	return nil
}

// terminal reports whether the player to move has no legal moves.
func (p *pass) terminal(state game.State) (bool, error) {
	if err := p.timer.check(); err != nil {
		return false, err
	}
	return len(state.LegalMoves()) == 0, nil
}

// score evaluates a leaf the depth limit stopped at.
func (p *pass) score(state game.State) float64 {
	p.truncated = true
	return p.evaluate.Score(state, p.self)
}

func (p *pass) cutoff() {
	p.metrics.AddCutoff()
	if p.trace != nil {
		p.trace.cut()
	}
}

func (p *pass) descend(move game.Move) {
	if p.trace != nil {
		p.trace.descend(move)
	}
}

func (p *pass) ascend(value float64) {
	if p.trace != nil {
		p.trace.ascend(value)
	}
}
