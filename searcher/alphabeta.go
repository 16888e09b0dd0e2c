package searcher

import (
	"isolation/game"
	"math"
)

var _ Engine = &AlphaBeta{}

// AlphaBeta is minimax with alpha-beta pruning: alpha is the value the
// maximizer can already guarantee, beta the value the minimizer can. It picks
// the same move as Minimax at the same depth while visiting no more nodes.
type AlphaBeta struct {
	settings
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{settings: newSettings(options)}
}

func (a *AlphaBeta) Decide(state game.State, depth int, timer Timer) (game.Move, error) {
	move, _, err := a.decide(state, depth, timer)
	return move, err
}

// decide also reports whether the pass reached the end of the game on every
// explored line, in which case a deeper search cannot change the result.
func (a *AlphaBeta) decide(state game.State, depth int, timer Timer) (game.Move, bool, error) {
	p := newPass(state, a.settings, timer)
	if err := p.enter(); err != nil {
		return game.NoMove, false, err
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, true, nil
	}

	alpha, beta := math.Inf(-1), math.Inf(1)
	bestMove := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		p.descend(move)
		score, err := p.minBound(state.Forecast(move), depth, alpha, beta)
		if err != nil {
			return game.NoMove, false, err
		}
		p.ascend(score)

		// Later siblings are pruned against the best move so far
		alpha = math.Max(alpha, score)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestMove, !p.truncated, nil
}

func (p *pass) maxBound(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := p.enter(); err != nil {
		return 0, err
	}

	terminal, err := p.terminal(state)
	if err != nil {
		return 0, err
	}
	if terminal {
		return TerminalLoss, nil
	}

	depth--
	if depth <= 0 {
		return p.score(state), nil
	}

	v := math.Inf(-1)
	for _, move := range state.LegalMoves() {
		p.descend(move)
		child, err := p.minBound(state.Forecast(move), depth, alpha, beta)
		if err != nil {
			return 0, err
		}
		p.ascend(child)

		v = math.Max(v, child)
		if v >= beta { // The minimizer never lets play reach this node
			p.cutoff()
			break
		}
		alpha = math.Max(alpha, v)
	}
	return v, nil
}

func (p *pass) minBound(state game.State, depth int, alpha, beta float64) (float64, error) {
	if err := p.enter(); err != nil {
		return 0, err
	}

	terminal, err := p.terminal(state)
	if err != nil {
		return 0, err
	}
	if terminal || depth <= 0 {
		p.truncated = p.truncated || !terminal
		return TerminalWin, nil
	}

	depth--
	if depth <= 0 {
		return p.score(state), nil
	}

	v := math.Inf(1)
	for _, move := range state.LegalMoves() {
		p.descend(move)
		child, err := p.maxBound(state.Forecast(move), depth, alpha, beta)
		if err != nil {
			return 0, err
		}
		p.ascend(child)

		v = math.Min(v, child)
		if v <= alpha { // The maximizer already has something better
			p.cutoff()
			break
		}
		beta = math.Min(beta, v)
	}
	return v, nil
}
