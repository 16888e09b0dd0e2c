package searcher

import (
	"isolation/game"
	"math"
)

var _ Engine = &Minimax{}

// Minimax is an exhaustive depth-limited search.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options)}
}

// Decide returns the move of state with the greatest minimax value searching
// depth plies. The first move attaining the maximum wins ties.
func (m *Minimax) Decide(state game.State, depth int, timer Timer) (game.Move, error) {
	move, _, err := m.decide(state, depth, timer)
	return move, err
}

func (m *Minimax) decide(state game.State, depth int, timer Timer) (game.Move, bool, error) {
	p := newPass(state, m.settings, timer)
	if err := p.enter(); err != nil {
		return game.NoMove, false, err
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, true, nil
	}

	bestMove := moves[0]
	bestScore := math.Inf(-1)
	for _, move := range moves {
		p.descend(move)
		score, err := p.minValue(state.Forecast(move), depth)
		if err != nil {
			return game.NoMove, false, err
		}
		p.ascend(score)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}
	return bestMove, !p.truncated, nil
}

func (p *pass) minValue(state game.State, depth int) (float64, error) {
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
		child, err := p.maxValue(state.Forecast(move), depth)
		if err != nil {
			return 0, err
		}
		p.ascend(child)
		v = math.Min(v, child)
	}
	return v, nil
}

func (p *pass) maxValue(state game.State, depth int) (float64, error) {
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
		child, err := p.minValue(state.Forecast(move), depth)
		if err != nil {
			return 0, err
		}
		p.ascend(child)
		v = math.Max(v, child)
	}
	return v, nil
}
