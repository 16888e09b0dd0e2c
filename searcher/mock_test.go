package searcher

import (
	"isolation/game"
	"math"
)

// mockState is a hand-built game tree. Moves are numbered (0, i) in the order
// of children, and the active player alternates by ply.
type mockState struct {
	player   game.Player
	moves    []game.Move
	children []*mockState
	score    float64 // Reported by mockEvaluator when the depth limit stops here
}

var _ game.State = &mockState{}

// branch builds an inner node. The player is filled in by tree.
func branch(children ...*mockState) *mockState {
	moves := make([]game.Move, len(children))
	for i := range children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return &mockState{moves: moves, children: children}
}

// leaf is a non-terminal node whose only follow-up is never reached at the
// depth it is placed at.
func leaf(score float64) *mockState {
	s := branch(stuck())
	s.score = score
	return s
}

// stuck is a node where the player to move has no legal moves.
func stuck() *mockState {
	return &mockState{}
}

// tree assigns players from root down, root to move first.
func tree(root *mockState) *mockState {
	var assign func(s *mockState, p game.Player)
	assign = func(s *mockState, p game.Player) {
		s.player = p
		for _, c := range s.children {
			assign(c, opponentOf(p))
		}
	}
	assign(root, game.Player1)
	return root
}

var mockEvaluator = game.EvaluatorFunc(func(s game.State, _ game.Player) float64 {
	return s.(*mockState).score
})

func (m *mockState) ActivePlayer() game.Player          { return m.player }
func (m *mockState) InactivePlayer() game.Player        { return opponentOf(m.player) }
func (m *mockState) Opponent(p game.Player) game.Player { return opponentOf(p) }
func (m *mockState) LegalMoves() []game.Move            { return m.moves }
func (m *mockState) Location(game.Player) (game.Move, bool) {
	return game.NoMove, false
}
func (m *mockState) BlankSpaces() []game.Move { return nil }
func (m *mockState) Width() int               { return 0 }
func (m *mockState) Height() int              { return 0 }

func (m *mockState) PlayerMoves(p game.Player) []game.Move {
	if p == m.player {
		return m.moves
	}
	return nil
}

func (m *mockState) Forecast(move game.Move) game.State {
	for i, mv := range m.moves {
		if mv == move {
			return m.children[i]
		}
	}
	panic("unexpected move")
}

func (m *mockState) IsWinner(p game.Player) bool {
	return p != m.player && len(m.moves) == 0
}

func (m *mockState) IsLoser(p game.Player) bool {
	return p == m.player && len(m.moves) == 0
}

// countdownClock loses step milliseconds every time it is read.
type countdownClock struct {
	remaining float64
	step      float64
	reads     int
}

func (c *countdownClock) Remaining() float64 {
	c.reads++
	r := c.remaining
	c.remaining -= c.step
	return r
}

func unlimitedTimer() Timer {
	return NewTimer(Unlimited(), 10)
}

func expiredClock() Clock {
	return TimeLeft(func() float64 { return 0 })
}

// aimaTree is the two-ply textbook example: the min values are 3, 2 and 2.
func aimaTree() *mockState {
	return tree(branch(
		branch(leaf(3), leaf(12), leaf(8)),
		branch(leaf(2), leaf(4), leaf(6)),
		branch(leaf(14), leaf(5), leaf(2)),
	))
}

var inf = math.Inf(1)
