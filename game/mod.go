package game

import "fmt"

// Player identifies one of the two seats at the board. Identity is relative
// to whoever asks: the searching agent is "self", Opponent gives the other.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// State should be immutable - Forecast always returns a new copy and never
// touches the receiver.
type State interface {
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(p Player) Player

	// LegalMoves returns the moves of the active player in a stable order.
	LegalMoves() []Move
	PlayerMoves(p Player) []Move
	Forecast(m Move) State

	IsWinner(p Player) bool
	IsLoser(p Player) bool

	Location(p Player) (Move, bool)
	BlankSpaces() []Move
	Width() int
	Height() int
}

// Evaluator scores a state from the perspective of player. It must return
// -Inf when player has lost, +Inf when player has won and a finite value
// otherwise.
type Evaluator interface {
	Score(state State, player Player) float64
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(state State, player Player) float64

func (f EvaluatorFunc) Score(state State, player Player) float64 {
	return f(state, player)
}
