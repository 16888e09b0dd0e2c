package engine

import (
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"isolation/utils"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

var _ Engine = &Local{}

// Local runs a game between two in-process agents. Agents[0] plays for
// game.Player1 and Agents[1] for game.Player2.
type Local struct {
	State     game.State
	Agents    [2]agent.Agent
	TimeLimit time.Duration
	History   []game.Move

	outcome Outcome
	winner  game.Player
}

func LocalEngine(state game.State, agents [2]agent.Agent, timeLimit time.Duration) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	return &Local{
		State:     state,
		Agents:    agents,
		TimeLimit: timeLimit,
	}
}

// Over reports whether the game has ended.
func (e *Local) Over() bool {
	return e.winner != game.NoPlayer
}

// Result returns the winner and how the game ended, once it is over.
func (e *Local) Result() (game.Player, Outcome) {
	return e.winner, e.outcome
}

// Play applies move for the active player.
func (e *Local) Play(move game.Move) error {
	if e.Over() {
		return ErrGameOver
	}
	if !utils.Contains(e.State.LegalMoves(), move) {
		return errors.Wrapf(ErrIllegalMove, "%v for %v", move, e.State.ActivePlayer())
	}

	e.State = e.State.Forecast(move)
	e.History = append(e.History, move)
	if len(e.State.LegalMoves()) == 0 {
		e.end(e.State.InactivePlayer(), Isolated)
	}
	return nil
}

// hasher is implemented by states that fingerprint themselves, like *game.Board.
type hasher interface {
	Hash() uint64
}

// position adds the move count and, when available, the state hash to ev.
func (e *Local) position(ev *zerolog.Event) *zerolog.Event {
	ev = ev.Int("moves", len(e.History))
	if h, ok := e.State.(hasher); ok {
		ev = ev.Uint64("hash", h.Hash())
	}
	return ev
}

func (e *Local) end(winner game.Player, outcome Outcome) {
	e.winner = winner
	e.outcome = outcome
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ActivePlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	if len(e.State.LegalMoves()) == 0 {
		e.end(e.State.InactivePlayer(), Isolated)
	}

	for step := 1; !e.Over(); step++ {
		player := e.State.ActivePlayer()
		a := e.Agents[player-game.Player1]

		deadline := time.Now().Add(e.TimeLimit)
		move, searchMetric := a.FindMove(e.State, searcher.Deadline(deadline))
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		if time.Now().After(deadline) {
			e.position(log.Debug()).Msgf("%v ran out of time", player)
			e.end(e.State.InactivePlayer(), Timeout)
			break
		}
		if err := e.Play(move); err != nil {
			e.position(log.Debug()).Err(err).Msgf("%v forfeits", player)
			e.end(e.State.InactivePlayer(), Forfeit)
			break
		}
	}

	gameMetric.Winner = e.winner
	gameMetric.Outcome = string(e.outcome)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.History)
	return e.winner, gameMetric, moveMetrics
}
