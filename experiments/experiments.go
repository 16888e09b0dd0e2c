package experiments

import (
	"isolation/config"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Standing is the score of one tested agent over all its matchups.
type Standing struct {
	Agent  config.AgentConfig
	Wins   int
	Losses int
	WinsVs map[int]int // Opponent ID to wins against it
}

func (s Standing) WinRate() float64 {
	games := s.Wins + s.Losses
	if games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(games)
}

type Result struct {
	Standings []Standing
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
}

// Run plays every agent against every opponent. Each of the NumGames fair
// matches starts from a random opening and is played twice, once with each
// agent moving first.
func Run(t *config.Tournament) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(t.Seed))
	result := &Result{}

	log.Info().Msgf("starting %s tournament...", t.Name)

	for ai, a := range t.Agents {
		standing := Standing{Agent: a, WinsVs: map[int]int{}}
		for oi, o := range t.Opponents {
			log.Info().Msgf("starting matchup %d of %d between %s and %s...", ai*len(t.Opponents)+oi+1, len(t.Agents)*len(t.Opponents), a.Name, o.Name)

			for i := 0; i < t.NumGames; i++ {
				opening := Opening(r, game.NewBoard(t.Width, t.Height), meta.OpeningMoves)
				for _, seats := range [][2]config.AgentConfig{{a, o}, {o, a}} {
					winnerID, err := result.play(t, seats, opening)
					if err != nil {
						return nil, err
					}
					if winnerID == a.ID {
						standing.Wins++
						standing.WinsVs[o.ID]++
					} else {
						standing.Losses++
					}
				}
			}
			log.Info().Msgf("%s won %d of %d against %s", a.Name, standing.WinsVs[o.ID], 2*t.NumGames, o.Name)
		}
		result.Standings = append(result.Standings, standing)
	}

	log.Info().Msgf("completed %s tournament", t.Name)
	return result, nil
}

// play runs one game and returns the ID of the winning agent.
func (r *Result) play(t *config.Tournament, seats [2]config.AgentConfig, opening *game.Board) (int, error) {
	var agents [2]agent.Agent
	for i, c := range seats {
		a, err := NewAgent(c, t.Threshold)
		if err != nil {
			return 0, err
		}
		agents[i] = a
	}

	e := engine.LocalEngine(opening, agents, t.TimeLimit)
	winner, gameMetric, moveMetrics := e.Run()

	id := len(r.Games) + 1
	r.Games = append(r.Games, metrics.GameRecord{
		ID:         id,
		Agent1:     seats[0].ID,
		Agent2:     seats[1].ID,
		GameMetric: gameMetric,
	})
	for _, mm := range moveMetrics {
		r.Moves = append(r.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}

	winnerSeat := seats[winner-game.Player1]
	log.Debug().Msgf("game %d: %s beat %s (%s after %d moves)", id, winnerSeat.Name, seats[game.Player2-winner].Name, gameMetric.Outcome, gameMetric.TotalMoves)
	return winnerSeat.ID, nil
}

// Opening plays n uniformly random moves from board.
func Opening(r *rand.Rand, board *game.Board, n int) *game.Board {
	for i := 0; i < n; i++ {
		move := agent.Sample(r, board.LegalMoves())
		if move.IsNone() {
			break
		}
		board = board.Apply(move)
	}
	return board
}

// NewAgent builds the agent described by c.
func NewAgent(c config.AgentConfig, threshold float64) (agent.Agent, error) {
	if c.Kind == config.KindRandom {
		return agent.NewRandomAgent(c.Seed), nil
	}

	evaluate, err := game.LookupEvaluator(c.Evaluator)
	if err != nil {
		return nil, errors.Wrapf(err, "agent %s", c.Name)
	}
	options := []searcher.Option{
		searcher.WithEvaluator(evaluate),
		searcher.WithThreshold(threshold),
		searcher.WithMetrics(metrics.NewCollector()),
	}

	switch c.Kind {
	case config.KindIterative:
		if c.MaxDepth > 0 {
			options = append(options, searcher.WithMaxDepth(c.MaxDepth))
		}
		return agent.NewSearchAgent(searcher.NewIterativeDeepening(options...)), nil
	case config.KindMinimax:
		return agent.NewSearchAgent(searcher.NewFixedMinimax(c.Depth, options...)), nil
	case config.KindAlphaBeta:
		return agent.NewSearchAgent(searcher.NewFixedAlphaBeta(c.Depth, options...)), nil
	default:
		return nil, errors.Errorf("agent %s: unknown kind %q", c.Name, c.Kind)
	}
}

// Save writes the configs and records of a run under baseDir.
func Save(baseDir string, t *config.Tournament, result *Result) (string, error) {
	writer, err := metrics.NewWriter(baseDir, t.Name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}

	if err := writer.WriteAgentConfigs(append(append([]config.AgentConfig{}, t.Agents...), t.Opponents...)); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
