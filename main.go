package main

import (
	"flag"
	"fmt"
	"isolation/config"
	"isolation/engine"
	"isolation/experiments"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"
	"isolation/searcher/agent"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML tournament file, the classic roster if empty")
	numGames := flag.Int("games", 0, "Fair matches per matchup, overrides the config")
	timeLimit := flag.Duration("time", 0, "Time per move, overrides the config")
	out := flag.String("out", "experiments", "Directory for the CSV records, none if empty")
	play := flag.Bool("play", false, "Play a single game between two iterative deepening agents")
	dot := flag.String("dot", "", "With -play, write the search tree of the first move as graphviz dot")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *play {
		playGame(*timeLimit, *dot)
		return
	}

	t := config.Default()
	if *configPath != "" {
		var err error
		if t, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load tournament")
		}
	}
	if *numGames > 0 {
		t.NumGames = *numGames
	}
	if *timeLimit > 0 {
		t.TimeLimit = *timeLimit
	}

	result, err := experiments.Run(t)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}

	fmt.Printf("%-14s %6s %6s %8s\n", "agent", "won", "lost", "win rate")
	for _, s := range result.Standings {
		fmt.Printf("%-14s %6d %6d %7.1f%%\n", s.Agent.Name, s.Wins, s.Losses, 100*s.WinRate())
	}

	if *out != "" {
		dir, err := experiments.Save(*out, t, result)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to store records")
		}
		log.Info().Msgf("records stored in %s", dir)
	}
}

// playGame plays improved against edge_ratio from a random opening and prints
// the final board.
func playGame(timeLimit time.Duration, dotPath string) {
	if timeLimit <= 0 {
		timeLimit = meta.TimeLimit
	}
	r := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	board := experiments.Opening(r, game.NewBoard(meta.BoardSize, meta.BoardSize), meta.OpeningMoves)

	if dotPath != "" {
		trace := searcher.NewTrace()
		s := searcher.NewFixedAlphaBeta(3, searcher.WithTrace(trace))
		move := s.GetMove(board, searcher.Unlimited())
		if err := os.WriteFile(dotPath, []byte(trace.ToDot()), 0o644); err != nil {
			log.Fatal().Err(err).Msg("failed to write search tree")
		}
		log.Info().Msgf("depth 3 tree for %v (%d nodes) written to %s", move, trace.Len(), dotPath)
	}

	agents := [2]agent.Agent{}
	for i, evaluate := range []game.EvaluatorFunc{game.ScoreMobility, game.ScoreEdgeRatio} {
		agents[i] = agent.NewSearchAgent(searcher.NewIterativeDeepening(
			searcher.WithEvaluator(evaluate),
			searcher.WithMetrics(metrics.NewCollector()),
		))
	}
	e := engine.LocalEngine(board, agents, timeLimit)
	fmt.Printf("Opening after %d moves:\n%v\n", board.MoveCount(), board)

	winner, gameMetric, moveMetrics := e.Run()
	for _, m := range moveMetrics {
		fmt.Printf("%3d %v %v depth=%d nodes=%d\n", m.Step, m.Player, m.Move, m.Depth, m.Nodes)
	}
	fmt.Printf("\n%v\nWinner: %v (%s after %d moves)\n", e.State, winner, gameMetric.Outcome, gameMetric.TotalMoves)
	if final, ok := e.State.(*game.Board); ok {
		fmt.Printf("Last moves: %v %v, %v %v\n", game.Player1, final.LastMove(game.Player1), game.Player2, final.LastMove(game.Player2))
	}
}
