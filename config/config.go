package config

import (
	"isolation/game"
	"isolation/meta"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Agent kinds.
const (
	KindIterative = "iterative" // Iterative deepening alpha-beta
	KindMinimax   = "minimax"   // Fixed-depth minimax
	KindAlphaBeta = "alphabeta" // Fixed-depth alpha-beta
	KindRandom    = "random"
)

var ErrInvalid = errors.New("invalid tournament config")

type AgentConfig struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Depth     int    `yaml:"depth,omitempty"`     // Fixed-depth kinds only
	Evaluator string `yaml:"evaluator,omitempty"` // Ignored by random agents
	MaxDepth  int    `yaml:"max_depth,omitempty"` // Iterative only, 0 for no limit
	Seed      uint64 `yaml:"seed,omitempty"`      // Random only
}

// Tournament pits every agent against every opponent.
type Tournament struct {
	Name      string        `yaml:"name"`
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	TimeLimit time.Duration `yaml:"time_limit"` // Per move
	Threshold float64       `yaml:"threshold"`  // Milliseconds left at which searches abort
	NumGames  int           `yaml:"num_games"`  // Fair matches per pairing
	Seed      uint64        `yaml:"seed"`       // Opening moves
	Agents    []AgentConfig `yaml:"agents"`
	Opponents []AgentConfig `yaml:"opponents"`
}

// Load reads and validates a tournament file.
func Load(path string) (*Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", path)
	}
	return t, nil
}

// Parse decodes a YAML tournament, fills defaults and validates it.
func Parse(data []byte) (*Tournament, error) {
	t := &Tournament{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tournament) applyDefaults() {
	if t.Name == "" {
		t.Name = "tournament"
	}
	if t.Width == 0 {
		t.Width = meta.BoardSize
	}
	if t.Height == 0 {
		t.Height = meta.BoardSize
	}
	if t.TimeLimit == 0 {
		t.TimeLimit = meta.TimeLimit
	}
	if t.Threshold == 0 {
		t.Threshold = meta.TimerThreshold
	}
	if t.NumGames == 0 {
		t.NumGames = meta.NumGames
	}
	for _, agents := range [][]AgentConfig{t.Agents, t.Opponents} {
		for i := range agents {
			a := &agents[i]
			if a.Kind != KindRandom && a.Evaluator == "" {
				a.Evaluator = "improved"
			}
			if (a.Kind == KindMinimax || a.Kind == KindAlphaBeta) && a.Depth == 0 {
				a.Depth = 3
			}
		}
	}
}

func (t *Tournament) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return errors.Wrapf(ErrInvalid, "board size %dx%d", t.Width, t.Height)
	}
	if t.TimeLimit <= 0 {
		return errors.Wrapf(ErrInvalid, "time limit %v", t.TimeLimit)
	}
	if t.Threshold < 0 {
		return errors.Wrapf(ErrInvalid, "threshold %v", t.Threshold)
	}
	if t.NumGames <= 0 {
		return errors.Wrapf(ErrInvalid, "%d games", t.NumGames)
	}
	if len(t.Agents) == 0 || len(t.Opponents) == 0 {
		return errors.Wrap(ErrInvalid, "need at least one agent and one opponent")
	}

	ids := map[int]bool{}
	for _, agents := range [][]AgentConfig{t.Agents, t.Opponents} {
		for _, a := range agents {
			if ids[a.ID] {
				return errors.Wrapf(ErrInvalid, "duplicate agent id %d", a.ID)
			}
			ids[a.ID] = true
			if err := a.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a AgentConfig) Validate() error {
	switch a.Kind {
	case KindRandom:
		return nil
	case KindMinimax, KindAlphaBeta:
		if a.Depth <= 0 {
			return errors.Wrapf(ErrInvalid, "agent %s: depth %d", a.Name, a.Depth)
		}
	case KindIterative:
		if a.MaxDepth < 0 {
			return errors.Wrapf(ErrInvalid, "agent %s: max depth %d", a.Name, a.MaxDepth)
		}
	default:
		return errors.Wrapf(ErrInvalid, "agent %s: unknown kind %q", a.Name, a.Kind)
	}
	if _, err := game.LookupEvaluator(a.Evaluator); err != nil {
		return errors.Wrapf(ErrInvalid, "agent %s: %v", a.Name, err)
	}
	return nil
}

// Default returns the classic roster: baseline players and the three custom
// heuristics, each tested against every baseline.
func Default() *Tournament {
	t := &Tournament{
		Name: "isolation",
		Agents: []AgentConfig{
			{ID: 1, Name: "AB_Improved", Kind: KindIterative, Evaluator: "improved"},
			{ID: 2, Name: "AB_Custom", Kind: KindIterative, Evaluator: "edge_ratio"},
			{ID: 3, Name: "AB_Custom_2", Kind: KindIterative, Evaluator: "canvas"},
			{ID: 4, Name: "AB_Custom_3", Kind: KindIterative, Evaluator: "center_distance"},
		},
		Opponents: []AgentConfig{
			{ID: 10, Name: "Random", Kind: KindRandom, Seed: 1},
			{ID: 11, Name: "MM_Open", Kind: KindMinimax, Depth: 3, Evaluator: "open"},
			{ID: 12, Name: "MM_Center", Kind: KindMinimax, Depth: 3, Evaluator: "center"},
			{ID: 13, Name: "MM_Improved", Kind: KindMinimax, Depth: 3, Evaluator: "improved"},
			{ID: 14, Name: "AB_Open", Kind: KindAlphaBeta, Depth: 5, Evaluator: "open"},
			{ID: 15, Name: "AB_Center", Kind: KindAlphaBeta, Depth: 5, Evaluator: "center"},
			{ID: 16, Name: "AB_Improved", Kind: KindAlphaBeta, Depth: 5, Evaluator: "improved"},
		},
	}
	t.applyDefaults()
	return t
}
