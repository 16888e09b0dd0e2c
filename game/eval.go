package game

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Heuristics for Isolation positions. Every heuristic reports a certain loss
// as -Inf and a certain win as +Inf before looking at the position.

func outcome(s State, player Player) (float64, bool) {
	if s.IsLoser(player) {
		return math.Inf(-1), true
	}
	if s.IsWinner(player) {
		return math.Inf(1), true
	}
	return 0, false
}

// ScoreNull scores every undecided position as 0.
func ScoreNull(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	return 0
}

// ScoreOpenMoves counts the moves available to player.
func ScoreOpenMoves(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	return float64(len(s.PlayerMoves(player)))
}

// ScoreMobility is the difference between the moves available to player and
// to the opponent.
func ScoreMobility(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	own := len(s.PlayerMoves(player))
	opp := len(s.PlayerMoves(s.Opponent(player)))
	return float64(own - opp)
}

// WeightedMobility penalises opponent moves Weight times as much as it
// rewards own moves.
type WeightedMobility struct {
	Weight float64
}

func (w WeightedMobility) Score(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	own := float64(len(s.PlayerMoves(player)))
	opp := float64(len(s.PlayerMoves(s.Opponent(player))))
	return own - w.Weight*opp
}

// ScoreCenter is the squared distance of player from the centre of the board.
func ScoreCenter(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	loc, ok := s.Location(player)
	if !ok {
		return 0
	}
	w, h := float64(s.Width())/2, float64(s.Height())/2
	dy, dx := h-float64(loc.Row), w-float64(loc.Col)
	return dy*dy + dx*dx
}

// ScoreEdgeRatio favours positions where a smaller share of player's moves
// than of the opponent's moves runs along the edges of the board.
func ScoreEdgeRatio(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	own := s.PlayerMoves(player)
	opp := s.PlayerMoves(s.Opponent(player))
	return edgeShare(s, opp) - edgeShare(s, own)
}

func edgeShare(s State, moves []Move) float64 {
	if len(moves) == 0 {
		return 0
	}
	edges := 0
	for _, m := range moves {
		if m.Row == 0 || m.Col == 0 || m.Row == s.Height()-1 || m.Col == s.Width()-1 {
			edges++
		}
	}
	return float64(edges) / float64(len(moves))
}

// ScoreCanvas compares the blank cells on the ring two steps around each
// player, which is where the next knight moves land.
func ScoreCanvas(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	blanks := s.BlankSpaces()
	own := ringCount(s, player, blanks)
	opp := ringCount(s, s.Opponent(player), blanks)
	return float64(own - opp)
}

func ringCount(s State, player Player, blanks []Move) int {
	loc, ok := s.Location(player)
	if !ok {
		return 0
	}
	count := 0
	for _, b := range blanks {
		dr, dc := abs(b.Row-loc.Row), abs(b.Col-loc.Col)
		if (dc == 2 && dr <= 2) || (dr == 2 && dc <= 2) {
			count++
		}
	}
	return count
}

// ScoreCenterDistance rewards being closer to the centre (Manhattan distance)
// than the opponent.
func ScoreCenterDistance(s State, player Player) float64 {
	if v, ok := outcome(s, player); ok {
		return v
	}
	return centerDistance(s, s.Opponent(player)) - centerDistance(s, player)
}

func centerDistance(s State, player Player) float64 {
	loc, ok := s.Location(player)
	if !ok {
		return 0
	}
	cx, cy := float64(s.Width())/2, float64(s.Height())/2
	return math.Abs(float64(loc.Col)-cx) + math.Abs(float64(loc.Row)-cy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var evaluators = map[string]Evaluator{
	"null":            EvaluatorFunc(ScoreNull),
	"open":            EvaluatorFunc(ScoreOpenMoves),
	"improved":        EvaluatorFunc(ScoreMobility),
	"aggressive":      WeightedMobility{Weight: 2},
	"center":          EvaluatorFunc(ScoreCenter),
	"edge_ratio":      EvaluatorFunc(ScoreEdgeRatio),
	"canvas":          EvaluatorFunc(ScoreCanvas),
	"center_distance": EvaluatorFunc(ScoreCenterDistance),
}

// LookupEvaluator returns the heuristic registered under name.
func LookupEvaluator(name string) (Evaluator, error) {
	e, ok := evaluators[name]
	if !ok {
		return nil, errors.Errorf("unknown evaluator %q", name)
	}
	return e, nil
}

// EvaluatorNames lists the registered heuristics in sorted order.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
