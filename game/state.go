package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"isolation/utils"
	"strings"
)

// Knight directions, in the order moves are enumerated.
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var _ State = &Board{}

// Board is an Isolation position: each player's first move may go to any blank
// cell, afterwards players move like a chess knight onto blank cells. Every
// cell a player has stood on stays blocked. A player with no legal move on
// their turn loses.
type Board struct {
	width     int
	height    int
	blocked   []bool  // Indexed by row*width + col
	locations [3]int  // Indexed by Player, -1 while not placed
	active    Player  // The player to move
	moveCount int     // Number of moves applied since the empty board
	lastMoves [3]Move // Last move per player, NoMove if none
}

// NewBoard returns an empty width x height board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [3]int{-1, -1, -1},
		active:    Player1,
		lastMoves: [3]Move{NoMove, NoMove, NoMove},
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
		lastMoves: b.lastMoves,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) MoveCount() int { return b.moveCount }

func (b *Board) ActivePlayer() Player   { return b.active }
func (b *Board) InactivePlayer() Player { return b.Opponent(b.active) }

func (b *Board) Opponent(p Player) Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic(fmt.Sprintf("unexpected player %v", p))
	}
}

// LastMove returns the last move made by p, or NoMove.
func (b *Board) LastMove(p Player) Move {
	return b.lastMoves[p]
}

func (b *Board) Location(p Player) (Move, bool) {
	idx := b.locations[p]
	if idx < 0 {
		return NoMove, false
	}
	return b.move(idx), true
}

func (b *Board) BlankSpaces() []Move {
	blanks := make([]Move, 0, len(b.blocked))
	for idx, blocked := range b.blocked {
		if !blocked {
			blanks = append(blanks, b.move(idx))
		}
	}
	return blanks
}

// IsBlank reports whether m is on the board and not yet visited.
func (b *Board) IsBlank(m Move) bool {
	return b.onBoard(m) && !b.blocked[b.index(m)]
}

func (b *Board) LegalMoves() []Move {
	return b.PlayerMoves(b.active)
}

func (b *Board) PlayerMoves(p Player) []Move {
	idx := b.locations[p]
	if idx < 0 {
		return b.BlankSpaces()
	}

	from := b.move(idx)
	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		to := Move{Row: from.Row + d[0], Col: from.Col + d[1]}
		if b.IsBlank(to) {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) IsWinner(p Player) bool {
	return p == b.InactivePlayer() && len(b.LegalMoves()) == 0
}

func (b *Board) IsLoser(p Player) bool {
	return p == b.active && len(b.LegalMoves()) == 0
}

func (b *Board) Forecast(m Move) State {
	return b.Apply(m)
}

// Apply returns a new board with m played by the active player. The move must
// be a blank cell reachable by the active player; anything else panics.
func (b *Board) Apply(m Move) *Board {
	if !b.legal(m) {
		panic(fmt.Sprintf("illegal move %v for %v", m, b.active))
	}

	next := b.Copy()
	idx := next.index(m)
	next.blocked[idx] = true
	next.locations[b.active] = idx
	next.lastMoves[b.active] = m
	next.active = b.InactivePlayer()
	next.moveCount++
	return next
}

// Block returns a new board with the given blank cells blocked, without
// changing whose turn it is. Used to set up positions.
func (b *Board) Block(cells ...Move) *Board {
	next := b.Copy()
	for _, c := range cells {
		if !next.onBoard(c) {
			panic(fmt.Sprintf("cell %v is off the board", c))
		}
		next.blocked[next.index(c)] = true
	}
	return next
}

// Hash returns an fnv hash of the position.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, v := range []int{b.width, b.height, b.locations[Player1], b.locations[Player2], int(b.active)} {
		binary.LittleEndian.PutUint64(buf, uint64(v))
		h.Write(buf)
	}
	for _, blocked := range b.blocked {
		if blocked {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		sb.WriteString("| ")
		for col := 0; col < b.width; col++ {
			idx := row*b.width + col
			switch {
			case idx == b.locations[Player1]:
				sb.WriteString("1")
			case idx == b.locations[Player2]:
				sb.WriteString("2")
			case b.blocked[idx]:
				sb.WriteString("-")
			default:
				sb.WriteString(" ")
			}
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) legal(m Move) bool {
	return utils.Contains(b.LegalMoves(), m)
}

func (b *Board) onBoard(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

func (b *Board) index(m Move) int {
	return m.Row*b.width + m.Col
}

func (b *Board) move(idx int) Move {
	return Move{Row: idx / b.width, Col: idx % b.width}
}
