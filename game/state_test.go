package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(3, 2)

	require.Equal(t, 3, b.Width())
	require.Equal(t, 2, b.Height())
	require.Equal(t, Player1, b.ActivePlayer())
	require.Equal(t, Player2, b.InactivePlayer())
	require.Equal(t, []Move{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, b.LegalMoves(), "Unplaced player may go anywhere, row by row")
	loc, ok := b.Location(Player1)
	require.False(t, ok)
	require.Equal(t, NoMove, loc)

	require.Panics(t, func() { NewBoard(0, 3) })
}

func TestApply(t *testing.T) {
	t.Run("does not touch the receiver", func(t *testing.T) {
		b := NewBoard(3, 3)

		next := b.Apply(Move{Row: 0, Col: 0})

		require.Len(t, b.BlankSpaces(), 9)
		require.Len(t, next.BlankSpaces(), 8)
		require.Equal(t, Player1, b.ActivePlayer())
		require.Equal(t, Player2, next.ActivePlayer())
		require.Equal(t, 1, next.MoveCount())
		require.Equal(t, Move{Row: 0, Col: 0}, next.LastMove(Player1))
		require.Equal(t, NoMove, next.LastMove(Player2))
	})

	t.Run("knight moves once placed", func(t *testing.T) {
		b := NewBoard(3, 3).Apply(Move{Row: 0, Col: 0}).Apply(Move{Row: 2, Col: 2})

		require.Equal(t, []Move{{1, 2}, {2, 1}}, b.LegalMoves())
		require.Equal(t, []Move{{0, 1}, {1, 0}}, b.PlayerMoves(Player2))
		loc, ok := b.Location(Player2)
		require.True(t, ok)
		require.Equal(t, Move{Row: 2, Col: 2}, loc)
	})

	t.Run("visited cells stay blocked", func(t *testing.T) {
		b := NewBoard(3, 3).Apply(Move{Row: 0, Col: 0}).Apply(Move{Row: 2, Col: 2}).Apply(Move{Row: 1, Col: 2})

		require.False(t, b.IsBlank(Move{Row: 0, Col: 0}))
		require.False(t, b.IsBlank(Move{Row: 1, Col: 2}))
		require.False(t, b.IsBlank(Move{Row: 3, Col: 0}), "Off the board is never blank")
		require.Equal(t, []Move{{0, 1}, {1, 0}}, b.LegalMoves())
	})

	t.Run("illegal move panics", func(t *testing.T) {
		b := NewBoard(3, 3).Apply(Move{Row: 0, Col: 0})

		require.Panics(t, func() { b.Apply(Move{Row: 0, Col: 0}) })
		require.Panics(t, func() { b.Apply(NoMove) })
	})

	t.Run("forecast matches apply", func(t *testing.T) {
		b := NewBoard(4, 4)

		require.Equal(t, b.Apply(Move{Row: 1, Col: 1}), b.Forecast(Move{Row: 1, Col: 1}))
	})
}

func TestWinnerLoser(t *testing.T) {
	// Player1 in the centre of a 3x3 board has no knight moves
	b := NewBoard(3, 3).Apply(Move{Row: 1, Col: 1}).Apply(Move{Row: 0, Col: 0})

	require.True(t, b.IsLoser(Player1))
	require.False(t, b.IsWinner(Player1))
	require.True(t, b.IsWinner(Player2))
	require.False(t, b.IsLoser(Player2))

	open := NewBoard(3, 3)
	require.False(t, open.IsLoser(Player1))
	require.False(t, open.IsWinner(Player2))
}

func TestBlock(t *testing.T) {
	b := NewBoard(3, 3).Block(Move{Row: 1, Col: 2}, Move{Row: 2, Col: 1}).Apply(Move{Row: 0, Col: 0})

	require.Equal(t, Player2, b.ActivePlayer())
	require.Len(t, b.BlankSpaces(), 6)
	require.Empty(t, b.PlayerMoves(Player1))
	require.Panics(t, func() { b.Block(Move{Row: -1, Col: 0}) })
}

func TestBoardString(t *testing.T) {
	b := NewBoard(2, 2).Block(Move{Row: 0, Col: 1}).Apply(Move{Row: 0, Col: 0}).Apply(Move{Row: 1, Col: 1})

	require.Equal(t, "| 1 | - | \n|   | 2 | \n", b.String())
}

func TestHash(t *testing.T) {
	a := NewBoard(4, 4).Apply(Move{Row: 0, Col: 0}).Apply(Move{Row: 3, Col: 3})
	b := NewBoard(4, 4).Apply(Move{Row: 0, Col: 0}).Apply(Move{Row: 3, Col: 3})
	c := NewBoard(4, 4).Apply(Move{Row: 3, Col: 3}).Apply(Move{Row: 0, Col: 0})

	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), c.Hash(), "Players sit on swapped cells")
	require.Equal(t, a.Hash(), a.Copy().Hash())
}
