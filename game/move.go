package game

import "fmt"

// Move is a board coordinate. NoMove means "no move available" or, for a
// player, "not placed yet".
type Move struct {
	Row int
	Col int
}

var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
