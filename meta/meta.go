// meta/meta.go
package meta

import "time"

// TimerThreshold is the time left (in milliseconds) at which a search aborts.
const TimerThreshold = 10.0

// TimeLimit is the time an agent gets for each move.
const TimeLimit = 150 * time.Millisecond

// BoardSize is the default width and height of the board.
const BoardSize = 7

// NumGames is the number of fair matches (two games each) per matchup.
const NumGames = 5

// OpeningMoves are played at random before agents take over.
const OpeningMoves = 2
