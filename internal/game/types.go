// internal/game/types.go
//
// Core type definitions for the date game engine.
// Defines:
//   - Player: whose turn it is (1 or 2).
//   - MoveKind: which part of the date a move advances.
//   - Move: one accepted move, as recorded in the game history.
//   - Game: state for a single in-progress or finished game.

package game

import "cloudeng.io/datetime"

// Player identifies one of the two players.
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// MoveKind is the part of the date a move advances.
type MoveKind string

const (
	MoveDay   MoveKind = "day"
	MoveMonth MoveKind = "month"
)

// Move records an accepted move.
type Move struct {
	Player Player
	Kind   MoveKind
	From   datetime.CalendarDate
	To     datetime.CalendarDate
}

// Game holds the state of a single game.
type Game struct {
	date    datetime.CalendarDate // Current date; only ever advances.
	win     datetime.CalendarDate // December 31st of the game year.
	Turn    Player                // Player to move (the winner once finished).
	Ordinal bool                  // Display days with ordinal suffixes.
	Moves   []Move                // Accepted moves, oldest first.
}
