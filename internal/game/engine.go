// internal/game/engine.go
//
// Core game engine for a single day-of-the-year game.
// Responsibilities:
//   - Create a game from its startup configuration.
//   - Validate and apply day and month moves.
//   - Track the turn and detect the winning move (December 31st).
//
// Notes:
//   - Validation never mutates; a rejected move leaves the game untouched.
//   - The turn toggles after every accepted move except the winning one,
//     so Turn names the winner once the game is finished.

package game

import (
	"errors"
	"fmt"

	"cloudeng.io/datetime"

	"github.com/corndogit/day-of-the-year-game/internal/calendar"
	"github.com/corndogit/day-of-the-year-game/internal/config"
)

var (
	ErrFinished        = errors.New("game finished")
	ErrNoDaysLeft      = errors.New("no later day left in this month")
	ErrNoMonthsLeft    = errors.New("no later month left in this year")
	ErrNotAfterCurrent = errors.New("value must be greater than the current one")
	ErrOutOfRange      = errors.New("value out of range")
	ErrMonthTooShort   = errors.New("month has fewer days than the current day")
)

// New constructs a game starting at cfg's date with Player 1 to move.
// cfg is expected to come from config.Parse and so name a valid date.
func New(cfg config.Config) *Game {
	return &Game{
		date:    datetime.CalendarDate{Year: cfg.Year, Month: datetime.Month(cfg.Month), Day: cfg.Day},
		win:     calendar.LastDay(cfg.Year),
		Turn:    PlayerOne,
		Ordinal: cfg.Ordinal,
	}
}

// Date returns the current game date.
func (g *Game) Date() datetime.CalendarDate { return g.date }

// WinDate returns the date that ends the game.
func (g *Game) WinDate() datetime.CalendarDate { return g.win }

// Finished reports whether the current date is the win date.
func (g *Game) Finished() bool { return g.date == g.win }

// Winner returns the winning player and true once the game is finished.
func (g *Game) Winner() (Player, bool) {
	if !g.Finished() {
		return 0, false
	}
	return g.Turn, true
}

// Day and Month are the current date's components as plain ints.
func (g *Game) Day() int   { return g.date.Day }
func (g *Game) Month() int { return int(g.date.Month) }

// DaysInMonth returns the length of the current month.
func (g *Game) DaysInMonth() int {
	return calendar.DaysInMonth(g.date.Year, g.Month())
}

// CanMoveDay reports whether any day move is possible. It fails when the
// current day is already the last one of the month.
func (g *Game) CanMoveDay() error {
	if g.Finished() {
		return ErrFinished
	}
	if g.Day() >= g.DaysInMonth() {
		return ErrNoDaysLeft
	}
	return nil
}

// CanMoveMonth reports whether any month move is possible. It fails in December.
func (g *Game) CanMoveMonth() error {
	if g.Finished() {
		return ErrFinished
	}
	if g.Month() >= calendar.MonthMax {
		return ErrNoMonthsLeft
	}
	return nil
}

// ValidateDay checks a day move to day without applying it.
func (g *Game) ValidateDay(day int) error {
	if err := g.CanMoveDay(); err != nil {
		return err
	}
	if day <= g.Day() {
		return fmt.Errorf("day %d: %w", day, ErrNotAfterCurrent)
	}
	if !calendar.IsValid(g.date.Year, g.Month(), day) {
		return fmt.Errorf("day %d not in 1-%d: %w", day, g.DaysInMonth(), ErrOutOfRange)
	}
	return nil
}

// ValidateMonth checks a month move to month without applying it. The day
// is kept, so the target month must be at least as long as the current day.
func (g *Game) ValidateMonth(month int) error {
	if err := g.CanMoveMonth(); err != nil {
		return err
	}
	if month <= g.Month() {
		return fmt.Errorf("month %d: %w", month, ErrNotAfterCurrent)
	}
	if month > calendar.MonthMax {
		return fmt.Errorf("month %d not in 1-%d: %w", month, calendar.MonthMax, ErrOutOfRange)
	}
	if n := calendar.DaysInMonth(g.date.Year, month); n < g.Day() {
		return fmt.Errorf("%s has %d days, current day is %d: %w",
			calendar.MonthName(month), n, g.Day(), ErrMonthTooShort)
	}
	return nil
}

// ApplyDay validates and applies a day move.
func (g *Game) ApplyDay(day int) error {
	if err := g.ValidateDay(day); err != nil {
		return err
	}
	to := g.date
	to.Day = day
	g.advance(MoveDay, to)
	return nil
}

// ApplyMonth validates and applies a month move.
func (g *Game) ApplyMonth(month int) error {
	if err := g.ValidateMonth(month); err != nil {
		return err
	}
	to := g.date
	to.Month = datetime.Month(month)
	g.advance(MoveMonth, to)
	return nil
}

// advance records the move, sets the new date and hands the turn over
// unless the move won the game.
func (g *Game) advance(kind MoveKind, to datetime.CalendarDate) {
	g.Moves = append(g.Moves, Move{Player: g.Turn, Kind: kind, From: g.date, To: to})
	g.date = to
	if !g.Finished() {
		g.Turn = g.Turn.Other()
	}
}

// DateString renders the current date for display.
func (g *Game) DateString() string {
	return calendar.Format(g.date, g.Ordinal)
}
