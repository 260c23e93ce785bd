// internal/config/config.go
//
// Startup configuration for a single game.
// Responsibilities:
//   - Parse the optional "<day> <month>" positional arguments.
//   - Resolve the game year (wall clock, or DATEGAME_YEAR when set).
//
// Rules:
//   - No arguments: the game starts on January 1st and days print without
//     ordinal suffixes.
//   - Exactly two integer arguments forming a valid date in the game year:
//     the game starts there and days print with ordinal suffixes.
//   - Anything else is fatal. All problems found are reported together.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"

	"github.com/corndogit/day-of-the-year-game/internal/calendar"
)

// YearEnv overrides the wall-clock year when set.
const YearEnv = "DATEGAME_YEAR"

var (
	ErrUsage       = errors.New("usage: dategame [<day> <month>]")
	ErrNotInteger  = errors.New("not an integer")
	ErrInvalidDate = errors.New("invalid start date")
)

// Config holds everything a game needs before its first turn.
type Config struct {
	Year    int  // Fixed game year; the target is December 31st of it.
	Day     int  // Starting day of month.
	Month   int  // Starting month (1-12).
	Ordinal bool // Print days as "1st", "2nd"... (explicit start date only).
}

// Default returns the configuration used when no start date is given.
func Default(year int) Config {
	return Config{Year: year, Day: calendar.DayMin, Month: calendar.MonthMin}
}

// Parse interprets the positional arguments for a game played in year.
func Parse(args []string, year int) (Config, error) {
	switch len(args) {
	case 0:
		return Default(year), nil
	case 2:
	default:
		return Config{}, fmt.Errorf("%w: got %d arguments, want 0 or 2", ErrUsage, len(args))
	}

	errs := &errors.M{}
	day, err := parseInt("day", args[0])
	errs.Append(err)
	month, err := parseInt("month", args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return Config{}, err
	}
	if _, err := calendar.Date(year, month, day); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return Config{Year: year, Day: day, Month: month, Ordinal: true}, nil
}

func parseInt(name, val string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, val, ErrNotInteger)
	}
	return n, nil
}

// Year returns the game year: DATEGAME_YEAR if set, otherwise now's year.
func Year(now time.Time) (int, error) {
	v := os.Getenv(YearEnv)
	if v == "" {
		return now.Year(), nil
	}
	y, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || y < 1 {
		return 0, fmt.Errorf("%s=%q: want a positive year", YearEnv, v)
	}
	return y, nil
}
