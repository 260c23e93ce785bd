// internal/session/session.go
//
// Line-oriented play loop for a single game.
// Responsibilities:
//   - Print the current date and whose turn it is, then read a move kind.
//   - Run the day/month retry loops until a value is accepted.
//   - Report every rejected input with one uniform message.
//   - Announce the winner once the game reaches December 31st.
//
// Notes:
//   - All rule checks live in the game package; this file only does I/O.
//   - The concrete rejection reason is logged at debug level.

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/corndogit/day-of-the-year-game/internal/calendar"
	"github.com/corndogit/day-of-the-year-game/internal/game"
)

const (
	msgInvalid    = "Input invalid, please try again!"
	msgMoveKind   = "Do you want to increase the day or month? (day or month): "
	msgDayPrompt  = "Please type a valid day number for %s\n"
	msgMonthRange = "Please type a valid month number between %d and %d\n"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = fmt.Errorf("input closed before the game finished: %w", io.ErrUnexpectedEOF)

// Session drives one game from a line reader to a writer.
type Session struct {
	g   *game.Game
	in  *bufio.Scanner
	out io.Writer
}

// New constructs a Session reading commands from in and writing to out.
func New(g *game.Game, in io.Reader, out io.Writer) *Session {
	return &Session{g: g, in: bufio.NewScanner(in), out: out}
}

// Run plays until the game is won. It returns nil once a winner has been
// announced, or ErrInputClosed (or a read error) if input runs out first.
func (s *Session) Run() error {
	for !s.g.Finished() {
		s.printDate()
		fmt.Fprintf(s.out, "It is Player %d's Turn!\n", s.g.Turn)
		fmt.Fprint(s.out, msgMoveKind)

		line, err := s.readLine()
		if err != nil {
			return err
		}
		switch game.MoveKind(strings.ToLower(strings.TrimSpace(line))) {
		case game.MoveDay:
			err = s.dayMove()
		case game.MoveMonth:
			err = s.monthMove()
		default:
			log.Debug().Str("input", line).Msg("unknown move kind")
			s.invalid()
			continue
		}
		if err != nil {
			return err
		}
	}

	winner, _ := s.g.Winner()
	s.printDate()
	fmt.Fprintf(s.out, "Player %d is the winner of the game!\n", winner)
	log.Info().Int("winner", int(winner)).Int("moves", len(s.g.Moves)).Msg("game finished")
	return nil
}

// dayMove handles a "day" command. A guard failure returns to the move
// prompt without reading another line.
func (s *Session) dayMove() error {
	if err := s.g.CanMoveDay(); err != nil {
		s.reject(err)
		return nil
	}
	fmt.Fprintf(s.out, msgDayPrompt, calendar.MonthName(s.g.Month()))
	return s.retry(s.g.ApplyDay)
}

// monthMove handles a "month" command, see dayMove.
func (s *Session) monthMove() error {
	if err := s.g.CanMoveMonth(); err != nil {
		s.reject(err)
		return nil
	}
	fmt.Fprintf(s.out, msgMonthRange, s.g.Month(), calendar.MonthMax)
	return s.retry(s.g.ApplyMonth)
}

// retry reads lines until apply accepts one. The new date is printed by
// the next pass of Run.
func (s *Session) retry(apply func(int) error) error {
	for {
		line, err := s.readLine()
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			log.Debug().Str("input", line).Msg("not an integer")
			s.invalid()
			continue
		}
		if err := apply(n); err != nil {
			s.reject(err)
			continue
		}
		mv := s.g.Moves[len(s.g.Moves)-1]
		log.Debug().
			Int("player", int(mv.Player)).
			Str("kind", string(mv.Kind)).
			Str("from", calendar.Format(mv.From, false)).
			Str("to", calendar.Format(mv.To, false)).
			Msg("move accepted")
		return nil
	}
}

func (s *Session) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", ErrInputClosed
}

func (s *Session) printDate() {
	fmt.Fprintf(s.out, "The current date is: %s\n", s.g.DateString())
}

func (s *Session) reject(err error) {
	ev := log.Debug().Err(err)
	if errors.Is(err, game.ErrNoDaysLeft) || errors.Is(err, game.ErrNoMonthsLeft) {
		ev = ev.Bool("guard", true)
	}
	ev.Msg("move rejected")
	s.invalid()
}

func (s *Session) invalid() {
	fmt.Fprintln(s.out, msgInvalid)
}
