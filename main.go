// main.go
//
// Entry point for the day-of-the-year game.
//
//	dategame [<day> <month>]
//
// Two players take turns advancing a date by day or by month; whoever
// reaches December 31st wins. Game text goes to stdout, logs to stderr.
//
// Environment (optionally from .env):
//
//	LOG_LEVEL      zerolog level, default "info"
//	DATEGAME_YEAR  play in this year instead of the current one
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/corndogit/day-of-the-year-game/internal/config"
	"github.com/corndogit/day-of-the-year-game/internal/game"
	"github.com/corndogit/day-of-the-year-game/internal/session"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	year, err := config.Year(time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg, err := config.Parse(os.Args[1:], year)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid start date")
	}

	g := game.New(cfg)
	log.Debug().Int("year", cfg.Year).Str("start", g.DateString()).Msg("starting game")
	if err := session.New(g, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
