package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"Investle/internal/catalog"
	"Investle/internal/config"
	"Investle/internal/daily"
	"Investle/internal/game"
	"Investle/internal/render"
	"Investle/internal/suggest"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	setupLogger(cfg)

	// Pick catalog source
	var src catalog.Source
	switch {
	case cfg.Catalog.SQLitePath != "":
		src = catalog.NewSQLiteSource(cfg.Catalog.SQLitePath)
	case cfg.Catalog.CSVPath != "":
		src = catalog.NewCSVSource(cfg.Catalog.CSVPath)
	default:
		src = catalog.NewJSONSource(cfg.Catalog.JSONPath)
	}

	entities, err := src.Load()
	if err != nil {
		log.Fatal().Err(err).Str("source", src.Name()).Msg("load catalog")
	}
	cat, err := catalog.New(entities)
	if err != nil {
		log.Fatal().Err(err).Msg("build catalog")
	}
	log.Info().Str("source", src.Name()).Int("entities", cat.Len()).Msg("catalog loaded")

	// Optional suggestion engine
	var sugg *suggest.Engine
	if cfg.Suggest.Limit > 0 {
		sugg, err = suggest.NewEngine(cat)
		if err != nil {
			log.Warn().Err(err).Msg("suggestions disabled")
			sugg = nil
		} else {
			defer sugg.Close()
		}
	}

	now := time.Now()
	sess, err := game.NewSession(cat, now)
	if err != nil {
		log.Fatal().Err(err).Msg("start session")
	}
	log.Debug().Str("session", sess.ID().String()).Msg("session started")

	dayIdx, err := daily.DayIndex(now)
	if err != nil {
		log.Fatal().Err(err).Msg("compute day index")
	}

	fmt.Printf("Investle #%d — guess the mystery stock in %d tries.\n", dayIdx+1, game.MaxGuesses)
	fmt.Println("Type a ticker or company name; \"quit\" to give up.")
	fmt.Println()

	play(sess, sugg, cfg.Suggest.Limit)
}

// play runs the interactive guess loop until the session is terminal or the
// player quits.
func play(sess *game.Session, sugg *suggest.Engine, suggestLimit int) {
	var rows []string

	scanner := bufio.NewScanner(os.Stdin)
	for !sess.Over() {
		fmt.Printf("guess %d/%d> ", len(sess.Guesses())+1, game.MaxGuesses)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		input := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(input), "quit") {
			fmt.Println("Giving up. Come back tomorrow!")
			return
		}

		res, err := sess.Submit(input)
		switch {
		case errors.Is(err, game.ErrInvalidInput):
			fmt.Println("Type a ticker or company name.")
			continue
		case errors.Is(err, game.ErrUnknownEntity):
			fmt.Println("Stock not in the Investle universe.")
			if sugg != nil {
				if s := render.Suggestions(sugg.Suggest(input, suggestLimit)); s != "" {
					fmt.Print(s)
				}
			}
			continue
		case errors.Is(err, game.ErrDuplicateGuess):
			fmt.Println("You already guessed that stock.")
			continue
		case errors.Is(err, game.ErrBudgetExhausted), errors.Is(err, game.ErrSessionOver):
			fmt.Println("You've used all guesses.")
			return
		case err != nil:
			log.Error().Err(err).Msg("submit guess")
			return
		}

		rows = append(rows, render.Row(res.Guess, res.Comparison))

		fmt.Println()
		fmt.Println(render.Header())
		for _, line := range rows {
			fmt.Println(line)
		}
		fmt.Printf("%d / %d guesses used\n\n", len(sess.Guesses()), game.MaxGuesses)

		if res.State == game.StateContinuing {
			fmt.Println("Keep going!")
		}
	}

	if secret, ok := sess.Secret(); ok {
		fmt.Println(render.Reveal(secret, sess.State() == game.StateWon))
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
