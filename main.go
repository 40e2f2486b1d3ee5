// apps/go-cli/main.go
//
// Entrypoint for the terminal Wordle game.
// Loads configuration, picks the secret from the word list, then hands an
// explicitly constructed session to the console loop.
//
// Exit status is 0 for both won and exhausted games; only configuration or
// word list failures exit non-zero.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !render.IsTerminal(os.Stderr)})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	secret, err := pickSecret(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to choose a secret word")
	}

	sess, err := game.NewSession(secret, cfg.Game())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	loop := console.New(sess, os.Stdin, os.Stdout, render.NewAuto(os.Stdout, cfg.ColorDisabled()))
	if _, err := loop.Run(); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			fmt.Println("Goodbye!")
			return
		}
		log.Error().Err(err).Msg("game aborted")
	}
}

// pickSecret loads the configured word list and selects the session secret.
func pickSecret(cfg *config.Config) (game.Word, error) {
	src := words.SourceFor(cfg.WordsFile)
	list, err := words.Load(src, cfg.WordLength)
	if err != nil {
		return "", err
	}
	log.Info().Str("source", src.Name()).Int("words", len(list)).Msg("word list loaded")

	var p words.Picker
	switch cfg.Mode {
	case config.ModeDaily:
		p = words.NewDailyPicker(list, cfg.DailySalt)
	default:
		p = words.NewRandomPicker(list)
	}
	log.Debug().Str("mode", cfg.Mode).Msg("picking secret")
	return p.Pick()
}
