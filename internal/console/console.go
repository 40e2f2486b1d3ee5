// apps/go-cli/internal/console/console.go
//
// Terminal front end for a single Wordle session.
// Responsibilities:
//   - Print the welcome banner and per-attempt prompt.
//   - Read one guess per line and apply it to the session.
//   - Re-prompt on invalid guesses without consuming an attempt.
//   - Render feedback and the final won/exhausted message.
//
// Notes:
//   - Reading is blocking and synchronous; a failed read ends the loop.
//   - The session is owned by the loop for its whole lifetime.

package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/lines"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
)

// ErrInputClosed is returned when input ends before the game is decided.
var ErrInputClosed = errors.New("input closed")

// Loop drives a session from line-oriented input.
type Loop struct {
	sess     *game.Session
	in       *lines.Reader
	out      io.Writer
	renderer render.Renderer
}

// New returns a loop reading guesses from in and writing to out.
func New(sess *game.Session, in io.Reader, out io.Writer, r render.Renderer) *Loop {
	return &Loop{sess: sess, in: lines.NewReader(in, lines.DefaultMax), out: out, renderer: r}
}

// Run plays the session to a terminal state and returns it.
// It returns ErrInputClosed if input ends first, or the read/render error.
func (l *Loop) Run() (game.State, error) {
	cfg := l.sess.Config()
	l.printf("Welcome to Wordle!\n")
	l.printf("Guess the %d-letter word. You have %d attempts.\n", cfg.WordLength, cfg.MaxAttempts)

	for !l.sess.State().Terminal() {
		l.printf("Attempt %d of %d: ", l.sess.Attempts()+1, cfg.MaxAttempts)

		line, overlong, err := l.readLine()
		if err != nil {
			return l.sess.State(), err
		}

		var fb game.Feedback
		if overlong {
			err = game.ErrInvalidGuess
		} else {
			fb, err = l.sess.Apply(line)
		}
		if errors.Is(err, game.ErrInvalidGuess) {
			log.Debug().Int("len", len(line)).Bool("overlong", overlong).Msg("rejected guess")
			l.printf("Please enter a %d-letter word.\n", cfg.WordLength)
			continue
		}
		if err != nil {
			return l.sess.State(), err
		}

		turns := l.sess.Turns()
		if err := l.renderer.Render(turns[len(turns)-1].Guess, fb); err != nil {
			return l.sess.State(), fmt.Errorf("render: %w", err)
		}
	}

	switch l.sess.State() {
	case game.Won:
		l.printf("Congratulations! You've guessed the word!\n")
	case game.Exhausted:
		l.printf("Sorry, you've run out of attempts. The word was '%s'.\n", l.sess.Secret().Upper())
	}
	log.Info().
		Str("state", l.sess.State().String()).
		Int("attempts", l.sess.Attempts()).
		Int("guesses", len(l.sess.Turns())).
		Msg("session finished")
	return l.sess.State(), nil
}

// readLine returns the next input line; overlong lines come back flagged
// and empty.
func (l *Loop) readLine() (string, bool, error) {
	line, overlong, err := l.in.Next()
	if errors.Is(err, io.EOF) {
		l.printf("\n")
		return "", false, ErrInputClosed
	}
	if err != nil {
		return "", false, fmt.Errorf("read guess: %w", err)
	}
	return line, overlong, nil
}

func (l *Loop) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}
