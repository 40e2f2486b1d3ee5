// apps/go-cli/internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create sessions with configurable dimensions (default 6x5).
//   - Validate and apply guesses (length, alphabetic).
//   - Score guesses using the classic two-pass Wordle algorithm.
//   - Track state transitions: awaiting guess → won/exhausted.
//
// Notes:
//   - The secret is supplied by the caller (see the words package); the
//     engine never picks or stores words globally.
//   - A rejected guess leaves the session untouched.
package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidGuess is returned for guesses that are not exactly
	// WordLength ASCII letters. It is recoverable: no attempt is consumed.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrSessionOver is returned when guessing after a terminal state.
	ErrSessionOver = errors.New("session over")
)

// ParseWord trims s and checks it is exactly n ASCII letters, folding them
// to lowercase byte by byte. Non-ASCII input is rejected before folding.
func ParseWord(s string, n int) (Word, error) {
	t := strings.TrimSpace(s)
	if len(t) != n {
		return "", fmt.Errorf("%w: want %d letters, got %q", ErrInvalidGuess, n, s)
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = lower(t[i])
	}
	if !isAlpha(string(b)) {
		return "", fmt.Errorf("%w: want %d letters, got %q", ErrInvalidGuess, n, s)
	}
	return Word(b), nil
}

// NewSession constructs a session for secret. The secret must already be a
// valid word of cfg.WordLength letters.
func NewSession(secret Word, cfg Config) (*Session, error) {
	if cfg.WordLength <= 0 || cfg.MaxAttempts <= 0 {
		return nil, fmt.Errorf("game: invalid config %+v", cfg)
	}
	w, err := ParseWord(string(secret), cfg.WordLength)
	if err != nil {
		return nil, fmt.Errorf("game: secret: %w", err)
	}
	return &Session{secret: w, cfg: cfg, state: AwaitingGuess}, nil
}

// Apply validates and scores a guess, mutating the session state.
//
// State transitions:
//   - All tiles Hit → Won.
//   - Otherwise attempts is incremented; reaching MaxAttempts → Exhausted.
func (s *Session) Apply(guess string) (Feedback, error) {
	if s.state.Terminal() {
		return nil, ErrSessionOver
	}
	w, err := ParseWord(guess, s.cfg.WordLength)
	if err != nil {
		return nil, err
	}

	fb := Score(s.secret, w)
	s.turns = append(s.turns, Turn{Guess: w, Feedback: fb})

	if fb.Solved() {
		s.state = Won
		return fb, nil
	}
	s.attempts++
	if s.attempts >= s.cfg.MaxAttempts {
		s.state = Exhausted
	}
	return fb, nil
}

// Secret returns the word being guessed.
func (s *Session) Secret() Word { return s.secret }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Attempts returns the number of non-winning guesses made.
func (s *Session) Attempts() int { return s.attempts }

// Config returns the session dimensions.
func (s *Session) Config() Config { return s.cfg }

// Turns returns a copy of the scored guesses so far.
func (s *Session) Turns() []Turn {
	return append([]Turn(nil), s.turns...)
}

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit and consume that secret position.
//
// Pass 2:
//   - For each non-hit guess letter, consume the leftmost unconsumed secret
//     position holding the same letter and mark Present; otherwise Miss.
//
// Consumption is tracked on the secret's positions, so each secret letter
// earns at most one Hit or Present. Inputs of unequal length are scored
// over the guess length, with secret positions past its end never matching.
func Score(secret, guess Word) Feedback {
	n := len(guess)
	res := make(Feedback, n)
	used := make([]bool, len(secret))

	for i := 0; i < n && i < len(secret); i++ {
		if lower(guess[i]) == lower(secret[i]) {
			res[i] = MarkHit
			used[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		c := lower(guess[i])
		for j := 0; j < len(secret); j++ {
			if !used[j] && lower(secret[j]) == c {
				res[i] = MarkPresent
				used[j] = true
				break
			}
		}
	}
	return res
}

// lower folds an ASCII letter to lowercase.
func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
