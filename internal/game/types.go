// apps/go-cli/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word: a normalized, fixed-length guess or secret.
//   - Mark / Feedback: per-letter result of a guess (hit/present/miss).
//   - State: coarse session state (awaiting guess, won, exhausted).
//   - Config: board dimensions (word length, attempt limit).
//   - Session: state for a single in-progress or finished game.

package game

import "strings"

const (
	DefaultWordLength  = 5
	DefaultMaxAttempts = 6
)

// Word is a lowercase ASCII word. Construct it with ParseWord.
type Word string

// Upper returns the word uppercased for display.
func (w Word) Upper() string { return strings.ToUpper(string(w)) }

// Mark represents the evaluation result for a single letter in a guess.
// The zero value is MarkMiss.
type Mark int

const (
	MarkMiss    Mark = iota // letter has no unconsumed occurrence in the secret
	MarkPresent             // letter is in the secret at another position
	MarkHit                 // letter is correct and in the correct position
)

func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	default:
		return "miss"
	}
}

// Feedback holds one Mark per guess position.
type Feedback []Mark

// Solved reports whether every position is a hit.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// State is the session's position in the game state machine.
type State int

const (
	AwaitingGuess State = iota
	Won
	Exhausted
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Exhausted:
		return "exhausted"
	default:
		return "awaiting_guess"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Exhausted }

// Config fixes the dimensions of a game.
type Config struct {
	WordLength  int // letters per word (L)
	MaxAttempts int // non-winning guesses allowed before the game is lost
}

// DefaultConfig returns the classic 5x6 board.
func DefaultConfig() Config {
	return Config{WordLength: DefaultWordLength, MaxAttempts: DefaultMaxAttempts}
}

// Turn records one scored guess.
type Turn struct {
	Guess    Word
	Feedback Feedback
}

// Session holds the state of a single Wordle game.
type Session struct {
	secret   Word
	cfg      Config
	attempts int // non-winning scored guesses so far
	state    State
	turns    []Turn // scored guesses in order
}
