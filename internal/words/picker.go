package words

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Picker chooses the secret for a session.
type Picker interface {
	Pick() (game.Word, error)
}

// RandomPicker draws a uniformly random word.
type RandomPicker struct {
	Words []game.Word
	Rand  io.Reader // entropy source; crypto/rand.Reader when nil
}

// NewRandomPicker returns a RandomPicker over list.
func NewRandomPicker(list []game.Word) *RandomPicker {
	return &RandomPicker{Words: list}
}

// Pick returns a cryptographically random word from the list.
func (p *RandomPicker) Pick() (game.Word, error) {
	if len(p.Words) == 0 {
		return "", ErrNoValidWords
	}
	r := p.Rand
	if r == nil {
		r = rand.Reader
	}
	nBig, err := rand.Int(r, big.NewInt(int64(len(p.Words))))
	if err != nil {
		return "", fmt.Errorf("words: random index: %w", err)
	}
	return p.Words[nBig.Int64()], nil
}

// DailyPicker returns the same word for everyone on a given UTC date.
type DailyPicker struct {
	Words []game.Word
	Salt  string
	Now   func() time.Time // time.Now when nil
}

// NewDailyPicker returns a DailyPicker over list keyed by salt.
func NewDailyPicker(list []game.Word, salt string) *DailyPicker {
	return &DailyPicker{Words: list, Salt: salt}
}

func (p *DailyPicker) Pick() (game.Word, error) {
	if len(p.Words) == 0 {
		return "", ErrNoValidWords
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return p.Words[daily.WordIndex(now(), p.Salt, len(p.Words))], nil
}
