// apps/go-cli/internal/words/words.go
//
// Provides word list loading and secret selection for the game engine.
//
// Responsibilities:
//   - Open a word list from a file or fall back to the embedded default.
//   - Keep only entries of the configured length made of ASCII letters.
//   - Supply Pickers that choose the secret (random or daily).
//
// Word list format:
//   - One candidate word per line.
//   - Blank lines and lines starting with '#' are skipped.
//   - Entries are trimmed and normalized to lowercase.
//
// Errors:
//   - ErrSourceUnavailable: the list cannot be opened or read.
//   - ErrNoValidWords: the list has no entries of the required length.
//
// Both are fatal to the caller: without a secret there is no game.

package words

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/lines"
)

var (
	ErrSourceUnavailable = errors.New("words: source unavailable")
	ErrNoValidWords      = errors.New("words: no valid words")
)

// Source is a word list resource.
type Source interface {
	// Open returns a reader over the list. The caller closes it.
	Open() (io.ReadCloser, error)
	// Name identifies the source in logs and errors.
	Name() string
}

// FileSource reads a word list from the filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open() (io.ReadCloser, error) { return os.Open(s.Path) }
func (s FileSource) Name() string                 { return s.Path }

// EmbeddedSource reads the default list compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Open() (io.ReadCloser, error) { return assets.OpenWords() }
func (EmbeddedSource) Name() string                 { return "embedded:" + assets.WordsFile }

// SourceFor returns a FileSource for path, or the embedded list if path is empty.
func SourceFor(path string) Source {
	if path == "" {
		return EmbeddedSource{}
	}
	return FileSource{Path: path}
}

// Load reads every valid n-letter word from src, in order.
// Duplicates are kept; they only weight the random draw.
func Load(src Source, n int) ([]game.Word, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, src.Name(), err)
	}
	defer rc.Close()

	out, err := readWords(rc, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, src.Name(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s has no %d-letter entries", ErrNoValidWords, src.Name(), n)
	}
	return out, nil
}

// readWords reads one word per line, trimming and lowercasing,
// and keeps only valid n-letter alphabetic words. Overlong lines are
// skipped like any other invalid entry.
func readWords(r io.Reader, n int) ([]game.Word, error) {
	var out []game.Word
	lr := lines.NewReader(r, lines.DefaultMax)
	for {
		raw, overlong, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		line := strings.TrimSpace(raw)
		if overlong || line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := game.ParseWord(line, n)
		if err != nil {
			continue
		}
		out = append(out, w)
	}
}
