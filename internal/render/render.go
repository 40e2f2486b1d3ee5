// apps/go-cli/internal/render/render.go
//
// Terminal output of scored guesses.
// Renderers print one line per guess, letters uppercased, each letter styled
// by its Mark:
//   - ANSI:  green / yellow / grey background with white text.
//   - Plain: [X] hit, (X) present, " X " miss.
//
// NewAuto picks ANSI only when the output is a terminal and color is not
// disabled (NO_COLOR), and wraps it with go-colorable for Windows consoles.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ANSI escape codes for colors.
const (
	resetColor       = "\033[0m"
	greenBackground  = "\033[42m"
	yellowBackground = "\033[43m"
	greyBackground   = "\033[100m"
	whiteText        = "\033[97m"
)

// Renderer displays a guess with its feedback.
type Renderer interface {
	Render(guess game.Word, fb game.Feedback) error
}

// ANSI renders colored tiles.
type ANSI struct {
	w io.Writer
}

// NewANSI returns a colored renderer writing to w.
func NewANSI(w io.Writer) *ANSI { return &ANSI{w: w} }

func (r *ANSI) Render(guess game.Word, fb game.Feedback) error {
	var b strings.Builder
	b.WriteString("Result: ")
	for i, c := range guess.Upper() {
		bg := greyBackground
		switch markAt(fb, i) {
		case game.MarkHit:
			bg = greenBackground
		case game.MarkPresent:
			bg = yellowBackground
		}
		fmt.Fprintf(&b, "%s%s%c%s ", bg, whiteText, c, resetColor)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Plain renders tiles with bracket markers and no escape codes.
type Plain struct {
	w io.Writer
}

// NewPlain returns an uncolored renderer writing to w.
func NewPlain(w io.Writer) *Plain { return &Plain{w: w} }

func (r *Plain) Render(guess game.Word, fb game.Feedback) error {
	var b strings.Builder
	b.WriteString("Result: ")
	for i, c := range guess.Upper() {
		switch markAt(fb, i) {
		case game.MarkHit:
			fmt.Fprintf(&b, "[%c]", c)
		case game.MarkPresent:
			fmt.Fprintf(&b, "(%c)", c)
		default:
			fmt.Fprintf(&b, " %c ", c)
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(r.w, b.String())
	return err
}

// NewAuto chooses a renderer for f, which is normally os.Stdout.
func NewAuto(f *os.File, noColor bool) Renderer {
	if noColor || !IsTerminal(f) {
		return NewPlain(f)
	}
	return NewANSI(colorable.NewColorable(f))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func markAt(fb game.Feedback, i int) game.Mark {
	if i < len(fb) {
		return fb[i]
	}
	return game.MarkMiss
}
