package game

import (
	"errors"
	"strings"
	"testing"
)

func marks(s string) Feedback {
	out := make(Feedback, len(s))
	for i, c := range s {
		switch c {
		case 'H':
			out[i] = MarkHit
		case 'P':
			out[i] = MarkPresent
		default:
			out[i] = MarkMiss
		}
	}
	return out
}

func equalFeedback(a, b Feedback) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScore(t *testing.T) {
	cases := []struct {
		secret, guess string
		want          string
	}{
		{"crane", "trace", "MHPPH"},
		{"apple", "paper", "PPHPM"},
		{"crane", "crane", "HHHHH"},
		{"crane", "build", "MMMMM"},
		{"abbey", "babes", "PPHHM"},
		{"robot", "ooooo", "MHMHM"},
		{"speed", "eerie", "PPMMM"},
		{"lever", "eeeee", "MHMHM"},
		{"aabbb", "bbaaa", "PPPPM"},
	}
	for _, tc := range cases {
		t.Run(tc.secret+"/"+tc.guess, func(t *testing.T) {
			got := Score(Word(tc.secret), Word(tc.guess))
			if want := marks(tc.want); !equalFeedback(got, want) {
				t.Fatalf("Score(%q, %q) = %v, want %v", tc.secret, tc.guess, got, want)
			}
		})
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	pairs := [][2]string{{"crane", "trace"}, {"apple", "paper"}, {"abbey", "babes"}}
	for _, p := range pairs {
		base := Score(Word(p[0]), Word(p[1]))
		variants := [][2]string{
			{strings.ToUpper(p[0]), p[1]},
			{p[0], strings.ToUpper(p[1])},
			{strings.ToUpper(p[0]), strings.ToUpper(p[1])},
			{strings.ToUpper(p[0][:1]) + p[0][1:], p[1][:2] + strings.ToUpper(p[1][2:])},
		}
		for _, v := range variants {
			if got := Score(Word(v[0]), Word(v[1])); !equalFeedback(got, base) {
				t.Fatalf("Score(%q, %q) = %v, want %v", v[0], v[1], got, base)
			}
		}
	}
}

// Every generated pair checks the length, self-match and per-letter credit
// bounds.
func TestScoreProperties(t *testing.T) {
	alphabet := "abe"
	var all []string
	var gen func(prefix string)
	gen = func(prefix string) {
		if len(prefix) == 5 {
			all = append(all, prefix)
			return
		}
		for i := 0; i < len(alphabet); i++ {
			gen(prefix + alphabet[i:i+1])
		}
	}
	gen("")

	for _, secret := range all {
		self := Score(Word(secret), Word(secret))
		if !self.Solved() {
			t.Fatalf("Score(%q, %q) = %v, want all hits", secret, secret, self)
		}
		for _, guess := range all {
			fb := Score(Word(secret), Word(guess))
			if len(fb) != len(guess) {
				t.Fatalf("len(Score(%q, %q)) = %d, want %d", secret, guess, len(fb), len(guess))
			}
			credits := map[byte]int{}
			for i, m := range fb {
				if m != MarkMiss {
					credits[guess[i]]++
				}
				if m == MarkHit && guess[i] != secret[i] {
					t.Fatalf("Score(%q, %q): hit at %d on different letters", secret, guess, i)
				}
			}
			for c, n := range credits {
				if have := strings.Count(secret, string(c)); n > have {
					t.Fatalf("Score(%q, %q): %d credits for %q, secret has %d", secret, guess, n, c, have)
				}
			}
		}
	}
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("  CrAnE \n", 5)
	if err != nil {
		t.Fatalf("ParseWord: %v", err)
	}
	if w != "crane" {
		t.Fatalf("ParseWord = %q, want crane", w)
	}
	for _, in := range []string{"", "cran", "cranes", "cr4ne", "crân"} {
		if _, err := ParseWord(in, 5); !errors.Is(err, ErrInvalidGuess) {
			t.Fatalf("ParseWord(%q) err = %v, want ErrInvalidGuess", in, err)
		}
	}
}

func TestParseWordRejectsNonASCIIFolding(t *testing.T) {
	// U+212A KELVIN SIGN lowercases to ASCII 'k' under Unicode rules.
	for _, n := range []int{5, 7} {
		if w, err := ParseWord("\u212Arane", n); !errors.Is(err, ErrInvalidGuess) {
			t.Fatalf("ParseWord(kelvin, %d) = %q, %v; want ErrInvalidGuess", n, w, err)
		}
	}
	if _, err := ParseWord("cr\u00e9ne", 6); !errors.Is(err, ErrInvalidGuess) {
		t.Fatalf("ParseWord with e-acute err = %v, want ErrInvalidGuess", err)
	}
}

func newSession(t *testing.T, secret string) *Session {
	t.Helper()
	s, err := NewSession(Word(secret), DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	if _, err := NewSession("cat", DefaultConfig()); err == nil {
		t.Fatal("expected error for short secret")
	}
	if _, err := NewSession("crane", Config{WordLength: 5}); err == nil {
		t.Fatal("expected error for zero attempts")
	}
}

func TestSessionWin(t *testing.T) {
	s := newSession(t, "crane")
	if s.State() != AwaitingGuess || s.Attempts() != 0 {
		t.Fatalf("initial state = %v/%d", s.State(), s.Attempts())
	}
	if _, err := s.Apply("trace"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	fb, err := s.Apply("CRANE")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !fb.Solved() {
		t.Fatalf("feedback = %v, want all hits", fb)
	}
	if s.State() != Won {
		t.Fatalf("state = %v, want won", s.State())
	}
	if s.Attempts() != 1 {
		t.Fatalf("attempts = %d, want 1", s.Attempts())
	}
	if _, err := s.Apply("crane"); !errors.Is(err, ErrSessionOver) {
		t.Fatalf("Apply after win err = %v, want ErrSessionOver", err)
	}
	if n := len(s.Turns()); n != 2 {
		t.Fatalf("turns = %d, want 2", n)
	}
}

func TestSessionExhausted(t *testing.T) {
	s := newSession(t, "crane")
	for i := 0; i < DefaultMaxAttempts; i++ {
		if s.State() != AwaitingGuess {
			t.Fatalf("guess %d: state = %v, want awaiting", i, s.State())
		}
		if _, err := s.Apply("build"); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	if s.State() != Exhausted {
		t.Fatalf("state = %v, want exhausted", s.State())
	}
	if s.Attempts() != DefaultMaxAttempts {
		t.Fatalf("attempts = %d, want %d", s.Attempts(), DefaultMaxAttempts)
	}
}

func TestSessionInvalidLengthKeepsAttempts(t *testing.T) {
	s := newSession(t, "crane")
	if _, err := s.Apply("build"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, g := range []string{"", "crane!", "cran", "cranes", "abcdef"} {
		if _, err := s.Apply(g); !errors.Is(err, ErrInvalidGuess) {
			t.Fatalf("Apply(%q) err = %v, want ErrInvalidGuess", g, err)
		}
		if s.Attempts() != 1 || s.State() != AwaitingGuess {
			t.Fatalf("Apply(%q) changed session: attempts=%d state=%v", g, s.Attempts(), s.State())
		}
	}
}

func TestSessionCustomConfig(t *testing.T) {
	s, err := NewSession("tea", Config{WordLength: 3, MaxAttempts: 2})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Apply("crane"); !errors.Is(err, ErrInvalidGuess) {
		t.Fatalf("five letters on a three-letter board: err = %v", err)
	}
	_, _ = s.Apply("eat")
	_, _ = s.Apply("ate")
	if s.State() != Exhausted {
		t.Fatalf("state = %v, want exhausted", s.State())
	}
}
