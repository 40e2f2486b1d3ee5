// Package lines reads newline-delimited text with a bound on line length.
//
// Lines longer than the bound are drained and reported as overlong instead
// of failing the whole read, so one bad line never ends a game or a load.
package lines

import (
	"bufio"
	"errors"
	"io"
)

// DefaultMax is the longest line kept in full.
const DefaultMax = 4096

// Reader yields one line at a time.
type Reader struct {
	br  *bufio.Reader
	max int
}

// NewReader returns a Reader over r keeping lines of at most max bytes.
// A max of zero or less uses DefaultMax.
func NewReader(r io.Reader, max int) *Reader {
	if max <= 0 {
		max = DefaultMax
	}
	return &Reader{br: bufio.NewReader(r), max: max}
}

// Next returns the next line without its line ending. When the line is
// longer than the bound, overlong is true and line is empty. At end of
// input it returns io.EOF.
func (r *Reader) Next() (line string, overlong bool, err error) {
	var buf []byte
	read := false
	for {
		frag, isPrefix, rerr := r.br.ReadLine()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) && read {
				return r.finish(buf, overlong), overlong, nil
			}
			return "", false, rerr
		}
		read = true
		if !overlong {
			if len(buf)+len(frag) > r.max {
				overlong, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			return r.finish(buf, overlong), overlong, nil
		}
	}
}

func (r *Reader) finish(buf []byte, overlong bool) string {
	if overlong {
		return ""
	}
	return string(buf)
}
