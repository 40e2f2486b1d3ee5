// Package daily derives the date-keyed word for daily mode.
//
// words.DailyPicker calls WordIndex with the loaded list length and the
// configured WORDLE_DAILY_SALT, so every player on the same UTC date gets
// the same secret while the salt keeps the sequence unguessable from the
// list alone.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the UTC date of t,
// computed as HMAC-SHA256(salt, YYYY-MM-DD) mod n. It returns 0 when n is
// not positive, so callers must reject empty lists themselves.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
