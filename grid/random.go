package grid

import (
	cryptorand "crypto/rand"
	"math/rand"
)

// Random is the engine's single PRNG: a 256-byte cursor buffer refilled
// once per tick. Every stochastic choice in the cellular-automaton rules
// and the tick scheduler's skip roll draws from the same stream,
// matching the original's Dim struct. By default the refill pulls from
// an OS entropy source; when built with NewSeededRandom, it instead
// pulls from a deterministic math/rand stream derived from the seed, so
// spec.md §5's "identically seeded instances produce identical grids"
// guarantee has somewhere to live.
type Random struct {
	buf    [256]byte
	cursor int
	src    *rand.Rand // non-nil once seeded: refills become deterministic
}

// NewRandom builds a Random seeded from OS entropy, seeding it
// immediately. This is the default, non-reproducible mode.
func NewRandom() *Random {
	r := &Random{}
	r.Reseed()
	return r
}

// NewSeededRandom builds a Random whose entire reseed stream is derived
// from seed. Two Randoms built from the same seed and driven through
// the same sequence of calls produce byte-for-byte identical output.
func NewSeededRandom(seed int64) *Random {
	r := &Random{src: rand.New(rand.NewSource(seed))}
	r.Reseed()
	return r
}

// Reseed refills the buffer and resets the cursor. Unseeded Randoms pull
// from the OS entropy source; if that read fails, the previous buffer is
// kept best-effort (determinism survives, randomness degrades for that
// tick). Seeded Randoms pull from their own deterministic stream, which
// never fails.
func (r *Random) Reseed() {
	var buf [256]byte
	if r.src != nil {
		r.src.Read(buf[:]) // math/rand.Rand.Read never returns an error
		r.buf = buf
		r.cursor = 0
		return
	}
	if _, err := cryptorand.Read(buf[:]); err == nil {
		r.buf = buf
	}
	r.cursor = 0
}

// Next advances the cursor (wrapping at 256) and returns the byte at the
// new position. The cursor is advanced before indexing, so index 0 is
// never read again until the buffer wraps all the way around.
func (r *Random) Next() byte {
	r.cursor = (r.cursor + 1) % 256
	return r.buf[r.cursor]
}

// Above reports whether the next byte is strictly greater than
// threshold — the "PRNG byte > T" idiom used throughout the per-material
// rules, approximating probability (255-T)/256.
func (r *Random) Above(threshold byte) bool {
	return r.Next() > threshold
}

// Below reports whether the next byte is strictly less than threshold,
// approximating probability T/256.
func (r *Random) Below(threshold byte) bool {
	return r.Next() < threshold
}

// Bool consumes one byte and returns its parity — used to pick between
// two equally eligible candidates.
func (r *Random) Bool() bool {
	return r.Next()%2 == 0
}

// IntN consumes one byte and returns a uniform value in [0, n). n must be
// in (0, 256].
func (r *Random) IntN(n int) int {
	return int(r.Next()) % n
}
