package benchdevice

import (
	"fmt"
	"io"

	introsort "github.com/kart81604/gosort"
)

// MaxElements bounds the position a Source will clamp Seek into, mirroring
// the fixed "end" a character device reports for SEEK_END.
const MaxElements = 1 << 20

// Source is a read-only stream modeled on the original benchmark's
// character device: position P means "sort P+1 freshly generated random
// elements," and the result of a read is smuggled out as the return value
// rather than delivered through the caller's buffer. Read reproduces that
// contract exactly: its returned n is a comparison count, not a byte count,
// and p's contents are left untouched.
type Source struct {
	pos  int64
	seed uint64
}

// NewSource creates a Source whose generated permutations are reproducible
// from seed.
func NewSource(seed uint64) *Source {
	return &Source{seed: seed}
}

func clampPos(pos int64) int64 {
	if pos < 0 {
		return 0
	}
	if pos > MaxElements {
		return MaxElements
	}
	return pos
}

// Seek implements io.Seeker. Out-of-range results are clamped into
// [0, MaxElements] instead of returning an error, matching the original
// device's lseek behavior.
func (s *Source) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = MaxElements
	default:
		return 0, fmt.Errorf("benchdevice: invalid whence %d", whence)
	}
	s.pos = clampPos(base + offset)
	return s.pos, nil
}

// Read ignores p. It generates pos+1 random elements, sorts them with
// introsort.Sort, and returns the number of comparator calls that sort
// performed as n — the benchmark's whole point is reading off that count,
// not any bytes.
func (s *Source) Read(p []byte) (int, error) {
	n := int(s.pos) + 1
	prng := NewPRNG(s.seed + uint64(s.pos) + 1)
	data := prng.Fill(n)

	counter := &comparisonCounter{}
	introsort.Sort(data, counter.less)
	return counter.count, nil
}

type comparisonCounter struct{ count int }

func (c *comparisonCounter) less(a, b uint64) bool {
	c.count++
	return a < b
}
