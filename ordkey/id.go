package ordkey

import "strings"

// ID is a dense, totally-ordered identifier: a non-empty sequence of
// Digit levels, most significant first. An ID is immutable once issued;
// Between always allocates a fresh one and never touches its inputs.
type ID struct {
	levels []Digit
}

// New returns a single-level identifier holding value.
func New(value uint16) ID {
	return ID{levels: []Digit{NewDigit(value)}}
}

// Between returns the identifier with the fewest levels strictly between
// a and b.
//
// Level pairs are walked most significant first; an exhausted lower side
// pads with NewDigit(0), an exhausted upper side with NewDigit(max).
// Equal levels are copied through. The first unequal pair is asked for a
// digit midpoint; when none exists at that precision the lower digit is
// kept and the walk descends one more level with the upper side
// contributing only its padding value from then on, since the kept digit
// already sorts strictly below the upper bound.
//
// Preconditions: a < b and max >= 2, both checked with a panic. Lane
// values of the inputs must not exceed max.
func Between(a, b ID, max uint16) ID {
	checkMax(max)

	if !a.Less(b) {
		panic("ordkey: Between requires a < b")
	}

	var (
		levels []Digit
		open   bool // upper bound already strict; b pads from here on
	)

	for i := 0; ; i++ {
		lo := NewDigit(0)
		if i < len(a.levels) {
			lo = a.levels[i]
		}

		hi := NewDigit(max)
		if !open && i < len(b.levels) {
			hi = b.levels[i]
		}

		if lo.Equal(hi) {
			levels = append(levels, lo)
			continue
		}

		mid, err := DigitBetween(lo, hi, max)
		if err == nil {
			return ID{levels: append(levels, mid)}
		}

		levels = append(levels, lo)
		open = true
	}
}

// Compare orders two identifiers lexicographically over their levels. A
// strict prefix sorts first; bound padding applies only inside Between.
func (id ID) Compare(other ID) int {
	n := len(id.levels)
	if len(other.levels) < n {
		n = len(other.levels)
	}

	for i := 0; i < n; i++ {
		if c := id.levels[i].Compare(other.levels[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(id.levels) < len(other.levels):
		return -1
	case len(id.levels) > len(other.levels):
		return 1
	}

	return 0
}

func (id ID) Less(other ID) bool  { return id.Compare(other) < 0 }
func (id ID) Equal(other ID) bool { return id.Compare(other) == 0 }

// Len returns the number of levels.
func (id ID) Len() int {
	return len(id.levels)
}

// Levels returns the significant digit values of every level, most
// significant first. Diagnostic only: not a serialization format.
func (id ID) Levels() [][]uint16 {
	out := make([][]uint16, len(id.levels))

	for i, d := range id.levels {
		out[i] = d.Significant()
	}

	return out
}

// String renders the identifier one level at a time, e.g. "[0 1][2]".
func (id ID) String() string {
	var buf strings.Builder

	for _, d := range id.levels {
		buf.WriteString(d.String())
	}

	return buf.String()
}
