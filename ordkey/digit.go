package ordkey

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/hideo55/go-popcount"
	"github.com/pkg/errors"
)

const laneCount = 16 // lanes per precision level

// ErrNoSpace is returned by DigitBetween when no value strictly between
// the bounds exists at the current lane precision. The composite layer
// recovers by extending the identifier with one more level.
var ErrNoSpace = errors.New("ordkey: no value strictly between digits at this precision")

// Digit is a single precision level of an identifier: laneCount ordered
// uint16 lanes of which only a leading prefix is significant. The prefix
// is tracked as a bitmap in sig (low bits set). Lanes past the prefix
// hold scratch data from midpoint derivation and are masked out of every
// view.
//
// A Digit is an immutable value; copies are cheap and never share state.
type Digit struct {
	lanes [laneCount]uint16
	sig   uint16 // significance bitmap, always a prefix: 0b0..0111..1
}

// NewDigit returns a Digit with a single significant lane holding value.
func NewDigit(value uint16) Digit {
	var d Digit

	for i := range d.lanes {
		d.lanes[i] = value
	}

	d.sig = 0b_1

	return d
}

// Len returns the number of significant lanes [1..16].
func (d Digit) Len() int {
	return int(popcount.Count(uint64(d.sig)))
}

// view returns the lanes with every non-significant lane forced to pad:
// 0 when the digit acts as a lower bound, max when it acts as an upper
// one.
func (d Digit) view(pad uint16) [laneCount]uint16 {
	v := d.lanes

	for i := 0; i < laneCount; i++ {
		if d.sig&(1<<i) == 0 {
			v[i] = pad
		}
	}

	return v
}

// Compare orders two digits by their zero-padded views, lane 0 most
// significant. This matches big-endian multi-digit integer comparison.
func (d Digit) Compare(other Digit) int {
	var (
		a = d.view(0)
		b = other.view(0)
	)

	for i := 0; i < laneCount; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

func (d Digit) Less(other Digit) bool  { return d.Compare(other) < 0 }
func (d Digit) Equal(other Digit) bool { return d.Compare(other) == 0 }

// DigitBetween returns a Digit strictly between a and b at the shortest
// possible significant length, treating a as a lower bound (zero
// padding) and b as an upper bound (max padding). It fails with
// ErrNoSpace when the bounds are adjacent at every one of the 16 lanes;
// the composite layer then extends precision by one level and descends.
//
// Preconditions: a < b and max >= 2, both checked with a panic. Lane
// values of the inputs must not exceed max.
func DigitBetween(a, b Digit, max uint16) (Digit, error) {
	checkMax(max)

	if !a.Less(b) {
		panic("ordkey: DigitBetween requires a < b")
	}

	var (
		lo = a.view(0)
		hi = b.view(max)

		mid Digit
		gt  uint16 // bitmap of lanes where mid is strictly above lo
	)

	for i := 0; i < laneCount; i++ {
		m := lo[i]

		if hi[i] > lo[i] {
			// floor midpoint; a lane whose upper view has dropped
			// below its lower view contributes the lower value
			// unchanged, keeping every lane within [0, max]
			m = lo[i] + (hi[i]-lo[i])/2
		}

		mid.lanes[i] = m

		if m > lo[i] {
			gt |= 1 << i
		}
	}

	if gt == 0 {
		return Digit{}, ErrNoSpace
	}

	// cut at the first strict increase: every lane before it equals lo,
	// so this is the shortest prefix sorting above a and below b
	mid.sig = uint16(1)<<(bits.TrailingZeros16(gt)+1) - 1

	return mid, nil
}

// Significant returns a copy of the significant lanes in order.
func (d Digit) Significant() []uint16 {
	out := make([]uint16, d.Len())

	for i := range out {
		out[i] = d.lanes[i]
	}

	return out
}

// String renders the significant lanes, e.g. "[0 1]". Diagnostic only.
func (d Digit) String() string {
	var buf strings.Builder

	buf.WriteByte('[')

	for i, v := range d.Significant() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.Itoa(int(v)))
	}

	buf.WriteByte(']')

	return buf.String()
}

func checkMax(max uint16) {
	if max < 2 {
		panic("ordkey: max must be at least 2")
	}
}
