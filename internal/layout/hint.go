package layout

import "math"

// IntrinsicLevel selects one bound of a segment's natural size range.
type IntrinsicLevel uint8

const (
	IntrinsicMin       IntrinsicLevel = iota // Smallest usable content size
	IntrinsicPreferred                       // Natural content size
	IntrinsicMax                             // Largest useful content size
)

// Intrinsic is a segment's natural size range along the split axis, supplied
// opaquely by the caller. The solver never measures content itself; a zero
// value means the segment has no intrinsic size.
type Intrinsic struct {
	Min, Preferred, Max int
}

// At returns the bound for the given level.
func (i Intrinsic) At(level IntrinsicLevel) int {
	switch level {
	case IntrinsicMin:
		return i.Min
	case IntrinsicPreferred:
		return i.Preferred
	default:
		return i.Max
	}
}

type hintKind uint8

const (
	hintFixed hintKind = iota
	hintPercent
	hintRatio
	hintOverlap
	hintIntrinsic
)

// Hint is a single resolved sizing request. It is a closed set: an absolute
// length, a percentage of the area, a ratio of the area, a negative overlap,
// or a lookup into the segment's intrinsic size range.
type Hint struct {
	kind  hintKind
	a, b  int
	level IntrinsicLevel
}

// HintFixed requests an absolute number of cells.
func HintFixed(n int) Hint {
	return Hint{kind: hintFixed, a: n}
}

// HintPercent requests a percentage of the area length on a 0-100 scale.
func HintPercent(p int) Hint {
	return Hint{kind: hintPercent, a: p}
}

// HintRatio requests num/den of the area length. A zero denominator degrades
// to treating num as an absolute count.
func HintRatio(num, den int) Hint {
	return Hint{kind: hintRatio, a: num, b: den}
}

// HintOverlap requests a negative length of n cells, pulling the following
// segment back over the preceding one.
func HintOverlap(n int) Hint {
	return Hint{kind: hintOverlap, a: n}
}

// HintIntrinsic reads the requested bound of the segment's intrinsic size
// range at resolution time.
func HintIntrinsic(level IntrinsicLevel) Hint {
	return Hint{kind: hintIntrinsic, level: level}
}

// Resolve converts the hint into a signed absolute length for an area of the
// given axis length. Percentage and ratio arithmetic rounds half away from
// zero; 100% resolves to the area length exactly. All intermediate arithmetic
// saturates instead of wrapping.
func (h Hint) Resolve(length int, intr Intrinsic) int {
	switch h.kind {
	case hintFixed:
		return h.a
	case hintPercent:
		if h.a == 100 {
			return length
		}
		return roundDiv(satMul(h.a, length), 100)
	case hintRatio:
		if h.b == 0 {
			return h.a
		}
		if h.a == 0 {
			return 0
		}
		return roundDiv(satMul(h.a, length), h.b)
	case hintOverlap:
		return satNeg(h.a)
	case hintIntrinsic:
		return intr.At(h.level)
	default:
		return 0
	}
}

// satMul multiplies two ints, saturating at the int range instead of wrapping.
func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/a != b {
		if (a > 0) == (b > 0) {
			return math.MaxInt
		}
		return math.MinInt
	}
	return p
}

// satAdd adds two ints, saturating at the int range instead of wrapping.
func satAdd(a, b int) int {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt
	}
	if b < 0 && s > a {
		return math.MinInt
	}
	return s
}

// satNeg negates an int, saturating for math.MinInt.
func satNeg(a int) int {
	if a == math.MinInt {
		return math.MaxInt
	}
	return -a
}

// roundDiv divides n by d (d != 0), rounding half away from zero.
func roundDiv(n, d int) int {
	if d < 0 {
		n, d = satNeg(n), satNeg(d)
	}
	half := d / 2
	if n >= 0 {
		return satAdd(n, half) / d
	}
	return satAdd(n, -half) / d
}
