package layout

import (
	"math"
	"testing"
)

func TestHint_Resolve_Fixed(t *testing.T) {
	type tc struct {
		hint     Hint
		length   int
		expected int
	}

	tests := map[string]tc{
		"fixed ignores length": {
			hint:     HintFixed(5),
			length:   100,
			expected: 5,
		},
		"fixed zero": {
			hint:     HintFixed(0),
			length:   100,
			expected: 0,
		},
		"fixed larger than length": {
			hint:     HintFixed(500),
			length:   100,
			expected: 500,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.hint.Resolve(tt.length, Intrinsic{}); got != tt.expected {
				t.Errorf("Resolve(%d) = %d, want %d", tt.length, got, tt.expected)
			}
		})
	}
}

func TestHint_Resolve_Percent(t *testing.T) {
	type tc struct {
		hint     Hint
		length   int
		expected int
	}

	tests := map[string]tc{
		"full percent is exact": {
			hint:     HintPercent(100),
			length:   7, // 7*100/100 survives without rounding either way
			expected: 7,
		},
		"half": {
			hint:     HintPercent(50),
			length:   10,
			expected: 5,
		},
		"rounds half away from zero": {
			hint:     HintPercent(25),
			length:   10, // 2.5 -> 3
			expected: 3,
		},
		"rounds down below half": {
			hint:     HintPercent(33),
			length:   10, // 3.3 -> 3
			expected: 3,
		},
		"rounds up above half": {
			hint:     HintPercent(66),
			length:   10, // 6.6 -> 7
			expected: 7,
		},
		"zero percent": {
			hint:     HintPercent(0),
			length:   100,
			expected: 0,
		},
		"zero length": {
			hint:     HintPercent(50),
			length:   0,
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.hint.Resolve(tt.length, Intrinsic{}); got != tt.expected {
				t.Errorf("Resolve(%d) = %d, want %d", tt.length, got, tt.expected)
			}
		})
	}
}

func TestHint_Resolve_Ratio(t *testing.T) {
	type tc struct {
		hint     Hint
		length   int
		expected int
	}

	tests := map[string]tc{
		"third": {
			hint:     HintRatio(1, 3),
			length:   9,
			expected: 3,
		},
		"two thirds rounds": {
			hint:     HintRatio(2, 3),
			length:   10, // 6.67 -> 7
			expected: 7,
		},
		"half rounds up": {
			hint:     HintRatio(1, 2),
			length:   5, // 2.5 -> 3
			expected: 3,
		},
		"zero denominator degrades to absolute": {
			hint:     HintRatio(4, 0),
			length:   100,
			expected: 4,
		},
		"zero numerator": {
			hint:     HintRatio(0, 7),
			length:   100,
			expected: 0,
		},
		"ratio above one": {
			hint:     HintRatio(3, 2),
			length:   10,
			expected: 15,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.hint.Resolve(tt.length, Intrinsic{}); got != tt.expected {
				t.Errorf("Resolve(%d) = %d, want %d", tt.length, got, tt.expected)
			}
		})
	}
}

func TestHint_Resolve_Overlap(t *testing.T) {
	if got := HintOverlap(3).Resolve(100, Intrinsic{}); got != -3 {
		t.Errorf("Resolve() = %d, want -3", got)
	}
	if got := HintOverlap(0).Resolve(100, Intrinsic{}); got != 0 {
		t.Errorf("Resolve() = %d, want 0", got)
	}
}

func TestHint_Resolve_Intrinsic(t *testing.T) {
	type tc struct {
		level    IntrinsicLevel
		expected int
	}

	intr := Intrinsic{Min: 2, Preferred: 10, Max: 40}

	tests := map[string]tc{
		"min":       {level: IntrinsicMin, expected: 2},
		"preferred": {level: IntrinsicPreferred, expected: 10},
		"max":       {level: IntrinsicMax, expected: 40},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := HintIntrinsic(tt.level).Resolve(100, intr); got != tt.expected {
				t.Errorf("Resolve() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHint_Resolve_Saturates(t *testing.T) {
	// Percentage arithmetic over a huge area must not wrap around.
	got := HintPercent(99).Resolve(math.MaxInt, Intrinsic{})
	if got < 0 {
		t.Errorf("Resolve() = %d, want non-negative", got)
	}

	got = HintRatio(math.MaxInt, 1).Resolve(math.MaxInt, Intrinsic{})
	if got != math.MaxInt {
		t.Errorf("Resolve() = %d, want math.MaxInt", got)
	}
}

func TestSaturatingMath(t *testing.T) {
	type tc struct {
		got      int
		expected int
	}

	tests := map[string]tc{
		"satMul plain":            {got: satMul(6, 7), expected: 42},
		"satMul overflow":         {got: satMul(math.MaxInt, 2), expected: math.MaxInt},
		"satMul underflow":        {got: satMul(math.MaxInt, -2), expected: math.MinInt},
		"satMul zero":             {got: satMul(0, math.MaxInt), expected: 0},
		"satAdd plain":            {got: satAdd(1, 2), expected: 3},
		"satAdd overflow":         {got: satAdd(math.MaxInt, 1), expected: math.MaxInt},
		"satAdd underflow":        {got: satAdd(math.MinInt, -1), expected: math.MinInt},
		"satNeg plain":            {got: satNeg(5), expected: -5},
		"satNeg min int":          {got: satNeg(math.MinInt), expected: math.MaxInt},
		"roundDiv half up":        {got: roundDiv(5, 2), expected: 3},
		"roundDiv below half":     {got: roundDiv(4, 3), expected: 1},
		"roundDiv negative half":  {got: roundDiv(-5, 2), expected: -3},
		"roundDiv negative exact": {got: roundDiv(-6, 2), expected: -3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %d, want %d", tt.got, tt.expected)
			}
		})
	}
}
