package layout

import (
	"fmt"
	"strconv"
	"strings"
)

type constraintKind uint8

const (
	constraintFixed constraintKind = iota
	constraintPercentage
	constraintRatio
	constraintAtLeast
	constraintAtMost
	constraintShare
)

// Constraint is a user-declared sizing rule for one segment. It is a closed
// set: an exact length, a percentage, a ratio, a minimum, a maximum, or a
// weighted share of leftover space.
type Constraint struct {
	kind constraintKind
	a, b int
}

// Fixed requests exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{kind: constraintFixed, a: n}
}

// Percentage requests p percent of the area length (0-100 scale).
func Percentage(p int) Constraint {
	return Constraint{kind: constraintPercentage, a: p}
}

// Ratio requests num/den of the area length.
func Ratio(num, den int) Constraint {
	return Constraint{kind: constraintRatio, a: num, b: den}
}

// AtLeast requests n cells or more, yielding extra space to stricter
// segments only when the area runs short.
func AtLeast(n int) Constraint {
	return Constraint{kind: constraintAtLeast, a: n}
}

// AtMost requests up to n cells.
func AtMost(n int) Constraint {
	return Constraint{kind: constraintAtMost, a: n}
}

// Share requests a weighted portion of whatever space remains after all
// other segments are satisfied.
func Share(weight int) Constraint {
	return Constraint{kind: constraintShare, a: weight}
}

// Range derives the allocation parameters for the constraint.
func (c Constraint) Range() Range {
	switch c.kind {
	case constraintFixed:
		return Range{
			Min:       HintFixed(0),
			Preferred: HintFixed(c.a),
			Max:       HintFixed(c.a),
			Weight:    1,
			Priority:  PriorityDefault,
		}
	case constraintPercentage:
		return Range{
			Min:       HintFixed(0),
			Preferred: HintPercent(c.a),
			Max:       HintPercent(c.a),
			Weight:    1,
			Priority:  PriorityDefault,
		}
	case constraintRatio:
		return Range{
			Min:       HintFixed(0),
			Preferred: HintRatio(c.a, c.b),
			Max:       HintRatio(c.a, c.b),
			Weight:    1,
			Priority:  PriorityDefault,
		}
	case constraintAtLeast:
		return Range{
			Min:       HintFixed(c.a),
			Preferred: HintPercent(100),
			Max:       HintPercent(100),
			Weight:    1,
			Priority:  PriorityFlexible,
		}
	case constraintAtMost:
		return Range{
			Min:       HintFixed(0),
			Preferred: HintFixed(c.a),
			Max:       HintFixed(c.a),
			Weight:    1,
			Priority:  PriorityFlexible,
		}
	case constraintShare:
		return Range{
			Min:       HintFixed(0),
			Preferred: HintPercent(100),
			Max:       HintPercent(100),
			Weight:    c.a,
			Priority:  PriorityShare,
		}
	default:
		return Full()
	}
}

// String returns the textual form accepted by ParseConstraint.
func (c Constraint) String() string {
	switch c.kind {
	case constraintFixed:
		return fmt.Sprintf("fixed:%d", c.a)
	case constraintPercentage:
		return fmt.Sprintf("pct:%d", c.a)
	case constraintRatio:
		return fmt.Sprintf("ratio:%d/%d", c.a, c.b)
	case constraintAtLeast:
		return fmt.Sprintf("min:%d", c.a)
	case constraintAtMost:
		return fmt.Sprintf("max:%d", c.a)
	case constraintShare:
		return fmt.Sprintf("share:%d", c.a)
	default:
		return "unknown"
	}
}

// ParseConstraint parses the textual constraint forms used on the command
// line: fixed:N, pct:N, ratio:A/B, min:N, max:N, share:W.
func ParseConstraint(s string) (Constraint, error) {
	name, arg, ok := strings.Cut(s, ":")
	if !ok {
		return Constraint{}, fmt.Errorf("constraint %q: missing ':'", s)
	}

	if name == "ratio" {
		numStr, denStr, ok := strings.Cut(arg, "/")
		if !ok {
			return Constraint{}, fmt.Errorf("constraint %q: ratio requires A/B", s)
		}
		num, err := strconv.Atoi(numStr)
		if err != nil {
			return Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
		}
		den, err := strconv.Atoi(denStr)
		if err != nil {
			return Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
		}
		return Ratio(num, den), nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}

	switch name {
	case "fixed":
		return Fixed(n), nil
	case "pct":
		return Percentage(n), nil
	case "min":
		return AtLeast(n), nil
	case "max":
		return AtMost(n), nil
	case "share":
		return Share(n), nil
	default:
		return Constraint{}, fmt.Errorf("constraint %q: unknown kind %q", s, name)
	}
}
