package layout

import "math"

// Priority tiers. Lower values are funded first in the min and preferred
// growth phases and forced to grow last in the max phase.
const (
	PriorityDefault  = 0             // Directive-typed segments (Fixed, Percentage, Ratio)
	PriorityFlexible = 100           // Bound-typed segments (AtLeast, AtMost) and fillers
	PriorityShare    = math.MaxInt32 // Weighted filler segments (Share)

	// prioritySpacer keeps fixed inter-segment gaps ahead of every content
	// segment so they are funded before anything else and never shrunk.
	prioritySpacer = math.MinInt32
)

// Range holds the per-segment allocation parameters fed to the allocator:
// min/preferred/max sizing hints, a growth weight for proportional division,
// an overfill flag, and a priority tier.
type Range struct {
	Min       Hint
	Preferred Hint
	Max       Hint
	Weight    int
	Overfill  bool
	Priority  int
	Intrinsic Intrinsic
}

// Full returns the default range: no minimum, preferred and maximum at 100%
// of the area, weight 1, default priority. A segment with this range takes
// whatever space its siblings leave.
func Full() Range {
	return Range{
		Min:       HintFixed(0),
		Preferred: HintPercent(100),
		Max:       HintPercent(100),
		Weight:    1,
	}
}

// Filler returns a slack-absorbing pseudo-segment range: zero min and
// preferred, uncapped max, the given growth weight. Justification policies
// interleave fillers with content segments to soak up leftover space.
func Filler(weight int) Range {
	return Range{
		Min:       HintFixed(0),
		Preferred: HintFixed(0),
		Max:       HintPercent(100),
		Weight:    weight,
		Priority:  PriorityFlexible,
	}
}

// WithMin returns a copy of the range with the minimum hint replaced.
func (r Range) WithMin(h Hint) Range {
	r.Min = h
	return r
}

// WithMax returns a copy of the range with the maximum hint replaced.
func (r Range) WithMax(h Hint) Range {
	r.Max = h
	return r
}

// Scaled returns a copy of the range with the growth weight replaced.
func (r Range) Scaled(weight int) Range {
	r.Weight = weight
	return r
}

// AtPriority returns a copy of the range with the priority tier replaced.
func (r Range) AtPriority(p int) Range {
	r.Priority = p
	return r
}

// WithOverfill returns a copy of the range with the overfill flag set.
// Overfill-flagged segments absorb space left over after every segment has
// reached its maximum.
func (r Range) WithOverfill(overfill bool) Range {
	r.Overfill = overfill
	return r
}

// WithIntrinsic returns a copy of the range carrying the segment's natural
// size range, consulted by HintIntrinsic hints at resolution time.
func (r Range) WithIntrinsic(intr Intrinsic) Range {
	r.Intrinsic = intr
	return r
}
