package layout

// Spacing is the requested minimum gap between adjacent segments. A negative
// amount (built with Overlap) pulls neighbors over each other.
type Spacing struct {
	amount int
}

// Space requests a gap of n cells between adjacent segments.
func Space(n int) Spacing {
	return Spacing{amount: n}
}

// Overlap requests adjacent segments to overlap by n cells.
func Overlap(n int) Spacing {
	return Spacing{amount: -n}
}

// Amount returns the signed gap length.
func (s Spacing) Amount() int {
	return s.amount
}

// Spec describes one split request: an ordered list of sizing constraints, a
// justification policy, the inter-segment spacing, and an outer margin. It
// is constructed fresh per call and never mutated by the solver.
type Spec struct {
	Constraints []Constraint
	Justify     Justify
	Spacing     Spacing
	Margin      Edges
}

// Split partitions the area along the given direction into one rectangle per
// constraint plus the spacer rectangles between (and, depending on the
// policy, around) them. Results for identical inputs are memoized in the
// process-wide cache, so repeated calls are cheap and bit-identical.
//
// The returned slices are owned by the caller.
func Split(area Rect, d Direction, spec Spec) (segments, spacers []Rect) {
	c := activeCache()
	fp := Fingerprint(area, d, spec)
	if segments, spacers, ok := c.Get(fp); ok {
		return segments, spacers
	}
	segments, spacers = splitUncached(area, d, spec)
	c.Put(fp, segments, spacers)
	return segments, spacers
}

// SplitRanges is the advanced entry point: it splits the area using
// caller-built ranges instead of constraint-derived ones, bypassing the
// cache. Custom ranges can carry intrinsic sizes, priorities, and overfill
// flags that have no constraint equivalent.
func SplitRanges(area Rect, d Direction, ranges []Range, justify Justify, spacing Spacing, margin Edges) (segments, spacers []Rect) {
	return materialize(area, d, ranges, justify, spacing, margin)
}

// SplitHorizontal splits the area left-to-right with the default policy and
// returns the segment rectangles.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	segments, _ := Split(area, Horizontal, Spec{Constraints: constraints})
	return segments
}

// SplitVertical splits the area top-to-bottom with the default policy and
// returns the segment rectangles.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	segments, _ := Split(area, Vertical, Spec{Constraints: constraints})
	return segments
}

func splitUncached(area Rect, d Direction, spec Spec) (segments, spacers []Rect) {
	ranges := make([]Range, len(spec.Constraints))
	for i, c := range spec.Constraints {
		ranges[i] = c.Range()
	}
	return materialize(area, d, ranges, spec.Justify, spec.Spacing, spec.Margin)
}

// materialize runs the solver and converts allocated lengths back into
// positioned rectangles. Every output rect inherits the perpendicular offset
// and dimension of the margin-inset area and is clipped to the original
// bounds.
func materialize(area Rect, d Direction, ranges []Range, justify Justify, spacing Spacing, margin Edges) (segments, spacers []Rect) {
	inner := area.Inset(margin)
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}

	syn := synthesize(ranges, justify, spacing.Amount(), inner.Length(d))
	allocate(syn.items, inner.Length(d), syn.opts)

	// Walk the spans in spatial order. The offset advances by the signed
	// allocated length, so a negative gap pulls the next span backwards
	// while each emitted rectangle is clamped to the area bounds and never
	// negative-sized.
	rects := make([]Rect, len(syn.items))
	offset := inner.Start(d)
	for i, it := range syn.items {
		start := min(max(offset, area.Start(d)), area.End(d))
		end := min(max(satAdd(offset, it.size), area.Start(d)), area.End(d))
		if end < start {
			end = start
		}
		rects[i] = inner.withSpan(d, start, end-start)
		offset = satAdd(offset, it.size)
	}

	segments = make([]Rect, len(syn.segments))
	for i, it := range syn.segments {
		segments[i] = rects[it.order]
	}
	spacers = make([]Rect, len(syn.spacers))
	for i, it := range syn.spacers {
		spacers[i] = rects[it.order]
	}
	return segments, spacers
}
