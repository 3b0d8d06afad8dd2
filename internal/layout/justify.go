package layout

// Justify selects how leading, trailing, and internal slack is distributed
// among segments.
type Justify uint8

const (
	// JustifyLegacy reproduces the historical behavior: fixed gaps, with all
	// leftover space flowing to a single slack-owning segment.
	JustifyLegacy Justify = iota
	JustifyStart          // Pack at start, slack trails
	JustifyCenter         // Slack splits evenly around the packed segments
	JustifyEnd            // Pack at end, slack leads
	JustifySpaceBetween   // Internal gaps grow evenly, none at the edges
	JustifySpaceAround    // Gaps grow evenly, half-size gaps at the edges
	JustifySpaceEvenly    // All gaps grow evenly, edges included
)

// String returns the policy name for debug output.
func (j Justify) String() string {
	switch j {
	case JustifyLegacy:
		return "legacy"
	case JustifyStart:
		return "start"
	case JustifyCenter:
		return "center"
	case JustifyEnd:
		return "end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "unknown"
	}
}

// synthesis is the allocator input assembled for one split call: content and
// spacer items in spatial order, plus the views needed to map allocated
// lengths back to output rectangles.
type synthesis struct {
	items    []*item // spatial order, content interleaved with spacers
	segments []*item // one per constraint, declaration order
	spacers  []*item // returned spacer pseudo-segments, spatial order
	opts     allocOptions
}

// synthesize resolves the ranges against the axis length and interleaves
// them with the spacer pseudo-segments the justification policy calls for.
// gap is the requested spacing between adjacent segments and may be negative
// (overlap).
func synthesize(ranges []Range, justify Justify, gap, length int) synthesis {
	n := len(ranges)
	s := synthesis{segments: make([]*item, n)}
	for i, rng := range ranges {
		s.segments[i] = resolveItem(rng, length, false)
	}
	if n == 0 {
		return s
	}

	// Fixed gaps are funded before any content and never shrink.
	gapRange := Range{
		Min:       HintFixed(gap),
		Preferred: HintFixed(gap),
		Max:       HintFixed(gap),
		Weight:    1,
		Priority:  prioritySpacer,
	}
	newGap := func() *item { return resolveItem(gapRange, length, true) }
	newFiller := func(rng Range) *item { return resolveItem(rng, length, false) }

	spacer := func(it *item) *item {
		s.spacers = append(s.spacers, it)
		return it
	}

	// A single segment has no internal gap to distribute.
	if justify == JustifySpaceBetween && n == 1 {
		justify = JustifyStart
	}

	switch justify {
	case JustifyLegacy:
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newGap()))
			}
			s.items = append(s.items, seg)
		}
		// All post-preferred slack flows to the content segment with the
		// lowest priority value; ties go to the last such segment.
		owner := s.segments[0]
		for _, seg := range s.segments[1:] {
			if seg.priority <= owner.priority {
				owner = seg
			}
		}
		owner.overfill = true
		s.opts.legacySlack = true

	case JustifyStart:
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newGap()))
			}
			s.items = append(s.items, seg)
		}
		s.items = append(s.items, spacer(newFiller(Filler(1))))

	case JustifyEnd:
		s.items = append(s.items, spacer(newFiller(Filler(1))))
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newGap()))
			}
			s.items = append(s.items, seg)
		}

	case JustifyCenter:
		// The odd slack cell goes to the trailing filler.
		leading := newFiller(Filler(1))
		leading.bias = 1
		s.items = append(s.items, spacer(leading))
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newGap()))
			}
			s.items = append(s.items, seg)
		}
		s.items = append(s.items, spacer(newFiller(Filler(1))))

	case JustifySpaceBetween:
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newFiller(Filler(1).WithMin(HintFixed(gap)))))
			}
			s.items = append(s.items, seg)
		}

	case JustifySpaceAround:
		// Edge gaps carry half the weight of interior ones.
		s.items = append(s.items, spacer(newFiller(Filler(1).WithMin(HintFixed(gap)))))
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newFiller(Filler(2).WithMin(HintFixed(gap)))))
			}
			s.items = append(s.items, seg)
		}
		s.items = append(s.items, spacer(newFiller(Filler(1).WithMin(HintFixed(gap)))))

	case JustifySpaceEvenly:
		s.items = append(s.items, spacer(newFiller(Filler(1).WithMin(HintFixed(gap)))))
		for i, seg := range s.segments {
			if i > 0 {
				s.items = append(s.items, spacer(newFiller(Filler(1).WithMin(HintFixed(gap)))))
			}
			s.items = append(s.items, seg)
		}
		s.items = append(s.items, spacer(newFiller(Filler(1).WithMin(HintFixed(gap)))))
	}

	for i, it := range s.items {
		it.order = i
	}
	return s
}

// resolveItem turns a range into allocator working state for an area of the
// given axis length.
func resolveItem(rng Range, length int, fixed bool) *item {
	return &item{
		min:       rng.Min.Resolve(length, rng.Intrinsic),
		preferred: rng.Preferred.Resolve(length, rng.Intrinsic),
		max:       rng.Max.Resolve(length, rng.Intrinsic),
		weight:    rng.Weight,
		priority:  rng.Priority,
		overfill:  rng.Overfill,
		fixed:     fixed,
	}
}
