// carve.go re-exports the allocation types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package carve

import "github.com/grindlemire/go-carve/internal/layout"

// Direction specifies the axis an area is split along.
type Direction = layout.Direction

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Justify specifies how leftover space is distributed between segments.
type Justify = layout.Justify

const (
	JustifyLegacy       = layout.JustifyLegacy
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Constraint is a sizing directive for one segment of a split.
type Constraint = layout.Constraint

// Range is the resolved sizing envelope a constraint lowers to.
type Range = layout.Range

// Priority tiers for Range. Lower values are funded first.
const (
	PriorityDefault  = layout.PriorityDefault
	PriorityFlexible = layout.PriorityFlexible
	PriorityShare    = layout.PriorityShare
)

// Hint expresses one bound of a Range relative to the axis length.
type Hint = layout.Hint

// IntrinsicLevel selects which content measurement a hint resolves to.
type IntrinsicLevel = layout.IntrinsicLevel

const (
	IntrinsicMin       = layout.IntrinsicMin
	IntrinsicPreferred = layout.IntrinsicPreferred
	IntrinsicMax       = layout.IntrinsicMax
)

// Intrinsic holds the content measurements for one segment.
type Intrinsic = layout.Intrinsic

// Spacing is the gap placed between adjacent segments. Negative
// spacing overlaps them.
type Spacing = layout.Spacing

// Spec bundles the inputs of a cacheable split.
type Spec = layout.Spec

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Cache memoizes split results keyed by a structural fingerprint.
type Cache = layout.Cache

// Fixed creates a constraint for an exact cell count.
func Fixed(n int) Constraint {
	return layout.Fixed(n)
}

// Percentage creates a constraint for a percentage of the axis length.
func Percentage(p int) Constraint {
	return layout.Percentage(p)
}

// Ratio creates a constraint for a num/den fraction of the axis length.
func Ratio(num, den int) Constraint {
	return layout.Ratio(num, den)
}

// AtLeast creates a constraint with a floor of n cells.
func AtLeast(n int) Constraint {
	return layout.AtLeast(n)
}

// AtMost creates a constraint with a ceiling of n cells.
func AtMost(n int) Constraint {
	return layout.AtMost(n)
}

// Share creates a constraint that claims leftover space in proportion
// to weight.
func Share(weight int) Constraint {
	return layout.Share(weight)
}

// ParseConstraint parses the textual constraint forms produced by
// Constraint.String, e.g. "fixed:10", "pct:30", "ratio:1/3", "min:5",
// "max:20", "share:2".
func ParseConstraint(s string) (Constraint, error) {
	return layout.ParseConstraint(s)
}

// Full returns a range that fills all available space.
func Full() Range {
	return layout.Full()
}

// Filler returns a low-priority range used to absorb slack.
func Filler(weight int) Range {
	return layout.Filler(weight)
}

// HintFixed creates a hint for an exact cell count.
func HintFixed(n int) Hint {
	return layout.HintFixed(n)
}

// HintPercent creates a hint for a percentage of the axis length.
func HintPercent(p int) Hint {
	return layout.HintPercent(p)
}

// HintRatio creates a hint for a num/den fraction of the axis length.
func HintRatio(num, den int) Hint {
	return layout.HintRatio(num, den)
}

// HintOverlap creates a hint for a negative span of n cells, used for
// overlapping spacers.
func HintOverlap(n int) Hint {
	return layout.HintOverlap(n)
}

// HintIntrinsic creates a hint that resolves to a content measurement.
func HintIntrinsic(level IntrinsicLevel) Hint {
	return layout.HintIntrinsic(level)
}

// Space creates spacing of n cells between adjacent segments.
func Space(n int) Spacing {
	return layout.Space(n)
}

// Overlap creates spacing that overlaps adjacent segments by n cells.
func Overlap(n int) Spacing {
	return layout.Overlap(n)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Split divides area along d according to spec and returns the segment
// rects alongside the synthesized spacer rects. Results are memoized in
// the process-wide cache.
func Split(area Rect, d Direction, spec Spec) (segments, spacers []Rect) {
	return layout.Split(area, d, spec)
}

// SplitRanges divides area along d using pre-resolved ranges. Range
// inputs bypass the cache.
func SplitRanges(area Rect, d Direction, ranges []Range, justify Justify, spacing Spacing, margin Edges) (segments, spacers []Rect) {
	return layout.SplitRanges(area, d, ranges, justify, spacing, margin)
}

// SplitHorizontal divides area into columns and returns only the
// segment rects.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	return layout.SplitHorizontal(area, constraints...)
}

// SplitVertical divides area into rows and returns only the segment
// rects.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	return layout.SplitVertical(area, constraints...)
}

// SplitCached divides area using an explicit cache instead of the
// process-wide one. A nil cache disables memoization.
func SplitCached(c *Cache, area Rect, d Direction, spec Spec) (segments, spacers []Rect) {
	return layout.SplitCached(c, area, d, spec)
}

// NewCache creates a cache holding at most capacity entries. A
// capacity of zero or less makes the cache unbounded.
func NewCache(capacity int) *Cache {
	return layout.NewCache(capacity)
}

// InitCache replaces the process-wide cache with one bounded to
// capacity entries. Calls with a non-positive capacity are ignored.
func InitCache(capacity int) {
	layout.InitCache(capacity)
}

// Fingerprint returns the structural hash a split is memoized under.
func Fingerprint(area Rect, d Direction, spec Spec) uint64 {
	return layout.Fingerprint(area, d, spec)
}
