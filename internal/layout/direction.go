package layout

// Direction selects which dimension of a Rect is split.
type Direction uint8

const (
	Horizontal Direction = iota // Split along the x axis (columns)
	Vertical                    // Split along the y axis (rows)
)

// String returns the direction name for debug output.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
