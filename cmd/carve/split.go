package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	carve "github.com/grindlemire/go-carve"
	"github.com/grindlemire/go-carve/pkg/debug"
)

var (
	splitWidth     int
	splitHeight    int
	splitDirection string
	splitJustify   string
	splitSpacing   int
	splitMargin    int
	splitRender    bool
	splitVerbose   bool
)

var splitCmd = &cobra.Command{
	Use:   "split <constraint>...",
	Short: "Split a rect and print the segments",
	Long: `Split divides a rectangle along one axis according to the given
constraints. Width and height default to the current terminal size.

Examples:
  carve split fixed:10 share:1 share:2
  carve split --direction vertical --justify center pct:30 pct:30
  carve split --spacing -2 --render fixed:8 fixed:8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().IntVarP(&splitWidth, "width", "W", 0, "Area width (default: terminal width)")
	splitCmd.Flags().IntVarP(&splitHeight, "height", "H", 0, "Area height (default: terminal height)")
	splitCmd.Flags().StringVarP(&splitDirection, "direction", "d", "horizontal", "Split axis: horizontal or vertical")
	splitCmd.Flags().StringVarP(&splitJustify, "justify", "j", "legacy", "Slack policy: legacy, start, center, end, space-between, space-around, space-evenly")
	splitCmd.Flags().IntVarP(&splitSpacing, "spacing", "s", 0, "Gap between segments (negative overlaps them)")
	splitCmd.Flags().IntVarP(&splitMargin, "margin", "m", 0, "Uniform margin inside the area")
	splitCmd.Flags().BoolVarP(&splitRender, "render", "r", false, "Render the segments as a colored grid")
	splitCmd.Flags().BoolVarP(&splitVerbose, "verbose", "v", false, "Log resolution details to the debug log")
}

func runSplit(cmd *cobra.Command, args []string) error {
	if splitVerbose {
		if err := debug.Init("carve-debug.log"); err != nil {
			return err
		}
		defer debug.Close()
	}

	constraints := make([]carve.Constraint, 0, len(args))
	for _, arg := range args {
		c, err := carve.ParseConstraint(arg)
		if err != nil {
			return err
		}
		constraints = append(constraints, c)
	}

	width, height := splitWidth, splitHeight
	if width <= 0 || height <= 0 {
		tw, th, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			tw, th = 80, 24
		}
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}

	direction, err := parseDirection(splitDirection)
	if err != nil {
		return err
	}
	justify, err := parseJustify(splitJustify)
	if err != nil {
		return err
	}

	spacing := carve.Space(splitSpacing)
	if splitSpacing < 0 {
		spacing = carve.Overlap(-splitSpacing)
	}

	area := carve.NewRect(0, 0, width, height)
	spec := carve.Spec{
		Constraints: constraints,
		Justify:     justify,
		Spacing:     spacing,
		Margin:      carve.EdgeAll(splitMargin),
	}

	debug.Log("split area=%v direction=%v constraints=%v", area, direction, args)
	segments, spacers := carve.Split(area, direction, spec)

	for i, seg := range segments {
		debug.Log("segment %d (%s): %v", i, constraints[i], seg)
		fmt.Printf("%-12s x=%-4d y=%-4d w=%-4d h=%-4d\n", constraints[i], seg.X, seg.Y, seg.Width, seg.Height)
	}
	for i, sp := range spacers {
		debug.Log("spacer %d: %v", i, sp)
		fmt.Printf("%-12s x=%-4d y=%-4d w=%-4d h=%-4d\n", fmt.Sprintf("spacer:%d", i), sp.X, sp.Y, sp.Width, sp.Height)
	}

	if splitRender {
		fmt.Println(renderSplit(area, segments, spacers))
	}
	return nil
}

func parseDirection(s string) (carve.Direction, error) {
	switch strings.ToLower(s) {
	case "horizontal", "h", "row":
		return carve.Horizontal, nil
	case "vertical", "v", "column":
		return carve.Vertical, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func parseJustify(s string) (carve.Justify, error) {
	switch strings.ToLower(s) {
	case "legacy", "":
		return carve.JustifyLegacy, nil
	case "start":
		return carve.JustifyStart, nil
	case "center":
		return carve.JustifyCenter, nil
	case "end":
		return carve.JustifyEnd, nil
	case "space-between", "between":
		return carve.JustifySpaceBetween, nil
	case "space-around", "around":
		return carve.JustifySpaceAround, nil
	case "space-evenly", "evenly":
		return carve.JustifySpaceEvenly, nil
	}
	return 0, fmt.Errorf("unknown justify policy %q", s)
}

var segmentColors = []lipgloss.Color{
	lipgloss.Color("4"), lipgloss.Color("2"), lipgloss.Color("5"),
	lipgloss.Color("3"), lipgloss.Color("6"), lipgloss.Color("1"),
}

// renderSplit paints each segment into a character grid so overlapping
// and starved segments stay visible.
func renderSplit(area carve.Rect, segments, spacers []carve.Rect) string {
	grid := make([][]int, area.Height)
	for y := range grid {
		grid[y] = make([]int, area.Width)
		for x := range grid[y] {
			grid[y][x] = -1
		}
	}
	paint := func(r carve.Rect, idx int) {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if y >= area.Y && y < area.Bottom() && x >= area.X && x < area.Right() {
					grid[y-area.Y][x-area.X] = idx
				}
			}
		}
	}
	for _, sp := range spacers {
		paint(sp, -2)
	}
	for i, seg := range segments {
		paint(seg, i)
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, idx := range row {
			if idx == -2 {
				b.WriteByte('.')
				continue
			}
			if idx < 0 {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(segmentColors[idx%len(segmentColors)])
			b.WriteString(style.Render(string(rune('A' + idx%26))))
		}
	}
	return b.String()
}
