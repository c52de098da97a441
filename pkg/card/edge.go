package card

import "github.com/matzehuels/tabsheet/pkg/plot"

// Edge names a side of an item or of the page.
type Edge = plot.Direction

// Edge values.
const (
	Top    = plot.Top
	Bottom = plot.Bottom
	Left   = plot.Left
	Right  = plot.Right
)

// printedToPage[r][e] is the page edge that printed edge e faces when the
// item is turned r quarter turns clockwise.
var printedToPage = [4]map[Edge]Edge{
	{Top: Top, Bottom: Bottom, Left: Left, Right: Right},
	{Top: Right, Bottom: Left, Left: Top, Right: Bottom},
	{Top: Bottom, Bottom: Top, Left: Right, Right: Left},
	{Top: Left, Bottom: Right, Left: Bottom, Right: Top},
}

// PageEdge maps an edge of the printed item back to the page-relative edge
// whose crop flag governs it. A tab on the right side mirrors the outline,
// which swaps left and right.
func PageEdge(r Rotation, rightSide bool, printed Edge) Edge {
	if !printed.Valid() || !r.Valid() {
		return 0
	}
	if rightSide {
		switch printed {
		case Left:
			printed = Right
		case Right:
			printed = Left
		}
	}
	return printedToPage[int(r)/90][printed]
}
