package card

import (
	"strings"

	"github.com/matzehuels/tabsheet/pkg/errors"
)

// TabSide selects where tabs start and whether they alternate.
type TabSide string

const (
	TabLeft               TabSide = "left"
	TabRight              TabSide = "right"
	TabLeftAlternate      TabSide = "left-alternate"
	TabRightAlternate     TabSide = "right-alternate"
	TabLeftAlternateText  TabSide = "left-alternate-text"
	TabRightAlternateText TabSide = "right-alternate-text"
)

// ValidTabSides is the set of supported tab side policies.
var ValidTabSides = map[TabSide]bool{
	TabLeft:               true,
	TabRight:              true,
	TabLeftAlternate:      true,
	TabRightAlternate:     true,
	TabLeftAlternateText:  true,
	TabRightAlternateText: true,
}

// startsRight reports whether the first tab is on the right.
func (s TabSide) startsRight() bool { return strings.HasPrefix(string(s), "right") }

// alternates reports whether the tab changes side every item.
func (s TabSide) alternates() bool { return strings.Contains(string(s), "-alternate") }

// flipsText reports whether alternation flips the whole divider instead of
// just the tab.
func (s TabSide) flipsText() bool { return strings.HasSuffix(string(s), "-alternate-text") }

// SetupOptions controls how cards become CardPlots.
type SetupOptions struct {
	Dimensions Dimensions
	TabSide    TabSide
	TextFront  Text
	TextBack   Text
	Line       LineType

	// Wrapper builds card wrappers instead of dividers. A wrapper is two
	// divider heights plus twice the stack it holds.
	Wrapper   bool
	Thickness float64
}

// NewPlots turns cards into placement records in deck order. Tab sides and
// front/back flips are settled here, before any layout, so that moving an
// item between pages never changes how it prints.
func NewPlots(cards []Card, opts SetupOptions) ([]*CardPlot, error) {
	side := opts.TabSide
	if side == "" {
		side = TabLeft
	}
	if !ValidTabSides[side] {
		return nil, errors.New(errors.ErrCodeInvalidOptions, "invalid tab side: %q", side)
	}
	if opts.TextFront == "" {
		opts.TextFront = TextCard
	}
	if opts.TextBack == "" {
		opts.TextBack = TextRules
	}
	if opts.Line == "" {
		opts.Line = LineSolid
	}

	// rightSide holds the tab side of the current item. The outline is
	// drawn with the tab on the left and mirrored when it is set.
	rightSide := side.startsRight()
	start := rightSide

	plots := make([]*CardPlot, 0, len(cards))
	for _, c := range cards {
		height := opts.Dimensions.Height
		var stack float64
		if opts.Wrapper {
			stack = c.StackHeight(opts.Thickness)
			height = 2*opts.Dimensions.Height + 2*stack
		}

		p := &CardPlot{
			Card:        c,
			Width:       opts.Dimensions.Width,
			Height:      height,
			StackHeight: stack,
			RightSide:   rightSide,
			TextFront:   opts.TextFront,
			TextBack:    opts.TextBack,
			Line:        opts.Line,
		}
		if side.flipsText() && rightSide != start {
			// Flipping puts the tab back on the starting side and moves
			// the content to the other face instead.
			p.FlipFront2Back()
		}
		plots = append(plots, p)

		if side.alternates() {
			rightSide = !rightSide
		}
	}
	return plots, nil
}
