package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/errors"
)

// fitEpsilon absorbs float noise in divisions such as 0.3/0.1.
const fitEpsilon = 1e-9

// fit returns how many items of size fit into avail.
func fit(avail, size float64) int {
	if size <= 0 || avail < size-fitEpsilon {
		return 0
	}
	return int(math.Floor(avail/size + fitEpsilon))
}

// PageLayout is one candidate arrangement of equal-sized items on a page.
type PageLayout struct {
	// Width and Height are the item footprint in the field's orientation.
	Width, Height float64

	// Rotation is applied to every field item, ExtraRotation to the strip.
	Rotation      card.Rotation
	ExtraRotation card.Rotation
	Rotated       bool

	Columns int
	Rows    int
	Extra   int
	Number  int

	// MarginWidth and MarginHeight center the content inside the
	// minimum margins.
	MarginWidth  float64
	MarginHeight float64

	// ExtraSpacing separates the field from the extra strip.
	ExtraSpacing float64

	// Horizontal places the extra strip on the right as a column; otherwise
	// it runs along the top as a row.
	Horizontal bool

	Interleaved bool
	// NestVertical is set when pairs nest along the page's vertical axis.
	NestVertical bool
	// TabForward is set when an unturned, unmirrored field item's tab
	// points along the positive nesting axis.
	TabForward bool
	// TabVertical is set for side tabs, whose direction along the nesting
	// axis follows the item's tab side.
	TabVertical bool
	Doubles    int
	Singles    int
	TabHeight  float64

	cfg Config
}

// Config returns the configuration the layout was computed from.
func (l *PageLayout) Config() Config { return l.cfg }

// HorizontalMargin is the full left margin of the page.
func (l *PageLayout) HorizontalMargin() float64 { return l.MarginWidth + l.cfg.MinMarginH }

// VerticalMargin is the full bottom margin of the page.
func (l *PageLayout) VerticalMargin() float64 { return l.MarginHeight + l.cfg.MinMarginV }

// FieldWidth returns the horizontal extent of the regular field.
func (l *PageLayout) FieldWidth() float64 {
	if l.Interleaved && !l.NestVertical {
		return nestExtent(l.Doubles, l.Singles, l.Width, l.TabHeight)
	}
	return float64(l.Columns) * l.Width
}

// FieldHeight returns the vertical extent of the regular field.
func (l *PageLayout) FieldHeight() float64 {
	if l.Interleaved && l.NestVertical {
		return nestExtent(l.Doubles, l.Singles, l.Height, l.TabHeight)
	}
	return float64(l.Rows) * l.Height
}

// GridSize returns the number of items in the regular field.
func (l *PageLayout) GridSize() int { return l.Columns * l.Rows }

func (l *PageLayout) String() string {
	orient := "natural"
	if l.Rotated {
		orient = "rotated"
	}
	s := fmt.Sprintf("%dx%d %s", l.Columns, l.Rows, orient)
	if l.Extra > 0 {
		s += fmt.Sprintf(" +%d extra", l.Extra)
	}
	if l.Interleaved {
		s += " interleaved"
	}
	return s
}

// Pitch returns the length taken by a nested pair.
func Pitch(length, tab float64) float64 { return 2*length - tab }

// NestCount returns how many nested pairs and leftover single items of the
// given length fit into usable.
func NestCount(usable, length, tab float64) (doubles, singles int) {
	doubles = fit(usable, Pitch(length, tab))
	remainder := usable - float64(doubles)*Pitch(length, tab)
	singles = fit(remainder, length)
	return doubles, singles
}

func nestExtent(doubles, singles int, length, tab float64) float64 {
	return float64(doubles)*Pitch(length, tab) + float64(singles)*length
}

// newCandidate sets up the orientation of a candidate without sizing it.
func newCandidate(cfg Config, dims card.Dimensions, rotated bool) *PageLayout {
	l := &PageLayout{
		Width:         dims.Width,
		Height:        dims.Height,
		Rotation:      card.R0,
		ExtraRotation: card.R90,
		Rotated:       rotated,
		TabHeight:     dims.TabHeight,
		cfg:           cfg,
	}
	if rotated {
		l.Width, l.Height = dims.Height, dims.Width
		l.Rotation, l.ExtraRotation = card.R90, card.R0
	}
	l.Horizontal = l.Width >= l.Height

	// A quarter turn clockwise sends the item's +y to page +x and its +x
	// to page -y.
	l.NestVertical = dims.TabVertical == rotated
	l.TabForward = !(rotated && dims.TabVertical)
	l.TabVertical = dims.TabVertical
	return l
}

// Grid computes the plain field for one orientation, plus the extra strip
// when the configuration allows it.
func Grid(cfg Config, dims card.Dimensions, rotated bool) *PageLayout {
	l := newCandidate(cfg, dims, rotated)
	l.Columns = fit(cfg.UsableWidth(), l.Width)
	l.Rows = fit(cfg.UsableHeight(), l.Height)
	l.center()
	if cfg.AllowExtras {
		l.packExtras()
	}
	l.Number = l.GridSize() + l.Extra
	return l
}

// Interleave computes the nested field for one orientation. It reports
// false when the tab is too wide for two tabs to share one edge.
func Interleave(cfg Config, dims card.Dimensions, rotated bool) (*PageLayout, bool) {
	if !dims.CanInterleave() {
		return nil, false
	}
	l := newCandidate(cfg, dims, rotated)
	l.Interleaved = true
	if l.NestVertical {
		l.Doubles, l.Singles = NestCount(cfg.UsableHeight(), l.Height, l.TabHeight)
		l.Rows = 2*l.Doubles + l.Singles
		l.Columns = fit(cfg.UsableWidth(), l.Width)
	} else {
		l.Doubles, l.Singles = NestCount(cfg.UsableWidth(), l.Width, l.TabHeight)
		l.Columns = 2*l.Doubles + l.Singles
		l.Rows = fit(cfg.UsableHeight(), l.Height)
	}
	l.center()
	if cfg.AllowExtras {
		l.packExtras()
	}
	l.Number = l.GridSize() + l.Extra
	return l, true
}

func (l *PageLayout) center() {
	l.MarginWidth = (l.cfg.UsableWidth() - l.FieldWidth()) / 2
	l.MarginHeight = (l.cfg.UsableHeight() - l.FieldHeight()) / 2
}

// packExtras fills the leftover strip beside the field with items turned a
// quarter turn. Field and strip share one centering margin on the axis the
// strip runs along.
func (l *PageLayout) packExtras() {
	spacing := l.cfg.CropmarkSpace
	l.ExtraSpacing = spacing
	usableW, usableH := l.cfg.UsableWidth(), l.cfg.UsableHeight()

	if l.Horizontal {
		leftover := usableW - l.FieldWidth() - spacing
		if leftover < l.Height-fitEpsilon {
			return
		}
		l.Extra = fit(usableH, l.Width)
		if l.Extra == 0 {
			return
		}
		l.MarginWidth = (leftover - l.Height) / 2
		l.MarginHeight = math.Min(l.MarginHeight, (usableH-float64(l.Extra)*l.Width)/2)
		return
	}

	leftover := usableH - l.FieldHeight() - spacing
	if leftover < l.Width-fitEpsilon {
		return
	}
	l.Extra = fit(usableW, l.Height)
	if l.Extra == 0 {
		return
	}
	l.MarginHeight = (leftover - l.Width) / 2
	l.MarginWidth = math.Min(l.MarginWidth, (usableW-float64(l.Extra)*l.Height)/2)
}

// Candidate returns the best layout for one orientation: the plain grid, or
// the interleaved field when interleaving is allowed and strictly better.
func Candidate(cfg Config, dims card.Dimensions, rotated bool) *PageLayout {
	g := Grid(cfg, dims, rotated)
	if !cfg.AllowInterleave {
		return g
	}
	if il, ok := Interleave(cfg, dims, rotated); ok && il.Number > g.Number {
		return il
	}
	return g
}

// better reports whether a should replace the incumbent b.
func better(tb TieBreak, a, b *PageLayout) bool {
	if a.Number != b.Number {
		return a.Number > b.Number
	}
	if tb == TieFewerExtras && a.Extra != b.Extra {
		return a.Extra < b.Extra
	}
	return false
}

// Choose validates the inputs and returns the layout with the largest
// capacity. Without extras or interleaving the preferred orientation is
// used as is.
func Choose(cfg Config, dims card.Dimensions) (*PageLayout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	best := Candidate(cfg, dims, cfg.PreferRotated)
	if cfg.optimizing() {
		if alt := Candidate(cfg, dims, !cfg.PreferRotated); better(cfg.TieBreak, alt, best) {
			best = alt
		}
	}

	if best.Number == 0 {
		return nil, errors.New(errors.ErrCodeInfeasibleLayout,
			"a %gx%g divider does not fit in the %gx%g printable area",
			dims.Width, dims.Height, cfg.UsableWidth(), cfg.UsableHeight())
	}
	return best, nil
}

// Builder computes a layout for items of one height. The greedy paginator
// calls it whenever the tallest item on a page changes.
type Builder func(height float64) (*PageLayout, error)

// ForHeights returns a Builder that keeps every other dimension of dims.
func ForHeights(cfg Config, dims card.Dimensions) Builder {
	return func(height float64) (*PageLayout, error) {
		return Choose(cfg, dims.WithHeight(height))
	}
}
