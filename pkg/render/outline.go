package render

import (
	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/plot"
)

// outliner walks an item outline with crop marks. Directions passed to mark
// are in the outline frame; a side-tab frame is a quarter turn clockwise
// from the item frame.
type outliner struct {
	*plot.Plotter
	item     *card.CardPlot
	enabled  bool
	vertical bool
	line     plot.Pen
	mid      plot.Pen
}

func (o *outliner) mark(dirs ...plot.Direction) {
	for _, d := range dirs {
		o.Cropmark(o.enabled && o.item.CropEnabled(o.itemEdge(d)), d)
	}
}

func (o *outliner) itemEdge(d plot.Direction) card.Edge {
	if !o.vertical {
		return d
	}
	switch d {
	case plot.Top:
		return card.Right
	case plot.Bottom:
		return card.Left
	case plot.Left:
		return card.Top
	case plot.Right:
		return card.Bottom
	}
	return d
}

// peek marks a corner that the outline itself never visits.
func (o *outliner) peek(dx, dy float64, dirs ...plot.Direction) {
	o.Move(dx, dy, plot.PenNone)
	o.mark(dirs...)
	o.Move(-dx, -dy, plot.PenNone)
}

// divider draws
//
//	      F+---------+E . . . . . Y
//	       |         |
//	H------+G        D-------------C
//	|                              |
//	A-----V----------W-------------B
//
// with the tab between V and W, counter-clockwise from A.
func (o *outliner) divider(f frame) {
	base := f.h - f.tab
	rest := f.w - f.tabWidth - f.offset

	o.SetXY(0, 0)
	o.mark(plot.Left, plot.Bottom)
	if f.offset > 0 {
		o.Move(f.offset, 0, o.mid)
		o.mark(plot.Bottom)
	}
	o.Move(f.tabWidth, 0, o.mid)
	o.mark(plot.Bottom)
	o.Move(rest, 0, o.line)
	o.mark(plot.Bottom, plot.Right)
	o.Move(0, base, o.line)
	o.mark(plot.Right)
	o.Move(-rest, 0, o.line)
	o.Move(0, f.tab, o.line)
	o.mark(plot.Top)
	o.peek(rest, 0, plot.Top, plot.Right)
	o.Move(-f.tabWidth, 0, o.line)
	o.mark(plot.Top)
	o.Move(0, -f.tab, o.line)
	if f.offset > 0 {
		o.Move(-f.offset, 0, o.line)
	}
	o.mark(plot.Left)
	o.peek(0, f.tab, plot.Top, plot.Left)
	o.Move(0, -base, o.line)
}

// wrapper draws a wrapper: a body of two divider bases with room for the
// stack between them, a tab on the top and a tab on the bottom for the
// reverse side. The top tab is stack-tall deeper so it folds over the
// stack.
func (o *outliner) wrapper(f frame, stack float64) {
	bodyBottom := f.tab
	bodyTop := f.h - f.tab - stack
	rest := f.w - f.tabWidth - f.offset

	o.SetXY(0, 0)
	o.mark(plot.Bottom, plot.Left)
	o.Move(0, bodyBottom, plot.PenNone)
	o.mark(plot.Left)
	if f.offset > 0 {
		o.Move(f.offset, 0, o.line)
	}
	o.Move(0, -f.tab, o.line)
	o.mark(plot.Bottom)
	o.Move(f.tabWidth, 0, o.line)
	o.mark(plot.Bottom)
	o.Move(0, f.tab, o.line)
	o.Move(rest, 0, o.line)
	o.mark(plot.Right)
	o.peek(0, -f.tab, plot.Bottom, plot.Right)
	o.Move(0, bodyTop-bodyBottom, o.line)
	o.mark(plot.Right)
	o.Move(-rest, 0, o.line)
	o.Move(0, stack+f.tab, o.line)
	o.mark(plot.Top)
	o.peek(rest, 0, plot.Top, plot.Right)
	o.Move(-f.tabWidth, 0, o.line)
	o.mark(plot.Top)
	o.Move(0, -stack-f.tab, o.line)
	if f.offset > 0 {
		o.Move(-f.offset, 0, o.line)
	}
	o.mark(plot.Left)
	o.peek(0, stack+f.tab, plot.Top, plot.Left)
	o.Move(0, bodyBottom-bodyTop, o.line)
}

// folds draws the lines the wrapper is folded along: both sides of the
// stack in the body and in the top tab.
func (o *outliner) folds(f frame, stack float64) {
	base := (f.h - 2*f.tab - 2*stack) / 2
	y := f.tab + base

	o.SetXY(0, y)
	o.Move(f.w, 0, plot.PenLine)
	o.SetXY(0, y+stack)
	o.Move(f.w, 0, plot.PenLine)

	y = f.h - f.tab - stack
	o.SetXY(f.offset, y)
	o.Move(f.tabWidth, 0, plot.PenLine)
	o.SetXY(f.offset, y+stack)
	o.Move(f.tabWidth, 0, plot.PenLine)
}
