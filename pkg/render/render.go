package render

import (
	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/paginate"
	"github.com/matzehuels/tabsheet/pkg/plot"
)

// DefaultLineWidth is the outline stroke width in points.
const DefaultLineWidth = 0.1

// foldGray is the stroke shade of wrapper fold lines.
const foldGray = 0.9

// Styler is implemented by canvases that support stroke styling. The state
// is saved and restored by Push and Pop.
type Styler interface {
	SetLineWidth(w float64)
	SetStrokeGray(g float64)
}

// Labeler is implemented by canvases that can print text. The text is
// centered on (x, y).
type Labeler interface {
	Label(x, y, size float64, text string)
}

// Options controls how placed items are drawn.
type Options struct {
	LineWidth float64
	// LineType is used for items that carry no line style of their own.
	LineType  card.LineType
	Cropmarks bool
	// TabsOnly skips outlines; only labels are printed.
	TabsOnly   bool
	CenterTabs bool

	// DoubleSided adds a back face after every page. Wrappers have no
	// back face.
	DoubleSided bool
	// BackOffset and BackOffsetHeight shift the back face to compensate
	// for printer misregistration.
	BackOffset       float64
	BackOffsetHeight float64

	Wrapper bool
	Labels  bool

	Plot plot.Options
}

// Renderer draws pages of dividers of one size.
type Renderer struct {
	dims card.Dimensions
	opts Options
}

// NewRenderer returns a renderer for dividers of the given size.
func NewRenderer(dims card.Dimensions, opts Options) *Renderer {
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultLineWidth
	}
	if opts.LineType == "" {
		opts.LineType = card.LineSolid
	}
	return &Renderer{dims: dims, opts: opts}
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// Faces returns the faces to print for each page, front first.
func (r *Renderer) Faces() []bool {
	if r.opts.DoubleSided && !r.opts.Wrapper {
		return []bool{false, true}
	}
	return []bool{false}
}

// Page draws one face of a page. hMargin and vMargin place the field on
// the sheet; pass the same values for every page of a document.
func (r *Renderer) Page(cv plot.Canvas, page *paginate.Page, hMargin, vMargin float64, back bool) {
	cv.Push()
	defer cv.Pop()

	if s, ok := cv.(Styler); ok {
		s.SetLineWidth(r.opts.LineWidth)
	}

	pageWidth := page.Layout.Config().PageWidth - 2*hMargin
	cv.Translate(hMargin, vMargin)
	if back {
		cv.Translate(r.opts.BackOffset, r.opts.BackOffsetHeight)
		pageWidth -= 2 * r.opts.BackOffset
	}

	for _, p := range page.Plots {
		r.item(cv, p, pageWidth, back)
	}
}

func (r *Renderer) item(cv plot.Canvas, p *card.CardPlot, pageWidth float64, back bool) {
	cv.Push()
	defer cv.Pop()

	p.Apply(cv, pageWidth, back)

	if !r.opts.TabsOnly && (!back || r.opts.Cropmarks) {
		cv.Push()
		if p.Mirrored(back) {
			cv.Translate(p.Width, 0)
			cv.Scale(-1, 1)
		}
		r.outline(cv, p)
		cv.Pop()
	}

	if lb, ok := cv.(Labeler); ok && r.opts.Labels && p.Card.Name != "" {
		r.label(cv, lb, p, back)
	}
}

// frame describes the outline in a frame where the tab sits on the top
// edge, on the left unless mirrored.
type frame struct {
	w, h     float64
	tab      float64
	tabWidth float64
	offset   float64
}

// localFrame turns the canvas so that a side tab points up.
func (r *Renderer) localFrame(cv plot.Canvas, p *card.CardPlot) frame {
	f := frame{w: p.Width, h: p.Height, tab: r.dims.TabHeight, tabWidth: r.dims.TabWidth}
	if r.dims.TabVertical {
		cv.Translate(0, p.Height)
		cv.Rotate(-90)
		f.w, f.h = p.Height, p.Width
	}
	if r.opts.CenterTabs {
		f.offset = (f.w - f.tabWidth) / 2
	}
	return f
}

func (r *Renderer) outline(cv plot.Canvas, p *card.CardPlot) {
	f := r.localFrame(cv, p)

	line := r.pen(p)
	mid := line
	if line == plot.PenDot {
		mid = plot.PenNone
	}

	o := &outliner{
		Plotter:  plot.NewPlotter(cv, r.opts.Plot),
		item:     p,
		enabled:  r.opts.Cropmarks,
		vertical: r.dims.TabVertical,
		line:     line,
		mid:      mid,
	}
	if r.opts.Wrapper {
		o.wrapper(f, p.StackHeight)
		if s, ok := cv.(Styler); ok {
			s.SetStrokeGray(foldGray)
			o.folds(f, p.StackHeight)
		}
		return
	}
	o.divider(f)
}

func (r *Renderer) pen(p *card.CardPlot) plot.Pen {
	lt := p.Line
	if lt == "" {
		lt = r.opts.LineType
	}
	switch lt {
	case card.LineSolid:
		return plot.PenLine
	case card.LineDot:
		return plot.PenDot
	default:
		return plot.PenNone
	}
}

func (r *Renderer) label(cv plot.Canvas, lb Labeler, p *card.CardPlot, back bool) {
	cv.Push()
	defer cv.Pop()

	f := r.localFrame(cv, p)
	x, y := f.offset+f.tabWidth/2, f.h-f.tab/2
	if p.Mirrored(back) {
		// The outline mirrors across the item's width, which is the
		// height of a side-tab frame.
		if r.dims.TabVertical {
			y = f.tab / 2
		} else {
			x = f.w - x
		}
	}
	lb.Label(x, y, f.tab*0.5, p.Card.Name)
}
