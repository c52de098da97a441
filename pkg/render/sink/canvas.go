package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/matzehuels/tabsheet/pkg/plot"
	"github.com/matzehuels/tabsheet/pkg/render"
)

type stroke struct {
	width float64
	gray  float64
}

type frameState struct {
	ctm    matrix.Matrix
	stroke stroke
}

// SVGCanvas writes SVG elements for a y-up canvas. Pages are placed with
// BeginPage; the canvas maps each page's origin to its lower-left corner.
type SVGCanvas struct {
	buf    bytes.Buffer
	ctm    matrix.Matrix
	stroke stroke
	stack  []frameState
}

// NewSVGCanvas returns an empty canvas.
func NewSVGCanvas() *SVGCanvas {
	return &SVGCanvas{ctm: matrix.Identity, stroke: stroke{width: render.DefaultLineWidth}}
}

// BeginPage resets the frame to a page of the given height whose top edge
// sits at top in the SVG document.
func (c *SVGCanvas) BeginPage(top, height float64) {
	c.stack = c.stack[:0]
	c.stroke = stroke{width: render.DefaultLineWidth}
	c.ctm = matrix.Matrix{1, 0, 0, -1, 0, top + height}
}

// Depth returns the number of unmatched Push calls.
func (c *SVGCanvas) Depth() int { return len(c.stack) }

// Bytes returns the elements written so far.
func (c *SVGCanvas) Bytes() []byte { return c.buf.Bytes() }

func (c *SVGCanvas) point(x, y float64) vec.Vec2 {
	px, py := c.ctm.Apply(x, y)
	return vec.Vec2{X: px, Y: py}
}

func (c *SVGCanvas) strokeColor() string {
	v := int(math.Round(c.stroke.gray * 255))
	return fmt.Sprintf("rgb(%d,%d,%d)", v, v, v)
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64) {
	a, b := c.point(x1, y1), c.point(x2, y2)
	fmt.Fprintf(&c.buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.3f" stroke-linecap="round"/>`+"\n",
		a.X, a.Y, b.X, b.Y, c.strokeColor(), c.stroke.width)
}

func (c *SVGCanvas) Dot(x, y, r float64) {
	p := c.point(x, y)
	fmt.Fprintf(&c.buf, `  <circle cx="%.3f" cy="%.3f" r="%.3f" fill="%s"/>`+"\n",
		p.X, p.Y, r, c.strokeColor())
}

func (c *SVGCanvas) Translate(dx, dy float64) { c.ctm = matrix.Translate(dx, dy).Mul(c.ctm) }
func (c *SVGCanvas) Rotate(deg float64)       { c.ctm = matrix.RotateDeg(deg).Mul(c.ctm) }
func (c *SVGCanvas) Scale(sx, sy float64)     { c.ctm = matrix.Scale(sx, sy).Mul(c.ctm) }

func (c *SVGCanvas) Push() {
	c.stack = append(c.stack, frameState{ctm: c.ctm, stroke: c.stroke})
}

func (c *SVGCanvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ctm, c.stroke = top.ctm, top.stroke
}

func (c *SVGCanvas) SetLineWidth(w float64) { c.stroke.width = w }
func (c *SVGCanvas) SetStrokeGray(g float64) { c.stroke.gray = g }

// Label writes text centered on (x, y), running along the current x axis.
func (c *SVGCanvas) Label(x, y, size float64, text string) {
	p := c.point(x, y)
	// The first row of the matrix is the image of the x axis.
	angle := math.Atan2(c.ctm[1], c.ctm[0]) * 180 / math.Pi

	fmt.Fprintf(&c.buf, `  <text x="%.3f" y="%.3f" font-size="%.2f" font-family="sans-serif" text-anchor="middle" dominant-baseline="middle" transform="rotate(%.1f %.3f %.3f)">`,
		p.X, p.Y, size, angle, p.X, p.Y)
	_ = xml.EscapeText(&c.buf, []byte(text))
	c.buf.WriteString("</text>\n")
}

// rect writes a page outline in document coordinates.
func (c *SVGCanvas) rect(x, y, w, h float64, class string) {
	fmt.Fprintf(&c.buf, `  <rect class="%s" x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="rgb(200,200,200)" stroke-width="0.5"/>`+"\n",
		class, x, y, w, h)
}

var (
	_ plot.Canvas    = (*SVGCanvas)(nil)
	_ render.Styler  = (*SVGCanvas)(nil)
	_ render.Labeler = (*SVGCanvas)(nil)
)
