package card

import "github.com/matzehuels/tabsheet/pkg/plot"

// Rotation is a clockwise quarter turn count in degrees: 0, 90, 180 or 270.
type Rotation int

const (
	R0   Rotation = 0
	R90  Rotation = 90
	R180 Rotation = 180
	R270 Rotation = 270
)

// Add returns r turned by delta degrees, normalised to [0, 360).
func (r Rotation) Add(delta int) Rotation {
	return Rotation(((int(r)+delta)%360 + 360) % 360)
}

// Valid reports whether r is one of the four quarter turns.
func (r Rotation) Valid() bool {
	return r == R0 || r == R90 || r == R180 || r == R270
}

// Quarter reports whether r turns the item on its side.
func (r Rotation) Quarter() bool { return r == R90 || r == R270 }

// Text selects what content is drawn on one face of a divider.
// The layout never looks inside it.
type Text string

const (
	TextCard  Text = "card"
	TextRules Text = "rules"
	TextBlank Text = "blank"
	TextNone  Text = "none"
)

// LineType is the outline style for an item.
type LineType string

const (
	LineSolid LineType = "line"
	LineDot   LineType = "dot"
	LineNone  LineType = "no_line"
)

// CardPlot is the placement record of one divider.
type CardPlot struct {
	Card Card

	// X, Y is the lower-left corner of the footprint in page space,
	// relative to the field origin.
	X, Y     float64
	Rotation Rotation

	// Width and Height are the un-rotated item size, including any
	// divider-to-divider spacing.
	Width, Height float64
	StackHeight   float64

	// RightSide is set when the tab is drawn on the right edge of the
	// item's own front-facing frame.
	RightSide bool
	TextFront Text
	TextBack  Text
	Line      LineType

	// Page-relative crop-mark eligibility.
	CropTop, CropBottom, CropLeft, CropRight bool

	// Page is the 1-based page number; zero until paginated.
	Page int
}

// SetXY places the item.
func (c *CardPlot) SetXY(x, y float64) { c.X, c.Y = x, y }

// Rotate turns the item by delta degrees clockwise. delta must be a
// multiple of 90.
func (c *CardPlot) Rotate(delta int) { c.Rotation = c.Rotation.Add(delta) }

// FlipFront2Back prints the front content on the back face and vice versa,
// which moves the tab to the opposite edge. Position, rotation and crop
// flags are left alone.
func (c *CardPlot) FlipFront2Back() {
	c.RightSide = !c.RightSide
	c.TextFront, c.TextBack = c.TextBack, c.TextFront
}

// Footprint returns the page-space width and height the item occupies.
func (c *CardPlot) Footprint() (w, h float64) {
	if c.Rotation.Quarter() {
		return c.Height, c.Width
	}
	return c.Width, c.Height
}

// Frame is a translation followed by a counter-clockwise rotation.
type Frame struct {
	X, Y  float64
	Angle float64
}

// DrawFrame computes the frame that puts the origin at the item's own
// lower-left corner, un-rotated. pageWidth is the width of the field the
// item was placed in; back selects the mirrored back face.
func (c *CardPlot) DrawFrame(pageWidth float64, back bool) Frame {
	x, y := c.X, c.Y
	rot := c.Rotation

	if back {
		x = pageWidth - x - c.Width
	}

	switch c.Rotation {
	case R180:
		x += c.Width
		y += c.Height
	case R90:
		if back {
			x += c.Width
			rot = R270
		} else {
			y += c.Width
		}
	case R270:
		if back {
			x += c.Width - c.Height
			y += c.Width
			rot = R90
		} else {
			x += c.Height
		}
	}

	// Layout rotations are clockwise, canvases turn counter-clockwise.
	return Frame{X: x, Y: y, Angle: float64((360 - int(rot)) % 360)}
}

// Apply moves the canvas frame to the item. Callers bracket it with
// Push/Pop.
func (c *CardPlot) Apply(cv plot.Canvas, pageWidth float64, back bool) {
	f := c.DrawFrame(pageWidth, back)
	cv.Translate(f.X, f.Y)
	if f.Angle != 0 {
		cv.Rotate(f.Angle)
	}
}

// Mirrored reports whether the outline has to be flipped horizontally so
// the tab lands on the correct edge of the face being printed.
func (c *CardPlot) Mirrored(back bool) bool { return c.RightSide != back }

// CropEnabled reports whether a crop mark is needed along the given printed
// edge of the item.
func (c *CardPlot) CropEnabled(printed Edge) bool {
	switch PageEdge(c.Rotation, c.RightSide, printed) {
	case Top:
		return c.CropTop
	case Bottom:
		return c.CropBottom
	case Left:
		return c.CropLeft
	case Right:
		return c.CropRight
	}
	return false
}

// SetCrops sets all four page-relative crop flags.
func (c *CardPlot) SetCrops(top, bottom, left, right bool) {
	c.CropTop, c.CropBottom, c.CropLeft, c.CropRight = top, bottom, left, right
}
