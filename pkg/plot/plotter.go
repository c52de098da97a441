package plot

// CM is one centimetre in canvas units (PostScript points).
const CM = 72 / 2.54

// Default mark geometry, in canvas units.
const (
	DefaultCropmarkLength  = 0.2 * CM
	DefaultCropmarkSpacing = 0.1 * CM
	DefaultDotSize         = 0.2
)

// Pen selects what a move leaves behind.
type Pen int

const (
	PenNone Pen = iota // move without marking
	PenLine            // stroke from the old point to the new one
	PenDot             // dot at the new point
)

// Direction names one side of a rectangle.
type Direction int

const (
	Top Direction = iota + 1
	Bottom
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four sides.
func (d Direction) Valid() bool { return d >= Top && d <= Right }

// Options configures mark geometry. Non-positive values select the defaults.
type Options struct {
	CropmarkLength  float64
	CropmarkSpacing float64
	DotSize         float64
}

// Plotter moves a virtual pen over a Canvas.
// It is not safe for concurrent use.
type Plotter struct {
	canvas Canvas
	x, y   float64

	cropLength  float64
	cropSpacing float64
	dotSize     float64
}

// NewPlotter returns a plotter at the origin of c.
func NewPlotter(c Canvas, opts Options) *Plotter {
	p := &Plotter{
		canvas:      c,
		cropLength:  opts.CropmarkLength,
		cropSpacing: opts.CropmarkSpacing,
		dotSize:     opts.DotSize,
	}
	if p.cropLength <= 0 {
		p.cropLength = DefaultCropmarkLength
	}
	if p.cropSpacing <= 0 {
		p.cropSpacing = DefaultCropmarkSpacing
	}
	if p.dotSize <= 0 {
		p.dotSize = DefaultDotSize
	}
	return p
}

// SetXY places the pen without drawing.
func (p *Plotter) SetXY(x, y float64) { p.x, p.y = x, y }

// XY returns the current point.
func (p *Plotter) XY() (float64, float64) { return p.x, p.y }

// Move advances the pen by (dx, dy).
func (p *Plotter) Move(dx, dy float64, pen Pen) {
	nx, ny := p.x+dx, p.y+dy
	switch pen {
	case PenLine:
		p.canvas.Line(p.x, p.y, nx, ny)
	case PenDot:
		p.canvas.Dot(nx, ny, p.dotSize)
	}
	p.x, p.y = nx, ny
}

// Cropmark draws a crop mark pointing away from the current point in
// direction dir. The pen ends where it started.
func (p *Plotter) Cropmark(enabled bool, dir Direction) {
	if !enabled {
		return
	}
	x, y := p.x, p.y
	defer p.SetXY(x, y)

	var ux, uy float64
	switch dir {
	case Top:
		uy = 1
	case Bottom:
		uy = -1
	case Right:
		ux = 1
	case Left:
		ux = -1
	default:
		return
	}
	p.Move(ux*p.cropSpacing, uy*p.cropSpacing, PenNone)
	p.Move(ux*p.cropLength, uy*p.cropLength, PenLine)
}
