package plot

// Canvas is the drawing surface used by the plotter and the page renderer.
//
// Rotate takes degrees counter-clockwise. Push and Pop save and restore the
// coordinate frame; every Push must be matched by a Pop.
type Canvas interface {
	Line(x1, y1, x2, y2 float64)
	Dot(x, y, r float64)

	Translate(dx, dy float64)
	Rotate(deg float64)
	Scale(sx, sy float64)

	Push()
	Pop()
}
