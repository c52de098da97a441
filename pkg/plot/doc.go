// Package plot traces outlines with a relative-motion pen.
//
// A [Plotter] keeps a current point and moves it by deltas, optionally
// drawing a line to the new point or a dot at it. Crop marks are short
// strokes placed just outside a cut line; drawing one never moves the pen.
//
// Drawing goes through the [Canvas] interface, which is the only thing this
// package needs from a rendering backend: straight lines, filled dots, and a
// coordinate frame that can be translated, rotated, scaled, saved and
// restored.
//
//	p := plot.NewPlotter(canvas, plot.Options{})
//	p.Move(0, 0, plot.PenNone)
//	p.Cropmark(true, plot.Left)
//	p.Move(width, 0, plot.PenLine)
package plot
