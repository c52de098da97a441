// Package render draws paginated dividers onto a [plot.Canvas].
//
// # Overview
//
// The layout packages decide where every divider goes; this package turns
// those placement records into strokes. For each page a [Renderer]:
//
//   - moves the frame to the page margins (plus the back offset when
//     printing the back face)
//   - moves the frame to each item with [card.CardPlot.Apply]
//   - mirrors the frame when the tab sits on the other side of the face
//     being printed
//   - draws the divider or wrapper outline and its crop marks through a
//     [plot.Plotter]
//
// Every page and every item is bracketed by Push and Pop, so no transform
// leaks from one item into the next.
//
// Canvases may implement [Styler] to honour line widths and fold-line
// shading, and [Labeler] to print the card name on the tab.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert SVG output to other formats
// using the external rsvg-convert tool (from librsvg).
//
//	svg, err := sink.RenderSVG(result, renderer)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
