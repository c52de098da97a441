// Package sink provides output format renderers for paginated dividers.
//
// # Overview
//
// A "sink" transforms a [paginate.Result] into a final output format:
//
//   - SVG: every printed face as vector strokes, faces stacked vertically
//   - JSON: placement records for external renderers
//   - PDF: one PDF page per face (requires rsvg-convert)
//   - PNG: a raster of the stacked SVG (requires rsvg-convert)
//
// # SVG Output
//
// [SVGCanvas] implements [plot.Canvas], [render.Styler] and
// [render.Labeler]. It keeps the current transformation as a
// [matrix.Matrix] and maps every point to sheet coordinates before
// writing, so the emitted SVG contains no nested transforms.
//
//	svg, err := sink.RenderSVG(result, renderer, sink.WithPageBorder())
//
// # JSON Output
//
// [RenderJSON] writes, per item, the position, rotation, page, crop flags
// and tab side, plus the margins of every page:
//
//	data, err := sink.RenderJSON(result, sink.WithJSONConfig(cfg))
package sink
