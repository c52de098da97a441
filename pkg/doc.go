// Package pkg provides the libraries behind tabsheet, a layout engine for
// tabbed card dividers.
//
// # Overview
//
// Tabsheet packs dividers (and card wrappers) for a deck of cards onto
// printable pages. A divider is a rectangle with a tab sticking out of one
// edge; the layout engine fits as many as possible on each sheet, optionally
// nesting the tabs of opposing rows or filling leftover space with turned
// dividers, and then draws outlines and crop marks.
//
// # Architecture
//
// The typical data flow:
//
//	deck file (TOML/YAML/JSON)
//	         ↓
//	    [card] package (placement records, tab sides)
//	         ↓
//	    [layout] package (page grid, interleaving, extras)
//	         ↓
//	    [paginate] package (page batches, placement)
//	         ↓
//	    [render] package (outlines, crop marks, labels)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tabsheet/pkg/card"
//	    "github.com/matzehuels/tabsheet/pkg/config"
//	    "github.com/matzehuels/tabsheet/pkg/layout"
//	    "github.com/matzehuels/tabsheet/pkg/paginate"
//	    "github.com/matzehuels/tabsheet/pkg/render"
//	    "github.com/matzehuels/tabsheet/pkg/render/sink"
//	)
//
//	cfg := config.Default()
//	plots, _ := card.NewPlots(cards, cfg.SetupOptions())
//	l, _ := layout.Choose(cfg.LayoutConfig(), cfg.Dimensions())
//	res, _ := paginate.Fixed(plots, l)
//	svg, _ := sink.RenderSVG(res, render.NewRenderer(cfg.Dimensions(), cfg.RenderOptions()))
//
// # Main Packages
//
// ## Geometry
//
// [plot] - Pen-based plotter over a transformable canvas, with crop marks.
//
// [card] - Divider dimensions, placement records and the mapping between
// printed edges and page edges.
//
// [layout] - The page layout solver: grid, orientation, interleaved tabs and
// extras.
//
// [paginate] - Fixed and greedy pagination.
//
// ## Output
//
// [render] - Divider and wrapper outlines; SVG to PDF/PNG conversion.
//
// [render/sink] - SVG canvas and the SVG, PDF, PNG and JSON writers.
//
// ## Infrastructure
//
// [config] and [deck] - Settings and deck files.
//
// [pipeline] - Complete deck → layout → render pipeline used by the CLI and
// the HTTP server.
//
// [cache] - Artifact cache (file, Redis, null).
//
// [server] - HTTP API.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example                 # Examples only
//
// [plot]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/plot
// [card]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/card
// [layout]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/layout
// [paginate]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/paginate
// [render]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/render/sink
// [config]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/config
// [deck]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/deck
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/tabsheet/pkg/server
package pkg
