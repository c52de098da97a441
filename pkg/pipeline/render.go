package pipeline

import (
	"fmt"

	"github.com/matzehuels/tabsheet/pkg/render/sink"
)

// RenderPlan generates output artifacts in the requested formats.
func RenderPlan(plan *Plan, opts Options) (map[string][]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.PageBorder {
		svgOpts = append(svgOpts, sink.WithPageBorder())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(plan.Pages, plan.Renderer, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(plan.Pages, plan.Renderer,
				sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(plan.Pages, plan.Renderer, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(plan.Pages, sink.WithJSONConfig(plan.Config.LayoutConfig()))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
