package sink

import (
	"github.com/matzehuels/tabsheet/pkg/paginate"
	"github.com/matzehuels/tabsheet/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders one PDF page per printed face via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(res *paginate.Result, rd *render.Renderer, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	pages, err := RenderSVGPages(res, rd, r.svgOpts...)
	if err != nil {
		return nil, err
	}
	return render.PagesToPDF(pages)
}
