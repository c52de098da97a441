package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tabsheet/pkg/errors"
	"github.com/matzehuels/tabsheet/pkg/paginate"
	"github.com/matzehuels/tabsheet/pkg/render"
)

// pageGap separates stacked faces in a single SVG document.
const pageGap = 20.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	border bool
	gap    float64
}

// WithPageBorder outlines every sheet.
func WithPageBorder() SVGOption { return func(r *svgRenderer) { r.border = true } }

// WithGap sets the distance between stacked faces.
func WithGap(g float64) SVGOption { return func(r *svgRenderer) { r.gap = g } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{gap: pageGap}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// face is one printed side of one sheet.
type face struct {
	page *paginate.Page
	back bool
}

func faces(res *paginate.Result, rd *render.Renderer) []face {
	var out []face
	for _, p := range res.Pages {
		for _, back := range rd.Faces() {
			out = append(out, face{page: p, back: back})
		}
	}
	return out
}

func sheetSize(res *paginate.Result) (w, h float64, err error) {
	if res == nil || len(res.Pages) == 0 {
		return 0, 0, errors.New(errors.ErrCodeRenderFailed, "nothing to render: no pages")
	}
	cfg := res.Pages[0].Layout.Config()
	return cfg.PageWidth, cfg.PageHeight, nil
}

// RenderSVG draws every face of every page into one document, top to
// bottom, front before back.
func RenderSVG(res *paginate.Result, rd *render.Renderer, opts ...SVGOption) ([]byte, error) {
	w, h, err := sheetSize(res)
	if err != nil {
		return nil, err
	}
	r := newSVGRenderer(opts...)
	fs := faces(res, rd)
	total := float64(len(fs))*h + float64(len(fs)-1)*r.gap
	hMargin, vMargin := res.Margins()

	cv := NewSVGCanvas()
	for i, f := range fs {
		top := float64(i) * (h + r.gap)
		if r.border {
			cv.rect(0, top, w, h, "sheet")
		}
		cv.BeginPage(top, h)
		rd.Page(cv, f.page, hMargin, vMargin, f.back)
	}
	return document(w, total, cv.Bytes()), nil
}

// RenderSVGPages draws each face into a document of its own.
func RenderSVGPages(res *paginate.Result, rd *render.Renderer, opts ...SVGOption) ([][]byte, error) {
	w, h, err := sheetSize(res)
	if err != nil {
		return nil, err
	}
	r := newSVGRenderer(opts...)
	hMargin, vMargin := res.Margins()

	var out [][]byte
	for _, f := range faces(res, rd) {
		cv := NewSVGCanvas()
		if r.border {
			cv.rect(0, 0, w, h, "sheet")
		}
		cv.BeginPage(0, h)
		rd.Page(cv, f.page, hMargin, vMargin, f.back)
		out = append(out, document(w, h, cv.Bytes()))
	}
	return out, nil
}

// document wraps body in an svg element sized in points.
func document(w, h float64, body []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.1fpt" height="%.1fpt">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", w, h)
	buf.Write(body)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
