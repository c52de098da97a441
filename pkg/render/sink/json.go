package sink

import (
	"encoding/json"

	"github.com/matzehuels/tabsheet/pkg/errors"
	"github.com/matzehuels/tabsheet/pkg/layout"
	"github.com/matzehuels/tabsheet/pkg/paginate"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	config *layout.Config
}

// WithJSONConfig records the layout configuration in the output so the
// placement can be reproduced.
func WithJSONConfig(cfg layout.Config) JSONOption {
	return func(r *jsonRenderer) { r.config = &cfg }
}

type jsonOutput struct {
	PageWidth  float64        `json:"page_width"`
	PageHeight float64        `json:"page_height"`
	Margins    jsonMargins    `json:"margins"`
	Config     *layout.Config `json:"config,omitempty"`
	Pages      []jsonPage     `json:"pages"`
	Items      []jsonItem     `json:"items"`
}

type jsonMargins struct {
	Horizontal float64 `json:"horizontal_margin"`
	Vertical   float64 `json:"vertical_margin"`
}

type jsonPage struct {
	Number      int         `json:"number"`
	Layout      string      `json:"layout"`
	Columns     int         `json:"columns"`
	Rows        int         `json:"rows"`
	Extra       int         `json:"extra,omitempty"`
	Capacity    int         `json:"capacity"`
	Interleaved bool        `json:"interleaved,omitempty"`
	Items       int         `json:"items"`
	Margins     jsonMargins `json:"margins"`
}

type jsonItem struct {
	Name        string  `json:"name"`
	Set         string  `json:"set,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Rotation    int     `json:"rotation"`
	Page        int     `json:"page"`
	CropTop     bool    `json:"crop_top"`
	CropBottom  bool    `json:"crop_bottom"`
	CropLeft    bool    `json:"crop_left"`
	CropRight   bool    `json:"crop_right"`
	RightSide   bool    `json:"right_side"`
	TextFront   string  `json:"text_front,omitempty"`
	TextBack    string  `json:"text_back,omitempty"`
	StackHeight float64 `json:"stack_height,omitempty"`
}

// RenderJSON exports the placement of every item as a pretty-printed JSON
// document. Item coordinates are relative to the field origin; the
// document-wide margins place that origin on the sheet.
func RenderJSON(res *paginate.Result, opts ...JSONOption) ([]byte, error) {
	if res == nil || len(res.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "nothing to render: no pages")
	}
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	cfg := res.Pages[0].Layout.Config()
	h, v := res.Margins()
	out := jsonOutput{
		PageWidth:  cfg.PageWidth,
		PageHeight: cfg.PageHeight,
		Margins:    jsonMargins{Horizontal: h, Vertical: v},
		Config:     r.config,
		Pages:      make([]jsonPage, 0, len(res.Pages)),
		Items:      make([]jsonItem, 0, res.Items()),
	}

	for _, p := range res.Pages {
		l := p.Layout
		out.Pages = append(out.Pages, jsonPage{
			Number:      p.Number,
			Layout:      l.String(),
			Columns:     l.Columns,
			Rows:        l.Rows,
			Extra:       l.Extra,
			Capacity:    l.Number,
			Interleaved: l.Interleaved,
			Items:       len(p.Plots),
			Margins:     jsonMargins{Horizontal: l.HorizontalMargin(), Vertical: l.VerticalMargin()},
		})
		for _, it := range p.Plots {
			out.Items = append(out.Items, jsonItem{
				Name:        it.Card.Name,
				Set:         it.Card.Set,
				X:           it.X,
				Y:           it.Y,
				Width:       it.Width,
				Height:      it.Height,
				Rotation:    int(it.Rotation),
				Page:        it.Page,
				CropTop:     it.CropTop,
				CropBottom:  it.CropBottom,
				CropLeft:    it.CropLeft,
				CropRight:   it.CropRight,
				RightSide:   it.RightSide,
				TextFront:   string(it.TextFront),
				TextBack:    string(it.TextBack),
				StackHeight: it.StackHeight,
			})
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
