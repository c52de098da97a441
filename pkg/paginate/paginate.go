package paginate

import (
	"math"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/errors"
	"github.com/matzehuels/tabsheet/pkg/layout"
)

// Page is one printed sheet.
type Page struct {
	// Number is 1-based.
	Number int
	Layout *layout.PageLayout
	Plots  []*card.CardPlot
}

// Result is the outcome of a pagination run.
type Result struct {
	Pages []*Page
}

// PageCount returns the number of pages.
func (r *Result) PageCount() int { return len(r.Pages) }

// Items returns the number of placed items across all pages.
func (r *Result) Items() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Plots)
	}
	return n
}

// Margins returns the smallest horizontal and vertical margin across all
// pages. Rendering every page with these keeps the sheets aligned.
func (r *Result) Margins() (horizontal, vertical float64) {
	if len(r.Pages) == 0 {
		return 0, 0
	}
	horizontal, vertical = math.Inf(1), math.Inf(1)
	for _, p := range r.Pages {
		horizontal = math.Min(horizontal, p.Layout.HorizontalMargin())
		vertical = math.Min(vertical, p.Layout.VerticalMargin())
	}
	return horizontal, vertical
}

// Fixed places plots on pages of one layout.
func Fixed(plots []*card.CardPlot, l *layout.PageLayout) (*Result, error) {
	if l == nil || l.Number <= 0 {
		return nil, errors.New(errors.ErrCodeInfeasibleLayout, "layout has no capacity")
	}

	res := &Result{}
	for start := 0; start < len(plots); start += l.Number {
		end := min(start+l.Number, len(plots))
		if err := res.add(l, plots[start:end]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Greedy places plots of varying height, building a layout per page with
// build. A page is closed as soon as admitting the next item would leave
// the layout for the page's tallest item without room.
func Greedy(plots []*card.CardPlot, build layout.Builder) (*Result, error) {
	res := &Result{}
	if len(plots) == 0 {
		return res, nil
	}

	tallest := maxHeight(plots)
	base, err := build(tallest)
	if err != nil {
		return nil, err
	}
	guaranteed := base.Number

	for start := 0; start < len(plots); {
		end := min(start+guaranteed, len(plots))
		height := maxHeight(plots[start:end])
		l, err := build(height)
		if err != nil || l.Number < end-start {
			// The layout for the tallest item always fits.
			l, height = base, tallest
		}

		for end < len(plots) {
			h := math.Max(height, plots[end].Height)
			next, err := build(h)
			if err != nil || next.Number < end-start+1 {
				break
			}
			l, height = next, h
			end++
		}

		if err := res.add(l, plots[start:end]); err != nil {
			return nil, err
		}
		start = end
	}
	return res, nil
}

func (r *Result) add(l *layout.PageLayout, batch []*card.CardPlot) error {
	page := &Page{Number: len(r.Pages) + 1, Layout: l, Plots: batch}
	if err := l.Place(batch, page.Number); err != nil {
		return err
	}
	r.Pages = append(r.Pages, page)
	return nil
}

func maxHeight(plots []*card.CardPlot) float64 {
	h := 0.0
	for _, p := range plots {
		h = math.Max(h, p.Height)
	}
	return h
}
