package pipeline

import (
	"fmt"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/config"
	"github.com/matzehuels/tabsheet/pkg/layout"
	"github.com/matzehuels/tabsheet/pkg/paginate"
	"github.com/matzehuels/tabsheet/pkg/render"
)

// =============================================================================
// Layout and Pagination
// =============================================================================

// Plan is a deck laid out on pages and ready to render.
type Plan struct {
	// Key identifies the placement for artifact caching.
	Key string

	Config config.Options
	Plots  []*card.CardPlot

	// Layout is the page layout shared by every page. It is nil for
	// wrappers, whose pages are each sized to their tallest item.
	Layout *layout.PageLayout

	Pages    *paginate.Result
	Renderer *render.Renderer
}

// Capacity returns the items per page, or zero when pages are sized
// separately.
func (p *Plan) Capacity() int {
	if p.Layout == nil {
		return 0
	}
	return p.Layout.Number
}

// NewPlots builds the placement records for an ordered list of cards.
func NewPlots(cards []card.Card, cfg config.Options) ([]*card.CardPlot, error) {
	plots, err := card.NewPlots(cards, cfg.SetupOptions())
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	return plots, nil
}

// ChooseLayout picks the page layout for dividers of the configured size.
// Wrappers return nil: their layout depends on the items of each page.
func ChooseLayout(cfg config.Options) (*layout.PageLayout, error) {
	if cfg.Wrapper {
		return nil, nil
	}
	return layout.Choose(cfg.LayoutConfig(), cfg.Dimensions())
}

// Paginate splits plots into pages. With a layout every page shares it;
// without one each page gets a layout for its tallest item.
func Paginate(plots []*card.CardPlot, l *layout.PageLayout, cfg config.Options) (*paginate.Result, error) {
	if l != nil {
		return paginate.Fixed(plots, l)
	}
	return paginate.Greedy(plots, layout.ForHeights(cfg.LayoutConfig(), cfg.Dimensions()))
}
