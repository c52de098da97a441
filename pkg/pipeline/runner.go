package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabsheet/pkg/cache"
	"github.com/matzehuels/tabsheet/pkg/observability"
	"github.com/matzehuels/tabsheet/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → paginate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	plan, err := r.plan(ctx, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Plan = plan

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, plan, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Plan lays the deck out on pages without rendering.
func (r *Runner) Plan(ctx context.Context, opts Options) (*Plan, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return r.plan(ctx, opts, &Stats{})
}

func (r *Runner) plan(ctx context.Context, opts Options, stats *Stats) (*Plan, error) {
	hooks := observability.Pipeline()

	cards, err := opts.Deck.Sorted(opts.Order)
	if err != nil {
		return nil, err
	}
	stats.Items = len(cards)

	// Stage 1: Layout
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(cards))
	plots, err := NewPlots(cards, opts.Config)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(layoutStart), err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	l, err := ChooseLayout(opts.Config)
	stats.LayoutTime = time.Since(layoutStart)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, stats.LayoutTime, err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	if l != nil {
		stats.Capacity = l.Number
		opts.Logger.Debug("chose page layout",
			"layout", l.String(),
			"capacity", l.Number,
			"interleaved", l.Interleaved,
			"extras", l.Extra)
	}
	hooks.OnLayoutComplete(ctx, stats.Capacity, stats.LayoutTime, nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Paginate
	paginateStart := time.Now()
	hooks.OnPaginateStart(ctx, len(plots))
	pages, err := Paginate(plots, l, opts.Config)
	stats.PaginateTime = time.Since(paginateStart)
	if err != nil {
		hooks.OnPaginateComplete(ctx, 0, stats.PaginateTime, err)
		return nil, fmt.Errorf("paginate: %w", err)
	}
	stats.Pages = pages.PageCount()
	hooks.OnPaginateComplete(ctx, stats.Pages, stats.PaginateTime, nil)

	h, v := pages.Margins()
	opts.Logger.Info("laid out deck",
		"items", stats.Items,
		"pages", stats.Pages,
		"margin_h", fmt.Sprintf("%.1f", h),
		"margin_v", fmt.Sprintf("%.1f", v),
		"duration", stats.LayoutTime+stats.PaginateTime)

	key, err := r.layoutKey(opts)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Key:      key,
		Config:   opts.Config,
		Plots:    plots,
		Layout:   l,
		Pages:    pages,
		Renderer: render.NewRenderer(opts.Config.Dimensions(), opts.Config.RenderOptions()),
	}, nil
}

// layoutKey identifies a placement by the ordered deck and the settings.
func (r *Runner) layoutKey(opts Options) (string, error) {
	deckHash, err := cache.HashJSON(opts.Deck.Cards)
	if err != nil {
		return "", fmt.Errorf("hash deck: %w", err)
	}
	keyOpts, err := opts.LayoutKeyOpts()
	if err != nil {
		return "", err
	}
	return r.Keyer.LayoutKey(deckHash, keyOpts), nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, plan *Plan, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	// Serve from cache only when every format is there.
	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(plan.Key, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil
		}
	}

	rendered, err := RenderPlan(plan, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(plan.Key, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, plan *Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, plan, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
