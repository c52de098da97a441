// Package pipeline provides the divider pipeline for tabsheet.
//
// This package implements the complete deck → layout → render pipeline used
// by the CLI and the HTTP server, so both entry points validate, lay out and
// cache in exactly the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: turn the ordered deck into placement records and choose a page
//     layout (one for the whole deck, or one per page for wrappers)
//  2. Paginate: split the records into page batches and place each batch
//  3. Render: produce output in various formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  config.Default(),
//	    Deck:    d,
//	    Formats: []string{"svg", "pdf"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// The stages can also be run separately:
//
//	plan, err := runner.Plan(ctx, opts)
//	artifacts, err := runner.Render(ctx, plan, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabsheet/pkg/cache"
	"github.com/matzehuels/tabsheet/pkg/config"
	"github.com/matzehuels/tabsheet/pkg/deck"
	"github.com/matzehuels/tabsheet/pkg/errors"
)

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Config config.Options `json:"config"`
	Deck   *deck.Deck     `json:"deck"`
	Order  deck.Order     `json:"order,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	PageBorder bool     `json:"page_border,omitempty"`
	Scale      float64  `json:"scale,omitempty"`

	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the paginated placement.
	Plan *Plan

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Items        int
	Pages        int
	Capacity     int // items per page; zero when pages are sized separately
	LayoutTime   time.Duration
	PaginateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the deck and settings once and applies
// defaults. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Deck == nil {
		return errors.New(errors.ErrCodeInvalidDeck, "deck is required")
	}
	if err := o.Deck.Validate(); err != nil {
		return err
	}
	if o.Order == "" {
		o.Order = deck.OrderFile
	}
	if !deck.ValidOrders[o.Order] {
		return errors.New(errors.ErrCodeInvalidOptions,
			"invalid order: %q (must be one of: file, name, set)", o.Order)
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "scale must not be negative")
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for the placement.
func (o *Options) LayoutKeyOpts() (cache.LayoutKeyOpts, error) {
	h, err := cache.HashJSON(o.Config)
	if err != nil {
		return cache.LayoutKeyOpts{}, fmt.Errorf("hash options: %w", err)
	}
	return cache.LayoutKeyOpts{OptionsHash: h, Order: string(o.Order)}, nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	h, _ := cache.HashJSON(struct {
		Border bool
		Scale  float64
	}{o.PageBorder, o.Scale})
	return cache.ArtifactKeyOpts{Format: format, OptionsHash: h}
}
