package config

import (
	"strings"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/layout"
	"github.com/matzehuels/tabsheet/pkg/plot"
	"github.com/matzehuels/tabsheet/pkg/render"
)

// CM is one centimetre in points.
const CM = plot.CM

// StackCards is the number of cards Thickness refers to.
const StackCards = 60

// Paper presets in centimetres, portrait.
var Papers = map[string][2]float64{
	"letter": {21.59, 27.94},
	"a4":     {21.0, 29.7},
	"legal":  {21.59, 35.56},
}

// Options is the complete set of user-facing settings. Lengths are in
// centimetres unless noted.
type Options struct {
	// Paper selects a preset; PaperWidth and PaperHeight are used when it
	// is empty.
	Paper       string  `toml:"paper" yaml:"paper" json:"paper,omitempty"`
	PaperWidth  float64 `toml:"paper_width" yaml:"paper_width" json:"paper_width,omitempty"`
	PaperHeight float64 `toml:"paper_height" yaml:"paper_height" json:"paper_height,omitempty"`
	Landscape   bool    `toml:"landscape" yaml:"landscape" json:"landscape,omitempty"`
	MinMarginH  float64 `toml:"min_margin_h" yaml:"min_margin_h" json:"min_margin_h"`
	MinMarginV  float64 `toml:"min_margin_v" yaml:"min_margin_v" json:"min_margin_v"`

	// DividerHeight is the body below the tab.
	DividerWidth  float64 `toml:"divider_width" yaml:"divider_width" json:"divider_width"`
	DividerHeight float64 `toml:"divider_height" yaml:"divider_height" json:"divider_height"`
	TabHeight     float64 `toml:"tab_height" yaml:"tab_height" json:"tab_height"`
	TabWidth      float64 `toml:"tab_width" yaml:"tab_width" json:"tab_width"`
	TabVertical   bool    `toml:"tab_vertical" yaml:"tab_vertical" json:"tab_vertical,omitempty"`
	TabSide       string  `toml:"tab_side" yaml:"tab_side" json:"tab_side"`
	CenterTabs    bool    `toml:"center_tabs" yaml:"center_tabs" json:"center_tabs,omitempty"`

	AllowExtras     bool   `toml:"allow_extras" yaml:"allow_extras" json:"allow_extras,omitempty"`
	AllowInterleave bool   `toml:"allow_interleave" yaml:"allow_interleave" json:"allow_interleave,omitempty"`
	PreferRotated   bool   `toml:"prefer_rotated" yaml:"prefer_rotated" json:"prefer_rotated,omitempty"`
	TieBreak        string `toml:"tie_break" yaml:"tie_break" json:"tie_break,omitempty"`

	Cropmarks       bool    `toml:"cropmarks" yaml:"cropmarks" json:"cropmarks,omitempty"`
	CropmarkLength  float64 `toml:"cropmark_length" yaml:"cropmark_length" json:"cropmark_length"`
	CropmarkSpacing float64 `toml:"cropmark_spacing" yaml:"cropmark_spacing" json:"cropmark_spacing"`

	// LineWidth is in points.
	LineWidth   float64 `toml:"line_width" yaml:"line_width" json:"line_width"`
	LineType    string  `toml:"line_type" yaml:"line_type" json:"line_type"`
	TabsOnly    bool    `toml:"tabs_only" yaml:"tabs_only" json:"tabs_only,omitempty"`
	Labels      bool    `toml:"labels" yaml:"labels" json:"labels"`
	TextFront   string  `toml:"text_front" yaml:"text_front" json:"text_front"`
	TextBack    string  `toml:"text_back" yaml:"text_back" json:"text_back"`
	DoubleSided bool    `toml:"double_sided" yaml:"double_sided" json:"double_sided,omitempty"`

	BackOffset       float64 `toml:"back_offset" yaml:"back_offset" json:"back_offset,omitempty"`
	BackOffsetHeight float64 `toml:"back_offset_height" yaml:"back_offset_height" json:"back_offset_height,omitempty"`

	// Wrapper prints card wrappers; Thickness is the height of a stack of
	// StackCards cards.
	Wrapper   bool    `toml:"wrapper" yaml:"wrapper" json:"wrapper,omitempty"`
	Thickness float64 `toml:"thickness" yaml:"thickness" json:"thickness"`
}

// Default returns the built-in settings.
func Default() Options {
	return Options{
		Paper:           "letter",
		MinMarginH:      1,
		MinMarginV:      1,
		DividerWidth:    9.1,
		DividerHeight:   7.0,
		TabHeight:       0.85,
		TabWidth:        4.0,
		TabSide:         string(card.TabRightAlternate),
		TieBreak:        string(layout.TieNatural),
		CropmarkLength:  0.2,
		CropmarkSpacing: 0.1,
		LineWidth:       render.DefaultLineWidth,
		LineType:        string(card.LineSolid),
		Labels:          true,
		TextFront:       string(card.TextCard),
		TextBack:        string(card.TextRules),
		Thickness:       2.0,
	}
}

// PaperSize returns the sheet size in points.
func (o Options) PaperSize() (w, h float64) {
	w, h = o.PaperWidth, o.PaperHeight
	if size, ok := Papers[strings.ToLower(o.Paper)]; ok {
		w, h = size[0], size[1]
	}
	if o.Landscape {
		w, h = h, w
	}
	return w * CM, h * CM
}

// LayoutConfig returns the page configuration for the layout solver.
func (o Options) LayoutConfig() layout.Config {
	w, h := o.PaperSize()
	cfg := layout.Config{
		PageWidth:       w,
		PageHeight:      h,
		MinMarginH:      o.MinMarginH * CM,
		MinMarginV:      o.MinMarginV * CM,
		AllowExtras:     o.AllowExtras,
		AllowInterleave: o.AllowInterleave,
		PreferRotated:   o.PreferRotated,
		TieBreak:        layout.TieBreak(o.TieBreak),
	}
	if o.Cropmarks {
		cfg.CropmarkSpace = 2 * (o.CropmarkLength + o.CropmarkSpacing) * CM
	}
	return cfg
}

// Dimensions returns the divider footprint in points, tab included.
func (o Options) Dimensions() card.Dimensions {
	return card.Dimensions{
		Width:       o.DividerWidth * CM,
		Height:      (o.DividerHeight + o.TabHeight) * CM,
		TabHeight:   o.TabHeight * CM,
		TabWidth:    o.TabWidth * CM,
		TabVertical: o.TabVertical,
	}
}

// CardThickness returns the thickness of one card in points.
func (o Options) CardThickness() float64 {
	return o.Thickness / StackCards * CM
}

// SetupOptions returns the settings for turning cards into placement
// records.
func (o Options) SetupOptions() card.SetupOptions {
	return card.SetupOptions{
		Dimensions: o.Dimensions(),
		TabSide:    card.TabSide(o.TabSide),
		TextFront:  card.Text(o.TextFront),
		TextBack:   card.Text(o.TextBack),
		Line:       card.LineType(o.LineType),
		Wrapper:    o.Wrapper,
		Thickness:  o.CardThickness(),
	}
}

// RenderOptions returns the drawing settings.
func (o Options) RenderOptions() render.Options {
	return render.Options{
		LineWidth:        o.LineWidth,
		LineType:         card.LineType(o.LineType),
		Cropmarks:        o.Cropmarks,
		TabsOnly:         o.TabsOnly,
		CenterTabs:       o.CenterTabs,
		DoubleSided:      o.DoubleSided,
		BackOffset:       o.BackOffset * CM,
		BackOffsetHeight: o.BackOffsetHeight * CM,
		Wrapper:          o.Wrapper,
		Labels:           o.Labels,
		Plot: plot.Options{
			CropmarkLength:  o.CropmarkLength * CM,
			CropmarkSpacing: o.CropmarkSpacing * CM,
		},
	}
}
