package config

import (
	"strings"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/errors"
	"github.com/matzehuels/tabsheet/pkg/layout"
)

var validLineTypes = map[card.LineType]bool{
	card.LineSolid: true,
	card.LineDot:   true,
	card.LineNone:  true,
}

var validTexts = map[card.Text]bool{
	card.TextCard:  true,
	card.TextRules: true,
	card.TextBlank: true,
	card.TextNone:  true,
}

// Validate reports the first invalid setting. Geometry that only fails in
// combination, such as margins that eat the page, is checked again by the
// layout solver.
func (o Options) Validate() error {
	if o.Paper != "" {
		if _, ok := Papers[strings.ToLower(o.Paper)]; !ok {
			return invalid("paper", "unknown paper %q (must be one of: letter, a4, legal)", o.Paper)
		}
	} else if o.PaperWidth <= 0 || o.PaperHeight <= 0 {
		return invalid("paper", "paper_width and paper_height are required without a paper preset")
	}

	positive := []struct {
		field string
		v     float64
	}{
		{"divider_width", o.DividerWidth},
		{"divider_height", o.DividerHeight},
		{"cropmark_length", o.CropmarkLength},
		{"cropmark_spacing", o.CropmarkSpacing},
		{"line_width", o.LineWidth},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return invalid(p.field, "must be positive, got %v", p.v)
		}
	}

	nonNegative := []struct {
		field string
		v     float64
	}{
		{"min_margin_h", o.MinMarginH},
		{"min_margin_v", o.MinMarginV},
		{"tab_height", o.TabHeight},
		{"tab_width", o.TabWidth},
		{"thickness", o.Thickness},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return invalid(n.field, "must not be negative, got %v", n.v)
		}
	}

	if !card.ValidTabSides[card.TabSide(o.TabSide)] {
		return invalid("tab_side", "unknown tab side %q", o.TabSide)
	}
	if o.TieBreak != "" && !layout.ValidTieBreaks[layout.TieBreak(o.TieBreak)] {
		return invalid("tie_break", "unknown tie break %q (must be one of: natural, fewer-extras)", o.TieBreak)
	}
	if !validLineTypes[card.LineType(o.LineType)] {
		return invalid("line_type", "unknown line type %q (must be one of: line, dot, no_line)", o.LineType)
	}
	for field, t := range map[string]string{"text_front": o.TextFront, "text_back": o.TextBack} {
		if !validTexts[card.Text(t)] {
			return invalid(field, "unknown text %q (must be one of: card, rules, blank, none)", t)
		}
	}
	if o.Wrapper && o.Thickness <= 0 {
		return invalid("thickness", "wrappers need a positive stack thickness")
	}

	if err := o.Dimensions().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "divider size")
	}
	if err := o.LayoutConfig().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "page setup")
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, field+": "+format, args...)
}
