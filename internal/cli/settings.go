package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tabsheet/pkg/config"
)

// settings binds the layout and drawing flags shared by layout, render and
// serve. Flags start at the built-in defaults; a --config file replaces
// those defaults, and flags given on the command line win over both.
type settings struct {
	opts  config.Options
	names []string
}

func newSettings() *settings {
	return &settings{opts: config.Default()}
}

// register adds the flags to cmd.
func (s *settings) register(cmd *cobra.Command) {
	o := &s.opts

	s.addString(cmd, &o.Paper, "paper", "paper preset: letter, a4, legal")
	s.addFloat(cmd, &o.PaperWidth, "paper-width", "custom paper width in cm (with --paper \"\")")
	s.addFloat(cmd, &o.PaperHeight, "paper-height", "custom paper height in cm (with --paper \"\")")
	s.addBool(cmd, &o.Landscape, "landscape", "turn the paper sideways")
	s.addFloat(cmd, &o.MinMarginH, "margin-h", "minimum left and right margin in cm")
	s.addFloat(cmd, &o.MinMarginV, "margin-v", "minimum top and bottom margin in cm")

	s.addFloat(cmd, &o.DividerWidth, "divider-width", "divider width in cm")
	s.addFloat(cmd, &o.DividerHeight, "divider-height", "divider height below the tab in cm")
	s.addFloat(cmd, &o.TabHeight, "tab-height", "tab height in cm")
	s.addFloat(cmd, &o.TabWidth, "tab-width", "tab width in cm")
	s.addBool(cmd, &o.TabVertical, "tab-vertical", "put the tab on the long side")
	s.addString(cmd, &o.TabSide, "tab-side", "left, right, left-alternate, right-alternate, left-alternate-text, right-alternate-text")
	s.addBool(cmd, &o.CenterTabs, "center-tabs", "center tabs along the edge")

	s.addBool(cmd, &o.AllowExtras, "extras", "fill leftover space with turned dividers")
	s.addBool(cmd, &o.AllowInterleave, "interleave", "nest tabs of opposing rows")
	s.addBool(cmd, &o.PreferRotated, "prefer-rotated", "prefer turned dividers on ties")
	s.addString(cmd, &o.TieBreak, "tie-break", "natural or fewer-extras")

	s.addBool(cmd, &o.Cropmarks, "cropmarks", "draw crop marks around the field")
	s.addFloat(cmd, &o.CropmarkLength, "cropmark-length", "crop mark length in cm")
	s.addFloat(cmd, &o.CropmarkSpacing, "cropmark-spacing", "gap between outline and crop mark in cm")
	s.addFloat(cmd, &o.LineWidth, "line-width", "outline width in points")
	s.addString(cmd, &o.LineType, "line-type", "line, dot or no_line")
	s.addBool(cmd, &o.TabsOnly, "tabs-only", "draw tab labels without outlines")
	s.addBool(cmd, &o.Labels, "labels", "write card names on the tabs")
	s.addString(cmd, &o.TextFront, "text-front", "front text: card, rules, blank, none")
	s.addString(cmd, &o.TextBack, "text-back", "back text: card, rules, blank, none")
	s.addBool(cmd, &o.DoubleSided, "double-sided", "add a back face for every page")
	s.addFloat(cmd, &o.BackOffset, "back-offset", "horizontal shift of back faces in cm")
	s.addFloat(cmd, &o.BackOffsetHeight, "back-offset-height", "vertical shift of back faces in cm")

	s.addBool(cmd, &o.Wrapper, "wrapper", "print card wrappers instead of dividers")
	s.addFloat(cmd, &o.Thickness, "thickness", "height of a 60-card stack in cm")
}

func (s *settings) addString(cmd *cobra.Command, p *string, name, usage string) {
	cmd.Flags().StringVar(p, name, *p, usage)
	s.names = append(s.names, name)
}

func (s *settings) addFloat(cmd *cobra.Command, p *float64, name, usage string) {
	cmd.Flags().Float64Var(p, name, *p, usage)
	s.names = append(s.names, name)
}

func (s *settings) addBool(cmd *cobra.Command, p *bool, name, usage string) {
	cmd.Flags().BoolVar(p, name, *p, usage)
	s.names = append(s.names, name)
}

// resolve returns the effective options for cmd.
func (s *settings) resolve(cmd *cobra.Command, path string) (config.Options, error) {
	if path == "" {
		return s.opts, s.opts.Validate()
	}

	changed := map[string]string{}
	for _, name := range s.names {
		if cmd.Flags().Changed(name) {
			changed[name] = cmd.Flags().Lookup(name).Value.String()
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return config.Options{}, err
	}
	s.opts = loaded
	for name, v := range changed {
		if err := cmd.Flags().Set(name, v); err != nil {
			return config.Options{}, err
		}
	}
	return s.opts, s.opts.Validate()
}
