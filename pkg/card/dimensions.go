package card

import (
	"github.com/matzehuels/tabsheet/pkg/errors"
)

// Dimensions is the footprint of one divider in its un-rotated frame.
// Width and Height include the tab.
type Dimensions struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	TabHeight float64 `json:"tab_height"`
	TabWidth  float64 `json:"tab_width"`

	// TabVertical is set when the tab sits on a side edge and protrudes
	// along the width instead of along the height.
	TabVertical bool `json:"tab_vertical,omitempty"`
}

// BaseHeight returns the height of the body below the tab.
func (d Dimensions) BaseHeight() float64 { return d.Height - d.TabHeight }

// TabLength returns the extent of the item along the axis the tab protrudes on.
func (d Dimensions) TabLength() float64 {
	if d.TabVertical {
		return d.Width
	}
	return d.Height
}

// TabSpan returns the extent of the item across the tab axis.
func (d Dimensions) TabSpan() float64 {
	if d.TabVertical {
		return d.Height
	}
	return d.Width
}

// CanInterleave reports whether two items can nest their tabs: the tab must
// take at most half of the edge it sits on.
func (d Dimensions) CanInterleave() bool {
	return d.TabHeight > 0 && d.TabWidth <= d.TabSpan()/2
}

// WithHeight returns a copy with a different overall height.
func (d Dimensions) WithHeight(h float64) Dimensions {
	d.Height = h
	return d
}

// Validate checks that the footprint is usable.
func (d Dimensions) Validate() error {
	if err := errors.ValidatePositive("divider width", d.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("divider height", d.Height); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("tab height", d.TabHeight); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("tab width", d.TabWidth); err != nil {
		return err
	}
	if d.TabHeight >= d.TabLength() {
		return errors.New(errors.ErrCodeInvalidOptions,
			"tab height %g must be smaller than the divider length %g", d.TabHeight, d.TabLength())
	}
	if d.TabWidth > d.TabSpan() {
		return errors.New(errors.ErrCodeInvalidOptions,
			"tab width %g exceeds the divider edge %g", d.TabWidth, d.TabSpan())
	}
	return nil
}

// Card is one entry of a deck: the thing a divider indexes.
type Card struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Set   string `json:"set,omitempty" toml:"set" yaml:"set"`
	Count int    `json:"count,omitempty" toml:"count" yaml:"count"`
}

// StackHeight returns the height of the card stack a wrapper has to hold.
func (c Card) StackHeight(thickness float64) float64 {
	return float64(c.Count) * thickness
}
