package layout

import (
	"github.com/matzehuels/tabsheet/pkg/errors"
)

// TieBreak decides between two candidates of equal capacity.
type TieBreak string

const (
	// TieNatural keeps the preferred orientation.
	TieNatural TieBreak = "natural"
	// TieFewerExtras keeps the candidate with fewer items in the extra
	// strip, then the preferred orientation.
	TieFewerExtras TieBreak = "fewer-extras"
)

// ValidTieBreaks is the set of supported tie-break policies.
var ValidTieBreaks = map[TieBreak]bool{
	TieNatural:     true,
	TieFewerExtras: true,
}

// Config is the page shape and layout policy. It is passed by value and
// never modified by the solver.
type Config struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	MinMarginH float64 `json:"min_margin_h"`
	MinMarginV float64 `json:"min_margin_v"`

	AllowExtras     bool `json:"allow_extras"`
	AllowInterleave bool `json:"allow_interleave"`
	PreferRotated   bool `json:"prefer_rotated"`

	// CropmarkSpace separates the field from the extra strip so crop marks
	// of one region do not run into the other.
	CropmarkSpace float64 `json:"cropmark_space"`

	TieBreak TieBreak `json:"tie_break,omitempty"`
}

// UsableWidth returns the page width inside the minimum margins.
func (c Config) UsableWidth() float64 { return c.PageWidth - 2*c.MinMarginH }

// UsableHeight returns the page height inside the minimum margins.
func (c Config) UsableHeight() float64 { return c.PageHeight - 2*c.MinMarginV }

// optimizing reports whether the solver may pick another orientation than
// the preferred one.
func (c Config) optimizing() bool { return c.AllowExtras || c.AllowInterleave }

// Validate rejects malformed option combinations before any layout work.
func (c Config) Validate() error {
	if err := errors.ValidatePositive("page width", c.PageWidth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("page height", c.PageHeight); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("horizontal margin", c.MinMarginH); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("vertical margin", c.MinMarginV); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("cropmark space", c.CropmarkSpace); err != nil {
		return err
	}
	if c.UsableWidth() <= 0 {
		return errors.New(errors.ErrCodeInvalidOptions,
			"horizontal margins %g leave no room on a page %g wide", c.MinMarginH, c.PageWidth)
	}
	if c.UsableHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidOptions,
			"vertical margins %g leave no room on a page %g high", c.MinMarginV, c.PageHeight)
	}
	if c.TieBreak != "" && !ValidTieBreaks[c.TieBreak] {
		return errors.New(errors.ErrCodeInvalidOptions,
			"invalid tie break: %q (must be one of: natural, fewer-extras)", c.TieBreak)
	}
	return nil
}
