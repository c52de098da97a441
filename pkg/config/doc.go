// Package config loads and validates tabsheet option files.
//
// Options are written in centimetres, the unit printers and rulers use,
// and converted to PostScript points (1 cm = 72/2.54 pt) when handed to
// the layout and rendering packages. Files may be TOML, YAML or JSON; the
// format is chosen by extension and unknown keys are rejected:
//
//	paper = "a4"
//	tab_side = "left-alternate"
//	allow_extras = true
//	cropmarks = true
//
// [Default] returns US Letter with 1 cm margins and 9.1 x 7.0 cm dividers
// carrying 4 x 0.85 cm tabs. [Load] applies a file on top of the defaults.
package config
