package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/errors"
	"github.com/matzehuels/tabsheet/pkg/layout"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestPaperSize(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		w, h float64
	}{
		{"letter", Options{Paper: "letter"}, 612, 792},
		{"a4 upper case", Options{Paper: "A4"}, 595.275591, 841.889764},
		{"landscape", Options{Paper: "letter", Landscape: true}, 792, 612},
		{"custom", Options{PaperWidth: 2.54, PaperHeight: 5.08}, 72, 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.opts.PaperSize()
			if !near(w, tt.w) || !near(h, tt.h) {
				t.Errorf("PaperSize() = (%v, %v), want (%v, %v)", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestLayoutConfig(t *testing.T) {
	o := Default()
	o.AllowExtras = true
	cfg := o.LayoutConfig()

	if !near(cfg.MinMarginH, CM) || !near(cfg.MinMarginV, CM) {
		t.Errorf("margins = (%v, %v), want 1 cm", cfg.MinMarginH, cfg.MinMarginV)
	}
	if cfg.CropmarkSpace != 0 {
		t.Errorf("CropmarkSpace = %v without crop marks", cfg.CropmarkSpace)
	}
	if cfg.TieBreak != layout.TieNatural {
		t.Errorf("TieBreak = %q", cfg.TieBreak)
	}

	o.Cropmarks = true
	if got := o.LayoutConfig().CropmarkSpace; !near(got, 0.6*CM) {
		t.Errorf("CropmarkSpace = %v, want %v", got, 0.6*CM)
	}
}

func TestDimensions(t *testing.T) {
	d := Default().Dimensions()
	want := card.Dimensions{Width: 9.1 * CM, Height: 7.85 * CM, TabHeight: 0.85 * CM, TabWidth: 4 * CM}
	opt := cmp.Comparer(near)
	if diff := cmp.Diff(want, d, opt); diff != "" {
		t.Errorf("Dimensions() mismatch (-want +got):\n%s", diff)
	}
	if !near(Default().CardThickness(), 2.0/60*CM) {
		t.Errorf("CardThickness() = %v", Default().CardThickness())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"unknown paper", func(o *Options) { o.Paper = "b5" }},
		{"custom paper without size", func(o *Options) { o.Paper = "" }},
		{"zero divider width", func(o *Options) { o.DividerWidth = 0 }},
		{"negative margin", func(o *Options) { o.MinMarginH = -1 }},
		{"bad tab side", func(o *Options) { o.TabSide = "top" }},
		{"bad tie break", func(o *Options) { o.TieBreak = "random" }},
		{"bad line type", func(o *Options) { o.LineType = "dashed" }},
		{"bad text", func(o *Options) { o.TextBack = "lore" }},
		{"wrapper without thickness", func(o *Options) { o.Wrapper = true; o.Thickness = 0 }},
		{"tab wider than divider", func(o *Options) { o.TabWidth = 10 }},
		{"margins eat page", func(o *Options) { o.MinMarginV = 14 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Default()
			tt.modify(&o)
			err := o.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatTOML, "paper = \"a4\"\ntab_side = \"left\"\nallow_extras = true\n"},
		{FormatYAML, "paper: a4\ntab_side: left\nallow_extras: true\n"},
		{FormatJSON, `{"paper": "a4", "tab_side": "left", "allow_extras": true}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			o, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if o.Paper != "a4" || o.TabSide != "left" || !o.AllowExtras {
				t.Errorf("Parse() = %+v", o)
			}
			if o.DividerWidth != 9.1 {
				t.Errorf("defaults not kept: divider width %v", o.DividerWidth)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	for format, data := range map[Format]string{
		FormatTOML: "papr = \"a4\"\n",
		FormatYAML: "papr: a4\n",
		FormatJSON: `{"papr": "a4"}`,
	} {
		if _, err := Parse([]byte(data), format); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("%s: expected INVALID_CONFIG, got %v", format, err)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		o, err := Parse(nil, f)
		if err != nil {
			t.Errorf("%s: Parse(nil) error: %v", f, err)
			continue
		}
		if diff := cmp.Diff(Default(), o); diff != "" {
			t.Errorf("%s: empty input changed defaults:\n%s", f, diff)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabsheet.yml")
	if err := os.WriteFile(path, []byte("cropmarks: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	o, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !o.Cropmarks {
		t.Error("cropmarks not applied")
	}

	if _, err := Load(filepath.Join(dir, "tabsheet.ini")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}
