package plot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		pen  Pen
		want []Op
	}{
		{
			name: "no pen",
			pen:  PenNone,
			want: nil,
		},
		{
			name: "line",
			pen:  PenLine,
			want: []Op{{Kind: "line", Args: []float64{1, 2, 4, 6}}},
		},
		{
			name: "dot",
			pen:  PenDot,
			want: []Op{{Kind: "dot", Args: []float64{4, 6, DefaultDotSize}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			p := NewPlotter(rec, Options{})
			p.SetXY(1, 2)
			p.Move(3, 4, tt.pen)

			if diff := cmp.Diff(tt.want, rec.Ops); diff != "" {
				t.Errorf("ops mismatch (-want +got):\n%s", diff)
			}
			if x, y := p.XY(); x != 4 || y != 6 {
				t.Errorf("XY() = (%v, %v), want (4, 6)", x, y)
			}
		})
	}
}

func TestCropmark(t *testing.T) {
	opts := Options{CropmarkLength: 2, CropmarkSpacing: 1}
	tests := []struct {
		dir  Direction
		want []float64
	}{
		{Top, []float64{10, 11, 10, 13}},
		{Bottom, []float64{10, 9, 10, 7}},
		{Right, []float64{11, 10, 13, 10}},
		{Left, []float64{9, 10, 7, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			rec := &Recorder{}
			p := NewPlotter(rec, opts)
			p.SetXY(10, 10)
			p.Cropmark(true, tt.dir)

			if len(rec.Ops) != 1 {
				t.Fatalf("got %d ops, want 1", len(rec.Ops))
			}
			if diff := cmp.Diff(tt.want, rec.Ops[0].Args); diff != "" {
				t.Errorf("cropmark (-want +got):\n%s", diff)
			}
			if x, y := p.XY(); x != 10 || y != 10 {
				t.Errorf("pen moved to (%v, %v)", x, y)
			}
		})
	}
}

func TestCropmarkDisabled(t *testing.T) {
	rec := &Recorder{}
	p := NewPlotter(rec, Options{})
	p.Cropmark(false, Top)
	p.Cropmark(true, Direction(99))

	if len(rec.Ops) != 0 {
		t.Errorf("expected no ops, got %v", rec.Ops)
	}
	if x, y := p.XY(); x != 0 || y != 0 {
		t.Errorf("pen moved to (%v, %v)", x, y)
	}
}

func TestNewPlotterDefaults(t *testing.T) {
	p := NewPlotter(&Recorder{}, Options{CropmarkLength: -1})
	if p.cropLength != DefaultCropmarkLength {
		t.Errorf("cropLength = %v, want %v", p.cropLength, DefaultCropmarkLength)
	}
	if p.cropSpacing != DefaultCropmarkSpacing {
		t.Errorf("cropSpacing = %v, want %v", p.cropSpacing, DefaultCropmarkSpacing)
	}
}
