package card

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestRotationAdd(t *testing.T) {
	tests := []struct {
		start Rotation
		delta int
		want  Rotation
	}{
		{R0, 90, R90},
		{R270, 90, R0},
		{R90, 180, R270},
		{R0, -90, R270},
		{R180, 720, R180},
	}

	for _, tt := range tests {
		if got := tt.start.Add(tt.delta); got != tt.want {
			t.Errorf("%d.Add(%d) = %d, want %d", tt.start, tt.delta, got, tt.want)
		}
	}
}

func TestRotateFourTimes(t *testing.T) {
	for _, r := range []Rotation{R0, R90, R180, R270} {
		c := &CardPlot{Rotation: r}
		for i := 0; i < 4; i++ {
			c.Rotate(90)
		}
		if c.Rotation != r {
			t.Errorf("rotation %d after four quarter turns = %d", r, c.Rotation)
		}
	}
}

func TestFlipFront2Back(t *testing.T) {
	c := &CardPlot{
		X: 3, Y: 4, Rotation: R90,
		RightSide: false, TextFront: TextCard, TextBack: TextRules,
		CropTop: true, CropLeft: true,
	}
	orig := *c

	c.FlipFront2Back()
	if !c.RightSide {
		t.Error("RightSide not toggled")
	}
	if c.TextFront != TextRules || c.TextBack != TextCard {
		t.Errorf("texts = %q/%q, want swapped", c.TextFront, c.TextBack)
	}
	if c.X != orig.X || c.Y != orig.Y || c.Rotation != orig.Rotation {
		t.Error("flip moved the item")
	}
	if c.CropTop != orig.CropTop || c.CropLeft != orig.CropLeft {
		t.Error("flip touched crop flags")
	}

	c.FlipFront2Back()
	if *c != orig {
		t.Errorf("double flip = %+v, want %+v", *c, orig)
	}
}

// frameCorners maps the item's local corners through the drawing frame.
func frameCorners(c *CardPlot, pageWidth float64, back bool) (minX, minY, maxX, maxY float64) {
	f := c.DrawFrame(pageWidth, back)
	m := matrix.RotateDeg(f.Angle).Mul(matrix.Translate(f.X, f.Y))
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: c.Width, Y: 0}, {X: 0, Y: c.Height}, {X: c.Width, Y: c.Height}} {
		qx, qy := m.Apply(p.X, p.Y)
		minX, maxX = math.Min(minX, qx), math.Max(maxX, qx)
		minY, maxY = math.Min(minY, qy), math.Max(maxY, qy)
	}
	return
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDrawFrameCoversFootprint(t *testing.T) {
	const pageWidth = 500
	for _, r := range []Rotation{R0, R90, R180, R270} {
		for _, back := range []bool{false, true} {
			c := &CardPlot{X: 40, Y: 60, Width: 100, Height: 150, Rotation: r}
			fw, fh := c.Footprint()

			wantMinX := c.X
			if back {
				wantMinX = pageWidth - c.X - fw
			}

			minX, minY, maxX, maxY := frameCorners(c, pageWidth, back)
			if !near(minX, wantMinX) || !near(maxX, wantMinX+fw) || !near(minY, c.Y) || !near(maxY, c.Y+fh) {
				t.Errorf("rotation %d back=%v: covers [%v,%v]x[%v,%v], want [%v,%v]x[%v,%v]",
					r, back, minX, maxX, minY, maxY, wantMinX, wantMinX+fw, c.Y, c.Y+fh)
			}
		}
	}
}

func TestDrawFrameAngle(t *testing.T) {
	tests := []struct {
		rotation Rotation
		back     bool
		want     float64
	}{
		{R0, false, 0},
		{R90, false, 270},
		{R180, false, 180},
		{R270, false, 90},
		{R90, true, 90},
		{R270, true, 270},
		{R180, true, 180},
	}

	for _, tt := range tests {
		c := &CardPlot{Width: 10, Height: 20, Rotation: tt.rotation}
		if got := c.DrawFrame(100, tt.back).Angle; got != tt.want {
			t.Errorf("rotation %d back=%v: angle = %v, want %v", tt.rotation, tt.back, got, tt.want)
		}
	}
}

func TestCropEnabled(t *testing.T) {
	c := &CardPlot{Rotation: R90, CropTop: true}
	// A quarter turn clockwise points the printed left edge at the page top.
	if !c.CropEnabled(Left) {
		t.Error("printed left should follow page top")
	}
	if c.CropEnabled(Top) {
		t.Error("printed top should follow page right")
	}

	c.RightSide = true
	if c.CropEnabled(Left) {
		t.Error("mirrored printed left should follow page bottom")
	}
	if !c.CropEnabled(Right) {
		t.Error("mirrored printed right should follow page top")
	}
}
