package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/errors"
)

func newPlots(n int, dims card.Dimensions) []*card.CardPlot {
	plots := make([]*card.CardPlot, n)
	for i := range plots {
		plots[i] = &card.CardPlot{Width: dims.Width, Height: dims.Height}
	}
	return plots
}

type crops struct{ Top, Bottom, Left, Right bool }

func cropsOf(p *card.CardPlot) crops {
	return crops{p.CropTop, p.CropBottom, p.CropLeft, p.CropRight}
}

func TestPlaceGrid(t *testing.T) {
	l, err := Choose(page500x700, divider)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	plots := newPlots(l.Number, divider)
	if err := l.Place(plots, 3); err != nil {
		t.Fatalf("Place: %v", err)
	}

	tests := []struct {
		index int
		x, y  float64
		crops crops
	}{
		{0, 0, 450, crops{Top: true, Left: true}},
		{4, 400, 450, crops{Top: true, Right: true}},
		{7, 200, 300, crops{}},
		{15, 0, 0, crops{Bottom: true, Left: true}},
		{19, 400, 0, crops{Bottom: true, Right: true}},
	}

	for _, tt := range tests {
		p := plots[tt.index]
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("plot %d at (%v, %v), want (%v, %v)", tt.index, p.X, p.Y, tt.x, tt.y)
		}
		if diff := cmp.Diff(tt.crops, cropsOf(p)); diff != "" {
			t.Errorf("plot %d crops mismatch (-want +got):\n%s", tt.index, diff)
		}
	}
	for i, p := range plots {
		if p.Page != 3 {
			t.Errorf("plot %d on page %d, want 3", i, p.Page)
		}
		if p.Rotation != card.R0 {
			t.Errorf("plot %d rotation = %d, want 0", i, p.Rotation)
		}
	}
}

func TestPlaceCropsThreeByThree(t *testing.T) {
	cfg := Config{PageWidth: 300, PageHeight: 300}
	sq := card.Dimensions{Width: 100, Height: 100, TabHeight: 10, TabWidth: 30}
	l, err := Choose(cfg, sq)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	plots := newPlots(9, sq)
	if err := l.Place(plots, 1); err != nil {
		t.Fatalf("Place: %v", err)
	}

	want := []crops{
		{Top: true, Left: true}, {Top: true}, {Top: true, Right: true},
		{Left: true}, {}, {Right: true},
		{Bottom: true, Left: true}, {Bottom: true}, {Bottom: true, Right: true},
	}
	var got []crops
	for _, p := range plots {
		got = append(got, cropsOf(p))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("crop flags mismatch (-want +got):\n%s", diff)
	}
}

func TestPlacePartialBatch(t *testing.T) {
	l, err := Choose(page500x700, divider)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	plots := newPlots(3, divider)
	if err := l.Place(plots, 2); err != nil {
		t.Fatalf("Place: %v", err)
	}
	// A partial page still fills from the top left.
	if plots[2].X != 200 || plots[2].Y != 450 {
		t.Errorf("plot 2 at (%v, %v), want (200, 450)", plots[2].X, plots[2].Y)
	}
}

func TestPlaceOverCapacity(t *testing.T) {
	l, err := Choose(page500x700, divider)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	err = l.Place(newPlots(l.Number+1, divider), 1)
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}

func TestPlaceExtras(t *testing.T) {
	cfg := Config{PageWidth: 560, PageHeight: 300, AllowExtras: true}
	wide := card.Dimensions{Width: 150, Height: 100, TabHeight: 20, TabWidth: 40}
	l := Grid(cfg, wide, false)

	plots := newPlots(l.Number, wide)
	if err := l.Place(plots, 1); err != nil {
		t.Fatalf("Place: %v", err)
	}

	first, last := plots[9], plots[10]
	if first.Rotation != card.R90 || last.Rotation != card.R90 {
		t.Errorf("extra rotations = %d, %d, want 90", first.Rotation, last.Rotation)
	}
	if first.X != 450 || first.Y != 0 || last.X != 450 || last.Y != 150 {
		t.Errorf("extras at (%v, %v) and (%v, %v), want (450, 0) and (450, 150)",
			first.X, first.Y, last.X, last.Y)
	}
	if diff := cmp.Diff(crops{Bottom: true, Left: true, Right: true}, cropsOf(first)); diff != "" {
		t.Errorf("first extra crops (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(crops{Top: true, Left: true, Right: true}, cropsOf(last)); diff != "" {
		t.Errorf("last extra crops (-want +got):\n%s", diff)
	}
}

func interleaved(t *testing.T) *PageLayout {
	t.Helper()
	cfg := page500x700
	cfg.AllowInterleave = true
	deep := divider
	deep.TabHeight = 40
	l, err := Choose(cfg, deep)
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if !l.Interleaved {
		t.Fatalf("expected interleaved layout, got %s", l)
	}
	return l
}

func TestPlaceInterleaved(t *testing.T) {
	l := interleaved(t)
	plots := newPlots(l.Number, divider)
	for i, p := range plots {
		p.RightSide = i%2 == 1
	}
	if err := l.Place(plots, 1); err != nil {
		t.Fatalf("Place: %v", err)
	}

	// Rows from the top: single, turned, plain, turned, plain.
	rows := []struct {
		y      float64
		turned bool
	}{
		{520, false},
		{370, true},
		{260, false},
		{110, true},
		{0, false},
	}
	for r, want := range rows {
		for c := 0; c < l.Columns; c++ {
			p := plots[r*l.Columns+c]
			if p.Y != want.y {
				t.Errorf("row %d col %d: y = %v, want %v", r, c, p.Y, want.y)
			}
			if got := p.Rotation == card.R180; got != want.turned {
				t.Errorf("row %d col %d: turned = %v, want %v", r, c, got, want.turned)
			}
		}
	}

	// Turned members share the tab side of the plain member below them.
	for _, r := range []int{1, 3} {
		for c := 0; c < l.Columns; c++ {
			turned, partner := plots[r*l.Columns+c], plots[(r+1)*l.Columns+c]
			if turned.RightSide != partner.RightSide {
				t.Errorf("row %d col %d: tab side differs from partner", r, c)
			}
		}
	}
}

func TestPlaceIdempotent(t *testing.T) {
	l := interleaved(t)
	plots := newPlots(l.Number, divider)
	for i, p := range plots {
		p.RightSide = i%3 == 0
	}
	if err := l.Place(plots, 1); err != nil {
		t.Fatalf("Place: %v", err)
	}
	first := make([]card.CardPlot, len(plots))
	for i, p := range plots {
		first[i] = *p
	}

	if err := l.Place(plots, 1); err != nil {
		t.Fatalf("Place: %v", err)
	}
	for i, p := range plots {
		if diff := cmp.Diff(first[i], *p); diff != "" {
			t.Errorf("plot %d changed on second Place (-first +second):\n%s", i, diff)
		}
	}
}

func TestTurned(t *testing.T) {
	l := &PageLayout{Doubles: 2}
	tests := []struct {
		forward bool
		want    []bool
	}{
		{true, []bool{false, true, false, true, false}},
		{false, []bool{true, false, true, false, false}},
	}
	for _, tt := range tests {
		for k, w := range tt.want {
			if got := l.turned(k, tt.forward); got != w {
				t.Errorf("turned(%d, %v) = %v, want %v", k, tt.forward, got, w)
			}
		}
	}
}

func TestTabForward(t *testing.T) {
	tests := []struct {
		name                         string
		forward, vertical, rightSide bool
		want                         bool
	}{
		{"top tab left", true, false, false, true},
		{"top tab right", true, false, true, true},
		{"side tab left", true, true, false, true},
		{"side tab right", true, true, true, false},
		{"rotated side tab left", false, true, false, false},
		{"rotated side tab right", false, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &PageLayout{TabForward: tt.forward, TabVertical: tt.vertical}
			p := &card.CardPlot{RightSide: tt.rightSide}
			if got := l.tabForward(p); got != tt.want {
				t.Errorf("tabForward = %v, want %v", got, tt.want)
			}
		})
	}
}

type rect struct{ x0, y0, x1, y1 float64 }

func (a rect) overlaps(b rect) bool {
	const eps = 1e-6
	return a.x0 < b.x1-eps && b.x0 < a.x1-eps && a.y0 < b.y1-eps && b.y0 < a.y1-eps
}

// shapes returns the body and the tab of p in its own frame, mirrored
// across the width when the tab is on the right side.
func shapes(p *card.CardPlot, dims card.Dimensions) []rect {
	w, h, th, tw := p.Width, p.Height, dims.TabHeight, dims.TabWidth
	if dims.TabVertical {
		if p.RightSide {
			return []rect{{th, 0, w, h}, {0, h - tw, th, h}}
		}
		return []rect{{0, 0, w - th, h}, {w - th, h - tw, w, h}}
	}
	if p.RightSide {
		return []rect{{0, 0, w, h - th}, {w - tw, h - th, w, h}}
	}
	return []rect{{0, 0, w, h - th}, {0, h - th, tw, h}}
}

// onPage maps r from p's own frame to page space.
func onPage(p *card.CardPlot, r rect) rect {
	f := p.DrawFrame(0, false)
	sin, cos := math.Sincos(f.Angle * math.Pi / 180)
	out := rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, c := range [][2]float64{{r.x0, r.y0}, {r.x1, r.y1}} {
		x := f.X + c[0]*cos - c[1]*sin
		y := f.Y + c[0]*sin + c[1]*cos
		out.x0, out.y0 = math.Min(out.x0, x), math.Min(out.y0, y)
		out.x1, out.y1 = math.Max(out.x1, x), math.Max(out.y1, y)
	}
	return out
}

func TestPlaceInterleavedNoOverlap(t *testing.T) {
	cfg := Config{PageWidth: 500, PageHeight: 700}
	sides := []struct {
		name  string
		right func(i int) bool
	}{
		{"left", func(int) bool { return false }},
		{"right", func(int) bool { return true }},
		{"alternate", func(i int) bool { return i%2 == 1 }},
		{"alternate pairs", func(i int) bool { return i/2%2 == 1 }},
	}

	for _, vertical := range []bool{false, true} {
		for _, rotated := range []bool{false, true} {
			dims := card.Dimensions{Width: 150, Height: 100, TabHeight: 20, TabWidth: 40, TabVertical: vertical}
			for _, side := range sides {
				name := fmt.Sprintf("vertical=%v/rotated=%v/%s", vertical, rotated, side.name)
				t.Run(name, func(t *testing.T) {
					l, ok := Interleave(cfg, dims, rotated)
					if !ok || l.Doubles == 0 {
						t.Fatalf("expected nested pairs, got %v", l)
					}
					plots := newPlots(l.GridSize(), dims)
					for i, p := range plots {
						p.RightSide = side.right(i)
					}
					if err := l.Place(plots, 1); err != nil {
						t.Fatalf("Place: %v", err)
					}

					var placed [][]rect
					for _, p := range plots {
						var rs []rect
						for _, r := range shapes(p, dims) {
							rs = append(rs, onPage(p, r))
						}
						placed = append(placed, rs)
					}
					for i := range placed {
						for j := i + 1; j < len(placed); j++ {
							for _, a := range placed[i] {
								for _, b := range placed[j] {
									if a.overlaps(b) {
										t.Errorf("items %d and %d overlap: %v and %v", i, j, a, b)
									}
								}
							}
						}
					}
				})
			}
		}
	}
}
