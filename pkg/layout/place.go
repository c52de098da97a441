package layout

import (
	"github.com/matzehuels/tabsheet/pkg/card"
	"github.com/matzehuels/tabsheet/pkg/errors"
)

// nestOffset returns the position of slot k along the nesting axis.
func (l *PageLayout) nestOffset(k int, length float64) float64 {
	pitch := Pitch(length, l.TabHeight)
	return float64(k/2)*pitch + float64(k%2)*(length-l.TabHeight)
}

// ColumnX returns the left edge of a field column.
func (l *PageLayout) ColumnX(col int) float64 {
	if l.Interleaved && !l.NestVertical {
		return l.nestOffset(col, l.Width)
	}
	return float64(col) * l.Width
}

// RowY returns the bottom edge of a field row; row 0 is the bottom row.
func (l *PageLayout) RowY(row int) float64 {
	if l.Interleaved && l.NestVertical {
		return l.nestOffset(row, l.Height)
	}
	return float64(row) * l.Height
}

// tabForward reports whether p's tab points along the positive nesting
// axis while p is unturned. A mirrored side tab sits on the opposite edge.
func (l *PageLayout) tabForward(p *card.CardPlot) bool {
	return l.TabForward != (l.TabVertical && p.RightSide)
}

// turned reports whether nesting slot k holds the 180° member of its pair,
// given the direction the pair's tabs point while unturned. When the tab
// points backwards the first member of each pair turns.
func (l *PageLayout) turned(k int, forward bool) bool {
	if k >= 2*l.Doubles {
		return false // trailing single
	}
	if forward {
		return k%2 == 1
	}
	return k%2 == 0
}

// Place assigns position, rotation, crop flags and page number to a batch
// of at most Number items. Grid cells fill row by row from the top left;
// remaining items go into the extra strip.
func (l *PageLayout) Place(plots []*card.CardPlot, page int) error {
	if len(plots) > l.Number {
		return errors.New(errors.ErrCodeInternal,
			"batch of %d items exceeds page capacity %d", len(plots), l.Number)
	}

	grid := l.GridSize()
	for i, p := range plots {
		p.Page = page
		if i < grid {
			l.placeGrid(p, i)
		} else {
			l.placeExtra(p, i-grid)
		}
	}
	if l.Interleaved {
		l.nest(plots)
	}
	return nil
}

func (l *PageLayout) gridCell(i int) (col, row int) {
	return i % l.Columns, l.Rows - 1 - i/l.Columns
}

func (l *PageLayout) placeGrid(p *card.CardPlot, i int) {
	col, row := l.gridCell(i)
	p.SetXY(l.ColumnX(col), l.RowY(row))
	p.Rotation = l.Rotation
	p.SetCrops(row == l.Rows-1, row == 0, col == 0, col == l.Columns-1)
}

func (l *PageLayout) nestIndex(col, row int) int {
	if l.NestVertical {
		return row
	}
	return col
}

func (l *PageLayout) placeExtra(p *card.CardPlot, j int) {
	p.Rotation = l.ExtraRotation
	first, last := j == 0, j == l.Extra-1
	if l.Horizontal {
		p.SetXY(l.FieldWidth()+l.ExtraSpacing, float64(j)*l.Width)
		p.SetCrops(last, first, true, true)
		return
	}
	p.SetXY(float64(j)*l.Height, l.FieldHeight()+l.ExtraSpacing)
	p.SetCrops(true, true, first, last)
}

// nest orients the field items of an interleaved page. The second member
// of every pair takes the tab side of the first, then the member whose tab
// would point away from its partner turns 180°. The two tabs end up on the
// shared edge at opposite ends, where they nest.
func (l *PageLayout) nest(plots []*card.CardPlot) {
	grid := min(l.GridSize(), len(plots))
	for i := 0; i < grid; i++ {
		col, row := l.gridCell(i)
		k := l.nestIndex(col, row)
		if k >= 2*l.Doubles {
			continue
		}
		p := plots[i]
		if k%2 == 1 {
			if j := l.partnerIndex(i, k); j >= 0 && j < grid && p.RightSide != plots[j].RightSide {
				p.FlipFront2Back()
			}
		}
		if l.turned(k, l.tabForward(p)) {
			p.Rotate(180)
		}
	}
}

// partnerIndex returns the batch index of the item sharing a pair with the
// item at batch index i and nesting slot k.
func (l *PageLayout) partnerIndex(i, k int) int {
	d := 1
	if k%2 == 1 {
		d = -1
	}
	if l.NestVertical {
		// Rows fill from the top, so a higher row comes earlier.
		return i - d*l.Columns
	}
	return i + d
}
