package jumper

import (
	"math"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Glyphs used when drawing the world.
const (
	WallGlyph   = '█'
	BrickGlyph  = '▪'
	PaddleGlyph = '▒'
	ActorGlyph  = '@'
)

// Viewport maps world coordinates (y up) onto a block of screen cells
// (y down) starting at row Top.
type Viewport struct {
	Min, Max   core.Vec2
	Cols, Rows int
	Top        int
}

// NewViewport frames the arena, including the outer half of the boundary
// walls, in cols x rows cells starting at screen row top.
func NewViewport(l config.LevelConfig, cols, rows, top int) Viewport {
	halfT := l.WallThickness / 2
	return Viewport{
		Min:  core.V2(l.Left-halfT, l.Bottom-halfT),
		Max:  core.V2(l.Right+halfT, l.Top+halfT),
		Cols: cols,
		Rows: rows,
		Top:  top,
	}
}

// Cell returns the screen cell containing world point p. The result may lie
// outside the viewport.
func (v Viewport) Cell(p core.Vec2) (x, y int) {
	fx := float64(p.X-v.Min.X) / float64(v.Max.X-v.Min.X) * float64(v.Cols)
	fy := float64(v.Max.Y-p.Y) / float64(v.Max.Y-v.Min.Y) * float64(v.Rows)
	return int(math.Floor(fx)), v.Top + int(math.Floor(fy))
}

// Project converts a world rectangle into the cells it covers, clipped to
// the viewport. Anything visible covers at least one cell. ok is false when
// nothing of r is on screen.
func (v Viewport) Project(r core.Rect) (cr core.CellRect, ok bool) {
	x0, y0 := v.Cell(core.V2(r.Min().X, r.Max().Y))
	x1, y1 := v.Cell(core.V2(r.Max().X, r.Min().Y))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = core.Max(x0, 0), core.Min(x1, v.Cols)
	y0, y1 = core.Max(y0, v.Top), core.Min(y1, v.Top+v.Rows)
	if x0 >= x1 || y0 >= y1 {
		return core.CellRect{}, false
	}
	return core.CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Draw fills the cells covered by r.
func (v Viewport) Draw(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	if cr, ok := v.Project(r); ok {
		dst.FillRect(cr, glyph, c)
	}
}
