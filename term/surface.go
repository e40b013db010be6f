// Package term hosts a starfield in a terminal through tcell. Each terminal
// cell stands for a CellWidth x CellHeight block of surface units, so the
// starfield's fixed tuning (repulsion radius, streak lengths) keeps roughly
// the same proportions as in a window.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/starfield"
)

// Surface units covered by one terminal cell.
const (
	CellWidth  = 10
	CellHeight = 20
)

type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
	ink   float64 // alpha of the brightest mark drawn this frame
}

// CellSurface is a starfield.Surface backed by a grid of terminal cells.
// Marks are composited onto the cell background with go-colorful; when two
// marks land on the same cell the brighter one wins.
type CellSurface struct {
	width, height int
	cols, rows    int
	cells         []cell
	disposed      bool
}

// NewCellSurface creates a surface of width x height surface units.
func NewCellSurface(width, height int) *CellSurface {
	s := &CellSurface{}
	s.Resize(width, height)
	return s
}

// Size returns the surface size in surface units.
func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// Grid returns the surface size in cells.
func (s *CellSurface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// Resize reallocates the cell grid. Contents are cleared.
func (s *CellSurface) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.cols = (s.width + CellWidth - 1) / CellWidth
	s.rows = (s.height + CellHeight - 1) / CellHeight
	s.cells = make([]cell, s.cols*s.rows)
	for i := range s.cells {
		s.cells[i].glyph = ' '
	}
}

// Fill paints every cell with c and erases all marks.
func (s *CellSurface) Fill(c starfield.Color) {
	bg := toColorful(c)
	for i := range s.cells {
		s.cells[i] = cell{bg: bg, fg: bg, glyph: ' '}
	}
}

// FillCircle marks the cell containing the center. The glyph grows with the
// radius.
func (s *CellSurface) FillCircle(cx, cy, radius float64, c starfield.Color) {
	s.plot(cx, cy, dotGlyph(radius), c, c.A)
}

// StrokeLine marks every cell the segment crosses.
func (s *CellSurface) StrokeLine(x0, y0, x1, y1, width float64, c starfield.Color) {
	glyph := lineGlyph(x1-x0, y1-y0)
	s.walk(x0, y0, x1, y1, func(x, y, _ float64) {
		s.plot(x, y, glyph, c, c.A)
	})
}

// StrokeGradient marks every cell the segment crosses, interpolating the
// alpha from the start color to the end color.
func (s *CellSurface) StrokeGradient(x0, y0, x1, y1, width float64, from, to starfield.Color) {
	glyph := lineGlyph(x1-x0, y1-y0)
	s.walk(x0, y0, x1, y1, func(x, y, t float64) {
		s.plot(x, y, glyph, from, from.A+(to.A-from.A)*t)
	})
}

// Dispose drops the cell grid.
func (s *CellSurface) Dispose() {
	s.cells = nil
	s.cols, s.rows = 0, 0
	s.disposed = true
}

// Disposed reports whether Dispose was called.
func (s *CellSurface) Disposed() bool {
	return s.disposed
}

// Cell returns the glyph and composited foreground and background of the
// cell at (col, row).
func (s *CellSurface) Cell(col, row int) (glyph rune, fg, bg colorful.Color) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return ' ', colorful.Color{}, colorful.Color{}
	}
	c := s.cells[row*s.cols+col]
	return c.glyph, c.fg, c.bg
}

// Flush copies the grid to screen. The caller calls Show.
func (s *CellSurface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := &s.cells[row*s.cols+col]
			style := tcell.StyleDefault.
				Background(toTcell(c.bg)).
				Foreground(toTcell(c.fg))
			screen.SetContent(col, row, c.glyph, nil, style)
		}
	}
}

func (s *CellSurface) plot(x, y float64, glyph rune, c starfield.Color, alpha float64) {
	if math.IsNaN(x) || math.IsNaN(y) || alpha <= 0 {
		return
	}
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y / CellHeight))
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	dst := &s.cells[row*s.cols+col]
	if alpha <= dst.ink {
		return
	}
	dst.ink = alpha
	dst.glyph = glyph
	dst.fg = dst.bg.BlendRgb(toColorful(c), math.Min(alpha, 1)).Clamped()
}

// walk samples the segment once per cell step and calls fn with the sample
// position and its fraction t along the segment.
func (s *CellSurface) walk(x0, y0, x1, y1 float64, fn func(x, y, t float64)) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx)/CellWidth, math.Abs(dy)/CellHeight)))
	if steps < 1 || steps > s.cols+s.rows {
		steps = max(min(steps, s.cols+s.rows), 1)
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fn(x0+dx*t, y0+dy*t, t)
	}
}

func dotGlyph(radius float64) rune {
	switch {
	case radius < 0.5:
		return '.'
	case radius < 1.0:
		return '·'
	case radius < 1.5:
		return '+'
	default:
		return '*'
	}
}

func lineGlyph(dx, dy float64) rune {
	// Compare slopes in cell space, where a cell is twice as tall as wide.
	cx, cy := math.Abs(dx)/CellWidth, math.Abs(dy)/CellHeight
	switch {
	case cx < cy*0.4:
		return '|'
	case cy < cx*0.4:
		return '-'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func toColorful(c starfield.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
