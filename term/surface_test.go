package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starfield"
)

var white = starfield.Color{R: 1, G: 1, B: 1, A: 1}

func TestCellSurfaceGrid(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{800, 480, 80, 24},
		{805, 481, 81, 25},
		{0, 0, 0, 0},
		{-10, 40, 0, 2},
	}
	for _, tt := range tests {
		s := NewCellSurface(tt.w, tt.h)
		cols, rows := s.Grid()
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("NewCellSurface(%d, %d) grid = %dx%d, want %dx%d",
				tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestCellSurfaceFillSetsBackground(t *testing.T) {
	s := NewCellSurface(100, 100)
	s.FillCircle(5, 5, 1, white)
	s.Fill(starfield.ColorBackground)

	glyph, _, bg := s.Cell(0, 0)
	if glyph != ' ' {
		t.Errorf("glyph after Fill = %q, want space", glyph)
	}
	r, g, b := bg.RGB255()
	if r != 13 || g != 17 || b != 23 {
		t.Errorf("background = (%d, %d, %d), want (13, 17, 23)", r, g, b)
	}
}

func TestCellSurfaceCircleGlyphByRadius(t *testing.T) {
	tests := []struct {
		radius float64
		want   rune
	}{
		{0.2, '.'},
		{0.7, '·'},
		{1.2, '+'},
		{1.5, '*'},
	}
	for _, tt := range tests {
		s := NewCellSurface(100, 100)
		s.Fill(starfield.ColorBackground)
		s.FillCircle(15, 25, tt.radius, white)
		glyph, _, _ := s.Cell(1, 1)
		if glyph != tt.want {
			t.Errorf("radius %.1f glyph = %q, want %q", tt.radius, glyph, tt.want)
		}
	}
}

func TestCellSurfaceBrighterMarkWins(t *testing.T) {
	s := NewCellSurface(100, 100)
	s.Fill(starfield.ColorBackground)
	s.FillCircle(5, 5, 1.2, white.WithAlpha(0.9))
	s.FillCircle(6, 6, 0.2, white.WithAlpha(0.3))

	glyph, fg, bg := s.Cell(0, 0)
	if glyph != '+' {
		t.Errorf("glyph = %q, want '+' from the brighter mark", glyph)
	}
	if fg.R <= bg.R {
		t.Errorf("foreground %.3f not brighter than background %.3f", fg.R, bg.R)
	}
}

func TestCellSurfaceIgnoresOutOfRange(t *testing.T) {
	s := NewCellSurface(100, 100)
	s.Fill(starfield.ColorBackground)
	s.FillCircle(-50, 50, 1, white)
	s.FillCircle(50, 500, 1, white)

	cols, rows := s.Grid()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if g, _, _ := s.Cell(col, row); g != ' ' {
				t.Fatalf("cell (%d, %d) = %q, want untouched", col, row, g)
			}
		}
	}
}

func TestCellSurfaceVerticalStreak(t *testing.T) {
	s := NewCellSurface(100, 200)
	s.Fill(starfield.ColorBackground)
	s.StrokeLine(55, 10, 55, 70, 1, white.WithAlpha(0.5))

	for row := 0; row <= 3; row++ {
		if g, _, _ := s.Cell(5, row); g != '|' {
			t.Errorf("row %d glyph = %q, want '|'", row, g)
		}
	}
	if g, _, _ := s.Cell(5, 4); g != ' ' {
		t.Errorf("row 4 glyph = %q, want space past the streak end", g)
	}
}

func TestCellSurfaceGradientFades(t *testing.T) {
	s := NewCellSurface(200, 200)
	s.Fill(starfield.ColorBackground)
	// Head at the bottom right, tail toward the top left.
	s.StrokeGradient(150, 150, 50, 50, 1, white.WithAlpha(0.8), white.WithAlpha(0))

	headGlyph, head, _ := s.Cell(15, 7)
	_, mid, _ := s.Cell(10, 5)
	if headGlyph != '\\' {
		t.Errorf("head glyph = %q, want '\\'", headGlyph)
	}
	if head.R <= mid.R {
		t.Errorf("head brightness %.3f should exceed mid-trail %.3f", head.R, mid.R)
	}
}

func TestCellSurfaceFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	s := NewCellSurface(10*CellWidth, 5*CellHeight)
	s.Fill(starfield.ColorBackground)
	s.FillCircle(35, 45, 1.2, white)
	s.Flush(screen)
	screen.Show()

	cells, w, _ := screen.GetContents()
	got := cells[2*w+3]
	if len(got.Runes) == 0 || got.Runes[0] != '+' {
		t.Errorf("cell (3, 2) runes = %q, want '+'", got.Runes)
	}
	_, bg, _ := got.Style.Decompose()
	if bg != tcell.NewRGBColor(13, 17, 23) {
		t.Errorf("cell background = %v, want #0d1117", bg)
	}
}

func TestCellSurfaceDispose(t *testing.T) {
	s := NewCellSurface(100, 100)
	s.Dispose()
	if !s.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
	// Draw calls after dispose are no-ops.
	s.Fill(starfield.ColorBackground)
	s.FillCircle(5, 5, 1, white)
	if cols, rows := s.Grid(); cols != 0 || rows != 0 {
		t.Errorf("grid after Dispose = %dx%d, want 0x0", cols, rows)
	}
}
