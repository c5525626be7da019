package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// cellRecord captures SetContent calls
type cellRecord struct {
	calls map[[2]int]rune
}

func (c *cellRecord) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if c.calls == nil {
		c.calls = make(map[[2]int]rune)
	}
	c.calls[[2]int{x, y}] = primary
}

func TestCellSurfaceSize(t *testing.T) {
	s := NewCellSurface(80, 24, 8)

	w, h := s.Size()
	if w != 640 || h != 384 {
		t.Errorf("Expected 640x384 units, got %vx%v", w, h)
	}

	x, y := s.CellToUnits(0, 0)
	if x != 4 || y != 8 {
		t.Errorf("Expected cell (0,0) center at (4,8), got (%v,%v)", x, y)
	}

	s.Resize(10, 5)
	cols, rows := s.Cells()
	if cols != 10 || rows != 5 {
		t.Errorf("Expected 10x5 cells after resize, got %dx%d", cols, rows)
	}
}

func TestCellSurfaceFadeDarkens(t *testing.T) {
	s := NewCellSurface(4, 2, 1)
	white := RGB{255, 255, 255}
	s.FillRect(0, 0, 4, 4, white, 1)

	if got := s.Pixel(2, 2); got != white {
		t.Fatalf("Expected opaque fill to replace pixel, got %v", got)
	}

	w, h := s.Size()
	s.FillRect(0, 0, w, h, RGBBlack, 0.05)
	got := s.Pixel(2, 2)
	if got.R >= 255 || got.R < 240 {
		t.Errorf("Expected slight darkening after one fade, got %v", got)
	}

	for i := 0; i < 200; i++ {
		s.FillRect(0, 0, w, h, RGBBlack, 0.05)
	}
	if got := s.Pixel(2, 2); got != RGBBlack {
		t.Errorf("Expected repeated fades to reach black, got %v", got)
	}
}

func TestCellSurfaceStrokeLine(t *testing.T) {
	s := NewCellSurface(10, 5, 1)
	red := RGB{255, 0, 0}

	s.StrokeLine(0.5, 0.5, 9.5, 0.5, red, 1, 1)
	for px := 0; px < 10; px++ {
		if got := s.Pixel(px, 0); got != red {
			t.Errorf("Expected pixel (%d,0) on horizontal line, got %v", px, got)
		}
	}
	if got := s.Pixel(0, 1); got != RGBBlack {
		t.Errorf("Expected line to stay one pixel thick, got %v at (0,1)", got)
	}

	// Diagonal line visits both endpoints
	s.StrokeLine(0, 9, 9, 0, red, 1, 1)
	if s.Pixel(0, 9) != red || s.Pixel(9, 0) != red {
		t.Error("Expected diagonal endpoints to be painted")
	}
}

func TestCellSurfaceStrokeLineWidthCoverage(t *testing.T) {
	s := NewCellSurface(4, 1, 1)
	s.StrokeLine(0, 0, 3, 0, RGB{200, 200, 200}, 1, 0.5)

	got := s.Pixel(1, 0)
	if got.R != 100 {
		t.Errorf("Expected half coverage for width 0.5, got %v", got)
	}

	s.StrokeLine(0, 1, 3, 1, RGB{200, 200, 200}, 1, 0)
	if got := s.Pixel(1, 1); got != RGBBlack {
		t.Errorf("Expected zero-width line to draw nothing, got %v", got)
	}
}

func TestCellSurfaceSubPixelCircleVisible(t *testing.T) {
	s := NewCellSurface(10, 5, 8)
	blue := RGB{0, 0, 255}

	// Radius far below one pixel still paints the containing pixel
	s.FillCircle(20, 20, 1, blue, 1)
	if got := s.Pixel(2, 2); got != blue {
		t.Errorf("Expected containing pixel to be painted, got %v", got)
	}
	if got := s.Pixel(3, 2); got != RGBBlack {
		t.Errorf("Expected neighbor untouched, got %v", got)
	}
}

func TestCellSurfaceRadialGradientFalloff(t *testing.T) {
	s := NewCellSurface(21, 11, 1)
	c := RGB{255, 255, 255}
	stops := []GradientStop{
		{Offset: 0, Color: c, Alpha: 1},
		{Offset: 0.5, Color: c, Alpha: 0.5},
		{Offset: 1, Color: c, Alpha: 0},
	}

	s.FillRadial(10.5, 10.5, 10, stops)

	center := s.Pixel(10, 10)
	mid := s.Pixel(15, 10)
	edge := s.Pixel(19, 10)
	outside := s.Pixel(0, 0)

	if center.R <= mid.R || mid.R <= edge.R {
		t.Errorf("Expected brightness to fall off from center: center=%v mid=%v edge=%v", center, mid, edge)
	}
	if outside != RGBBlack {
		t.Errorf("Expected corner outside radius untouched, got %v", outside)
	}
}

func TestCellSurfaceClipsOutOfBounds(t *testing.T) {
	s := NewCellSurface(4, 2, 1)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Out-of-bounds drawing panicked: %v", r)
		}
	}()

	s.FillRect(-10, -10, 100, 100, RGB{1, 2, 3}, 1)
	s.StrokeLine(-50, -50, 50, 50, RGB{1, 2, 3}, 1, 1)
	s.FillCircle(-5, 100, 20, RGB{1, 2, 3}, 1)
	s.FillRadial(100, 100, 3, []GradientStop{{Offset: 0, Alpha: 1}})
	s.FillText(-3, 1, "overflow", RGB{1, 2, 3}, 1)
	s.FillText(2, 100, "below", RGB{1, 2, 3}, 1)
}

func TestCellSurfacePresent(t *testing.T) {
	s := NewCellSurface(6, 3, 1)
	s.SetBackdrop([]RGB{{10, 10, 10}, {40, 40, 40}})

	s.FillText(0, 2, "{}", RGB{255, 255, 255}, 1)
	if s.Glyph(0, 1) != '{' || s.Glyph(1, 1) != '}' {
		t.Fatalf("Expected glyphs queued on row 1, got %q %q", s.Glyph(0, 1), s.Glyph(1, 1))
	}

	rec := &cellRecord{}
	s.Present(rec)

	if len(rec.calls) != 18 {
		t.Errorf("Expected every cell to be written, got %d", len(rec.calls))
	}
	if rec.calls[[2]int{0, 1}] != '{' {
		t.Errorf("Expected text glyph at (0,1), got %q", rec.calls[[2]int{0, 1}])
	}
	if rec.calls[[2]int{5, 2}] != '▀' {
		t.Errorf("Expected half block at (5,2), got %q", rec.calls[[2]int{5, 2}])
	}

	// Text layer is per-frame
	if s.Glyph(0, 1) != 0 {
		t.Error("Expected glyph layer to be cleared after Present")
	}
}

func TestCellSurfaceResizeClears(t *testing.T) {
	s := NewCellSurface(4, 2, 1)
	s.FillRect(0, 0, 4, 4, RGB{9, 9, 9}, 1)

	s.Resize(4, 2)
	if got := s.Pixel(1, 1); got != RGBBlack {
		t.Errorf("Expected resize to clear pixels, got %v", got)
	}
}
