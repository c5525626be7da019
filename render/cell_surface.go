package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termfolio/parameter/visual"
)

// CellWriter is the subset of tcell.Screen used to flush a surface
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type glyph struct {
	r     rune
	color RGB
	alpha float64
}

// CellSurface is a Surface rasterized onto a terminal grid
// Each cell packs two vertical pixels using the upper half block, one surface unit
// maps to 1/scale pixels. Pixels persist across frames so fades accumulate trails,
// text glyphs are redrawn every frame and cleared by Present
type CellSurface struct {
	cols, rows int
	scale      float64

	pixels []RGB // cols * rows*2, row-major
	glyphs []glyph

	backdrop []RGB
}

// NewCellSurface creates a surface for a cols×rows terminal
func NewCellSurface(cols, rows int, unitsPerPixel float64) *CellSurface {
	if unitsPerPixel <= 0 {
		unitsPerPixel = 1
	}
	s := &CellSurface{scale: unitsPerPixel}
	s.Resize(cols, rows)
	return s
}

// Resize reallocates the pixel grid, contents are cleared like a resized canvas
func (s *CellSurface) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	s.cols, s.rows = cols, rows

	size := cols * rows * 2
	if cap(s.pixels) < size {
		s.pixels = make([]RGB, size)
	} else {
		s.pixels = s.pixels[:size]
		clear(s.pixels)
	}

	cells := cols * rows
	if cap(s.glyphs) < cells {
		s.glyphs = make([]glyph, cells)
	} else {
		s.glyphs = s.glyphs[:cells]
		clear(s.glyphs)
	}
}

// SetBackdrop sets the diagonal gradient the pixels are screen-blended over, nil for black
func (s *CellSurface) SetBackdrop(stops []RGB) {
	s.backdrop = stops
}

// Size returns the surface extent in units
func (s *CellSurface) Size() (w, h float64) {
	return float64(s.cols) * s.scale, float64(s.rows*2) * s.scale
}

// Cells returns the terminal grid dimensions
func (s *CellSurface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// CellToUnits maps a terminal cell to the surface point at its center
func (s *CellSurface) CellToUnits(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.scale, (float64(row*2) + 1) * s.scale
}

// Pixel returns the accumulated color at pixel (px, py), black when out of range
func (s *CellSurface) Pixel(px, py int) RGB {
	if !s.inBounds(px, py) {
		return RGBBlack
	}
	return s.pixels[py*s.cols+px]
}

// Glyph returns the pending text rune at a cell, 0 when empty
func (s *CellSurface) Glyph(col, row int) rune {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return 0
	}
	return s.glyphs[row*s.cols+col].r
}

func (s *CellSurface) inBounds(px, py int) bool {
	return px >= 0 && px < s.cols && py >= 0 && py < s.rows*2
}

func (s *CellSurface) blendPixel(px, py int, c RGB, alpha float64) {
	if !s.inBounds(px, py) {
		return
	}
	idx := py*s.cols + px
	s.pixels[idx] = Blend(s.pixels[idx], c, alpha)
}

// toPixel converts a unit coordinate to its containing pixel index
func (s *CellSurface) toPixel(v float64) int {
	return int(math.Floor(v / s.scale))
}

// ===== SURFACE API =====

func (s *CellSurface) FillRect(x, y, w, h float64, c RGB, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	x0 := max(s.toPixel(x), 0)
	y0 := max(s.toPixel(y), 0)
	x1 := min(int(math.Ceil((x+w)/s.scale)), s.cols)
	y1 := min(int(math.Ceil((y+h)/s.scale)), s.rows*2)

	for py := y0; py < y1; py++ {
		row := s.pixels[py*s.cols : (py+1)*s.cols]
		for px := x0; px < x1; px++ {
			row[px] = Blend(row[px], c, alpha)
		}
	}
}

// StrokeLine rasterizes with Bresenham, one pixel thick
// Widths below one unit thin the line by reducing its coverage
func (s *CellSurface) StrokeLine(x0, y0, x1, y1 float64, c RGB, alpha, width float64) {
	alpha *= math.Min(math.Max(width, 0), 1)
	if alpha <= 0 {
		return
	}

	px, py := s.toPixel(x0), s.toPixel(y0)
	ex, ey := s.toPixel(x1), s.toPixel(y1)

	dx := abs(ex - px)
	dy := -abs(ey - py)
	sx, sy := 1, 1
	if px > ex {
		sx = -1
	}
	if py > ey {
		sy = -1
	}
	err := dx + dy

	for {
		s.blendPixel(px, py, c, alpha)
		if px == ex && py == ey {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			px += sx
		}
		if e2 <= dx {
			err += dx
			py += sy
		}
	}
}

// FillRadial samples the gradient at each pixel center inside the circle
// The pixel containing the center is always painted from the first stop, so sub-pixel glows stay visible
func (s *CellSurface) FillRadial(x, y, radius float64, stops []GradientStop) {
	if radius <= 0 || len(stops) == 0 {
		return
	}
	s.fillDisc(x, y, radius, func(t float64) (RGB, float64) {
		return sampleStops(stops, t)
	})
}

func (s *CellSurface) FillCircle(x, y, radius float64, c RGB, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	s.fillDisc(x, y, radius, func(float64) (RGB, float64) {
		return c, alpha
	})
}

func (s *CellSurface) fillDisc(x, y, radius float64, shade func(t float64) (RGB, float64)) {
	cx, cy := s.toPixel(x), s.toPixel(y)
	x0 := max(s.toPixel(x-radius), 0)
	y0 := max(s.toPixel(y-radius), 0)
	x1 := min(s.toPixel(x+radius), s.cols-1)
	y1 := min(s.toPixel(y+radius), s.rows*2-1)

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			var t float64
			if px != cx || py != cy {
				dx := (float64(px)+0.5)*s.scale - x
				dy := (float64(py)+0.5)*s.scale - y
				t = math.Sqrt(dx*dx+dy*dy) / radius
				if t > 1 {
					continue
				}
			}
			c, a := shade(t)
			s.blendPixel(px, py, c, a)
		}
	}
}

func (s *CellSurface) FillText(x, y float64, text string, c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	col := s.toPixel(x)
	row := s.toPixel(y) / 2
	if row < 0 || row >= s.rows {
		return
	}
	for _, r := range text {
		if col >= 0 && col < s.cols {
			s.glyphs[row*s.cols+col] = glyph{r: r, color: c, alpha: alpha}
		}
		col++
	}
}

// ===== OUTPUT =====

// Present writes every cell to the screen and clears the text layer
func (s *CellSurface) Present(w CellWriter) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.composite(col, row*2)
			bottom := s.composite(col, row*2+1)

			idx := row*s.cols + col
			if g := s.glyphs[idx]; g.r != 0 {
				bg := Lerp(top, bottom, 0.5)
				fg := Blend(bg, g.color, g.alpha)
				w.SetContent(col, row, g.r, nil, styleOf(fg, bg))
				s.glyphs[idx] = glyph{}
				continue
			}
			w.SetContent(col, row, visual.HalfUpper, nil, styleOf(top, bottom))
		}
	}
}

// composite returns the displayed color of a pixel: backdrop screen-blended with field content
func (s *CellSurface) composite(px, py int) RGB {
	p := s.pixels[py*s.cols+px]
	if len(s.backdrop) == 0 {
		return p
	}
	u := float64(px) / float64(max(s.cols-1, 1))
	v := float64(py) / float64(max(s.rows*2-1, 1))
	return Screen(Gradient(s.backdrop, (u+v)/2), p)
}

func styleOf(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// StyleOf exposes the fg/bg conversion for overlay renderers drawing next to the surface
func StyleOf(fg, bg RGB) tcell.Style {
	return styleOf(fg, bg)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
