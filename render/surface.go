package render

// GradientStop is one stop of a radial gradient, Offset in [0,1] from center to edge
type GradientStop struct {
	Offset float64
	Color  RGB
	Alpha  float64
}

// Surface is a 2D drawing target in continuous surface units
// Implementations composite with source-over alpha unless stated otherwise
type Surface interface {
	// FillRect composites a solid color over the rectangle
	FillRect(x, y, w, h float64, c RGB, alpha float64)

	// StrokeLine draws a straight line segment
	StrokeLine(x0, y0, x1, y1 float64, c RGB, alpha, width float64)

	// FillRadial fills a circle with a radial gradient; stops must be sorted by Offset
	FillRadial(x, y, radius float64, stops []GradientStop)

	// FillCircle fills a solid disc
	FillCircle(x, y, radius float64, c RGB, alpha float64)

	// FillText draws a short string anchored at its first character
	FillText(x, y float64, text string, c RGB, alpha float64)
}

// Discard is a Surface that drops every call
var Discard Surface = discard{}

type discard struct{}

func (discard) FillRect(x, y, w, h float64, c RGB, alpha float64)              {}
func (discard) StrokeLine(x0, y0, x1, y1 float64, c RGB, alpha, width float64) {}
func (discard) FillRadial(x, y, radius float64, stops []GradientStop)          {}
func (discard) FillCircle(x, y, radius float64, c RGB, alpha float64)          {}
func (discard) FillText(x, y float64, text string, c RGB, alpha float64)       {}

// sampleStops returns color and alpha of a radial gradient at offset t
func sampleStops(stops []GradientStop, t float64) (RGB, float64) {
	if len(stops) == 0 {
		return RGBBlack, 0
	}
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color, b.Alpha
			}
			f := (t - a.Offset) / span
			return Lerp(a.Color, b.Color, f), a.Alpha + (b.Alpha-a.Alpha)*f
		}
	}
	last := stops[len(stops)-1]
	return last.Color, last.Alpha
}
