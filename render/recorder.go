package render

// DrawOp identifies a Surface method
type DrawOp uint8

const (
	OpFillRect DrawOp = iota
	OpStrokeLine
	OpFillRadial
	OpFillCircle
	OpFillText
	opCount
)

// DrawCall is one recorded Surface invocation
type DrawCall struct {
	Op     DrawOp
	X, Y   float64 // Start/center
	X1, Y1 float64 // End point for lines
	Size   float64 // Radius, or width for rects and lines
	Color  RGB
	Alpha  float64
	Text   string
}

// Recorder is a Surface spy that counts and optionally keeps every call
// Used by tests to assert on the render path without rasterizing
type Recorder struct {
	// Keep retains the full call log when true, counters are always maintained
	Keep   bool
	Calls  []DrawCall
	counts [opCount]int
}

// NewRecorder creates a recorder that keeps the full call log
func NewRecorder() *Recorder {
	return &Recorder{Keep: true}
}

func (r *Recorder) record(c DrawCall) {
	r.counts[c.Op]++
	if r.Keep {
		r.Calls = append(r.Calls, c)
	}
}

func (r *Recorder) FillRect(x, y, w, h float64, c RGB, alpha float64) {
	r.record(DrawCall{Op: OpFillRect, X: x, Y: y, X1: x + w, Y1: y + h, Size: w, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, c RGB, alpha, width float64) {
	r.record(DrawCall{Op: OpStrokeLine, X: x0, Y: y0, X1: x1, Y1: y1, Size: width, Color: c, Alpha: alpha})
}

func (r *Recorder) FillRadial(x, y, radius float64, stops []GradientStop) {
	var c RGB
	var a float64
	if len(stops) > 0 {
		c, a = stops[0].Color, stops[0].Alpha
	}
	r.record(DrawCall{Op: OpFillRadial, X: x, Y: y, Size: radius, Color: c, Alpha: a})
}

func (r *Recorder) FillCircle(x, y, radius float64, c RGB, alpha float64) {
	r.record(DrawCall{Op: OpFillCircle, X: x, Y: y, Size: radius, Color: c, Alpha: alpha})
}

func (r *Recorder) FillText(x, y float64, text string, c RGB, alpha float64) {
	r.record(DrawCall{Op: OpFillText, X: x, Y: y, Color: c, Alpha: alpha, Text: text})
}

// Count returns the number of calls recorded for op
func (r *Recorder) Count(op DrawOp) int {
	return r.counts[op]
}

// Total returns the number of calls recorded across all ops
func (r *Recorder) Total() int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}

// Reset clears counters and the call log
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.counts = [opCount]int{}
}

// Filter returns the recorded calls for op
func (r *Recorder) Filter(op DrawOp) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
