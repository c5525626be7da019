package render

import (
	"testing"
)

func TestBlendEndpoints(t *testing.T) {
	dst := RGB{10, 20, 30}
	src := RGB{200, 100, 50}

	if got := Blend(dst, src, 0); got != dst {
		t.Errorf("alpha 0: expected %v, got %v", dst, got)
	}
	if got := Blend(dst, src, 1); got != src {
		t.Errorf("alpha 1: expected %v, got %v", src, got)
	}
	if got := Blend(RGBBlack, RGB{200, 200, 200}, 0.5); got != (RGB{100, 100, 100}) {
		t.Errorf("alpha 0.5: expected (100,100,100), got %v", got)
	}
}

func TestScreenNeverDarkens(t *testing.T) {
	tests := []struct {
		name     string
		dst, src RGB
	}{
		{"Black over color", RGB{80, 40, 120}, RGBBlack},
		{"Color over black", RGBBlack, RGB{96, 165, 250}},
		{"Mid over mid", RGB{128, 128, 128}, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Screen(tt.dst, tt.src)
			if got.R < max(tt.dst.R, tt.src.R)-1 || got.G < max(tt.dst.G, tt.src.G)-1 || got.B < max(tt.dst.B, tt.src.B)-1 {
				t.Errorf("Screen(%v, %v) = %v darker than inputs", tt.dst, tt.src, got)
			}
		})
	}
}

func TestAddClamps(t *testing.T) {
	if got := Add(RGB{200, 10, 0}, RGB{100, 10, 0}); got != (RGB{255, 20, 0}) {
		t.Errorf("Expected clamped add, got %v", got)
	}
}

func TestGradientStops(t *testing.T) {
	stops := []RGB{{0, 0, 0}, {100, 100, 100}, {200, 200, 200}}

	if got := Gradient(stops, 0); got != stops[0] {
		t.Errorf("t=0: expected first stop, got %v", got)
	}
	if got := Gradient(stops, 1); got != stops[2] {
		t.Errorf("t=1: expected last stop, got %v", got)
	}
	if got := Gradient(stops, 0.5); got != stops[1] {
		t.Errorf("t=0.5: expected middle stop, got %v", got)
	}
	if got := Gradient(nil, 0.3); got != RGBBlack {
		t.Errorf("Empty gradient: expected black, got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	got, err := ParseHex("#60a5fa")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if got != (RGB{0x60, 0xa5, 0xfa}) {
		t.Errorf("Expected (96,165,250), got %v", got)
	}

	if _, err := ParseHex("not-a-color"); err == nil {
		t.Error("Expected error for malformed hex")
	}
}

func TestSampleStops(t *testing.T) {
	c := RGB{255, 0, 0}
	stops := []GradientStop{
		{Offset: 0, Color: c, Alpha: 1},
		{Offset: 0.5, Color: c, Alpha: 0.5},
		{Offset: 1, Color: c, Alpha: 0},
	}

	tests := []struct {
		t, wantAlpha float64
	}{
		{0, 1},
		{0.25, 0.75},
		{0.5, 0.5},
		{1, 0},
		{2, 0},
	}

	for _, tt := range tests {
		_, a := sampleStops(stops, tt.t)
		if diff := a - tt.wantAlpha; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("sampleStops(t=%v) alpha = %v, want %v", tt.t, a, tt.wantAlpha)
		}
	}
}

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.FillRect(0, 0, 1, 1, RGBBlack, 0.05)
	r.StrokeLine(0, 0, 1, 1, RGBBlack, 0.1, 1)
	r.StrokeLine(0, 0, 2, 2, RGBBlack, 0.1, 1)
	r.FillCircle(0, 0, 1, RGBBlack, 1)

	if r.Count(OpStrokeLine) != 2 {
		t.Errorf("Expected 2 lines, got %d", r.Count(OpStrokeLine))
	}
	if r.Total() != 4 {
		t.Errorf("Expected 4 calls, got %d", r.Total())
	}
	if len(r.Filter(OpFillCircle)) != 1 {
		t.Error("Expected one circle in log")
	}

	r.Reset()
	if r.Total() != 0 || len(r.Calls) != 0 {
		t.Error("Expected reset to clear counters and log")
	}
}
