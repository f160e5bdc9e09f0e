package component

import (
	"image/color"
	"testing"
)

func TestCountdownClampsAtZero(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		ticks    []float64
		expected float64
	}{
		{"Partial", 100, []float64{30}, 70},
		{"Exact", 100, []float64{50, 50}, 0},
		{"Overshoot", 100, []float64{80, 80}, 0},
		{"Already done", 0, []float64{16}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCountdown(tt.start)
			for _, dt := range tt.ticks {
				c.Tick(dt)
			}
			if c.Remaining != tt.expected {
				t.Errorf("Expected remaining %v, got %v", tt.expected, c.Remaining)
			}
			if (c.Remaining == 0) != c.Done() {
				t.Errorf("Done() = %v with remaining %v", c.Done(), c.Remaining)
			}
		})
	}
}

func TestIntervalStep(t *testing.T) {
	iv := Interval{Period: 1000}
	fired := 0
	for i := 0; i < 25; i++ {
		fired += iv.Step(100)
	}
	if fired != 2 {
		t.Errorf("Expected 2 firings in 2500ms, got %d", fired)
	}
	if iv.Elapsed != 500 {
		t.Errorf("Expected 500ms carried over, got %v", iv.Elapsed)
	}

	zero := Interval{}
	if zero.Step(5000) != 0 {
		t.Error("Interval without period must never fire")
	}
}

func TestRectOverlapsAndExpand(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 40, H: 40}
	tests := []struct {
		name     string
		b        Rect
		expected bool
	}{
		{"Inside", Rect{X: 10, Y: 10, W: 5, H: 5}, true},
		{"Edge touching", Rect{X: 40, Y: 0, W: 10, H: 10}, false},
		{"Partial", Rect{X: 35, Y: 35, W: 10, H: 10}, true},
		{"Far", Rect{X: 100, Y: 100, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps = %v, expected %v", got, tt.expected)
			}
		})
	}

	far := Rect{X: 50, Y: 0, W: 10, H: 10}
	if a.Overlaps(far) {
		t.Fatal("Expected no overlap before expansion")
	}
	if !a.Expand(20).Overlaps(far) {
		t.Error("Expected overlap after expanding by 20")
	}
}

func TestEffectLifecycle(t *testing.T) {
	e := NewEffect(100, 100, color.RGBA{255, 255, 255, 255}, 5, 200, 0.5)
	e.Fade = true
	e.Rise = 0.5

	e.Update(16, 16)
	if e.Size != 5.5 {
		t.Errorf("Expected size 5.5 after one frame, got %v", e.Size)
	}
	if e.Y != 99.5 {
		t.Errorf("Expected y 99.5 after one frame, got %v", e.Y)
	}
	if a := e.Alpha(); a <= 0.9 || a >= 1 {
		t.Errorf("Expected alpha slightly below 1, got %v", a)
	}

	e.Update(200, 16)
	if e.Alive() {
		t.Error("Expected effect to expire")
	}
	if e.Alpha() != 0 {
		t.Errorf("Expected alpha 0 for expired effect, got %v", e.Alpha())
	}
}
