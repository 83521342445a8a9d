package camera

import (
	"math"
	"testing"
)

func TestNewStartsAtLeftEdge(t *testing.T) {
	c := New(1280, 720, 8000, 720)

	if c.X != 640 {
		t.Errorf("initial x = %.1f, want half viewport 640", c.X)
	}
	// At 1:1 zoom with a viewport-height world the vertical center is pinned.
	if c.Y != 360 {
		t.Errorf("initial y = %.1f, want 360", c.Y)
	}
}

func TestSnapToClampsToWorld(t *testing.T) {
	c := New(1280, 720, 8000, 720)

	tests := []struct {
		name  string
		wx    float32
		wantX float32
	}{
		{"middle of the course", 4000, 4000},
		{"past the left edge", -500, 640},
		{"past the right edge", 9000, 8000 - 640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SnapTo(tt.wx, 360)
			if c.X != tt.wantX {
				t.Errorf("SnapTo(%.0f) x = %.1f, want %.1f", tt.wx, c.X, tt.wantX)
			}
		})
	}
}

func TestFollowEasesTowardTarget(t *testing.T) {
	c := New(1280, 720, 8000, 720)
	c.SnapTo(2000, 360)

	c.Follow(3000, 360, 1.0/60)
	if c.X <= 2000 || c.X >= 3000 {
		t.Errorf("one follow step moved x to %.1f, want strictly between 2000 and 3000", c.X)
	}

	// Repeated follows converge on the target.
	for i := 0; i < 600; i++ {
		c.Follow(3000, 360, 1.0/60)
	}
	if math.Abs(float64(c.X-3000)) > 1 {
		t.Errorf("camera never converged: x = %.1f, want ~3000", c.X)
	}
}

func TestFollowLargeStepDoesNotOvershoot(t *testing.T) {
	c := New(1280, 720, 8000, 720)
	c.SnapTo(2000, 360)

	// A huge dt caps the catch-up at the target instead of flying past it.
	c.Follow(3000, 360, 10)
	if c.X > 3000 {
		t.Errorf("follow overshot to %.1f", c.X)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	c := New(1280, 720, 8000, 720)
	c.SnapTo(4000, 360)
	c.Zoom = 2

	points := [][2]float32{{4000, 360}, {3700, 100}, {4310, 719}}
	for _, p := range points {
		sx, sy := c.WorldToScreen(p[0], p[1])
		wx, wy := c.ScreenToWorld(sx, sy)
		if absf(wx-p[0]) > 1e-3 || absf(wy-p[1]) > 1e-3 {
			t.Errorf("round trip of (%.1f, %.1f) = (%.1f, %.1f)", p[0], p[1], wx, wy)
		}
	}

	// The camera center lands on the screen center.
	sx, sy := c.WorldToScreen(c.X, c.Y)
	if sx != 640 || sy != 360 {
		t.Errorf("camera center projects to (%.1f, %.1f), want (640, 360)", sx, sy)
	}
}

func TestIsVisible(t *testing.T) {
	c := New(1280, 720, 8000, 720)
	c.SnapTo(4000, 360)

	tests := []struct {
		name   string
		wx, wy float32
		radius float32
		want   bool
	}{
		{"at center", 4000, 360, 8, true},
		{"near right edge", 4630, 360, 8, true},
		{"past right edge", 4700, 360, 8, false},
		{"past edge but radius reaches in", 4645, 360, 8, true},
		{"far above", 4000, -400, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsVisible(tt.wx, tt.wy, tt.radius); got != tt.want {
				t.Errorf("IsVisible(%.0f, %.0f, %.0f) = %v, want %v", tt.wx, tt.wy, tt.radius, got, tt.want)
			}
		})
	}
}

func TestResizeReclamps(t *testing.T) {
	c := New(1280, 720, 8000, 720)
	c.SnapTo(640, 360)

	// A wider viewport needs more clearance from the left edge.
	c.Resize(1920, 720)
	if c.X != 960 {
		t.Errorf("x after resize = %.1f, want 960", c.X)
	}
}
