// Package camera provides a 2D camera for viewport control over the
// course.
package camera

// Camera controls the viewport into the world. The course is much wider
// than the screen; the camera tracks the ball horizontally and clamps to
// the world bounds so the edges never show past the course.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World dimensions
	WorldW, WorldH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// FollowRate is the exponential catch-up rate per second
	FollowRate float32
}

// New creates a camera looking at the left edge of the world at 1:1 zoom.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		X:          viewportW / 2,
		Y:          worldH / 2,
		Zoom:       1.0,
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		WorldW:     worldW,
		WorldH:     worldH,
		MinZoom:    0.5,
		MaxZoom:    4.0,
		FollowRate: 6.0,
	}
	c.clamp()
	return c
}

// SnapTo centers the camera on a world position immediately.
func (c *Camera) SnapTo(wx, wy float32) {
	c.X = wx
	c.Y = wy
	c.clamp()
}

// Follow eases the camera toward a target with exponential catch-up, so a
// flying ball stays near the screen center without hard snapping.
func (c *Camera) Follow(wx, wy, dt float32) {
	t := c.FollowRate * dt
	if t > 1 {
		t = 1
	}
	c.X += (wx - c.X) * t
	c.Y += (wy - c.Y) * t
	c.clamp()
}

// clamp keeps the visible area inside the world horizontally and pins the
// vertical center so the ground line stays on screen.
func (c *Camera) clamp() {
	halfW := c.ViewportW / (2 * c.Zoom)
	if c.X < halfW {
		c.X = halfW
	}
	if c.X > c.WorldW-halfW {
		c.X = c.WorldW - halfW
	}

	halfH := c.ViewportH / (2 * c.Zoom)
	if c.Y < halfH {
		c.Y = halfH
	}
	if c.Y > c.WorldH-halfH {
		c.Y = c.WorldH - halfH
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius could
// be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	dx := wx - c.X
	dy := wy - c.Y

	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius

	return absf(dx) <= halfW && absf(dy) <= halfH
}

// Resize updates the viewport dimensions after a window resize.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.clamp()
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
