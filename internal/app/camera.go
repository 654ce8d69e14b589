package app

const (
	// ZoomStep is the zoom factor applied per mouse wheel notch.
	ZoomStep = 1.1

	minZoom = 0.25
	maxZoom = 64
)

// Camera maps grid coordinates onto the screen. X and Y are the grid
// position shown at the top-left corner; Zoom is screen pixels per cell.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera showing the grid from the origin at zoom.
func NewCamera(zoom float64) Camera {
	return Camera{Zoom: clampZoom(zoom)}
}

// WorldToScreen projects a grid coordinate to screen pixels.
func (c Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx - c.X) * c.Zoom, (wy - c.Y) * c.Zoom
}

// ScreenToWorld maps screen pixels back to grid coordinates.
func (c Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx/c.Zoom + c.X, sy/c.Zoom + c.Y
}

// Pan moves the view so the content follows a drag of (dx, dy) pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// ZoomAt scales the view by factor while keeping the grid point under the
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	if factor <= 0 {
		return
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Zoom = clampZoom(c.Zoom * factor)
	c.X = wx - sx/c.Zoom
	c.Y = wy - sy/c.Zoom
}

func clampZoom(z float64) float64 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
