package sim

import "math"

// Camera holds the top-left of the viewport in world space. It snaps to the
// followed target each frame; there is no smoothing.
type Camera struct {
	Pos    Vec
	screen Vec
	world  Vec
}

// NewCamera creates a camera for a world of the given size seen through a
// screen of the given size.
func NewCamera(world, screen Vec) *Camera {
	return &Camera{world: world, screen: screen}
}

// Follow centres the viewport on target, clamped so it never leaves the world.
func (c *Camera) Follow(target Vec) {
	t := target.Sub(c.screen.Scale(0.5))
	c.Pos = Vec{
		X: math.Max(0, math.Min(c.world.X-c.screen.X, t.X)),
		Y: math.Max(0, math.Min(c.world.Y-c.screen.Y, t.Y)),
	}
}

// WorldToScreen converts a world point into screen space.
func (c *Camera) WorldToScreen(p Vec) Vec {
	return p.Sub(c.Pos)
}

// ScreenToWorld converts a screen point into world space.
func (c *Camera) ScreenToWorld(p Vec) Vec {
	return p.Add(c.Pos)
}

// Viewport returns the visible rectangle in world space.
func (c *Camera) Viewport() Rect {
	return RectAt(c.Pos, c.screen)
}

// Screen returns the viewport size.
func (c *Camera) Screen() Vec {
	return c.screen
}
