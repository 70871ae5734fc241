package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCamera() *Camera {
	return NewCamera(Vec{3000, 3000}, Vec{1280, 720})
}

func TestCameraFollowCentresPlayer(t *testing.T) {
	c := newTestCamera()
	c.Follow(Vec{1500, 1500})
	assert.Equal(t, Vec{860, 1140}, c.Pos)
	assert.Equal(t, Rect{860, 1140, 1280, 720}, c.Viewport())
}

func TestCameraClamp(t *testing.T) {
	c := newTestCamera()
	for x := -500.0; x <= 3500; x += 250 {
		for y := -500.0; y <= 3500; y += 250 {
			c.Follow(Vec{x, y})
			assert.GreaterOrEqual(t, c.Pos.X, 0.0)
			assert.GreaterOrEqual(t, c.Pos.Y, 0.0)
			assert.LessOrEqual(t, c.Pos.X, 3000.0-1280)
			assert.LessOrEqual(t, c.Pos.Y, 3000.0-720)
		}
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.Follow(Vec{2000, 900})
	for _, p := range []Vec{{0, 0}, {640, 360}, {1279, 719}, {12.5, 700.25}} {
		assert.Equal(t, p, c.WorldToScreen(c.ScreenToWorld(p)))
	}
	vp := c.Viewport()
	for _, w := range []Vec{vp.Origin(), vp.Center(), {vp.X + vp.W - 1, vp.Y + 1}} {
		assert.Equal(t, w, c.ScreenToWorld(c.WorldToScreen(w)))
	}
}
