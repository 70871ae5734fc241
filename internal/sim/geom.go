package sim

import "math"

// Vec is a point or direction in world space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }
func (v Vec) Heading() float64 { return math.Atan2(v.Y, v.X) }
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }
func (v Vec) Eq(o Vec, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Normalize returns the unit vector along v. The zero vector stays zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < 1e-9 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// FromAngle returns the unit vector for angle a (0 = right, pi/2 = down).
func FromAngle(a float64) Vec {
	return Vec{math.Cos(a), math.Sin(a)}
}

// HeadingTo returns the angle in radians from a toward b.
func HeadingTo(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// NormalizeAngle wraps an angle to [-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a box of size at position p.
func RectAt(p, size Vec) Rect {
	return Rect{X: p.X, Y: p.Y, W: size.X, H: size.Y}
}

// Overlaps is the strict AABB test; touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Origin() Vec { return Vec{r.X, r.Y} }

// Clamp keeps a box of size inside r, returning the adjusted origin.
func (r Rect) Clamp(p, size Vec) Vec {
	return Vec{
		X: math.Max(r.X, math.Min(r.X+r.W-size.X, p.X)),
		Y: math.Max(r.Y, math.Min(r.Y+r.H-size.Y, p.Y)),
	}
}

// InReach is the melee cone-and-range test: the target is hit when it is
// closer than reach and its bearing lies strictly within tolerance of facing.
func InReach(origin Vec, facing float64, target Vec, reach, tolerance float64) bool {
	d := target.Sub(origin)
	if d.Len() >= reach {
		return false
	}
	diff := NormalizeAngle(d.Heading() - facing)
	return math.Abs(diff) < tolerance
}
