// Package core provides fundamental types and utilities for the jumper game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. The y axis points up.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect represents an axis-aligned bounding box in world units.
// Rectangles are never rotated; Center is the midpoint and Size the full extent.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// NewRect creates a rectangle centered at (x, y) with width w and height h.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Center: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return r.Center.Sub(r.Size.Scale(0.5))
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return r.Center.Add(r.Size.Scale(0.5))
}

// Valid reports whether both extents are positive.
func (r Rect) Valid() bool {
	return r.Size.X > 0 && r.Size.Y > 0
}

// Side classifies which side of a static rectangle a moving one struck.
type Side int

const (
	SideNone   Side = iota // No overlap
	SideLeft               // A hit B's left side
	SideRight              // A hit B's right side
	SideTop                // A sits on B's top side
	SideBottom             // A hit B's bottom side
	SideInside             // Containment on both axes
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide tests moving rectangle a against static rectangle b.
//
// Each axis is classified on its own: a straddling b's lower edge on that axis
// yields Left (x) or Bottom (y), straddling the upper edge yields Right (x) or
// Top (y), anything else is Inside with infinite depth. The axis with the
// smaller penetration depth wins; equal depths report the x axis.
func Collide(a, b Rect) Side {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if !(aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y) {
		return SideNone
	}

	xSide, xDepth := SideInside, float32(math.Inf(-1))
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = SideLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = SideRight, aMin.X-bMax.X
	}

	ySide, yDepth := SideInside, float32(math.Inf(-1))
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = SideBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = SideTop, aMin.Y-bMax.Y
	}

	if absF(yDepth) < absF(xDepth) {
		return ySide
	}
	return xSide
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absF(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
