package fontkit

import "math"

// Point is a position in design units or pixels, depending on context.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Vector is a displacement, such as a glyph advance.
type Vector struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle given by its origin and size.
// In design space the origin is the bottom-left corner (y up).
type Rect struct {
	Origin Point
	Size   Vector
}

// MinX returns the left edge.
func (r Rect) MinX() float32 { return r.Origin.X }

// MinY returns the bottom edge.
func (r Rect) MinY() float32 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.Origin.X + r.Size.X }

// MaxY returns the top edge.
func (r Rect) MaxY() float32 { return r.Origin.Y + r.Size.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// RoundOut returns the smallest rectangle with integral edges containing r.
func (r Rect) RoundOut() Rect {
	minX := float32(math.Floor(float64(r.MinX())))
	minY := float32(math.Floor(float64(r.MinY())))
	maxX := float32(math.Ceil(float64(r.MaxX())))
	maxY := float32(math.Ceil(float64(r.MaxY())))
	return Rect{Origin: Point{minX, minY}, Size: Vector{maxX - minX, maxY - minY}}
}
