package dock

import (
	"fmt"
	"image"
	"math"
)

// Point is a position or a displacement in layout units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle. Min is inclusive and Max is exclusive,
// the same convention as image.Rectangle.
type Rect struct {
	Min, Max Point
}

// R is shorthand for Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// RectFromImage converts an integer image.Rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return R(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
}

// Dx returns r's width.
func (r Rect) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Inset returns r shrunk by n on every side. The result is never inverted.
func (r Rect) Inset(n float64) Rect {
	in := R(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
	if in.Min.X > in.Max.X {
		in.Min.X = (r.Min.X + r.Max.X) / 2
		in.Max.X = in.Min.X
	}
	if in.Min.Y > in.Max.Y {
		in.Min.Y = (r.Min.Y + r.Max.Y) / 2
		in.Max.Y = in.Min.Y
	}
	return in
}

// Image rounds r to the nearest integer rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Round(r.Min.X)), int(math.Round(r.Min.Y)),
		int(math.Round(r.Max.X)), int(math.Round(r.Max.Y)),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
