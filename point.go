package pedals

import (
	"fmt"
	"math"
)

// Point is a point in the plane
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rotate returns p rotated by theta radians about the origin.
// A positive angle turns the positive x axis into the positive y axis.
func (p Point) Rotate(theta float64) Point {
	return p.rotate(math.Sincos(theta))
}

func (p Point) rotate(sin, cos float64) Point {
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Hypot2 returns the squared distance from the origin.
func (p Point) Hypot2() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Dist returns the distance between p and o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Point3 is a point in space
type Point3 struct {
	X, Y, Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// XY drops the height.
func (p Point3) XY() Point {
	return Point{X: p.X, Y: p.Y}
}

// Curve is an ordered list of planar points. Curves are never modified after
// they are produced; every transform returns a new one.
type Curve []Point

// Closed reports whether the first and last points are within eps of each other.
func (c Curve) Closed(eps float64) bool {
	if len(c) < 2 {
		return false
	}
	return c[0].Dist(c[len(c)-1]) <= eps
}

// Curve3 is an ordered list of points in space.
type Curve3 []Point3

// Bounds returns the component-wise minimum and maximum of the curve.
// An empty curve returns two zero points.
func (c Curve3) Bounds() (min, max Point3) {
	if len(c) == 0 {
		return min, max
	}
	min, max = c[0], c[0]
	for _, p := range c[1:] {
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	return min, max
}
