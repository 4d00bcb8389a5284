package render

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/scottkirkwood/pedals"
)

// Camera looks at the origin from elevation Elev above the xy plane and
// azimuth Azim around the z axis, both in degrees. The projection is
// orthographic.
type Camera struct {
	Elev, Azim float64
}

var (
	// DefaultCamera is a three-quarter view from above.
	DefaultCamera = Camera{Elev: 30, Azim: 45}
	// TopDown maps (x, y, z) to (x, y).
	TopDown = Camera{Elev: 90, Azim: -90}
)

// axes returns the screen right, screen up and towards-viewer unit vectors.
func (c Camera) axes() (right, up, toward pedals.Point3) {
	sinAz, cosAz := math.Sincos(gg.Radians(c.Azim))
	sinEl, cosEl := math.Sincos(gg.Radians(c.Elev))
	right = pedals.Point3{X: -sinAz, Y: cosAz}
	up = pedals.Point3{X: -sinEl * cosAz, Y: -sinEl * sinAz, Z: cosEl}
	toward = pedals.Point3{X: cosEl * cosAz, Y: cosEl * sinAz, Z: sinEl}
	return right, up, toward
}

func dot(a, b pedals.Point3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Project returns the screen position of p, x to the right and y up.
func (c Camera) Project(p pedals.Point3) pedals.Point {
	right, up, _ := c.axes()
	return pedals.Point{X: dot(p, right), Y: dot(p, up)}
}

// Depth returns how far p is towards the viewer.
func (c Camera) Depth(p pedals.Point3) float64 {
	_, _, toward := c.axes()
	return dot(p, toward)
}

// ProjectCurve projects every point of c.
func (c Camera) ProjectCurve(curve pedals.Curve3) pedals.Curve {
	right, up, _ := c.axes()
	out := make(pedals.Curve, len(curve))
	for i, p := range curve {
		out[i] = pedals.Point{X: dot(p, right), Y: dot(p, up)}
	}
	return out
}
