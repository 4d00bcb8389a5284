package pedals

import "math"

// Rotate returns a copy of c with every point rotated by theta radians
// about the origin.
func Rotate(c Curve, theta float64) Curve {
	sin, cos := math.Sincos(theta)
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = p.rotate(sin, cos)
	}
	return out
}
