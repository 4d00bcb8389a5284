package pedals

import "math"

// LeafSpec describes a leaf: an ellipse with semi-axes A and B, shifted
// Offset along x, turned Heading radians about the z axis and then tilted
// so that its height grows with distance from the z axis.
type LeafSpec struct {
	A, B    float64
	Phi     float64 // tilt, radians; the slope is cot(Phi)
	StartZ  float64
	Offset  float64
	Heading float64
	Points  int
}

// Leaf returns the closed outline of the leaf, with
// z = StartZ + sqrt(x² + y²)·cos(Phi)/sin(Phi).
// Phi must not be a multiple of π.
func Leaf(s LeafSpec) (Curve3, error) {
	for _, v := range []struct {
		name string
		val  float64
	}{{"a", s.A}, {"b", s.B}, {"phi", s.Phi}, {"start_z", s.StartZ}, {"offset", s.Offset}, {"heading", s.Heading}} {
		if err := checkFinite(v.name, v.val); err != nil {
			return nil, err
		}
	}
	if s.A <= 0 || s.B <= 0 {
		return nil, domainErrorf("leaf axes must be positive, got a=%g b=%g", s.A, s.B)
	}
	sin, cos := math.Sincos(s.Phi)
	if math.Abs(sin) < 1e-12 {
		return nil, domainErrorf("leaf tilt phi=%g has no slope (sin(phi) = 0)", s.Phi)
	}
	if err := checkPoints("points", s.Points, 3); err != nil {
		return nil, err
	}
	slope := cos / sin
	ts := Linspace(0, 2*math.Pi, s.Points)
	out := make(Curve3, len(ts))
	for i, t := range ts {
		st, ct := math.Sincos(t)
		p := Point{X: s.A*ct + s.Offset, Y: s.B * st}.Rotate(s.Heading)
		out[i] = Point3{X: p.X, Y: p.Y, Z: s.StartZ + math.Sqrt(p.Hypot2())*slope}
	}
	return out, nil
}
