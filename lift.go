package pedals

// Lift maps c onto the paraboloid z = a3·(x² + y²).
func Lift(c Curve, a3 float64) Curve3 {
	out := make(Curve3, len(c))
	for i, p := range c {
		out[i] = Point3{X: p.X, Y: p.Y, Z: a3 * p.Hypot2()}
	}
	return out
}

// LiftAll lifts every curve in cs with the same scale.
func LiftAll(cs []Curve, a3 float64) []Curve3 {
	out := make([]Curve3, len(cs))
	for i, c := range cs {
		out[i] = Lift(c, a3)
	}
	return out
}
