package pedals

import "math"

// Angles returns the n rotation angles used by NFold, in increasing order:
// phi + k·2π/n for k = 0..n-1, where phi is π/n when turn is set and 0
// otherwise.
func Angles(n int, turn bool) ([]float64, error) {
	if n < 1 {
		return nil, domainErrorf("n must be at least 1, got %d", n)
	}
	phi := 0.0
	if turn {
		phi = math.Pi / float64(n)
	}
	step := 2 * math.Pi / float64(n)
	angles := make([]float64, n)
	for k := range angles {
		angles[k] = phi + float64(k)*step
	}
	return angles, nil
}

// NFold returns n rotated copies of c spaced evenly around the origin.
// The copies are ordered by increasing angle.
func NFold(c Curve, n int, turn bool) ([]Curve, error) {
	angles, err := Angles(n, turn)
	if err != nil {
		return nil, err
	}
	copies := make([]Curve, len(angles))
	for i, theta := range angles {
		copies[i] = Rotate(c, theta)
	}
	return copies, nil
}
