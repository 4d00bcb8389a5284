package pedals

import "math"

// Stem returns a cylinder of the given radius hanging from the origin down
// to z = -length. Row i is the ring at the i-th height, column j the j-th
// angle in [0, 2π]; both are sampled with points values.
func Stem(length, radius float64, points int) (Grid, error) {
	if err := checkFinite("length", length); err != nil {
		return nil, err
	}
	if err := checkFinite("radius", radius); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, domainErrorf("stem length must be positive, got %g", length)
	}
	if radius <= 0 {
		return nil, domainErrorf("stem radius must be positive, got %g", radius)
	}
	if err := checkPoints("points", points, 2); err != nil {
		return nil, err
	}
	zs := Linspace(0, -length, points)
	thetas := Linspace(0, 2*math.Pi, points)
	grid := make(Grid, len(zs))
	for i, z := range zs {
		row := make([]Point3, len(thetas))
		for j, theta := range thetas {
			sin, cos := math.Sincos(theta)
			row[j] = Point3{X: radius * cos, Y: radius * sin, Z: z}
		}
		grid[i] = row
	}
	return grid, nil
}
