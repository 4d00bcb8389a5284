package pedals

import (
	"fmt"
	"math"
	"slices"
)

// Domain selects how the sampling interval of a pedal is chosen.
type Domain int

const (
	// Extent samples [-sqrt(c/(a1+a2)), sqrt(c/(a1+a2))], where the lower arc
	// a1·x² meets the upper arc c - a2·x².
	Extent Domain = iota
	// Unit samples [-1, 1] and ignores c; the upper arc becomes
	// a1 + a2 - a2·x² so both arcs meet at x = ±1.
	Unit
)

func (d Domain) String() string {
	switch d {
	case Extent:
		return "extent"
	case Unit:
		return "unit"
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

// ParseDomain parses "extent" or "unit". The empty string is Extent.
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "", "extent":
		return Extent, nil
	case "unit":
		return Unit, nil
	}
	return Extent, fmt.Errorf("unknown pedal domain %q", s)
}

// PedalSpec holds the parameters of a single pedal.
type PedalSpec struct {
	A1, A2, C float64
	Domain    Domain
	Points    int // samples per arc
}

// Curve builds the pedal described by s.
func (s PedalSpec) Curve() (Curve, error) {
	switch s.Domain {
	case Extent:
		return Pedal(s.A1, s.A2, s.C, s.Points)
	case Unit:
		return UnitPedal(s.A1, s.A2, s.Points)
	}
	return nil, domainErrorf("unknown pedal domain %d", int(s.Domain))
}

// Pedal returns the closed outline bounded below by y = a1·x² and above by
// y = c - a2·x². The lower arc is walked left to right, then the upper arc
// right to left, so the curve has 2*points points and ends where it started.
func Pedal(a1, a2, c float64, points int) (Curve, error) {
	if err := checkArcs(a1, a2, points); err != nil {
		return nil, err
	}
	if err := checkFinite("c", c); err != nil {
		return nil, err
	}
	if c <= 0 {
		return nil, domainErrorf("c must be positive, got %g", c)
	}
	xMax := math.Sqrt(c / (a1 + a2))
	return arcs(Linspace(-xMax, xMax, points), a1, a2, c), nil
}

// UnitPedal is Pedal on the fixed interval [-1, 1].
func UnitPedal(a1, a2 float64, points int) (Curve, error) {
	if err := checkArcs(a1, a2, points); err != nil {
		return nil, err
	}
	return arcs(Linspace(-1, 1, points), a1, a2, a1+a2), nil
}

func checkArcs(a1, a2 float64, points int) error {
	if err := checkFinite("a1", a1); err != nil {
		return err
	}
	if err := checkFinite("a2", a2); err != nil {
		return err
	}
	if a1+a2 <= 0 {
		return domainErrorf("a1 + a2 must be positive, got %g", a1+a2)
	}
	return checkPoints("points", points, 2)
}

func arcs(xs []float64, a1, a2, c float64) Curve {
	lower := make(Curve, len(xs))
	upper := make(Curve, len(xs))
	for i, x := range xs {
		lower[i] = Point{X: x, Y: a1 * x * x}
		upper[i] = Point{X: x, Y: -a2*x*x + c}
	}
	slices.Reverse(upper)
	return append(lower, upper...)
}
