package pedals

import (
	"fmt"
	"image/color"

	"golang.org/x/sync/errgroup"
)

// PhasePolicy decides which layers get their pedals turned by half a step.
type PhasePolicy int

const (
	// Alternate turns every odd layer, so neighbouring rings interleave.
	Alternate PhasePolicy = iota
	// Aligned never turns.
	Aligned
	// Offset always turns.
	Offset
)

// Turn reports whether layer index should be turned.
func (p PhasePolicy) Turn(index int) bool {
	switch p {
	case Aligned:
		return false
	case Offset:
		return true
	}
	return index%2 == 1
}

func (p PhasePolicy) String() string {
	switch p {
	case Alternate:
		return "alternate"
	case Aligned:
		return "aligned"
	case Offset:
		return "offset"
	}
	return fmt.Sprintf("PhasePolicy(%d)", int(p))
}

// ParsePhasePolicy parses "alternate", "aligned" or "offset".
// The empty string is Alternate.
func ParsePhasePolicy(s string) (PhasePolicy, error) {
	switch s {
	case "", "alternate":
		return Alternate, nil
	case "aligned":
		return Aligned, nil
	case "offset":
		return Offset, nil
	}
	return Alternate, fmt.Errorf("unknown phase policy %q", s)
}

// Layer is one ring of pedals lifted onto a paraboloid.
type Layer struct {
	Pedal  PedalSpec
	Pedals int     // copies around the ring
	A3     float64 // paraboloid scale, 0 keeps the ring flat
	Color  color.Color
	Alpha  float64
	Fill   bool
}

// Stroke is a single curve tagged with how it should be drawn.
type Stroke struct {
	Curve Curve3
	Color color.Color
	Alpha float64
	Fill  bool
	Layer int // index of the layer that produced it, -1 for leaves and other extras
	Index int // replica index within the layer
}

// Strokes generates the pedals of the layer at position index.
func (l Layer) Strokes(index int, policy PhasePolicy) ([]Stroke, error) {
	if err := checkFinite("a3", l.A3); err != nil {
		return nil, err
	}
	if err := checkFinite("alpha", l.Alpha); err != nil {
		return nil, err
	}
	pedal, err := l.Pedal.Curve()
	if err != nil {
		return nil, err
	}
	copies, err := NFold(pedal, l.Pedals, policy.Turn(index))
	if err != nil {
		return nil, err
	}
	col := l.Color
	if col == nil {
		col = color.Black
	}
	alpha := Clamp(l.Alpha, 0, 1)
	strokes := make([]Stroke, len(copies))
	for i, c := range copies {
		strokes[i] = Stroke{
			Curve: Lift(c, l.A3),
			Color: col,
			Alpha: alpha,
			Fill:  l.Fill,
			Layer: index,
			Index: i,
		}
	}
	return strokes, nil
}

// Compose builds the strokes of every layer. Layers are generated
// concurrently; the result lists them in layer order and each layer's
// pedals by increasing angle.
func Compose(layers []Layer, policy PhasePolicy) (Scene, error) {
	results := make([][]Stroke, len(layers))
	var g errgroup.Group
	for i, l := range layers {
		i, l := i, l
		g.Go(func() error {
			strokes, err := l.Strokes(i, policy)
			if err != nil {
				return fmt.Errorf("layer %d: %w", i, err)
			}
			results[i] = strokes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Scene{}, err
	}
	var scene Scene
	for _, strokes := range results {
		scene.Strokes = append(scene.Strokes, strokes...)
	}
	return scene, nil
}
