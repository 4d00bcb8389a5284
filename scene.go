package pedals

import (
	"image/color"
	"math"
)

// Grid is a surface sampled on a rectangular parameter grid.
type Grid [][]Point3

// Surface is a grid tagged with how it should be drawn.
type Surface struct {
	Grid  Grid
	Color color.Color
	Alpha float64
}

// Scene is everything handed to a renderer.
type Scene struct {
	Strokes  []Stroke
	Surfaces []Surface
}

// AddStroke appends a stroke, e.g. a leaf outline.
func (s *Scene) AddStroke(st Stroke) {
	s.Strokes = append(s.Strokes, st)
}

// AddSurface appends a surface, e.g. a stem.
func (s *Scene) AddSurface(sf Surface) {
	s.Surfaces = append(s.Surfaces, sf)
}

// Bounds returns the extent of every point in the scene.
// ok is false for an empty scene.
func (s Scene) Bounds() (min, max Point3, ok bool) {
	min = Point3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = Point3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	grow := func(p Point3) {
		ok = true
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	for _, st := range s.Strokes {
		for _, p := range st.Curve {
			grow(p)
		}
	}
	for _, sf := range s.Surfaces {
		for _, row := range sf.Grid {
			for _, p := range row {
				grow(p)
			}
		}
	}
	if !ok {
		return Point3{}, Point3{}, false
	}
	return min, max, true
}
