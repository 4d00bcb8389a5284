package render

import (
	"math"

	"github.com/scottkirkwood/pedals"
)

// Viewport maps projected scene coordinates onto a canvas.
type Viewport struct {
	scale         float64
	center        pedals.Point // scene point drawn at the canvas centre
	width, height float64
	flipY         bool
}

// Fit returns the viewport that shows the whole scene, seen through cam,
// scaled uniformly to fit width×height less margin on every side.
// flipY is for y-down targets such as raster images.
func Fit(scene pedals.Scene, cam Camera, width, height, margin float64, flipY bool) Viewport {
	v := Viewport{scale: 1, width: width, height: height, flipY: flipY}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(c pedals.Curve) {
		for _, p := range c {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	for _, st := range scene.Strokes {
		grow(cam.ProjectCurve(st.Curve))
	}
	for _, sf := range scene.Surfaces {
		for _, row := range sf.Grid {
			grow(cam.ProjectCurve(row))
		}
	}
	if minX > maxX {
		return v
	}
	v.center = pedals.Pt(pedals.Lerp(minX, maxX, 0.5), pedals.Lerp(minY, maxY, 0.5))
	w, h := maxX-minX, maxY-minY
	availW, availH := math.Max(width-2*margin, 0), math.Max(height-2*margin, 0)
	switch {
	case w > 0 && h > 0:
		v.scale = math.Min(availW/w, availH/h)
	case w > 0:
		v.scale = availW / w
	case h > 0:
		v.scale = availH / h
	}
	return v
}

// Apply maps a projected point to canvas coordinates.
func (v Viewport) Apply(p pedals.Point) pedals.Point {
	x := (p.X-v.center.X)*v.scale + v.width/2
	y := (p.Y-v.center.Y)*v.scale + v.height/2
	if v.flipY {
		y = v.height - y
	}
	return pedals.Point{X: x, Y: y}
}

// ApplyCurve maps every point of c.
func (v Viewport) ApplyCurve(c pedals.Curve) pedals.Curve {
	out := make(pedals.Curve, len(c))
	for i, p := range c {
		out[i] = v.Apply(p)
	}
	return out
}
