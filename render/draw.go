package render

import (
	"image/color"

	"github.com/scottkirkwood/pedals"
)

// DrawOptions holds the presentation settings that are not part of a scene.
type DrawOptions struct {
	Background  color.Color // nil leaves the background transparent
	StrokeWidth float64     // in target units, millimetres for a Context
	Margin      float64     // blank border on every side, in target units
}

// pen is the drawing surface shared by the vector canvas and the raster preview.
type pen interface {
	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetStrokeWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Close()
	Stroke()
	FillStroke()
}

// Draw renders scene onto ctx as seen through cam, scaled to fill the canvas.
func Draw(ctx *Context, scene pedals.Scene, cam Camera, opts DrawOptions) {
	width, height := ctx.Size()
	if opts.Background != nil {
		ctx.SetFillColor(opts.Background)
		ctx.FillRect(0, 0, width, height)
	}
	vp := Fit(scene, cam, width, height, opts.Margin, false)
	draw(ctx, scene, cam, vp, opts)
}

func draw(p pen, scene pedals.Scene, cam Camera, vp Viewport, opts DrawOptions) {
	p.SetStrokeWidth(opts.StrokeWidth)
	for _, sf := range scene.Surfaces {
		drawSurface(p, sf, cam, vp)
	}
	for _, st := range scene.Strokes {
		pts := vp.ApplyCurve(cam.ProjectCurve(st.Curve))
		col := WithAlpha(st.Color, st.Alpha)
		if st.Fill {
			if len(pts) < 3 {
				continue
			}
			p.SetFillColor(col)
			p.SetStrokeColor(col)
			polyline(p, pts)
			p.Close()
			p.FillStroke()
			continue
		}
		if len(pts) < 2 {
			continue
		}
		p.SetStrokeColor(col)
		polyline(p, pts)
		p.Stroke()
	}
}

// drawSurface draws the grid lines of a surface in both directions.
func drawSurface(p pen, sf pedals.Surface, cam Camera, vp Viewport) {
	p.SetStrokeColor(WithAlpha(sf.Color, sf.Alpha))
	rows := make([]pedals.Curve, len(sf.Grid))
	for i, row := range sf.Grid {
		rows[i] = vp.ApplyCurve(cam.ProjectCurve(row))
		if len(rows[i]) > 1 {
			polyline(p, rows[i])
			p.Stroke()
		}
	}
	if len(rows) < 2 {
		return
	}
	for j := range rows[0] {
		col := make(pedals.Curve, 0, len(rows))
		for _, row := range rows {
			if j < len(row) {
				col = append(col, row[j])
			}
		}
		if len(col) > 1 {
			polyline(p, col)
			p.Stroke()
		}
	}
}

func polyline(p pen, pts pedals.Curve) {
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}
