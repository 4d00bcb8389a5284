package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/scottkirkwood/pedals"
	"golang.org/x/image/font/basicfont"
)

// ggPen draws on a gg raster, which keeps a single current colour.
type ggPen struct {
	dc           *gg.Context
	fill, stroke color.Color
}

func (p *ggPen) SetFillColor(col color.Color)   { p.fill = col }
func (p *ggPen) SetStrokeColor(col color.Color) { p.stroke = col }
func (p *ggPen) SetStrokeWidth(width float64)   { p.dc.SetLineWidth(width) }
func (p *ggPen) MoveTo(x, y float64)            { p.dc.MoveTo(x, y) }
func (p *ggPen) LineTo(x, y float64)            { p.dc.LineTo(x, y) }
func (p *ggPen) Close()                         { p.dc.ClosePath() }

func (p *ggPen) Stroke() {
	p.dc.SetColor(p.stroke)
	p.dc.Stroke()
}

func (p *ggPen) FillStroke() {
	p.dc.SetColor(p.fill)
	p.dc.FillPreserve()
	p.dc.SetColor(p.stroke)
	p.dc.Stroke()
}

// Preview rasterises scene into a width×height pixel image with title
// written across the top. Options are in pixels.
func Preview(scene pedals.Scene, cam Camera, opts DrawOptions, width, height int, title string) *gg.Context {
	dc := gg.NewContext(width, height)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	w, h := float64(width), float64(height)
	vp := Fit(scene, cam, w, h, opts.Margin, true)
	draw(&ggPen{dc: dc, fill: color.Black, stroke: color.Black}, scene, cam, vp, opts)
	if title != "" {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(title, w/2, opts.Margin/2+7, 0.5, 0.5)
	}
	return dc
}
