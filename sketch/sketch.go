// Package sketch turns a preset into files on disk.
package sketch

import (
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/pedals"
	"github.com/scottkirkwood/pedals/preset"
	"github.com/scottkirkwood/pedals/render"
)

// pixels per millimetre for the raster preview
const previewScale = 4

// Options says where and how a sketch is written.
type Options struct {
	OutDir  string
	Prefix  string // start of every file name, e.g. "layered"
	Ext     string // ".png", ".svg" or ".pdf"
	Preview bool   // also write a quick raster preview
	Stamp   render.Stamp
}

// Build generates the scene of a preset: stem first, then leaves, then the
// pedal layers, so the flower is drawn last.
func Build(p *preset.Preset) (pedals.Scene, error) {
	layers, err := p.PedalLayers()
	if err != nil {
		return pedals.Scene{}, err
	}
	policy, err := p.Policy()
	if err != nil {
		return pedals.Scene{}, err
	}
	flower, err := pedals.Compose(layers, policy)
	if err != nil {
		return pedals.Scene{}, err
	}

	var scene pedals.Scene
	stem, err := p.StemSurface()
	if err != nil {
		return pedals.Scene{}, err
	}
	if stem != nil {
		scene.AddSurface(*stem)
	}
	leaves, err := p.LeafStrokes()
	if err != nil {
		return pedals.Scene{}, err
	}
	for _, l := range leaves {
		scene.AddStroke(l)
	}
	for _, st := range flower.Strokes {
		scene.AddStroke(st)
	}
	return scene, nil
}

// Run builds the preset and writes it out, returning the files written.
func Run(p *preset.Preset, opts Options) ([]string, error) {
	start := time.Now()
	scene, err := Build(p)
	if err != nil {
		return nil, fmt.Errorf("building %q: %w", p.Title, err)
	}
	log.Debug().Str("preset", p.Title).Int("layers", len(p.Layers)).
		Int("strokes", len(scene.Strokes)).Int("surfaces", len(scene.Surfaces)).
		Str("duration", time.Since(start).String()).Msg("scene built")

	cam := p.Camera()
	ctx := render.NewContext(p.Canvas.Width, p.Canvas.Height)
	render.Draw(ctx, scene, cam, render.DrawOptions{
		Background:  p.Background(),
		StrokeWidth: p.Canvas.Stroke,
		Margin:      p.Canvas.Margin,
	})

	prefix := filepath.Join(opts.OutDir, opts.Prefix+"-")
	fname, err := opts.Stamp.SafeWrite(ctx, prefix, opts.Ext)
	if err != nil {
		return nil, err
	}
	files := []string{fname}

	if opts.Preview {
		bg := p.Background()
		if bg == nil {
			bg = color.White
		}
		dc := render.Preview(scene, cam, render.DrawOptions{
			Background:  bg,
			StrokeWidth: p.Canvas.Stroke * previewScale,
			Margin:      p.Canvas.Margin * previewScale,
		}, int(p.Canvas.Width*previewScale), int(p.Canvas.Height*previewScale), p.Title)
		fname, err := opts.Stamp.SafeWritePreview(dc, prefix)
		if err != nil {
			return files, err
		}
		files = append(files, fname)
	}
	return files, nil
}
