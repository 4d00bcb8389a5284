// Package preset reads flower descriptions from TOML.
package preset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"math"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/scottkirkwood/pedals"
	"github.com/scottkirkwood/pedals/render"
)

//go:embed presets/*.toml
var builtin embed.FS

// Preset describes one artwork.
type Preset struct {
	Title    string  `toml:"title"`
	Points   int     `toml:"points"` // samples per arc unless a layer says otherwise
	Phase    string  `toml:"phase"`
	Flat     bool    `toml:"flat"` // draw from straight above
	Colormap string  `toml:"colormap"`
	View     View    `toml:"view"`
	Canvas   Canvas  `toml:"canvas"`
	Layers   []Layer `toml:"layer"`
	Stem     *Stem   `toml:"stem"`
	Leaves   []Leaf  `toml:"leaf"`
}

// View is the camera position in degrees.
type View struct {
	Elev float64 `toml:"elev"`
	Azim float64 `toml:"azim"`
}

// Canvas sizes are in millimetres.
type Canvas struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Stroke     float64 `toml:"stroke"`
	Margin     float64 `toml:"margin"`
	Background string  `toml:"background"`
}

// Layer is one ring of pedals lifted onto its own paraboloid.
type Layer struct {
	A1     float64  `toml:"a1"`
	A2     float64  `toml:"a2"`
	A3     float64  `toml:"a3"`
	C      float64  `toml:"c"`
	Domain string   `toml:"domain"`
	Pedals int      `toml:"pedals"`
	Points int      `toml:"points"`
	Color  string   `toml:"color"` // empty takes the colormap
	Alpha  *float64 `toml:"alpha"` // 1 when missing
	Fill   bool     `toml:"fill"`
}

// Stem is a cylinder hanging below the flower.
type Stem struct {
	Length float64  `toml:"length"`
	Radius float64  `toml:"radius"`
	Points int      `toml:"points"`
	Color  string   `toml:"color"`
	Alpha  *float64 `toml:"alpha"`
}

// Leaf angles are in degrees.
type Leaf struct {
	A       float64  `toml:"a"`
	B       float64  `toml:"b"`
	Phi     float64  `toml:"phi"`
	StartZ  float64  `toml:"start_z"`
	Offset  float64  `toml:"offset"`
	Heading float64  `toml:"heading"`
	Points  int      `toml:"points"`
	Color   string   `toml:"color"`
	Alpha   *float64 `toml:"alpha"`
}

const (
	defaultLeafPoints = 200
	defaultStemPoints = 24
)

func defaults() Preset {
	return Preset{
		Points:   1000,
		Phase:    pedals.Alternate.String(),
		Colormap: "viridis",
		View:     View{Elev: render.DefaultCamera.Elev, Azim: render.DefaultCamera.Azim},
		Canvas: Canvas{
			Width:      200,
			Height:     150,
			Stroke:     0.3,
			Margin:     10,
			Background: "#f5f5f5",
		},
	}
}

// Names lists the built-in presets.
func Names() []string {
	entries, err := fs.ReadDir(builtin, "presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Named returns a built-in preset.
func Named(name string) (*Preset, error) {
	data, err := builtin.ReadFile(path.Join("presets", name+".toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no preset named %q (have %s)", name, strings.Join(Names(), ", "))
	}
	if err != nil {
		return nil, err
	}
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return p, nil
}

// Load reads a preset file.
func Load(fname string) (*Preset, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

// Parse decodes and validates a preset. Unknown keys are an error.
func Parse(r io.Reader) (*Preset, error) {
	p := defaults()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks everything that is not a geometric parameter; those are
// checked when the scene is built.
func (p *Preset) Validate() error {
	if len(p.Layers) == 0 {
		return errors.New("no layers")
	}
	if _, err := pedals.ParsePhasePolicy(p.Phase); err != nil {
		return err
	}
	if p.Colormap != "viridis" {
		return fmt.Errorf("unknown colormap %q", p.Colormap)
	}
	if p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		return fmt.Errorf("canvas must have a positive size, got %gx%g", p.Canvas.Width, p.Canvas.Height)
	}
	if _, err := parseColor(p.Canvas.Background); err != nil {
		return err
	}
	for i, l := range p.Layers {
		if _, err := pedals.ParseDomain(l.Domain); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if _, err := parseColor(l.Color); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if err := checkAlpha(l.Alpha); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	if p.Stem != nil {
		if _, err := parseColor(p.Stem.Color); err != nil {
			return fmt.Errorf("stem: %w", err)
		}
		if err := checkAlpha(p.Stem.Alpha); err != nil {
			return fmt.Errorf("stem: %w", err)
		}
	}
	for i, l := range p.Leaves {
		if _, err := parseColor(l.Color); err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
		if err := checkAlpha(l.Alpha); err != nil {
			return fmt.Errorf("leaf %d: %w", i, err)
		}
	}
	return nil
}

// parseColor returns nil for the empty string.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	return render.ParseColor(s)
}

// checkAlpha rejects opacities that cannot be drawn. A missing alpha is fine.
func checkAlpha(a *float64) error {
	if a != nil && (math.IsNaN(*a) || math.IsInf(*a, 0)) {
		return fmt.Errorf("%w: alpha must be finite, got %g", pedals.ErrDomain, *a)
	}
	return nil
}

func alphaOr(a *float64, def float64) float64 {
	if a == nil {
		return def
	}
	return *a
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Policy returns the phase policy.
func (p *Preset) Policy() (pedals.PhasePolicy, error) {
	return pedals.ParsePhasePolicy(p.Phase)
}

// Camera returns where the flower is seen from.
func (p *Preset) Camera() render.Camera {
	if p.Flat {
		return render.TopDown
	}
	return render.Camera{Elev: p.View.Elev, Azim: p.View.Azim}
}

// Background returns the canvas colour, nil for transparent.
func (p *Preset) Background() color.Color {
	col, _ := parseColor(p.Canvas.Background)
	return col
}

// PedalLayers converts the layers, filling missing colours from the colormap.
func (p *Preset) PedalLayers() ([]pedals.Layer, error) {
	ramp := render.Viridis(len(p.Layers))
	layers := make([]pedals.Layer, len(p.Layers))
	for i, l := range p.Layers {
		domain, err := pedals.ParseDomain(l.Domain)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		col, err := parseColor(l.Color)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if col == nil {
			col = ramp[i]
		}
		points := l.Points
		if points == 0 {
			points = p.Points
		}
		layers[i] = pedals.Layer{
			Pedal:  pedals.PedalSpec{A1: l.A1, A2: l.A2, C: l.C, Domain: domain, Points: points},
			Pedals: l.Pedals,
			A3:     l.A3,
			Color:  col,
			Alpha:  alphaOr(l.Alpha, 1),
			Fill:   l.Fill,
		}
	}
	return layers, nil
}

// StemSurface returns the stem, if the preset has one.
func (p *Preset) StemSurface() (*pedals.Surface, error) {
	if p.Stem == nil {
		return nil, nil
	}
	points := p.Stem.Points
	if points == 0 {
		points = defaultStemPoints
	}
	grid, err := pedals.Stem(p.Stem.Length, p.Stem.Radius, points)
	if err != nil {
		return nil, fmt.Errorf("stem: %w", err)
	}
	col, err := parseColor(p.Stem.Color)
	if err != nil {
		return nil, fmt.Errorf("stem: %w", err)
	}
	if col == nil {
		col = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	}
	if err := checkAlpha(p.Stem.Alpha); err != nil {
		return nil, fmt.Errorf("stem: %w", err)
	}
	return &pedals.Surface{Grid: grid, Color: col, Alpha: alphaOr(p.Stem.Alpha, 1)}, nil
}

// LeafStrokes returns the filled leaf outlines.
func (p *Preset) LeafStrokes() ([]pedals.Stroke, error) {
	strokes := make([]pedals.Stroke, 0, len(p.Leaves))
	for i, l := range p.Leaves {
		points := l.Points
		if points == 0 {
			points = defaultLeafPoints
		}
		curve, err := pedals.Leaf(pedals.LeafSpec{
			A:       l.A,
			B:       l.B,
			Phi:     radians(l.Phi),
			StartZ:  l.StartZ,
			Offset:  l.Offset,
			Heading: radians(l.Heading),
			Points:  points,
		})
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		col, err := parseColor(l.Color)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		if col == nil {
			col = color.RGBA{0x43, 0xa0, 0x47, 0xff}
		}
		if err := checkAlpha(l.Alpha); err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		strokes = append(strokes, pedals.Stroke{
			Curve: curve,
			Color: col,
			Alpha: alphaOr(l.Alpha, 1),
			Fill:  true,
			Layer: -1,
			Index: i,
		})
	}
	return strokes, nil
}
