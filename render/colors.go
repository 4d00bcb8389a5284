package render

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/pedals"
)

// Ten evenly spaced samples of matplotlib's viridis.
var viridisStops = mustHexes(
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
)

func mustHexes(hexes ...string) []colorful.Color {
	cols := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		cols[i] = c
	}
	return cols
}

// Viridis returns n colours evenly spaced along the viridis colormap,
// from dark purple to yellow. A single colour is the dark end.
//
// Colours between the ten stored stops are an approximation: they are
// blended linearly and stay within a few levels per channel of
// matplotlib's 256 entry table.
func Viridis(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	ts := []float64{0}
	if n > 1 {
		ts = pedals.Linspace(0, 1, n)
	}
	cols := make([]color.Color, n)
	for i, t := range ts {
		cols[i] = viridisAt(t)
	}
	return cols
}

func viridisAt(t float64) colorful.Color {
	pos := pedals.Clamp(t, 0, 1) * float64(len(viridisStops)-1)
	if r := math.Round(pos); math.Abs(pos-r) < 1e-9 {
		pos = r
	}
	i := int(math.Floor(pos))
	if i >= len(viridisStops)-1 {
		return viridisStops[len(viridisStops)-1]
	}
	frac := pos - float64(i)
	if frac == 0 {
		return viridisStops[i]
	}
	return viridisStops[i].BlendRgb(viridisStops[i+1], frac).Clamped()
}

// ParseColor parses a #rrggbb colour.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return c, nil
}

// WithAlpha returns col, taken as opaque, with opacity alpha in [0, 1].
// A nil col is black.
func WithAlpha(col color.Color, alpha float64) color.NRGBA {
	if col == nil {
		col = color.Black
	}
	r, g, b, _ := col.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(pedals.Clamp(alpha, 0, 1)*255 + 0.5),
	}
}
