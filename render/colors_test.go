package render

import (
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hex(t *testing.T, c color.Color) string {
	t.Helper()
	cc, ok := colorful.MakeColor(c)
	require.True(t, ok)
	return cc.Hex()
}

func TestViridis(t *testing.T) {
	cols := Viridis(3)
	require.Len(t, cols, 3)
	assert.Equal(t, "#440154", hex(t, cols[0]))
	assert.Equal(t, "#fde725", hex(t, cols[2]))

	assert.Equal(t, "#440154", hex(t, Viridis(1)[0]))
	assert.Nil(t, Viridis(0))

	// Each stop is hit exactly when the samples line up with it.
	ten := Viridis(10)
	for i, want := range []string{"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"} {
		assert.Equal(t, want, hex(t, ten[i]))
	}
}

func TestViridisBlend(t *testing.T) {
	// Halfway between two stops is neither of them.
	mid := hex(t, viridisAt(0.5/9))
	assert.NotEqual(t, "#440154", mid)
	assert.NotEqual(t, "#482878", mid)
}

func TestViridisNearMatplotlib(t *testing.T) {
	tests := []struct {
		t    float64
		want string
	}{
		{0.25, "#3b528b"},
		{0.5, "#21918c"},
		{0.75, "#5ec962"},
	}
	for _, tt := range tests {
		want, err := colorful.Hex(tt.want)
		require.NoError(t, err)
		got := viridisAt(tt.t)
		r0, g0, b0 := want.RGB255()
		r1, g1, b1 := got.RGB255()
		assert.InDelta(t, r0, r1, 3, "red at %g: %s", tt.t, got.Hex())
		assert.InDelta(t, g0, g1, 3, "green at %g: %s", tt.t, got.Hex())
		assert.InDelta(t, b0, b1, 3, "blue at %g: %s", tt.t, got.Hex())
	}
	five := Viridis(5)
	assert.Equal(t, "#440154", hex(t, five[0]))
	assert.Equal(t, "#fde725", hex(t, five[4]))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, "#ff8000", hex(t, c))
	_, err = ParseColor("orange")
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 128}, WithAlpha(color.RGBA{255, 0, 0, 255}, 0.5))
	assert.Equal(t, color.NRGBA{A: 255}, WithAlpha(color.Black, 2))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255}, WithAlpha(color.White, -1))
}
