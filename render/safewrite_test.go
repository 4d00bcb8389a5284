package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottkirkwood/pedals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) pedals.Scene {
	t.Helper()
	scene, err := pedals.Compose([]pedals.Layer{{
		Pedal:  pedals.PedalSpec{A1: 3, A2: 2, C: 2, Points: 40},
		Pedals: 3,
		A3:     2.5,
		Color:  color.RGBA{0x44, 0x01, 0x54, 0xff},
		Alpha:  1,
	}, {
		Pedal:  pedals.PedalSpec{A1: 1, A2: 1, Domain: pedals.Unit, Points: 40},
		Pedals: 5,
		Color:  color.RGBA{0xfd, 0xe7, 0x25, 0xff},
		Alpha:  0.5,
		Fill:   true,
	}}, pedals.Alternate)
	require.NoError(t, err)
	grid, err := pedals.Stem(3, 0.05, 6)
	require.NoError(t, err)
	scene.AddSurface(pedals.Surface{Grid: grid, Color: color.RGBA{0, 0x80, 0, 0xff}, Alpha: 1})
	return scene
}

func TestStampFilename(t *testing.T) {
	s, err := ParseStamp("1f2e")
	require.NoError(t, err)
	assert.Equal(t, int64(0x1f2e), s.ID())
	assert.Equal(t, "1f2e", s.String())
	name := s.Filename("samples/layered-", ".svg")
	assert.True(t, strings.HasPrefix(name, "samples/layered-"), name)
	assert.True(t, strings.HasSuffix(name, "-1f2e.svg"), name)

	_, err = ParseStamp("not-hex")
	assert.Error(t, err)
	assert.Positive(t, NewStamp().ID())
}

func TestSafeWriteSVG(t *testing.T) {
	dir := t.TempDir()
	ctx := NewContext(100, 80)
	Draw(ctx, testScene(t), DefaultCamera, DrawOptions{Background: color.White, StrokeWidth: 0.3, Margin: 5})

	fname := filepath.Join(dir, "out", "flower.svg")
	require.NoError(t, SafeWrite(ctx, fname))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assertNoTemp(t, filepath.Dir(fname))
}

func TestSafeWriteUnsupported(t *testing.T) {
	dir := t.TempDir()
	err := SafeWrite(NewContext(10, 10), filepath.Join(dir, "flower.gif"))
	assert.ErrorContains(t, err, "unsupported file format")
	assertNoTemp(t, dir)
}

func TestSafeWriteFailureRemovesTemp(t *testing.T) {
	dir := t.TempDir()
	err := safeWrite(filepath.Join(dir, "x.png"), func(string) error { return os.ErrInvalid })
	assert.ErrorIs(t, err, os.ErrInvalid)
	assertNoTemp(t, dir)
	_, err = os.Stat(filepath.Join(dir, "x.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestStampSafeWrite(t *testing.T) {
	dir := t.TempDir()
	s, _ := ParseStamp("abc")
	ctx := NewContext(50, 50)
	Draw(ctx, testScene(t), TopDown, DrawOptions{StrokeWidth: 0.3})
	fname, err := s.SafeWrite(ctx, filepath.Join(dir, "rosette-"), ".pdf")
	require.NoError(t, err)
	assert.FileExists(t, fname)

	dc := Preview(testScene(t), DefaultCamera, DrawOptions{Background: color.White, StrokeWidth: 1, Margin: 20}, 200, 150, "layered")
	fname, err = s.SafeWritePreview(dc, filepath.Join(dir, "rosette-"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fname, "-abc-preview.png"), fname)
	assert.FileExists(t, fname)
}

func assertNoTemp(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "pedals.*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
