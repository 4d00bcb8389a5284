package sketch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottkirkwood/pedals"
	"github.com/scottkirkwood/pedals/preset"
	"github.com/scottkirkwood/pedals/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(t *testing.T, name string) *preset.Preset {
	t.Helper()
	p, err := preset.Named(name)
	require.NoError(t, err)
	return p
}

func TestBuildLayered(t *testing.T) {
	scene, err := Build(named(t, "layered"))
	require.NoError(t, err)
	assert.Empty(t, scene.Surfaces)
	require.Len(t, scene.Strokes, 9)
	for i, st := range scene.Strokes {
		assert.Equal(t, i/3, st.Layer)
		assert.Len(t, st.Curve, 2000)
		assert.True(t, projectXY(st.Curve).Closed(1e-9))
	}
}

func projectXY(c pedals.Curve3) pedals.Curve {
	out := make(pedals.Curve, len(c))
	for i, p := range c {
		out[i] = p.XY()
	}
	return out
}

func TestBuildBouquetOrder(t *testing.T) {
	scene, err := Build(named(t, "bouquet"))
	require.NoError(t, err)
	require.Len(t, scene.Surfaces, 1)
	require.Len(t, scene.Strokes, 2+15)
	assert.Equal(t, -1, scene.Strokes[0].Layer)
	assert.Equal(t, -1, scene.Strokes[1].Layer)
	assert.Equal(t, 0, scene.Strokes[2].Layer)
	assert.Equal(t, 2, scene.Strokes[16].Layer)
}

func TestBuildError(t *testing.T) {
	p := named(t, "layered")
	p.Layers[1].Pedals = 0
	_, err := Build(p)
	assert.ErrorIs(t, err, pedals.ErrDomain)

	_, err = Run(p, Options{OutDir: t.TempDir(), Prefix: "bad", Ext: ".svg"})
	assert.ErrorContains(t, err, "layer 1")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	stamp, err := render.ParseStamp("beef")
	require.NoError(t, err)
	p := named(t, "rosette")
	files, err := Run(p, Options{OutDir: filepath.Join(dir, "samples"), Prefix: "rosette", Ext: ".svg", Preview: true, Stamp: stamp})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0], "-beef.svg"), files[0])
	assert.True(t, strings.HasSuffix(files[1], "-beef-preview.png"), files[1])
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
		assert.True(t, strings.HasPrefix(filepath.Base(f), "rosette-"))
	}
}
