package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodome/config"
	"github.com/katalvlaran/geodome/dome"
)

func TestDefault_MatchesDome(t *testing.T) {
	t.Parallel()

	f := config.Default()
	require.NoError(t, f.Validate())
	assert.Equal(t, dome.DefaultConfig(), f.DomeConfig())
	assert.False(t, f.Icosahedral)
	assert.Equal(t, "Nodes.txt", f.Output.Nodes)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	f, err := config.Parse([]byte(`
radius: 3
frequency: 4
icosahedral: true
triangles: lattice
output:
  dir: out
  dxf: dome.dxf
`))
	require.NoError(t, err)

	c := f.DomeConfig()
	assert.Equal(t, 3.0, c.Radius)
	assert.Equal(t, 4, c.Frequency)
	assert.False(t, c.Projected)
	assert.Equal(t, dome.TrianglesLattice, c.Triangles)
	assert.Equal(t, 0.8, c.CutPoint, "untouched keys keep defaults")
	assert.Equal(t, "out", f.Output.Dir)
	assert.Equal(t, "dome.dxf", f.Output.DXF)
	assert.Equal(t, "Edges.txt", f.Names().Edges)

	b, err := dome.New(f.DomeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, c, b.Config())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	f, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), f)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "radios: 2", config.ErrInvalid},
		{"bad type", "frequency: many", config.ErrInvalid},
		{"zero frequency", "frequency: 0", dome.ErrConfiguration},
		{"negative radius", "radius: -1", dome.ErrConfiguration},
		{"cut point", "cut_point: 2", dome.ErrConfiguration},
		{"method", "triangles: fastest", config.ErrInvalid},
		{"empty name", "output: {nodes: ''}", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	f := config.Default()
	f.Frequency = 5
	f.Output.GLTF = "dome.glb"
	data, err := f.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dome.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, f, back)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
