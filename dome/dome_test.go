package dome_test

import (
	"context"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodome/dome"
	"github.com/katalvlaran/geodome/geom"
)

func build(t *testing.T, opts ...dome.Option) *dome.Result {
	t.Helper()
	b, err := dome.New(opts...)
	require.NoError(t, err)
	res, err := b.Build(context.Background())
	require.NoError(t, err)
	return res
}

func TestBuild_Icosahedron(t *testing.T) {
	t.Parallel()

	res := build(t, dome.WithRadius(2), dome.WithFrequency(1))
	assert.Len(t, res.Points, 12)
	assert.Len(t, res.Edges, 30)
	assert.Len(t, res.Triangles, 20)
	require.NoError(t, res.Validate())

	assert.Equal(t, map[int]int{5: 12}, res.Stats.Valence)
	assert.InDelta(t, dome.BaseEdge(2), res.Stats.MinStrut, 1e-9)
	assert.InDelta(t, dome.BaseEdge(2), res.Stats.MaxStrut, 1e-9)

	// the seed vertices keep ids 1..12: a is the top apex
	assert.InDelta(t, 2, res.Points[0].Pos.Z, 1e-12)
	assert.InDelta(t, -2, res.Points[11].Pos.Z, 1e-12)
}

func TestBuild_FrequencyTwo(t *testing.T) {
	t.Parallel()

	res := build(t, dome.WithRadius(3), dome.WithFrequency(2))
	assert.Len(t, res.Points, 42)
	assert.Len(t, res.Edges, 120)
	assert.Len(t, res.Triangles, 80)
	require.NoError(t, res.Validate())

	assert.Equal(t, map[int]int{5: 12, 6: 30}, res.Stats.Valence)
	assert.Less(t, res.Stats.MinStrut, res.Stats.MaxStrut)
	assert.Zero(t, res.Stats.DroppedEdges)
	assert.Equal(t, 12+20*6, res.Stats.Candidates)
	assert.Equal(t, res.Stats.Candidates-42, res.Stats.Merged)
	assert.Equal(t, 20*3*4, res.Stats.RawEdges)
	assert.Equal(t, res.Stats.RawEdges-120, res.Stats.DuplicateEdges)
}

func TestBuild_CountsPerFrequency(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		res := build(t, dome.WithFrequency(n))
		assert.Lenf(t, res.Points, 10*n*n+2, "n=%d", n)
		assert.Lenf(t, res.Edges, 30*n*n, "n=%d", n)
		assert.Lenf(t, res.Triangles, 20*n*n, "n=%d", n)
		assert.Equal(t, 2, len(res.Points)-len(res.Edges)+len(res.Triangles))
		assert.NoErrorf(t, res.Validate(), "n=%d", n)
	}
}

func TestBuild_ProjectedVsFlat(t *testing.T) {
	t.Parallel()

	sphere := build(t, dome.WithRadius(3), dome.WithFrequency(3), dome.WithProjected(true))
	for _, p := range sphere.Points {
		assert.InDelta(t, 3, p.Radius(), geom.DefaultTolerance)
	}

	flat := build(t, dome.WithRadius(3), dome.WithFrequency(3), dome.WithProjected(false))
	require.NoError(t, flat.Validate())
	minR := math.Inf(1)
	for _, p := range flat.Points {
		assert.LessOrEqual(t, p.Radius(), 3+geom.DefaultTolerance)
		minR = math.Min(minR, p.Radius())
	}
	assert.Less(t, minR, 3-0.1, "face interiors sit inside the circumsphere")

	// projection keeps ids and topology
	assert.Equal(t, sphere.Edges, flat.Edges)
	assert.Equal(t, sphere.Triangles, flat.Triangles)
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	b, err := dome.New(dome.WithFrequency(4))
	require.NoError(t, err)
	first, err := b.Build(context.Background())
	require.NoError(t, err)
	second, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, first.Edges, second.Edges)
	assert.Equal(t, first.Triangles, second.Triangles)
}

func TestBuild_AlternativesAgree(t *testing.T) {
	t.Parallel()

	ref := build(t, dome.WithFrequency(4))
	par := build(t, dome.WithFrequency(4), dome.WithParallel(8))
	lat := build(t, dome.WithFrequency(4), dome.WithTriangleMethod(dome.TrianglesLattice))

	assert.Equal(t, ref.Points, par.Points)
	assert.Equal(t, ref.Edges, par.Edges)
	assert.Equal(t, ref.Triangles, par.Triangles)
	assert.Equal(t, ref.Triangles, lat.Triangles)
}

func TestBuild_Cancelled(t *testing.T) {
	t.Parallel()

	b, err := dome.New()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = b.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_LogsStages(t *testing.T) {
	t.Parallel()

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	build(t, dome.WithFrequency(1), dome.WithLogger(log))

	var stages []string
	for _, e := range hook.AllEntries() {
		if s, ok := e.Data["stage"].(string); ok {
			stages = append(stages, s)
		}
	}
	assert.Equal(t, []string{"seed", "subdivide", "points", "edges", "hubs", "triangles", "project"}, stages)
	assert.Equal(t, "build done", hook.LastEntry().Message)
	assert.Equal(t, 20, hook.LastEntry().Data["triangles"])
}

func TestNew_Configuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opt  dome.Option
	}{
		{"zero frequency", dome.WithFrequency(0)},
		{"negative radius", dome.WithRadius(-1)},
		{"zero radius", dome.WithRadius(0)},
		{"nan radius", dome.WithRadius(math.NaN())},
		{"zero tolerance", dome.WithTolerance(0)},
		{"cut point zero", dome.WithCutPoint(0)},
		{"cut point above one", dome.WithCutPoint(1.5)},
		{"low precision", dome.WithPrecision(32)},
		{"no workers", dome.WithParallel(0)},
		{"coarse tolerance", dome.WithTolerance(0.6)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dome.New(tc.opt)
			assert.ErrorIs(t, err, dome.ErrConfiguration)
		})
	}
}

func TestNew_InertFlagsAccepted(t *testing.T) {
	t.Parallel()

	plain := build(t, dome.WithFrequency(2))
	flagged := build(t, dome.WithFrequency(2),
		dome.WithDome(false), dome.WithCylindrical(true), dome.WithCutPoint(0.5))

	assert.Equal(t, plain.Points, flagged.Points)
	assert.False(t, flagged.Config.Dome)
	assert.True(t, flagged.Config.Cylindrical)
	assert.Equal(t, 0.5, flagged.Config.CutPoint)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { dome.WithLogger(nil) })
	assert.Panics(t, func() { dome.WithTriangleMethod("fastest") })
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	c := dome.DefaultConfig()
	assert.Equal(t, 2.0, c.Radius)
	assert.Equal(t, 2, c.Frequency)
	assert.True(t, c.Projected)
	assert.True(t, c.Dome)
	assert.False(t, c.Cylindrical)
	assert.Equal(t, 0.8, c.CutPoint)
	assert.Equal(t, 1e-4, c.Tolerance)
	assert.NoError(t, c.Validate())

	b, err := dome.New(dome.WithConfig(c), dome.WithFrequency(3))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Config().Frequency)
}

func TestValidate_DetectsBrokenResults(t *testing.T) {
	t.Parallel()

	res := build(t, dome.WithFrequency(2))

	missing := *res
	missing.Triangles = res.Triangles[1:]
	assert.ErrorIs(t, missing.Validate(), dome.ErrTopology)

	dup := *res
	dup.Edges = append(append([]geom.Edge(nil), res.Edges[:len(res.Edges)-1]...), geom.Edge{ID: 120, A: res.Edges[0].B, B: res.Edges[0].A})
	assert.ErrorIs(t, dup.Validate(), dome.ErrTopology)

	dangling := *res
	dangling.Triangles = append([]geom.Triangle{{1, 2, 99}}, res.Triangles[1:]...)
	assert.ErrorIs(t, dangling.Validate(), dome.ErrTopology)

	moved := *res
	moved.Points = append([]geom.Point(nil), res.Points...)
	moved.Points[5] = geom.NewPoint(6, 0, 0, 0.5)
	assert.ErrorIs(t, moved.Validate(), dome.ErrTopology)
}
