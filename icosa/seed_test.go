package icosa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodome/geom"
	"github.com/katalvlaran/geodome/icosa"
)

func TestSeed_VerticesOnCircumsphere(t *testing.T) {
	t.Parallel()

	for _, R := range []float64{1, 2, 3, 1500} {
		s, err := icosa.Seed(geom.NewAllocator(1), R)
		require.NoError(t, err)
		for i, v := range s.Vertices {
			assert.InDeltaf(t, R, v.Radius(), R*1e-12, "vertex %s off the circumsphere", icosa.VertexNames[i])
		}
	}
}

func TestSeed_IDsFollowVertexOrder(t *testing.T) {
	t.Parallel()

	alloc := geom.NewAllocator(1)
	s, err := icosa.Seed(alloc, 2)
	require.NoError(t, err)

	for i, v := range s.Vertices {
		require.Equal(t, geom.PointID(i+1), v.ID)
	}
	require.Equal(t, geom.PointID(13), alloc.Peek(), "exactly twelve ids are consumed")
}

func TestSeed_FacesOutwardAndEquilateral(t *testing.T) {
	t.Parallel()

	const R = 2.0
	s, err := icosa.Seed(geom.NewAllocator(1), R)
	require.NoError(t, err)

	k, err := icosa.Derive(R)
	require.NoError(t, err)

	for i, f := range s.Faces {
		assert.Truef(t, f.Outward(), "face %d must be wound outward", i)
		assert.InDeltaf(t, k.S, geom.Distance(f.A, f.B), 1e-12, "face %d side AB", i)
		assert.InDeltaf(t, k.S, geom.Distance(f.B, f.C), 1e-12, "face %d side BC", i)
		assert.InDeltaf(t, k.S, geom.Distance(f.C, f.A), 1e-12, "face %d side CA", i)
	}
}

func TestSeed_ClosedOrientableSurface(t *testing.T) {
	t.Parallel()

	// Every directed edge occurs once and its reverse once: closed and
	// consistently oriented.
	directed := make(map[[2]int]int)
	for _, f := range icosa.FaceTable() {
		for i := 0; i < 3; i++ {
			directed[[2]int{f[i], f[(i+1)%3]}]++
		}
	}
	require.Len(t, directed, 2*icosa.EdgeCount)
	for e, n := range directed {
		require.Equalf(t, 1, n, "directed edge %v repeated", e)
		require.Equalf(t, 1, directed[[2]int{e[1], e[0]}], "directed edge %v has no twin", e)
	}

	require.Len(t, icosa.Edges(), icosa.EdgeCount)

	degree := make(map[int]int)
	for _, e := range icosa.Edges() {
		degree[e[0]]++
		degree[e[1]]++
	}
	for v := 0; v < icosa.VertexCount; v++ {
		assert.Equalf(t, 5, degree[v], "vertex %s must be 5-valent", icosa.VertexNames[v])
	}
}

func TestDerive_GoldenRelations(t *testing.T) {
	t.Parallel()

	const R = 2.0
	k, err := icosa.Derive(R)
	require.NoError(t, err)

	assert.InDelta(t, R, k.Z1, 1e-12, "apex lies on the circumsphere")
	assert.InDelta(t, R/math.Sqrt(5), k.Z2, 1e-12, "ring plane at R/√5")
	assert.InDelta(t, 2*R/math.Sqrt(5), k.Ring, 1e-12)
	// edge / circumradius = 1/sin(72°)
	assert.InDelta(t, 1/math.Sin(2*math.Pi/5), k.S/R, 1e-12)
	assert.InDelta(t, k.H2, 2*k.Z2+k.H1, 1e-12)
}

func TestSeed_Errors(t *testing.T) {
	t.Parallel()

	for _, R := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := icosa.Seed(geom.NewAllocator(1), R)
		require.ErrorIs(t, err, icosa.ErrRadius)
	}

	_, err := icosa.Seed(geom.NewAllocator(1), 1, icosa.WithPrecision(24))
	require.ErrorIs(t, err, icosa.ErrPrecision)
}

func TestSeed_PrecisionIndependent(t *testing.T) {
	t.Parallel()

	lo, err := icosa.Derive(3, icosa.WithPrecision(64))
	require.NoError(t, err)
	hi, err := icosa.Derive(3, icosa.WithPrecision(512))
	require.NoError(t, err)

	assert.InDelta(t, hi.Z1, lo.Z1, 1e-14)
	assert.InDelta(t, hi.H1, lo.H1, 1e-14)
}
