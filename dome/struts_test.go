package dome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodome/dome"
	"github.com/katalvlaran/geodome/geom"
)

func TestStrutClasses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n       int
		lengths []float64 // unit sphere chord factors
		counts  []int
	}{
		{1, []float64{1.0514622242382672}, []int{30}},
		{2, []float64{0.5465330578253433, 0.6180339887498948}, []int{60, 60}},
		{3, []float64{0.348615488820338, 0.40354821233519766, 0.4124114893098499}, []int{60, 90, 120}},
	}
	for _, tc := range cases {
		res := build(t, dome.WithRadius(1), dome.WithFrequency(tc.n))
		classes := res.StrutClasses(geom.DefaultTolerance)
		require.Lenf(t, classes, len(tc.counts), "n=%d", tc.n)

		total := 0
		for k, c := range classes {
			assert.Equal(t, string(rune('A'+k)), c.Label)
			assert.InDelta(t, tc.lengths[k], c.Length, 1e-9)
			assert.Equal(t, tc.counts[k], c.Count)
			total += c.Count
		}
		assert.Equal(t, len(res.Edges), total)
	}
}

func TestStrutClasses_LabelsPastZ(t *testing.T) {
	t.Parallel()

	res := build(t, dome.WithRadius(1), dome.WithFrequency(4))

	// every strut in its own class
	classes := res.StrutClasses(-1)
	require.Len(t, classes, 480)
	assert.Equal(t, "Z", classes[25].Label)
	assert.Equal(t, "AA", classes[26].Label)
	assert.Equal(t, "AZ", classes[51].Label)
	assert.Equal(t, "BA", classes[52].Label)
}
