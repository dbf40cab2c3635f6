// SPDX-License-Identifier: MIT
// Package: geodome/icosa
//
// seed.go — Seed(alloc, R) constructor.
//
// Contract:
//   • R must be finite and > 0, otherwise ErrRadius.
//   • Allocates exactly 12 ids from alloc, in vertex order a..l.
//   • Returns 20 faces referencing those Points.
//   • Never panics at runtime.
//
// Complexity: O(1) (constant-size big.Float arithmetic).

package icosa

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/geodome/geom"
)

const methodSeed = "Seed"

// DefaultPrecision is the mantissa size, in bits, of the intermediate
// big.Float arithmetic.
const DefaultPrecision uint = 128

// Pentagon angles (radians).
const (
	centralAngle = 2 * math.Pi / 5   // 72°, one ring step
	halfCentral  = centralAngle / 2  // 36°
	ringOffset   = math.Pi / 10      // 18°, angle of vertex c
)

var (
	// ErrRadius indicates a non-positive or non-finite circumradius.
	ErrRadius = errors.New("icosa: radius must be finite and > 0")

	// ErrPrecision indicates a big.Float precision too small to be useful.
	ErrPrecision = errors.New("icosa: precision must be >= 53 bits")
)

// Solid is the seeded icosahedron.
type Solid struct {
	Vertices [VertexCount]geom.Point
	Faces    [FaceCount]geom.Face
}

// Option customizes Seed.
type Option func(*seedConfig)

type seedConfig struct {
	prec uint
}

// WithPrecision sets the big.Float mantissa size used for the constants.
func WithPrecision(prec uint) Option {
	return func(c *seedConfig) { c.prec = prec }
}

// Constants holds the derived lengths of the construction, rounded to float64.
type Constants struct {
	Ring, S, H, Cx, Cy, H1, H2, Z1, Z2 float64
}

// Derive computes the construction lengths for circumradius R.
func Derive(R float64, opts ...Option) (Constants, error) {
	cfg := seedConfig{prec: DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(R) || math.IsInf(R, 0) || R <= 0 {
		return Constants{}, fmt.Errorf("%s: R=%v: %w", methodSeed, R, ErrRadius)
	}
	if cfg.prec < 53 {
		return Constants{}, fmt.Errorf("%s: prec=%d: %w", methodSeed, cfg.prec, ErrPrecision)
	}

	c := calc{prec: cfg.prec}

	// ring radius from circumradius: r = 2R/√5
	r := c.quo(c.mul(c.f(2), c.f(R)), c.sqrt(c.f(5)))

	s := c.mul(c.mul(c.f(2), r), c.f(math.Sin(halfCentral)))
	h := c.mul(r, c.f(math.Cos(halfCentral)))
	cx := c.mul(r, c.f(math.Cos(ringOffset)))
	cy := c.mul(r, c.f(math.Sin(ringOffset)))

	h1 := c.sqrt(c.sub(c.mul(s, s), c.mul(r, r)))
	hr := c.add(h, r)
	h2 := c.sqrt(c.sub(c.mul(hr, hr), c.mul(h, h)))

	z2 := c.quo(c.sub(h2, h1), c.f(2))
	z1 := c.add(z2, h1)

	return Constants{
		Ring: c.float(r),
		S:    c.float(s), H: c.float(h),
		Cx: c.float(cx), Cy: c.float(cy),
		H1: c.float(h1), H2: c.float(h2),
		Z1: c.float(z1), Z2: c.float(z2),
	}, nil
}

// Seed allocates the twelve vertices of an icosahedron with circumradius R
// and assembles its twenty faces.
func Seed(alloc geom.IDSource, R float64, opts ...Option) (Solid, error) {
	k, err := Derive(R, opts...)
	if err != nil {
		return Solid{}, err
	}

	xyz := [VertexCount][3]float64{
		VertexA: {0, 0, k.Z1},
		VertexB: {0, k.Ring, k.Z2},
		VertexC: {k.Cx, k.Cy, k.Z2},
		VertexD: {k.S / 2, -k.H, k.Z2},
		VertexE: {-k.S / 2, -k.H, k.Z2},
		VertexF: {-k.Cx, k.Cy, k.Z2},
		VertexG: {0, -k.Ring, -k.Z2},
		VertexH: {-k.Cx, -k.Cy, -k.Z2},
		VertexI: {-k.S / 2, k.H, -k.Z2},
		VertexJ: {k.S / 2, k.H, -k.Z2},
		VertexK: {k.Cx, -k.Cy, -k.Z2},
		VertexL: {0, 0, -k.Z1},
	}

	var s Solid
	for i, p := range xyz {
		s.Vertices[i] = geom.NewPoint(alloc.Next(), p[0], p[1], p[2])
	}
	for i, f := range faceTable {
		s.Faces[i] = geom.Face{A: s.Vertices[f[0]], B: s.Vertices[f[1]], C: s.Vertices[f[2]]}
	}

	return s, nil
}

// Edges returns the 30 edges of the seed as unordered vertex-index pairs,
// derived from the face table in first-seen order.
func Edges() [][2]int {
	seen := make(map[[2]int]struct{}, EdgeCount)
	out := make([][2]int, 0, EdgeCount)
	for _, f := range faceTable {
		for i := 0; i < 3; i++ {
			u, v := f[i], f[(i+1)%3]
			if u > v {
				u, v = v, u
			}
			if _, ok := seen[[2]int{u, v}]; ok {
				continue
			}
			seen[[2]int{u, v}] = struct{}{}
			out = append(out, [2]int{u, v})
		}
	}
	return out
}

// calc is a tiny big.Float helper bound to one precision.
type calc struct {
	prec uint
}

func (c calc) f(v float64) *big.Float {
	return new(big.Float).SetPrec(c.prec).SetFloat64(v)
}

func (c calc) add(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(c.prec).Add(a, b)
}

func (c calc) sub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(c.prec).Sub(a, b)
}

func (c calc) mul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(c.prec).Mul(a, b)
}

func (c calc) quo(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(c.prec).Quo(a, b)
}

func (c calc) sqrt(a *big.Float) *big.Float {
	return new(big.Float).SetPrec(c.prec).Sqrt(a)
}

func (c calc) float(a *big.Float) float64 {
	v, _ := a.Float64()
	return v
}
