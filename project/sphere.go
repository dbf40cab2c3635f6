// SPDX-License-Identifier: MIT
// Package: geodome/project

package project

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/geodome/coords"
	"github.com/katalvlaran/geodome/geom"
)

const methodSphere = "Sphere"

var (
	// ErrRadius indicates a non-positive or non-finite target radius.
	ErrRadius = errors.New("project: radius must be finite and > 0")

	// ErrOrigin indicates a point at the origin, which has no direction.
	ErrOrigin = errors.New("project: point at origin cannot be projected")
)

// Sphere returns copies of points at radius R. The input is not modified.
func Sphere(points []geom.Point, R float64) ([]geom.Point, error) {
	if math.IsNaN(R) || math.IsInf(R, 0) || R <= 0 {
		return nil, fmt.Errorf("%s: R=%v: %w", methodSphere, R, ErrRadius)
	}

	out := make([]geom.Point, len(points))
	for k, p := range points {
		s := coords.Cart2Sp(p.Pos)
		if s.R == 0 {
			return nil, fmt.Errorf("%s: point %d: %w", methodSphere, p.ID, ErrOrigin)
		}
		s.R = R
		out[k] = geom.Point{ID: p.ID, Pos: coords.Sp2Cart(s)}
	}

	return out, nil
}
