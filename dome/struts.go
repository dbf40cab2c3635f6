// SPDX-License-Identifier: MIT
// Package: geodome/dome
//
// struts.go — strut cut list.

package dome

import (
	"slices"

	"github.com/katalvlaran/geodome/geom"
)

// StrutClass is one cut length of the cut list.
type StrutClass struct {
	Label  string  // A, B, ..., Z, AA, AB, ...
	Length float64 // shortest member of the class
	Count  int
}

// StrutClasses groups the struts of r by length, shortest first. A strut
// joins the current class while it is within eps of the class's first
// (shortest) member.
func (r *Result) StrutClasses(eps float64) []StrutClass {
	lengths := make([]float64, len(r.Edges))
	for k, e := range r.Edges {
		lengths[k] = geom.Distance(r.Points[e.A-1], r.Points[e.B-1])
	}
	slices.Sort(lengths)

	var out []StrutClass
	for _, l := range lengths {
		if n := len(out); n > 0 && l-out[n-1].Length <= eps {
			out[n-1].Count++
			continue
		}
		out = append(out, StrutClass{Label: classLabel(len(out)), Length: l, Count: 1})
	}
	return out
}

// classLabel maps 0, 1, ..., 25, 26 to A, B, ..., Z, AA.
func classLabel(k int) string {
	var b []byte
	for k++; k > 0; k = (k - 1) / 26 {
		b = append(b, byte('A'+(k-1)%26))
	}
	slices.Reverse(b)
	return string(b)
}
