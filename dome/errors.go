// SPDX-License-Identifier: MIT
// Package: geodome/dome
//
// errors.go — sentinel errors for the dome package.
//
// Error policy:
//   • Callers branch with errors.Is on the sentinels below.
//   • Lower-level errors (icosa, subdivide, dedup, hub, tri, project) are
//     wrapped with the stage name and stay matchable.

package dome

import "errors"

// Method names used as error prefixes.
const (
	methodNew      = "New"
	methodBuild    = "Build"
	methodValidate = "Validate"
)

// ErrConfiguration indicates an invalid parameter set, detected before any
// geometry is generated.
var ErrConfiguration = errors.New("dome: invalid configuration")

// ErrTopology indicates that a Result is not the closed geodesic sphere its
// configuration describes.
var ErrTopology = errors.New("dome: topology inconsistency")
