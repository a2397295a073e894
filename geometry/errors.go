// SPDX-License-Identifier: MIT
// Package: idfsweep/geometry
//
// errors.go — sentinel errors for the geometry package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w by geometryErrorf, never baked into sentinels.
//   • Resolvers never panic on user input; option constructors may.

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates a building or wall dimension that is not a
	// finite, strictly positive number.
	ErrInvalidDimension = errors.New("geometry: invalid dimension")

	// ErrInvalidRatio indicates a window-to-wall ratio outside [0,1].
	ErrInvalidRatio = errors.New("geometry: window-to-wall ratio out of range")
)

// geometryErrorf prefixes err with the method name and a formatted detail,
// keeping the sentinel reachable through errors.Is.
func geometryErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
