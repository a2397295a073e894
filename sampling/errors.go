// SPDX-License-Identifier: MIT
// Package: idfsweep/sampling
//
// errors.go — sentinel errors for the sampling package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • samplingErrorf prefixes the strategy and variable for context and keeps
//     the sentinel in the chain via %w.
//   • Strategies never panic on user input; option constructors (WithX) do.
//   • On error no partial Table is returned.
//
// Priority when several checks fail: ErrBadSize → ErrUnknownMethod →
// ErrUnsupportedMethod → ErrEmptyValues / ErrBadParameter → ErrNotEnumerable
// → ErrTooManyRows.

package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a sample size n < 1.
	ErrBadSize = errors.New("sampling: sample size must be ≥ 1")

	// ErrUnknownMethod indicates a method/type tag outside the closed set.
	ErrUnknownMethod = errors.New("sampling: unknown method")

	// ErrUnsupportedMethod indicates a known tag the chosen strategy cannot
	// generate (e.g. normal in a Latin-hypercube design).
	ErrUnsupportedMethod = errors.New("sampling: method not supported by strategy")

	// ErrEmptyValues indicates a variable that needs an explicit value list
	// but has none.
	ErrEmptyValues = errors.New("sampling: empty value list")

	// ErrBadParameter indicates an invalid distribution or range payload
	// (negative sigma, missing bounds, non-numeric bounds, ...).
	ErrBadParameter = errors.New("sampling: invalid variable parameter")

	// ErrNotEnumerable indicates a continuous variable in a full-factorial design.
	ErrNotEnumerable = errors.New("sampling: variable is not enumerable")

	// ErrTooManyRows indicates a design exceeding the configured row ceiling
	// or the addressable int range.
	ErrTooManyRows = errors.New("sampling: too many rows")

	// ErrDuplicateVariable indicates two variables sharing a name, or an
	// empty name.
	ErrDuplicateVariable = errors.New("sampling: duplicate or empty variable name")

	// ErrBadStrategy indicates an unknown experiment strategy or LHS setting.
	ErrBadStrategy = errors.New("sampling: invalid strategy")
)

// samplingErrorf returns "<strategy>: <variable>: <detail>: <sentinel>".
func samplingErrorf(strategy, variable string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %s: %w", strategy, variable, fmt.Sprintf(format, args...), err)
}
