// SPDX-License-Identifier: MIT
// Package: idfsweep/idf
//
// errors.go — sentinel errors for template resolution.
//
// Callers branch with errors.Is; context is attached with %w.

package idf

import "errors"

var (
	// ErrMissingDependency indicates a derived parameter (wwr, ach_50) whose
	// sibling dimension parameters are absent.
	ErrMissingDependency = errors.New("idf: missing dependency")

	// ErrBadValue indicates a parameter whose value cannot be used for the
	// derived computation it drives (e.g. a non-numeric height).
	ErrBadValue = errors.New("idf: invalid parameter value")
)
