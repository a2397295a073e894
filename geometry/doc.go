// Package geometry derives the window, internal-mass and daylighting geometry
// of a single-zone rectangular building from a handful of scalar inputs.
//
// 🚀 What does it resolve?
//
//	Given the overall building dimensions (width along x, length along y,
//	height along z) and a window-to-wall ratio (WWR), the package computes:
//	  • one centred window rectangle per orientation (North/East/South/West)
//	  • the operable (casement vent) area of each window
//	  • the internal-mass surface area of the interior partitions
//	  • the plan-centroid daylighting reference point
//
// ✨ Window model:
//
//	alpha    = √wwr
//	window   = alpha · wall            (both axes)
//	offset   = (wall − window) / 2
//	bounds   = (offset, wall − offset)
//
//	Scaling both axes by √wwr reproduces the requested glazed fraction
//	exactly on a rectangular wall, and keeps the window centred.
//
//	  z ▲
//	    │ ┌───────────────┐
//	    │ │   ┌───────┐   │
//	    │ │   │window │   │
//	    │ │   └───────┘   │
//	    │ └───────────────┘
//	    └──────────────────▶ u (x for N/S, y for E/W)
//
// North and South walls span width×height; East and West walls span
// length×height, so opposite orientations always resolve to identical
// coordinates.
//
// Errors:
//   - ErrInvalidDimension — any building dimension ≤ 0, NaN or ±Inf.
//   - ErrInvalidRatio     — wwr outside [0,1] (fail-fast instead of negative offsets).
//
// All functions are pure: no I/O, no shared state, safe for concurrent use.
package geometry
