// Package idfsweep generates parametric building-energy simulation inputs:
// it samples design tables of building parameters and resolves @token@
// templates against each design point.
//
// 🚀 What is idfsweep?
//
//	A small, deterministic toolkit that brings together:
//		• Geometry: window placement by window-to-wall ratio, internal mass,
//		  daylighting reference point
//		• Infiltration: ACH@50 Pa → flow coefficient and effective leakage areas
//		• Templates: ordered parameters, derived-token planning and substitution
//		• Sampling: statistical, Latin-hypercube, random and full-factorial designs
//
// ✨ Why idfsweep?
//
//   - Deterministic – every random draw comes from a seeded source
//   - Fail-fast – invalid ratios, missing dimensions and unknown sampling
//     methods are errors, never silent skips
//   - Pure computation – the library never runs the simulator or touches the
//     network; the idfsweep command handles files
//
// Packages:
//
//	geometry/     — building dimensions, windows, internal mass, daylight point
//	infiltration/ — blower-door conversions
//	idf/          — Parameters, Classify, Render, Resolve, Unresolved
//	sampling/     — Spec, Table, the four strategies, YAML experiments
//	cmd/idfsweep/ — `sample` and `render` commands
//
// Quick flow:
//
//	experiment.yaml ──sample──▶ design.csv ──render(template)──▶ run_0000.idf …
//
//	go install github.com/katalvlaran/idfsweep/cmd/idfsweep@latest
package idfsweep
