// Package idf resolves simulation-input templates against one design point.
//
// A template is plain text with tokens written as @name@. Resolution walks a
// Parameters mapping in insertion order and substitutes each token with the
// string form of its value. Two parameters carry derived geometry instead of
// a single token:
//
//	wwr     → window rectangles for all four walls, vent areas, internal mass
//	ach_50  → zone flow coefficient (and optionally effective leakage areas)
//
// Both read the building dimensions from the sibling height/length/width
// parameters. Classify validates those dependencies once, up front, and turns
// the mapping into a Plan of tagged entries (Direct, GeometryDerived,
// InfiltrationDerived); Render then applies the plan with an exhaustive
// switch. The daylighting reference tokens are resolved last, from
// length/width, whenever both are present.
//
// Guarantees:
//   - Tokens without a parameter stay verbatim in the output.
//   - Replacing a token absent from the template is a no-op.
//   - Resolving an already resolved document returns it unchanged.
//   - The template string is never modified; every call allocates its output,
//     so concurrent Resolve calls need no locking.
package idf
