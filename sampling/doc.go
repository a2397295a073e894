// Package sampling generates the design points of a building-simulation
// experiment: tables whose rows are parameter combinations and whose columns
// are the variables of a Spec.
//
// 🚀 Strategies (one per experiment):
//
//	Statistical     independent draws per variable (discrete, normal, skew,
//	                uniform, constant)
//	LatinHypercube  space-filling design: each dimension's n strata are hit
//	                exactly once; best of many candidates under maximin,
//	                correlation or ratio criteria
//	Random          independent uniform draws over value lists and ranges
//	FullFactorial   Cartesian product of explicit value sets
//
// ✨ Variable tags (closed set):
//
//	discrete | categorical | bool | constant | int | float | normal | skew | uniform
//
// An unknown tag is a configuration error (ErrUnknownMethod), never a silent
// skip; a known tag the chosen strategy cannot serve fails with
// ErrUnsupportedMethod.
//
// ⚙️ Usage:
//
//	spec := sampling.NewSpec(
//		sampling.Variable{Name: "wwr", Method: sampling.MethodFloat, Values: []any{0.1, 0.6}},
//		sampling.Variable{Name: "u_windows", Method: sampling.MethodDiscrete, Values: []any{1.2, 1.8}},
//	)
//	table, err := sampling.LatinHypercube(spec, 50, sampling.WithSeed(42))
//
// Determinism:
//
//	Every strategy draws from the *rand.Rand resolved by its options
//	(WithSeed / WithRand, default seed otherwise). Identical inputs and
//	seed give identical tables. A *rand.Rand must not be shared across
//	goroutines; concurrent calls should each pass their own.
//
// Experiments can be declared in YAML and loaded with LoadExperiment; see
// experiment.go for the file layout. Tables persist as CSV via WriteCSV and
// ReadCSV.
package sampling
