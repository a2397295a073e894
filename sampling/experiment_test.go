package sampling_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/idfsweep/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lhsExperiment = `
strategy: lhs
samples: 10
seed: 42
lhs:
  type: centered
  criterion: maximin
  iterations: 25
variables:
  wwr:
    type: float
    values: [0.1, 0.6]
  u_windows:
    method: discrete
    values: [1.2, 1.8, 2.8]
  storeys:
    type: int
    values: [1, 3]
  weather:
    type: constant
    values: london.epw
`

// TestLoadExperiment_PreservesOrder decodes tags, payloads and column order.
func TestLoadExperiment_PreservesOrder(t *testing.T) {
	e, err := sampling.LoadExperiment(strings.NewReader(lhsExperiment))
	require.NoError(t, err)

	assert.Equal(t, sampling.StrategyLatinHypercube, e.Strategy)
	assert.Equal(t, []string{"wwr", "u_windows", "storeys", "weather"}, e.Variables.Names())
	assert.Equal(t, sampling.MethodFloat, e.Variables.Variables[0].Method)
	assert.Equal(t, []any{0.1, 0.6}, e.Variables.Variables[0].Values)
	assert.Equal(t, []any{1, 3}, e.Variables.Variables[2].Values)
	assert.Equal(t, []any{"london.epw"}, e.Variables.Variables[3].Values)
	assert.Equal(t, sampling.LHSCentered, e.LHS.Type)

	table, err := e.Generate()
	require.NoError(t, err)
	assert.Equal(t, 10, table.Len())
	assert.Equal(t, e.Variables.Names(), table.Columns)

	again, err := e.Generate()
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

// TestExperiment_Strategies runs every strategy from YAML.
func TestExperiment_Strategies(t *testing.T) {
	docs := map[sampling.Strategy]string{
		sampling.StrategyStatistical: `
strategy: statistical
samples: 7
variables:
  ach_50: {method: skew, mu: 5, sigma: 2, skew: 3}
  r_wall: {method: normal, mu: 3, sigma: 0.2}
  wwr: {method: uniform, range: [0.1, 0.5]}
  u_windows: {method: discrete, values: [1.2, 1.8]}
  height: {method: constant, value: 3}
`,
		sampling.StrategyRandom: `
strategy: random
samples: 7
variables:
  zones: {type: int, values: [1, 5]}
  shading: {type: bool, values: [true, false]}
`,
		sampling.StrategyFullFactorial: `
strategy: factorial
variables:
  a: {type: categorical, values: [x, y, z]}
  b: {type: int, values: [1, 2]}
`,
	}
	want := map[sampling.Strategy]int{
		sampling.StrategyStatistical:   7,
		sampling.StrategyRandom:        7,
		sampling.StrategyFullFactorial: 6,
	}

	for strategy, doc := range docs {
		t.Run(string(strategy), func(t *testing.T) {
			e, err := sampling.LoadExperiment(strings.NewReader(doc))
			require.NoError(t, err)
			rows, err := e.Rows()
			require.NoError(t, err)
			assert.Equal(t, want[strategy], rows)

			table, err := e.Generate()
			require.NoError(t, err)
			assert.Equal(t, want[strategy], table.Len())
		})
	}
}

// TestLoadExperiment_Errors rejects bad tags, strategies and settings.
func TestLoadExperiment_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown tag", "strategy: random\nsamples: 3\nvariables:\n  x: {type: weibull, values: [1]}\n", sampling.ErrUnknownMethod},
		{"tag mismatch", "strategy: random\nsamples: 3\nvariables:\n  x: {type: int, method: float, values: [1]}\n", sampling.ErrBadParameter},
		{"unknown strategy", "strategy: sobol\nsamples: 3\n", sampling.ErrBadStrategy},
		{"no samples", "strategy: lhs\nvariables:\n  x: {type: int, values: [1, 2]}\n", sampling.ErrBadSize},
		{"bad criterion", "strategy: lhs\nsamples: 2\nlhs: {criterion: entropy}\n", sampling.ErrBadStrategy},
		{"variables not a mapping", "strategy: random\nsamples: 2\nvariables: [a, b]\n", sampling.ErrBadParameter},
		{"misspelled variable field", "strategy: statistical\nsamples: 2\nvariables:\n  x: {method: normal, mu: 1, sigm: 2}\n", sampling.ErrBadParameter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sampling.LoadExperiment(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := sampling.LoadExperiment(strings.NewReader("strategy: random\nsamples: 2\nworkers: 4\n"))
	assert.Error(t, err, "unknown top-level keys are rejected")
}

// TestExperiment_MaxRows applies the guardrail to every strategy.
func TestExperiment_MaxRows(t *testing.T) {
	e := &sampling.Experiment{
		Strategy: sampling.StrategyRandom,
		Samples:  50,
		MaxRows:  10,
		Variables: sampling.NewSpec(
			sampling.Variable{Name: "x", Method: sampling.MethodFloat, Values: []any{0.0, 1.0}},
		),
	}
	_, err := e.Generate()
	assert.ErrorIs(t, err, sampling.ErrTooManyRows)

	e.Strategy = sampling.StrategyFullFactorial
	e.Variables = sampling.NewSpec(
		sampling.Variable{Name: "a", Method: sampling.MethodInt, Values: []any{1, 2, 3, 4}},
		sampling.Variable{Name: "b", Method: sampling.MethodInt, Values: []any{1, 2, 3}},
	)
	_, err = e.Generate()
	assert.ErrorIs(t, err, sampling.ErrTooManyRows)
}

// TestDecodeSpec reads a bare variables mapping.
func TestDecodeSpec(t *testing.T) {
	spec, err := sampling.DecodeSpec(strings.NewReader("b: {type: bool}\na: {method: constant, value: 2}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, spec.Names())
	assert.Equal(t, 2, spec.Variables[1].Value)
}

// TestDecodeSpec_UnknownField rejects a misspelled per-variable key instead
// of silently dropping it.
func TestDecodeSpec_UnknownField(t *testing.T) {
	_, err := sampling.DecodeSpec(strings.NewReader("x: {method: normal, mu: 1, sigm: 2}\n"))
	require.ErrorIs(t, err, sampling.ErrBadParameter)
	assert.Contains(t, err.Error(), `unknown field "sigm"`)
}
