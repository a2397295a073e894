package sampling_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/idfsweep/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullFactorial_TwoByThree enumerates all 6 ordered pairs exactly once,
// first variable slowest.
func TestFullFactorial_TwoByThree(t *testing.T) {
	spec := sampling.NewSpec(
		sampling.Variable{Name: "a", Method: sampling.MethodDiscrete, Values: []any{"x", "y"}},
		sampling.Variable{Name: "b", Method: sampling.MethodInt, Values: []any{1, 2, 3}},
	)
	size, err := sampling.FactorialSize(spec)
	require.NoError(t, err)
	assert.Equal(t, 6, size)

	table, err := sampling.FullFactorial(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Columns)
	assert.Equal(t, [][]any{
		{"x", 1}, {"x", 2}, {"x", 3},
		{"y", 1}, {"y", 2}, {"y", 3},
	}, table.Rows)
}

// TestFullFactorial_Cardinality checks the product rule on a wider design.
func TestFullFactorial_Cardinality(t *testing.T) {
	spec := sampling.NewSpec(
		sampling.Variable{Name: "a", Method: sampling.MethodCategorical, Values: []any{1, 2, 3, 4}},
		sampling.Variable{Name: "b", Method: sampling.MethodBool},
		sampling.Variable{Name: "c", Method: sampling.MethodConstant, Value: "k"},
		sampling.Variable{Name: "d", Method: sampling.MethodFloat, Values: []any{0.1, 0.2, 0.3}},
	)
	table, err := sampling.FullFactorial(spec)
	require.NoError(t, err)
	assert.Equal(t, 4*2*1*3, table.Len())

	seen := map[string]struct{}{}
	for _, row := range table.Rows {
		seen[fmt.Sprint(row)] = struct{}{}
	}
	assert.Len(t, seen, table.Len(), "rows are distinct")
}

// TestFullFactorial_Errors rejects continuous variables and oversized designs.
func TestFullFactorial_Errors(t *testing.T) {
	continuous := sampling.NewSpec(
		sampling.Variable{Name: "a", Method: sampling.MethodDiscrete, Values: []any{1, 2}},
		sampling.Variable{Name: "b", Method: sampling.MethodNormal, Mu: 1, Sigma: 1},
	)
	_, err := sampling.FullFactorial(continuous)
	assert.ErrorIs(t, err, sampling.ErrNotEnumerable)
	_, err = sampling.FactorialSize(continuous)
	assert.ErrorIs(t, err, sampling.ErrNotEnumerable)

	empty := sampling.NewSpec(sampling.Variable{Name: "a", Method: sampling.MethodInt})
	_, err = sampling.FullFactorial(empty)
	assert.ErrorIs(t, err, sampling.ErrEmptyValues)

	big := sampling.NewSpec(
		sampling.Variable{Name: "a", Method: sampling.MethodDiscrete, Values: []any{1, 2, 3}},
		sampling.Variable{Name: "b", Method: sampling.MethodDiscrete, Values: []any{1, 2, 3}},
	)
	table, err := sampling.FullFactorial(big, sampling.WithMaxRows(8))
	assert.ErrorIs(t, err, sampling.ErrTooManyRows)
	assert.Nil(t, table)

	table, err = sampling.FullFactorial(big, sampling.WithMaxRows(9))
	require.NoError(t, err)
	assert.Equal(t, 9, table.Len())
}
