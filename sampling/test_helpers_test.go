package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// floats converts a column of float64 cells, failing on any other type.
func floats(t *testing.T, col []any) []float64 {
	t.Helper()
	out := make([]float64, len(col))
	for i, v := range col {
		f, ok := v.(float64)
		require.True(t, ok, "cell %d is %T, want float64", i, v)
		out[i] = f
	}
	return out
}

// mean returns the arithmetic mean of xs.
func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

func ptr(f float64) *float64 { return &f }
