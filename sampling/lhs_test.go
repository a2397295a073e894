package sampling_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/idfsweep/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOnePerStratum checks that splitting [lo,hi] into n equal strata puts
// exactly one sample in each.
func assertOnePerStratum(t *testing.T, col []float64, lo, hi float64) {
	t.Helper()
	n := len(col)
	hits := make([]int, n)
	for _, v := range col {
		s := int(math.Floor((v - lo) / (hi - lo) * float64(n)))
		require.True(t, s >= 0 && s < n, "value %g outside [%g,%g)", v, lo, hi)
		hits[s]++
	}
	for s, h := range hits {
		assert.Equal(t, 1, h, "stratum %d", s)
	}
}

func lhsSpec() sampling.Spec {
	return sampling.NewSpec(
		sampling.Variable{Name: "wwr", Method: sampling.MethodFloat, Values: []any{0.1, 0.7}},
		sampling.Variable{Name: "r_roof", Method: sampling.MethodFloat, Values: []any{2.0, 6.0, 4.0}},
		sampling.Variable{Name: "storeys", Method: sampling.MethodInt, Values: []any{1, 4}},
		sampling.Variable{Name: "glazing", Method: sampling.MethodCategorical, Values: []any{"single", "double", "triple"}},
		sampling.Variable{Name: "vented", Method: sampling.MethodBool, Values: []any{false, true}},
		sampling.Variable{Name: "city", Method: sampling.MethodConstant, Values: []any{"york"}},
	)
}

// TestLatinHypercube_Stratification verifies the defining LHS property for
// every type and criterion.
func TestLatinHypercube_Stratification(t *testing.T) {
	types := []sampling.LHSType{sampling.LHSClassic, sampling.LHSCentered}
	criteria := []sampling.Criterion{
		sampling.CriterionMaximin, sampling.CriterionCorrelation, sampling.CriterionRatio, sampling.CriterionNone,
	}
	const n = 12

	for _, lt := range types {
		for _, cr := range criteria {
			t.Run(string(lt)+"/"+string(cr), func(t *testing.T) {
				table, err := sampling.LatinHypercube(lhsSpec(), n,
					sampling.WithSeed(21), sampling.WithLHSType(lt), sampling.WithCriterion(cr), sampling.WithIterations(20))
				require.NoError(t, err)
				require.Equal(t, n, table.Len())

				wwr, _ := table.Column("wwr")
				assertOnePerStratum(t, floats(t, wwr), 0.1, 0.7)
				roof, _ := table.Column("r_roof")
				assertOnePerStratum(t, floats(t, roof), 2, 6)

				storeys, _ := table.Column("storeys")
				counts := map[int]int{}
				for _, v := range storeys {
					counts[v.(int)]++
				}
				// 12 samples over 4 integer levels: 3 each.
				assert.Equal(t, map[int]int{1: 3, 2: 3, 3: 3, 4: 3}, counts)

				glazing, _ := table.Column("glazing")
				for _, v := range glazing {
					assert.Contains(t, []any{"single", "double", "triple"}, v)
				}
				city, _ := table.Column("city")
				for _, v := range city {
					assert.Equal(t, "york", v)
				}
			})
		}
	}
}

// TestLatinHypercube_Centered places samples at stratum midpoints.
func TestLatinHypercube_Centered(t *testing.T) {
	spec := sampling.NewSpec(sampling.Variable{Name: "x", Method: sampling.MethodFloat, Values: []any{0, 4}})
	table, err := sampling.LatinHypercube(spec, 4, sampling.WithLHSType(sampling.LHSCentered))
	require.NoError(t, err)

	col, _ := table.Column("x")
	assert.ElementsMatch(t, []float64{0.5, 1.5, 2.5, 3.5}, floats(t, col))
}

// TestLatinHypercube_Reproducible checks seeded determinism.
func TestLatinHypercube_Reproducible(t *testing.T) {
	a, err := sampling.LatinHypercube(lhsSpec(), 8, sampling.WithSeed(4), sampling.WithIterations(10))
	require.NoError(t, err)
	b, err := sampling.LatinHypercube(lhsSpec(), 8, sampling.WithSeed(4), sampling.WithIterations(10))
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("seeded designs differ (-first +second):\n%s", diff)
	}

	c, err := sampling.LatinHypercube(lhsSpec(), 8, sampling.WithSeed(5), sampling.WithIterations(10))
	require.NoError(t, err)
	assert.NotEmpty(t, cmp.Diff(a, c), "different seeds should give different designs")
}

// TestLatinHypercube_SingleSample handles n=1.
func TestLatinHypercube_SingleSample(t *testing.T) {
	table, err := sampling.LatinHypercube(lhsSpec(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

// TestLatinHypercube_Errors covers unsupported dimensions.
func TestLatinHypercube_Errors(t *testing.T) {
	tests := []struct {
		name string
		v    sampling.Variable
		want error
	}{
		{"normal unsupported", sampling.Variable{Name: "x", Method: sampling.MethodNormal, Sigma: 1}, sampling.ErrUnsupportedMethod},
		{"unknown tag", sampling.Variable{Name: "x", Method: "sobol"}, sampling.ErrUnknownMethod},
		{"empty categorical", sampling.Variable{Name: "x", Method: sampling.MethodCategorical}, sampling.ErrEmptyValues},
		{"no integer in range", sampling.Variable{Name: "x", Method: sampling.MethodInt, Values: []any{0.2, 0.8}}, sampling.ErrBadParameter},
		{"int span overflows", sampling.Variable{Name: "x", Method: sampling.MethodInt, Values: []any{-9e18, 9e18}}, sampling.ErrBadParameter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sampling.LatinHypercube(sampling.NewSpec(tc.v), 5)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := sampling.LatinHypercube(lhsSpec(), 0)
	assert.ErrorIs(t, err, sampling.ErrBadSize)
}

// TestOptions_Panics verifies option constructors reject meaningless values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { sampling.WithRand(nil) })
	assert.Panics(t, func() { sampling.WithIterations(0) })
	assert.Panics(t, func() { sampling.WithLHSType("random") })
	assert.Panics(t, func() { sampling.WithCriterion("entropy") })
	assert.Panics(t, func() { sampling.WithMaxRows(-1) })
}
