package sampling

import (
	"math"
)

const methodFullFactorial = "FullFactorial"

// levels returns the explicit value set of v for enumeration.
func levels(v Variable) ([]any, error) {
	if !v.Method.Valid() {
		return nil, samplingErrorf(methodFullFactorial, v.Name, ErrUnknownMethod, "method %q", v.Method)
	}
	if v.Method.Continuous() {
		return nil, samplingErrorf(methodFullFactorial, v.Name, ErrNotEnumerable, "method %q has no finite value set", v.Method)
	}
	return choices(methodFullFactorial, v)
}

// FactorialSize returns the number of rows FullFactorial would emit: the
// product of every variable's value-set cardinality. It fails with
// ErrNotEnumerable for normal/skew/uniform variables and ErrTooManyRows if
// the product overflows int.
func FactorialSize(spec Spec) (int, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	total := 1
	for _, v := range spec.Variables {
		vals, err := levels(v)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt/len(vals) {
			return 0, samplingErrorf(methodFullFactorial, v.Name, ErrTooManyRows, "product overflows int")
		}
		total *= len(vals)
	}
	return total, nil
}

// FullFactorial enumerates the Cartesian product of every variable's value
// set in declared order; the first variable varies slowest. Every variable
// must carry an explicit value list (int and float values are taken
// verbatim as levels). WithMaxRows enforces a ceiling before any row is
// built. RNG options are ignored.
//
// Complexity: O(R·V) for R = FactorialSize(spec).
func FullFactorial(spec Spec, opts ...Option) (*Table, error) {
	total, err := FactorialSize(spec)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.maxRows > 0 && total > cfg.maxRows {
		return nil, samplingErrorf(methodFullFactorial, "rows", ErrTooManyRows, "%d exceeds limit %d", total, cfg.maxRows)
	}

	sets := make([][]any, len(spec.Variables))
	for k, v := range spec.Variables {
		if sets[k], err = levels(v); err != nil {
			return nil, err
		}
	}

	t := &Table{Columns: spec.Names(), Rows: make([][]any, 0, total)}
	idx := make([]int, len(sets))
	for r := 0; r < total; r++ {
		row := make([]any, len(sets))
		for k, set := range sets {
			row[k] = set[idx[k]]
		}
		t.Rows = append(t.Rows, row)

		// odometer: advance the last variable first
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(sets[k]) {
				break
			}
			idx[k] = 0
		}
	}
	return t, nil
}
