package sampling

import "math"

// toFloat converts YAML/Go numeric scalars to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// choices returns the explicit candidate list of v. A bool variable with no
// values defaults to {false, true}.
func choices(strategy string, v Variable) ([]any, error) {
	if len(v.Values) > 0 {
		return v.Values, nil
	}
	if v.Method == MethodBool {
		return []any{false, true}, nil
	}
	if v.Method == MethodConstant && v.Value != nil {
		return []any{v.Value}, nil
	}
	return nil, samplingErrorf(strategy, v.Name, ErrEmptyValues, "method %s needs values", v.Method)
}

// constantValue returns Value, or the first of Values.
func constantValue(strategy string, v Variable) (any, error) {
	if v.Value != nil {
		return v.Value, nil
	}
	if len(v.Values) == 0 {
		return nil, samplingErrorf(strategy, v.Name, ErrEmptyValues, "constant needs value")
	}
	return v.Values[0], nil
}

// valueBounds returns [min(Values), max(Values)] for int/float variables.
func valueBounds(strategy string, v Variable) (float64, float64, error) {
	if len(v.Values) == 0 {
		return 0, 0, samplingErrorf(strategy, v.Name, ErrEmptyValues, "method %s needs values", v.Method)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, raw := range v.Values {
		f, ok := toFloat(raw)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, 0, samplingErrorf(strategy, v.Name, ErrBadParameter, "non-numeric value %v", raw)
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	return lo, hi, nil
}

// maxIntBound caps integer dimensions so the span ihi-ilo+1 fits in int64.
const maxIntBound = 1 << 61

// intBounds narrows the real interval [lo,hi] to the integers it contains.
// Fails with ErrBadParameter when no integer lies inside or a bound exceeds
// ±maxIntBound.
func intBounds(strategy string, v Variable, lo, hi float64) (int64, int64, error) {
	if lo < -maxIntBound || hi > maxIntBound {
		return 0, 0, samplingErrorf(strategy, v.Name, ErrBadParameter, "bounds [%g,%g] exceed ±2^61", lo, hi)
	}
	ilo, ihi := int64(math.Ceil(lo)), int64(math.Floor(hi))
	if ihi < ilo {
		return 0, 0, samplingErrorf(strategy, v.Name, ErrBadParameter, "no integer in [%g,%g]", lo, hi)
	}
	return ilo, ihi, nil
}

// uniformBounds returns the uniform interval from Range or Min/Max.
func uniformBounds(strategy string, v Variable) (float64, float64, error) {
	var lo, hi float64
	switch {
	case len(v.Range) == 2:
		lo, hi = math.Min(v.Range[0], v.Range[1]), math.Max(v.Range[0], v.Range[1])
	case len(v.Range) == 0 && v.Min != nil && v.Max != nil:
		lo, hi = *v.Min, *v.Max
	default:
		return 0, 0, samplingErrorf(strategy, v.Name, ErrBadParameter, "uniform needs range [a,b] or min/max")
	}
	if hi < lo || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, samplingErrorf(strategy, v.Name, ErrBadParameter, "bad bounds [%g,%g]", lo, hi)
	}
	return lo, hi, nil
}

// validateSigma rejects negative or non-finite scale parameters.
func validateSigma(strategy string, v Variable) error {
	if v.Sigma < 0 || math.IsNaN(v.Sigma) || math.IsInf(v.Sigma, 0) {
		return samplingErrorf(strategy, v.Name, ErrBadParameter, "sigma must be ≥ 0, got %g", v.Sigma)
	}
	if math.IsNaN(v.Mu) || math.IsInf(v.Mu, 0) || math.IsNaN(v.Skew) || math.IsInf(v.Skew, 0) {
		return samplingErrorf(strategy, v.Name, ErrBadParameter, "mu/skew must be finite")
	}
	return nil
}

// repeat returns n copies of value.
func repeat(value any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = value
	}
	return out
}
