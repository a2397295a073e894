package sampling

const methodStatistical = "Statistical"

// Statistical draws n independent values per variable:
//
//   - discrete (categorical, bool) — uniform choice with replacement
//   - normal   — N(Mu, Sigma²)
//   - skew     — skew-normal, shape Skew, scale Sigma, mean Mu
//   - uniform  — U over Range or [Min, Max]
//   - constant — Value repeated n times
//
// int and float tags belong to the design-based strategies and fail with
// ErrUnsupportedMethod. The result is column-complete: every variable gets
// exactly n values, retrievable with Table.Column.
//
// Errors: ErrBadSize, ErrDuplicateVariable, ErrUnknownMethod,
// ErrUnsupportedMethod, ErrEmptyValues, ErrBadParameter.
// Complexity: O(n·V).
func Statistical(spec Spec, n int, opts ...Option) (*Table, error) {
	if n < 1 {
		return nil, samplingErrorf(methodStatistical, "n", ErrBadSize, "got %d", n)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	cols := make([][]any, len(spec.Variables))
	for j, v := range spec.Variables {
		col := make([]any, n)

		switch v.Method {
		case MethodDiscrete, MethodCategorical, MethodBool:
			values, err := choices(methodStatistical, v)
			if err != nil {
				return nil, err
			}
			for i := range col {
				col[i] = drawChoice(cfg.rng, values)
			}

		case MethodNormal:
			if err := validateSigma(methodStatistical, v); err != nil {
				return nil, err
			}
			for i := range col {
				col[i] = drawNormal(cfg.rng, v.Mu, v.Sigma)
			}

		case MethodSkew:
			if err := validateSigma(methodStatistical, v); err != nil {
				return nil, err
			}
			xi := skewLocation(v.Mu, v.Sigma, v.Skew)
			for i := range col {
				col[i] = drawSkewNormal(cfg.rng, xi, v.Sigma, v.Skew)
			}

		case MethodUniform:
			lo, hi, err := uniformBounds(methodStatistical, v)
			if err != nil {
				return nil, err
			}
			for i := range col {
				col[i] = drawUniform(cfg.rng, lo, hi)
			}

		case MethodConstant:
			value, err := constantValue(methodStatistical, v)
			if err != nil {
				return nil, err
			}
			col = repeat(value, n)

		default:
			return nil, samplingErrorf(methodStatistical, v.Name, ErrUnsupportedMethod, "method %q", v.Method)
		}

		cols[j] = col
	}

	return tableFromColumns(spec.Names(), cols, n), nil
}
