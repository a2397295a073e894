package sampling

const methodRandom = "Random"

// Random draws n independent rows:
//
//   - discrete/categorical/bool — uniform choice with replacement from Values
//   - constant                  — the single value repeated
//   - int                       — uniform integer in [min(Values), max(Values)]
//   - float                     — uniform real in [min(Values), max(Values))
//
// An int or float variable with exactly one value degrades to a constant.
// Continuous-distribution tags (normal, skew, uniform) fail with
// ErrUnsupportedMethod.
//
// Complexity: O(n·V).
func Random(spec Spec, n int, opts ...Option) (*Table, error) {
	if n < 1 {
		return nil, samplingErrorf(methodRandom, "n", ErrBadSize, "got %d", n)
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
			values, err := choices(methodRandom, v)
			if err != nil {
				return nil, err
			}
			for i := range col {
				col[i] = drawChoice(cfg.rng, values)
			}

		case MethodConstant:
			value, err := constantValue(methodRandom, v)
			if err != nil {
				return nil, err
			}
			col = repeat(value, n)

		case MethodInt:
			lo, hi, err := valueBounds(methodRandom, v)
			if err != nil {
				return nil, err
			}
			if len(v.Values) == 1 {
				col = repeat(v.Values[0], n)
				break
			}
			ilo, ihi, err := intBounds(methodRandom, v, lo, hi)
			if err != nil {
				return nil, err
			}
			for i := range col {
				col[i] = int(drawUniformInt(cfg.rng, ilo, ihi))
			}

		case MethodFloat:
			lo, hi, err := valueBounds(methodRandom, v)
			if err != nil {
				return nil, err
			}
			if len(v.Values) == 1 {
				col = repeat(v.Values[0], n)
				break
			}
			for i := range col {
				col[i] = drawUniform(cfg.rng, lo, hi)
			}

		default:
			return nil, samplingErrorf(methodRandom, v.Name, ErrUnsupportedMethod, "method %q", v.Method)
		}

		cols[j] = col
	}

	return tableFromColumns(spec.Names(), cols, n), nil
}
