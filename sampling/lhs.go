// SPDX-License-Identifier: MIT
// Package: idfsweep/sampling
//
// lhs.go — Latin-hypercube design over mixed discrete/integer/real dimensions.
//
// Algorithm:
//  1. Map each variable to a dimension: categorical (explicit value set),
//     integer [min,max] or real [min,max].
//  2. Build a unit design U (n×d): for every column k draw a permutation π
//     of 0..n-1 and set U[i][k] = (π[i] + j)/n, with j ~ U[0,1) (classic) or
//     j = 0.5 (centered). Every column therefore hits each of the n strata
//     [s/n, (s+1)/n) exactly once.
//  3. Unless the criterion is none, score Iterations candidate designs and
//     keep the best (maximin / correlation / ratio).
//  4. Map U[i][k] onto dimension k.
//
// Determinism: all randomness comes from config.rng.

package sampling

import (
	"math"
	"math/rand"
)

const methodLatinHypercube = "LatinHypercube"

type dimKind int

const (
	dimCategorical dimKind = iota
	dimInteger
	dimReal
)

// dimension is one axis of the design space.
type dimension struct {
	kind     dimKind
	values   []any   // categorical
	ilo, ihi int64   // integer
	lo, hi   float64 // real
}

// dimensionFor maps v onto a design dimension.
func dimensionFor(v Variable) (dimension, error) {
	switch v.Method {
	case MethodDiscrete, MethodCategorical, MethodBool, MethodConstant:
		values, err := choices(methodLatinHypercube, v)
		if err != nil {
			return dimension{}, err
		}
		return dimension{kind: dimCategorical, values: values}, nil

	case MethodInt:
		lo, hi, err := valueBounds(methodLatinHypercube, v)
		if err != nil {
			return dimension{}, err
		}
		ilo, ihi, err := intBounds(methodLatinHypercube, v, lo, hi)
		if err != nil {
			return dimension{}, err
		}
		return dimension{kind: dimInteger, ilo: ilo, ihi: ihi}, nil

	case MethodFloat:
		lo, hi, err := valueBounds(methodLatinHypercube, v)
		if err != nil {
			return dimension{}, err
		}
		return dimension{kind: dimReal, lo: lo, hi: hi}, nil

	default:
		return dimension{}, samplingErrorf(methodLatinHypercube, v.Name, ErrUnsupportedMethod, "method %q", v.Method)
	}
}

// value maps a unit coordinate u ∈ [0,1) onto the dimension.
func (d dimension) value(u float64) any {
	switch d.kind {
	case dimCategorical:
		return d.values[bucket(u, len(d.values))]
	case dimInteger:
		k := int(d.ihi - d.ilo + 1)
		return int(d.ilo + int64(bucket(u, k)))
	default:
		return d.lo + u*(d.hi-d.lo)
	}
}

// bucket returns floor(u·k) clamped to [0, k-1].
func bucket(u float64, k int) int {
	b := int(u * float64(k))
	if b >= k {
		b = k - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// LatinHypercube generates an n-row space-filling design.
//
//   - discrete/categorical/bool/constant → categorical dimension over Values
//   - int   → integer dimension [min(Values), max(Values)]
//   - float → real dimension [min(Values), max(Values)]
//
// The stratum placement is set by WithLHSType (classic by default) and the
// candidate selection by WithCriterion / WithIterations (maximin over 1000
// candidates by default). normal, skew and uniform fail with
// ErrUnsupportedMethod.
//
// Complexity: O(I·n²·d) with a criterion, O(n·d) without.
func LatinHypercube(spec Spec, n int, opts ...Option) (*Table, error) {
	if n < 1 {
		return nil, samplingErrorf(methodLatinHypercube, "n", ErrBadSize, "got %d", n)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	dims := make([]dimension, len(spec.Variables))
	for k, v := range spec.Variables {
		d, err := dimensionFor(v)
		if err != nil {
			return nil, err
		}
		dims[k] = d
	}
	cfg := newConfig(opts...)

	unit := lhsDesign(n, len(dims), cfg)

	t := &Table{Columns: spec.Names(), Rows: make([][]any, n)}
	for i := 0; i < n; i++ {
		row := make([]any, len(dims))
		for k, d := range dims {
			row[k] = d.value(unit[i][k])
		}
		t.Rows[i] = row
	}
	return t, nil
}

// lhsDesign returns the best-scoring unit design among the candidates.
func lhsDesign(n, d int, cfg config) [][]float64 {
	best := lhsCandidate(n, d, cfg.lhsType, cfg.rng)
	if cfg.criterion == CriterionNone || n < 2 || d == 0 {
		return best
	}
	bestScore := scoreDesign(best, cfg.criterion)
	for it := 1; it < cfg.iterations; it++ {
		cand := lhsCandidate(n, d, cfg.lhsType, cfg.rng)
		if s := scoreDesign(cand, cfg.criterion); s > bestScore {
			best, bestScore = cand, s
		}
	}
	return best
}

// lhsCandidate draws one n×d unit Latin hypercube.
func lhsCandidate(n, d int, t LHSType, rng *rand.Rand) [][]float64 {
	design := make([][]float64, n)
	for i := range design {
		design[i] = make([]float64, d)
	}
	inv := 1.0 / float64(n)
	for k := 0; k < d; k++ {
		perm := permRange(n, rng)
		for i := 0; i < n; i++ {
			jitter := 0.5
			if t == LHSClassic {
				jitter = rng.Float64()
			}
			design[i][k] = (float64(perm[i]) + jitter) * inv
		}
	}
	return design
}

// scoreDesign returns a score where larger is better for every criterion.
func scoreDesign(design [][]float64, c Criterion) float64 {
	switch c {
	case CriterionMaximin:
		minD, _ := distanceExtremes(design)
		return minD
	case CriterionRatio:
		minD, maxD := distanceExtremes(design)
		if minD == 0 {
			return math.Inf(-1)
		}
		return -maxD / minD
	case CriterionCorrelation:
		return -maxAbsCorrelation(design)
	default:
		return 0
	}
}

// distanceExtremes returns the min and max pairwise Euclidean distances.
func distanceExtremes(design [][]float64) (float64, float64) {
	minD, maxD := math.Inf(1), 0.0
	for i := 0; i < len(design); i++ {
		for j := i + 1; j < len(design); j++ {
			var s float64
			for k := range design[i] {
				diff := design[i][k] - design[j][k]
				s += diff * diff
			}
			dist := math.Sqrt(s)
			minD = math.Min(minD, dist)
			maxD = math.Max(maxD, dist)
		}
	}
	return minD, maxD
}

// maxAbsCorrelation returns the largest |Pearson r| over all column pairs.
func maxAbsCorrelation(design [][]float64) float64 {
	n := len(design)
	d := len(design[0])
	means := make([]float64, d)
	for _, row := range design {
		for k, v := range row {
			means[k] += v
		}
	}
	for k := range means {
		means[k] /= float64(n)
	}

	worst := 0.0
	for a := 0; a < d; a++ {
		for b := a + 1; b < d; b++ {
			var sab, saa, sbb float64
			for _, row := range design {
				da, db := row[a]-means[a], row[b]-means[b]
				sab += da * db
				saa += da * da
				sbb += db * db
			}
			if saa == 0 || sbb == 0 {
				continue
			}
			worst = math.Max(worst, math.Abs(sab/math.Sqrt(saa*sbb)))
		}
	}
	return worst
}
