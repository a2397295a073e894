// distributions.go — scalar draws every strategy is built from.
//
// Each draw consumes the caller's *rand.Rand only, so a seeded RNG fully
// determines the output sequence.

package sampling

import (
	"math"
	"math/rand"
)

// drawChoice picks one element of values uniformly (with replacement).
func drawChoice(rng *rand.Rand, values []any) any {
	return values[rng.Intn(len(values))]
}

// drawNormal samples N(mu, sigma²).
func drawNormal(rng *rand.Rand, mu, sigma float64) float64 {
	return mu + sigma*rng.NormFloat64()
}

// drawUniform samples U[lo, hi). A degenerate interval returns lo.
func drawUniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi == lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// drawUniformInt samples an integer uniformly from [lo, hi] inclusive.
func drawUniformInt(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int63n(hi-lo+1)
}

// skewDelta returns δ = α/√(1+α²) for shape α.
func skewDelta(alpha float64) float64 {
	return alpha / math.Sqrt(1+alpha*alpha)
}

// skewLocation returns the location ξ that gives a skew-normal with scale ω
// and shape α the mean mu:
//
//	E[X] = ξ + ω·δ·√(2/π)  ⇒  ξ = mu − ω·δ·√(2/π)
func skewLocation(mu, omega, alpha float64) float64 {
	return mu - omega*skewDelta(alpha)*math.Sqrt(2/math.Pi)
}

// drawSkewNormal samples SN(ξ, ω, α) with the Azzalini representation:
//
//	u0, v ~ N(0,1);  u1 = δ·u0 + √(1−δ²)·v;  z = u1 if u0 ≥ 0 else −u1
//	x = ξ + ω·z
func drawSkewNormal(rng *rand.Rand, xi, omega, alpha float64) float64 {
	delta := skewDelta(alpha)
	u0 := rng.NormFloat64()
	v := rng.NormFloat64()
	u1 := delta*u0 + math.Sqrt(1-delta*delta)*v
	if u0 < 0 {
		u1 = -u1
	}
	return xi + omega*u1
}
