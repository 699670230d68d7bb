package neuromotor

import (
	"math"
	"math/rand"
)

// maxTruncationAttempts bounds the rejection loop in TruncatedGaussian
// before falling back to clamping, per spec.md §4.1.
const maxTruncationAttempts = 32

// RNG is the seedable random source threaded through every stochastic
// component. It wraps math/rand.Rand the way the teacher's Humanoid wraps
// its *rand.Rand field — a single instance owned by one Session, never
// shared across goroutines without the Session's mutex (see session.go).
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded deterministically. Two RNGs built from the
// same seed and driven through the same call sequence produce identical
// samples — this is what makes Session reproducibility (spec.md §8,
// property 8) possible.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a sample in [0, 1).
func (g *RNG) Uniform() float64 {
	return g.r.Float64()
}

// Intn returns a uniform sample in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// Gaussian samples from N(mu, sigma^2).
func (g *RNG) Gaussian(mu, sigma float64) float64 {
	return mu + g.r.NormFloat64()*sigma
}

// LogNormal samples from a log-normal distribution parameterized in
// log-space by (mu, sigma), i.e. exp(N(mu, sigma^2)).
func (g *RNG) LogNormal(mu, sigma float64) float64 {
	return math.Exp(g.Gaussian(mu, sigma))
}

// ExGaussian samples from the exponentially-modified Gaussian: a Gaussian
// component plus an independent exponential tail, clamped to be
// non-negative. Used for key-hold and cognitive-pause style timings
// elsewhere in the humanoid lineage (internal/browser/humanoid/keyboard.go's
// IKD model); exposed here as a primitive for callers composing their own
// timing schedules on top of this package's driver interface.
func (g *RNG) ExGaussian(mu, sigma, tau float64) float64 {
	gaussianPart := g.Gaussian(mu, sigma)
	var exponentialPart float64
	if tau > 0 {
		exponentialPart = g.r.ExpFloat64() * tau
	}
	v := gaussianPart + exponentialPart
	if v < 0 {
		return 0
	}
	return v
}

// BivariateNormal samples a 2-D Gaussian offset from the origin with a
// diagonal covariance diag(sigmaX^2, sigmaY^2), isotropic when sigmaX ==
// sigmaY. Full Cholesky decomposition
// is unnecessary here: submovement error covariances are isotropic per
// spec.md §9, so two independent N(0,1) draws scaled by the per-axis sigma
// suffice.
func (g *RNG) BivariateNormal(sigmaX, sigmaY float64) Point {
	return Point{X: g.r.NormFloat64() * sigmaX, Y: g.r.NormFloat64() * sigmaY}
}

// TruncatedGaussian samples from N(mu, sigma^2) conditioned on [lo, hi] by
// rejection sampling, capped at 32 attempts before falling back to clamping
// a final draw into range (spec.md §4.1).
func (g *RNG) TruncatedGaussian(mu, sigma, lo, hi float64) float64 {
	for i := 0; i < maxTruncationAttempts; i++ {
		v := g.Gaussian(mu, sigma)
		if v >= lo && v <= hi {
			return v
		}
	}
	return math.Max(lo, math.Min(hi, g.Gaussian(mu, sigma)))
}

// Sign returns +1 or -1 with equal probability, used for the curvature sign
// of path geometry (spec.md §4.4).
func (g *RNG) Sign() float64 {
	if g.r.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Bool returns true with probability p.
func (g *RNG) Bool(p float64) bool {
	return g.r.Float64() < p
}
