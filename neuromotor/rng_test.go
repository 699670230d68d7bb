package neuromotor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGReproducibility(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Uniform(), b.Uniform())
		assert.Equal(t, a.Gaussian(0, 1), b.Gaussian(0, 1))
	}
}

func TestRNGDifferentSeedsDiverge(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Uniform() != b.Uniform() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should not produce identical sequences")
}

func TestRNGGaussianDistribution(t *testing.T) {
	rng := NewRNG(7)
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rng.Gaussian(5, 2)
	}
	mean := sum / float64(n)
	assert.InDelta(t, 5.0, mean, 0.1)
}

func TestRNGLogNormalIsPositive(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := rng.LogNormal(1.0, 0.3)
		assert.Greater(t, v, 0.0)
	}
}

func TestRNGExGaussianNonNegative(t *testing.T) {
	rng := NewRNG(11)
	for i := 0; i < 1000; i++ {
		v := rng.ExGaussian(-5, 1, 0.5)
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestRNGTruncatedGaussianRespectsBounds(t *testing.T) {
	rng := NewRNG(99)
	for i := 0; i < 5000; i++ {
		v := rng.TruncatedGaussian(0, 1, -0.5, 0.5)
		assert.GreaterOrEqual(t, v, -0.5)
		assert.LessOrEqual(t, v, 0.5)
	}
}

func TestRNGSignDistribution(t *testing.T) {
	rng := NewRNG(5)
	pos, neg := 0, 0
	for i := 0; i < 2000; i++ {
		if rng.Sign() > 0 {
			pos++
		} else {
			neg++
		}
	}
	ratio := float64(pos) / float64(pos+neg)
	assert.InDelta(t, 0.5, ratio, 0.05)
}

func TestRNGBivariateNormalIsotropic(t *testing.T) {
	rng := NewRNG(13)
	var sumX2, sumY2 float64
	n := 10000
	for i := 0; i < n; i++ {
		p := rng.BivariateNormal(2, 2)
		sumX2 += p.X * p.X
		sumY2 += p.Y * p.Y
	}
	varX := sumX2 / float64(n)
	varY := sumY2 / float64(n)
	assert.InDelta(t, math.Sqrt(varX), math.Sqrt(varY), 0.3)
}
