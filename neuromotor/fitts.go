package neuromotor

import (
	"math"
	"time"
)

const (
	minMovementDuration = 50 * time.Millisecond
	maxMovementDuration = 4 * time.Second
	minCoeffFraction    = 0.10 // clamp sampled a/b to >= 10% of their mean, spec.md §4.2 step 2
)

// IndexOfDifficulty returns the Shannon-formulation Index of Difficulty,
// log2(2D/W + 1), in bits (spec.md §4.2 step 1, GLOSSARY). The "+1" ensures
// non-negativity when D < W/2.
func IndexOfDifficulty(distance, effectiveWidth float64) float64 {
	return math.Log2(2*distance/effectiveWidth + 1)
}

// FittsDuration samples a movement duration from distance and effective
// target width using the session's Fitts' Law coefficients, enforcing the
// throughput ceiling (spec.md §4.2). Returns KindInvalidGeometry if distance
// is negative or width is non-positive.
func FittsDuration(rng *RNG, params FittsParams, distance, effectiveWidth float64) (time.Duration, error) {
	const op = "FittsDuration"
	if distance < 0 {
		return 0, newError(KindInvalidGeometry, op, errInvalid("distance must be non-negative"))
	}
	if effectiveWidth <= 0 {
		return 0, newError(KindInvalidGeometry, op, errInvalid("effective width must be positive"))
	}

	id := IndexOfDifficulty(distance, effectiveWidth)

	a := rng.Gaussian(params.AMean, params.AStdDev)
	a = math.Max(a, params.AMean*minCoeffFraction)
	b := rng.Gaussian(params.BMean, params.BStdDev)
	b = math.Max(b, params.BMean*minCoeffFraction)

	t := a + b*id

	if t > 0 {
		throughput := id / t
		if throughput > params.MaxThroughput {
			t = id / params.MaxThroughput
		}
	}

	clamped := time.Duration(t * float64(time.Second))
	if clamped < minMovementDuration {
		clamped = minMovementDuration
	}
	if clamped > maxMovementDuration {
		clamped = maxMovementDuration
	}
	return clamped, nil
}

// Throughput returns ID/duration in bits/s, the quantity Fitts' Law bounds
// and diagnostics re-derives from a finished trace (spec.md §4.8).
func Throughput(distance, effectiveWidth, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return math.Inf(1)
	}
	return IndexOfDifficulty(distance, effectiveWidth) / durationSeconds
}
