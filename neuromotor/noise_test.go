package neuromotor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTremorSeriesAmplitudeMatchesTarget(t *testing.T) {
	rng := NewRNG(21)
	params := NoiseParams{TremorFreqHz: 10, TremorAmpPx: 1.0, SampleRateHz: 60}

	series := TremorSeries(rng, params, 600)
	rms := math.Sqrt(sumSquares(series) / float64(len(series)))
	assert.InDelta(t, 1.0, rms, 0.15)
}

func TestTremorSeriesZeroAmplitudeIsZero(t *testing.T) {
	rng := NewRNG(1)
	params := NoiseParams{TremorFreqHz: 10, TremorAmpPx: 0, SampleRateHz: 60}
	series := TremorSeries(rng, params, 100)
	for _, v := range series {
		assert.Equal(t, 0.0, v)
	}
}

func TestTremorSeriesEmptyForZeroSamples(t *testing.T) {
	rng := NewRNG(1)
	params := NoiseParams{TremorFreqHz: 10, TremorAmpPx: 1, SampleRateHz: 60}
	assert.Nil(t, TremorSeries(rng, params, 0))
}

func TestApplyNoiseSnapBackLastSampleUnperturbed(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 100, Y: 0}
	profile := GenerateProfile(0.5, 60, 0.42)
	pts := GeneratePath(profile, p0, p1, 0.1, 1, nil)

	original := pts[len(pts)-1].Pos

	rng := NewRNG(5)
	params := NoiseParams{KSignal: 0.1, TremorFreqHz: 10, TremorAmpPx: 2, SampleRateHz: 60}
	ApplyNoise(rng, params, pts, profile.V)

	assert.Equal(t, original, pts[len(pts)-1].Pos)
}

func TestApplyNoiseIncreasesWithVelocity(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 500, Y: 0}
	profile := GenerateProfile(0.5, 60, 0.42)

	lowVelPts := GeneratePath(profile, p0, p1, 0, 1, nil)
	highVelPts := GeneratePath(profile, p0, p1, 0, 1, nil)

	rng1 := NewRNG(9)
	params := NoiseParams{KSignal: 0.5, TremorFreqHz: 10, TremorAmpPx: 0, SampleRateHz: 60}
	zeroVel := make([]float64, len(profile.V))
	ApplyNoise(rng1, params, lowVelPts, zeroVel)

	rng2 := NewRNG(9)
	scaledVel := make([]float64, len(profile.V))
	for i, v := range profile.V {
		scaledVel[i] = v * 1000
	}
	ApplyNoise(rng2, params, highVelPts, scaledVel)

	lowDisp := lowVelPts[len(lowVelPts)/2].Pos.Dist(p0.Lerp(p1, profile.S[len(profile.S)/2]))
	highDisp := highVelPts[len(highVelPts)/2].Pos.Dist(p0.Lerp(p1, profile.S[len(profile.S)/2]))

	assert.GreaterOrEqual(t, highDisp, lowDisp)
}

func TestNewTremorBandpassHasNonZeroGain(t *testing.T) {
	filter := newTremorBandpass(10, 4, 60)
	assert.NotZero(t, filter.b0)
}
