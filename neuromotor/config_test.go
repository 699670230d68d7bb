package neuromotor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Fitts, cfg.Fitts)
}

func TestNewConfigAppliesOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithVelocityAsymmetry(0.35),
		WithSeed(123),
		WithSampleRate(120),
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.35, cfg.VelocityAsymmetry, 1e-9)
	assert.InDelta(t, 120, cfg.SampleRateHz, 1e-9)
	assert.Equal(t, int64(123), cfg.Seed)
}

func TestNewConfigRejectsOutOfRangeAlpha(t *testing.T) {
	_, err := NewConfig(WithVelocityAsymmetry(0.9))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewConfigRejectsInvalidTremorFrequency(t *testing.T) {
	_, err := NewConfig(WithNoise(NoiseParams{
		TremorFreqHz: 20, TremorAmpPx: 1, SampleRateHz: 60, KSignal: 0.1,
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNewConfigRejectsNyquistViolation(t *testing.T) {
	_, err := NewConfig(WithNoise(NoiseParams{
		TremorFreqHz: 10, TremorAmpPx: 1, SampleRateHz: 20, KSignal: 0.1,
	}))
	require.Error(t, err)
}

func TestNewConfigRejectsBadClickBounds(t *testing.T) {
	_, err := NewConfig(WithClick(ClickTiming{
		DurationMu: 4.6, DurationSigma: 0.25,
		DwellMu: 5.5, DwellSigma: 0.3,
		DurationMinMs: 100, DurationMaxMs: 50,
	}))
	require.Error(t, err)
}

func TestNewConfigRejectsTooManyMaxCorrections(t *testing.T) {
	p := DefaultConfig().Submovement
	p.MaxCorrections = 10
	_, err := NewConfig(WithSubmovement(p))
	require.Error(t, err)
}
