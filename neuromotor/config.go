package neuromotor

import "math"

// FittsParams holds the per-invocation Fitts' Law coefficients (spec.md §3,
// §4.2).
type FittsParams struct {
	AMean, AStdDev float64 // seconds
	BMean, BStdDev float64 // seconds/bit
	MaxThroughput  float64 // bits/s, the hard human ceiling
	ErrorRate      float64 // nominal_error_rate, also used by the planner's miss branch
}

// ClickTiming holds the log-space parameters for click/dwell durations
// (spec.md §3). Mu/Sigma pairs are in log-milliseconds, matching
// original_source's ClickTimingParams; Duration/Dwell bounds are the hard
// clamps spec.md §4.7 and §3 specify.
type ClickTiming struct {
	DurationMu, DurationSigma float64
	DwellMu, DwellSigma       float64
	DurationMinMs             float64
	DurationMaxMs             float64
	DwellMinMs                float64
	DwellMaxMs                float64
}

// NoiseParams holds the signal-dependent-noise and tremor parameters
// (spec.md §3, §4.5).
type NoiseParams struct {
	KSignal        float64 // unitless gain on |velocity| for position noise
	TremorFreqHz   float64 // center frequency, must be in [8,12]
	TremorAmpPx    float64 // target post-filter RMS amplitude, px
	SampleRateHz   float64 // must be >= 4x TremorFreqHz (Nyquist margin)
	MicroJitterAmp float64 // optional path-stage perlin jitter amplitude, px; 0 disables it
}

// PathParams holds path-geometry curvature parameters (spec.md §3, §4.4).
type PathParams struct {
	Curvature  float64 // in [0, 0.3], default 0.15
	Deviation  float64 // reserved for caller-side scaling of the parabolic offset
}

// SubmovementParams holds the decomposition parameters (spec.md §4.6).
type SubmovementParams struct {
	PrimaryCoverage       float64
	PrimaryErrorStd       float64 // fraction of remaining distance
	MaxCorrections        int
	CorrectionProbability float64 // see SPEC_FULL.md §0; 1.0 recovers literal spec.md §4.6
}

// Config is the single, immutable configuration value for a Session. It is
// built with functional options and validated eagerly — spec.md §6 rules out
// any file-backed or keyword-dynamic config surface ("no persisted state; no
// file format"), so unlike the teacher's Viper-backed internal/config this
// is a plain value type, per the teacher's own design note in spec.md §9.
type Config struct {
	Fitts              FittsParams
	VelocityAsymmetry  float64 // alpha in [0.30, 0.50], default 0.42
	Noise              NoiseParams
	Path               PathParams
	Submovement        SubmovementParams
	SampleRateHz       float64 // dispatch cadence, Hz
	Click              ClickTiming
	Seed               int64
	seedSet            bool
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithFitts overrides the Fitts' Law parameters.
func WithFitts(p FittsParams) Option { return func(c *Config) { c.Fitts = p } }

// WithVelocityAsymmetry overrides the peak-velocity fraction alpha.
func WithVelocityAsymmetry(alpha float64) Option {
	return func(c *Config) { c.VelocityAsymmetry = alpha }
}

// WithNoise overrides the noise-injection parameters.
func WithNoise(p NoiseParams) Option { return func(c *Config) { c.Noise = p } }

// WithPath overrides the path-geometry parameters.
func WithPath(p PathParams) Option { return func(c *Config) { c.Path = p } }

// WithSubmovement overrides the submovement planner parameters.
func WithSubmovement(p SubmovementParams) Option { return func(c *Config) { c.Submovement = p } }

// WithSampleRate overrides the dispatch cadence in Hz.
func WithSampleRate(hz float64) Option { return func(c *Config) { c.SampleRateHz = hz } }

// WithClick overrides the click/dwell timing parameters.
func WithClick(p ClickTiming) Option { return func(c *Config) { c.Click = p } }

// WithSeed pins the PRNG seed for reproducibility (spec.md §8).
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed; c.seedSet = true }
}

// DefaultConfig returns the configuration representing an average human
// operator, with every parameter spec.md names at its documented default.
func DefaultConfig() Config {
	return Config{
		Fitts: FittsParams{
			AMean: 0.18, AStdDev: 0.03,
			BMean: 0.12, BStdDev: 0.02,
			MaxThroughput: 12.0,
			ErrorRate:     0.04,
		},
		VelocityAsymmetry: 0.42,
		Noise: NoiseParams{
			KSignal:        0.035,
			TremorFreqHz:   10.0,
			TremorAmpPx:    0.5,
			SampleRateHz:   60.0,
			MicroJitterAmp: 0.0,
		},
		Path: PathParams{
			Curvature: 0.15,
			Deviation: 1.0,
		},
		Submovement: SubmovementParams{
			PrimaryCoverage:       0.95,
			PrimaryErrorStd:       0.08,
			MaxCorrections:        3,
			CorrectionProbability: 0.85,
		},
		SampleRateHz: 60.0,
		Click: ClickTiming{
			DurationMu: 4.6, DurationSigma: 0.25,
			DwellMu: 5.5, DwellSigma: 0.3,
			DurationMinMs: 50, DurationMaxMs: 350,
			DwellMinMs: 100, DwellMaxMs: 600,
		},
	}
}

// NewConfig builds a Config from DefaultConfig plus the given options,
// validating every field against its admissible range. Returns
// KindInvalidConfig on violation, per spec.md §7.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	const op = "NewConfig"
	switch {
	case c.Fitts.AMean <= 0 || c.Fitts.BMean <= 0:
		return newError(KindInvalidConfig, op, errInvalid("fitts.a_mean and fitts.b_mean must be positive"))
	case c.Fitts.AStdDev < 0 || c.Fitts.AStdDev >= c.Fitts.AMean:
		return newError(KindInvalidConfig, op, errInvalid("fitts.a_std must satisfy 0 <= a_std < a_mean"))
	case c.Fitts.BStdDev < 0 || c.Fitts.BStdDev >= c.Fitts.BMean:
		return newError(KindInvalidConfig, op, errInvalid("fitts.b_std must satisfy 0 <= b_std < b_mean"))
	case c.Fitts.MaxThroughput <= 0:
		return newError(KindInvalidConfig, op, errInvalid("fitts.max_throughput must be positive"))
	case c.Fitts.ErrorRate < 0 || c.Fitts.ErrorRate > 1:
		return newError(KindInvalidConfig, op, errInvalid("fitts.nominal_error_rate must be in [0,1]"))
	case c.VelocityAsymmetry < 0.30 || c.VelocityAsymmetry > 0.50:
		return newError(KindInvalidConfig, op, errInvalid("velocity_asymmetry must be in [0.30, 0.50]"))
	case c.Noise.KSignal < 0:
		return newError(KindInvalidConfig, op, errInvalid("noise.k_signal must be non-negative"))
	case c.Noise.TremorFreqHz < 8 || c.Noise.TremorFreqHz > 12:
		return newError(KindInvalidConfig, op, errInvalid("noise.tremor_freq_hz must be in [8,12]"))
	case c.Noise.TremorAmpPx < 0:
		return newError(KindInvalidConfig, op, errInvalid("noise.tremor_amp_px must be non-negative"))
	case c.Noise.SampleRateHz < 4*c.Noise.TremorFreqHz:
		return newError(KindInvalidConfig, op, errInvalid("noise.sample_rate_hz must be >= 4x tremor_freq_hz (Nyquist margin)"))
	case c.Noise.MicroJitterAmp < 0:
		return newError(KindInvalidConfig, op, errInvalid("noise.micro_jitter_amp must be non-negative"))
	case c.Path.Curvature < 0 || c.Path.Curvature > 0.3:
		return newError(KindInvalidConfig, op, errInvalid("path.curvature must be in [0, 0.3]"))
	case c.Submovement.PrimaryCoverage <= 0:
		return newError(KindInvalidConfig, op, errInvalid("submovement.primary_coverage must be positive"))
	case c.Submovement.PrimaryErrorStd < 0:
		return newError(KindInvalidConfig, op, errInvalid("submovement.primary_error_std must be non-negative"))
	case c.Submovement.MaxCorrections < 0 || c.Submovement.MaxCorrections > 3:
		return newError(KindInvalidConfig, op, errInvalid("submovement.max_corrections must be in [0,3]"))
	case c.Submovement.CorrectionProbability < 0 || c.Submovement.CorrectionProbability > 1:
		return newError(KindInvalidConfig, op, errInvalid("submovement.correction_probability must be in [0,1]"))
	case c.SampleRateHz <= 0:
		return newError(KindInvalidConfig, op, errInvalid("sample_rate must be positive"))
	case c.Click.DurationMinMs <= 0 || c.Click.DurationMaxMs <= c.Click.DurationMinMs:
		return newError(KindInvalidConfig, op, errInvalid("click duration bounds must satisfy 0 < min < max"))
	case c.Click.DwellMinMs <= 0 || c.Click.DwellMaxMs <= c.Click.DwellMinMs:
		return newError(KindInvalidConfig, op, errInvalid("click dwell bounds must satisfy 0 < min < max"))
	case math.IsNaN(c.Fitts.AMean) || math.IsNaN(c.Fitts.BMean) ||
		math.IsInf(c.Fitts.AMean, 0) || math.IsInf(c.Fitts.BMean, 0):
		return newError(KindInvalidConfig, op, errInvalid("fitts parameters must be finite"))
	}
	return nil
}

type configErr string

func (e configErr) Error() string { return string(e) }

func errInvalid(msg string) error { return configErr(msg) }
