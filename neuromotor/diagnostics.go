package neuromotor

import "math"

// Pass bands from spec.md §4.8's documented "human-plausible" table. These
// are fixed, not derived from cfg — they describe what a real operator's
// trace looks like, independent of the parameters used to synthesize it.
const (
	maxThroughputBps    = 12.0
	straightnessMin     = 0.80
	straightnessMax     = 0.95
	peakVelocityFracMin = 0.38
	peakVelocityFracMax = 0.45
	pathRMSEMinPx       = 10.0
	pathRMSEMaxPx       = 25.0
)

// DiagnosticsReport summarizes the kinematic properties of a completed Trace
// against the bounds spec.md §8 states as testable properties, plus the
// per-metric pass/fail booleans spec.md §4.8's table names.
type DiagnosticsReport struct {
	Throughput        float64 // bits/s, re-derived from the trace's own distance/duration
	StraightnessIndex float64 // straight-line distance / actual path length, in (0,1]
	PeakVelocityFrac  float64 // fraction of total duration at which velocity peaked
	PathRMSE          float64 // px, RMS perpendicular deviation from the straight chord
	TremorBandPower   float64 // relative power in the 8-12Hz band of the position residual

	ThroughputValid   bool
	StraightnessValid bool
	PeakVelocityValid bool
	PathRMSEValid     bool
	TremorValid       bool
	OverallValid      bool
}

// Diagnose computes a DiagnosticsReport from a finished Trace (spec.md
// §4.8). It is a pure function of the trace: no Session state, no I/O, so it
// can run against recorded traces long after the move completed.
func Diagnose(trace Trace, cfg Config) DiagnosticsReport {
	report := DiagnosticsReport{}
	if len(trace.Samples) < 2 {
		return report
	}

	distance := trace.Start.Dist(trace.Target.Center)
	width := trace.Target.EffectiveWidth()
	durationSeconds := trace.Duration.Seconds()

	if width > 0 && durationSeconds > 0 {
		report.Throughput = Throughput(distance, width, durationSeconds)
	}

	pathLen := samplePathLength(trace.Samples)
	if pathLen > 1e-9 {
		report.StraightnessIndex = distance / pathLen
	} else {
		report.StraightnessIndex = 1
	}

	peakIdx := peakVelocityIndex(trace.Samples)
	if durationSeconds > 0 {
		report.PeakVelocityFrac = trace.Samples[peakIdx].T.Seconds() / durationSeconds
	}

	report.PathRMSE = pathRMSE(trace.Samples, trace.Start, trace.Target.Center)
	report.TremorBandPower = tremorBandPower(trace.Samples, cfg.Noise.SampleRateHz, cfg.Noise.TremorFreqHz)

	report.ThroughputValid = report.Throughput <= maxThroughputBps
	report.StraightnessValid = report.StraightnessIndex >= straightnessMin && report.StraightnessIndex <= straightnessMax
	report.PeakVelocityValid = report.PeakVelocityFrac >= peakVelocityFracMin && report.PeakVelocityFrac <= peakVelocityFracMax
	report.PathRMSEValid = report.PathRMSE >= pathRMSEMinPx && report.PathRMSE <= pathRMSEMaxPx
	report.TremorValid = tremorDominant(trace.Samples, cfg.Noise.SampleRateHz, cfg.Noise.TremorFreqHz)

	report.OverallValid = report.ThroughputValid && report.StraightnessValid &&
		report.PeakVelocityValid && report.PathRMSEValid && report.TremorValid

	return report
}

func samplePathLength(samples []Sample) float64 {
	total := 0.0
	for i := 1; i < len(samples); i++ {
		total += samples[i-1].Pos.Dist(samples[i].Pos)
	}
	return total
}

func peakVelocityIndex(samples []Sample) int {
	best := 0
	for i, sample := range samples {
		if sample.Velocity > samples[best].Velocity {
			best = i
		}
	}
	return best
}

// pathRMSE measures the RMS perpendicular distance of each sample from the
// straight chord between start and end, the spec's direct measure of how
// curved the dispatched path actually was (spec.md §4.8, §8 property 6).
func pathRMSE(samples []Sample, start, end Point) float64 {
	chord := end.Sub(start)
	length := chord.Mag()
	if length < 1e-9 {
		return 0
	}
	unit := chord.Normalize()
	perp := unit.Perp()

	sumSq := 0.0
	for _, sample := range samples {
		rel := sample.Pos.Sub(start)
		deviation := rel.X*perp.X + rel.Y*perp.Y
		sumSq += deviation * deviation
	}
	return math.Sqrt(sumSq / float64(len(samples)))
}

// tremorBandwidthHz is the bandwidth used both to synthesize tremor noise
// (noise.go) and to measure it back out here.
const tremorBandwidthHz = 4.0

// positionResiduals approximates the high-frequency residual left after
// removing the smooth minimum-jerk trend from a trace's positions, via
// second difference.
func positionResiduals(samples []Sample) (resX, resY []float64) {
	resX = make([]float64, len(samples))
	resY = make([]float64, len(samples))
	for i := 1; i < len(samples)-1; i++ {
		resX[i] = samples[i+1].Pos.X - 2*samples[i].Pos.X + samples[i-1].Pos.X
		resY[i] = samples[i+1].Pos.Y - 2*samples[i].Pos.Y + samples[i-1].Pos.Y
	}
	return resX, resY
}

// bandEnergy band-passes resX/resY at centerHz (tremorBandwidthHz wide) with
// the same biquad noise.go uses to synthesize tremor, and returns the
// filtered signal's total energy.
func bandEnergy(resX, resY []float64, centerHz, sampleRateHz float64) float64 {
	filterX := newTremorBandpass(centerHz, tremorBandwidthHz, sampleRateHz)
	filterY := newTremorBandpass(centerHz, tremorBandwidthHz, sampleRateHz)
	bandX := filtfilt(filterX, resX)
	bandY := filtfilt(filterY, resY)
	return sumSquares(bandX) + sumSquares(bandY)
}

// tremorBandPower estimates the fraction of the position residual's energy
// that falls in the configured tremor band, by band-passing the residual
// with the same biquad used to synthesize tremor noise and comparing RMS
// before/after (spec.md §4.8, §8 property 9). It is a coarse diagnostic, not
// a calibrated spectral estimate — no FFT dependency is introduced here,
// consistent with noise.go's from-scratch biquad approach.
func tremorBandPower(samples []Sample, sampleRateHz, tremorFreqHz float64) float64 {
	if len(samples) < 4 || sampleRateHz <= 0 {
		return 0
	}

	resX, resY := positionResiduals(samples)
	totalEnergy := sumSquares(resX) + sumSquares(resY)
	if totalEnergy < 1e-12 {
		return 0
	}

	return bandEnergy(resX, resY, tremorFreqHz, sampleRateHz) / totalEnergy
}

// tremorDominant reports whether the tremor band actually carries more
// energy than its two flanking bands, spec.md §4.8's "tremor band power >
// adjacent bands" pass condition — a real 8-12Hz physiological tremor should
// stand out against the noise floor just below and above it, not merely be
// present.
func tremorDominant(samples []Sample, sampleRateHz, tremorFreqHz float64) bool {
	if len(samples) < 4 || sampleRateHz <= 0 {
		return false
	}

	resX, resY := positionResiduals(samples)
	if sumSquares(resX)+sumSquares(resY) < 1e-12 {
		return false
	}

	center := bandEnergy(resX, resY, tremorFreqHz, sampleRateHz)
	below := bandEnergy(resX, resY, tremorFreqHz-tremorBandwidthHz, sampleRateHz)
	above := bandEnergy(resX, resY, tremorFreqHz+tremorBandwidthHz, sampleRateHz)

	return center > below && center > above
}

func sumSquares(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x * x
	}
	return total
}
