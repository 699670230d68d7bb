package neuromotor

import "math"

// biquad is a single second-order IIR section in Direct Form II Transposed,
// the standard structure for the RBJ-cookbook bandpass coefficients below.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64 // filter state
}

func (f *biquad) reset() {
	f.z1, f.z2 = 0, 0
}

func (f *biquad) step(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

// newTremorBandpass builds the RBJ-cookbook constant-0dB-peak-gain bandpass
// biquad centered at centerHz with a bandwidth of bandwidthHz, sampled at
// sampleRateHz. This is the standard 2nd-order Butterworth-family bandpass
// used to shape white noise into the 8-12Hz physiological tremor band
// (spec.md §4.5) without pulling in an FFT/DSP dependency the teacher never
// carries (a from-scratch biquad in place of a heavyweight
// signal-processing library).
func newTremorBandpass(centerHz, bandwidthHz, sampleRateHz float64) *biquad {
	w0 := 2 * math.Pi * centerHz / sampleRateHz
	q := centerHz / bandwidthHz
	alpha := math.Sin(w0) / (2 * q)
	cosW0 := math.Cos(w0)

	a0 := 1 + alpha
	return &biquad{
		b0: alpha / a0,
		b1: 0,
		b2: -alpha / a0,
		a1: (-2 * cosW0) / a0,
		a2: (1 - alpha) / a0,
	}
}

// filtfilt runs x through f forward then backward (time-reversed), producing
// a zero-phase-distortion output at the cost of doubling the filter's
// effective order — the standard trick for offline bandpass filtering where
// causality doesn't matter (spec.md §4.5's tremor band must not introduce a
// timing lag relative to the underlying minimum-jerk profile).
func filtfilt(f *biquad, x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	fwd := make([]float64, n)
	f.reset()
	for i, v := range x {
		fwd[i] = f.step(v)
	}

	out := make([]float64, n)
	f.reset()
	for i := n - 1; i >= 0; i-- {
		out[i] = f.step(fwd[i])
	}

	return out
}

// TremorSeries generates n samples of band-pass-filtered physiological
// tremor noise at sampleRateHz, centered at params.TremorFreqHz with a fixed
// 4Hz bandwidth (spec.md §4.5: "8-12Hz band"), then rescales the result so
// its RMS amplitude matches params.TremorAmpPx exactly — the raw biquad
// output's gain depends on Q and signal length, so a post-hoc rescale is the
// simplest way to hit a caller-specified amplitude.
func TremorSeries(rng *RNG, params NoiseParams, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if params.TremorAmpPx <= 0 {
		return make([]float64, n)
	}

	white := make([]float64, n)
	for i := range white {
		white[i] = rng.Gaussian(0, 1)
	}

	const tremorBandwidthHz = 4.0
	filter := newTremorBandpass(params.TremorFreqHz, tremorBandwidthHz, params.SampleRateHz)
	shaped := filtfilt(filter, white)

	rms := 0.0
	for _, v := range shaped {
		rms += v * v
	}
	rms = math.Sqrt(rms / float64(n))
	if rms < 1e-9 {
		return shaped
	}

	scale := params.TremorAmpPx / rms
	for i := range shaped {
		shaped[i] *= scale
	}
	return shaped
}

// snapBackSamples is how many trailing samples are linearly tapered to zero
// noise so the final dispatched position always lands exactly on the planned
// endpoint (spec.md §4.5 endpoint invariant: noise must not perturb p(1)).
const snapBackSamples = 3

// ApplyNoise perturbs pts in place with signal-dependent Gaussian position
// noise plus band-pass tremor (spec.md §4.5), tapering both to zero over the
// final snapBackSamples so the path still terminates exactly at its planned
// endpoint.
func ApplyNoise(rng *RNG, params NoiseParams, pts []PathPoint, velocity []float64) {
	n := len(pts)
	if n == 0 {
		return
	}

	tremorX := TremorSeries(rng, params, n)
	tremorY := TremorSeries(rng, params, n)

	for i := range pts {
		taper := 1.0
		if remaining := n - 1 - i; remaining < snapBackSamples {
			taper = float64(remaining) / float64(snapBackSamples)
			if taper < 0 {
				taper = 0
			}
		}

		var vel float64
		if i < len(velocity) {
			vel = velocity[i]
		}
		sigma := params.KSignal * math.Abs(vel)

		offset := Point{
			X: rng.Gaussian(0, sigma) + tremorX[i],
			Y: rng.Gaussian(0, sigma) + tremorY[i],
		}

		pts[i].Pos = pts[i].Pos.Add(offset.Mul(taper))
	}
}
