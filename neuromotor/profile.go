package neuromotor

import "math"

// Profile is a normalized 1-D minimum-jerk progress curve over [0, duration]
// (spec.md §4.3). T is wall-clock seconds since the leg started, S is
// progress in [0,1], V is progress-per-second.
type Profile struct {
	T []float64
	S []float64
	V []float64
}

// minJerk0 is the symmetric 5th-order minimum-jerk polynomial, peaking in
// velocity at tau=0.5 (spec.md §4.3, GLOSSARY).
func minJerk0(tau float64) float64 {
	tau2 := tau * tau
	tau3 := tau2 * tau
	return 10*tau3 - 15*tau3*tau + 6*tau3*tau2
}

// timeWarp maps u in [0,1] (fraction of wall-clock duration) to tau in
// [0,1] (the minimum-jerk polynomial's own parameter), with warp(0)=0,
// warp(1)=1, and warp(alpha)=0.5 exactly (spec.md §4.3).
//
// Both a shared-slope Hermite cubic and original_source's single power-law
// warp were tried and rejected: each pins tau(alpha)=0.5 at the node, but
// minJerk0's own peak-velocity location (tau=0.5) only maps back to u=alpha
// in the *composite* velocity ds/du = minJerk0'(tau(u))*tau'(u) if tau'(u)
// doesn't itself skew the product's argmax elsewhere — and both candidates
// do skew it, by roughly 0.07-0.09 of the domain at alpha=0.35, far past
// the "±1 sample" invariant spec.md §4.3 and §8 property 5 require.
//
// A piecewise-LINEAR warp sidesteps the problem entirely: tau'(u) is
// constant on each side of the knot (0.5/alpha on [0,alpha], 0.5/(1-alpha)
// on [alpha,1]), so minJerk0'(tau(u)) — which is itself increasing for
// tau<0.5 and decreasing for tau>0.5 — is scaled by a positive constant on
// each side without ever being reshaped. The product is therefore
// increasing right up to u=alpha and decreasing right after it on both
// sides, which puts its argmax exactly at u=alpha, not approximately. The
// cost is a jump discontinuity in ds/du at the knot when alpha != 0.5
// (dtau/du itself is not continuous there) — acceptable since spec.md's
// binding invariant is peak *location*, not a smooth velocity derivative
// through the peak.
func timeWarp(u, alpha float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	if u <= alpha {
		return 0.5 * u / alpha
	}
	return 0.5 + 0.5*(u-alpha)/(1-alpha)
}

// GenerateProfile samples the asymmetric minimum-jerk profile over
// [0, duration] at sampleRateHz, with the velocity peak placed at fraction
// alpha of duration (spec.md §4.3). Endpoints are clamped to exactly 0 and 1
// post-computation to remove floating-point drift.
func GenerateProfile(duration float64, sampleRateHz float64, alpha float64) Profile {
	if duration <= 0 || sampleRateHz <= 0 {
		return Profile{T: []float64{0}, S: []float64{1}, V: []float64{0}}
	}

	n := int(math.Ceil(duration*sampleRateHz)) + 1
	if n < 2 {
		n = 2
	}

	t := make([]float64, n)
	s := make([]float64, n)
	v := make([]float64, n)

	dt := duration / float64(n-1)
	for i := 0; i < n; i++ {
		ti := float64(i) * dt
		t[i] = ti
		u := ti / duration
		tau := timeWarp(u, alpha)
		s[i] = minJerk0(tau)
	}

	// Endpoint clamp (spec.md §4.3 invariant: s(0)=0, s(duration)=1 exactly).
	s[0] = 0
	s[n-1] = 1

	// Central differences for velocity; the warp's analytic derivative is
	// avoided in favor of numerical differencing of the actually-clamped s
	// array, so v is always consistent with the s the caller will integrate
	// against.
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			v[i] = (s[1] - s[0]) / dt
		case i == n-1:
			v[i] = (s[n-1] - s[n-2]) / dt
		default:
			v[i] = (s[i+1] - s[i-1]) / (2 * dt)
		}
		if v[i] < 0 {
			v[i] = 0
		}
	}

	return Profile{T: t, S: s, V: v}
}

// PeakVelocityIndex returns the index of the maximum velocity sample.
func (p Profile) PeakVelocityIndex() int {
	best := 0
	for i, v := range p.V {
		if v > p.V[best] {
			best = i
		}
	}
	return best
}
