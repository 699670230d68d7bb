package neuromotor

import (
	"time"

	"github.com/aquilax/go-perlin"
)

// Sample is one timestamped point of a composed trajectory, the unit
// Session dispatches to the Driver and diagnostics re-derives kinematics
// from (spec.md §3, §4.7).
type Sample struct {
	T        time.Duration // time since the move started
	Pos      Point
	Velocity float64 // px/s, central-difference estimate
}

// Trace is a complete composed movement: every dispatched sample plus the
// planning metadata diagnostics needs to re-derive throughput, straightness,
// and peak-velocity timing (spec.md §4.8).
type Trace struct {
	Samples  []Sample
	Legs     []Leg
	Start    Point
	Target   Target
	Duration time.Duration
}

// ComposeTrajectory stitches the planned legs into one continuous, globally
// timestamped trace (spec.md §4.7): each leg gets its own minimum-jerk
// profile and curved path, sampled at sampleRateHz, with position noise
// layered on top; legs are concatenated back-to-back in wall-clock time with
// no gap or overlap. jitterNoise drives the optional micro-jitter term
// (SPEC_FULL.md §0); pass nil to disable it regardless of cfg.
func ComposeTrajectory(rng *RNG, cfg Config, start Point, target Target, legs []Leg, totalDuration time.Duration, jitterNoise *perlin.Perlin) Trace {
	fractions := DurationFractions(legs)
	totalSeconds := totalDuration.Seconds()

	samples := make([]Sample, 0, int(totalSeconds*cfg.SampleRateHz)+len(legs))
	var elapsed time.Duration

	for i, leg := range legs {
		legSeconds := totalSeconds * fractions[i]
		if legSeconds <= 0 {
			continue
		}

		profile := GenerateProfile(legSeconds, cfg.SampleRateHz, cfg.VelocityAsymmetry)
		legLength := leg.From.Dist(leg.To)

		var jitter func(s float64) float64
		if cfg.Noise.MicroJitterAmp > 0 && jitterNoise != nil {
			legElapsed := elapsed.Seconds()
			jitter = func(s float64) float64 {
				return jitterNoise.Noise1D(legElapsed+s*legSeconds) * cfg.Noise.MicroJitterAmp * 4 * s * (1 - s)
			}
		}

		// GeneratePath applies the D/40 attenuation itself based on leg
		// length (path.go's attenuatedCurvature), so the nominal curvature
		// is passed through unattenuated here regardless of leg type.
		path := GeneratePath(profile, leg.From, leg.To, cfg.Path.Curvature, leg.Sign, jitter)
		ApplyNoise(rng, cfg.Noise, path, profile.V)

		// Every leg after the first shares its From with the previous leg's
		// To, and profile.T[0]=0 always lands on elapsed exactly — skip that
		// boundary sample so timestamps stay strictly increasing across the
		// leg seam (spec.md §4.7 step d, §3's strict-monotonic Trace
		// invariant).
		startIdx := 0
		if i > 0 {
			startIdx = 1
		}

		for j := startIdx; j < len(path); j++ {
			vel := 0.0
			if j < len(profile.V) {
				vel = profile.V[j] * legLength
			}
			samples = append(samples, Sample{
				T:        elapsed + time.Duration(profile.T[j]*float64(time.Second)),
				Pos:      path[j].Pos,
				Velocity: vel,
			})
		}

		elapsed += time.Duration(legSeconds * float64(time.Second))
	}

	return Trace{
		Samples:  samples,
		Legs:     legs,
		Start:    start,
		Target:   target,
		Duration: elapsed,
	}
}
