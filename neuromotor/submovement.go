package neuromotor

import "math"

// Leg is one planned submovement: a straight-line span in progress terms
// plus the curvature sign it should bow toward (spec.md §4.6).
type Leg struct {
	From, To Point
	IsPrimary bool
	Sign      float64 // +1 or -1, which side the path bows toward
}

// PlanSubmovements decomposes a move from start to target into a primary
// ballistic leg plus zero or more visually-guided correction legs, stopping
// once a leg lands inside the target box or max_corrections is reached
// (spec.md §4.6). The primary leg covers submovement.PrimaryCoverage of the
// distance plus Gaussian landing error scaled by PrimaryErrorStd; each
// correction leg runs from the previous landing point to a fresh sampled
// point, closer to center each time.
//
// A correction that the box-containment rule would otherwise fire is
// additionally gated by CorrectionProbability (SPEC_FULL.md §0): with
// probability 1-CorrectionProbability the planner accepts the current miss
// as final rather than adding another leg, matching human data that not
// every visible error actually gets corrected. CorrectionProbability=1.0
// recovers literal spec.md §4.6 behavior (always correct while outside the
// box and under budget).
func PlanSubmovements(rng *RNG, params SubmovementParams, start Point, target Target, errorRate float64) []Leg {
	legs := make([]Leg, 0, params.MaxCorrections+1)

	direction := target.Center.Sub(start)
	totalDist := direction.Mag()

	primaryDist := totalDist * params.PrimaryCoverage
	errStd := primaryDist * params.PrimaryErrorStd

	landing := start
	if totalDist > 1e-9 {
		unit := direction.Normalize()
		along := primaryDist + rng.Gaussian(0, errStd)
		lateral := rng.Gaussian(0, errStd*0.5)
		perp := unit.Perp()
		landing = start.Add(unit.Mul(along)).Add(perp.Mul(lateral))
	}

	legs = append(legs, Leg{From: start, To: landing, IsPrimary: true, Sign: rng.Sign()})

	current := landing
	for i := 0; i < params.MaxCorrections; i++ {
		if target.Contains(current) {
			break
		}

		errorDist := current.Dist(target.Center)
		if !rng.Bool(params.CorrectionProbability) {
			break
		}

		remaining := target.Center.Sub(current)
		correctionErrStd := errorDist * params.PrimaryErrorStd * 0.5
		next := current
		if errorDist > 1e-9 {
			unit := remaining.Normalize()
			perp := unit.Perp()
			next = current.
				Add(unit.Mul(errorDist + rng.Gaussian(0, correctionErrStd))).
				Add(perp.Mul(rng.Gaussian(0, correctionErrStd*0.5)))
		}

		legs = append(legs, Leg{From: current, To: next, IsPrimary: false, Sign: rng.Sign()})
		current = next
	}

	// Final leg normally lands exactly on the target center: whatever the
	// last planned point is, the trajectory should visibly settle on-target
	// rather than on a sampled near-miss (spec.md §4.6: "the final
	// submovement's endpoint is the target center"). But with probability
	// errorRate (nominal_error_rate, spec.md §4.6 step 4) the operator stops
	// correcting before actually entering the target, so the forced snap is
	// skipped and the leg instead lands just outside the box.
	if len(legs) > 0 {
		if rng.Bool(errorRate) {
			legs[len(legs)-1].To = missPoint(rng, target)
		} else {
			legs[len(legs)-1].To = target.Center
		}
	}

	return legs
}

// missPoint samples a point guaranteed to fall outside target's box, at a
// random angle around the center just past the box's circumscribed circle
// (spec.md §4.6 step 4 / scenario S5: a missed correction must land outside
// the target regardless of the box's aspect ratio).
func missPoint(rng *RNG, target Target) Point {
	radius := math.Hypot(target.Width/2, target.Height/2) * 1.15
	angle := rng.Uniform() * 2 * math.Pi
	return target.Center.Add(Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
}

// DurationFractions splits a total movement duration across legs,
// proportional to each leg's length, so a long primary leg gets
// proportionally more wall-clock time than a short correction (spec.md
// §4.6). Degenerate (zero-length) legs get a small floor fraction so they
// still occupy some dispatch time.
func DurationFractions(legs []Leg) []float64 {
	const floor = 0.02
	lengths := make([]float64, len(legs))
	total := 0.0
	for i, leg := range legs {
		l := leg.From.Dist(leg.To)
		if l < 1e-9 {
			l = floor
		}
		lengths[i] = l
		total += l
	}

	fractions := make([]float64, len(legs))
	if total <= 0 {
		for i := range fractions {
			fractions[i] = 1.0 / float64(len(legs))
		}
		return fractions
	}
	for i, l := range lengths {
		fractions[i] = l / total
	}
	return fractions
}
