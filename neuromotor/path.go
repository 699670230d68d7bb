package neuromotor

// correctionAttenuationPx is the leg length below which curvature is
// linearly attenuated (SPEC_FULL.md §0 resolved open question: D/40, so a
// 40px correction leg gets full curvature and anything shorter gets
// proportionally less).
const correctionAttenuationPx = 40.0

// PathPoint is one sample of a lifted 2-D path: straight-line progress plus
// the perpendicular curvature offset actually applied at that progress.
type PathPoint struct {
	Pos   Point
	S     float64 // progress in [0,1], carried through from the driving Profile
	Curve float64 // signed perpendicular offset applied at this sample, px
}

// attenuatedCurvature scales the nominal curvature coefficient down for
// short legs, so corrective submovements (typically under the 40px
// threshold) don't arc as visibly as the primary ballistic leg (spec.md §9,
// SPEC_FULL.md §0).
func attenuatedCurvature(curvature, legLength float64) float64 {
	if legLength >= correctionAttenuationPx {
		return curvature
	}
	if legLength <= 0 {
		return 0
	}
	return curvature * (legLength / correctionAttenuationPx)
}

// GeneratePath lifts a 1-D minimum-jerk profile into a 2-D curved path
// between p0 and p1 (spec.md §4.4). The curvature component is a parabolic
// bulge c*||p1-p0||*sign*4*s*(1-s) along the chord's perpendicular, vanishing
// exactly at both endpoints so p(0)=p0 and p(1)=p1 regardless of curvature.
// sign is +1 or -1, chosen once per leg by the caller (submovement planner)
// to vary which side the path bows toward.
//
// jitter, when non-nil, is sampled once per output point and added on top of
// the curvature offset as a small smoothed perturbation (SPEC_FULL.md §0's
// optional micro-jitter supplement); pass nil to disable it.
func GeneratePath(profile Profile, p0, p1 Point, curvature, sign float64, jitter func(s float64) float64) []PathPoint {
	n := len(profile.S)
	out := make([]PathPoint, n)

	chord := p1.Sub(p0)
	legLength := chord.Mag()
	perp := chord.Perp()
	c := attenuatedCurvature(curvature, legLength)

	for i, s := range profile.S {
		straight := p0.Lerp(p1, s)

		bulge := c * legLength * sign * 4 * s * (1 - s)
		offset := perp.Mul(bulge)

		if jitter != nil {
			offset = offset.Add(perp.Mul(jitter(s)))
		}

		pos := straight.Add(offset)
		if s <= 0 {
			pos = p0
		}
		if s >= 1 {
			pos = p1
		}

		out[i] = PathPoint{Pos: pos, S: s, Curve: bulge}
	}

	return out
}

// PathLength returns the polyline length through pts, the denominator
// diagnostics uses for the straightness index (spec.md §4.8).
func PathLength(pts []PathPoint) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Pos.Dist(pts[i].Pos)
	}
	return total
}
