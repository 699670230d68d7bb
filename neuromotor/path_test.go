package neuromotor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePathEndpointsExact(t *testing.T) {
	p0 := Point{X: 10, Y: 10}
	p1 := Point{X: 200, Y: 150}
	profile := GenerateProfile(0.5, 60, 0.42)

	pts := GeneratePath(profile, p0, p1, 0.2, 1, nil)
	assert.Equal(t, p0, pts[0].Pos)
	assert.Equal(t, p1, pts[len(pts)-1].Pos)
}

func TestGeneratePathZeroCurvatureIsStraight(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 100, Y: 0}
	profile := GenerateProfile(0.4, 60, 0.42)

	pts := GeneratePath(profile, p0, p1, 0, 1, nil)
	for _, pt := range pts {
		assert.InDelta(t, 0.0, pt.Pos.Y, 1e-9)
	}
}

func TestGeneratePathCurvatureBulgesAwayFromChord(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 100, Y: 0}
	profile := GenerateProfile(0.4, 60, 0.42)

	pts := GeneratePath(profile, p0, p1, 0.3, 1, nil)
	mid := pts[len(pts)/2]
	assert.NotEqual(t, 0.0, mid.Pos.Y)
}

func TestAttenuatedCurvatureBelowThreshold(t *testing.T) {
	full := attenuatedCurvature(0.2, 40)
	half := attenuatedCurvature(0.2, 20)
	zero := attenuatedCurvature(0.2, 0)

	assert.InDelta(t, 0.2, full, 1e-9)
	assert.InDelta(t, 0.1, half, 1e-9)
	assert.InDelta(t, 0.0, zero, 1e-9)
}

func TestAttenuatedCurvatureAboveThresholdUnchanged(t *testing.T) {
	got := attenuatedCurvature(0.15, 200)
	assert.InDelta(t, 0.15, got, 1e-9)
}

func TestPathLengthAtLeastChordLength(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 300, Y: 0}
	profile := GenerateProfile(0.5, 60, 0.42)

	pts := GeneratePath(profile, p0, p1, 0.25, 1, nil)
	length := PathLength(pts)
	assert.GreaterOrEqual(t, length, p0.Dist(p1))
}
