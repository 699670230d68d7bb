package neuromotor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 4}
	b := Point{X: 1, Y: 2}

	assert.Equal(t, Point{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, Point{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, Point{X: 6, Y: 8}, a.Mul(2))
	assert.InDelta(t, 5.0, a.Mag(), 1e-9)
}

func TestPointDist(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, a.Dist(b), 1e-9)
}

func TestPointNormalize(t *testing.T) {
	v := Point{X: 3, Y: 4}
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Mag(), 1e-9)

	zero := Point{}
	assert.Equal(t, Point{}, zero.Normalize())
}

func TestPointPerpIsOrthogonal(t *testing.T) {
	v := Point{X: 5, Y: 0}
	p := v.Perp()
	dot := v.X*p.X + v.Y*p.Y
	assert.InDelta(t, 0.0, dot, 1e-9)
	assert.InDelta(t, 1.0, p.Mag(), 1e-9)
}

func TestPointLerp(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 20}
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Point{X: 5, Y: 10}, a.Lerp(b, 0.5))
}

func TestPointFinite(t *testing.T) {
	assert.True(t, Point{X: 1, Y: 2}.Finite())
	assert.False(t, Point{X: math.NaN(), Y: 0}.Finite())
	assert.False(t, Point{X: math.Inf(1), Y: 0}.Finite())
}

func TestTargetEffectiveWidth(t *testing.T) {
	tgt := Target{Center: Point{}, Width: 80, Height: 20}
	assert.InDelta(t, 20, tgt.EffectiveWidth(), 1e-9)
}

func TestTargetContains(t *testing.T) {
	tgt := Target{Center: Point{X: 100, Y: 100}, Width: 40, Height: 20}
	assert.True(t, tgt.Contains(Point{X: 100, Y: 100}))
	assert.True(t, tgt.Contains(Point{X: 119, Y: 109}))
	assert.False(t, tgt.Contains(Point{X: 121, Y: 100}))
	assert.False(t, tgt.Contains(Point{X: 100, Y: 111}))
}
