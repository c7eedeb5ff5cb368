package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcRayHitsPolygon(t *testing.T) {
	xf := Place(V(0, 5), 0)
	h, ok := ArcRayHitsPolygonTrans(unitSquare, xf, V(5, 0), Zero, math.Pi)
	require.True(t, ok)
	y := math.Sqrt(24)
	assert.InDelta(t, math.Atan2(y, 1), h.Angle, 1e-9)
	assert.InDelta(t, h.Angle/math.Pi, h.T, 1e-12)
	assertVec(t, V(1, y), h.Pos)
	assertVec(t, V(1, 0), h.Normal)
}

func TestArcRayRespectsSpinDirection(t *testing.T) {
	xf := Place(V(0, 5), 0)
	_, ok := ArcRayHitsPolygonTrans(unitSquare, xf, V(5, 0), Zero, -math.Pi)
	assert.False(t, ok, "clockwise sweep goes under the origin")
	_, ok = ArcRayHitsPolygonTrans(unitSquare, xf, V(5, 0), Zero, 1.0)
	assert.False(t, ok, "sweep stops short")
}

func TestArcCircleHitsPolygon(t *testing.T) {
	xf := Place(V(0, 5), 0)
	h, ok := ArcCircleHitsPolygonTrans(unitSquare, xf, 0.5, V(5, 0), Zero, math.Pi)
	require.True(t, ok)
	y := math.Sqrt(25 - 2.25)
	assert.InDelta(t, math.Atan2(y, 1.5), h.Angle, 1e-9)
	assertVec(t, V(1.5, y), h.Pos)
	assertVec(t, V(1, y), h.Contact)
	assertVec(t, V(1, 0), h.Normal)
}

func TestArcRayHitsCircle(t *testing.T) {
	h, ok := ArcRayHitsCircle(1, V(0, 5), V(5, 0), Zero, math.Pi)
	require.True(t, ok)
	x := math.Sqrt(0.99)
	assertVec(t, V(x, 4.9), h.Pos)
	assert.InDelta(t, math.Atan2(4.9, x), h.Angle, 1e-9)
	assert.InDelta(t, 1.0, h.Normal.Norm(), 1e-9)
}

func TestArcCircleHitsCircle(t *testing.T) {
	h, ok := ArcCircleHitsCircle(0.5, 1, V(0, 5), V(5, 0), Zero, math.Pi)
	require.True(t, ok)
	assert.InDelta(t, 1.5, Dist(h.Pos, V(0, 5)), 1e-9)
	assert.InDelta(t, 1.0, Dist(h.Contact, V(0, 5)), 1e-9)
	assert.Greater(t, h.Pos.X, 0.0, "first contact is on the near side")
}

func TestArcDegenerate(t *testing.T) {
	_, ok := ArcRayHitsPolygon(unitSquare, V(5, 0), Zero, 0)
	assert.False(t, ok, "zero spin")
	_, ok = ArcRayHitsCircle(1, V(0, 5), Zero, Zero, math.Pi)
	assert.False(t, ok, "start at spin centre")
	_, ok = ArcCircleHitsPolygon(unitSquare, 0, V(5, 0), Zero, math.Pi)
	assert.False(t, ok, "zero radius")
}
