package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayHitsPolygonFromOutside(t *testing.T) {
	h, ok := RayHitsPolygon(unitSquare, V(-5, 0), V(10, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.4, h.T, eps)
	assertVec(t, V(-1, 0), h.Pos)
	assertVec(t, V(-1, 0), h.Normal)
}

func TestRayHitPointLiesOnEdge(t *testing.T) {
	hex := hexagon(2)
	start := V(-6, -1.3)
	for ang := -0.6; ang <= 0.6; ang += 0.05 {
		delta := Polar(12, ang)
		h, ok := RayHitsPolygon(hex, start, delta)
		if !ok {
			continue
		}
		require.GreaterOrEqual(t, h.T, 0.0)
		require.LessOrEqual(t, h.T, 1.0)
		assertVec(t, start.Add(delta.Mul(h.T)), h.Pos)
		onEdge := false
		for i := range hex.Vertices {
			a, b := hex.Edge(i)
			if SegmentDist(h.Pos, a, b) < 1e-9 {
				onEdge = true
			}
		}
		assert.True(t, onEdge, "hit %v not on boundary", h.Pos)
		assert.InDelta(t, 1.0, h.Normal.Norm(), 1e-9)
	}
}

func TestRayStartingInsideReportsExit(t *testing.T) {
	h, ok := RayHitsPolygon(unitSquare, V(0, 0), V(5, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.2, h.T, eps)
	assertVec(t, V(1, 0), h.Normal)
}

func TestRayMisses(t *testing.T) {
	_, ok := RayHitsPolygon(unitSquare, V(-5, 3), V(10, 0))
	assert.False(t, ok)
	_, ok = RayHitsPolygon(unitSquare, V(-5, 0), V(3, 0))
	assert.False(t, ok, "too short")
	_, ok = RayHitsPolygon(unitSquare, V(-1, 0), Zero)
	assert.False(t, ok, "zero delta never hits")
}

func TestRayStartingOnBoundaryHitsAtZero(t *testing.T) {
	h, ok := RayHitsPolygon(unitSquare, V(-1, 0.5), V(-3, 0))
	require.True(t, ok)
	assert.Equal(t, 0.0, h.T)
}

func TestRayThroughVertexPrefersLowerEdge(t *testing.T) {
	// Edge 0 (bottom) and edge 3 (left) both meet the ray at (-1,-1).
	h, ok := RayHitsPolygon(unitSquare, V(-5, -5), V(10, 10))
	require.True(t, ok)
	assert.InDelta(t, 0.4, h.T, eps)
	assertVec(t, V(0, -1), h.Normal)
}

func TestRayHitsPolygonTrans(t *testing.T) {
	xf := Place(V(10, 0), math.Pi/2)
	h, ok := RayHitsPolygonTrans(unitSquare, xf, V(0, 0.5), V(20, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.45, h.T, 1e-9)
	assertVec(t, V(9, 0.5), h.Pos)
	assertVec(t, V(-1, 0), h.Normal)
}

func TestRayHitsSegmentFacesIncoming(t *testing.T) {
	h, ok := RayHitsSegment(V(0, -1), V(0, 1), V(-2, 0), V(4, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.5, h.T, eps)
	assertVec(t, V(-1, 0), h.Normal)

	h, ok = RayHitsSegment(V(0, -1), V(0, 1), V(2, 0), V(-4, 0))
	require.True(t, ok)
	assertVec(t, V(1, 0), h.Normal)
}

func TestRayHitsCircle(t *testing.T) {
	h, ok := RayHitsCircle(1, Zero, V(-5, 0), V(10, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.4, h.T, eps)
	assertVec(t, V(-1, 0), h.Normal)

	h, ok = RayHitsCircle(1, Zero, Zero, V(4, 0))
	require.True(t, ok, "start inside reports exit")
	assert.InDelta(t, 0.25, h.T, eps)

	_, ok = RayHitsCircle(1, Zero, V(-5, 2), V(10, 0))
	assert.False(t, ok)
	_, ok = RayHitsCircle(1, Zero, V(-5, 0), Zero)
	assert.False(t, ok)
}

func TestCircleHitsCircle(t *testing.T) {
	h, ok := CircleHitsCircle(1, 1, Zero, V(-5, 0), V(10, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.3, h.T, eps)
	assertVec(t, V(-2, 0), h.Pos)
	assertVec(t, V(-1, 0), h.Contact)

	_, ok = CircleHitsCircle(1, 1, Zero, V(-1.5, 0), V(-5, 0))
	assert.False(t, ok, "moving away")
}

func TestCircleHitsPolygonEdge(t *testing.T) {
	h, ok := CircleHitsPolygon(unitSquare, 1, V(-5, 0), V(10, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.3, h.T, eps)
	assertVec(t, V(-2, 0), h.Pos)
	assertVec(t, V(-1, 0), h.Contact)
	assertVec(t, V(-1, 0), h.Normal)
}

func TestCircleHitsPolygonCorner(t *testing.T) {
	h, ok := CircleHitsPolygon(unitSquare, 1, V(-5, 1.5), V(10, 0))
	require.True(t, ok)
	x := -1 - math.Sqrt(0.75)
	assert.InDelta(t, (x+5)/10, h.T, 1e-9)
	assertVec(t, V(-1, 1), h.Contact)
	assertVec(t, V(-math.Sqrt(0.75), 0.5), h.Normal)
}

func TestCircleHitsPolygonDegenerate(t *testing.T) {
	_, ok := CircleHitsPolygon(unitSquare, 0, V(-5, 0), V(10, 0))
	assert.False(t, ok, "zero radius")
	_, ok = CircleHitsPolygon(unitSquare, 1, V(-5, 0), Zero)
	assert.False(t, ok, "zero delta")
	_, ok = CircleHitsPolygon(unitSquare, 1, V(-1.5, 0), V(-5, 0))
	assert.False(t, ok, "touching and backing away")
}

func TestCircleHitsPolygonTrans(t *testing.T) {
	xf := Place(V(0, 10), math.Pi)
	h, ok := CircleHitsPolygonTrans(unitSquare, xf, 0.5, V(0, 0), V(0, 20))
	require.True(t, ok)
	assertVec(t, V(0, 8.5), h.Pos)
	assertVec(t, V(0, -1), h.Normal)
}
