package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod2PiRangeAndIdempotence(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.173 {
		r := Mod2Pi(x)
		require.Greater(t, r, -math.Pi, "Mod2Pi(%g)", x)
		require.LessOrEqual(t, r, math.Pi, "Mod2Pi(%g)", x)
		assert.Equal(t, r, Mod2Pi(r), "Mod2Pi not idempotent at %g", x)
		assert.InDelta(t, math.Sin(x), math.Sin(r), 1e-9)
		assert.InDelta(t, math.Cos(x), math.Cos(r), 1e-9)

		nn := Mod2PiNonNeg(x)
		require.GreaterOrEqual(t, nn, 0.0)
		require.Less(t, nn, 2*math.Pi)

		np := Mod2PiNonPos(x)
		require.LessOrEqual(t, np, 0.0)
		require.Greater(t, np, -2*math.Pi)
	}
	assert.Equal(t, math.Pi, Mod2Pi(-math.Pi))
	assert.Equal(t, 0.0, Mod2PiNonNeg(0))
	assert.Equal(t, 0.0, Mod2PiNonPos(0))
}

func TestAngleTowardsConverges(t *testing.T) {
	cur := 0.0
	steps := 0
	for cur != 1.0 {
		next := AngleTowards(cur, 0.25, 1.0)
		require.LessOrEqual(t, next, 1.0, "overshoot at step %d", steps)
		require.Greater(t, next, cur)
		cur = next
		steps++
		require.Less(t, steps, 10)
	}
	assert.Equal(t, 4, steps)
}

func TestAngleTowardsWrapsShortWay(t *testing.T) {
	cur := 3.0
	steps := 0
	for cur != -3.0 {
		cur = AngleTowards(cur, 0.1, -3.0)
		steps++
		require.Less(t, steps, 10)
	}
	// 2pi-6 is about 0.283, so three steps of 0.1 across the seam.
	assert.Equal(t, 3, steps)
}

func TestAngleTowardsWithinReachReturnsGoal(t *testing.T) {
	assert.Equal(t, 0.7, AngleTowards(0.5, 0.3, 0.7))
	assert.Equal(t, 0.5, AngleTowards(0.5, 0, 0.5))
	require.Panics(t, func() { AngleTowards(0, -0.1, 1) })
}

func TestAngleDelta(t *testing.T) {
	assert.InDelta(t, 0.2, AngleDelta(math.Pi-0.1, -math.Pi+0.1), 1e-9)
	assert.InDelta(t, -0.5, AngleDelta(1.0, 0.5), 1e-9)
}
