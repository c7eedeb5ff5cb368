package geom

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

func mustFiniteScalar(x float64, op string) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("geom: non-finite angle %g in %s", x, op))
	}
}

// Mod2Pi normalizes a finite angle to (-pi, pi].
func Mod2Pi(theta float64) float64 {
	mustFiniteScalar(theta, "Mod2Pi")
	r := math.Mod(theta, twoPi)
	if r > math.Pi {
		r -= twoPi
	} else if r <= -math.Pi {
		r += twoPi
	}
	if r <= -math.Pi {
		r += twoPi
	}
	return r
}

// Mod2PiNonNeg normalizes a finite angle to [0, 2pi).
func Mod2PiNonNeg(theta float64) float64 {
	mustFiniteScalar(theta, "Mod2PiNonNeg")
	r := math.Mod(theta, twoPi)
	if r < 0 {
		r += twoPi
	}
	if r >= twoPi {
		r = 0
	}
	return r
}

// Mod2PiNonPos normalizes a finite angle to (-2pi, 0].
func Mod2PiNonPos(theta float64) float64 {
	mustFiniteScalar(theta, "Mod2PiNonPos")
	r := math.Mod(theta, twoPi)
	if r > 0 {
		r -= twoPi
	}
	if r <= -twoPi {
		r = 0
	}
	return r
}

// AngleDelta returns the signed shortest rotation from one angle to another.
func AngleDelta(from, to float64) float64 {
	return Mod2Pi(to - from)
}

// AngleTowards turns current toward goal by at most maxDelta radians along the
// shorter way round. If goal is within reach it is returned exactly.
func AngleTowards(current, maxDelta, goal float64) float64 {
	if maxDelta < 0 {
		panic(fmt.Sprintf("geom: negative turn limit %g", maxDelta))
	}
	d := Mod2Pi(goal - current)
	if math.Abs(d) <= maxDelta {
		return goal
	}
	if d > 0 {
		return Mod2Pi(current + maxDelta)
	}
	return Mod2Pi(current - maxDelta)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
