package game

import (
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// LineOfSight reports whether a ray from `from` reaches the ship before
// anything else. self is skipped so a baddie can look out of its own hull.
func (s *Space) LineOfSight(from geom.Vector, self pool.UID) bool {
	if s.Ship.Dead {
		return false
	}
	imp, ok := s.RayImpact(from, s.Ship.Pos.Sub(from), 0, self)
	return ok && imp.Type == ImpactShip
}

// rayAABBHitT returns the first segment parameter t in [0,1] where the
// segment start->start+delta enters the box. The bool is false when no hit
// exists. A start inside the box hits at t=0.
func rayAABBHitT(start, delta, lo, hi geom.Vector) (float64, bool) {
	tMin := 0.0
	tMax := 1.0

	// X slab
	if math.Abs(delta.X) < 1e-12 {
		if start.X < lo.X || start.X > hi.X {
			return 0, false
		}
	} else {
		invD := 1.0 / delta.X
		t1 := (lo.X - start.X) * invD
		t2 := (hi.X - start.X) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Y slab
	if math.Abs(delta.Y) < 1e-12 {
		if start.Y < lo.Y || start.Y > hi.Y {
			return 0, false
		}
	} else {
		invD := 1.0 / delta.Y
		t1 := (lo.Y - start.Y) * invD
		t2 := (hi.Y - start.Y) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}

// segmentNearBox is the broad phase for linear probes: does the segment
// cross the square of half-size radius around center?
func segmentNearBox(start, delta, center geom.Vector, radius float64) bool {
	r := geom.V(radius, radius)
	_, hit := rayAABBHitT(start, delta, center.Sub(r), center.Add(r))
	return hit
}
