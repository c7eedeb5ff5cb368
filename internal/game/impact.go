package game

import (
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// ImpactType is the category of object an impact query struck.
type ImpactType uint8

const (
	ImpactNone ImpactType = iota
	ImpactShip
	ImpactBaddie
	ImpactDoorOutside
	ImpactDoorInside
	ImpactWall
)

var impactNames = [...]string{"none", "ship", "baddie", "door_outside", "door_inside", "wall"}

func (t ImpactType) String() string {
	if int(t) < len(impactNames) {
		return impactNames[t]
	}
	return "impact(?)"
}

// ImpactMask is a set of categories to skip.
type ImpactMask uint8

// Mask returns the single-category mask for t.
func (t ImpactType) Mask() ImpactMask { return 1 << t }

// Impact is the nearest hit found by a query. Exactly one of Baddie, Door
// and Wall is set for those types. Component is the baddie part that was
// struck, or -1 for its body.
type Impact struct {
	geom.Hit
	Type      ImpactType
	UID       pool.UID
	Baddie    *Baddie
	Door      *Door
	Wall      *Wall
	Component int
}

type probeShape uint8

const (
	probeRay probeShape = iota
	probeCircle
	probeArc
)

// probe is one swept shape tested against every candidate.
type probe struct {
	shape  probeShape
	radius float64
	start  geom.Vector
	delta  geom.Vector
	center geom.Vector
	spin   float64
	orbit  float64 // distance from start to center
}

func (pr *probe) near(pos geom.Vector, r float64) bool {
	pad := r + pr.radius
	if pr.shape == probeArc {
		d := geom.Dist(pr.center, pos)
		return d >= pr.orbit-pad && d <= pr.orbit+pad
	}
	return segmentNearBox(pr.start, pr.delta, pos, pad)
}

func (pr *probe) test(poly geom.Polygon, xf geom.Transform) (geom.Hit, bool) {
	switch pr.shape {
	case probeRay:
		return geom.RayHitsPolygonTrans(poly, xf, pr.start, pr.delta)
	case probeCircle:
		return geom.CircleHitsPolygonTrans(poly, xf, pr.radius, pr.start, pr.delta)
	}
	if pr.radius > 0 {
		return geom.ArcCircleHitsPolygonTrans(poly, xf, pr.radius, pr.start, pr.center, pr.spin)
	}
	return geom.ArcRayHitsPolygonTrans(poly, xf, pr.start, pr.center, pr.spin)
}

// impactFilter is what a query ignores. self names the ship or a baddie and
// is only matched against those: uids from different pools may be equal.
// carried skips a hauler's cargo, each reference within its own pool.
type impactFilter struct {
	mask    ImpactMask
	self    pool.UID
	carried *[MaxCargo]CargoRef
}

func (f *impactFilter) carries(kind CargoKind, uid pool.UID) bool {
	if f.carried == nil {
		return false
	}
	for _, ref := range f.carried {
		if ref.Kind == kind && ref.UID == uid {
			return true
		}
	}
	return false
}

// RayImpact finds the nearest object a zero-radius ray from start along
// delta strikes. Categories in skip are ignored, as is the ship or baddie
// whose uid is skipUID.
func (s *Space) RayImpact(start, delta geom.Vector, skip ImpactMask, skipUID pool.UID) (Impact, bool) {
	return s.impact(&probe{shape: probeRay, start: start, delta: delta}, impactFilter{mask: skip, self: skipUID})
}

// CircleImpact is RayImpact for a circle of radius. A radius of zero
// degrades to a ray.
func (s *Space) CircleImpact(radius float64, start, delta geom.Vector, skip ImpactMask, skipUID pool.UID) (Impact, bool) {
	if radius <= 0 {
		return s.RayImpact(start, delta, skip, skipUID)
	}
	return s.impact(&probe{shape: probeCircle, radius: radius, start: start, delta: delta}, impactFilter{mask: skip, self: skipUID})
}

// ArcCircleImpact sweeps a circle (or a point when radius is zero) from
// start around center by spin radians. Hit.T is the fraction of spin used.
func (s *Space) ArcCircleImpact(radius float64, start, center geom.Vector, spin float64, skip ImpactMask, skipUID pool.UID) (Impact, bool) {
	return s.impact(&probe{
		shape:  probeArc,
		radius: math.Max(radius, 0),
		start:  start,
		center: center,
		spin:   spin,
		orbit:  geom.Dist(start, center),
	}, impactFilter{mask: skip, self: skipUID})
}

// impact scans the ship, doors, walls and baddies in that order. The
// earliest hit wins; on a tie the first one scanned is kept.
func (s *Space) impact(pr *probe, f impactFilter) (Impact, bool) {
	skip := f.mask
	var best Impact
	found := false
	consider := func(poly geom.Polygon, xf geom.Transform, fill func(*Impact)) {
		h, ok := pr.test(poly, xf)
		if !ok || (found && h.T >= best.T) {
			return
		}
		best = Impact{Hit: h, Component: -1}
		fill(&best)
		found = true
	}

	if skip&ImpactShip.Mask() == 0 && f.self != pool.Ship && !s.Ship.Dead {
		sh := &s.Ship
		if pr.near(sh.Pos, sh.hull.BoundingRadius()) {
			consider(sh.hull, sh.Transform(), func(im *Impact) {
				im.Type, im.UID = ImpactShip, pool.Ship
			})
		}
	}

	skipOut := skip&ImpactDoorOutside.Mask() != 0
	skipIn := skip&ImpactDoorInside.Mask() != 0
	if !skipOut || !skipIn {
		for i := range s.Doors {
			d := &s.Doors[i]
			if !d.Live() || f.carries(CargoDoor, d.UID) || !pr.near(d.Pos, doorRadius) {
				continue
			}
			xf := d.Transform()
			outside := func(im *Impact) { im.Type, im.UID, im.Door = ImpactDoorOutside, d.UID, d }
			if !skipOut {
				for _, jamb := range DoorJambs {
					consider(jamb, xf, outside)
				}
				if d.Blocking() {
					consider(DoorPanel, xf, outside)
				}
			}
			if !skipIn && !d.Blocking() {
				consider(DoorThreshold, xf, func(im *Impact) {
					im.Type, im.UID, im.Door = ImpactDoorInside, d.UID, d
				})
			}
		}
	}

	if skip&ImpactWall.Mask() == 0 {
		for i := range s.Walls {
			w := &s.Walls[i]
			if !w.Live() || f.carries(CargoWall, w.UID) || !pr.near(w.Pos, w.Data.Radius) {
				continue
			}
			consider(w.Data.Polygon, w.Transform(), func(im *Impact) {
				im.Type, im.UID, im.Wall = ImpactWall, w.UID, w
			})
		}
	}

	if skip&ImpactBaddie.Mask() == 0 {
		for i := range s.Baddies {
			b := &s.Baddies[i]
			if !b.Live() || b.Data.Incorporeal || b.UID == f.self || f.carries(CargoBaddie, b.UID) || !pr.near(b.Pos, b.Data.Radius) {
				continue
			}
			xf := b.Transform()
			consider(b.Data.Polygon, xf, func(im *Impact) {
				im.Type, im.UID, im.Baddie = ImpactBaddie, b.UID, b
			})
			for c := range b.Data.Components {
				consider(b.Data.Components[c].Polygon, xf.Compose(b.Components[c]), func(im *Impact) {
					im.Type, im.UID, im.Baddie, im.Component = ImpactBaddie, b.UID, b, c
				})
			}
		}
	}
	return best, found
}
