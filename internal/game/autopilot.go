package game

import (
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Autopilot flies the ship without a human: it hunts the nearest visible
// baddie, then heads for an unvisited door once the room is clear. The
// headless runner and scenario tests use it.
type Autopilot struct {
	AimTolerance float64 // radians off target at which it fires
	Standoff     float64 // preferred distance to a target
	OrdnanceAt   float64 // fire ordnance at targets with at least this much health

	target  geom.Vector
	hunting bool
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{AimTolerance: 0.12, Standoff: 220, OrdnanceAt: 50}
}

// Target is the point the autopilot last steered at, and whether it was a
// baddie.
func (a *Autopilot) Target() (geom.Vector, bool) { return a.target, a.hunting }

// Controls picks the input for this tick.
func (a *Autopilot) Controls(s *Space) Controls {
	var c Controls
	sh := &s.Ship
	if sh.Dead || s.Mode.Kind != ModeNormal {
		return c
	}

	b := a.nearestVisible(s)
	a.hunting = b != nil
	switch {
	case b != nil:
		a.target = b.Pos
	default:
		d := a.exitDoor(s)
		if d == nil {
			return c
		}
		a.target = d.Pos
	}

	to := a.target.Sub(sh.Pos)
	dist := to.Norm()
	off := geom.AngleDelta(sh.Angle, to.Theta())
	c.Left = off < -0.02
	c.Right = off > 0.02

	if !a.hunting {
		c.Thrust = math.Abs(off) < 0.5
		return c
	}
	aligned := math.Abs(off) < a.AimTolerance
	c.Fire = aligned
	c.Utility = aligned && b.Health >= a.OrdnanceAt && s.Player.Rockets+s.Player.Bombs > 0
	switch {
	case dist > a.Standoff*1.3 && math.Abs(off) < 0.6:
		c.Thrust = true
	case dist < a.Standoff*0.6:
		c.Reverse = true
	}
	return c
}

func (a *Autopilot) nearestVisible(s *Space) *Baddie {
	var best *Baddie
	bestD := math.Inf(1)
	for i := range s.Baddies {
		b := &s.Baddies[i]
		if !b.Live() || b.Data.Incorporeal {
			continue
		}
		d := geom.Dist(b.Pos, s.Ship.Pos)
		if d >= bestD || !s.clearShot(b) {
			continue
		}
		best, bestD = b, d
	}
	return best
}

// clearShot reports whether a ray from the ship reaches b before anything else.
func (s *Space) clearShot(b *Baddie) bool {
	imp, ok := s.RayImpact(s.Ship.Pos, b.Pos.Sub(s.Ship.Pos), ImpactShip.Mask(), pool.Null)
	return ok && imp.Type == ImpactBaddie && imp.UID == b.UID
}

// exitDoor prefers a door to a room not yet visited.
func (a *Autopilot) exitDoor(s *Space) *Door {
	var fallback *Door
	for i := range s.Doors {
		d := &s.Doors[i]
		if !d.Live() {
			continue
		}
		if !s.Player.Visited(d.Dest) {
			return d
		}
		if fallback == nil {
			fallback = d
		}
	}
	return fallback
}
