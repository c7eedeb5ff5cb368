package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

const (
	chaserProbe  = 80.0 // look-ahead for wall avoidance
	fireAlign    = 0.1  // radians a barrel may be off target and still fire
	wanderScale  = 0.35 // noise samples per second
	haulerReach  = 240.0
	freezeDecay  = 0.5
	flashDecay   = 4.0
	muzzleMargin = 2.0
)

// updateBaddies runs every live baddie's behavior for one tick.
func (s *Space) updateBaddies(dt float64) {
	for i := range s.Baddies {
		b := &s.Baddies[i]
		if !b.Live() {
			continue
		}
		b.Armor = math.Max(0, b.Armor-flashDecay*dt)
		b.Frozen = math.Max(0, b.Frozen-freezeDecay*dt)
		b.Cooldown -= dt
		step := dt * (1 - b.Frozen)

		switch b.Data.Behavior {
		case content.BehaviorTurret:
			s.runTurret(b, step)
		case content.BehaviorZipper:
			s.runZipper(b, step)
		case content.BehaviorChaser:
			s.runChaser(b, step)
		case content.BehaviorWanderer:
			s.runWanderer(b, step)
		case content.BehaviorOrbiter:
			s.runOrbiter(b, step)
		case content.BehaviorHauler:
			s.runHauler(b, step)
		case content.BehaviorBox:
		default:
			panic(fmt.Sprintf("game: %s has unhandled behavior %s", b.Label(), b.Data.Behavior))
		}
	}
}

// shipVisible reports whether the ship is in range and unobstructed from b.
func (s *Space) shipVisible(b *Baddie) bool {
	if s.Ship.Dead || !geom.WithinDist(b.Pos, s.Ship.Pos, b.Data.Range) {
		return false
	}
	return s.LineOfSight(b.Pos, b.UID)
}

// moveBaddie sweeps b's body circle by delta, stopping at the first
// contact. Incorporeal baddies pass through everything. Cargo follows and
// never blocks its carrier.
func (s *Space) moveBaddie(b *Baddie, delta geom.Vector) (Impact, bool) {
	if delta.NormSq() == 0 {
		return Impact{}, false
	}
	if b.Data.Incorporeal {
		b.Pos = b.Pos.Add(delta)
		return Impact{}, false
	}
	imp, ok := s.impact(&probe{
		shape:  probeCircle,
		radius: b.Data.Polygon.BoundingRadius(),
		start:  b.Pos,
		delta:  delta,
	}, impactFilter{mask: ImpactShip.Mask(), self: b.UID, carried: &b.Cargo})
	moved := delta
	if ok {
		moved = imp.Pos.Add(imp.Normal.Mul(1e-6)).Sub(b.Pos)
	}
	b.Pos = b.Pos.Add(moved)
	s.moveCargo(b, moved, 0)
	return imp, ok
}

// fireAt launches b's weapon along angle from muzzle.
func (s *Space) fireAt(b *Baddie, muzzle geom.Vector, angle float64) {
	if _, ok := s.LaunchProjectile(b.Data.Weapon, true, b.UID, muzzle, angle); ok {
		s.Sounds.Play(SoundEnemyShot)
	}
}

// runTurret swings each barrel toward the ship and fires when aligned.
func (s *Space) runTurret(b *Baddie, step float64) {
	d := b.Data
	visible := s.shipVisible(b)
	if len(d.Components) == 0 {
		if visible && b.Cooldown <= 0 && d.Weapon != content.ProjNone {
			s.fireAt(b, b.Pos, s.Ship.Pos.Sub(b.Pos).Theta())
			b.Cooldown = d.Cooldown
		}
		return
	}
	aligned := false
	xf := b.Transform()
	for c := range d.Components {
		comp := &b.Components[c]
		goal := comp.Angle
		if visible {
			pivot := xf.ToWorld(comp.Pos)
			goal = geom.Mod2Pi(s.Ship.Pos.Sub(pivot).Theta() - b.Angle)
		}
		comp.Angle = geom.AngleTowards(comp.Angle, d.TurnRate*step, goal)
		if visible && math.Abs(geom.AngleDelta(comp.Angle, goal)) < fireAlign {
			aligned = true
		}
	}
	if !aligned || b.Cooldown > 0 || d.Weapon == content.ProjNone {
		return
	}
	for c := range d.Components {
		cxf := b.ComponentTransform(c)
		reach := d.Components[c].Polygon.BoundingRadius() + muzzleMargin
		s.fireAt(b, cxf.ToWorld(geom.V(reach, 0)), cxf.Angle)
	}
	b.Cooldown = d.Cooldown
}

// runZipper flies straight and reflects off whatever it meets.
func (s *Space) runZipper(b *Baddie, step float64) {
	if b.Vel.NormSq() == 0 {
		b.Vel = geom.Polar(b.Data.Speed, b.Angle)
	}
	imp, ok := s.moveBaddie(b, b.Vel.Mul(step))
	if ok {
		b.Vel = b.Vel.Bounce(imp.Normal, 1)
	}
	if b.Vel.NormSq() > 0 {
		b.Angle = b.Vel.Theta()
	}
}

// runChaser steers by State: toward the ship, back home, or away from the
// ship. A ray probe ahead turns it off walls.
func (s *Space) runChaser(b *Baddie, step float64) {
	d := b.Data
	goal := b.Angle
	moving := true
	switch b.State {
	case StateChase:
		if s.shipVisible(b) {
			goal = s.Ship.Pos.Sub(b.Pos).Theta()
		} else {
			moving = false
		}
	case StateReturn:
		to := b.Home.Sub(b.Pos)
		if to.Norm() < 4 {
			moving = false
		} else {
			goal = to.Theta()
		}
	case StateScatter:
		if away := b.Pos.Sub(s.Ship.Pos); away.NormSq() > 0 {
			goal = away.Theta()
		}
	default:
		panic(fmt.Sprintf("game: %s in unknown state %d", b.Label(), b.State))
	}

	if imp, ok := s.RayImpact(b.Pos, geom.Polar(chaserProbe, b.Angle), ImpactShip.Mask()|ImpactBaddie.Mask(), b.UID); ok {
		// Turn along the surface, whichever way is closer to the goal.
		left := imp.Normal.RotLeft90().Theta()
		right := imp.Normal.RotRight90().Theta()
		if math.Abs(geom.AngleDelta(left, goal)) < math.Abs(geom.AngleDelta(right, goal)) {
			goal = left
		} else {
			goal = right
		}
	}
	b.Angle = geom.AngleTowards(b.Angle, d.TurnRate*step, goal)
	if !moving {
		b.Vel = geom.Zero
		return
	}
	b.Vel = geom.Polar(d.Speed, b.Angle)
	if imp, ok := s.moveBaddie(b, b.Vel.Mul(step)); ok {
		// Slide: keep the tangential part for next tick.
		b.Vel = b.Vel.Sub(b.Vel.Project(imp.Normal))
	}
}

// runWanderer drifts on a noise-driven heading and takes potshots.
func (s *Space) runWanderer(b *Baddie, step float64) {
	d := b.Data
	if b.State == StateReturn {
		if to := b.Home.Sub(b.Pos); to.Norm() > 4 {
			b.Angle = geom.AngleTowards(b.Angle, d.TurnRate*step, to.Theta())
		}
	} else {
		drift := s.noise.Noise1D(s.Time*wanderScale + float64(b.UID.Index())*7.3)
		goal := geom.Mod2Pi(b.Param + drift*math.Pi)
		b.Angle = geom.AngleTowards(b.Angle, d.TurnRate*step, goal)
	}
	b.Vel = geom.Polar(d.Speed, b.Angle)
	if imp, ok := s.moveBaddie(b, b.Vel.Mul(step)); ok {
		b.Vel = b.Vel.Bounce(imp.Normal, 1)
		b.Angle = b.Vel.Theta()
		b.Param = b.Angle
	}
	if d.Weapon != content.ProjNone && b.Cooldown <= 0 && s.shipVisible(b) {
		s.fireAt(b, b.Pos, s.Ship.Pos.Sub(b.Pos).Theta())
		b.Cooldown = d.Cooldown
	}
}

// runOrbiter circles Home at its spawn distance, reversing when it bumps
// into something. Param is the direction: +1 counter-clockwise.
func (s *Space) runOrbiter(b *Baddie, step float64) {
	r := geom.Dist(b.Pos, b.Home)
	if r == 0 {
		return
	}
	spin := math.Copysign(b.Data.Speed*step/r, b.Param)
	imp, ok := s.ArcCircleImpact(b.Data.Polygon.BoundingRadius(), b.Pos, b.Home, spin, ImpactShip.Mask(), b.UID)
	if ok {
		spin *= imp.T
		b.Param = -b.Param
	}
	b.Pos = b.Home.Add(b.Pos.Sub(b.Home).Rotate(spin))
	b.Angle = geom.Mod2Pi(b.Angle + spin)
}

// runHauler plods forward dragging its cargo, turning back when blocked or
// when it has strayed haulerReach from home.
func (s *Space) runHauler(b *Baddie, step float64) {
	d := b.Data
	if b.Vel.NormSq() == 0 {
		b.Vel = geom.Polar(d.Speed, b.Angle)
	}
	_, blocked := s.moveBaddie(b, b.Vel.Mul(step))
	far := !geom.WithinDist(b.Pos, b.Home, haulerReach) && b.Pos.Sub(b.Home).Dot(b.Vel) > 0
	if blocked || far {
		b.Angle = geom.Mod2Pi(b.Angle + math.Pi)
		b.Vel = b.Vel.Neg()
		s.moveCargo(b, geom.Zero, math.Pi)
	}
}
