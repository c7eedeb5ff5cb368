package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Controls is the per-frame input record, read once at the start of ship
// movement.
type Controls struct {
	Left, Right bool
	Thrust      bool
	Reverse     bool
	Fire        bool
	Utility     bool // modifier: with Fire launches ordnance, with Thrust boosts
}

// Ship is the player's craft. It has no pool slot; impacts report pool.Ship.
type Ship struct {
	Pos, Vel   geom.Vector
	Angle      float64
	Radius     float64
	Invincible float64 // seconds of damage immunity left
	Reload     float64 // seconds until the gun may fire again
	Thrusting  bool
	Dead       bool

	hull geom.Polygon
}

func newShip(radius float64) Ship {
	return Ship{
		Radius: radius,
		hull: geom.Poly(
			geom.V(1.2*radius, 0),
			geom.V(-0.8*radius, 0.8*radius),
			geom.V(-0.8*radius, -0.8*radius),
		),
	}
}

// Hull is the ship's outline in its local frame, used when other things are
// tested against the ship.
func (sh *Ship) Hull() geom.Polygon { return sh.hull }

// Transform places the hull in the world.
func (sh *Ship) Transform() geom.Transform { return geom.Place(sh.Pos, sh.Angle) }

// Nose is the muzzle point.
func (sh *Ship) Nose() geom.Vector { return sh.Pos.Add(geom.Polar(1.3*sh.Radius, sh.Angle)) }

// PlaceShip moves the ship, zeroes its velocity and snaps the camera.
func (s *Space) PlaceShip(pos geom.Vector, angle float64) {
	s.Ship.Pos = pos
	s.Ship.Vel = geom.Zero
	s.Ship.Angle = geom.Mod2Pi(angle)
	s.Camera = pos
}

// --- Movement ---

const shipBounces = 3

// moveShip integrates input into velocity and velocity into position,
// resolving contacts along the way.
func (s *Space) moveShip(dt float64) {
	sh := &s.Ship
	if sh.Dead {
		return
	}
	c := s.Controls
	cfg := s.cfg.Ship

	if c.Left {
		sh.Angle = geom.Mod2Pi(sh.Angle - cfg.TurnRate*dt)
	}
	if c.Right {
		sh.Angle = geom.Mod2Pi(sh.Angle + cfg.TurnRate*dt)
	}

	sh.Thrusting = c.Thrust
	if c.Thrust {
		accel := cfg.Thrust
		if c.Utility && s.Player.Energy > 0 {
			accel *= cfg.BoostFactor
			s.Player.Energy = math.Max(0, s.Player.Energy-cfg.Recharge*2*dt)
		}
		sh.Vel = sh.Vel.Add(geom.Polar(accel*dt, sh.Angle))
		s.Sounds.Loop(SoundThrust)
	}
	if c.Reverse {
		if speed := sh.Vel.Norm(); speed > 0 {
			slowed := math.Max(0, speed-cfg.Reverse*dt)
			sh.Vel = sh.Vel.Mul(slowed / speed)
		}
	}
	if speed := sh.Vel.Norm(); speed > cfg.MaxSpeed {
		sh.Vel = sh.Vel.Mul(cfg.MaxSpeed / speed)
	}

	s.sweepShip(dt)

	if sh.Invincible > 0 {
		sh.Invincible = math.Max(0, sh.Invincible-dt)
	}
	s.Player.Energy = math.Min(s.Player.MaxEnergy, s.Player.Energy+cfg.Recharge*dt)
	s.Log.AddVerbose(s.Tick, "ship", "move", "pos",
		fmt.Sprintf("(%.1f,%.1f) v=%.1f", sh.Pos.X, sh.Pos.Y, sh.Vel.Norm()), sh.Vel.Norm())
}

// sweepShip moves the ship's circle along its velocity, bouncing off
// whatever it meets. A contact with a door's inside surface starts the
// doorway transition and ends the sweep.
func (s *Space) sweepShip(dt float64) {
	sh := &s.Ship
	remaining := 1.0
	for i := 0; i < shipBounces && remaining > 0; i++ {
		delta := sh.Vel.Mul(dt * remaining)
		imp, ok := s.CircleImpact(sh.Radius, sh.Pos, delta, ImpactShip.Mask(), pool.Null)
		if !ok {
			sh.Pos = sh.Pos.Add(delta)
			return
		}
		sh.Pos = imp.Pos.Add(imp.Normal.Mul(1e-6))
		remaining *= 1 - imp.T
		normalSpeed := -sh.Vel.Dot(imp.Normal)

		switch imp.Type {
		case ImpactWall:
			sh.Vel = sh.Vel.Bounce(imp.Normal, imp.Wall.Data.Elasticity)
			if over := normalSpeed - s.cfg.Ship.BounceSpeed; over > 0 {
				s.HurtShip(over*imp.Wall.Data.Impact, content.DamageNormal)
			}
			s.Sounds.Play(SoundBump)
		case ImpactDoorOutside:
			sh.Vel = sh.Vel.Bounce(imp.Normal, 0.5)
			s.Sounds.Play(SoundBump)
		case ImpactDoorInside:
			s.enterDoorway(imp.Door)
			return
		case ImpactBaddie:
			sh.Vel = sh.Vel.Bounce(imp.Normal, 0.5)
			if imp.Baddie.Data.Contact > 0 {
				s.HurtShip(imp.Baddie.Data.Contact, content.DamageNormal)
			}
		default:
			panic(fmt.Sprintf("game: ship swept into %s", imp.Type))
		}
		if sh.Dead || s.Mode.Kind != ModeNormal {
			return
		}
	}
}

// --- Weapons ---

// shipFire launches the active gun, or ordnance with the utility modifier.
func (s *Space) shipFire(dt float64) {
	sh := &s.Ship
	if sh.Reload > 0 {
		sh.Reload = math.Max(0, sh.Reload-dt)
	}
	if sh.Dead || !s.Controls.Fire || sh.Reload > 0 {
		return
	}
	kind := s.Player.ActiveGun()
	if s.Controls.Utility {
		kind = s.Player.Ordnance
	}
	if kind == content.ProjNone {
		return
	}
	d := s.stats.Projectile(kind)
	if !s.Player.spendAmmo(d) {
		s.Sounds.Play(SoundDryFire)
		sh.Reload = d.Cooldown
		return
	}
	if _, ok := s.LaunchProjectile(kind, false, pool.Ship, sh.Nose(), sh.Angle); ok {
		s.Sounds.Play(SoundShot)
	}
	sh.Reload = d.Cooldown
}

// --- Damage ---

// HurtShip applies damage to the player's shields, honoring the
// invincibility window. Heat bypasses the window.
func (s *Space) HurtShip(amount float64, flags content.DamageFlags) {
	sh := &s.Ship
	if sh.Dead || amount <= 0 {
		return
	}
	heat := flags.Has(content.DamageHeat)
	if !heat && sh.Invincible > 0 {
		return
	}
	s.Player.Shields -= amount
	if !heat {
		sh.Invincible = s.cfg.Ship.Invincibility
		s.Sounds.Play(SoundHurt)
		s.Log.Add(s.Tick, "ship", "ship", "hurt",
			fmt.Sprintf("%.1f %s shields=%.1f", amount, flags, s.Player.Shields), amount)
	}
	if s.Player.Shields <= 0 {
		s.killShip()
	}
}

func (s *Space) killShip() {
	sh := &s.Ship
	sh.Dead = true
	sh.Vel = geom.Zero
	s.Player.Shields = 0
	s.SpawnBurst(ParticleDebris, sh.Pos, 24, 160)
	s.SpawnBurst(ParticleFlash, sh.Pos, 6, 40)
	s.Sounds.Play(SoundShipDeath)
	s.Log.Add(s.Tick, "ship", "ship", "death", fmt.Sprintf("room %d", s.Room), 0)
	s.Metrics.shipDied()
	s.setMode(ModeGameOver, PhaseBoom)
}
