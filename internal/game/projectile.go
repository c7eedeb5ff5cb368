package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Projectile is a shot in flight. Enemy shots hit the ship; the ship's
// shots hit baddies.
type Projectile struct {
	Kind  content.ProjectileKind
	Data  *content.ProjectileData
	Enemy bool

	Pos, Vel geom.Vector
	Angle    float64
	Age      float64

	// LastHit is skipped by the hit test so a piercing shot does not hit
	// the same object twice. It starts as the firer.
	LastHit pool.UID
	Firer   pool.UID
	Target  pool.UID
	Homing  bool
}

func (p *Projectile) Live() bool { return p.Kind != content.ProjNone }

// LaunchProjectile fires kind from pos along angle, or reports false when
// the pool is full.
func (s *Space) LaunchProjectile(kind content.ProjectileKind, enemy bool, firer pool.UID, pos geom.Vector, angle float64) (*Projectile, bool) {
	i, ok := pool.FirstFree(s.Projectiles[:])
	if !ok {
		s.poolFull("projectile")
		return nil, false
	}
	d := s.stats.Projectile(kind)
	p := &s.Projectiles[i]
	*p = Projectile{
		Kind:    kind,
		Data:    d,
		Enemy:   enemy,
		Pos:     pos,
		Vel:     geom.Polar(d.Speed, angle),
		Angle:   geom.Mod2Pi(angle),
		LastHit: firer,
		Firer:   firer,
	}
	if d.Flags.Has(content.ProjHoming) {
		p.Target = s.acquireTarget(p)
		p.Homing = p.Target != pool.Null
	}
	return p, true
}

// RemoveProjectile frees the slot.
func (s *Space) RemoveProjectile(p *Projectile) {
	mustLive(p.Live(), "projectile")
	p.Kind = content.ProjNone
}

// acquireTarget picks what a homing shot chases: the ship for enemy shots,
// the nearest solid baddie in front for the ship's.
func (s *Space) acquireTarget(p *Projectile) pool.UID {
	if p.Enemy {
		if s.Ship.Dead {
			return pool.Null
		}
		return pool.Ship
	}
	best, bestDist := pool.Null, math.Inf(1)
	reach := p.Data.Speed * p.Data.Lifetime
	for i := range s.Baddies {
		b := &s.Baddies[i]
		if !b.Live() || b.Data.Incorporeal {
			continue
		}
		to := b.Pos.Sub(p.Pos)
		d := to.Norm()
		if d > reach || d >= bestDist {
			continue
		}
		if d > 0 && math.Abs(geom.AngleDelta(p.Angle, to.Theta())) > math.Pi/2 {
			continue
		}
		best, bestDist = b.UID, d
	}
	return best
}

// steer turns a homing shot toward its target. A target that has gone
// ends homing for good.
func (s *Space) steer(p *Projectile, dt float64) {
	var goal geom.Vector
	if p.Target == pool.Ship {
		if s.Ship.Dead {
			p.Homing = false
			return
		}
		goal = s.Ship.Pos
	} else {
		b, ok := s.LookupBaddie(p.Target)
		if !ok {
			p.Homing = false
			return
		}
		goal = b.Pos
	}
	to := goal.Sub(p.Pos)
	if to.NormSq() == 0 {
		return
	}
	p.Angle = geom.AngleTowards(p.Angle, p.Data.TurnRate*dt, to.Theta())
	p.Vel = geom.Polar(p.Data.Speed, p.Angle)
}

// moveProjectiles advances every shot and resolves what it hits.
func (s *Space) moveProjectiles(dt float64) {
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if !p.Live() {
			continue
		}
		p.Age += dt
		if p.Age >= p.Data.Lifetime {
			s.expireProjectile(p)
			continue
		}
		if p.Homing {
			s.steer(p, dt)
		}
		delta := p.Vel.Mul(dt)
		if p.Data.Flags.Has(content.ProjNoHit) {
			p.Pos = p.Pos.Add(delta)
			continue
		}
		imp, ok := s.projectileImpact(p, delta)
		if !ok {
			p.Pos = p.Pos.Add(delta)
			continue
		}
		s.resolveHit(p, imp, delta)
	}
}

func (s *Space) projectileImpact(p *Projectile, delta geom.Vector) (Impact, bool) {
	skip := ImpactMask(0)
	if p.Enemy {
		skip |= ImpactBaddie.Mask()
	} else {
		skip |= ImpactShip.Mask()
	}
	if p.Data.Flags.Has(content.ProjPhased) {
		skip |= ImpactWall.Mask() | ImpactDoorOutside.Mask() | ImpactDoorInside.Mask()
	}
	if p.Data.Radius > 0 {
		return s.CircleImpact(p.Data.Radius, p.Pos, delta, skip, p.LastHit)
	}
	return s.RayImpact(p.Pos, delta, skip, p.LastHit)
}

// resolveHit applies a projectile's hit. Piercing shots survive hits on
// baddies and the ship and carry on.
func (s *Space) resolveHit(p *Projectile, imp Impact, delta geom.Vector) {
	d := p.Data
	s.SpawnBurst(ParticleSpark, imp.Contact, 4, 80)
	switch imp.Type {
	case ImpactShip:
		s.HurtShip(d.Damage, d.Damages)
	case ImpactBaddie:
		s.DamageBaddie(imp.Baddie, d.Damage, d.Damages)
	case ImpactDoorOutside, ImpactDoorInside:
		if !p.Enemy {
			s.hitDoor(imp.Door, d.Damages)
		}
		s.Sounds.Play(SoundRicochet)
	case ImpactWall:
		if !p.Enemy {
			s.damageWall(imp.Wall, d.Damages)
		}
		s.Sounds.Play(SoundRicochet)
	default:
		panic(fmt.Sprintf("game: projectile hit %s", imp.Type))
	}

	pierce := d.Flags.Has(content.ProjPiercing) && (imp.Type == ImpactBaddie || imp.Type == ImpactShip)
	if pierce {
		p.LastHit = imp.UID
		p.Pos = p.Pos.Add(delta)
		return
	}
	p.Pos = imp.Pos
	if d.Splash > 0 || d.ShrapnelCount > 0 {
		direct := pool.Null
		if imp.Type == ImpactShip || imp.Type == ImpactBaddie {
			direct = imp.UID
		}
		s.detonate(p, direct)
	}
	if p.Live() {
		s.RemoveProjectile(p)
	}
}

// expireProjectile handles a shot reaching the end of its life. Bombs go
// off; everything else fizzles.
func (s *Space) expireProjectile(p *Projectile) {
	if p.Data.Flags.Has(content.ProjNoHit) {
		s.detonate(p, pool.Null)
	} else {
		s.SpawnBurst(ParticleSmoke, p.Pos, 1, 10)
	}
	if p.Live() {
		s.RemoveProjectile(p)
	}
}

// detonate applies splash around p and throws its shrapnel. direct is the
// ship or baddie already hit, which splash skips.
func (s *Space) detonate(p *Projectile, direct pool.UID) {
	d := p.Data
	pos := p.Pos
	s.SpawnBurst(ParticleFlash, pos, 3, 30)
	s.SpawnBurst(ParticleSmoke, pos, 8, 60)
	s.Sounds.Play(SoundExplosion)

	if d.Splash > 0 {
		if p.Enemy {
			if direct != pool.Ship && geom.WithinDist(s.Ship.Pos, pos, d.Splash+s.Ship.Radius) {
				s.HurtShip(d.Damage, d.Damages)
			}
		} else {
			s.splashPlayerSide(pos, d, direct)
		}
	}
	for n := 0; n < d.ShrapnelCount; n++ {
		angle := p.Angle + 2*math.Pi*float64(n)/float64(d.ShrapnelCount)
		s.LaunchProjectile(d.Shrapnel, p.Enemy, pool.Null, pos, angle)
	}
}

func (s *Space) splashPlayerSide(pos geom.Vector, d *content.ProjectileData, direct pool.UID) {
	for i := range s.Baddies {
		b := &s.Baddies[i]
		if !b.Live() || b.UID == direct || b.Data.Incorporeal {
			continue
		}
		if geom.CircleTouchesPolygonTrans(b.Data.Polygon, b.Transform(), d.Splash, pos) {
			s.DamageBaddie(b, d.Damage, d.Damages)
		}
	}
	for i := range s.Walls {
		w := &s.Walls[i]
		if w.Live() && w.Data.Destructible() && geom.CircleTouchesPolygonTrans(w.Data.Polygon, w.Transform(), d.Splash, pos) {
			s.damageWall(w, d.Damages)
		}
	}
	for i := range s.Doors {
		dr := &s.Doors[i]
		if dr.Live() && geom.CircleTouchesPolygonTrans(DoorPanel, dr.Transform(), d.Splash, pos) {
			s.hitDoor(dr, d.Damages)
		}
	}
}
