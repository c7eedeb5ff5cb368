package game

import (
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// ParticleKind is a cosmetic effect. Particles never collide.
type ParticleKind uint8

const (
	ParticleNone ParticleKind = iota
	ParticleSpark
	ParticleSmoke
	ParticleDebris
	ParticleFlash
	ParticleBubble
)

var particleNames = [...]string{"none", "spark", "smoke", "debris", "flash", "bubble"}

func (k ParticleKind) String() string {
	if int(k) < len(particleNames) {
		return particleNames[k]
	}
	return "particle(?)"
}

type Particle struct {
	Kind     ParticleKind
	Pos, Vel geom.Vector
	Age      float64
	Lifetime float64
}

func (p *Particle) Live() bool { return p.Kind != ParticleNone }

// InsertParticle adds one particle. A full pool drops it.
func (s *Space) InsertParticle(kind ParticleKind, pos, vel geom.Vector, lifetime float64) (*Particle, bool) {
	i, ok := pool.FirstFree(s.Particles[:])
	if !ok {
		s.poolFull("particle")
		return nil, false
	}
	p := &s.Particles[i]
	*p = Particle{Kind: kind, Pos: pos, Vel: vel, Lifetime: lifetime}
	return p, true
}

// SpawnBurst scatters n particles from pos at up to speed.
func (s *Space) SpawnBurst(kind ParticleKind, pos geom.Vector, n int, speed float64) {
	life := s.cfg.Sim.ParticleLife
	for i := 0; i < n; i++ {
		vel := geom.Polar(speed*(0.3+0.7*s.rng.Float64()), s.rng.Float64()*2*math.Pi)
		if _, ok := s.InsertParticle(kind, pos, vel, life*(0.5+s.rng.Float64())); !ok {
			return
		}
	}
}

// ageTransients drifts particles and expires particles and pickups.
func (s *Space) ageTransients(dt float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Live() {
			continue
		}
		p.Age += dt
		if p.Age >= p.Lifetime {
			p.Kind = ParticleNone
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	}
	maxAge := s.cfg.Sim.PickupLifetime
	for i := range s.Pickups {
		p := &s.Pickups[i]
		if !p.Live() {
			continue
		}
		p.Age += dt
		if p.Age >= maxAge {
			s.RemovePickup(p)
		}
	}
}
