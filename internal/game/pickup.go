package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Pickup is a collectible dropped by a dead baddie.
type Pickup struct {
	Kind content.PickupKind
	Pos  geom.Vector
	Age  float64
}

func (p *Pickup) Live() bool { return p.Kind != content.PickupNone }

// InsertPickup drops a pickup at pos.
func (s *Space) InsertPickup(kind content.PickupKind, pos geom.Vector) (*Pickup, bool) {
	i, ok := pool.FirstFree(s.Pickups[:])
	if !ok {
		s.poolFull("pickup")
		return nil, false
	}
	p := &s.Pickups[i]
	*p = Pickup{Kind: kind, Pos: pos}
	return p, true
}

// RemovePickup frees the slot.
func (s *Space) RemovePickup(p *Pickup) {
	mustLive(p.Live(), "pickup")
	p.Kind = content.PickupNone
}

// ChoosePickup draws a drop from the kinds in drops. Kinds the player
// cannot use are left out of the draw; the weight of dropping nothing
// always takes part. An empty set draws nothing.
func (s *Space) ChoosePickup(drops content.PickupFlags) content.PickupKind {
	if drops == 0 {
		return content.PickupNone
	}
	table := s.stats.PickupTable()
	total := table.Nothing
	var candidates []content.PickupWeight
	for _, w := range table.Weights {
		if w.Weight <= 0 || !drops.Has(w.Kind) || !s.Player.CanUse(w.Kind) {
			continue
		}
		candidates = append(candidates, w)
		total += w.Weight
	}
	if total <= 0 {
		return content.PickupNone
	}
	r := s.rng.Intn(total)
	if r < table.Nothing {
		return content.PickupNone
	}
	r -= table.Nothing
	for _, w := range candidates {
		if r < w.Weight {
			return w.Kind
		}
		r -= w.Weight
	}
	panic("game: pickup draw ran past the table")
}

// collectPickups gives the ship every pickup it is touching.
func (s *Space) collectPickups() {
	if s.Ship.Dead {
		return
	}
	reach := s.cfg.Sim.PickupRadius + s.Ship.Radius
	for i := range s.Pickups {
		p := &s.Pickups[i]
		if !p.Live() || !geom.WithinDist(p.Pos, s.Ship.Pos, reach) {
			continue
		}
		s.Player.Collect(p.Kind)
		s.Sounds.Play(SoundPickup)
		s.Log.Add(s.Tick, "ship", "ship", "pickup", p.Kind.String(), 0)
		s.RemovePickup(p)
	}
}

// --- Damage ---

// DamageBaddie applies damage to b. Damage whose flags are all in the
// baddie's immunities only sparks. A baddie at or below zero health dies at
// once.
func (s *Space) DamageBaddie(b *Baddie, amount float64, flags content.DamageFlags) {
	if flags != 0 && flags&^b.Data.Immune == 0 {
		s.Sounds.Play(SoundDeflect)
		return
	}
	if flags.Has(content.DamageFreeze) && !b.Data.Immune.Has(content.DamageFreeze) {
		b.Frozen = 1
	}
	b.Health -= amount
	b.Armor = 1
	s.Log.AddVerbose(s.Tick, b.Label(), "baddie", "hurt", flags.String(), b.Health)
	if b.Health <= 0 {
		s.KillBaddie(b)
	}
}

// KillBaddie removes b, leaves its death effect and maybe a pickup, and
// runs its kill hook.
func (s *Space) KillBaddie(b *Baddie) {
	label, pos, angle, kind := b.Label(), b.Pos, b.Angle, b.Kind
	d := b.Data
	hook := b.OnKill
	s.RemoveBaddie(b)

	switch d.Death {
	case content.DeathBoom:
		s.SpawnBurst(ParticleDebris, pos, 12, 140)
		s.SpawnBurst(ParticleFlash, pos, 2, 20)
	case content.DeathShrapnel:
		s.SpawnBurst(ParticleFlash, pos, 2, 20)
		n := 8
		for i := 0; i < n; i++ {
			s.LaunchProjectile(d.Shrapnel, true, pool.Null, pos, angle+float64(i)*2*math.Pi/float64(n))
		}
	default:
		panic(fmt.Sprintf("game: unhandled death %s for %s", d.Death, kind))
	}
	s.Sounds.Play(SoundExplosion)

	if k := s.ChoosePickup(d.Drops); k != content.PickupNone {
		s.InsertPickup(k, pos)
	}
	s.Log.Add(s.Tick, label, "baddie", "kill", kind.String(), 0)
	s.Metrics.killed(kind.String())
	if hook != nil {
		hook.Run(s)
	}
}
