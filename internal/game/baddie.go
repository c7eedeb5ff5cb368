package game

import (
	"fmt"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// MaxComponents bounds the jointed parts a baddie kind may declare.
const MaxComponents = 4

// MaxCargo bounds the objects one hauler can drag.
const MaxCargo = 4

// CargoKind names the pool a cargo reference points into. A uid only
// encodes a slot index, so the pool must travel with it.
type CargoKind uint8

const (
	CargoNone CargoKind = iota
	CargoBaddie
	CargoDoor
	CargoWall
	CargoGravfield
)

// CargoRef is a revocable reference to something a baddie carries.
type CargoRef struct {
	Kind CargoKind
	UID  pool.UID
}

// Baddie is a hostile actor. Kind == BaddieNone marks the slot absent.
type Baddie struct {
	Kind content.BaddieKind
	Data *content.BaddieData
	UID  pool.UID

	Pos, Vel geom.Vector
	Angle    float64
	Home     geom.Vector // spawn point; orbit pivot for orbiters
	Health   float64
	Armor    float64 // hit flash, decays from 1
	Frozen   float64 // freeze amount, decays from 1
	Cooldown float64
	Param    float64 // behavior-specific: orbit direction, wander heading
	State    int     // behavior-specific steering mode

	// Components holds each part's local placement, animated from the
	// data's spawn placement.
	Components [MaxComponents]geom.Transform
	Cargo      [MaxCargo]CargoRef

	OnKill Script
}

func (b *Baddie) Live() bool { return b.Kind != content.BaddieNone }
func (b *Baddie) ID() pool.UID { return b.UID }
func (b *Baddie) Label() string { return fmt.Sprintf("%s#%d", b.Kind, b.UID.Index()) }
func (b *Baddie) Transform() geom.Transform { return geom.Place(b.Pos, b.Angle) }

// ComponentTransform returns component i's world placement.
func (b *Baddie) ComponentTransform(i int) geom.Transform {
	return b.Transform().Compose(b.Components[i])
}

// Baddie states for steering behaviors that switch target.
const (
	StateChase = iota
	StateReturn
	StateScatter
)

// InsertBaddie spawns a baddie of kind at pos, or reports false when the
// pool is full.
func (s *Space) InsertBaddie(kind content.BaddieKind, pos geom.Vector, angle float64) (*Baddie, bool) {
	i, ok := pool.FirstFree(s.Baddies[:])
	if !ok {
		s.poolFull("baddie")
		return nil, false
	}
	d := s.stats.Baddie(kind)
	if len(d.Components) > MaxComponents {
		panic(fmt.Sprintf("game: %s has %d components", kind, len(d.Components)))
	}
	b := &s.Baddies[i]
	*b = Baddie{
		Kind:   kind,
		Data:   d,
		UID:    b.UID,
		Pos:    pos,
		Angle:  geom.Mod2Pi(angle),
		Home:   pos,
		Health: d.Health,
		Param:  1,
	}
	for c, comp := range d.Components {
		b.Components[c] = geom.Place(comp.Pos, comp.Angle)
	}
	pool.Assign(i, &b.UID)
	s.Log.AddVerbose(s.Tick, b.Label(), "baddie", "spawn", fmt.Sprintf("(%.0f,%.0f)", pos.X, pos.Y), 0)
	return b, true
}

// RemoveBaddie frees the slot. Removing an absent baddie is a bug.
func (s *Space) RemoveBaddie(b *Baddie) {
	mustLive(b.Live(), "baddie")
	b.Kind = content.BaddieNone
}

// Attach makes b drag the object with the given uid.
func (b *Baddie) Attach(kind CargoKind, uid pool.UID) bool {
	for i := range b.Cargo {
		if b.Cargo[i].Kind == CargoNone {
			b.Cargo[i] = CargoRef{Kind: kind, UID: uid}
			return true
		}
	}
	return false
}

// moveCargo carries b's cargo by delta and rotates it by spin about b.
// Stale references are dropped.
func (s *Space) moveCargo(b *Baddie, delta geom.Vector, spin float64) {
	for i := range b.Cargo {
		ref := &b.Cargo[i]
		var pos *geom.Vector
		var angle *float64
		switch ref.Kind {
		case CargoNone:
			continue
		case CargoBaddie:
			if o, ok := s.LookupBaddie(ref.UID); ok {
				pos, angle = &o.Pos, &o.Angle
			}
		case CargoDoor:
			if o, ok := s.LookupDoor(ref.UID); ok {
				pos, angle = &o.Pos, &o.Angle
			}
		case CargoWall:
			if o, ok := s.LookupWall(ref.UID); ok {
				pos, angle = &o.Pos, &o.Angle
			}
		case CargoGravfield:
			if o, ok := s.LookupGravfield(ref.UID); ok {
				pos, angle = &o.Pos, &o.Angle
			}
		default:
			panic(fmt.Sprintf("game: unhandled cargo kind %d", ref.Kind))
		}
		if pos == nil {
			*ref = CargoRef{}
			continue
		}
		p := pos.Add(delta)
		if spin != 0 {
			p = b.Pos.Add(p.Sub(b.Pos).Rotate(spin))
			*angle = geom.Mod2Pi(*angle + spin)
		}
		*pos = p
	}
}
