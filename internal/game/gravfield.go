package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Trapezoid describes a trap-shaped field in its local frame: it runs
// along x from -HalfLength to HalfLength, its width growing linearly from
// Width1 to Width2 and its centreline shifting by Offset at the far end.
type Trapezoid struct {
	HalfLength float64
	Offset     float64
	Width1     float64
	Width2     float64
}

// Sector is an annular wedge centred on the field's position, opening
// symmetrically about its angle.
type Sector struct {
	Inner     float64
	Thickness float64
	Sweep     float64
}

// Gravfield pushes or spins the ship, or marks a water or lava region.
type Gravfield struct {
	Kind     content.GravKind
	UID      pool.UID
	Pos      geom.Vector
	Angle    float64
	Strength float64
	Trap     Trapezoid
	Sector   Sector
}

func (g *Gravfield) Live() bool { return g.Kind != content.GravNone }
func (g *Gravfield) ID() pool.UID { return g.UID }
func (g *Gravfield) Transform() geom.Transform { return geom.Place(g.Pos, g.Angle) }

// Environment is what the gravity step reports to other systems.
type Environment struct {
	InWater bool
	InLava  bool
}

// InsertGravfield places a field. Trap kinds use trap, sector kinds use
// sector; water and lava use trap.
func (s *Space) InsertGravfield(kind content.GravKind, pos geom.Vector, angle, strength float64, trap Trapezoid, sector Sector) (*Gravfield, bool) {
	i, ok := pool.FirstFree(s.Gravfields[:])
	if !ok {
		s.poolFull("gravfield")
		return nil, false
	}
	g := &s.Gravfields[i]
	*g = Gravfield{Kind: kind, UID: g.UID, Pos: pos, Angle: geom.Mod2Pi(angle), Strength: strength, Trap: trap, Sector: sector}
	pool.Assign(i, &g.UID)
	return g, true
}

// RemoveGravfield frees the slot.
func (s *Space) RemoveGravfield(g *Gravfield) {
	mustLive(g.Live(), "gravfield")
	g.Kind = content.GravNone
}

// Contains reports whether p lies in the field's region.
func (g *Gravfield) Contains(p geom.Vector) bool {
	switch g.Kind {
	case content.GravSectorPull, content.GravSectorSpin:
		r := geom.Dist(p, g.Pos)
		if r < g.Sector.Inner || r > g.Sector.Inner+g.Sector.Thickness {
			return false
		}
		if g.Sector.Sweep >= 2*math.Pi || r == 0 {
			return true
		}
		return math.Abs(geom.AngleDelta(g.Angle, p.Sub(g.Pos).Theta())) <= g.Sector.Sweep/2
	case content.GravTrapPull, content.GravWater, content.GravLava:
		t := g.Trap
		if t.HalfLength <= 0 {
			return false
		}
		local := g.Transform().ToLocal(p)
		u := (local.X + t.HalfLength) / (2 * t.HalfLength)
		if u < 0 || u > 1 {
			return false
		}
		half := (t.Width1 + (t.Width2-t.Width1)*u) / 2
		return math.Abs(local.Y-t.Offset*u) <= half
	}
	panic(fmt.Sprintf("game: unhandled gravfield %s", g.Kind))
}

// applyGravfields pushes the ship and records the environment it sits in.
func (s *Space) applyGravfields(dt float64) {
	s.Env = Environment{}
	sh := &s.Ship
	if sh.Dead {
		return
	}
	for i := range s.Gravfields {
		g := &s.Gravfields[i]
		if !g.Live() || !g.Contains(sh.Pos) {
			continue
		}
		switch g.Kind {
		case content.GravTrapPull:
			sh.Vel = sh.Vel.Add(geom.Polar(g.Strength*dt, g.Angle))
		case content.GravSectorPull:
			if to := g.Pos.Sub(sh.Pos); to.NormSq() > 0 {
				sh.Vel = sh.Vel.Add(to.WithNorm(g.Strength * dt))
			}
		case content.GravSectorSpin:
			if out := sh.Pos.Sub(g.Pos); out.NormSq() > 0 {
				sh.Vel = sh.Vel.Add(out.RotLeft90().WithNorm(g.Strength * dt))
			}
		case content.GravWater, content.GravLava:
			if g.Kind == content.GravWater {
				s.Env.InWater = true
			} else {
				s.Env.InLava = true
			}
			sh.Vel = sh.Vel.Mul(math.Max(0, 1-s.cfg.Sim.WaterDrag*dt))
			sh.Vel = sh.Vel.Add(geom.Polar(g.Strength*dt, g.Angle))
		default:
			panic(fmt.Sprintf("game: unhandled gravfield %s", g.Kind))
		}
	}
	if s.Env.InLava && !s.Player.Has(UpgradeThermalArmor) {
		s.HurtShip(s.cfg.Ship.HeatDamage*dt, content.DamageHeat)
	}
	if s.Env.InWater {
		s.Sounds.Loop(SoundBubbles)
	}
	if s.Env.InLava {
		s.Sounds.Loop(SoundSizzle)
	}
}
