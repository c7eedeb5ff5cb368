package game

import (
	"fmt"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Wall is a static obstacle; destructible kinds break on matching damage.
type Wall struct {
	Kind  content.WallKind
	Data  *content.WallData
	UID   pool.UID
	Pos   geom.Vector
	Angle float64
}

func (w *Wall) Live() bool { return w.Kind != content.WallNone }
func (w *Wall) ID() pool.UID { return w.UID }
func (w *Wall) Transform() geom.Transform { return geom.Place(w.Pos, w.Angle) }
func (w *Wall) Label() string { return fmt.Sprintf("%s#%d", w.Kind, w.UID.Index()) }

// InsertWall places a wall, or reports false when the pool is full.
func (s *Space) InsertWall(kind content.WallKind, pos geom.Vector, angle float64) (*Wall, bool) {
	i, ok := pool.FirstFree(s.Walls[:])
	if !ok {
		s.poolFull("wall")
		return nil, false
	}
	w := &s.Walls[i]
	*w = Wall{Kind: kind, Data: s.stats.Wall(kind), UID: w.UID, Pos: pos, Angle: geom.Mod2Pi(angle)}
	pool.Assign(i, &w.UID)
	return w, true
}

// RemoveWall frees the slot.
func (s *Space) RemoveWall(w *Wall) {
	mustLive(w.Live(), "wall")
	w.Kind = content.WallNone
}

// damageWall breaks w when flags satisfy its kind.
func (s *Space) damageWall(w *Wall, flags content.DamageFlags) {
	if !w.Data.BreakOn.Has(flags) {
		return
	}
	s.Log.Add(s.Tick, w.Label(), "wall", "break", flags.String(), 0)
	s.SpawnBurst(ParticleDebris, w.Pos, 16, 120)
	s.Sounds.Play(SoundWallBreak)
	s.RemoveWall(w)
}
