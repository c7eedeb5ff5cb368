package game

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Garsondee/Void-Runner/internal/content"
)

// Snapshot is a flat, render-facing copy of the live world. Positions are
// rounded to a tenth of a unit.
type Snapshot struct {
	Session string  `msgpack:"sid"`
	Tick    int     `msgpack:"t"`
	Room    int     `msgpack:"rm"`
	Mode    string  `msgpack:"m"`
	Phase   string  `msgpack:"ph"`
	Fade    float64 `msgpack:"fd"`

	Ship    ShipState `msgpack:"s"`
	CameraX float64   `msgpack:"cx"`
	CameraY float64   `msgpack:"cy"`
	Timer   float64   `msgpack:"tm,omitempty"`

	Shields    float64 `msgpack:"sh"`
	MaxShields float64 `msgpack:"msh"`
	Energy     float64 `msgpack:"en"`
	Rockets    int     `msgpack:"ro"`
	Bombs      int     `msgpack:"bo"`
	InWater    bool    `msgpack:"iw,omitempty"`
	InLava     bool    `msgpack:"il,omitempty"`

	Baddies     []BaddieState     `msgpack:"b"`
	Doors       []DoorState       `msgpack:"d"`
	Walls       []WallState       `msgpack:"w"`
	Gravfields  []GravState       `msgpack:"g"`
	Projectiles []ProjectileState `msgpack:"p"`
	Particles   []ParticleState   `msgpack:"pa"`
	Pickups     []PickupState     `msgpack:"pk"`
}

type ShipState struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Angle     float64 `msgpack:"a"`
	Thrusting bool    `msgpack:"th,omitempty"`
	Blink     bool    `msgpack:"bl,omitempty"`
	Dead      bool    `msgpack:"dd,omitempty"`
}

// PartState places one baddie component.
type PartState struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Angle float64 `msgpack:"a"`
}

type BaddieState struct {
	Kind   content.BaddieKind `msgpack:"k"`
	UID    uint64             `msgpack:"u"`
	X      float64            `msgpack:"x"`
	Y      float64            `msgpack:"y"`
	Angle  float64            `msgpack:"a"`
	Flash  float64            `msgpack:"f,omitempty"`
	Frozen float64            `msgpack:"fr,omitempty"`
	Parts  []PartState        `msgpack:"pt,omitempty"`
}

type DoorState struct {
	Kind     content.DoorKind `msgpack:"k"`
	X        float64          `msgpack:"x"`
	Y        float64          `msgpack:"y"`
	Angle    float64          `msgpack:"a"`
	Openness float64          `msgpack:"o"`
}

type WallState struct {
	Kind  content.WallKind `msgpack:"k"`
	X     float64          `msgpack:"x"`
	Y     float64          `msgpack:"y"`
	Angle float64          `msgpack:"a"`
}

type GravState struct {
	Kind   content.GravKind `msgpack:"k"`
	X      float64          `msgpack:"x"`
	Y      float64          `msgpack:"y"`
	Angle  float64          `msgpack:"a"`
	Trap   Trapezoid        `msgpack:"tr"`
	Sector Sector           `msgpack:"se"`
}

type ProjectileState struct {
	Kind  content.ProjectileKind `msgpack:"k"`
	X     float64                `msgpack:"x"`
	Y     float64                `msgpack:"y"`
	Angle float64                `msgpack:"a"`
	Enemy bool                   `msgpack:"e,omitempty"`
}

type ParticleState struct {
	Kind ParticleKind `msgpack:"k"`
	X    float64      `msgpack:"x"`
	Y    float64      `msgpack:"y"`
	Life float64      `msgpack:"l"` // remaining fraction
}

type PickupState struct {
	Kind content.PickupKind `msgpack:"k"`
	X    float64            `msgpack:"x"`
	Y    float64            `msgpack:"y"`
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Snapshot copies the live world for rendering or transport.
func (s *Space) Snapshot() *Snapshot {
	sh := &s.Ship
	snap := &Snapshot{
		Session: s.SessionID.String(),
		Tick:    s.Tick,
		Room:    s.Room,
		Mode:    s.Mode.Kind.String(),
		Phase:   s.Mode.Phase.String(),
		Fade:    s.Mode.Progress,
		Ship: ShipState{
			X: round1(sh.Pos.X), Y: round1(sh.Pos.Y), Angle: sh.Angle,
			Thrusting: sh.Thrusting, Blink: sh.Invincible > 0 && s.Tick%8 < 4, Dead: sh.Dead,
		},
		CameraX:    round1(s.Camera.X),
		CameraY:    round1(s.Camera.Y),
		Shields:    s.Player.Shields,
		MaxShields: s.Player.MaxShields,
		Energy:     s.Player.Energy,
		Rockets:    s.Player.Rockets,
		Bombs:      s.Player.Bombs,
		InWater:    s.Env.InWater,
		InLava:     s.Env.InLava,
	}
	if s.Timer.Active {
		snap.Timer = s.Timer.Remaining
	}
	for i := range s.Baddies {
		b := &s.Baddies[i]
		if !b.Live() {
			continue
		}
		bs := BaddieState{
			Kind: b.Kind, UID: uint64(b.UID), X: round1(b.Pos.X), Y: round1(b.Pos.Y),
			Angle: b.Angle, Flash: b.Armor, Frozen: b.Frozen,
		}
		for c := range b.Data.Components {
			xf := b.ComponentTransform(c)
			bs.Parts = append(bs.Parts, PartState{X: round1(xf.Pos.X), Y: round1(xf.Pos.Y), Angle: xf.Angle})
		}
		snap.Baddies = append(snap.Baddies, bs)
	}
	for i := range s.Doors {
		if d := &s.Doors[i]; d.Live() {
			snap.Doors = append(snap.Doors, DoorState{Kind: d.Kind, X: round1(d.Pos.X), Y: round1(d.Pos.Y), Angle: d.Angle, Openness: d.Openness})
		}
	}
	for i := range s.Walls {
		if w := &s.Walls[i]; w.Live() {
			snap.Walls = append(snap.Walls, WallState{Kind: w.Kind, X: round1(w.Pos.X), Y: round1(w.Pos.Y), Angle: w.Angle})
		}
	}
	for i := range s.Gravfields {
		if g := &s.Gravfields[i]; g.Live() {
			snap.Gravfields = append(snap.Gravfields, GravState{Kind: g.Kind, X: round1(g.Pos.X), Y: round1(g.Pos.Y), Angle: g.Angle, Trap: g.Trap, Sector: g.Sector})
		}
	}
	for i := range s.Projectiles {
		if p := &s.Projectiles[i]; p.Live() {
			snap.Projectiles = append(snap.Projectiles, ProjectileState{Kind: p.Kind, X: round1(p.Pos.X), Y: round1(p.Pos.Y), Angle: p.Angle, Enemy: p.Enemy})
		}
	}
	for i := range s.Particles {
		if p := &s.Particles[i]; p.Live() {
			snap.Particles = append(snap.Particles, ParticleState{Kind: p.Kind, X: round1(p.Pos.X), Y: round1(p.Pos.Y), Life: 1 - p.Age/p.Lifetime})
		}
	}
	for i := range s.Pickups {
		if p := &s.Pickups[i]; p.Live() {
			snap.Pickups = append(snap.Pickups, PickupState{Kind: p.Kind, X: round1(p.Pos.X), Y: round1(p.Pos.Y)})
		}
	}
	return snap
}

// EncodeSnapshot packs snap with msgpack.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("game: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot unpacks a snapshot written by EncodeSnapshot.
func DecodeSnapshot(b []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := msgpack.Unmarshal(b, snap); err != nil {
		return nil, fmt.Errorf("game: decode snapshot: %w", err)
	}
	return snap, nil
}
