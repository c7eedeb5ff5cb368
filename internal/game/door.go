package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Door geometry in the door's local frame. +x points out of the room.
const (
	DoorWidth      = 80
	DoorDepth      = 20
	JambWidth      = 12
	ThresholdDepth = 6
)

var (
	// DoorPanel blocks the gap while the door is not fully open.
	DoorPanel = content.Rect(DoorDepth, DoorWidth)
	// DoorJambs frame the gap and always block.
	DoorJambs = [2]geom.Polygon{
		content.RectAt(-DoorDepth/2, DoorWidth/2, DoorDepth/2, DoorWidth/2+JambWidth),
		content.RectAt(-DoorDepth/2, -DoorWidth/2-JambWidth, DoorDepth/2, -DoorWidth/2),
	}
	// DoorThreshold is the inside surface at the far end of an open door.
	DoorThreshold = content.RectAt(DoorDepth/2-ThresholdDepth, -DoorWidth/2, DoorDepth/2, DoorWidth/2)

	doorRadius = math.Hypot(DoorDepth/2, DoorWidth/2+JambWidth)
)

// Door joins this room to Dest. It opens when hit by damage its kind
// accepts and closes again after a hold once the ship is clear.
type Door struct {
	Kind     content.DoorKind
	UID      pool.UID
	Pos      geom.Vector
	Angle    float64
	Dest     int
	Open     bool
	Openness float64 // 0 closed .. 1 open
	HoldTime float64 // seconds spent open

	OnOpen Script
}

func (d *Door) Live() bool { return d.Kind != content.DoorNone }
func (d *Door) ID() pool.UID { return d.UID }
func (d *Door) Transform() geom.Transform { return geom.Place(d.Pos, d.Angle) }
func (d *Door) Label() string { return fmt.Sprintf("door#%d", d.UID.Index()) }

// Blocking reports whether the panel is solid.
func (d *Door) Blocking() bool { return d.Openness < 1 }

// InsertDoor places a door leading to dest.
func (s *Space) InsertDoor(kind content.DoorKind, pos geom.Vector, angle float64, dest int) (*Door, bool) {
	i, ok := pool.FirstFree(s.Doors[:])
	if !ok {
		s.poolFull("door")
		return nil, false
	}
	d := &s.Doors[i]
	*d = Door{Kind: kind, UID: d.UID, Pos: pos, Angle: geom.Mod2Pi(angle), Dest: dest}
	if kind == content.DoorPassage {
		d.Open, d.Openness = true, 1
	}
	pool.Assign(i, &d.UID)
	return d, true
}

// RemoveDoor frees the slot.
func (s *Space) RemoveDoor(d *Door) {
	mustLive(d.Live(), "door")
	d.Kind = content.DoorNone
}

// hitDoor opens d at once if flags satisfy its kind.
func (s *Space) hitDoor(d *Door, flags content.DamageFlags) {
	if d.Open || !d.Kind.Opens(flags) {
		return
	}
	s.OpenDoor(d)
}

// OpenDoor starts opening d and runs its hook.
func (s *Space) OpenDoor(d *Door) {
	d.Open = true
	d.HoldTime = 0
	s.Sounds.Play(SoundDoorOpen)
	s.Log.Add(s.Tick, d.Label(), "door", "open", fmt.Sprintf("%s to room %d", d.Kind, d.Dest), float64(d.Dest))
	s.Metrics.doorOpened()
	if d.OnOpen != nil {
		d.OnOpen.Run(s)
	}
}

// updateDoors animates openness and closes doors whose hold has run out.
func (s *Space) updateDoors(dt float64) {
	cfg := s.cfg.Doors
	for i := range s.Doors {
		d := &s.Doors[i]
		if !d.Live() {
			continue
		}
		if !d.Open {
			d.Openness = math.Max(0, d.Openness-cfg.OpenRate*dt)
			continue
		}
		d.Openness = math.Min(1, d.Openness+cfg.OpenRate*dt)
		if d.Kind == content.DoorPassage {
			continue
		}
		d.HoldTime += dt
		if d.HoldTime >= cfg.HoldTime && !geom.WithinDist(s.Ship.Pos, d.Pos, cfg.CloseDistance) {
			d.Open = false
			s.Sounds.Play(SoundDoorClose)
			s.Log.Add(s.Tick, d.Label(), "door", "close", "", 0)
		}
	}
}

// arrivalPoint is where the ship appears when entering through d.
func (d *Door) arrivalPoint(shipRadius float64) geom.Vector {
	return d.Pos.Sub(geom.Polar(DoorDepth/2+3*shipRadius, d.Angle))
}
