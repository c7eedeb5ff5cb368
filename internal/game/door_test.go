package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Void-Runner/internal/config"
	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

func shootDoor(t *testing.T, kind content.ProjectileKind) (*TestSim, *Door) {
	t.Helper()
	ts := NewTestSim(WithDoor(content.DoorRocket, 100, 0, 0, 1))
	d := ts.Doors()[0]
	ts.Space.LaunchProjectile(kind, false, pool.Ship, geom.V(50, 0), 0)
	tick := ts.RunUntil(func(ts *TestSim) bool { return liveProjectiles(ts.Space) == 0 }, 60)
	if tick < 0 {
		t.Fatalf("%s never reached the door", kind)
	}
	return ts, d
}

func TestDoor_RocketOpensRocketDoorSameTick(t *testing.T) {
	ts, d := shootDoor(t, content.ProjRocket)
	if !d.Open {
		t.Fatal("rocket door should open on a rocket hit")
	}
	e, ok := ts.SimLog.LastOf("door", "open")
	if !ok || e.Tick != ts.Space.Tick {
		t.Fatalf("door should open in the tick of the hit (tick %d), log %+v", ts.Space.Tick, e)
	}
}

func TestDoor_NormalShotLeavesRocketDoorShut(t *testing.T) {
	ts, d := shootDoor(t, content.ProjPulse)
	if d.Open {
		t.Fatal("rocket door must not open to normal damage")
	}
	if ts.SimLog.CountCategory("door", "open") != 0 {
		t.Fatal("unexpected door open entry")
	}
}

func TestDoor_OpensAnimatesAndCloses(t *testing.T) {
	ts := NewTestSim(
		WithConfig(func(c *config.Config) { c.Doors.HoldTime = 1 }),
		WithDoor(content.DoorNormal, 100, 0, 0, 1),
		WithShip(-300, 0, 0),
	)
	d := ts.Doors()[0]
	ts.Space.OpenDoor(d)
	ts.RunTicks(30)
	if !d.Open || d.Openness != 1 {
		t.Fatalf("door should be fully open after half a second, openness %.2f", d.Openness)
	}
	tick := ts.RunUntil(func(ts *TestSim) bool { return !d.Open }, 120)
	if tick < 0 {
		t.Fatal("door never closed after its hold time")
	}
	ts.RunTicks(60)
	if d.Openness != 0 {
		t.Fatalf("closed door should animate back to 0, got %.2f", d.Openness)
	}
}

func TestDoor_StaysOpenWhileShipNear(t *testing.T) {
	ts := NewTestSim(
		WithConfig(func(c *config.Config) { c.Doors.HoldTime = 0.5 }),
		WithDoor(content.DoorNormal, 100, 0, 0, 1),
		WithShip(40, 0, 0),
	)
	d := ts.Doors()[0]
	ts.Space.OpenDoor(d)
	ts.RunTicks(120)
	if !d.Open {
		t.Fatal("door should not close on a nearby ship")
	}
}

func TestDoor_LockedIgnoresEverything(t *testing.T) {
	for _, flags := range []content.DamageFlags{content.DamageNormal, content.DamageRocket, content.DamageMegaBomb} {
		if content.DoorLocked.Opens(flags) {
			t.Fatalf("locked door opened to %s", flags)
		}
	}
}

func TestDoor_ClosedPanelBlocksOpenPanelDoesNot(t *testing.T) {
	ts := NewTestSim(WithDoor(content.DoorNormal, 100, 0, 0, 1), WithShip(-300, 0, 0))
	s := ts.Space
	d := ts.Doors()[0]
	imp, ok := s.RayImpact(geom.V(50, 0), geom.V(100, 0), ImpactShip.Mask(), pool.Null)
	if !ok || imp.Type != ImpactDoorOutside {
		t.Fatalf("closed door should block from outside, got %v %v", ok, imp.Type)
	}
	d.Open, d.Openness = true, 1
	imp, ok = s.RayImpact(geom.V(50, 0), geom.V(100, 0), ImpactShip.Mask(), pool.Null)
	if !ok || imp.Type != ImpactDoorInside {
		t.Fatalf("open door should report its inside surface, got %v %v", ok, imp.Type)
	}
	want := 100 + DoorDepth/2 - ThresholdDepth
	if math.Abs(imp.Pos.X-float64(want)) > 1e-9 {
		t.Fatalf("expected threshold hit at x=%d, got %.3f", want, imp.Pos.X)
	}
}

// --- Doorway transition ---

func twoRooms() *RoomSet {
	return &RoomSet{Rooms: map[int]*RoomLayout{
		0: {Name: "west", Doors: []DoorSpec{{Kind: content.DoorPassage, Pos: geom.V(200, 0), Angle: 0, Dest: 1}}},
		1: {Name: "east", Doors: []DoorSpec{{Kind: content.DoorPassage, Pos: geom.V(-200, 0), Angle: math.Pi, Dest: 0}},
			Baddies: []BaddieSpec{{Kind: content.BaddieCrate, Pos: geom.V(100, 100)}}},
	}}
}

func TestDoorway_FlyThroughLoadsNextRoom(t *testing.T) {
	ts := NewTestSim(
		WithRooms(twoRooms()),
		WithStartRoom(0),
		WithShip(0, 0, 0),
		WithControls(Controls{Thrust: true}),
	)
	s := ts.Space
	if ts.RunUntil(func(ts *TestSim) bool { return ts.Space.Mode.Kind == ModeDoorway }, 300) < 0 {
		t.Fatal("ship never entered the doorway")
	}
	if s.Mode.Dest != 1 || s.Mode.From != 0 {
		t.Fatalf("doorway should lead 0 -> 1, got %d -> %d", s.Mode.From, s.Mode.Dest)
	}
	if ts.RunUntil(func(ts *TestSim) bool { return ts.Space.Mode.Kind == ModeNormal }, 120) < 0 {
		t.Fatal("doorway transition never finished")
	}
	if s.Room != 1 || !s.Player.Visited(1) {
		t.Fatalf("expected to be in visited room 1, room %d", s.Room)
	}
	if len(ts.Baddies(content.BaddieCrate)) != 1 {
		t.Fatal("room 1 contents should be loaded")
	}
	want := geom.V(-200+DoorDepth/2+3*s.Ship.Radius, 0)
	if geom.Dist(s.Ship.Pos, want) > 1e-6 {
		t.Fatalf("ship should arrive at %v, got %v", want, s.Ship.Pos)
	}
	if math.Abs(s.Ship.Angle) > 1e-9 {
		t.Fatalf("ship should face into the room, angle %.3f", s.Ship.Angle)
	}
	if s.Ship.Vel != geom.Zero {
		t.Fatal("ship should arrive at rest")
	}
}

func TestDoorway_UnknownRoomLeavesEmptyRoom(t *testing.T) {
	rooms := &RoomSet{Rooms: map[int]*RoomLayout{
		0: {Doors: []DoorSpec{{Kind: content.DoorPassage, Pos: geom.V(200, 0), Dest: 9}}},
	}}
	ts := NewTestSim(WithRooms(rooms), WithStartRoom(0), WithControls(Controls{Thrust: true}))
	ts.RunUntil(func(ts *TestSim) bool { return ts.Space.Room == 9 }, 400)
	if !ts.SimLog.HasEntry("room", "load_failed", "unknown room") {
		t.Fatal("expected a load failure entry for room 9")
	}
	if len(ts.Doors()) != 0 {
		t.Fatal("failed load should leave the pools clear")
	}
}
