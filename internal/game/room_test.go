package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

const roomYAML = `
0:
  name: airlock
  timer: 30
  walls:
    - {kind: slab, x: 0, y: -200, angle: 90}
    - {kind: block, x: 300, y: 0}
  doors:
    - {kind: rocket, x: 400, y: 0, angle: 0, dest: 1}
  baddies:
    - {kind: hauler, x: 250, y: 0, angle: 180, carries: [1]}
    - {kind: orbiter, x: -100, y: 0, pivot: [-200, 0]}
  fields:
    - {kind: sector_spin, x: 0, y: 0, strength: 50, inner: 10, thickness: 40, sweep: 90}
1:
  name: closet
`

func TestParseRoomSet_Layout(t *testing.T) {
	rs, err := ParseRoomSet([]byte(roomYAML))
	if err != nil {
		t.Fatal(err)
	}
	if got := rs.Numbers(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("expected rooms [0 1], got %v", got)
	}
	l := rs.Rooms[0]
	if l.Name != "airlock" || l.Timer != 30 {
		t.Fatalf("unexpected header %q %.0f", l.Name, l.Timer)
	}
	if math.Abs(l.Walls[0].Angle-math.Pi/2) > 1e-12 {
		t.Fatalf("angles are read in degrees, got %.4f", l.Walls[0].Angle)
	}
	if l.Doors[0].Kind != content.DoorRocket || l.Doors[0].Dest != 1 {
		t.Fatalf("unexpected door %+v", l.Doors[0])
	}
	if h := l.Baddies[0]; h.Kind != content.BaddieHauler || len(h.Carries) != 1 || h.Carries[0] != 1 {
		t.Fatalf("unexpected hauler %+v", h)
	}
	if o := l.Baddies[1]; o.Pivot == nil || *o.Pivot != geom.V(-200, 0) {
		t.Fatalf("orbiter pivot not read: %+v", o)
	}
	if f := l.Gravfields[0]; f.Kind != content.GravSectorSpin || math.Abs(f.Sector.Sweep-math.Pi/2) > 1e-12 {
		t.Fatalf("unexpected field %+v", f)
	}
}

func TestParseRoomSet_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown kind":   "0:\n  walls:\n    - {kind: castle}\n",
		"absent kind":    "0:\n  baddies:\n    - {kind: none}\n",
		"carry overflow": "0:\n  walls:\n    - {kind: block}\n  baddies:\n    - {kind: hauler, carries: [3]}\n",
		"bad field":      "0:\n  fields:\n    - {kind: whirlpool}\n",
	}
	for name, src := range cases {
		_, err := ParseRoomSet([]byte(src))
		if err == nil {
			t.Errorf("%s: expected an error", name)
			continue
		}
		if name != "carry overflow" && !errors.Is(err, content.ErrUnknownKind) {
			t.Errorf("%s: expected ErrUnknownKind, got %v", name, err)
		}
	}
	if _, err := ParseRoomSet([]byte("not: [valid")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadRoomSet_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	if err := os.WriteFile(path, []byte(roomYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	rs, err := LoadRoomSet(path)
	if err != nil {
		t.Fatal(err)
	}
	ts := NewTestSim(WithRooms(rs), WithStartRoom(0))
	if n := pool.Count(ts.Space.Walls[:]); n != 2 {
		t.Fatalf("expected 2 walls, got %d", n)
	}
	h := ts.Baddies(content.BaddieHauler)
	if len(h) != 1 || h[0].Cargo[0].Kind != CargoWall || h[0].Cargo[1].Kind != CargoNone {
		t.Fatal("hauler should load with its cargo attached")
	}
	if !ts.Space.Timer.Active || ts.Space.Timer.Remaining != 30 {
		t.Fatalf("expected a running 30s timer, got %+v", ts.Space.Timer)
	}
	if _, err := LoadRoomSet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadRoom_ClearsPrevious(t *testing.T) {
	ts := NewTestSim(WithRooms(DemoRooms()), WithStartRoom(0))
	ts.Space.InsertPickup(content.PickupRockets, geom.V(10, 10))
	if err := ts.Space.LoadRoom(1); err != nil {
		t.Fatal(err)
	}
	if len(ts.Baddies(content.BaddieTurret)) != 0 || pool.Count(ts.Space.Pickups[:]) != 0 {
		t.Fatal("previous room's contents should be gone")
	}
	if len(ts.Baddies(content.BaddieChaser)) != 2 {
		t.Fatal("foundry chasers missing")
	}
	if !ts.Space.Player.Visited(0) || !ts.Space.Player.Visited(1) || ts.Space.Player.Visited(2) {
		t.Fatal("visited rooms not tracked")
	}
}

func TestLoadRoom_UnknownRoom(t *testing.T) {
	ts := NewTestSim(WithRooms(DemoRooms()))
	err := ts.Space.LoadRoom(7)
	if !errors.Is(err, ErrUnknownRoom) {
		t.Fatalf("expected ErrUnknownRoom, got %v", err)
	}
}

func TestDemoRooms_AllLoad(t *testing.T) {
	rs := DemoRooms()
	for _, n := range rs.Numbers() {
		ts := NewTestSim(WithRooms(rs), WithStartRoom(n))
		if ts.SimLog.CountCategory("pool", "full") != 0 {
			t.Fatalf("room %d overflowed a pool", n)
		}
		for _, d := range ts.Doors() {
			if _, ok := rs.Rooms[d.Dest]; !ok {
				t.Fatalf("room %d has a door to missing room %d", n, d.Dest)
			}
		}
		ts.RunTicks(120)
	}
}
