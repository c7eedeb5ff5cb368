package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

func flyAutopilot(ts *TestSim, ap *Autopilot, n int, done func(*TestSim) bool) int {
	for i := 0; i < n; i++ {
		ts.Space.Controls = ap.Controls(ts.Space)
		ts.Space.Step(ts.DT)
		if done(ts) {
			return ts.Space.Tick
		}
	}
	return -1
}

func TestAutopilot_TurnsTowardTarget(t *testing.T) {
	ts := NewTestSim(WithShip(0, 0, math.Pi/2), WithBaddie(content.BaddieCrate, 300, 0, 0))
	ap := NewAutopilot()
	c := ap.Controls(ts.Space)
	if !c.Left || c.Right || c.Fire {
		t.Fatalf("expected a left turn without firing, got %+v", c)
	}
	if pos, hunting := ap.Target(); !hunting || pos != geom.V(300, 0) {
		t.Fatalf("expected to hunt the crate, target %v hunting %v", pos, hunting)
	}
}

func TestAutopilot_DestroysTurret(t *testing.T) {
	ts := NewTestSim(WithShip(0, 0, math.Pi/2), WithBaddie(content.BaddieTurret, 300, 0, 0))
	ap := NewAutopilot()
	tick := flyAutopilot(ts, ap, 600, func(ts *TestSim) bool { return len(ts.Baddies(content.BaddieTurret)) == 0 })
	if tick < 0 {
		t.Fatalf("turret survived\n%s", ts.SimLog.Format())
	}
	if ts.Space.Ship.Dead {
		t.Fatal("ship should win a duel with one turret")
	}
}

func TestAutopilot_IgnoresHiddenBaddies(t *testing.T) {
	ts := NewTestSim(
		WithWall(content.WallBlock, 150, 0, 0),
		WithBaddie(content.BaddieCrate, 300, 0, 0),
		WithBaddie(content.BaddieWisp, -100, 0, 0),
		WithDoor(content.DoorNormal, 0, 300, math.Pi/2, 1),
	)
	ap := NewAutopilot()
	ap.Controls(ts.Space)
	pos, hunting := ap.Target()
	if hunting {
		t.Fatal("walled-off and incorporeal baddies are not targets")
	}
	if pos != geom.V(0, 300) {
		t.Fatalf("expected to head for the door, got %v", pos)
	}
}

func TestAutopilot_PrefersUnvisitedDoor(t *testing.T) {
	ts := NewTestSim(
		WithDoor(content.DoorNormal, 300, 0, 0, 1),
		WithDoor(content.DoorNormal, -300, 0, math.Pi, 2),
		WithPlayer(func(p *Player) { p.VisitRoom(1) }),
	)
	ap := NewAutopilot()
	ap.Controls(ts.Space)
	if pos, _ := ap.Target(); pos != geom.V(-300, 0) {
		t.Fatalf("expected the door to room 2, got %v", pos)
	}
}

func TestAutopilot_IdleWhenDeadOrPaused(t *testing.T) {
	ts := NewTestSim(WithBaddie(content.BaddieCrate, 300, 0, 0))
	ap := NewAutopilot()
	ts.Space.Pause()
	if c := ap.Controls(ts.Space); c != (Controls{}) {
		t.Fatalf("paused: expected no input, got %+v", c)
	}
	ts.Space.Resume()
	ts.RunTicks(16)
	ts.Space.HurtShip(500, content.DamageNormal)
	if c := ap.Controls(ts.Space); c != (Controls{}) {
		t.Fatalf("dead: expected no input, got %+v", c)
	}
}

func TestAutopilot_ClearsDemoHub(t *testing.T) {
	ts := NewTestSim(WithRooms(DemoRooms()), WithStartRoom(0))
	ap := NewAutopilot()
	flyAutopilot(ts, ap, 60*60, func(ts *TestSim) bool { return ts.Space.Room != 0 || ts.Space.Ship.Dead })
	kills := ts.SimLog.CountCategory("baddie", "kill")
	if kills == 0 {
		t.Fatalf("autopilot should destroy something in a minute\n%s", ts.SimLog.Summary(ts.Space.Tick))
	}
}
