package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// --- Line of sight ---

func TestLOS_ClearLine(t *testing.T) {
	ts := NewTestSim(WithShip(200, 0, 0))
	if !ts.Space.LineOfSight(geom.V(0, 0), pool.Null) {
		t.Fatal("expected clear LOS with nothing in between")
	}
}

func TestLOS_BlockedByWall(t *testing.T) {
	ts := NewTestSim(WithShip(200, 0, 0), WithWall(content.WallBlock, 100, 0, 0))
	if ts.Space.LineOfSight(geom.V(0, 0), pool.Null) {
		t.Fatal("expected LOS blocked by the block")
	}
}

func TestLOS_WallBesideLineDoesNotBlock(t *testing.T) {
	ts := NewTestSim(WithShip(200, 0, 0), WithWall(content.WallBlock, 100, 60, 0))
	if !ts.Space.LineOfSight(geom.V(0, 0), pool.Null) {
		t.Fatal("block off the line should not block LOS")
	}
}

func TestLOS_SeesOutOfOwnHull(t *testing.T) {
	ts := NewTestSim(WithShip(300, 0, 0), WithBaddie(content.BaddieTurret, 0, 0, 0))
	b := ts.Baddies(content.BaddieTurret)[0]
	if !ts.Space.LineOfSight(b.Pos, b.UID) {
		t.Fatal("a baddie should not block its own view")
	}
	if ts.Space.LineOfSight(b.Pos, pool.Null) {
		t.Fatal("without the self skip the turret's own hull is hit first")
	}
}

func TestLOS_TurretBlockedByWallInSameSlot(t *testing.T) {
	ts := NewTestSim(
		WithShip(300, 0, 0),
		WithBaddie(content.BaddieTurret, 0, 0, 0),
		WithWall(content.WallBlock, 150, 0, 0),
	)
	b := ts.Baddies(content.BaddieTurret)[0]
	w := &ts.Space.Walls[0]
	if b.UID != w.UID {
		t.Fatalf("setup: expected slot-0 uids to coincide, got %s and %s", b.UID, w.UID)
	}
	if ts.Space.LineOfSight(b.Pos, b.UID) {
		t.Fatal("the block hides the ship even though its uid matches the turret's")
	}
	ts.RunTicks(120)
	if liveProjectiles(ts.Space) != 0 || ts.Space.Player.Shields != 100 {
		t.Fatal("a turret without line of sight should hold fire")
	}
}

func TestLOS_DeadShipIsInvisible(t *testing.T) {
	ts := NewTestSim(WithShip(200, 0, 0))
	ts.Space.Ship.Dead = true
	if ts.Space.LineOfSight(geom.V(0, 0), pool.Null) {
		t.Fatal("a dead ship should not be seen")
	}
}

// --- Impact queries ---

func TestImpact_NearestWins(t *testing.T) {
	ts := NewTestSim(
		WithShip(-500, 0, 0),
		WithBaddie(content.BaddieCrate, 200, 0, 0),
		WithWall(content.WallBlock, 100, 0, 0),
	)
	imp, ok := ts.Space.RayImpact(geom.V(0, 0), geom.V(400, 0), 0, pool.Null)
	if !ok || imp.Type != ImpactWall {
		t.Fatalf("expected the nearer wall, got %v %s", ok, imp.Type)
	}
	if math.Abs(imp.Pos.X-80) > 1e-9 {
		t.Fatalf("expected hit at x=80, got %.3f", imp.Pos.X)
	}

	imp, ok = ts.Space.RayImpact(geom.V(0, 0), geom.V(400, 0), ImpactWall.Mask(), pool.Null)
	if !ok || imp.Type != ImpactBaddie || imp.Baddie == nil || imp.Component != -1 {
		t.Fatalf("skipping walls should find the crate body, got %v %s", ok, imp.Type)
	}
}

func TestImpact_SkipUID(t *testing.T) {
	ts := NewTestSim(WithShip(-500, 0, 0), WithBaddie(content.BaddieCrate, 100, 0, 0))
	b := ts.Baddies(content.BaddieCrate)[0]
	if _, ok := ts.Space.RayImpact(geom.V(0, 0), geom.V(400, 0), 0, b.UID); ok {
		t.Fatal("the skipped uid should not be hit")
	}
}

func TestImpact_SelfSkipStaysInItsPool(t *testing.T) {
	ts := NewTestSim(
		WithShip(-500, 0, 0),
		WithBaddie(content.BaddieCrate, 0, 0, 0),
		WithWall(content.WallBlock, 100, 0, 0),
		WithDoor(content.DoorNormal, 100, 200, 0, 1),
	)
	s := ts.Space
	b := ts.Baddies(content.BaddieCrate)[0]
	if b.UID != s.Walls[0].UID || b.UID != s.Doors[0].UID {
		t.Fatal("setup: slot-0 uids should coincide across pools")
	}

	imp, ok := s.CircleImpact(10, b.Pos, geom.V(200, 0), ImpactShip.Mask(), b.UID)
	if !ok || imp.Type != ImpactWall {
		t.Fatalf("expected the wall sharing the crate's uid, got %v %s", ok, imp.Type)
	}
	if math.Abs(imp.Pos.X-70) > 1e-9 {
		t.Fatalf("expected the circle to stop at x=70, got %.3f", imp.Pos.X)
	}

	imp, ok = s.RayImpact(geom.V(0, 200), geom.V(200, 0), 0, b.UID)
	if !ok || imp.Type != ImpactDoorOutside {
		t.Fatalf("expected the closed door sharing the crate's uid, got %v %s", ok, imp.Type)
	}
}

func TestImpact_IncorporealIsSkipped(t *testing.T) {
	ts := NewTestSim(WithShip(-500, 0, 0), WithBaddie(content.BaddieWisp, 100, 0, 0))
	if _, ok := ts.Space.RayImpact(geom.V(0, 0), geom.V(400, 0), 0, pool.Null); ok {
		t.Fatal("wisps are incorporeal and must never be hit")
	}
}

func TestImpact_ComponentReported(t *testing.T) {
	ts := NewTestSim(WithShip(-500, 0, 0), WithBaddie(content.BaddieTurret, 100, 0, math.Pi))
	imp, ok := ts.Space.RayImpact(geom.V(0, 0), geom.V(200, 0), 0, pool.Null)
	if !ok || imp.Type != ImpactBaddie {
		t.Fatalf("expected the turret, got %v %s", ok, imp.Type)
	}
	if imp.Component != 0 {
		t.Fatalf("barrel sticks out toward the ray and should be hit first, got component %d", imp.Component)
	}
	if math.Abs(imp.Pos.X-76) > 1e-9 {
		t.Fatalf("expected barrel tip at x=76, got %.3f", imp.Pos.X)
	}
}

func TestImpact_ShipAndMask(t *testing.T) {
	ts := NewTestSim(WithShip(100, 0, 0))
	imp, ok := ts.Space.CircleImpact(3, geom.V(0, 0), geom.V(200, 0), 0, pool.Null)
	if !ok || imp.Type != ImpactShip || imp.UID != pool.Ship {
		t.Fatalf("expected the ship, got %v %s", ok, imp.Type)
	}
	if _, ok := ts.Space.CircleImpact(3, geom.V(0, 0), geom.V(200, 0), ImpactShip.Mask(), pool.Null); ok {
		t.Fatal("masked ship should not be hit")
	}
}

func TestImpact_ArcAroundPivot(t *testing.T) {
	ts := NewTestSim(WithShip(-500, -500, 0), WithWall(content.WallBlock, 0, 100, 0))
	imp, ok := ts.Space.ArcCircleImpact(5, geom.V(100, 0), geom.Zero, math.Pi, 0, pool.Null)
	if !ok || imp.Type != ImpactWall {
		t.Fatalf("arc should strike the block, got %v %s", ok, imp.Type)
	}
	if imp.T <= 0 || imp.T >= 0.5 {
		t.Fatalf("block sits before the quarter turn, got T=%.3f", imp.T)
	}
	if math.Abs(geom.Dist(imp.Pos, geom.Zero)-100) > 1e-6 {
		t.Fatalf("arc hit should stay on the orbit, got %v", imp.Pos)
	}
	if _, ok := ts.Space.ArcCircleImpact(5, geom.V(100, 0), geom.Zero, -math.Pi/2, 0, pool.Null); ok {
		t.Fatal("clockwise quarter turn should miss the block")
	}
}

func TestImpact_ZeroDeltaNeverHits(t *testing.T) {
	ts := NewTestSim(WithShip(-500, 0, 0), WithWall(content.WallBlock, 0, 0, 0))
	if _, ok := ts.Space.RayImpact(geom.V(0, 0), geom.Zero, 0, pool.Null); ok {
		t.Fatal("zero-length ray must not hit")
	}
}

// --- Broad phase ---

func TestRayAABB_Hit(t *testing.T) {
	tHit, ok := rayAABBHitT(geom.V(0, 5), geom.V(20, 0), geom.V(10, 0), geom.V(12, 10))
	if !ok || math.Abs(tHit-0.5) > 1e-12 {
		t.Fatalf("expected t=0.5, got %v %.3f", ok, tHit)
	}
}

func TestRayAABB_StartInside(t *testing.T) {
	tHit, ok := rayAABBHitT(geom.V(11, 5), geom.V(20, 0), geom.V(10, 0), geom.V(12, 10))
	if !ok || tHit != 0 {
		t.Fatalf("start inside should hit at 0, got %v %.3f", ok, tHit)
	}
}

func TestRayAABB_Miss(t *testing.T) {
	if _, ok := rayAABBHitT(geom.V(0, 20), geom.V(20, 0), geom.V(10, 0), geom.V(12, 10)); ok {
		t.Fatal("ray above the box should miss")
	}
	if _, ok := rayAABBHitT(geom.V(0, 5), geom.V(5, 0), geom.V(10, 0), geom.V(12, 10)); ok {
		t.Fatal("short ray should miss")
	}
}
