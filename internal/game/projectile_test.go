package game

import (
	"testing"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

func liveProjectiles(s *Space) int { return pool.Count(s.Projectiles[:]) }

func TestProjectile_ExpiresAtLifetime(t *testing.T) {
	ts := NewTestSim(WithContent(func(tbl *content.Table) {
		tbl.Projectiles[content.ProjPulse].Lifetime = 2.0
	}))
	s := ts.Space
	p, ok := s.LaunchProjectile(content.ProjPulse, false, pool.Ship, geom.V(0, 500), 0)
	if !ok {
		t.Fatal("launch failed")
	}
	for i := 1; i <= 3; i++ {
		s.Step(0.5)
		if !p.Live() {
			t.Fatalf("projectile removed early after tick %d (age %.2f)", i, p.Age)
		}
	}
	s.Step(0.5)
	if p.Live() {
		t.Fatalf("projectile should be removed after the 4th tick, age %.2f", p.Age)
	}
}

func TestProjectile_PierceSkipsLastHit(t *testing.T) {
	ts := NewTestSim(
		WithContent(func(tbl *content.Table) { tbl.Baddies[content.BaddieCrate].Health = 100 }),
		WithBaddie(content.BaddieCrate, 100, 0, 0),
	)
	s := ts.Space
	a := ts.Baddies(content.BaddieCrate)[0]
	p, _ := s.LaunchProjectile(content.ProjCharged, false, pool.Ship, geom.V(60, 0), 0)

	ts.RunTicks(2)
	if a.Health != 70 {
		t.Fatalf("first pass should hit once, health %.0f", a.Health)
	}
	if p.LastHit != a.UID {
		t.Fatalf("LastHit should be %s, got %s", a.UID, p.LastHit)
	}
	if !p.Live() {
		t.Fatal("piercing shot should survive the hit")
	}

	ts.RunTicks(3)
	if a.Health != 70 {
		t.Fatalf("piercing shot hit the same baddie again, health %.0f", a.Health)
	}
}

func TestProjectile_PierceHitsNewOccupantOfSlot(t *testing.T) {
	ts := NewTestSim(
		WithContent(func(tbl *content.Table) { tbl.Baddies[content.BaddieCrate].Health = 100 }),
		WithBaddie(content.BaddieCrate, 100, 0, 0),
	)
	s := ts.Space
	a := ts.Baddies(content.BaddieCrate)[0]
	oldUID := a.UID
	p, _ := s.LaunchProjectile(content.ProjCharged, false, pool.Ship, geom.V(60, 0), 0)
	ts.RunTicks(2)

	s.RemoveBaddie(a)
	b, ok := s.InsertBaddie(content.BaddieCrate, geom.V(115, 0), 0)
	if !ok {
		t.Fatal("insert failed")
	}
	if b.UID.Index() != oldUID.Index() || b.UID == oldUID {
		t.Fatalf("expected slot reuse with a new uid, old %s new %s", oldUID, b.UID)
	}
	if p.LastHit != oldUID {
		t.Fatalf("LastHit should still name the old occupant")
	}

	ts.RunTicks(1)
	if b.Health != 70 {
		t.Fatalf("new occupant should be hit, health %.0f", b.Health)
	}
	if p.LastHit != b.UID {
		t.Fatalf("LastHit should move to the new occupant")
	}
}

func TestProjectile_PoolExhaustion(t *testing.T) {
	ts := NewTestSim()
	s := ts.Space
	for i := 0; i < MaxProjectiles; i++ {
		if _, ok := s.LaunchProjectile(content.ProjPellet, true, pool.Null, geom.V(float64(i)*10, 1000), 0); !ok {
			t.Fatalf("insert %d failed below capacity", i)
		}
	}
	before := s.Projectiles
	p, ok := s.LaunchProjectile(content.ProjPellet, true, pool.Null, geom.V(0, 0), 1)
	if ok || p != nil {
		t.Fatal("insert into a full pool should report no slot")
	}
	if s.Projectiles != before {
		t.Fatal("failed insert changed existing projectiles")
	}
	if liveProjectiles(s) != MaxProjectiles {
		t.Fatalf("expected %d live, got %d", MaxProjectiles, liveProjectiles(s))
	}
	if !ts.SimLog.HasEntry("pool", "full", "projectile") {
		t.Fatal("expected a pool full log entry")
	}

	s.RemoveProjectile(&s.Projectiles[17])
	if _, ok := s.LaunchProjectile(content.ProjPellet, true, pool.Null, geom.V(0, 0), 1); !ok {
		t.Fatal("insert should succeed once a slot frees up")
	}
}

func TestProjectile_HomingStopsOnStaleTarget(t *testing.T) {
	ts := NewTestSim(WithBaddie(content.BaddieCrate, 300, 0, 0))
	s := ts.Space
	crate := ts.Baddies(content.BaddieCrate)[0]
	p, _ := s.LaunchProjectile(content.ProjSeeker, false, pool.Ship, geom.V(0, 40), 0)
	if !p.Homing || p.Target != crate.UID {
		t.Fatalf("seeker should lock on to the crate, homing=%v target=%s", p.Homing, p.Target)
	}

	s.RemoveBaddie(crate)
	s.InsertBaddie(content.BaddieCrate, geom.V(300, 0), 0)
	ts.RunTicks(1)
	if p.Homing {
		t.Fatal("seeker should stop homing once its target's uid goes stale")
	}
}

func TestProjectile_EnemyShotHurtsShip(t *testing.T) {
	ts := NewTestSim(WithShip(200, 0, 0))
	s := ts.Space
	s.LaunchProjectile(content.ProjPellet, true, pool.Null, geom.V(100, 0), 0)
	ts.RunUntil(func(ts *TestSim) bool { return liveProjectiles(ts.Space) == 0 }, 60)
	if s.Player.Shields != 92 {
		t.Fatalf("expected shields 92 after a pellet, got %.1f", s.Player.Shields)
	}
	if s.Ship.Invincible <= 0 {
		t.Fatal("a hit should start the invincibility window")
	}
}

func TestProjectile_PhasedShotPassesWalls(t *testing.T) {
	ts := NewTestSim(
		WithWall(content.WallBlock, 100, 0, 0),
		WithShip(200, 0, 0),
	)
	s := ts.Space
	s.LaunchProjectile(content.ProjFlame, true, pool.Null, geom.V(40, 0), 0)
	ts.RunUntil(func(ts *TestSim) bool { return liveProjectiles(ts.Space) == 0 }, 120)
	if s.Player.Shields >= 100 {
		t.Fatal("flame should pass the wall and burn the ship")
	}
}

func TestProjectile_BombDetonatesOnExpiry(t *testing.T) {
	ts := NewTestSim(WithBaddie(content.BaddieCrate, 60, 0, 0))
	s := ts.Space
	s.LaunchProjectile(content.ProjBomb, false, pool.Ship, geom.V(0, 0), 0)
	ts.RunUntil(func(ts *TestSim) bool { return liveProjectiles(ts.Space) == 0 }, 200)
	if len(ts.Baddies(content.BaddieCrate)) != 0 {
		t.Fatal("bomb splash should destroy the crate")
	}
	if !ts.SimLog.HasEntry("baddie", "kill", "crate") {
		t.Fatal("expected a kill log entry")
	}
}

func TestProjectile_EnemyShotStopsAtWallInFirerSlot(t *testing.T) {
	ts := NewTestSim(
		WithShip(200, 0, 0),
		WithBaddie(content.BaddieCrate, 0, 300, 0),
		WithWall(content.WallBlock, 100, 0, 0),
	)
	s := ts.Space
	firer := ts.Baddies(content.BaddieCrate)[0]
	s.LaunchProjectile(content.ProjPellet, true, firer.UID, geom.V(20, 0), 0)
	ts.RunUntil(func(ts *TestSim) bool { return liveProjectiles(ts.Space) == 0 }, 120)
	if s.Player.Shields != 100 {
		t.Fatalf("the wall should stop the shot, shields %.1f", s.Player.Shields)
	}
}

func TestProjectile_SplashOffWallReachesBaddieInSameSlot(t *testing.T) {
	ts := NewTestSim(
		WithShip(-300, 0, 0),
		WithBaddie(content.BaddieCrate, 60, 30, 0),
		WithWall(content.WallBlock, 100, 0, 0),
	)
	s := ts.Space
	if s.Baddies[0].UID != s.Walls[0].UID {
		t.Fatal("setup: slot-0 uids should coincide")
	}
	s.LaunchProjectile(content.ProjRocket, false, pool.Ship, geom.V(0, 0), 0)
	ts.RunUntil(func(ts *TestSim) bool { return liveProjectiles(ts.Space) == 0 }, 60)
	if len(ts.Baddies(content.BaddieCrate)) != 0 {
		t.Fatal("rocket splash off the block should destroy the crate")
	}
}
