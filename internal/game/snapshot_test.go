package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

func TestSnapshot_CopiesLiveWorld(t *testing.T) {
	ts := NewTestSim(
		WithShip(10.04, -3.26, 0.5),
		WithBaddie(content.BaddieTwinTurret, 300, 0, 0),
		WithWall(content.WallPillar, -200, 0, 0),
		WithDoor(content.DoorRocket, 0, 300, 0, 2),
		WithField(content.GravWater, 0, -400, 0, 10, Trapezoid{HalfLength: 50, Width1: 40, Width2: 40}, Sector{}),
	)
	ts.Space.InsertPickup(content.PickupRockets, geom.V(50, 50))
	ts.Space.StartTimer(12, nil)

	snap := ts.Space.Snapshot()
	assert.Equal(t, ts.Space.SessionID.String(), snap.Session)
	assert.Equal(t, "normal", snap.Mode)
	assert.Equal(t, 10.0, snap.Ship.X)
	assert.Equal(t, -3.3, snap.Ship.Y)
	assert.Equal(t, 12.0, snap.Timer)
	require.Len(t, snap.Baddies, 1)
	assert.Len(t, snap.Baddies[0].Parts, 2, "twin turret has two barrels")
	assert.Len(t, snap.Walls, 1)
	assert.Len(t, snap.Doors, 1)
	assert.Len(t, snap.Gravfields, 1)
	assert.Len(t, snap.Pickups, 1)
	assert.Empty(t, snap.Projectiles)
}

func TestSnapshot_EncodeRoundTrip(t *testing.T) {
	ts := NewTestSim(WithRooms(DemoRooms()), WithStartRoom(2))
	ts.RunTicks(30)
	snap := ts.Space.Snapshot()

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = DecodeSnapshot([]byte{0xc1})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "game: decode snapshot"))
}

func TestSnapshot_ParticleLifeFraction(t *testing.T) {
	ts := NewTestSim()
	ts.Space.InsertParticle(ParticleSmoke, geom.Zero, geom.Zero, 1)
	ts.RunTicks(15)
	snap := ts.Space.Snapshot()
	require.Len(t, snap.Particles, 1)
	assert.InDelta(t, 0.75, snap.Particles[0].Life, 1e-9)
}

func TestDebugReport_Sections(t *testing.T) {
	ts := NewTestSim(WithBaddie(content.BaddieChaser, 200, 0, 0), WithDoor(content.DoorNormal, -300, 0, 0, 1))
	ts.Space.GrantUpgrade(UpgradeRockets)
	ts.RunTicks(10)
	r := ts.Space.DebugReport(0)
	for _, want := range []string{
		"--- Void Runner debug report ---",
		"session=" + ts.Space.SessionID.String(),
		"== SHIP ==", "upgrades=rockets", "== POOLS ==", "== BADDIES ==", "chaser#",
		"== DOORS ==", "== EVENTS ==", "upgrade",
	} {
		assert.Contains(t, r, want)
	}
	assert.Contains(t, r, "tick_range=[0..10]")
}

func TestDebugReport_EmptyWorld(t *testing.T) {
	ts := NewTestSim()
	ts.RunTicks(200)
	r := ts.Space.DebugReport(50)
	assert.Contains(t, r, "tick_range=[151..200]")
	assert.Contains(t, r, "  (none)")
	assert.Contains(t, r, "(no events in range)")
}
