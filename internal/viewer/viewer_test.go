package viewer

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/game"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

func held(keys ...ebiten.Key) KeyState {
	return func(k ebiten.Key) bool {
		for _, h := range keys {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestBindingsControls(t *testing.T) {
	b := DefaultBindings()
	assert.Equal(t, game.Controls{}, b.Controls(held()))

	c := b.Controls(held(ebiten.KeyA, ebiten.KeyArrowUp, ebiten.KeySpace))
	assert.True(t, c.Left)
	assert.True(t, c.Thrust)
	assert.True(t, c.Fire)
	assert.False(t, c.Right)
	assert.False(t, c.Utility)

	c = b.Controls(held(ebiten.KeyShiftRight, ebiten.KeyS))
	assert.True(t, c.Utility)
	assert.True(t, c.Reverse)
}

func TestCameraMapping(t *testing.T) {
	c := camera{Pos: geom.V(100, 50), Zoom: 2, Width: 800, Height: 600}
	x, y := c.toScreen(geom.V(100, 50))
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	x, y = c.toScreen(geom.V(110, 40))
	assert.Equal(t, float32(420), x)
	assert.Equal(t, float32(280), y)

	assert.True(t, c.visible(geom.V(300, 50), 0), "right edge at half width / zoom")
	assert.False(t, c.visible(geom.V(301, 50), 0))
	assert.True(t, c.visible(geom.V(301, 50), 5), "radius reaches in")
	assert.False(t, c.visible(geom.V(100, 250), 0))
}

func TestSectorOutline(t *testing.T) {
	s := game.Sector{Inner: 50, Thickness: 30, Sweep: math.Pi / 2}
	pts := sectorOutline(s, 8)
	require.Len(t, pts, 18)
	for _, p := range pts[:9] {
		assert.InDelta(t, 80, p.Norm(), 1e-9)
	}
	for _, p := range pts[9:] {
		assert.InDelta(t, 50, p.Norm(), 1e-9)
	}
	assert.InDelta(t, -math.Pi/4, pts[0].Theta(), 1e-9)
	assert.InDelta(t, math.Pi/4, pts[8].Theta(), 1e-9)
}

func TestGravOutlinePlacesTrapezoid(t *testing.T) {
	g := game.GravState{
		Kind: content.GravTrapPull, X: 10, Y: 20, Angle: math.Pi / 2,
		Trap: game.Trapezoid{HalfLength: 40, Width1: 20, Width2: 60},
	}
	pts := gravOutline(g)
	require.Len(t, pts, 4)
	assert.InDelta(t, 20, pts[0].X, 1e-9)
	assert.InDelta(t, -20, pts[0].Y, 1e-9)
	assert.InDelta(t, 40, pts[1].X, 1e-9)
	assert.InDelta(t, 60, pts[1].Y, 1e-9)
}

func TestFadeAlpha(t *testing.T) {
	cases := []struct {
		mode, phase string
		fade, want  float64
	}{
		{"normal", "none", 0.5, 0},
		{"doorway", "fade_out", 0.25, 0.25},
		{"doorway", "fade_in", 0.25, 0.75},
		{"gameover", "boom", 0.9, 0},
		{"gameover", "blackout", 0.5, 0.5},
		{"gameover", "done", 0, 1},
		{"pausing", "none", 1, 0.6},
		{"resuming", "none", 1, 0},
	}
	for _, tc := range cases {
		snap := &game.Snapshot{Mode: tc.mode, Phase: tc.phase, Fade: tc.fade}
		assert.InDelta(t, tc.want, fadeAlpha(snap), 1e-9, "%s/%s", tc.mode, tc.phase)
	}
}

func TestHUDLines(t *testing.T) {
	p := game.NewPlayer()
	snap := &game.Snapshot{Room: 2, Tick: 40, Mode: "normal", Shields: 75, MaxShields: 100, Energy: 50}
	lines := hudLines(snap, p, false)
	require.Len(t, lines, 3)
	assert.Equal(t, "ROOM 2  T=40  NORMAL", lines[0])
	assert.Contains(t, lines[1], "SHIELDS  75/100")

	p.Grant(game.UpgradeRockets)
	snap.Rockets, snap.Timer, snap.InLava = 10, 12.5, true
	lines = hudLines(snap, p, true)
	assert.Contains(t, lines, "ROCKETS 10/10  BOMBS 0/0")
	assert.Contains(t, lines, "TIMER  12.5")
	assert.Contains(t, lines, "HULL HEATING")
	assert.Equal(t, "AUTOPILOT", lines[len(lines)-1])
}

func TestSaveAndRestartRestoresProgress(t *testing.T) {
	ts := game.NewTestSim(game.WithRooms(game.DemoRooms()))
	s := ts.Space
	v := New(s, DefaultOptions())

	s.Player.Grant(game.UpgradeRockets)
	s.SaveRequested = true
	v.save()
	assert.False(t, s.SaveRequested)
	require.NotNil(t, v.saved)
	assert.Equal(t, "progress saved in room 0", v.status)

	s.Player.Rockets = 0
	s.Player.Shields = 5
	v.restart()
	assert.Equal(t, 10, s.Player.Rockets)
	assert.Equal(t, s.Player.MaxShields, s.Player.Shields)
	assert.Equal(t, game.ModeNormal, s.Mode.Kind)
}

func TestLayoutIsFixed(t *testing.T) {
	ts := game.NewTestSim()
	v := New(ts.Space, Options{Width: 640, Height: 480})
	w, h := v.Layout(1920, 1080)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, 1.0, v.opts.Zoom)
}
