// Package viewer is the ebiten front end: it polls the keyboard into ship
// controls, steps the simulation at a fixed rate and draws wireframes of
// the world snapshot.
package viewer

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Void-Runner/internal/game"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

// Options configures a Viewer.
type Options struct {
	Width, Height int
	Zoom          float64
	StartRoom     int
	Bindings      Bindings
}

// DefaultOptions returns a 1280x800 window at native zoom.
func DefaultOptions() Options {
	return Options{Width: 1280, Height: 800, Zoom: 1, Bindings: DefaultBindings()}
}

// Viewer implements ebiten.Game over a Space.
type Viewer struct {
	space *game.Space
	opts  Options
	dt    float64

	autopilot *game.Autopilot
	autoOn    bool
	victory   *game.Victory
	showHelp  bool

	// Last progress written at a save point, restored on restart.
	saved    []byte
	saveRoom int

	status      string
	statusTicks int
	lastSounds  game.SoundFrame
}

// New wraps s. The Space should already have its start room loaded.
func New(s *game.Space, opts Options) *Viewer {
	if opts.Zoom <= 0 {
		opts.Zoom = 1
	}
	return &Viewer{
		space:     s,
		opts:      opts,
		dt:        s.Config().TickSeconds(),
		autopilot: game.NewAutopilot(),
		saveRoom:  opts.StartRoom,
		showHelp:  true,
	}
}

// Update runs one simulation tick per frame.
func (v *Viewer) Update() error {
	v.handleKeys()
	s := v.space

	if v.victory != nil {
		v.victory.Advance(s, v.dt)
		if v.victory.Done {
			v.victory = nil
			v.restart()
		}
		v.drainSounds()
		return nil
	}

	switch {
	case v.autoOn:
		s.Controls = v.autopilot.Controls(s)
	default:
		s.Controls = v.opts.Bindings.Controls(ebiten.IsKeyPressed)
	}
	s.Step(v.dt)

	if s.SaveRequested {
		v.save()
	}
	v.drainSounds()
	if v.statusTicks > 0 {
		v.statusTicks--
	}
	return nil
}

func (v *Viewer) handleKeys() {
	s := v.space
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.Mode.Kind == game.ModePausing {
			s.Resume()
		} else {
			s.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.Player.CycleGun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		v.autoOn = !v.autoOn
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showHelp = !v.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		v.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) && v.victory == nil {
		v.victory = game.NewVictory()
		v.victory.Begin(s)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.GameOver() {
		v.restart()
	}
}

// save keeps the player record in memory; writing it to disk is left to
// the host.
func (v *Viewer) save() {
	s := v.space
	s.SaveRequested = false
	b, err := game.EncodeProgress(s.Player)
	if err != nil {
		v.setStatus(err.Error())
		return
	}
	v.saved, v.saveRoom = b, s.Room
	v.setStatus(fmt.Sprintf("progress saved in room %d", s.Room))
}

func (v *Viewer) restart() {
	s := v.space
	if v.saved != nil {
		p, err := game.DecodeProgress(v.saved)
		if err != nil {
			v.setStatus(err.Error())
		} else {
			*s.Player = *p
		}
	}
	if err := s.Restart(v.saveRoom); err != nil {
		v.setStatus(err.Error())
	}
}

func (v *Viewer) copyReport() {
	if err := clipboard.WriteAll(v.space.DebugReport(0)); err != nil {
		v.setStatus("clipboard: " + err.Error())
		return
	}
	v.setStatus("debug report copied to clipboard")
}

func (v *Viewer) setStatus(msg string) {
	v.status = msg
	v.statusTicks = 3 * int(1/v.dt)
}

// drainSounds takes the frame's audio requests. There is no audio backend;
// the last frame is kept for the HUD.
func (v *Viewer) drainSounds() {
	f := v.space.Sounds.Drain()
	if len(f.OneShots) > 0 || f.Music != nil {
		v.lastSounds = f
	}
}

func (v *Viewer) camera(snap *game.Snapshot) camera {
	return camera{
		Pos:    geom.V(snap.CameraX, snap.CameraY),
		Zoom:   v.opts.Zoom,
		Width:  v.opts.Width,
		Height: v.opts.Height,
	}
}

// Draw renders the current snapshot.
func (v *Viewer) Draw(screen *ebiten.Image) {
	snap := v.space.Snapshot()
	v.drawWorld(screen, snap)
	drawFade(screen, fadeAlpha(snap), v.opts.Width, v.opts.Height)

	drawPanel(screen, hudLines(snap, v.space.Player, v.autoOn), 8, 8, colHUD)
	if v.showHelp {
		drawPanel(screen, helpLines, 8, v.opts.Height-len(helpLines)*hudLineHeight-2*hudPad-8, colHUD)
	}
	if v.statusTicks > 0 {
		drawPanel(screen, []string{v.status}, v.opts.Width/2-len(v.status)*7/2, 8, colHUD)
	}

	switch {
	case v.victory != nil:
		centreBanner(screen, "VICTORY - "+v.victory.StepName(), v.opts.Width, v.opts.Height)
	case v.space.GameOver():
		centreBanner(screen, "SHIP LOST - press R", v.opts.Width, v.opts.Height)
	case v.space.Paused():
		centreBanner(screen, "PAUSED", v.opts.Width, v.opts.Height)
	case v.space.Mode.Kind == game.ModeUpgrade:
		centreBanner(screen, "UPGRADE: "+v.space.Mode.Upgrade.String(), v.opts.Width, v.opts.Height)
	}
}

// Layout fixes the logical screen size.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.opts.Width, v.opts.Height
}
