package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/geom"
)

// ModeKind is the top-level state of play. Only ModeNormal runs the full
// simulation.
type ModeKind uint8

const (
	ModeNormal ModeKind = iota
	ModeDoorway
	ModeGameOver
	ModePausing
	ModeResuming
	ModeSavePoint
	ModeUpgrade
)

var modeNames = [...]string{"normal", "doorway", "gameover", "pausing", "resuming", "savepoint", "upgrade"}

func (m ModeKind) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Phase is a step within a mode.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseFadeOut
	PhaseFadeIn
	PhaseBoom
	PhaseBlackout
	PhaseDone
	PhaseOpen
	PhaseHold
	PhaseClose
)

var phaseNames = [...]string{"none", "fade_out", "fade_in", "boom", "blackout", "done", "open", "hold", "close"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Mode is the current mode and how far through its phase play is.
type Mode struct {
	Kind     ModeKind
	Phase    Phase
	Progress float64 // 0..1 through the phase
	Dest     int     // doorway: room being entered
	From     int     // doorway: room being left
	Upgrade  Upgrade // upgrade: what was collected
}

// phaseSeconds is how long each phase lasts.
func phaseSeconds(kind ModeKind, ph Phase) float64 {
	switch kind {
	case ModeDoorway:
		return 0.4
	case ModeGameOver:
		if ph == PhaseBoom {
			return 1.5
		}
		return 1
	case ModePausing, ModeResuming:
		return 0.25
	case ModeSavePoint:
		return 1
	case ModeUpgrade:
		if ph == PhaseHold {
			return 2
		}
		return 0.5
	}
	panic(fmt.Sprintf("game: no phases in %s", kind))
}

func (s *Space) setMode(kind ModeKind, ph Phase) {
	if s.Mode.Kind != kind || s.Mode.Phase != ph {
		s.Log.Add(s.Tick, "--", "mode", "change", fmt.Sprintf("%s/%s", kind, ph), 0)
	}
	s.Mode.Kind = kind
	s.Mode.Phase = ph
	s.Mode.Progress = 0
}

// advanceMode runs the non-normal mode machine.
func (s *Space) advanceMode(dt float64) {
	m := &s.Mode
	if m.Kind == ModeNormal {
		return
	}
	m.Progress = math.Min(1, m.Progress+dt/phaseSeconds(m.Kind, m.Phase))
	if m.Progress < 1 {
		return
	}
	switch m.Kind {
	case ModeDoorway:
		if m.Phase == PhaseFadeOut {
			s.shiftRoom()
			s.setMode(ModeDoorway, PhaseFadeIn)
			return
		}
		s.setMode(ModeNormal, PhaseNone)
	case ModeGameOver:
		switch m.Phase {
		case PhaseBoom:
			s.setMode(ModeGameOver, PhaseBlackout)
		case PhaseBlackout:
			s.setMode(ModeGameOver, PhaseDone)
			m.Progress = 1
		}
	case ModePausing:
		// Stay paused until Resume.
	case ModeResuming:
		s.setMode(ModeNormal, PhaseNone)
	case ModeSavePoint:
		s.Player.Shields = s.Player.MaxShields
		s.SaveRequested = true
		s.Log.Add(s.Tick, "ship", "ship", "save", fmt.Sprintf("room %d", s.Room), 0)
		s.setMode(ModeNormal, PhaseNone)
	case ModeUpgrade:
		switch m.Phase {
		case PhaseOpen:
			s.setMode(ModeUpgrade, PhaseHold)
		case PhaseHold:
			s.setMode(ModeUpgrade, PhaseClose)
		default:
			s.setMode(ModeNormal, PhaseNone)
		}
	default:
		panic(fmt.Sprintf("game: unhandled mode %s", m.Kind))
	}
}

// --- Transitions ---

// enterDoorway starts the fade through d.
func (s *Space) enterDoorway(d *Door) {
	s.Mode.Dest = d.Dest
	s.Mode.From = s.Room
	s.Ship.Vel = geom.Zero
	s.Sounds.StopMusic(0.4)
	s.setMode(ModeDoorway, PhaseFadeOut)
}

// shiftRoom loads the destination and puts the ship at the door leading
// back.
func (s *Space) shiftRoom() {
	from, dest := s.Mode.From, s.Mode.Dest
	if err := s.LoadRoom(dest); err != nil {
		s.Log.Add(s.Tick, "--", "room", "load_failed", err.Error(), float64(dest))
	}
	s.Sounds.Music(MusicRoom, 0.4)
	for i := range s.Doors {
		d := &s.Doors[i]
		if d.Live() && d.Dest == from {
			s.PlaceShip(d.arrivalPoint(s.Ship.Radius), d.Angle+math.Pi)
			return
		}
	}
	s.PlaceShip(geom.Zero, s.Ship.Angle)
}

// Pause starts fading to the pause screen.
func (s *Space) Pause() {
	if s.Mode.Kind == ModeNormal {
		s.setMode(ModePausing, PhaseNone)
	}
}

// Paused reports whether the pause fade has finished.
func (s *Space) Paused() bool { return s.Mode.Kind == ModePausing && s.Mode.Progress >= 1 }

// Resume leaves the pause screen.
func (s *Space) Resume() {
	if s.Mode.Kind == ModePausing {
		s.setMode(ModeResuming, PhaseNone)
	}
}

// EnterSavePoint refills shields and raises SaveRequested when done.
func (s *Space) EnterSavePoint() {
	if s.Mode.Kind == ModeNormal {
		s.Sounds.Play(SoundSave)
		s.setMode(ModeSavePoint, PhaseNone)
	}
}

// GrantUpgrade gives the player u and shows the upgrade banner.
func (s *Space) GrantUpgrade(u Upgrade) {
	s.Player.Grant(u)
	s.Mode.Upgrade = u
	s.Sounds.Play(SoundUpgrade)
	s.Log.Add(s.Tick, "ship", "ship", "upgrade", u.String(), 0)
	s.setMode(ModeUpgrade, PhaseOpen)
}

// GameOver reports whether the death sequence has finished.
func (s *Space) GameOver() bool { return s.Mode.Kind == ModeGameOver && s.Mode.Phase == PhaseDone }

// Restart revives the ship with full shields in room.
func (s *Space) Restart(room int) error {
	s.Ship = newShip(s.cfg.Ship.Radius)
	s.Player.Shields = s.Player.MaxShields
	s.Player.Energy = s.Player.MaxEnergy
	s.setMode(ModeNormal, PhaseNone)
	err := s.LoadRoom(room)
	s.PlaceShip(geom.Zero, 0)
	return err
}
