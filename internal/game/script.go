package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

// Script is an external hook attached to a door or baddie. It runs at its
// trigger point with the world it fired in.
type Script interface {
	Run(s *Space)
}

// ScriptFunc adapts a function to Script.
type ScriptFunc func(s *Space)

func (f ScriptFunc) Run(s *Space) { f(s) }

// Timer is the room countdown shown on the HUD.
type Timer struct {
	Active    bool
	Remaining float64
	OnExpire  Script
}

// StartTimer begins a countdown of seconds.
func (s *Space) StartTimer(seconds float64, onExpire Script) {
	s.Timer = Timer{Active: true, Remaining: seconds, OnExpire: onExpire}
	s.Sounds.Play(SoundAlarm)
}

func (s *Space) advanceTimer(dt float64) {
	t := &s.Timer
	if !t.Active {
		return
	}
	t.Remaining -= dt
	if t.Remaining > 0 {
		return
	}
	t.Remaining = 0
	t.Active = false
	s.Log.Add(s.Tick, "--", "timer", "expire", fmt.Sprintf("room %d", s.Room), 0)
	if t.OnExpire != nil {
		t.OnExpire.Run(s)
	}
}

// advanceCamera eases the camera toward the ship. Smoothing is the fraction
// of the gap left after one second, so the rate does not depend on dt.
func (s *Space) advanceCamera(dt float64) {
	k := 1 - math.Pow(s.cfg.Camera.Smoothing, dt)
	s.Camera = s.Camera.Add(s.Ship.Pos.Sub(s.Camera).Mul(k))
}

// --- Ready-made hooks ---

// SpawnScript drops a baddie of kind when run.
func SpawnScript(kind content.BaddieKind, pos geom.Vector, angle float64) Script {
	return ScriptFunc(func(s *Space) { s.InsertBaddie(kind, pos, angle) })
}

// FlagScript raises a player story flag when run.
func FlagScript(flag int) Script {
	return ScriptFunc(func(s *Space) { s.Player.SetFlag(flag) })
}

// Chain runs scripts in order.
func Chain(scripts ...Script) Script {
	return ScriptFunc(func(s *Space) {
		for _, sc := range scripts {
			sc.Run(s)
		}
	})
}
