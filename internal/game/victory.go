package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Cue is a scripted event at a time mark within a victory step.
type Cue struct {
	At float64
	Do func(s *Space, v *Victory)
}

// VictoryStep is one timed stage of the ending.
type VictoryStep struct {
	Name     string
	Duration float64
	Cues     []Cue // ordered by At
}

// Victory plays the ending sequence on a Space using the normal pools and
// behaviors, driven by time marks instead of input.
type Victory struct {
	Step    int
	Elapsed float64
	Done    bool

	steps []VictoryStep
	fired int
	cast  []pool.UID // baddies the current step spawned
}

// NewVictory returns the sequence with the built-in steps.
func NewVictory() *Victory { return NewVictoryWith(defaultVictorySteps()) }

// NewVictoryWith returns a sequence over steps.
func NewVictoryWith(steps []VictoryStep) *Victory {
	return &Victory{steps: steps, Done: len(steps) == 0}
}

// StepName names the current step, or "done".
func (v *Victory) StepName() string {
	if v.Done {
		return "done"
	}
	return v.steps[v.Step].Name
}

// Begin clears the world and parks the ship for the ending.
func (v *Victory) Begin(s *Space) {
	s.ClearPools()
	s.Ship.Vel = geom.Zero
	s.Controls = Controls{}
	s.setMode(ModeNormal, PhaseNone)
	s.Sounds.Music(MusicVictory, 1)
	v.logStep(s)
}

// Advance runs dt seconds of the ending: cues due, then baddies,
// projectiles and particles. Crossing a step boundary clears the pools.
func (v *Victory) Advance(s *Space, dt float64) {
	if v.Done {
		return
	}
	s.Tick++
	s.Time += dt
	v.Elapsed += dt
	step := &v.steps[v.Step]
	for v.fired < len(step.Cues) && step.Cues[v.fired].At <= v.Elapsed {
		step.Cues[v.fired].Do(s, v)
		v.fired++
	}
	s.ageTransients(dt)
	s.updateBaddies(dt)
	s.moveProjectiles(dt)
	s.advanceCamera(dt)

	if v.Elapsed < step.Duration {
		return
	}
	s.ClearPools()
	v.Step++
	v.Elapsed = 0
	v.fired = 0
	v.cast = v.cast[:0]
	if v.Step >= len(v.steps) {
		v.Done = true
		s.Sounds.StopMusic(2)
	}
	v.logStep(s)
}

func (v *Victory) logStep(s *Space) {
	s.Log.Add(s.Tick, "--", "victory", "step", v.StepName(), float64(v.Step))
}

// Spawn inserts a baddie and remembers it as part of the step's cast.
func (v *Victory) Spawn(s *Space, kind content.BaddieKind, pos geom.Vector, angle float64) *Baddie {
	b, ok := s.InsertBaddie(kind, pos, angle)
	if !ok {
		return nil
	}
	v.cast = append(v.cast, b.UID)
	return b
}

// SetCastState switches the steering state of every surviving cast member.
func (v *Victory) SetCastState(s *Space, state int) {
	for _, uid := range v.cast {
		if b, ok := s.LookupBaddie(uid); ok {
			b.State = state
		}
	}
}

// Cast returns the uids spawned in the current step.
func (v *Victory) Cast() []pool.UID { return v.cast }

func defaultVictorySteps() []VictoryStep {
	fleet := func(s *Space, v *Victory) {
		for i := 0; i < 5; i++ {
			y := -160 + 80*float64(i)
			v.Spawn(s, content.BaddieChaser, s.Ship.Pos.Add(geom.V(-350, y)), 0)
		}
	}
	salute := func(s *Space, v *Victory) {
		for i := 0; i < 12; i++ {
			a := float64(i) * math.Pi / 6
			s.LaunchProjectile(content.ProjPulse, false, pool.Ship, s.Ship.Pos, a)
		}
	}
	wisps := func(n int) func(*Space, *Victory) {
		return func(s *Space, v *Victory) {
			for i := 0; i < n; i++ {
				a := s.rng.Float64() * 2 * math.Pi
				v.Spawn(s, content.BaddieWisp, s.Ship.Pos.Add(geom.Polar(120, a)), a)
			}
		}
	}
	burst := func(s *Space, v *Victory) {
		off := geom.Polar(100+100*s.rng.Float64(), s.rng.Float64()*2*math.Pi)
		s.SpawnBurst(ParticleFlash, s.Ship.Pos.Add(off), 6, 60)
		s.SpawnBurst(ParticleSpark, s.Ship.Pos.Add(off), 30, 220)
		s.Sounds.Play(SoundExplosion)
	}
	return []VictoryStep{
		{Name: "start", Duration: 1},
		{Name: "fleet", Duration: 4, Cues: []Cue{
			{At: 0, Do: fleet},
			{At: 2.5, Do: func(s *Space, v *Victory) { v.SetCastState(s, StateScatter) }},
		}},
		{Name: "salute", Duration: 3, Cues: []Cue{
			{At: 0, Do: wisps(4)},
			{At: 0.5, Do: wisps(4)},
			{At: 1.5, Do: salute},
			{At: 2.2, Do: func(s *Space, v *Victory) { v.SetCastState(s, StateReturn) }},
		}},
		{Name: "finale", Duration: 3, Cues: []Cue{
			{At: 0, Do: burst},
			{At: 1, Do: burst},
			{At: 2, Do: burst},
		}},
	}
}

func (v *Victory) String() string {
	return fmt.Sprintf("victory %s t=%.2f", v.StepName(), v.Elapsed)
}
