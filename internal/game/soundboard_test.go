package game

import "testing"

func TestSoundboard_CapsAndDedupesOneShots(t *testing.T) {
	sb := NewSoundboard(3)
	sb.Play(SoundShot)
	sb.Play(SoundShot)
	sb.Play(SoundBump)
	sb.Play(SoundHurt)
	sb.Play(SoundPickup)
	got := sb.Pending().OneShots
	want := []SoundID{SoundShot, SoundBump, SoundHurt}
	if len(got) != len(want) {
		t.Fatalf("one-shots %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("one-shots %v, want %v", got, want)
		}
	}
}

func TestSoundboard_FirstMusicWins(t *testing.T) {
	sb := NewSoundboard(8)
	sb.Music(MusicRoom, 0.5)
	sb.StopMusic(2)
	f := sb.Drain()
	if f.Music == nil || f.Music.Track != MusicRoom || f.Music.Fade != 0.5 {
		t.Fatalf("expected the first request, got %+v", f.Music)
	}
	sb.StopMusic(2)
	if m := sb.Drain().Music; m == nil || m.Track != "" {
		t.Fatalf("expected a stop request, got %+v", m)
	}
}

func TestSoundboard_DrainStartsNewFrame(t *testing.T) {
	sb := NewSoundboard(8)
	sb.Loop(SoundThrust)
	sb.Loop(SoundThrust)
	sb.Persist(MusicVictory)
	sb.Hold(SoundBubbles)
	sb.Reset(SoundAlarm)
	f := sb.Drain()
	if len(f.Loops) != 1 || len(f.Persists) != 1 || len(f.Holds) != 1 || len(f.Resets) != 1 {
		t.Fatalf("unexpected frame %+v", f)
	}
	next := sb.Drain()
	if len(next.OneShots)+len(next.Loops)+len(next.Persists) != 0 || next.Music != nil {
		t.Fatalf("drain should leave an empty frame, got %+v", next)
	}
}

func TestSoundboard_SpaceUsesConfiguredCap(t *testing.T) {
	ts := NewTestSim()
	ids := []SoundID{SoundShot, SoundDryFire, SoundEnemyShot, SoundExplosion, SoundRicochet,
		SoundDeflect, SoundBump, SoundHurt, SoundPickup, SoundDoorOpen}
	for _, id := range ids {
		ts.Space.Sounds.Play(id)
	}
	if n := len(ts.Space.Sounds.Drain().OneShots); n != ts.Config.Sim.SoundsPerFrame {
		t.Fatalf("expected %d one-shots, got %d", ts.Config.Sim.SoundsPerFrame, n)
	}
}
