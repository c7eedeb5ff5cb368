package game

// SoundID names a sound effect or music track for the audio layer.
type SoundID string

const (
	SoundShot      SoundID = "shot"
	SoundDryFire   SoundID = "dry_fire"
	SoundEnemyShot SoundID = "enemy_shot"
	SoundExplosion SoundID = "explosion"
	SoundRicochet  SoundID = "ricochet"
	SoundDeflect   SoundID = "deflect"
	SoundBump      SoundID = "bump"
	SoundHurt      SoundID = "hurt"
	SoundShipDeath SoundID = "ship_death"
	SoundPickup    SoundID = "pickup"
	SoundDoorOpen  SoundID = "door_open"
	SoundDoorClose SoundID = "door_close"
	SoundWallBreak SoundID = "wall_break"
	SoundUpgrade   SoundID = "upgrade"
	SoundSave      SoundID = "save"
	SoundThrust    SoundID = "thrust"
	SoundBubbles   SoundID = "bubbles"
	SoundSizzle    SoundID = "sizzle"
	SoundAlarm     SoundID = "alarm"

	MusicRoom    SoundID = "music_room"
	MusicVictory SoundID = "music_victory"
)

// MusicRequest is the one music change a frame may carry. An empty Track
// stops the music.
type MusicRequest struct {
	Track SoundID
	Fade  float64 // seconds
}

// SoundFrame is what the audio layer drains once per frame.
type SoundFrame struct {
	OneShots []SoundID
	Loops    []SoundID // keep playing; a loop missing from a frame stops
	Persists []SoundID // keep playing until interrupted
	Holds    []SoundID // pause without stopping
	Resets   []SoundID // rewind
	Music    *MusicRequest
}

// Soundboard collects sound requests made during a frame. It is
// fire-and-forget: nothing in the simulation waits on playback.
type Soundboard struct {
	limit int
	frame SoundFrame
}

// NewSoundboard caps one-shots at limit per frame.
func NewSoundboard(limit int) *Soundboard {
	return &Soundboard{limit: limit}
}

// Play queues a one-shot. Requests past the frame cap and duplicates within
// a frame are dropped.
func (sb *Soundboard) Play(id SoundID) {
	if len(sb.frame.OneShots) >= sb.limit || contains(sb.frame.OneShots, id) {
		return
	}
	sb.frame.OneShots = append(sb.frame.OneShots, id)
}

// Loop keeps id playing for this frame.
func (sb *Soundboard) Loop(id SoundID) { sb.frame.Loops = appendOnce(sb.frame.Loops, id) }

// Persist keeps id playing across frames until something interrupts it.
func (sb *Soundboard) Persist(id SoundID) { sb.frame.Persists = appendOnce(sb.frame.Persists, id) }

// Hold pauses id.
func (sb *Soundboard) Hold(id SoundID) { sb.frame.Holds = appendOnce(sb.frame.Holds, id) }

// Reset rewinds id.
func (sb *Soundboard) Reset(id SoundID) { sb.frame.Resets = appendOnce(sb.frame.Resets, id) }

// Music changes track with a fade. Only the first request in a frame counts.
func (sb *Soundboard) Music(track SoundID, fade float64) {
	if sb.frame.Music == nil {
		sb.frame.Music = &MusicRequest{Track: track, Fade: fade}
	}
}

// StopMusic fades the music out.
func (sb *Soundboard) StopMusic(fade float64) { sb.Music("", fade) }

// Drain hands the frame's requests to the audio layer and starts a new
// frame.
func (sb *Soundboard) Drain() SoundFrame {
	f := sb.frame
	sb.frame = SoundFrame{}
	return f
}

// Pending returns the current frame without draining it.
func (sb *Soundboard) Pending() SoundFrame { return sb.frame }

func appendOnce(ids []SoundID, id SoundID) []SoundID {
	if contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func contains(ids []SoundID, id SoundID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
