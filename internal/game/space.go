package game

import (
	"fmt"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"

	"github.com/Garsondee/Void-Runner/internal/config"
	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
	"github.com/Garsondee/Void-Runner/internal/pool"
)

// Pool capacities. Inserting past these drops the spawn.
const (
	MaxBaddies     = 100
	MaxDoors       = 20
	MaxWalls       = 250
	MaxGravfields  = 50
	MaxParticles   = 500
	MaxPickups     = 100
	MaxProjectiles = 250
)

// Space is the world: one ship, the entity pools for the current room and the
// player record that outlives room changes. A Space must not be copied.
type Space struct {
	SessionID uuid.UUID
	Tick      int     // monotonic animation clock
	Time      float64 // simulated seconds
	Room      int

	Ship     Ship
	Player   *Player
	Controls Controls

	Baddies     [MaxBaddies]Baddie
	Doors       [MaxDoors]Door
	Walls       [MaxWalls]Wall
	Gravfields  [MaxGravfields]Gravfield
	Particles   [MaxParticles]Particle
	Pickups     [MaxPickups]Pickup
	Projectiles [MaxProjectiles]Projectile

	Camera geom.Vector
	Timer  Timer
	Mode   Mode
	Env    Environment // gravity-field output for the last tick

	// SaveRequested is raised when a save point finishes; the persistence
	// layer clears it after writing Player.
	SaveRequested bool

	Sounds  *Soundboard
	Log     *SimLog
	Metrics *Metrics

	cfg   *config.Config
	stats StatsProvider
	rooms RoomLoader
	rng   *rand.Rand
	noise *perlin.Perlin
}

// Setup carries the collaborators a Space is built from. Config and Stats
// are required; the rest default to inert values.
type Setup struct {
	Config  *config.Config
	Stats   StatsProvider
	Rooms   RoomLoader
	Player  *Player
	Log     *SimLog
	Metrics *Metrics
	Seed    int64
}

// NewSpace validates the setup and returns an empty room with the ship at
// the origin.
func NewSpace(st Setup) (*Space, error) {
	if st.Config == nil || st.Stats == nil {
		return nil, fmt.Errorf("game: setup needs config and stats")
	}
	if err := st.Config.Validate(); err != nil {
		return nil, err
	}
	if err := checkStats(st.Stats); err != nil {
		return nil, err
	}
	seed := st.Seed
	if seed == 0 {
		seed = st.Config.Sim.Seed
	}
	s := &Space{
		SessionID: uuid.New(),
		Player:    st.Player,
		Sounds:    NewSoundboard(st.Config.Sim.SoundsPerFrame),
		Log:       st.Log,
		Metrics:   st.Metrics,
		cfg:       st.Config,
		stats:     st.Stats,
		rooms:     st.Rooms,
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay RNG
		noise:     perlin.NewPerlin(2, 2, 3, seed),
	}
	if s.Player == nil {
		s.Player = NewPlayer()
	}
	if s.Log == nil {
		s.Log = NewSimLog(false)
	}
	s.Ship = newShip(st.Config.Ship.Radius)
	return s, nil
}

// Config returns the tuning in use.
func (s *Space) Config() *config.Config { return s.cfg }

// Stats returns the content lookup in use.
func (s *Space) Stats() StatsProvider { return s.stats }

// Rand exposes the gameplay RNG to scripts.
func (s *Space) Rand() *rand.Rand { return s.rng }

// LoadRoom clears the pools and asks the room loader to populate room.
func (s *Space) LoadRoom(room int) error {
	s.ClearPools()
	s.Room = room
	s.Player.VisitRoom(room)
	s.Log.Add(s.Tick, "--", "room", "enter", fmt.Sprintf("room %d", room), float64(room))
	if s.rooms == nil {
		return nil
	}
	if err := s.rooms.LoadRoom(s, room); err != nil {
		return fmt.Errorf("game: load room %d: %w", room, err)
	}
	return nil
}

// ClearPools marks every slot absent. UIDs stay in place so that the next
// occupant of each slot still gets a fresh one.
func (s *Space) ClearPools() {
	for i := range s.Baddies {
		s.Baddies[i].Kind = content.BaddieNone
	}
	for i := range s.Doors {
		s.Doors[i].Kind = content.DoorNone
	}
	for i := range s.Walls {
		s.Walls[i].Kind = content.WallNone
	}
	for i := range s.Gravfields {
		s.Gravfields[i].Kind = content.GravNone
	}
	for i := range s.Particles {
		s.Particles[i].Kind = ParticleNone
	}
	for i := range s.Pickups {
		s.Pickups[i].Kind = content.PickupNone
	}
	for i := range s.Projectiles {
		s.Projectiles[i].Kind = content.ProjNone
	}
	s.Timer = Timer{}
}

// poolFull records a dropped spawn.
func (s *Space) poolFull(name string) {
	s.Log.Add(s.Tick, "--", "pool", "full", name, 0)
	s.Metrics.dropped(name)
}

// PoolCounts returns the live count of every pool, keyed by pool name.
func (s *Space) PoolCounts() map[string]int {
	return map[string]int{
		"baddie":     pool.Count(s.Baddies[:]),
		"door":       pool.Count(s.Doors[:]),
		"wall":       pool.Count(s.Walls[:]),
		"gravfield":  pool.Count(s.Gravfields[:]),
		"particle":   pool.Count(s.Particles[:]),
		"pickup":     pool.Count(s.Pickups[:]),
		"projectile": pool.Count(s.Projectiles[:]),
	}
}

// --- UID lookups ---

// LookupBaddie resolves a baddie uid, reporting false if it has gone.
func (s *Space) LookupBaddie(uid pool.UID) (*Baddie, bool) { return pool.Lookup(s.Baddies[:], uid) }

// LookupDoor resolves a door uid.
func (s *Space) LookupDoor(uid pool.UID) (*Door, bool) { return pool.Lookup(s.Doors[:], uid) }

// LookupWall resolves a wall uid.
func (s *Space) LookupWall(uid pool.UID) (*Wall, bool) { return pool.Lookup(s.Walls[:], uid) }

// LookupGravfield resolves a gravity field uid.
func (s *Space) LookupGravfield(uid pool.UID) (*Gravfield, bool) {
	return pool.Lookup(s.Gravfields[:], uid)
}

func mustLive(live bool, what string) {
	if !live {
		panic("game: remove on absent " + what)
	}
}
