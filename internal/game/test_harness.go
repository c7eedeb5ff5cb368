package game

import (
	"fmt"

	"github.com/Garsondee/Void-Runner/internal/config"
	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

// TestSim is a headless harness around a Space used by tests and the
// headless runner. It has no Ebiten dependency and is deterministic for a
// given seed.
type TestSim struct {
	Space  *Space
	SimLog *SimLog
	Config *config.Config
	Stats  *content.Table
	DT     float64

	seed    int64
	rooms   RoomLoader
	metrics *Metrics
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, content, seed, verbose: applied before the Space exists
	simOptWorld                       // place ship and entities: applied after the Space is built
	simOptScript                      // player and input tweaks: applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.seed = seed }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.SimLog = NewSimLog(v) }}
}

// WithConfig edits the tuning before the Space is built.
func WithConfig(edit func(*config.Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { edit(ts.Config) }}
}

// WithContent edits the content table before the Space is built.
func WithContent(edit func(*content.Table)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { edit(ts.Stats) }}
}

// WithRooms installs a room loader.
func WithRooms(r RoomLoader) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.rooms = r }}
}

// WithMetrics reports to m.
func WithMetrics(m *Metrics) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.metrics = m }}
}

// WithStartRoom loads room through the room loader.
func WithStartRoom(room int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		if err := ts.Space.LoadRoom(room); err != nil {
			panic(err)
		}
	}}
}

// WithShip places the ship.
func WithShip(x, y, angle float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) { ts.Space.PlaceShip(geom.V(x, y), angle) }}
}

// WithWall places a wall.
func WithWall(kind content.WallKind, x, y, angle float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) { ts.Space.InsertWall(kind, geom.V(x, y), angle) }}
}

// WithDoor places a door leading to dest.
func WithDoor(kind content.DoorKind, x, y, angle float64, dest int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) { ts.Space.InsertDoor(kind, geom.V(x, y), angle, dest) }}
}

// WithBaddie spawns a baddie.
func WithBaddie(kind content.BaddieKind, x, y, angle float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) { ts.Space.InsertBaddie(kind, geom.V(x, y), angle) }}
}

// WithField places a gravity field.
func WithField(kind content.GravKind, x, y, angle, strength float64, trap Trapezoid, sector Sector) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Space.InsertGravfield(kind, geom.V(x, y), angle, strength, trap, sector)
	}}
}

// WithPlayer edits the player record.
func WithPlayer(edit func(*Player)) SimOption {
	return SimOption{simOptScript, func(ts *TestSim) { edit(ts.Space.Player) }}
}

// WithControls holds the given input for every tick.
func WithControls(c Controls) SimOption {
	return SimOption{simOptScript, func(ts *TestSim) { ts.Space.Controls = c }}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (config, content, seed, verbose)
//  2. Build the Space
//  3. World placement
//  4. Player and input
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		Config: config.Default(),
		Stats:  content.Default(),
		seed:   1,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	sp, err := NewSpace(Setup{
		Config:  ts.Config,
		Stats:   ts.Stats,
		Rooms:   ts.rooms,
		Log:     ts.SimLog,
		Metrics: ts.metrics,
		Seed:    ts.seed,
	})
	if err != nil {
		panic(fmt.Sprintf("test sim: %v", err))
	}
	ts.Space = sp
	ts.DT = ts.Config.TickSeconds()
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptScript {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks of DT.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Space.Step(ts.DT)
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Space.Step(ts.DT)
		if predicate(ts) {
			return ts.Space.Tick
		}
	}
	return -1
}

// Baddies returns the live baddies of kind, in slot order.
func (ts *TestSim) Baddies(kind content.BaddieKind) []*Baddie {
	var out []*Baddie
	for i := range ts.Space.Baddies {
		if b := &ts.Space.Baddies[i]; b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Doors returns the live doors in slot order.
func (ts *TestSim) Doors() []*Door {
	var out []*Door
	for i := range ts.Space.Doors {
		if d := &ts.Space.Doors[i]; d.Live() {
			out = append(out, d)
		}
	}
	return out
}
