package game

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

// ErrUnknownRoom is returned for a room number with no layout.
var ErrUnknownRoom = errors.New("game: unknown room")

// RoomLoader populates a freshly cleared Space with a room's contents.
type RoomLoader interface {
	LoadRoom(s *Space, room int) error
}

// RoomFunc adapts a function to RoomLoader.
type RoomFunc func(s *Space, room int) error

func (f RoomFunc) LoadRoom(s *Space, room int) error { return f(s, room) }

// --- Layouts ---

type WallSpec struct {
	Kind  content.WallKind
	Pos   geom.Vector
	Angle float64
}

type DoorSpec struct {
	Kind  content.DoorKind
	Pos   geom.Vector
	Angle float64
	Dest  int
}

// BaddieSpec places a baddie. Pivot, when set, becomes Home (the orbit
// centre for orbiters). Carries lists indexes into the room's Walls.
type BaddieSpec struct {
	Kind    content.BaddieKind
	Pos     geom.Vector
	Angle   float64
	Pivot   *geom.Vector
	State   int
	Carries []int
}

type GravSpec struct {
	Kind     content.GravKind
	Pos      geom.Vector
	Angle    float64
	Strength float64
	Trap     Trapezoid
	Sector   Sector
}

// RoomLayout is everything placed when a room loads.
type RoomLayout struct {
	Name       string
	Walls      []WallSpec
	Doors      []DoorSpec
	Baddies    []BaddieSpec
	Gravfields []GravSpec
	Timer      float64 // seconds; zero for none
}

// Populate inserts the layout into s. Pool overflow drops the excess like
// any other spawn.
func (l *RoomLayout) Populate(s *Space) {
	walls := make([]*Wall, len(l.Walls))
	for i, w := range l.Walls {
		walls[i], _ = s.InsertWall(w.Kind, w.Pos, w.Angle)
	}
	for _, d := range l.Doors {
		s.InsertDoor(d.Kind, d.Pos, d.Angle, d.Dest)
	}
	for _, g := range l.Gravfields {
		s.InsertGravfield(g.Kind, g.Pos, g.Angle, g.Strength, g.Trap, g.Sector)
	}
	for _, bs := range l.Baddies {
		b, ok := s.InsertBaddie(bs.Kind, bs.Pos, bs.Angle)
		if !ok {
			continue
		}
		if bs.Pivot != nil {
			b.Home = *bs.Pivot
		}
		b.State = bs.State
		b.Param = 1
		if bs.Kind == content.BaddieWanderer || bs.Kind == content.BaddieWisp {
			b.Param = b.Angle
		}
		for _, wi := range bs.Carries {
			if wi >= 0 && wi < len(walls) && walls[wi] != nil {
				b.Attach(CargoWall, walls[wi].UID)
			}
		}
	}
	if l.Timer > 0 {
		s.StartTimer(l.Timer, nil)
	}
}

// RoomSet is a table of layouts keyed by room number.
type RoomSet struct {
	Rooms map[int]*RoomLayout
}

// LoadRoom implements RoomLoader.
func (rs *RoomSet) LoadRoom(s *Space, room int) error {
	l, ok := rs.Rooms[room]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRoom, room)
	}
	l.Populate(s)
	return nil
}

// Numbers lists the rooms in order.
func (rs *RoomSet) Numbers() []int {
	out := make([]int, 0, len(rs.Rooms))
	for n := range rs.Rooms {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// --- YAML form ---

// On disk, angles are in degrees and kinds are names.

type fileRoom struct {
	Name    string       `yaml:"name"`
	Timer   float64      `yaml:"timer"`
	Walls   []filePlaced `yaml:"walls"`
	Doors   []filePlaced `yaml:"doors"`
	Baddies []filePlaced `yaml:"baddies"`
	Fields  []fileField  `yaml:"fields"`
}

type filePlaced struct {
	Kind    string      `yaml:"kind"`
	X       float64     `yaml:"x"`
	Y       float64     `yaml:"y"`
	Angle   float64     `yaml:"angle"`
	Dest    int         `yaml:"dest"`
	Pivot   *[2]float64 `yaml:"pivot"`
	State   int         `yaml:"state"`
	Carries []int       `yaml:"carries"`
}

type fileField struct {
	Kind       string  `yaml:"kind"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Angle      float64 `yaml:"angle"`
	Strength   float64 `yaml:"strength"`
	HalfLength float64 `yaml:"half_length"`
	Offset     float64 `yaml:"offset"`
	Width1     float64 `yaml:"width1"`
	Width2     float64 `yaml:"width2"`
	Inner      float64 `yaml:"inner"`
	Thickness  float64 `yaml:"thickness"`
	Sweep      float64 `yaml:"sweep"`
}

// LoadRoomSet reads room layouts from a YAML file keyed by room number.
func LoadRoomSet(path string) (*RoomSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("game: read rooms %s: %w", path, err)
	}
	return ParseRoomSet(data)
}

// ParseRoomSet decodes YAML room layouts.
func ParseRoomSet(data []byte) (*RoomSet, error) {
	var file map[int]fileRoom
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("game: decode rooms: %w", err)
	}
	rs := &RoomSet{Rooms: make(map[int]*RoomLayout, len(file))}
	for n, fr := range file {
		l, err := fr.layout()
		if err != nil {
			return nil, fmt.Errorf("game: room %d: %w", n, err)
		}
		rs.Rooms[n] = l
	}
	return rs, nil
}

func (fr fileRoom) layout() (*RoomLayout, error) {
	l := &RoomLayout{Name: fr.Name, Timer: fr.Timer}
	for _, w := range fr.Walls {
		k, err := parseKind(w.Kind, content.ParseWallKind)
		if err != nil {
			return nil, err
		}
		l.Walls = append(l.Walls, WallSpec{Kind: k, Pos: geom.V(w.X, w.Y), Angle: geom.Radians(w.Angle)})
	}
	for _, d := range fr.Doors {
		k, err := parseKind(d.Kind, content.ParseDoorKind)
		if err != nil {
			return nil, err
		}
		l.Doors = append(l.Doors, DoorSpec{Kind: k, Pos: geom.V(d.X, d.Y), Angle: geom.Radians(d.Angle), Dest: d.Dest})
	}
	for _, b := range fr.Baddies {
		k, err := parseKind(b.Kind, content.ParseBaddieKind)
		if err != nil {
			return nil, err
		}
		for _, wi := range b.Carries {
			if wi < 0 || wi >= len(fr.Walls) {
				return nil, fmt.Errorf("%s carries wall %d of %d", b.Kind, wi, len(fr.Walls))
			}
		}
		bs := BaddieSpec{Kind: k, Pos: geom.V(b.X, b.Y), Angle: geom.Radians(b.Angle), State: b.State, Carries: b.Carries}
		if b.Pivot != nil {
			p := geom.V(b.Pivot[0], b.Pivot[1])
			bs.Pivot = &p
		}
		l.Baddies = append(l.Baddies, bs)
	}
	for _, f := range fr.Fields {
		k, err := parseKind(f.Kind, content.ParseGravKind)
		if err != nil {
			return nil, err
		}
		l.Gravfields = append(l.Gravfields, GravSpec{
			Kind: k, Pos: geom.V(f.X, f.Y), Angle: geom.Radians(f.Angle), Strength: f.Strength,
			Trap:   Trapezoid{HalfLength: f.HalfLength, Offset: f.Offset, Width1: f.Width1, Width2: f.Width2},
			Sector: Sector{Inner: f.Inner, Thickness: f.Thickness, Sweep: geom.Radians(f.Sweep)},
		})
	}
	return l, nil
}

// parseKind resolves name with parse and rejects the absent kind.
func parseKind[K ~uint8](name string, parse func(string) (K, error)) (K, error) {
	k, err := parse(name)
	if err == nil && k == 0 {
		err = fmt.Errorf("cannot place %q: %w", name, content.ErrUnknownKind)
	}
	return k, err
}
