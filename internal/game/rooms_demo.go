package game

import (
	"math"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

const (
	roomHalf = 400.0
	gapHalf  = float64(DoorWidth/2 + JambWidth)
)

// boundary walls an 800x800 room, leaving a door gap on each side listed
// in gaps (0 right, 1 top, 2 left, 3 bottom).
func boundary(gaps ...int) []WallSpec {
	open := [4]bool{}
	for _, g := range gaps {
		open[g] = true
	}
	var out []WallSpec
	for side := 0; side < 4; side++ {
		angle := float64(side) * math.Pi / 2
		normal := geom.Polar(roomHalf, angle)
		along := geom.Polar(1, angle+math.Pi/2)
		if !open[side] {
			for _, off := range []float64{-200, 200} {
				out = append(out, WallSpec{Kind: content.WallLongSlab, Pos: normal.Add(along.Mul(off)), Angle: angle + math.Pi/2})
			}
			continue
		}
		// Each half runs from the jamb to past the corner.
		centre := gapHalf + 200
		for _, sign := range []float64{-1, 1} {
			out = append(out, WallSpec{Kind: content.WallLongSlab, Pos: normal.Add(along.Mul(sign * centre)), Angle: angle + math.Pi/2})
		}
	}
	return out
}

func at(x, y float64) *geom.Vector {
	v := geom.V(x, y)
	return &v
}

// DemoRooms is a small three-room level: a hub, a foundry reached through
// a normal door and a reservoir behind a rocket door.
func DemoRooms() *RoomSet {
	hub := &RoomLayout{
		Name:  "hub",
		Walls: boundary(0, 2),
		Doors: []DoorSpec{
			{Kind: content.DoorNormal, Pos: geom.V(roomHalf, 0), Angle: 0, Dest: 1},
			{Kind: content.DoorRocket, Pos: geom.V(-roomHalf, 0), Angle: math.Pi, Dest: 2},
		},
		Baddies: []BaddieSpec{
			{Kind: content.BaddieTurret, Pos: geom.V(250, -250)},
			{Kind: content.BaddieTurret, Pos: geom.V(-250, 250)},
			{Kind: content.BaddieCrate, Pos: geom.V(150, 150)},
			{Kind: content.BaddieCrate, Pos: geom.V(-150, -150)},
			{Kind: content.BaddieZipper, Pos: geom.V(0, -300), Angle: 0.4},
		},
	}
	hub.Walls = append(hub.Walls,
		WallSpec{Kind: content.WallPillar, Pos: geom.V(0, 200)},
		WallSpec{Kind: content.WallBumper, Pos: geom.V(-200, 0)},
		WallSpec{Kind: content.WallCracked, Pos: geom.V(200, 0)},
		WallSpec{Kind: content.WallBlock, Pos: geom.V(0, -150)},
	)

	foundry := &RoomLayout{
		Name:  "foundry",
		Walls: boundary(2),
		Doors: []DoorSpec{{Kind: content.DoorNormal, Pos: geom.V(-roomHalf, 0), Angle: math.Pi, Dest: 0}},
		Gravfields: []GravSpec{
			{Kind: content.GravLava, Pos: geom.V(200, 300), Angle: -math.Pi / 2, Strength: 20,
				Trap: Trapezoid{HalfLength: 80, Width1: 300, Width2: 300}},
			{Kind: content.GravSectorPull, Pos: geom.V(250, -250), Strength: 150,
				Sector: Sector{Inner: 20, Thickness: 120, Sweep: 2 * math.Pi}},
		},
		Baddies: []BaddieSpec{
			{Kind: content.BaddieChaser, Pos: geom.V(200, 0)},
			{Kind: content.BaddieChaser, Pos: geom.V(250, 100)},
			{Kind: content.BaddieZipper, Pos: geom.V(0, 250), Angle: 2.2},
			{Kind: content.BaddieWanderer, Pos: geom.V(0, -250), Angle: 1},
		},
	}
	nw := len(foundry.Walls)
	foundry.Walls = append(foundry.Walls,
		WallSpec{Kind: content.WallArmored, Pos: geom.V(-60, -100)},
		WallSpec{Kind: content.WallBlock, Pos: geom.V(-100, 150)},
	)
	foundry.Baddies = append(foundry.Baddies,
		BaddieSpec{Kind: content.BaddieHauler, Pos: geom.V(-60, -160), Angle: 0, Carries: []int{nw}},
	)

	reservoir := &RoomLayout{
		Name:  "reservoir",
		Doors: []DoorSpec{{Kind: content.DoorNormal, Pos: geom.V(roomHalf, 0), Angle: 0, Dest: 0}},
		Gravfields: []GravSpec{
			{Kind: content.GravWater, Pos: geom.V(0, 250), Angle: -math.Pi / 2, Strength: 40,
				Trap: Trapezoid{HalfLength: 140, Width1: 780, Width2: 780}},
			{Kind: content.GravSectorSpin, Pos: geom.V(-200, -200), Strength: 120,
				Sector: Sector{Inner: 40, Thickness: 100, Sweep: 2 * math.Pi}},
			{Kind: content.GravTrapPull, Pos: geom.V(100, -250), Angle: math.Pi, Strength: 90,
				Trap: Trapezoid{HalfLength: 100, Offset: 20, Width1: 60, Width2: 120}},
		},
		Walls: append(boundary(0),
			WallSpec{Kind: content.WallPillar, Pos: geom.V(-200, 0)},
			WallSpec{Kind: content.WallVault, Pos: geom.V(150, -100)},
		),
		Baddies: []BaddieSpec{
			{Kind: content.BaddieOrbiter, Pos: geom.V(-100, 0), Pivot: at(-200, 0)},
			{Kind: content.BaddieOrbiter, Pos: geom.V(-300, 0), Pivot: at(-200, 0)},
			{Kind: content.BaddieTwinTurret, Pos: geom.V(-300, -300)},
			{Kind: content.BaddieWisp, Pos: geom.V(100, 100), Angle: 2},
			{Kind: content.BaddieWisp, Pos: geom.V(-100, 200), Angle: -1},
		},
		Timer: 90,
	}
	return &RoomSet{Rooms: map[int]*RoomLayout{0: hub, 1: foundry, 2: reservoir}}
}
