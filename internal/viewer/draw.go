package viewer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/game"
	"github.com/Garsondee/Void-Runner/internal/geom"
)

// Palette.
var (
	colBackground = color.RGBA{R: 6, G: 8, B: 14, A: 255}
	colGrid       = color.RGBA{R: 18, G: 22, B: 34, A: 255}
	colWall       = color.RGBA{R: 120, G: 140, B: 170, A: 255}
	colBreakable  = color.RGBA{R: 170, G: 130, B: 90, A: 255}
	colDoor       = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	colDoorLocked = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colShip       = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	colBaddie     = color.RGBA{R: 255, G: 90, B: 70, A: 255}
	colFrozen     = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	colFlash      = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	colShot       = color.RGBA{R: 140, G: 255, B: 180, A: 255}
	colEnemyShot  = color.RGBA{R: 255, G: 160, B: 60, A: 255}
	colPickup     = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	colWater      = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	colLava       = color.RGBA{R: 230, G: 80, B: 20, A: 255}
	colGravity    = color.RGBA{R: 150, G: 90, B: 220, A: 255}
)

const gridSpacing = 100

// camera maps world coordinates to screen pixels, centred on Pos.
type camera struct {
	Pos           geom.Vector
	Zoom          float64
	Width, Height int
}

func (c camera) toScreen(p geom.Vector) (float32, float32) {
	d := p.Sub(c.Pos).Mul(c.Zoom)
	return float32(d.X + float64(c.Width)/2), float32(d.Y + float64(c.Height)/2)
}

// visible reports whether a circle of radius r at p may show on screen.
func (c camera) visible(p geom.Vector, r float64) bool {
	hw := float64(c.Width)/2/c.Zoom + r
	hh := float64(c.Height)/2/c.Zoom + r
	d := p.Sub(c.Pos)
	return math.Abs(d.X) <= hw && math.Abs(d.Y) <= hh
}

func (c camera) strokePath(dst *ebiten.Image, pts []geom.Vector, closed bool, clr color.Color) {
	n := len(pts)
	if n < 2 {
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		x0, y0 := c.toScreen(pts[i])
		x1, y1 := c.toScreen(pts[(i+1)%n])
		vector.StrokeLine(dst, x0, y0, x1, y1, 1.5, clr, true)
	}
}

func (c camera) strokePolygon(dst *ebiten.Image, p geom.Polygon, xf geom.Transform, clr color.Color) {
	pts := make([]geom.Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = xf.ToWorld(v)
	}
	c.strokePath(dst, pts, true, clr)
}

func (c camera) drawGrid(dst *ebiten.Image) {
	hw := float64(c.Width) / 2 / c.Zoom
	hh := float64(c.Height) / 2 / c.Zoom
	x0 := math.Floor((c.Pos.X-hw)/gridSpacing) * gridSpacing
	y0 := math.Floor((c.Pos.Y-hh)/gridSpacing) * gridSpacing
	for x := x0; x <= c.Pos.X+hw; x += gridSpacing {
		sx, _ := c.toScreen(geom.V(x, 0))
		vector.StrokeLine(dst, sx, 0, sx, float32(c.Height), 1, colGrid, false)
	}
	for y := y0; y <= c.Pos.Y+hh; y += gridSpacing {
		_, sy := c.toScreen(geom.V(0, y))
		vector.StrokeLine(dst, 0, sy, float32(c.Width), sy, 1, colGrid, false)
	}
}

// --- World ---

func (v *Viewer) drawWorld(dst *ebiten.Image, snap *game.Snapshot) {
	cam := v.camera(snap)
	dst.Fill(colBackground)
	cam.drawGrid(dst)
	stats := v.space.Stats()

	for _, g := range snap.Gravfields {
		clr := colGravity
		switch g.Kind {
		case content.GravWater:
			clr = colWater
		case content.GravLava:
			clr = colLava
		}
		cam.strokePath(dst, gravOutline(g), true, clr)
	}
	for _, w := range snap.Walls {
		clr := colWall
		if stats.Wall(w.Kind).BreakOn != 0 {
			clr = colBreakable
		}
		cam.strokePolygon(dst, stats.Wall(w.Kind).Polygon, geom.Place(geom.V(w.X, w.Y), w.Angle), clr)
	}
	for _, d := range snap.Doors {
		xf := geom.Place(geom.V(d.X, d.Y), d.Angle)
		clr := colDoor
		if d.Kind == content.DoorLocked {
			clr = colDoorLocked
		}
		for _, j := range game.DoorJambs {
			cam.strokePolygon(dst, j, xf, colWall)
		}
		if d.Openness < 1 {
			// The panel slides into the upper jamb as it opens.
			slide := geom.Place(geom.V(0, -d.Openness*game.DoorWidth), 0)
			cam.strokePolygon(dst, game.DoorPanel, xf.Compose(slide), clr)
		}
	}
	for _, p := range snap.Pickups {
		x, y := cam.toScreen(geom.V(p.X, p.Y))
		vector.StrokeCircle(dst, x, y, float32(6*cam.Zoom), 1.5, colPickup, true)
	}
	for _, b := range snap.Baddies {
		d := stats.Baddie(b.Kind)
		pos := geom.V(b.X, b.Y)
		if !cam.visible(pos, d.Polygon.BoundingRadius()+30) {
			continue
		}
		clr := baddieColor(b)
		cam.strokePolygon(dst, d.Polygon, geom.Place(pos, b.Angle), clr)
		for i, part := range b.Parts {
			if i < len(d.Components) {
				cam.strokePolygon(dst, d.Components[i].Polygon, geom.Place(geom.V(part.X, part.Y), part.Angle), clr)
			}
		}
	}
	for _, p := range snap.Projectiles {
		clr := colShot
		if p.Enemy {
			clr = colEnemyShot
		}
		tail := geom.V(p.X, p.Y).Sub(geom.Polar(6, p.Angle))
		x0, y0 := cam.toScreen(tail)
		x1, y1 := cam.toScreen(geom.V(p.X, p.Y))
		vector.StrokeLine(dst, x0, y0, x1, y1, 2, clr, true)
	}
	for _, p := range snap.Particles {
		x, y := cam.toScreen(geom.V(p.X, p.Y))
		a := uint8(255 * math.Max(0, math.Min(1, p.Life)))
		vector.FillCircle(dst, x, y, 1.5, color.RGBA{R: a, G: a, B: a / 2, A: a}, false)
	}
	if !snap.Ship.Dead && !snap.Ship.Blink {
		xf := geom.Place(geom.V(snap.Ship.X, snap.Ship.Y), snap.Ship.Angle)
		cam.strokePolygon(dst, v.space.Ship.Hull(), xf, colShip)
		if snap.Ship.Thrusting {
			r := v.space.Ship.Radius
			flame := geom.Poly(geom.V(-0.8*r, 0.4*r), geom.V(-1.6*r, 0), geom.V(-0.8*r, -0.4*r))
			cam.strokePolygon(dst, flame, xf, colEnemyShot)
		}
	}
}

func baddieColor(b game.BaddieState) color.Color {
	switch {
	case b.Flash > 0.5:
		return colFlash
	case b.Frozen > 0:
		return colFrozen
	}
	return colBaddie
}

// gravOutline returns a field's boundary in world coordinates.
func gravOutline(g game.GravState) []geom.Vector {
	xf := geom.Place(geom.V(g.X, g.Y), g.Angle)
	var local []geom.Vector
	switch g.Kind {
	case content.GravSectorPull, content.GravSectorSpin:
		local = sectorOutline(g.Sector, 24)
	default:
		t := g.Trap
		local = []geom.Vector{
			geom.V(-t.HalfLength, -t.Width1/2),
			geom.V(t.HalfLength, t.Offset-t.Width2/2),
			geom.V(t.HalfLength, t.Offset+t.Width2/2),
			geom.V(-t.HalfLength, t.Width1/2),
		}
	}
	out := make([]geom.Vector, len(local))
	for i, p := range local {
		out[i] = xf.ToWorld(p)
	}
	return out
}

// sectorOutline traces the outer arc forward and the inner arc back.
func sectorOutline(s game.Sector, segments int) []geom.Vector {
	sweep := math.Min(s.Sweep, 2*math.Pi)
	outer := s.Inner + s.Thickness
	pts := make([]geom.Vector, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		a := -sweep/2 + sweep*float64(i)/float64(segments)
		pts = append(pts, geom.Polar(outer, a))
	}
	for i := segments; i >= 0; i-- {
		a := -sweep/2 + sweep*float64(i)/float64(segments)
		pts = append(pts, geom.Polar(s.Inner, a))
	}
	return pts
}

// fadeAlpha is how dark the mode overlay should be, 0..1.
func fadeAlpha(snap *game.Snapshot) float64 {
	switch snap.Mode {
	case "doorway":
		if snap.Phase == "fade_out" {
			return snap.Fade
		}
		return 1 - snap.Fade
	case "gameover":
		switch snap.Phase {
		case "blackout":
			return snap.Fade
		case "done":
			return 1
		}
	case "pausing":
		return 0.6 * snap.Fade
	case "resuming":
		return 0.6 * (1 - snap.Fade)
	}
	return 0
}

func drawFade(dst *ebiten.Image, alpha float64, w, h int) {
	if alpha <= 0 {
		return
	}
	a := uint8(255 * math.Min(1, alpha))
	vector.FillRect(dst, 0, 0, float32(w), float32(h), color.RGBA{A: a}, false)
}
