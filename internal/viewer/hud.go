package viewer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Void-Runner/internal/game"
)

const (
	hudLineHeight = 14
	hudPad        = 6
)

var (
	hudFace  = text.NewGoXFace(basicfont.Face7x13)
	colHUD   = color.RGBA{R: 200, G: 220, B: 255, A: 255}
	colPanel = color.RGBA{R: 4, G: 6, B: 12, A: 200}
	colAlert = color.RGBA{R: 255, G: 120, B: 80, A: 255}
)

// hudLines is the status panel text for one frame.
func hudLines(snap *game.Snapshot, p *game.Player, autopilot bool) []string {
	lines := []string{
		fmt.Sprintf("ROOM %d  T=%d  %s", snap.Room, snap.Tick, strings.ToUpper(snap.Mode)),
		fmt.Sprintf("SHIELDS %3.0f/%-3.0f  ENERGY %3.0f", snap.Shields, snap.MaxShields, snap.Energy),
		fmt.Sprintf("GUN %s  ORDNANCE %s", p.ActiveGun(), p.Ordnance),
	}
	if p.MaxRockets > 0 || p.MaxBombs > 0 {
		lines = append(lines, fmt.Sprintf("ROCKETS %d/%d  BOMBS %d/%d", snap.Rockets, p.MaxRockets, snap.Bombs, p.MaxBombs))
	}
	if snap.Timer > 0 {
		lines = append(lines, fmt.Sprintf("TIMER %5.1f", snap.Timer))
	}
	switch {
	case snap.InLava:
		lines = append(lines, "HULL HEATING")
	case snap.InWater:
		lines = append(lines, "SUBMERGED")
	}
	if autopilot {
		lines = append(lines, "AUTOPILOT")
	}
	return lines
}

// helpLines lists the key bindings.
var helpLines = []string{
	"arrows/WASD fly  SPACE fire  SHIFT utility",
	"TAB gun  P pause  F1 autopilot  F9 copy report",
	"F10 ending  R restart  H help",
}

func drawPanel(dst *ebiten.Image, lines []string, x, y int, clr color.Color) {
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	w := float32(width*7 + 2*hudPad)
	h := float32(len(lines)*hudLineHeight + 2*hudPad)
	vector.FillRect(dst, float32(x), float32(y), w, h, colPanel, false)
	vector.StrokeRect(dst, float32(x), float32(y), w, h, 1, colGrid, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+hudPad), float64(y+hudPad))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	text.Draw(dst, strings.Join(lines, "\n"), hudFace, op)
}

// centreBanner draws msg in the middle of the screen.
func centreBanner(dst *ebiten.Image, msg string, w, h int) {
	x := (w - len(msg)*7) / 2
	drawPanel(dst, []string{msg}, x-hudPad, h/2-hudLineHeight, colAlert)
}
