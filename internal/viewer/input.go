package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Void-Runner/internal/game"
)

// KeyState reports whether a key is held. ebiten.IsKeyPressed satisfies it.
type KeyState func(ebiten.Key) bool

// Bindings maps each control to the keys that drive it.
type Bindings struct {
	Left, Right     []ebiten.Key
	Thrust, Reverse []ebiten.Key
	Fire, Utility   []ebiten.Key
}

// DefaultBindings uses arrows or WASD to fly, space to fire and shift as
// the utility modifier.
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Thrust:  []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Reverse: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Fire:    []ebiten.Key{ebiten.KeySpace},
		Utility: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	}
}

// Controls reads one frame of input.
func (b Bindings) Controls(pressed KeyState) game.Controls {
	return game.Controls{
		Left:    anyPressed(pressed, b.Left),
		Right:   anyPressed(pressed, b.Right),
		Thrust:  anyPressed(pressed, b.Thrust),
		Reverse: anyPressed(pressed, b.Reverse),
		Fire:    anyPressed(pressed, b.Fire),
		Utility: anyPressed(pressed, b.Utility),
	}
}

func anyPressed(pressed KeyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
