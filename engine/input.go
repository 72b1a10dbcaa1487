package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/pongclassic/game"
)

// Keyboard answers whether a key is currently held.
type Keyboard interface {
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

// DefaultKeyboard reads ebiten's key state.
func DefaultKeyboard() Keyboard { return ebitenKeyboard{} }

// KeyBindings maps every game key to the physical keys that trigger it.
type KeyBindings map[game.Key][]ebiten.Key

// DefaultKeyBindings: player 1 on comma/O (W/S also work), player 2 on the
// arrow keys.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		game.KeyPlayer1Up:   {ebiten.KeyComma, ebiten.KeyW},
		game.KeyPlayer1Down: {ebiten.KeyO, ebiten.KeyS},
		game.KeyPlayer2Up:   {ebiten.KeyArrowUp},
		game.KeyPlayer2Down: {ebiten.KeyArrowDown},
	}
}

// PollInput samples the keyboard once for the current frame.
func PollInput(keyboard Keyboard, bindings KeyBindings) game.Input {
	return game.NewInput(func(key game.Key) bool {
		for _, physical := range bindings[key] {
			if keyboard.IsKeyPressed(physical) {
				return true
			}
		}
		return false
	})
}
