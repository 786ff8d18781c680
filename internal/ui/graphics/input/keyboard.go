package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardHandler reports held keys as domain actions. It reads live key
// state, so it has nothing to buffer between frames.
type KeyboardHandler struct {
	bindings map[domain.Action][]ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		bindings: map[domain.Action][]ebiten.Key{
			domain.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
			domain.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
			domain.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
			domain.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		},
	}
}

func (kh *KeyboardHandler) Pressed(action domain.Action) bool {
	if action == domain.ActionQuit {
		return IsEscapePressed()
	}
	for _, key := range kh.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
