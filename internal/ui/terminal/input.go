package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake/internal/domain"
)

// KeyInput collects key presses between frames. Terminals report presses
// (with auto-repeat) rather than held keys, so a key counts as held for the
// frame after it arrives and Clear is called once that frame is done.
type KeyInput struct {
	held domain.KeyState
}

func NewKeyInput() *KeyInput {
	return &KeyInput{held: make(domain.KeyState)}
}

func (k *KeyInput) Pressed(action domain.Action) bool {
	return k.held.Pressed(action)
}

func (k *KeyInput) Clear() {
	clear(k.held)
}

// HandleEvent records the action bound to a key event. Other events are
// ignored.
func (k *KeyInput) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if action, ok := keyAction(key); ok {
		k.held[action] = true
	}
}

func keyAction(ev *tcell.EventKey) (domain.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.ActionUp, true
	case tcell.KeyDown:
		return domain.ActionDown, true
	case tcell.KeyLeft:
		return domain.ActionLeft, true
	case tcell.KeyRight:
		return domain.ActionRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.ActionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return domain.ActionUp, true
		case 's', 'S', 'j':
			return domain.ActionDown, true
		case 'a', 'A', 'h':
			return domain.ActionLeft, true
		case 'd', 'D', 'l':
			return domain.ActionRight, true
		case 'q', 'Q':
			return domain.ActionQuit, true
		}
	}
	return 0, false
}
