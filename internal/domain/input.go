package domain

type Action int

const (
	ActionUp Action = iota + 1
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
)

// InputSource reports which logical actions are held for the current frame.
type InputSource interface {
	Pressed(action Action) bool
}

// KeyState is an InputSource backed by a plain map.
type KeyState map[Action]bool

func (k KeyState) Pressed(action Action) bool {
	return k[action]
}

type NoInput struct{}

func (NoInput) Pressed(Action) bool { return false }

// steerPriority is the order in which simultaneously held keys are tried.
// The order is arbitrary but fixed: changing it changes which turn wins.
var steerPriority = []struct {
	action Action
	dir    Direction
}{
	{ActionUp, DirectionUp},
	{ActionDown, DirectionDown},
	{ActionLeft, DirectionLeft},
	{ActionRight, DirectionRight},
}
