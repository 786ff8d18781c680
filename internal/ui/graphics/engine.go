package graphics

import (
	"errors"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const WindowTitle = "Snake Game"

// Engine is the ebiten.Game that drives the app once per update and draws
// its scene every frame.
type Engine struct {
	width  int
	height int

	app      *app.App
	keyboard *input.KeyboardHandler
	field    *components.FieldRenderer
	overlay  *components.Overlay
}

func NewEngine(a *app.App, fonts *types.Fonts) *Engine {
	cfg := a.Config()
	w, h := cfg.ScreenSize()

	return &Engine{
		width:    w,
		height:   h,
		app:      a,
		keyboard: input.NewKeyboardHandler(),
		field:    components.NewFieldRenderer(cfg.CellSize),
		overlay:  components.NewOverlay(fonts),
	}
}

// Run blocks until the window is closed or the player quits.
func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	if err := e.app.Frame(e.keyboard); err != nil {
		if errors.Is(err, domain.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	scene := e.app.Scene()
	e.field.DrawApples(screen, scene.Apples)
	e.field.DrawSnake(screen, scene.Snake, scene.GameOver)
	e.overlay.DrawScore(screen, scene.Score)

	if scene.GameOver {
		e.overlay.DrawGameOver(screen, e.width, e.height)
	}
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}
