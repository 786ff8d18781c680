package components

import (
	"fmt"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gameOverText = "Game Over"

type Overlay struct {
	fonts *types.Fonts
}

func NewOverlay(fonts *types.Fonts) *Overlay {
	return &Overlay{fonts: fonts}
}

// DrawGameOver dims the field and centers the message on it.
func (o *Overlay) DrawGameOver(screen *ebiten.Image, w, h int) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorOverlay, false)

	bounds := text.BoundString(o.fonts.Title, gameOverText)
	x := (w-bounds.Dx())/2 - bounds.Min.X
	y := (h-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, gameOverText, o.fonts.Title, x, y, types.ColorText)
}

func (o *Overlay) DrawScore(screen *ebiten.Image, score int) {
	line := fmt.Sprintf("Length: %d", score+1)
	bounds := text.BoundString(o.fonts.Normal, line)
	text.Draw(screen, line, o.fonts.Normal, 8, 8-bounds.Min.Y, types.ColorTextDim)
}
