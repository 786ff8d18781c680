package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	CellSize int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{CellSize: cellSize}
}

// CellOrigin is the top-left pixel of a cell.
func (fr *FieldRenderer) CellOrigin(c domain.Coord) (float32, float32) {
	return float32(c.X * fr.CellSize), float32(c.Y * fr.CellSize)
}

func (fr *FieldRenderer) DrawApples(screen *ebiten.Image, apples []domain.Coord) {
	r := float32(fr.CellSize) / 2

	for _, apple := range apples {
		x, y := fr.CellOrigin(apple)
		vector.DrawFilledCircle(screen, x+r, y+r, r, types.ColorApple, true)
	}
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Coord, dead bool) {
	size := float32(fr.CellSize)

	for i, cell := range body {
		x, y := fr.CellOrigin(cell)

		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.SnakeHeadColor
		}
		if dead {
			cellColor = types.Darken(cellColor, 0.5)
		}

		vector.DrawFilledRect(screen, x, y, size, size, cellColor, false)
	}
}
