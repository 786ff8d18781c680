// Package terminal renders the game into a tcell screen and turns key
// events into domain actions.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake/internal/domain"
)

// CellWidth is the number of terminal columns per grid cell. Two columns
// keep cells roughly square in most fonts.
const CellWidth = 2

const gameOverText = "GAME OVER"

type Renderer struct {
	screen tcell.Screen

	appleStyle tcell.Style
	snakeStyle tcell.Style
	headStyle  tcell.Style
	deadStyle  tcell.Style
	textStyle  tcell.Style
	dimStyle   tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &Renderer{
		screen:     screen,
		appleStyle: base.Foreground(tcell.ColorRed),
		snakeStyle: base.Foreground(tcell.ColorGreen),
		headStyle:  base.Foreground(tcell.ColorDarkGreen),
		deadStyle:  base.Foreground(tcell.ColorGray),
		textStyle:  base.Foreground(tcell.ColorWhite).Bold(true),
		dimStyle:   base.Foreground(tcell.ColorGray),
	}
}

// Fits reports whether the whole field plus the status line is visible.
func (r *Renderer) Fits(field domain.Field) bool {
	w, h := r.screen.Size()
	return w >= field.Width*CellWidth && h >= field.Height+1
}

func (r *Renderer) Draw(scene domain.Scene) {
	r.screen.Clear()

	for _, apple := range scene.Apples {
		r.setCell(apple, '(', ')', r.appleStyle)
	}

	for i, cell := range scene.Snake {
		style := r.snakeStyle
		if i == 0 {
			style = r.headStyle
		}
		if scene.GameOver {
			style = r.deadStyle
		}
		r.setCell(cell, '█', '█', style)
	}

	status := fmt.Sprintf("Length: %d  |  arrows/WASD to move, Esc or q to quit", scene.Score+1)
	r.drawText(0, scene.Field.Height, status, r.dimStyle)

	if scene.GameOver {
		fieldCols := scene.Field.Width * CellWidth
		x := (fieldCols - len(gameOverText)) / 2
		r.drawText(x, scene.Field.Height/2, gameOverText, r.textStyle)
	}

	r.screen.Show()
}

func (r *Renderer) setCell(c domain.Coord, left, right rune, style tcell.Style) {
	x := c.X * CellWidth
	r.screen.SetContent(x, c.Y, left, nil, style)
	r.screen.SetContent(x+1, c.Y, right, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
