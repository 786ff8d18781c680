package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorApple      = color.RGBA{255, 0, 0, 255}
	ColorSnake      = color.RGBA{0, 255, 0, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
	ColorTextDim    = color.RGBA{150, 150, 150, 255}
	ColorOverlay    = color.RGBA{0, 0, 0, 140}
)

// SnakeHeadColor is a darker shade so the head stands out from the body.
var SnakeHeadColor = Darken(ColorSnake, 0.7)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
