package domain

type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

// Wrap maps v into [0, dim). Values past either edge re-enter from the
// opposite side, so dim wraps to 0 and -1 wraps to dim-1.
func Wrap(v, dim int) int {
	v %= dim
	if v < 0 {
		v += dim
	}
	return v
}

func (f *Field) Normalize(c Coord) Coord {
	return Coord{X: Wrap(c.X, f.Width), Y: Wrap(c.Y, f.Height)}
}

func (f *Field) Move(c Coord, d Direction) Coord {
	return f.Normalize(c.Add(d.Delta()))
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Cells() int {
	return f.Width * f.Height
}
