package domain

import "fmt"

type Coord struct {
	X int
	Y int
}

func (c Coord) Add(other Coord) Coord {
	return Coord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

func (c Coord) Equals(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ContainsCoord reports whether c is one of cells.
func ContainsCoord(cells []Coord, c Coord) bool {
	for _, cell := range cells {
		if cell.Equals(c) {
			return true
		}
	}
	return false
}
