package domain

import "math/rand"

// Apple is a single food item. Apples are independent of each other: a
// respawn only avoids the cells it is given, so two apples may share a cell.
type Apple struct {
	Position Coord
}

// Respawn samples uniformly random cells until one is not in occupied.
// It never returns if occupied covers the whole field.
func (a *Apple) Respawn(rng *rand.Rand, field *Field, occupied []Coord) {
	for {
		pos := Coord{
			X: rng.Intn(field.Width),
			Y: rng.Intn(field.Height),
		}
		if !ContainsCoord(occupied, pos) {
			a.Position = pos
			return
		}
	}
}

func NewApples(n int, rng *rand.Rand, field *Field, occupied []Coord) []*Apple {
	apples := make([]*Apple, n)
	for i := range apples {
		apples[i] = &Apple{}
		apples[i].Respawn(rng, field, occupied)
	}
	return apples
}

func ApplePositions(apples []*Apple) []Coord {
	result := make([]Coord, 0, len(apples))
	for _, a := range apples {
		result = append(result, a.Position)
	}
	return result
}
