package domain

import (
	"math/rand"
	"testing"
)

func TestAppleRespawnAvoidsSnake(t *testing.T) {
	field := NewField(4, 4)

	// Twelve of sixteen cells taken; only the bottom row is free.
	var occupied []Coord
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			occupied = append(occupied, Coord{x, y})
		}
	}

	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		apple := &Apple{}
		apple.Respawn(rng, field, occupied)

		if ContainsCoord(occupied, apple.Position) {
			t.Fatalf("seed %d: apple placed on occupied cell %v", seed, apple.Position)
		}
		if !field.Contains(apple.Position) {
			t.Fatalf("seed %d: apple outside field at %v", seed, apple.Position)
		}
	}
}

func TestNewApplesDeterministic(t *testing.T) {
	field := NewField(40, 30)
	occupied := []Coord{{5, 5}}

	a := NewApples(5, rand.New(rand.NewSource(42)), field, occupied)
	b := NewApples(5, rand.New(rand.NewSource(42)), field, occupied)

	if len(a) != 5 {
		t.Fatalf("got %d apples, want 5", len(a))
	}
	pa, pb := ApplePositions(a), ApplePositions(b)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("apple %d: %v vs %v with the same seed", i, pa[i], pb[i])
		}
		if pa[i] == (Coord{5, 5}) {
			t.Errorf("apple %d spawned on the snake", i)
		}
	}
}
