package domain

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		v, dim, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{12, 5, 2},
		{0, 1, 0},
		{-1, 1, 0},
	}

	for _, tt := range tests {
		if got := Wrap(tt.v, tt.dim); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.v, tt.dim, got, tt.want)
		}
	}
}

func TestWrapRange(t *testing.T) {
	for dim := 1; dim <= 9; dim++ {
		for v := -50; v <= 50; v++ {
			got := Wrap(v, dim)
			if got < 0 || got >= dim {
				t.Fatalf("Wrap(%d, %d) = %d, outside [0, %d)", v, dim, got, dim)
			}
			if v >= 0 && v < dim && got != v {
				t.Fatalf("Wrap(%d, %d) = %d, want identity", v, dim, got)
			}
		}
	}
}

func TestFieldMove(t *testing.T) {
	f := NewField(5, 4)

	tests := []struct {
		from Coord
		dir  Direction
		want Coord
	}{
		{Coord{4, 1}, DirectionRight, Coord{0, 1}},
		{Coord{0, 1}, DirectionLeft, Coord{4, 1}},
		{Coord{2, 0}, DirectionUp, Coord{2, 3}},
		{Coord{2, 3}, DirectionDown, Coord{2, 0}},
		{Coord{2, 2}, DirectionRight, Coord{3, 2}},
	}

	for _, tt := range tests {
		if got := f.Move(tt.from, tt.dir); got != tt.want {
			t.Errorf("Move(%v, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
	}
}

func TestFieldContains(t *testing.T) {
	f := NewField(3, 2)
	if !f.Contains(Coord{2, 1}) {
		t.Error("expected (2,1) inside 3x2 field")
	}
	if f.Contains(Coord{3, 0}) || f.Contains(Coord{0, -1}) {
		t.Error("expected cells past the edge to be outside")
	}
	if f.Cells() != 6 {
		t.Errorf("Cells() = %d, want 6", f.Cells())
	}
}
