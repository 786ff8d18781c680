package domain

import "math/rand"

type Snake struct {
	segments  []Coord
	direction Direction
	pending   Direction
	grow      bool
	dead      bool
}

func NewSnake(body []Coord, dir Direction) *Snake {
	if len(body) == 0 {
		body = []Coord{{}}
	}
	segments := make([]Coord, len(body))
	copy(segments, body)
	return &Snake{
		segments:  segments,
		direction: dir,
		pending:   dir,
	}
}

func (s *Snake) Reset(start Coord) {
	s.segments = []Coord{start}
	s.direction = DirectionRight
	s.pending = DirectionRight
	s.grow = false
	s.dead = false
}

func (s *Snake) Head() Coord {
	return s.segments[0]
}

func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Coord {
	result := make([]Coord, len(s.segments))
	copy(result, s.segments)
	return result
}

func (s *Snake) Direction() Direction {
	return s.direction
}

func (s *Snake) Pending() Direction {
	return s.pending
}

func (s *Snake) Dead() bool {
	return s.dead
}

func (s *Snake) Growing() bool {
	return s.grow
}

// Steer sets the direction committed on the next Update. A turn back onto
// the current direction's opposite is rejected.
func (s *Snake) Steer(dir Direction) bool {
	if dir.IsOpposite(s.direction) {
		return false
	}
	s.pending = dir
	return true
}

// HandleInput tries held actions in Up, Down, Left, Right order and applies
// the first one that Steer accepts.
func (s *Snake) HandleInput(in InputSource) bool {
	for _, p := range steerPriority {
		if in.Pressed(p.action) && s.Steer(p.dir) {
			return true
		}
	}
	return false
}

// Update advances the snake one tick. Growth is deferred: eating sets a flag
// and the extra segment appears on the following tick. It reports whether
// an apple was eaten.
func (s *Snake) Update(field *Field, apples []*Apple, rng *rand.Rand) bool {
	s.direction = s.pending

	if s.grow {
		s.segments = append(s.segments, Coord{})
		s.grow = false
	}

	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}
	s.segments[0] = field.Move(s.segments[0], s.direction)

	ate := false
	head := s.segments[0]
	for _, apple := range apples {
		if apple.Position.Equals(head) {
			s.grow = true
			ate = true
			apple.Respawn(rng, field, s.Segments())
		}
	}

	if s.collidesWithSelf() {
		s.dead = true
	}

	return ate
}

func (s *Snake) collidesWithSelf() bool {
	head := s.segments[0]
	for i := 1; i < len(s.segments); i++ {
		if s.segments[i].Equals(head) {
			return true
		}
	}
	return false
}
