package entity

import (
	"jedi-snake/game/types"
)

// Snake is the player's body, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

// NewSnake lays out length cells from head towards the left, moving right.
func NewSnake(head types.Point, length, cell int) *Snake {
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X - i*cell, Y: head.Y})
	}
	return &Snake{
		Body:      body,
		Direction: types.Right,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the head position after one step in the current direction.
func (s *Snake) NextHead(cell int) types.Point {
	head := s.GetHead()
	off := s.Direction.Offset(cell)
	return types.Point{X: head.X + off.X, Y: head.Y + off.Y}
}

// Move prepends newHead; the tail stays until RemoveTail.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Truncate keeps at most n cells from the head.
func (s *Snake) Truncate(n int) {
	if n < len(s.Body) {
		s.Body = s.Body[:n]
	}
}

func (s *Snake) SetDirection(dir types.Direction) {
	// A reversal would run the head straight into the neck
	if dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

// Contains reports whether any body cell is at p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
