package entity

import (
	"snake-arcade/game/types"
)

// Snake is the player body, head first
type Snake struct {
	Body []types.Point
}

func NewSnake(cells ...types.Point) *Snake {
	body := make([]types.Point, len(cells))
	copy(body, cells)
	return &Snake{Body: body}
}

// Move prepends newHead and drops the tail unless the snake grows this step
func (s *Snake) Move(newHead types.Point, grow bool) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
	if !grow {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment sits on p
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the body
func (s *Snake) Clone() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
