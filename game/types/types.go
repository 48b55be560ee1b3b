package types

import (
	"fmt"
	"strings"
	"time"
)

// Point is a single grid cell
type Point struct {
	X, Y int
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	DefaultGridWidth  = 20 // 400px canvas / 20px cells
	DefaultGridHeight = 20
	StartLength       = 3
)

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Advance steps head one cell in direction d. Each axis wraps on its own,
// so leaving one edge re-enters at the opposite one. The second result
// reports whether a wrap happened on either axis.
func (g Grid) Advance(head Point, d Direction) (Point, bool) {
	delta := d.Delta()
	x := head.X + delta.X
	y := head.Y + delta.Y

	next := Point{X: wrap(x, g.Width), Y: wrap(y, g.Height)}
	return next, next.X != x || next.Y != y
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// Direction is one of the four headings
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Delta returns the unit step for the direction
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ParseDirection converts a name like "left" into a Direction
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}

// Difficulty selects the base tick interval
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"easy", "medium", "hard"}

func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Interval returns the tick interval for the difficulty
func (d Difficulty) Interval() time.Duration {
	switch d {
	case Easy:
		return 180 * time.Millisecond
	case Hard:
		return 80 * time.Millisecond
	default:
		return 120 * time.Millisecond
	}
}

// ParseDifficulty converts "easy", "medium" or "hard" into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	for i, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(i), nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}
