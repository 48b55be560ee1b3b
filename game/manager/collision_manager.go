package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Occupancy is a set of taken cells
type Occupancy map[types.Point]struct{}

// OccupancyOf builds a set from the given cells
func OccupancyOf(cells ...types.Point) Occupancy {
	occ := make(Occupancy, len(cells))
	for _, c := range cells {
		occ[c] = struct{}{}
	}
	return occ
}

func (o Occupancy) Has(p types.Point) bool {
	_, ok := o[p]
	return ok
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SelfCollision reports whether the head overlaps any other segment.
// A fatal overlap is ignored while the modifiers grant immunity.
func (cm *CollisionManager) SelfCollision(snake *entity.Snake, mods Modifiers) bool {
	if mods.IgnoresSelfCollision || snake.Len() < 2 {
		return false
	}

	rest := entity.Snake{Body: snake.Body[1:]}
	return rest.Contains(snake.GetHead())
}

// ValidateSpawnPosition checks if a position is free for a new item
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied Occupancy) bool {
	return cm.grid.Contains(pos) && !occupied.Has(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food entity.Food) bool {
	return pos == food.Cell
}

// IsSpecialCollision checks the optional special food
func (cm *CollisionManager) IsSpecialCollision(pos types.Point, special *entity.SpecialFood) bool {
	return special != nil && pos == special.Cell
}
