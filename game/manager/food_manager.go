package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodConfig tunes special food spawning
type FoodConfig struct {
	SpecialChance   float64
	SpecialLifetime time.Duration
	SpecialPoints   int
}

func DefaultFoodConfig() FoodConfig {
	return FoodConfig{
		SpecialChance:   0.1,
		SpecialLifetime: 10 * time.Second,
		SpecialPoints:   entity.SpecialFoodPoints,
	}
}

// maxSampleFactor bounds rejection sampling before falling back to a scan
const maxSampleFactor = 4

type FoodManager struct {
	grid         types.Grid
	cfg          FoodConfig
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, cfg FoodConfig, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		cfg:          cfg,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// PlaceFood picks a uniformly random free cell. It samples first and only
// scans the grid when sampling keeps hitting occupied cells. The second
// result is false when no free cell exists.
func (fm *FoodManager) PlaceFood(occupied Occupancy) (types.Point, bool) {
	attempts := fm.grid.Cells() * maxSampleFactor
	for i := 0; i < attempts; i++ {
		p := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(p, occupied) {
			return p, true
		}
	}

	free := fm.freeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(occupied Occupancy) []types.Point {
	free := make([]types.Point, 0, max(fm.grid.Cells()-len(occupied), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free
}

// NewFood places a regular food item
func (fm *FoodManager) NewFood(occupied Occupancy) (entity.Food, bool) {
	cell, ok := fm.PlaceFood(occupied)
	return entity.Food{Cell: cell, Value: entity.FoodPoints}, ok
}

// MaybeSpawnSpecial rolls for a special food after regular food was placed.
// Nothing spawns while one already exists. The item expires at now plus the
// configured lifetime on the caller's clock.
func (fm *FoodManager) MaybeSpawnSpecial(occupied Occupancy, food types.Point, existing *entity.SpecialFood, now time.Duration) *entity.SpecialFood {
	if existing != nil {
		return nil
	}
	if fm.rng.Float64() >= fm.cfg.SpecialChance {
		return nil
	}

	blocked := make(Occupancy, len(occupied)+1)
	for p := range occupied {
		blocked[p] = struct{}{}
	}
	blocked[food] = struct{}{}

	cell, ok := fm.PlaceFood(blocked)
	if !ok {
		return nil
	}

	kinds := entity.Kinds()
	return &entity.SpecialFood{
		Cell:      cell,
		Kind:      kinds[fm.rng.Intn(len(kinds))],
		Points:    fm.cfg.SpecialPoints,
		ExpiresAt: now + fm.cfg.SpecialLifetime,
		Pulse:     entity.PulseMin,
		PulseDir:  1,
	}
}
