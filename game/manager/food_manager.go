package manager

import (
	"golang.org/x/exp/rand"

	"snake-game/game/types"
)

// FoodManager tracks the single active food item. At most one item exists at
// a time and it never shares a cell with the snake.
type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
	food         types.Point
	active       bool
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Active returns the current food cell and whether one exists.
func (fm *FoodManager) Active() (types.Point, bool) {
	return fm.food, fm.active
}

// Spawn places a new food item uniformly at random on an unoccupied cell.
// It returns false when the board has no free cell left; the caller treats
// that as the win condition, not as a spawn failure.
func (fm *FoodManager) Spawn(occupied []types.Point) bool {
	candidates := fm.collisionMgr.UnoccupiedCells(occupied, types.Point{}, false)
	if len(candidates) == 0 {
		fm.active = false
		return false
	}
	fm.food = candidates[fm.rng.Intn(len(candidates))]
	fm.active = true
	return true
}

// Place sets the food item directly, for deterministic setups. The cell must
// be a valid spawn position: on-board and off the snake.
func (fm *FoodManager) Place(food types.Point, occupied []types.Point) bool {
	if !fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
		return false
	}
	fm.food = food
	fm.active = true
	return true
}

// Remove clears the active food item after it has been eaten.
func (fm *FoodManager) Remove() {
	fm.active = false
}

// Reset clears any previously spawned food.
func (fm *FoodManager) Reset() {
	fm.active = false
	fm.food = types.Point{}
}
