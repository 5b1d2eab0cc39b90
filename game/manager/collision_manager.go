package manager

import "snake-game/game/types"

// CollisionManager answers board occupancy queries. Movement death checks
// live in the snake entity; this manager owns the board-level view used for
// food spawning and the win condition.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// UnoccupiedCells returns every board cell not covered by a body segment or
// the active food item.
func (cm *CollisionManager) UnoccupiedCells(occupied []types.Point, food types.Point, hasFood bool) []types.Point {
	taken := make(map[types.Point]bool, len(occupied)+1)
	for _, p := range occupied {
		taken[p] = true
	}
	if hasFood {
		taken[food] = true
	}

	free := make([]types.Point, 0, cm.grid.Size*cm.grid.Size-len(taken))
	for _, cell := range cm.grid.Cells() {
		if !taken[cell] {
			free = append(free, cell)
		}
	}
	return free
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied []types.Point) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	for _, p := range occupied {
		if pos == p {
			return false
		}
	}
	return true
}
