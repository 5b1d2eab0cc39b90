package manager

import (
	"testing"

	"snake-game/game/types"
)

func TestSpawnAvoidsOccupiedCells(t *testing.T) {
	grid := types.Grid{Size: 3}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)

	occupied := []types.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2},
	}
	taken := map[types.Point]bool{}
	for _, p := range occupied {
		taken[p] = true
	}

	for i := 0; i < 100; i++ {
		if !fm.Spawn(occupied) {
			t.Fatal("spawn failed with free cells available")
		}
		food, active := fm.Active()
		if !active {
			t.Fatal("no active food after successful spawn")
		}
		if taken[food] {
			t.Fatalf("food spawned on occupied cell %v", food)
		}
		if !grid.Contains(food) {
			t.Fatalf("food spawned off-board at %v", food)
		}
	}
}

func TestSpawnFullBoard(t *testing.T) {
	grid := types.Grid{Size: 2}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)

	occupied := grid.Cells()
	if fm.Spawn(occupied) {
		t.Fatal("spawn must report failure on a full board")
	}
	if _, active := fm.Active(); active {
		t.Error("no food item may remain active after a failed spawn")
	}
}

func TestPlaceValidatesPosition(t *testing.T) {
	grid := types.Grid{Size: 3}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)
	occupied := []types.Point{{X: 1, Y: 1}}

	if fm.Place(types.Point{X: 1, Y: 1}, occupied) {
		t.Error("Place accepted an occupied cell")
	}
	if fm.Place(types.Point{X: 3, Y: 0}, occupied) {
		t.Error("Place accepted an off-board cell")
	}
	if _, active := fm.Active(); active {
		t.Error("rejected placements must not activate food")
	}

	if !fm.Place(types.Point{X: 0, Y: 0}, occupied) {
		t.Fatal("Place rejected a free cell")
	}
	if food, active := fm.Active(); !active || food != (types.Point{X: 0, Y: 0}) {
		t.Errorf("expected active food at (0,0), got %v (active %v)", food, active)
	}
}

func TestSingleActiveItem(t *testing.T) {
	grid := types.Grid{Size: 3}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)

	fm.Place(types.Point{X: 1, Y: 1}, nil)
	fm.Spawn(nil)
	food, active := fm.Active()
	if !active {
		t.Fatal("expected an active item")
	}
	// Spawn replaces the previous item; there is never more than one.
	fm.Remove()
	if _, active := fm.Active(); active {
		t.Errorf("item %v still active after Remove", food)
	}
}

func TestResetClearsFood(t *testing.T) {
	grid := types.Grid{Size: 3}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)

	fm.Place(types.Point{X: 2, Y: 0}, nil)
	fm.Reset()
	if _, active := fm.Active(); active {
		t.Error("reset must clear the active food item")
	}
}
