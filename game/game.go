package game

import (
	"path/filepath"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
)

// Game wires the snake, the managers and the session recorder together and
// is the sole driver of simulation ticks. All state transitions triggered by
// tick outcomes happen here.
type Game struct {
	grid          types.Grid
	snake         *entity.Snake
	collisionMgr  *manager.CollisionManager
	foodMgr       *manager.FoodManager
	stateMgr      *manager.StateManager
	session       *Session
	lastCollision entity.CollisionType
}

// NewGame builds a game on the given grid. dataDir holds persisted stats and
// session dumps; pass "" to keep everything in memory.
func NewGame(grid types.Grid, dataDir string, seed uint64) *Game {
	statsFile := ""
	sessionDir := ""
	if dataDir != "" {
		statsFile = filepath.Join(dataDir, "gamestats.json")
		sessionDir = filepath.Join(dataDir, "sessions")
	}

	collisionMgr := manager.NewCollisionManager(grid)
	return &Game{
		grid:         grid,
		snake:        entity.NewSnake(grid),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, seed),
		stateMgr:     manager.NewStateManager(statsFile),
		session:      NewSession(sessionDir),
	}
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) State() manager.GameState {
	return g.stateMgr.State()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) HighScore() int {
	return g.stateMgr.HighScore()
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

// Food returns the active food cell, if any.
func (g *Game) Food() (types.Point, bool) {
	return g.foodMgr.Active()
}

// LastCollision reports what killed the snake in the last finished game.
func (g *Game) LastCollision() entity.CollisionType {
	return g.lastCollision
}

// HandleDirection feeds a directional key press into the game. From the main
// menu it starts a new game steering toward d; while playing it buffers the
// turn for the next tick. Terminal states ignore direction input.
func (g *Game) HandleDirection(d types.Direction) {
	switch g.stateMgr.State() {
	case manager.StateMainMenu:
		g.reset()
		g.stateMgr.StartGame()
		g.session.BeginGame()
		g.snake.Steer(d)
	case manager.StatePlaying:
		g.snake.Steer(d)
	}
}

// HandleConfirm returns from a terminal state to the main menu, performing a
// full reset of snake, food and score.
func (g *Game) HandleConfirm() {
	state := g.stateMgr.State()
	if state != manager.StateGameOver && state != manager.StateVictorious {
		return
	}
	g.stateMgr.ReturnToMenu()
	g.reset()
}

func (g *Game) reset() {
	g.snake.Reset()
	g.foodMgr.Reset()
	g.foodMgr.Spawn(g.snake.Cells())
	g.lastCollision = entity.NoCollision
}

// Update runs one simulation tick while Playing. Death freezes the score and
// ends the game; eating scores a point and either spawns the next food item
// or, when no unoccupied cell remains, wins the game.
func (g *Game) Update() {
	if g.stateMgr.State() != manager.StatePlaying {
		return
	}

	food, hasFood := g.foodMgr.Active()
	outcome, collision := g.snake.Advance(food, hasFood)

	switch outcome {
	case entity.TickDied:
		g.lastCollision = collision
		g.stateMgr.RecordDeath()
		g.session.EndGame(g.stateMgr.Score())
	case entity.TickAte:
		g.stateMgr.AddPoint()
		g.foodMgr.Remove()
		free := g.collisionMgr.UnoccupiedCells(g.snake.Cells(), types.Point{}, false)
		if len(free) == 0 {
			g.stateMgr.RecordVictory()
			g.session.EndGame(g.stateMgr.Score())
			return
		}
		g.foodMgr.Spawn(g.snake.Cells())
	}
}

// Interpolate advances the snake's draw positions by one render frame. The
// main menu does not show the snake, so frame time is only forwarded while
// it is visible.
func (g *Game) Interpolate(dt float64) {
	if g.stateMgr.State() == manager.StateMainMenu {
		return
	}
	g.snake.Interpolate(dt)
}
