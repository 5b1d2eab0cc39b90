package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"
	"snake-game/ui"
)

func main() {
	tick := flag.Int("tick", int(types.TickInterval/time.Millisecond), "Simulation tick interval in milliseconds")
	dataDir := flag.String("data", "data", "Directory for stats and session dumps (empty disables persistence)")
	flag.Parse()

	rl.InitWindow(960, 720, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := game.NewGame(types.NewGrid(), *dataDir, uint64(time.Now().UnixNano()))
	renderer := ui.NewRenderer()

	interval := time.Duration(*tick) * time.Millisecond
	lastTick := time.Now()

	for !rl.WindowShouldClose() {
		for _, d := range pressedDirections() {
			g.HandleDirection(d)
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			g.HandleConfirm()
		}

		// The fixed-interval tick gate only runs while Playing; outside of
		// it lastTick keeps rearming so a new game starts with a full
		// interval before its first step.
		if g.State() == manager.StatePlaying {
			if time.Since(lastTick) >= interval {
				g.Update()
				lastTick = time.Now()
			}
		} else {
			lastTick = time.Now()
		}

		g.Interpolate(float64(rl.GetFrameTime()))
		renderer.Draw(g)
	}
}

var keyBindings = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
}

// pressedDirections maps every directional key pressed this frame, in scan
// order. All of them are fed to the game so the input buffer's
// latest-valid-press rule decides which one sticks.
func pressedDirections() []types.Direction {
	var dirs []types.Direction
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			dirs = append(dirs, b.dir)
		}
	}
	return dirs
}
