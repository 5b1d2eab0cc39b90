package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/manager"
)

const borderPadding = 10 // Padding around the board area

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardSize    int32
	statsPanel   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the window; the board fills the rest.
	r.statsPanel = r.screenWidth / 4
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridSize := int32(g.Grid().Size)
	availableWidth := r.screenWidth - r.statsPanel - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = min(availableWidth/gridSize, availableHeight/gridSize)
	r.boardSize = r.cellSize * gridSize
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.boardSize) / 2

	switch g.State() {
	case manager.StateMainMenu:
		r.drawMenu(g)
	default:
		r.drawBoard(g)
		r.drawStatsPanel(g)
		if g.State() == manager.StateGameOver {
			r.drawOverlay(g, "GAME OVER", rl.Red)
		} else if g.State() == manager.StateVictorious {
			r.drawOverlay(g, "YOU WIN!", rl.Gold)
		}
	}

	rl.EndDrawing()
}

// boardPos maps a board-relative position (in cell units, possibly
// fractional for interpolated draw positions) to window pixels.
func (r *Renderer) boardPos(x, y float64) (int32, int32) {
	px := r.offsetX + int32(x*float64(r.cellSize))
	py := r.offsetY + int32(y*float64(r.cellSize))
	return px, py
}

func (r *Renderer) drawBoard(g *game.Game) {
	gridSize := g.Grid().Size

	// Board background and grid lines
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.boardSize+2, r.boardSize+2, rl.DarkGray)
	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			px, py := r.boardPos(float64(x), float64(y))
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	// Food
	if food, ok := g.Food(); ok {
		px, py := r.boardPos(float64(food.X), float64(food.Y))
		rl.DrawRectangle(px+2, py+2, r.cellSize-4, r.cellSize-4, rl.Red)
	}

	// Body from interpolated draw positions, tail first so the head paints
	// on top of co-located segments.
	segments := g.Snake().Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		color := rl.Green
		if i == 0 {
			color = rl.Lime
		}
		px, py := r.boardPos(seg.DrawX, seg.DrawY)
		rl.DrawRectangle(px+1, py+1, r.cellSize-2, r.cellSize-2, color)
	}
}

func (r *Renderer) drawStatsPanel(g *game.Game) {
	statsX := r.screenWidth - r.statsPanel + 10
	statsY := int32(20)
	fontSize := min(r.screenHeight/30, r.statsPanel/8)
	lineHeight := fontSize + fontSize/2

	rl.DrawRectangle(r.screenWidth-r.statsPanel, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Best: %d", g.HighScore()), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", g.Snake().Len()), statsX, statsY, fontSize, rl.White)
}

func (r *Renderer) drawMenu(g *game.Game) {
	fontSize := r.screenHeight / 15
	title := "SNAKE"
	titleWidth := rl.MeasureText(title, fontSize)
	rl.DrawText(title, (r.screenWidth-titleWidth)/2, r.screenHeight/3, fontSize, rl.Green)

	small := fontSize / 2
	prompt := "Press an arrow key to start"
	promptWidth := rl.MeasureText(prompt, small)
	rl.DrawText(prompt, (r.screenWidth-promptWidth)/2, r.screenHeight/2, small, rl.White)

	if g.HighScore() > 0 {
		best := fmt.Sprintf("Best: %d", g.HighScore())
		bestWidth := rl.MeasureText(best, small)
		rl.DrawText(best, (r.screenWidth-bestWidth)/2, r.screenHeight/2+small*2, small, rl.Gray)
	}
}

func (r *Renderer) drawOverlay(g *game.Game, title string, color rl.Color) {
	fontSize := r.screenHeight / 18
	titleWidth := rl.MeasureText(title, fontSize)
	titleX := r.offsetX + (r.boardSize-titleWidth)/2
	titleY := r.offsetY + r.boardSize/2 - fontSize
	rl.DrawText(title, titleX, titleY, fontSize, color)

	small := fontSize / 2
	reason := ""
	switch g.LastCollision() {
	case entity.WallCollision:
		reason = "You hit the wall"
	case entity.SelfCollision:
		reason = "You bit yourself"
	}
	if reason != "" {
		reasonWidth := rl.MeasureText(reason, small)
		rl.DrawText(reason, r.offsetX+(r.boardSize-reasonWidth)/2, titleY+fontSize+small/2, small, rl.White)
	}

	prompt := "Press Enter for menu"
	promptWidth := rl.MeasureText(prompt, small)
	rl.DrawText(prompt, r.offsetX+(r.boardSize-promptWidth)/2, titleY+fontSize*2+small, small, rl.Gray)
}
