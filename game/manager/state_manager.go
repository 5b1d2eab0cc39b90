package manager

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameState is the current screen of the game session state machine.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StateGameOver
	StateVictorious
)

// GameStats is the persisted slice of the state manager.
type GameStats struct {
	HighScore    int   `json:"highScore"`
	ScoreHistory []int `json:"scoreHistory"`
}

// StateManager drives the MainMenu/Playing/GameOver/Victorious machine and
// owns the score. Terminal states are left only via ReturnToMenu.
type StateManager struct {
	state        GameState
	score        int
	highScore    int
	scoreHistory []int
	statsFile    string
}

func NewStateManager(statsFile string) *StateManager {
	sm := &StateManager{
		state:        StateMainMenu,
		scoreHistory: make([]int, 0),
		statsFile:    statsFile,
	}
	if statsFile != "" {
		sm.LoadStats(statsFile)
	}
	return sm
}

func (sm *StateManager) State() GameState {
	return sm.state
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}

// StartGame enters Playing from the main menu with a fresh score.
func (sm *StateManager) StartGame() {
	if sm.state != StateMainMenu {
		return
	}
	sm.score = 0
	sm.state = StatePlaying
}

// AddPoint increments the score once per eaten food item.
func (sm *StateManager) AddPoint() {
	if sm.state != StatePlaying {
		return
	}
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// RecordDeath moves Playing to GameOver; the score is frozen as it stands.
func (sm *StateManager) RecordDeath() {
	sm.endGame(StateGameOver)
}

// RecordVictory moves Playing to Victorious. Reached only when a food-eaten
// event leaves zero unoccupied cells.
func (sm *StateManager) RecordVictory() {
	sm.endGame(StateVictorious)
}

func (sm *StateManager) endGame(terminal GameState) {
	if sm.state != StatePlaying {
		return
	}
	sm.state = terminal
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	if sm.statsFile != "" {
		if err := sm.SaveStats(sm.statsFile); err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not save game stats:", err)
		}
	}
}

// ReturnToMenu leaves a terminal state for the main menu. The caller resets
// snake and food before the next game starts.
func (sm *StateManager) ReturnToMenu() {
	if sm.state != StateGameOver && sm.state != StateVictorious {
		return
	}
	sm.state = StateMainMenu
	sm.score = 0
}

func (sm *StateManager) SaveStats(filename string) error {
	stats := GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
	return nil
}
