package entity

import "snake-game/game/types"

// MovementProcessor buffers directional input between simulation ticks.
// It holds the committed direction plus at most one pending direction, so
// rapid key sequences before the next tick keep only the latest valid press.
type MovementProcessor struct {
	current types.Direction
	pending types.Direction
}

func NewMovementProcessor() *MovementProcessor {
	return &MovementProcessor{current: types.Up}
}

// Queue records a requested direction for the next tick. A direction opposite
// to the committed one is dropped, never queued, so the snake cannot reverse
// into itself. Later valid presses overwrite earlier pending ones.
func (m *MovementProcessor) Queue(d types.Direction) {
	if d == types.None || d == m.current.Opposite() {
		return
	}
	m.pending = d
}

// Update commits any pending direction and returns the direction to apply
// for this tick.
func (m *MovementProcessor) Update() types.Direction {
	if m.pending != types.None {
		m.current = m.pending
		m.pending = types.None
	}
	return m.current
}

// Current returns the committed direction without advancing input state.
func (m *MovementProcessor) Current() types.Direction {
	return m.current
}

// Reset restores the default direction and drops any pending input.
func (m *MovementProcessor) Reset() {
	m.current = types.Up
	m.pending = types.None
}
