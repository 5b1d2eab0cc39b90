package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-game/game/types"
)

func TestDefaultDirection(t *testing.T) {
	m := NewMovementProcessor()
	if got := m.Update(); got != types.Up {
		t.Errorf("expected default direction Up, got %v", got)
	}
}

func TestReversalRejected(t *testing.T) {
	m := NewMovementProcessor()

	// Down is the exact opposite of the committed Up and must be dropped,
	// not queued.
	m.Queue(types.Down)
	if got := m.Update(); got != types.Up {
		t.Errorf("reversal should be ignored, got %v", got)
	}

	m.Queue(types.Right)
	if got := m.Update(); got != types.Right {
		t.Errorf("expected Right, got %v", got)
	}
	m.Queue(types.Left)
	if got := m.Update(); got != types.Right {
		t.Errorf("reversal from Right should be ignored, got %v", got)
	}
}

func TestLatestValidPressWins(t *testing.T) {
	m := NewMovementProcessor()

	// Two valid presses before the tick: only the most recent applies.
	m.Queue(types.Left)
	m.Queue(types.Right)
	if got := m.Update(); got != types.Right {
		t.Errorf("expected latest press Right, got %v", got)
	}

	// A rejected press must not clobber a valid pending one.
	m.Queue(types.Up)
	m.Queue(types.Left) // opposite of committed Right, dropped
	if got := m.Update(); got != types.Up {
		t.Errorf("expected pending Up to survive rejected press, got %v", got)
	}
}

func TestNoneIgnored(t *testing.T) {
	m := NewMovementProcessor()
	m.Queue(types.Right)
	m.Queue(types.None)
	if got := m.Update(); got != types.Right {
		t.Errorf("None should not overwrite pending input, got %v", got)
	}
}

func TestCommittedNeverReverses(t *testing.T) {
	m := NewMovementProcessor()
	rng := rand.New(rand.NewSource(7))
	prev := m.Update()

	for i := 0; i < 1000; i++ {
		for presses := rng.Intn(3); presses > 0; presses-- {
			m.Queue(types.Direction(rng.Intn(4) + 1))
		}
		got := m.Update()
		if got == prev.Opposite() {
			t.Fatalf("tick %d: committed %v right after %v", i, got, prev)
		}
		prev = got
	}
}

func TestReset(t *testing.T) {
	m := NewMovementProcessor()
	m.Queue(types.Right)
	m.Update()
	m.Queue(types.Down)
	m.Reset()
	if got := m.Update(); got != types.Up {
		t.Errorf("expected default direction after reset, got %v", got)
	}
}
