package entity

import (
	"math"

	"snake-game/game/types"
)

// TickOutcome reports what a simulation step did to the snake.
type TickOutcome int

const (
	TickMoved TickOutcome = iota
	TickAte
	TickDied
)

// CollisionType represents the type of collision that killed the snake
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

// Segment is one link of the snake's body. Cell is the authoritative grid
// position, mutated only on simulation ticks. DrawX/DrawY hold the smoothed
// visual position in cell units, advanced every render frame.
type Segment struct {
	Cell         types.Point
	DrawX, DrawY float64
}

// Snap moves the segment's draw position onto its target cell instantly.
func (s *Segment) Snap(cell types.Point) {
	s.Cell = cell
	s.DrawX = float64(cell.X)
	s.DrawY = float64(cell.Y)
}

// Snake owns the ordered segment chain, head first, and the movement
// processor that resolves player intent into one direction per tick.
type Snake struct {
	segments []Segment
	movement *MovementProcessor
	grid     types.Grid
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		segments: make([]Segment, 0, types.InitialBodyLength),
		movement: NewMovementProcessor(),
		grid:     grid,
	}
	s.Reset()
	return s
}

// Reset clears the chain to a single head snapped at the board center, then
// grows the fixed starting length. The extra segments stay co-located with
// the head until ticks spread them out.
func (s *Snake) Reset() {
	s.segments = s.segments[:0]
	var head Segment
	head.Snap(s.grid.Center())
	s.segments = append(s.segments, head)
	for len(s.segments) < types.InitialBodyLength {
		s.Grow()
	}
	s.movement.Reset()
}

// Steer buffers a directional input for the next tick.
func (s *Snake) Steer(d types.Direction) {
	s.movement.Queue(d)
}

// Head returns the head's target cell.
func (s *Snake) Head() types.Point {
	return s.segments[0].Cell
}

// Len returns the number of segments in the chain.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments exposes the chain for rendering. Callers must not mutate it.
func (s *Snake) Segments() []Segment {
	return s.segments
}

// Cells returns the target cells currently occupied by the body.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.segments))
	for i := range s.segments {
		cells[i] = s.segments[i].Cell
	}
	return cells
}

// Occupies reports whether any segment's target cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for i := range s.segments {
		if s.segments[i].Cell == p {
			return true
		}
	}
	return false
}

// Advance runs one simulation step. The death check happens before any
// segment is mutated: a fatal tick leaves the chain untouched. The tail is
// excluded from the self-collision check because it vacates its cell on the
// same tick; growth stays after the check so that exclusion remains valid.
func (s *Snake) Advance(food types.Point, hasFood bool) (TickOutcome, CollisionType) {
	dir := s.movement.Update()
	candidate := s.Head().Add(dir.ToPoint())

	if !s.grid.Contains(candidate) {
		return TickDied, WallCollision
	}
	for i := 0; i < len(s.segments)-1; i++ {
		if s.segments[i].Cell == candidate {
			return TickDied, SelfCollision
		}
	}

	// Propagate tail first: each segment takes its predecessor's cell before
	// the predecessor is overwritten this tick.
	for i := len(s.segments) - 1; i >= 1; i-- {
		s.segments[i].Cell = s.segments[i-1].Cell
	}
	s.segments[0].Cell = candidate

	if hasFood && candidate == food {
		s.Grow()
		return TickAte, NoCollision
	}
	return TickMoved, NoCollision
}

// Grow appends a new tail co-located with the current one, in target and
// draw position both, so the chain does not visibly jump.
func (s *Snake) Grow() {
	s.segments = append(s.segments, s.segments[len(s.segments)-1])
}

// Interpolate advances every draw position toward its target cell by a
// factor derived from elapsed frame time. Degenerate elapsed times move
// nothing rather than corrupting the draw positions.
func (s *Snake) Interpolate(dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	factor := dt * types.SmoothingRate
	if factor > 1 {
		factor = 1
	}
	for i := range s.segments {
		seg := &s.segments[i]
		seg.DrawX += (float64(seg.Cell.X) - seg.DrawX) * factor
		seg.DrawY += (float64(seg.Cell.Y) - seg.DrawY) * factor
	}
}
