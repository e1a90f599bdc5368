package solver

import "github.com/vovakirdan/tui-sokoban/internal/game"

// isDeadlocked applies the geometric deadlock heuristics to every crate
// that is not yet on a target. A hit means the state can never be solved;
// a miss guarantees nothing.
func (s *Solver) isDeadlocked(state *game.State) bool {
	for _, box := range state.Boxes() {
		if s.level.IsTarget(box) {
			continue
		}
		if s.isFrozenQuad(box, state) {
			return true
		}
		if s.isWallLocked(box) {
			return true
		}
	}
	return false
}

// isFrozenQuad reports whether the crate is the top-left of a full 2x2
// block of crates. No crate of such a block can ever be pushed again, so
// an off-target member makes the state lost.
func (s *Solver) isFrozenQuad(box game.Point, state *game.State) bool {
	right := box.Neighbour(game.MoveRight)
	down := box.Neighbour(game.MoveDown)
	diag := down.Neighbour(game.MoveRight)
	return state.HasBox(right) && state.HasBox(down) && state.HasBox(diag)
}

// isWallLocked reports whether the crate is stuck against a wall: it can
// only slide along that wall, and neither direction offers a target in
// its own row/column or a gap in the wall before the slide is blocked.
//
//	#    x           #      deadlocked
//	##################
//
//	#    x        .  #      a target along the wall keeps it winnable
//	##################
func (s *Solver) isWallLocked(box game.Point) bool {
	for _, m := range game.Moves {
		wall := box.Neighbour(m)
		if s.level.IsWall(wall) && s.lockedAgainstWall(box, wall) {
			return true
		}
	}
	return false
}

func (s *Solver) lockedAgainstWall(box, wall game.Point) bool {
	if wall.Col == box.Col {
		// Wall above or below: the crate can only slide along its row.
		delta := wall.Row - box.Row
		return s.rowBlocked(box, delta, 1) && s.rowBlocked(box, delta, -1)
	}
	// Wall to the left or right: the crate slides along its column.
	delta := wall.Col - box.Col
	return s.colBlocked(box, delta, 1) && s.colBlocked(box, delta, -1)
}

// rowBlocked scans the crate's row in one direction. It reports false as
// soon as a target in the row or a gap in the wall row lets the crate
// escape, true when the scan stops at a wall or the grid edge first.
func (s *Solver) rowBlocked(box game.Point, wallDelta, dir int) bool {
	_, width := s.level.Dimensions()
	for col := box.Col + dir; col >= 0 && col < width; col += dir {
		slide := game.Point{Row: box.Row, Col: col}
		along := game.Point{Row: box.Row + wallDelta, Col: col}
		if s.level.IsTarget(slide) {
			return false
		}
		if s.level.IsWall(slide) {
			return true
		}
		if !s.level.IsWall(along) {
			return false
		}
	}
	return true
}

// colBlocked is rowBlocked for a vertical slide along a side wall.
func (s *Solver) colBlocked(box game.Point, wallDelta, dir int) bool {
	height, _ := s.level.Dimensions()
	for row := box.Row + dir; row >= 0 && row < height; row += dir {
		slide := game.Point{Row: row, Col: box.Col}
		along := game.Point{Row: row, Col: box.Col + wallDelta}
		if s.level.IsTarget(slide) {
			return false
		}
		if s.level.IsWall(slide) {
			return true
		}
		if !s.level.IsWall(along) {
			return false
		}
	}
	return true
}
