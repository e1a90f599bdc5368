package game

import (
	"sort"
	"strconv"
	"strings"
)

// PushableBox is a crate together with the directions it can currently be
// pushed in. A direction is allowed when the player could stand on the
// opposite side and the destination cell is free.
type PushableBox struct {
	CratePos Point
	Allowed  []Move
}

// ReducedState is a game state projected to its crate set only, in a
// canonical order-independent form. It is comparable and used directly as
// a map key when the solver deduplicates states.
type ReducedState string

// State is the dynamic overlay on a Level: the player position and the
// crate positions. It holds a non-owning reference to its level and is
// cheap enough to copy at every search branch.
type State struct {
	level  *Level
	player Point
	boxes  map[Point]struct{}
}

// NewState creates a game state on the given level. The caller guarantees
// the parser invariants: the player and every crate are inside the level
// and not on walls.
func NewState(level *Level, player Point, boxes []Point) *State {
	s := &State{
		level:  level,
		player: player,
		boxes:  make(map[Point]struct{}, len(boxes)),
	}
	for _, b := range boxes {
		s.boxes[b] = struct{}{}
	}
	return s
}

// Clone returns an independent copy sharing the same level.
func (s *State) Clone() *State {
	boxes := make(map[Point]struct{}, len(s.boxes))
	for b := range s.boxes {
		boxes[b] = struct{}{}
	}
	return &State{level: s.level, player: s.player, boxes: boxes}
}

// Level returns the static level this state plays on.
func (s *State) Level() *Level {
	return s.level
}

// PlayerPos returns the current player position.
func (s *State) PlayerPos() Point {
	return s.player
}

// HasBox reports whether a crate occupies p.
func (s *State) HasBox(p Point) bool {
	_, ok := s.boxes[p]
	return ok
}

// Boxes returns the crate positions sorted row-major. Sorting keeps every
// enumeration over crates deterministic regardless of map iteration order.
func (s *State) Boxes() []Point {
	boxes := make([]Point, 0, len(s.boxes))
	for b := range s.boxes {
		boxes = append(boxes, b)
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].Less(boxes[j]) })
	return boxes
}

// ApplyMove attempts one player move. Walking into floor or a target moves
// the player; walking into a crate pushes it if the cell behind the crate
// is free. Anything else leaves the state unchanged. ApplyMove is total.
func (s *State) ApplyMove(m Move) {
	cell, ok := s.level.Next(s.player, m)
	if !ok || cell.Type == CellWall {
		return
	}
	if s.HasBox(cell.Pos) {
		behind, ok := s.level.Next(cell.Pos, m)
		if !ok || behind.Type == CellWall || s.HasBox(behind.Pos) {
			return
		}
		delete(s.boxes, cell.Pos)
		s.boxes[behind.Pos] = struct{}{}
	}
	s.player = cell.Pos
}

// ApplyMoves applies a move sequence in order.
func (s *State) ApplyMoves(moves []Move) {
	for _, m := range moves {
		s.ApplyMove(m)
	}
}

// IsVictory reports whether every crate rests on a target cell.
func (s *State) IsVictory() bool {
	for b := range s.boxes {
		if !s.level.IsTarget(b) {
			return false
		}
	}
	return true
}

// AdjacentWalkable returns the neighbours of p the player could step onto:
// in bounds, not a wall, not a crate. The player's own cell is excluded;
// the pathfinder admits start == goal separately, so the exclusion never
// costs a path.
func (s *State) AdjacentWalkable(p Point) []Point {
	result := make([]Point, 0, 4)
	for _, cell := range s.level.AdjacentNonWall(p) {
		if !s.HasBox(cell.Pos) && cell.Pos != s.player {
			result = append(result, cell.Pos)
		}
	}
	return result
}

// isWalkable reports whether the player could stand on the cell.
func (s *State) isWalkable(c Cell) bool {
	return c.Type != CellWall && !s.HasBox(c.Pos)
}

// PushableBoxes enumerates the crates that admit at least one push. As a
// fast path, a crate off target with two adjacent wall-like sides makes
// the whole state unsolvable and the result is empty.
func (s *State) PushableBoxes() []PushableBox {
	result := make([]PushableBox, 0, len(s.boxes))

	for _, box := range s.Boxes() {
		up, upOK := s.level.Next(box, MoveUp)
		left, leftOK := s.level.Next(box, MoveLeft)
		down, downOK := s.level.Next(box, MoveDown)
		right, rightOK := s.level.Next(box, MoveRight)

		walkUp := upOK && s.isWalkable(up)
		walkLeft := leftOK && s.isWalkable(left)
		walkDown := downOK && s.isWalkable(down)
		walkRight := rightOK && s.isWalkable(right)

		// Out-of-bounds counts as a wall: the crate cannot leave the grid.
		wallUp := !upOK || up.Type == CellWall
		wallLeft := !leftOK || left.Type == CellWall
		wallDown := !downOK || down.Type == CellWall
		wallRight := !rightOK || right.Type == CellWall

		if !s.level.IsTarget(box) {
			if (wallUp && wallRight) || (wallRight && wallDown) ||
				(wallDown && wallLeft) || (wallLeft && wallUp) {
				return nil // corner deadlock, the state is lost
			}
		}

		var allowed []Move
		if walkUp && walkDown {
			allowed = append(allowed, MoveUp, MoveDown)
		}
		if walkLeft && walkRight {
			allowed = append(allowed, MoveLeft, MoveRight)
		}
		if len(allowed) > 0 {
			result = append(result, PushableBox{CratePos: box, Allowed: allowed})
		}
	}

	return result
}

// Reduced returns the canonical crate-only projection of the state.
func (s *State) Reduced() ReducedState {
	var b strings.Builder
	for _, box := range s.Boxes() {
		b.WriteString(strconv.Itoa(box.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(box.Col))
		b.WriteByte(';')
	}
	return ReducedState(b.String())
}

// BoxesOnTarget counts crates currently resting on target cells.
func (s *State) BoxesOnTarget() int {
	count := 0
	for b := range s.boxes {
		if s.level.IsTarget(b) {
			count++
		}
	}
	return count
}

// Equal reports whether two states have the same player position and
// crate set. Both states must share the same level.
func (s *State) Equal(other *State) bool {
	if s.player != other.player || len(s.boxes) != len(other.boxes) {
		return false
	}
	for b := range s.boxes {
		if !other.HasBox(b) {
			return false
		}
	}
	return true
}

// PrintableRows renders the state as the level-file characters: '@' for
// the player, 'x' for a crate, 'X' for a crate on a target.
func (s *State) PrintableRows() []string {
	rows := make([][]byte, len(s.level.rows))
	for i, row := range s.level.rows {
		rows[i] = []byte(row)
	}
	rows[s.player.Row][s.player.Col] = '@'
	for b := range s.boxes {
		if s.level.IsTarget(b) {
			rows[b.Row][b.Col] = 'X'
		} else {
			rows[b.Row][b.Col] = 'x'
		}
	}
	result := make([]string, len(rows))
	for i, row := range rows {
		result[i] = string(row)
	}
	return result
}
