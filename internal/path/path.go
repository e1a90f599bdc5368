// Package path implements the best-first walk search used to move the
// player between crate pushes. The heuristic is the squared Euclidean
// distance to the goal, so returned paths are walkable but not guaranteed
// shortest; the solver only needs them to be correct.
package path

import "github.com/vovakirdan/tui-sokoban/internal/game"

// Path is an ordered walkable trail of points towards Goal.
type Path struct {
	Goal   game.Point
	Points []game.Point
}

// Last returns the final point of the trail.
func (p Path) Last() game.Point {
	return p.Points[len(p.Points)-1]
}

// Moves converts consecutive point pairs to directions. A one-point path
// yields no moves.
func (p Path) Moves() []game.Move {
	if len(p.Points) < 2 {
		return nil
	}
	moves := make([]game.Move, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		if m := game.MoveBetween(p.Points[i-1], p.Points[i]); m != game.MoveNone {
			moves = append(moves, m)
		}
	}
	return moves
}

// extend returns a new path with one more point appended. The points
// slice is copied so sibling extensions never alias.
func (p Path) extend(pt game.Point) Path {
	points := make([]game.Point, len(p.Points), len(p.Points)+1)
	copy(points, p.Points)
	return Path{Goal: p.Goal, Points: append(points, pt)}
}
