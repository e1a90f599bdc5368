// Package solver searches for Sokoban solutions. The search is a
// depth-first exploration over push-level states: every edge is one crate
// push together with the player walk that precedes it, with walks
// synthesised on demand by the pathfinder. States that differ only by a
// mutually reachable player position are treated as one.
package solver

import (
	"sort"

	"github.com/vovakirdan/tui-sokoban/internal/game"
	"github.com/vovakirdan/tui-sokoban/internal/path"
)

// Solver finds a move sequence that drives a game state to victory.
// A Solver is single-threaded: it owns one pathfinder whose buffers are
// reused across calls, so concurrent solves need separate Solvers.
type Solver struct {
	level  *game.Level
	finder *path.Finder
}

// New creates a solver for the given level.
func New(level *game.Level) *Solver {
	return &Solver{level: level, finder: path.NewFinder()}
}

// visitedStates buckets previously seen states by their crate layout.
// Growth of this map is what bounds the search.
type visitedStates map[game.ReducedState][]*game.State

// Solve returns a sequence of unit moves that solves the state, or an
// empty sequence when no solution is found. The input state is cloned and
// never mutated.
func (s *Solver) Solve(initial *game.State) []game.Move {
	visited := make(visitedStates)
	return s.solve(initial.Clone(), nil, visited)
}

func (s *Solver) solve(state *game.State, prefix []game.Move, visited visitedStates) []game.Move {
	if state.IsVictory() {
		return prefix
	}
	if !s.recordUnique(state, visited) {
		return nil
	}
	if s.isDeadlocked(state) {
		return nil
	}

	pushable := state.PushableBoxes()
	if len(pushable) == 0 {
		return nil
	}

	// Crates still off target are the productive ones to push first.
	sort.SliceStable(pushable, func(i, j int) bool {
		return !s.level.IsTarget(pushable[i].CratePos) && s.level.IsTarget(pushable[j].CratePos)
	})

	children := s.expand(state, prefix, pushable)

	// Prefer children that put more crates on targets.
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].state.BoxesOnTarget() > children[j].state.BoxesOnTarget()
	})

	for _, c := range children {
		if result := s.solve(c.state, c.moves, visited); len(result) > 0 {
			return result
		}
	}
	return nil
}

// child is a successor state with the full move prefix reaching it.
type child struct {
	state *game.State
	moves []game.Move
}

// expand builds one child per reachable (crate, push direction) pair:
// the player walks to the cell opposite the push direction, then pushes.
func (s *Solver) expand(state *game.State, prefix []game.Move, pushable []game.PushableBox) []child {
	children := make([]child, 0, len(pushable))

	for _, pb := range pushable {
		for _, push := range pb.Allowed {
			// To push the crate up the player stands right below it.
			stand := pb.CratePos.Neighbour(push.Opposite())

			var walk path.Path
			if stand == state.PlayerPos() {
				walk = path.Path{Goal: stand, Points: []game.Point{stand}}
			} else {
				found, ok := s.finder.Find(state.PlayerPos(), stand, state.AdjacentWalkable)
				if !ok {
					continue
				}
				walk = found
			}

			walkMoves := walk.Moves()
			next := state.Clone()
			next.ApplyMoves(walkMoves)
			next.ApplyMove(push)

			moves := make([]game.Move, 0, len(prefix)+len(walkMoves)+1)
			moves = append(moves, prefix...)
			moves = append(moves, walkMoves...)
			moves = append(moves, push)

			children = append(children, child{state: next, moves: moves})
		}
	}
	return children
}

// recordUnique reports whether the state is new. States sharing a crate
// layout are isomorphic when their players can reach each other; such
// duplicates are pruned. New states are appended to their bucket.
func (s *Solver) recordUnique(state *game.State, visited visitedStates) bool {
	reduced := state.Reduced()
	bucket := visited[reduced]
	for _, seen := range bucket {
		if s.areIsomorphic(state, seen) {
			return false
		}
	}
	visited[reduced] = append(bucket, state)
	return true
}

// areIsomorphic reports whether two states with identical crate layouts
// collapse to one: equal player positions, or a walkable path between
// them. Reachability is checked in a, but the shared crate layout makes
// it the same in b.
func (s *Solver) areIsomorphic(a, b *game.State) bool {
	if a.PlayerPos() == b.PlayerPos() {
		return true
	}
	_, ok := s.finder.Find(a.PlayerPos(), b.PlayerPos(), a.AdjacentWalkable)
	return ok
}
