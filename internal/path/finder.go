package path

import (
	"container/heap"

	"github.com/vovakirdan/tui-sokoban/internal/game"
)

// AdjacencyFunc enumerates the points walkable from p. The solver passes
// a closure over the current game state so crates act as obstacles.
type AdjacencyFunc func(p game.Point) []game.Point

// Finder runs best-first searches over a point graph. It owns a visited
// set and a frontier that are reused across calls, so a Finder is not
// safe for concurrent use; each solver keeps its own.
type Finder struct {
	visited  map[game.Point]struct{}
	frontier frontier
}

// NewFinder creates a finder with empty buffers.
func NewFinder() *Finder {
	return &Finder{visited: make(map[game.Point]struct{})}
}

// Find searches for a walkable path from start to goal. start == goal
// succeeds trivially with a one-vertex path. Returns ok=false when the
// frontier empties without reaching the goal.
func (f *Finder) Find(start, goal game.Point, adjacent AdjacencyFunc) (Path, bool) {
	f.reset()
	f.frontier.push(Path{Goal: goal, Points: []game.Point{start}})

	for f.frontier.Len() > 0 {
		best := f.frontier.pop()

		current := best.Last()
		if _, seen := f.visited[current]; seen {
			continue
		}
		if current == goal {
			return best, true
		}

		f.visited[current] = struct{}{}
		for _, next := range adjacent(current) {
			if _, seen := f.visited[next]; !seen {
				f.frontier.push(best.extend(next))
			}
		}
	}
	return Path{}, false
}

// reset clears the buffers left over from the previous search.
func (f *Finder) reset() {
	clear(f.visited)
	f.frontier = f.frontier[:0]
}

// frontier is a min-heap of candidate paths ordered by distance to goal,
// then by length (shorter first).
type frontier []Path

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	di := game.DistanceSq(q[i].Last(), q[i].Goal)
	dj := game.DistanceSq(q[j].Last(), q[j].Goal)
	if di != dj {
		return di < dj
	}
	return len(q[i].Points) < len(q[j].Points)
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(Path)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (q *frontier) push(p Path) { heap.Push(q, p) }

func (q *frontier) pop() Path { return heap.Pop(q).(Path) }
