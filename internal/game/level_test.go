package game

import "testing"

func testLevel() *Level {
	return NewLevel([]string{
		"######",
		"#  . #",
		"# ## #",
		"#    #",
		"######",
	})
}

func TestLevelDimensions(t *testing.T) {
	h, w := testLevel().Dimensions()
	if h != 5 || w != 6 {
		t.Errorf("Dimensions() = (%d, %d), expected (5, 6)", h, w)
	}
}

func TestLevelAt(t *testing.T) {
	lvl := testLevel()

	tests := []struct {
		name   string
		p      Point
		wantOK bool
		want   CellType
	}{
		{"wall corner", Point{0, 0}, true, CellWall},
		{"floor", Point{1, 1}, true, CellFloor},
		{"target", Point{1, 3}, true, CellTarget},
		{"inner wall", Point{2, 3}, true, CellWall},
		{"negative row", Point{-1, 0}, false, CellFloor},
		{"negative col", Point{0, -1}, false, CellFloor},
		{"row too large", Point{5, 0}, false, CellFloor},
		{"col too large", Point{0, 6}, false, CellFloor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell, ok := lvl.At(tc.p)
			if ok != tc.wantOK {
				t.Fatalf("At(%v) ok = %v, expected %v", tc.p, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if cell.Type != tc.want {
				t.Errorf("At(%v).Type = %v, expected %v", tc.p, cell.Type, tc.want)
			}
			if cell.Pos != tc.p {
				t.Errorf("At(%v).Pos = %v, expected %v", tc.p, cell.Pos, tc.p)
			}
		})
	}
}

func TestLevelNext(t *testing.T) {
	lvl := testLevel()

	cell, ok := lvl.Next(Point{1, 1}, MoveRight)
	if !ok || cell.Pos != (Point{1, 2}) {
		t.Errorf("Next right = (%v, %v), expected ((1,2), true)", cell.Pos, ok)
	}

	if _, ok := lvl.Next(Point{0, 0}, MoveUp); ok {
		t.Error("Next above the top row should be out of bounds")
	}

	if _, ok := lvl.Next(Point{1, 1}, MoveNone); ok {
		t.Error("Next with MoveNone should report no cell")
	}
}

func TestLevelAdjacentNonWall(t *testing.T) {
	lvl := testLevel()

	// (1,1) has walls above and left, floor below and right
	adj := lvl.AdjacentNonWall(Point{1, 1})
	if len(adj) != 2 {
		t.Fatalf("AdjacentNonWall((1,1)) returned %d cells, expected 2", len(adj))
	}
	for _, cell := range adj {
		if cell.Type == CellWall {
			t.Errorf("AdjacentNonWall returned a wall at %v", cell.Pos)
		}
	}

	// (3,2) sits between the inner wall and the bottom border: up and down
	// are walls, left and right open
	if got := len(lvl.AdjacentNonWall(Point{3, 2})); got != 2 {
		t.Errorf("AdjacentNonWall((3,2)) returned %d cells, expected 2", got)
	}
}

func TestLevelIsWallOutOfBounds(t *testing.T) {
	lvl := testLevel()
	if !lvl.IsWall(Point{-1, 2}) {
		t.Error("out-of-bounds points should count as walls")
	}
	if lvl.IsWall(Point{1, 1}) {
		t.Error("floor reported as wall")
	}
}
