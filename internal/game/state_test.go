package game

import "testing"

// Maps in these tests follow the original level notation in the strings,
// but only '#' and '.' matter to the level itself; the player and crate
// markers are passed explicitly.

func TestApplyMove(t *testing.T) {
	lvl := NewLevel([]string{
		"#######",
		"#     #",
		"# x   #",
		"#    .#",
		"#######",
	})

	tests := []struct {
		name       string
		player     Point
		boxes      []Point
		move       Move
		wantPlayer Point
		wantBoxes  []Point
	}{
		{
			name:       "walk onto floor",
			player:     Point{1, 1},
			boxes:      []Point{{2, 2}},
			move:       MoveRight,
			wantPlayer: Point{1, 2},
			wantBoxes:  []Point{{2, 2}},
		},
		{
			name:       "blocked by wall",
			player:     Point{1, 1},
			boxes:      []Point{{2, 2}},
			move:       MoveUp,
			wantPlayer: Point{1, 1},
			wantBoxes:  []Point{{2, 2}},
		},
		{
			name:       "push crate",
			player:     Point{2, 1},
			boxes:      []Point{{2, 2}},
			move:       MoveRight,
			wantPlayer: Point{2, 2},
			wantBoxes:  []Point{{2, 3}},
		},
		{
			name:       "push blocked by wall",
			player:     Point{2, 5},
			boxes:      []Point{{3, 5}},
			move:       MoveDown,
			wantPlayer: Point{2, 5},
			wantBoxes:  []Point{{3, 5}},
		},
		{
			name:       "push blocked by crate",
			player:     Point{2, 1},
			boxes:      []Point{{2, 2}, {2, 3}},
			move:       MoveRight,
			wantPlayer: Point{2, 1},
			wantBoxes:  []Point{{2, 2}, {2, 3}},
		},
		{
			name:       "walk onto target",
			player:     Point{3, 4},
			boxes:      []Point{{2, 2}},
			move:       MoveRight,
			wantPlayer: Point{3, 5},
			wantBoxes:  []Point{{2, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := NewState(lvl, tc.player, tc.boxes)
			state.ApplyMove(tc.move)

			if state.PlayerPos() != tc.wantPlayer {
				t.Errorf("player = %v, expected %v", state.PlayerPos(), tc.wantPlayer)
			}
			if len(state.Boxes()) != len(tc.wantBoxes) {
				t.Fatalf("crate count = %d, expected %d", len(state.Boxes()), len(tc.wantBoxes))
			}
			for _, b := range tc.wantBoxes {
				if !state.HasBox(b) {
					t.Errorf("expected a crate at %v, boxes = %v", b, state.Boxes())
				}
			}
		})
	}
}

func TestIsVictory(t *testing.T) {
	lvl := NewLevel([]string{
		"######",
		"# .. #",
		"#    #",
		"######",
	})

	if !NewState(lvl, Point{2, 1}, []Point{{1, 2}, {1, 3}}).IsVictory() {
		t.Error("all crates on targets should be victory")
	}
	if NewState(lvl, Point{2, 1}, []Point{{1, 2}, {2, 3}}).IsVictory() {
		t.Error("a crate off target should not be victory")
	}
	if !NewState(lvl, Point{2, 1}, nil).IsVictory() {
		t.Error("no crates is trivially victory")
	}
}

func TestReducedStateOrderIndependent(t *testing.T) {
	lvl := NewLevel([]string{
		"######",
		"#    #",
		"#    #",
		"######",
	})

	a := NewState(lvl, Point{1, 1}, []Point{{1, 2}, {2, 3}, {2, 1}})
	b := NewState(lvl, Point{2, 2}, []Point{{2, 1}, {1, 2}, {2, 3}})

	if a.Reduced() != b.Reduced() {
		t.Errorf("Reduced() differs for identical crate sets: %q vs %q", a.Reduced(), b.Reduced())
	}

	c := NewState(lvl, Point{1, 1}, []Point{{1, 2}, {2, 3}})
	if a.Reduced() == c.Reduced() {
		t.Error("Reduced() equal for different crate sets")
	}
}

func TestPushableBoxes(t *testing.T) {
	t.Run("free crate is pushable on both axes", func(t *testing.T) {
		lvl := NewLevel([]string{
			"#####",
			"#   #",
			"# x #",
			"#   #",
			"#####",
		})
		state := NewState(lvl, Point{1, 1}, []Point{{2, 2}})

		pushable := state.PushableBoxes()
		if len(pushable) != 1 {
			t.Fatalf("expected 1 pushable crate, got %d", len(pushable))
		}
		if len(pushable[0].Allowed) != 4 {
			t.Errorf("expected 4 allowed directions, got %v", pushable[0].Allowed)
		}
	})

	t.Run("crate against wall slides along it only", func(t *testing.T) {
		lvl := NewLevel([]string{
			"#####",
			"# x #",
			"#   #",
			"#  .#",
			"#####",
		})
		// Crate at (1,2): wall above blocks the vertical pair
		state := NewState(lvl, Point{2, 1}, []Point{{1, 2}})

		pushable := state.PushableBoxes()
		if len(pushable) != 1 {
			t.Fatalf("expected 1 pushable crate, got %d", len(pushable))
		}
		allowed := pushable[0].Allowed
		if len(allowed) != 2 || allowed[0] != MoveLeft || allowed[1] != MoveRight {
			t.Errorf("expected [left right], got %v", allowed)
		}
	})

	t.Run("corner crate off target empties the whole result", func(t *testing.T) {
		lvl := NewLevel([]string{
			"#####",
			"#x  #",
			"#  .#",
			"# x #",
			"#####",
		})
		// Crate at (1,1) is corner-locked; the free crate at (3,2) must
		// not be reported either.
		state := NewState(lvl, Point{2, 1}, []Point{{1, 1}, {3, 2}})

		if pushable := state.PushableBoxes(); len(pushable) != 0 {
			t.Errorf("expected no pushable crates, got %v", pushable)
		}
	})

	t.Run("corner crate on target does not short-circuit", func(t *testing.T) {
		lvl := NewLevel([]string{
			"#####",
			"#.  #",
			"#   #",
			"# x #",
			"#####",
		})
		state := NewState(lvl, Point{2, 1}, []Point{{1, 1}, {3, 2}})

		pushable := state.PushableBoxes()
		if len(pushable) != 1 {
			t.Fatalf("expected 1 pushable crate, got %d", len(pushable))
		}
		if pushable[0].CratePos != (Point{3, 2}) {
			t.Errorf("expected the free crate at (3,2), got %v", pushable[0].CratePos)
		}
	})

	t.Run("crates flanked by crates lose the horizontal pair", func(t *testing.T) {
		lvl := NewLevel([]string{
			"#######",
			"#     #",
			"# xxx #",
			"#     #",
			"#######",
		})
		// The middle crate has crates left and right and open cells
		// above and below, so only the vertical pair survives; the outer
		// crates have a crate on one side of the horizontal pair.
		state := NewState(lvl, Point{1, 1}, []Point{{2, 2}, {2, 3}, {2, 4}})

		pushable := state.PushableBoxes()
		for _, pb := range pushable {
			for _, m := range pb.Allowed {
				if m == MoveLeft || m == MoveRight {
					t.Errorf("crate %v should not be pushable horizontally", pb.CratePos)
				}
			}
		}
	})
}

func TestBoxesOnTarget(t *testing.T) {
	lvl := NewLevel([]string{
		"######",
		"# .. #",
		"#    #",
		"######",
	})
	state := NewState(lvl, Point{2, 1}, []Point{{1, 2}, {1, 4}})
	if got := state.BoxesOnTarget(); got != 1 {
		t.Errorf("BoxesOnTarget() = %d, expected 1", got)
	}
}

func TestAdjacentWalkable(t *testing.T) {
	lvl := NewLevel([]string{
		"#####",
		"#   #",
		"# x #",
		"#   #",
		"#####",
	})
	state := NewState(lvl, Point{1, 2}, []Point{{2, 2}})

	// Around (2,1): up (1,1) free, down (3,1) free, left wall, right crate
	adj := state.AdjacentWalkable(Point{2, 1})
	if len(adj) != 2 {
		t.Fatalf("AdjacentWalkable((2,1)) = %v, expected 2 points", adj)
	}
	for _, p := range adj {
		if p == (Point{2, 2}) {
			t.Error("crate cell reported walkable")
		}
	}

	// The player's own cell is excluded from neighbour candidates
	for _, p := range state.AdjacentWalkable(Point{1, 1}) {
		if p == state.PlayerPos() {
			t.Error("player cell reported walkable")
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	lvl := NewLevel([]string{
		"#####",
		"#   #",
		"# x #",
		"#   #",
		"#####",
	})
	orig := NewState(lvl, Point{2, 1}, []Point{{2, 2}})
	clone := orig.Clone()

	clone.ApplyMove(MoveRight) // pushes the crate

	if orig.PlayerPos() != (Point{2, 1}) {
		t.Errorf("original player moved to %v", orig.PlayerPos())
	}
	if !orig.HasBox(Point{2, 2}) {
		t.Error("original crate moved")
	}
	if !clone.HasBox(Point{2, 3}) {
		t.Error("clone crate did not move")
	}
}

func TestStateEqual(t *testing.T) {
	lvl := NewLevel([]string{
		"#####",
		"#   #",
		"#   #",
		"#####",
	})

	a := NewState(lvl, Point{1, 1}, []Point{{1, 2}, {2, 2}})
	b := NewState(lvl, Point{1, 1}, []Point{{2, 2}, {1, 2}})
	c := NewState(lvl, Point{2, 1}, []Point{{1, 2}, {2, 2}})

	if !a.Equal(b) {
		t.Error("states with same player and crates should be equal")
	}
	if a.Equal(c) {
		t.Error("states with different players should not be equal")
	}
}

func TestPrintableRows(t *testing.T) {
	lvl := NewLevel([]string{
		"#####",
		"#  .#",
		"# . #",
		"#####",
	})
	state := NewState(lvl, Point{1, 1}, []Point{{1, 2}, {2, 2}})

	rows := state.PrintableRows()
	want := []string{
		"#####",
		"#@x.#",
		"# X #",
		"#####",
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, rows[i], want[i])
		}
	}
}
