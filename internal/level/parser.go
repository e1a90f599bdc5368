// Package level loads Sokoban levels from their plain-text format: one
// line per row, '#' wall, '.' target, ' ' floor, '@' player start, 'x'
// crate and 'X' crate standing on a target. The parser validates the
// invariants the engine relies on, so the core never sees a bad level.
package level

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/game"
)

// ParsedLevel is the result of parsing a level file: the static grid with
// crates stripped out (crates-on-target normalised back to targets), the
// player start and the initial crate positions.
type ParsedLevel struct {
	Rows   []string
	Player game.Point
	Boxes  []game.Point
}

// NewState builds the level and its initial game state.
func (p ParsedLevel) NewState() (*game.Level, *game.State) {
	lvl := game.NewLevel(p.Rows)
	return lvl, game.NewState(lvl, p.Player, p.Boxes)
}

// Parse reads a level from its textual form. Empty lines are skipped.
func Parse(text string) (ParsedLevel, error) {
	var parsed ParsedLevel
	playerSeen := false

	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		cells := make([]byte, 0, len(line))
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case '@':
				if playerSeen {
					return ParsedLevel{}, fmt.Errorf("level: more than one player position")
				}
				playerSeen = true
				parsed.Player = game.Point{Row: row, Col: col}
				cells = append(cells, ' ')
			case 'x':
				parsed.Boxes = append(parsed.Boxes, game.Point{Row: row, Col: col})
				cells = append(cells, ' ')
			case 'X':
				parsed.Boxes = append(parsed.Boxes, game.Point{Row: row, Col: col})
				cells = append(cells, '.')
			default:
				cells = append(cells, line[col])
			}
		}
		parsed.Rows = append(parsed.Rows, string(cells))
		row++
	}

	if !playerSeen {
		return ParsedLevel{}, fmt.Errorf("level: no player position found")
	}
	if err := validate(parsed); err != nil {
		return ParsedLevel{}, err
	}
	return parsed, nil
}

// validate enforces the post-conditions the engine depends on: at least
// 4x4, equal row lengths, a full wall border and the player strictly
// inside it.
func validate(parsed ParsedLevel) error {
	height := len(parsed.Rows)
	if height < 4 {
		return fmt.Errorf("level: too few rows (%d)", height)
	}
	width := len(parsed.Rows[0])
	if width < 4 {
		return fmt.Errorf("level: too few columns (%d)", width)
	}

	for i, row := range parsed.Rows {
		if len(row) != width {
			return fmt.Errorf("level: row %d length %d differs from %d", i, len(row), width)
		}
		if row[0] != '#' || row[width-1] != '#' {
			return fmt.Errorf("level: row %d is not closed by walls", i)
		}
	}
	for col := 0; col < width; col++ {
		if parsed.Rows[0][col] != '#' || parsed.Rows[height-1][col] != '#' {
			return fmt.Errorf("level: column %d is not closed by walls", col)
		}
	}

	p := parsed.Player
	if p.Row <= 0 || p.Row >= height-1 || p.Col <= 0 || p.Col >= width-1 {
		return fmt.Errorf("level: player position (%d,%d) is outside the playable area", p.Row, p.Col)
	}
	return nil
}
