package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/game"
)

// Styles for each board character.
var (
	wallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	crateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	placedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	playerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true)
	victoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// RenderBoard converts a game state to a styled board string. Cells are
// widened with a trailing space so the grid reads roughly square in a
// terminal.
func RenderBoard(state *game.State) string {
	var sb strings.Builder
	for i, row := range state.PrintableRows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(styleOf(c).Render(string(c)))
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func styleOf(c rune) lipgloss.Style {
	switch c {
	case '#':
		return wallStyle
	case '.':
		return targetStyle
	case 'x':
		return crateStyle
	case 'X':
		return placedStyle
	case '@':
		return playerStyle
	default:
		return lipgloss.NewStyle()
	}
}
