package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/level"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true)
)

// MenuModel is the Bubble Tea model for the level picker used by SSH
// sessions.
type MenuModel struct {
	levels   []level.File
	cursor   int
	selected *level.File // Set when the user picks a level
	quitting bool
}

// NewMenuModel creates a level picker over the given levels.
func NewMenuModel(levels []level.File) MenuModel {
	return MenuModel{levels: levels}
}

// Selected returns the picked level, or nil if the user quit.
func (m MenuModel) Selected() *level.File {
	return m.selected
}

// IsQuitting reports whether the user quit the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "w", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "s", "down", "j":
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.levels) > 0 {
			picked := m.levels[m.cursor]
			m.selected = &picked
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the level list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render(" Sokoban — pick a level"))
	sb.WriteString("\n\n")

	if len(m.levels) == 0 {
		sb.WriteString(menuDimStyle.Render(" No levels available."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, lvl := range m.levels {
		h := len(lvl.Parsed.Rows)
		w := len(lvl.Parsed.Rows[0])
		line := fmt.Sprintf("%s  %dx%d, %d crates", lvl.ID, h, w, len(lvl.Parsed.Boxes))
		if i == m.cursor {
			sb.WriteString(menuCursorStyle.Render(" > "))
			sb.WriteString(menuSelectedStyle.Render(line))
		} else {
			sb.WriteString("   ")
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(menuDimStyle.Render(" ↑/↓ move · enter play · q quit"))
	return sb.String()
}
