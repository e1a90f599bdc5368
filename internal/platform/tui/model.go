package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/game"
	"github.com/vovakirdan/tui-sokoban/internal/level"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Model is the Bubble Tea model for playing a level, either manually or
// by watching a produced solution play out.
type Model struct {
	levelID string
	parsed  level.ParsedLevel
	state   *game.State

	// Automatic playback
	auto     bool
	solution []game.Move
	step     int
	delay    time.Duration

	// Moves performed in manual mode, for the solve record
	played []game.Move

	store    *storage.Store
	keys     KeyMap
	help     help.Model
	started  time.Time
	saved    bool
	quitting bool
}

// NewModel creates a play model for the given parsed level. A non-nil
// solution switches the model into automatic playback.
func NewModel(levelID string, parsed level.ParsedLevel, solution []game.Move, delay time.Duration, store *storage.Store) Model {
	_, state := parsed.NewState()
	return Model{
		levelID:  levelID,
		parsed:   parsed,
		state:    state,
		auto:     solution != nil,
		solution: solution,
		delay:    delay,
		store:    store,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		started:  time.Now(),
	}
}

// Init starts playback ticking in automatic mode.
func (m Model) Init() tea.Cmd {
	if m.auto {
		return stepCmd(m.delay)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case StepMsg:
		return m.handleStep()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		_, m.state = m.parsed.NewState()
		m.played = nil
		m.step = 0
		m.saved = false
		m.started = time.Now()
		if m.auto {
			return m, stepCmd(m.delay)
		}
		return m, nil
	}

	if m.auto || m.state.IsVictory() {
		return m, nil
	}

	if move := m.keys.MoveOf(msg.String()); move != game.MoveNone {
		m.state.ApplyMove(move)
		m.played = append(m.played, move)
		if m.state.IsVictory() {
			m.saveRecord(m.played)
		}
	}

	return m, nil
}

// handleStep advances automatic playback by one solution move.
func (m Model) handleStep() (tea.Model, tea.Cmd) {
	if !m.auto || m.step >= len(m.solution) {
		return m, nil
	}

	m.state.ApplyMove(m.solution[m.step])
	m.step++

	if m.step < len(m.solution) {
		return m, stepCmd(m.delay)
	}
	return m, nil
}

// saveRecord stores a finished manual game, once per victory.
func (m *Model) saveRecord(moves []game.Move) {
	if m.saved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveSolve(m.levelID, game.StringOfMoves(moves), time.Since(m.started))
	m.saved = true
}

// View renders the board, HUD and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var hud string
	if m.auto {
		hud = fmt.Sprintf(" %s — playback %d/%d", m.levelID, m.step, len(m.solution))
	} else {
		hud = fmt.Sprintf(" %s — moves: %d", m.levelID, len(m.played))
	}

	view := hudStyle.Render(hud) + "\n\n" + RenderBoard(m.state) + "\n"

	if m.state.IsVictory() {
		view += victoryStyle.Render("\n Victory!") + "\n"
	} else if m.auto && m.step >= len(m.solution) {
		view += "\n Playback finished.\n"
	}

	view += "\n" + m.help.View(m.keys)
	return view
}

// Run starts the Bubble Tea program for a single level.
func Run(levelID string, parsed level.ParsedLevel, solution []game.Move, delay time.Duration, store *storage.Store) error {
	model := NewModel(levelID, parsed, solution, delay, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
