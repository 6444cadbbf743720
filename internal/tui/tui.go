// Package tui renders the game in the terminal: the hex chart with the boat
// on it, the five status panels, and a help footer. One key press applies at
// most one discrete action; every update redraws the whole frame.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkessler/lone-uboat/internal/game"
	"github.com/mkessler/lone-uboat/internal/scenario"
	"github.com/mkessler/lone-uboat/internal/sprite"
)

// Model is the bubbletea model for a game session.
type Model struct {
	name   string
	chart  *game.Chart
	boat   game.Boat
	state  game.State
	glyphs sprite.Set
	keys   keyMap
	help   help.Model
	log    *slog.Logger
	width  int
	height int
}

// NewModel builds the initial model from a loaded scenario.
func NewModel(sc *scenario.Scenario, glyphs sprite.Set, log *slog.Logger) Model {
	return Model{
		name:   sc.Name,
		chart:  sc.Chart,
		boat:   sc.Boat,
		state:  sc.State,
		glyphs: glyphs,
		keys:   defaultKeyMap(),
		help:   help.New(),
		log:    log,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.TurnLeft):
			m.boat.Turn(-1)

		case key.Matches(msg, m.keys.TurnRight):
			m.boat.Turn(1)

		case key.Matches(msg, m.keys.Advance):
			if !m.boat.Advance(m.chart) {
				// Blocked by land or the chart edge. Policy, not an error.
				m.log.Debug("advance blocked",
					"pos", m.boat.Pos,
					"heading", m.boat.Heading,
				)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) View() string {
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderChart(),
		m.renderStatus(),
	)

	s := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.name),
		"",
		main,
		"",
		m.help.View(m.keys),
	)

	return "\n" + s + "\n"
}

// Run starts the TUI and blocks until the player quits.
func Run(sc *scenario.Scenario, glyphs sprite.Set, log *slog.Logger) error {
	p := tea.NewProgram(NewModel(sc, glyphs, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
