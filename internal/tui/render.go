package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkessler/lone-uboat/internal/game"
	"github.com/mkessler/lone-uboat/internal/hexgrid"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			MarginLeft(2)

	boatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF3030")).
			Bold(true)

	trackCellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#3C3C3C")).
			Foreground(lipgloss.Color("#AAAAAA"))

	trackActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color("#CC0000")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	crewLostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF3030")).
			Strikethrough(true)

	systemDamagedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#CC0000")).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	// Terrain colors follow the chart convention: midnight blue deep water,
	// turquoise shallows, green land, white out-of-bounds padding.
	terrainStyles = map[game.Terrain]lipgloss.Style{
		game.TerrainDeepWater:    lipgloss.NewStyle().Background(lipgloss.Color("#191970")),
		game.TerrainShallowWater: lipgloss.NewStyle().Background(lipgloss.Color("#40E0D0")),
		game.TerrainLand:         lipgloss.NewStyle().Background(lipgloss.Color("#228B22")),
		game.TerrainOutOfBounds:  lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")),
	}

	tubeStyles = map[game.TubeStatus]lipgloss.Style{
		game.TubeLoaded:  lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("#00AA00")).Foreground(lipgloss.Color("#000000")).Bold(true),
		game.TubeEmpty:   lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("#CCCC00")).Foreground(lipgloss.Color("#000000")).Bold(true),
		game.TubeDamaged: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("#CC0000")).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	}
)

// cellWidth is the printed width of one hex cell. Odd rows are indented by
// half a cell to show the offset layout.
const cellWidth = 2

// renderChart rasterizes the terrain grid with the boat glyph on top.
func (m Model) renderChart() string {
	var b strings.Builder
	for row := 0; row < m.chart.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		if row%2 == 1 {
			b.WriteString(strings.Repeat(" ", cellWidth/2))
		}
		for col := 0; col < m.chart.Cols(); col++ {
			pos := hexgrid.Offset{Row: row, Col: col}
			st := terrainStyles[m.chart.At(pos)]
			if pos == m.boat.Pos {
				glyph := m.glyphs[m.boat.Heading]
				b.WriteString(st.Inherit(boatStyle).Render(glyph + " "))
				continue
			}
			b.WriteString(st.Render(strings.Repeat(" ", cellWidth)))
		}
	}
	return b.String()
}

// renderStatus draws the five panels as a sidebar next to the chart.
func (m Model) renderStatus() string {
	sections := []string{
		panelTitleStyle.Render("DETECTION LEVEL"),
		renderTrack(game.DetectionLabels[:], m.state.Detection),
		"",
		panelTitleStyle.Render("HULL DAMAGE"),
		renderTrack(game.HullLabels[:], m.state.Hull),
		"",
		panelTitleStyle.Render("TORPEDO TUBES"),
		m.renderTubes(),
		"",
		panelTitleStyle.Render("CREW STATUS"),
		m.renderCrew(),
		"",
		panelTitleStyle.Render("SYSTEM DAMAGE"),
		m.renderSystems(),
	}
	return statusStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTrack draws a horizontal stepped track with the current step
// highlighted.
func renderTrack(labels []string, current int) string {
	cells := make([]string, len(labels))
	for i, label := range labels {
		st := trackCellStyle
		if i == current {
			st = trackActiveStyle
		}
		cells[i] = st.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderTubes() string {
	cells := make([]string, len(m.state.Tubes))
	for i, tube := range m.state.Tubes {
		cells[i] = tubeStyles[tube.Status].Render(tube.Number)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderCrew() string {
	lines := make([]string, len(m.state.Crew))
	for i, member := range m.state.Crew {
		if member.OK() {
			lines[i] = member.Role
		} else {
			lines[i] = crewLostStyle.Render(member.Role) + " " + member.Status
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSystems() string {
	lines := make([]string, len(m.state.Systems))
	for i, sys := range m.state.Systems {
		if sys.Damaged() {
			lines[i] = systemDamagedStyle.Render(" " + sys.Name + " ")
		} else {
			lines[i] = " " + sys.Name
		}
	}
	return strings.Join(lines, "\n")
}
