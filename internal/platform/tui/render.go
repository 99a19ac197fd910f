package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astro-sim/internal/world"
)

// Entity glyphs.
const (
	shipGlyph      = '@'
	bulletGlyph    = '·'
	asteroidGlyph  = 'O'
	planetoidGlyph = 'o'
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	glyphStyles = map[world.Kind]lipgloss.Style{
		world.KindShip:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		world.KindBullet:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		world.KindAsteroid:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		world.KindPlanetoid: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
)

func glyphFor(k world.Kind) rune {
	switch k {
	case world.KindShip:
		return shipGlyph
	case world.KindBullet:
		return bulletGlyph
	case world.KindAsteroid:
		return asteroidGlyph
	default:
		return planetoidGlyph
	}
}

// View renders the world, the event log and the help bar.
func (m Model) View() string {
	// Reserve rows for the grid border, the HUD, the event log and the
	// help bar.
	gridH := m.height - 4 - eventLogDepth
	gridW := m.width - 2
	if gridH < 4 || gridW < 10 {
		return "window too small"
	}

	var sb strings.Builder
	sb.WriteString(m.renderGrid(gridW, gridH))
	sb.WriteByte('\n')
	sb.WriteString(m.renderHUD())
	sb.WriteByte('\n')
	for _, line := range m.log.lines {
		sb.WriteString(hudStyle.Render("  " + line))
		sb.WriteByte('\n')
	}
	for i := len(m.log.lines); i < eventLogDepth; i++ {
		sb.WriteByte('\n')
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderGrid projects entity centres onto a character grid inside a box
// border. Cells are coarse, so overlapping glyphs simply overwrite; the
// last-added entity wins, which is fine for a viewer.
func (m Model) renderGrid(gridW, gridH int) string {
	cells := make([][]rune, gridH)
	kinds := make([][]world.Kind, gridH)
	for y := range cells {
		cells[y] = make([]rune, gridW)
		kinds[y] = make([]world.Kind, gridW)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	sx := float64(gridW) / m.w.Width()
	sy := float64(gridH) / m.w.Height()
	for _, e := range m.w.Entities() {
		p := e.Position()
		x := int(p.X() * sx)
		y := gridH - 1 - int(p.Y()*sy) // world Y grows up, terminal Y grows down
		if x < 0 || x >= gridW || y < 0 || y >= gridH {
			continue
		}
		cells[y][x] = glyphFor(e.Kind())
		kinds[y][x] = e.Kind()
	}

	var sb strings.Builder
	sb.WriteString(borderStyle.Render("┌" + strings.Repeat("─", gridW) + "┐"))
	sb.WriteByte('\n')
	for y := 0; y < gridH; y++ {
		sb.WriteString(borderStyle.Render("│"))
		for x := 0; x < gridW; x++ {
			r := cells[y][x]
			if r == ' ' {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(glyphStyles[kinds[y][x]].Render(string(r)))
		}
		sb.WriteString(borderStyle.Render("│"))
		sb.WriteByte('\n')
	}
	sb.WriteString(borderStyle.Render("└" + strings.Repeat("─", gridW) + "┘"))
	return sb.String()
}

func (m Model) renderHUD() string {
	status := "running"
	if m.paused {
		status = "paused"
	}
	line := fmt.Sprintf(" t=%7.2fs  entities=%-3d  hits=%d  bounces=%d  [%s]",
		m.simTime, len(m.w.Entities()), m.log.objects, m.log.boundaries, status)
	if m.runErr != nil {
		return errStyle.Render(fmt.Sprintf(" program fault: %v", m.runErr))
	}
	return hudStyle.Render(line)
}
