package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	mapWidth, mapHeight := m.mapW, m.mapH

	// Header
	info := fmt.Sprintf(" frame %d/%d  offset %.4f  sectors %d ", m.frame+1, len(m.offsets), m.offsets[m.frame], m.cfg.Sectors)
	if m.paused {
		info += "(paused) "
	}
	title := titleStyle.Render(" confgrid ─ conformal checkerboard ")
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, dimStyle.Render(info))
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	var mapView string
	if m.showInspect {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	} else {
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderBoard(mapWidth, mapHeight))
	}

	// Footer: status and hover coordinates, then help
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4f y=%.4f  ", m.hoverPt.X, m.hoverPt.Y))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	statusLine := lipgloss.NewStyle().MaxWidth(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, right))
	helpLine := lipgloss.NewStyle().MaxWidth(contentWidth).Render(m.renderHelp())
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, mapView, footer)
	return appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"space pause",
		". step",
		"[/] sectors",
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"b bounds",
		"i inspect",
		"s snapshot",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
