package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"confgrid/internal/logging"
	"confgrid/internal/render"
)

const (
	headerHeight = 1
	footerHeight = 2
	maxSectors   = 24
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mapW = max(10, m.width)
		m.mapH = max(4, m.height-headerHeight-footerHeight)
	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if m.paused {
				m.status = "paused"
			} else {
				m.status = "playing"
			}
		case ".":
			m.paused = true
			m.advance()
			m.status = fmt.Sprintf("frame %d/%d", m.frame+1, len(m.offsets))
		case "]":
			if m.cfg.Sectors < maxSectors {
				m.cfg.Sectors++
				m.rebuild()
			}
			m.status = fmt.Sprintf("sectors: %d", m.cfg.Sectors)
		case "[":
			if m.cfg.Sectors > 1 {
				m.cfg.Sectors--
				m.rebuild()
			}
			m.status = fmt.Sprintf("sectors: %d", m.cfg.Sectors)
		case "+", "=":
			if m.home.Rect.Width()/m.vp.Rect.Width() < 64 {
				m.vp = m.vp.Zoom(1.2)
				m.status = fmt.Sprintf("zoom: %.2fx", m.home.Rect.Width()/m.vp.Rect.Width())
			}
		case "-", "_":
			if m.home.Rect.Width()/m.vp.Rect.Width() > 0.05 {
				m.vp = m.vp.Zoom(1 / 1.2)
				m.status = fmt.Sprintf("zoom: %.2fx", m.home.Rect.Width()/m.vp.Rect.Width())
			}
		case "0":
			m.vp = m.home
			m.status = "view reset"
		case "up":
			m.vp = m.vp.Pan(0, 0.1)
		case "down":
			m.vp = m.vp.Pan(0, -0.1)
		case "left":
			m.vp = m.vp.Pan(-0.1, 0)
		case "right":
			m.vp = m.vp.Pan(0.1, 0)
		case "b":
			m.showBounds = !m.showBounds
			m.status = fmt.Sprintf("boundaries: %v", m.showBounds)
		case "h":
			m.helpVisible = !m.helpVisible
		case "i":
			m.showInspect = !m.showInspect
			if m.showInspect {
				m.refreshInspect()
			}
		case "s":
			m.snapshot()
		}
	case tea.MouseMsg:
		// map area sits right below the header, full width
		cx, cy := msg.X, msg.Y-headerHeight
		if p, ok := m.cellToWorld(cx, cy, m.mapW, m.mapH); ok {
			m.hovering = true
			m.hoverCellX, m.hoverCellY = cx, cy
			m.hoverPt = p
		} else {
			m.hovering = false
		}
	}
	return m, nil
}

// advance moves to the next frame of the sweep, wrapping around.
func (m *Model) advance() {
	m.frame = (m.frame + 1) % len(m.offsets)
	m.rebuild()
}

// snapshot renders the current frame at full resolution into a PNG.
func (m *Model) snapshot() {
	img, err := render.NewRaster().Render(m.board, m.vp, m.snapRes)
	if err != nil {
		m.status = "snapshot error: " + err.Error()
		return
	}
	path := filepath.Join(m.snapDir, fmt.Sprintf("confgrid-%03d.png", m.frame))
	if err := render.SavePNG(path, img); err != nil {
		m.status = "snapshot error: " + err.Error()
		return
	}
	logging.Logger().Info("snapshot saved", "path", path, "frame", m.frame)
	m.status = "saved: " + path
}
