package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"confgrid/internal/geom"
)

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := DefaultOptions()
	opts.Offsets = []float64{0, 0.1, 0.2}
	opts.SnapshotDir = t.TempDir()
	opts.SnapshotRes = 16
	return send(t, New(opts), tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestNew(t *testing.T) {
	m := New(DefaultOptions())
	if len(m.board.Regions) != 120 {
		t.Errorf("initial board has %d regions, want 120", len(m.board.Regions))
	}
	if m.Init() == nil {
		t.Error("Init() returned no tick command")
	}
	if m.View() != "" {
		t.Error("View() before the first WindowSizeMsg is not empty")
	}
}

func TestTickAdvancesFrames(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if m.frame != 1 {
		t.Errorf("frame after one tick = %d, want 1", m.frame)
	}
	m = send(t, m, tickMsg(time.Now()), tickMsg(time.Now()))
	if m.frame != 0 {
		t.Errorf("frame after wrapping = %d, want 0", m.frame)
	}

	m = send(t, m, key(" "), tickMsg(time.Now()))
	if !m.paused || m.frame != 0 {
		t.Errorf("paused = %v, frame = %d, want paused on frame 0", m.paused, m.frame)
	}
	m = send(t, m, key("."))
	if m.frame != 1 {
		t.Errorf("frame after step = %d, want 1", m.frame)
	}
}

func TestSectorKeys(t *testing.T) {
	m := send(t, newTestModel(t), key("]"))
	if m.cfg.Sectors != 7 || len(m.board.Regions) != 2*7*10 {
		t.Errorf("after ]: sectors = %d, regions = %d, want 7 and 140", m.cfg.Sectors, len(m.board.Regions))
	}
	for i := 0; i < 10; i++ {
		m = send(t, m, key("["))
	}
	if m.cfg.Sectors != 1 || len(m.board.Regions) != 20 {
		t.Errorf("after many [: sectors = %d, regions = %d, want 1 and 20", m.cfg.Sectors, len(m.board.Regions))
	}
}

func TestZoomAndPan(t *testing.T) {
	m := newTestModel(t)
	w := m.vp.Rect.Width()
	m = send(t, m, key("+"))
	if got := m.vp.Rect.Width(); got >= w {
		t.Errorf("width after zoom in = %v, want < %v", got, w)
	}
	m = send(t, m, key("right"), key("up"))
	if c := m.vp.Center(); c.X <= 0 || c.Y <= 0 {
		t.Errorf("center after panning right and up = %v", c)
	}
	m = send(t, m, key("0"))
	if m.vp != m.home {
		t.Errorf("viewport after reset = %v, want %v", m.vp, m.home)
	}
}

func TestToggles(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("b"), key("h"))
	if m.showBounds || m.helpVisible {
		t.Errorf("showBounds = %v, helpVisible = %v after toggling, want false", m.showBounds, m.helpVisible)
	}
}

func TestInspect(t *testing.T) {
	// (1.2, 1.2) lies inside a band with two finite bounds
	m := send(t, newTestModel(t), key("right"), key("up"), key("i"))
	if !m.showInspect {
		t.Fatalf("inspect not shown, status %q", m.status)
	}
	if got := len(m.tbl.Rows()); got != 4 {
		t.Errorf("inspect table has %d rows, want 4", got)
	}
	if !strings.HasPrefix(m.status, "region ") {
		t.Errorf("status = %q, want region summary", m.status)
	}
	if v := m.View(); !strings.Contains(v, "holds") {
		t.Error("View() does not show the inspect table")
	}

	// the default center lies on the ratio-1 line
	m = send(t, newTestModel(t), key("i"))
	if m.showInspect {
		t.Error("inspect shown for a point on a boundary")
	}
}

func TestMouseHover(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion})
	if !m.hovering || m.hoverCellX != 5 || m.hoverCellY != 2 {
		t.Fatalf("hover = %v at (%d, %d), want cell (5, 2)", m.hovering, m.hoverCellX, m.hoverCellY)
	}
	if m.hoverPt.X >= 0 || m.hoverPt.Y <= 0 {
		t.Errorf("hover point %v, want upper left quadrant", m.hoverPt)
	}
	if !strings.Contains(m.View(), "x=") {
		t.Error("View() does not show hover coordinates")
	}
	m = send(t, m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion})
	if m.hovering {
		t.Error("hovering over the header")
	}
}

func TestSnapshot(t *testing.T) {
	m := send(t, newTestModel(t), key("s"))
	path := filepath.Join(m.snapDir, "confgrid-000.png")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v (status %q)", err, m.status)
	}
	if !strings.HasPrefix(m.status, "saved: ") {
		t.Errorf("status = %q, want saved message", m.status)
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newTestModel(t).Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	if !strings.Contains(v, "confgrid") {
		t.Error("View() missing title")
	}
	if got := strings.Count(v, "\n") + 1; got != 24 {
		t.Errorf("View() has %d lines, want 24", got)
	}
}

func TestFitViewport(t *testing.T) {
	vp := geom.Square(6)
	// 80 cells wide, 20 tall: twice as wide as tall on screen
	got := fitViewport(vp, 80, 20)
	if got.Rect.Height() != 12 || got.Rect.Width() != 24 {
		t.Errorf("fitViewport(80x20) = %v, want 24x12", got.Rect)
	}
	got = fitViewport(vp, 20, 20)
	if got.Rect.Width() != 12 || got.Rect.Height() != 24 {
		t.Errorf("fitViewport(20x20) = %v, want 12x24", got.Rect)
	}
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(3, 3)
	b.setPixel(9, 9)
	if got := b.cell(0, 0); got != 0x2801 {
		t.Errorf("cell(0, 0) = %U, want U+2801", got)
	}
	if got := b.cell(1, 0); got != 0x2880 {
		t.Errorf("cell(1, 0) = %U, want U+2880", got)
	}
	b = newBrailleBuf(1, 1)
	b.setMask([]bool{true, true, false, false, false, false, false, false})
	if got := b.cell(0, 0); got != 0x2809 {
		t.Errorf("cell after setMask = %U, want U+2809", got)
	}
}
