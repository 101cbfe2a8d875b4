package tui

import (
	"time"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"confgrid/internal/checker"
	"confgrid/internal/frames"
	"confgrid/internal/geom"
)

// Options configures the viewer.
type Options struct {
	Config      checker.Config
	Offsets     []float64
	Viewport    geom.Viewport
	Interval    time.Duration
	SnapshotDir string
	SnapshotRes int
}

func DefaultOptions() Options {
	return Options{
		Config:      checker.DefaultConfig(),
		Offsets:     frames.Offsets(40, frames.DefaultSpan),
		Viewport:    geom.Square(6),
		Interval:    100 * time.Millisecond,
		SnapshotDir: ".",
		SnapshotRes: 400,
	}
}

type tickMsg time.Time

type Model struct {
	width  int
	height int

	helpVisible bool
	showBounds  bool
	paused      bool

	cfg      checker.Config
	offsets  []float64
	frame    int
	board    checker.Board
	home     geom.Viewport
	vp       geom.Viewport
	interval time.Duration

	snapDir string
	snapRes int

	status string

	// map area in cells
	mapW int
	mapH int

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverPt    geom.Point

	// inspect table
	showInspect bool
	tbl         table.Model
}

func New(opts Options) Model {
	if len(opts.Offsets) == 0 {
		opts.Offsets = []float64{0}
	}
	if !opts.Viewport.Valid() {
		opts.Viewport = geom.Square(6)
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	m := Model{
		helpVisible: true,
		showBounds:  true,
		cfg:         opts.Config,
		offsets:     opts.Offsets,
		home:        opts.Viewport,
		vp:          opts.Viewport,
		interval:    opts.Interval,
		snapDir:     opts.SnapshotDir,
		snapRes:     opts.SnapshotRes,
		status:      "confgrid ready",
	}
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// rebuild recomputes the board for the current frame.
func (m *Model) rebuild() {
	b, err := checker.Frame(m.offsets[m.frame], m.cfg)
	if err != nil {
		m.status = "frame error: " + err.Error()
		return
	}
	m.board = b
	if m.showInspect {
		m.refreshInspect()
	}
}

// inspectPoint is the hovered world point, or the viewport center.
func (m Model) inspectPoint() geom.Point {
	if m.hovering {
		return m.hoverPt
	}
	return m.vp.Center()
}
