package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astro-sim/internal/config"
	"github.com/vovakirdan/astro-sim/internal/world"
)

// eventLog collects collision notifications across ticks. The model is
// copied by value on every update, so the log lives behind a pointer and
// doubles as the world's collision listener.
type eventLog struct {
	lines      []string
	objects    int
	boundaries int
}

const eventLogDepth = 5

func (l *eventLog) push(line string) {
	l.lines = append(l.lines, line)
	if len(l.lines) > eventLogDepth {
		l.lines = l.lines[len(l.lines)-eventLogDepth:]
	}
}

// ObjectCollision implements world.CollisionListener.
func (l *eventLog) ObjectCollision(a, b world.Entity, x, y float64) {
	l.objects++
	l.push(fmt.Sprintf("%s x %s destroyed at (%.0f, %.0f)", a.Kind(), b.Kind(), x, y))
}

// BoundaryCollision implements world.CollisionListener.
func (l *eventLog) BoundaryCollision(e world.Entity, x, y float64) {
	l.boundaries++
	l.push(fmt.Sprintf("%s bounced at (%.0f, %.0f)", e.Kind(), x, y))
}

// Model is the Bubble Tea model for watching a simulation.
type Model struct {
	w   *world.World
	cfg config.SimConfig
	log *eventLog

	width  int
	height int

	simTime float64
	paused  bool
	runErr  error

	keys keyMap
	help help.Model
}

// NewModel creates a viewer model for the given world.
func NewModel(w *world.World, cfg config.SimConfig, width, height int) Model {
	if cfg.Viewer.TickRate <= 0 {
		cfg.Viewer.TickRate = 30
	}
	if cfg.Viewer.TimeScale <= 0 {
		cfg.Viewer.TimeScale = 1
	}
	return Model{
		w:      w,
		cfg:    cfg,
		log:    &eventLog{},
		width:  width,
		height: height,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Viewer.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Step):
			if m.paused {
				m = m.advance()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if !m.paused && m.runErr == nil {
			m = m.advance()
		}
		return m, tickCmd(m.cfg.Viewer.TickRate)
	}

	return m, nil
}

// advance evolves the world by one viewer tick of simulated time.
func (m Model) advance() Model {
	dt := m.cfg.Viewer.TimeScale / float64(m.cfg.Viewer.TickRate)
	if err := m.w.Evolve(dt, m.log); err != nil {
		m.runErr = err
		m.paused = true
		return m
	}
	m.simTime += dt
	return m
}

// Run starts the viewer for the given world and blocks until it exits.
func Run(w *world.World, cfg config.SimConfig, width, height int) error {
	p := tea.NewProgram(NewModel(w, cfg, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
