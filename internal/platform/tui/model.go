package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/loop"
)

// chromeRows is the number of terminal rows below the race: status and help.
const chromeRows = 2

var racingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

var finishedStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("160")).
	Padding(0, 1)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running a race. The loop holds the race
// state; the model only queues input and paces frames.
type Model struct {
	loop     *loop.Loop
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	tickRate int
	pending  []core.Event
	quitting bool
}

// NewModel creates a model for a race of the given options, drawn into a
// width x height terminal. The race starts immediately.
func NewModel(l *loop.Loop, opts loop.Options, width, height int) Model {
	screen := core.NewScreen(max(width, 1), max(height-chromeRows, 1))
	screen.SetWorld(float64(opts.Width), float64(opts.Height))

	h := help.New()
	h.Width = width

	l.Initialize()

	return Model{
		loop:     l,
		screen:   screen,
		keys:     DefaultKeyMap(),
		help:     h,
		tickRate: opts.FrameRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg, m.screen); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit is applied at once so the
// program exits without waiting for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.MapKey(msg)
	if ev.Kind == core.EventQuit {
		m.loop.HandleEvent(ev)
		m.quitting = true
		return m, tea.Quit
	}
	m.pending = append(m.pending, ev)
	return m, nil
}

// handleResize keeps the race filling the terminal. The race itself is
// unaffected; only its projection onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-chromeRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: drain input, check the finish line, then
// advance and draw.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, ev := range m.pending {
		m.loop.HandleEvent(ev)
	}
	m.pending = m.pending[:0]

	if !m.loop.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	m.loop.Step()
	m.loop.Render(m.screen)

	return m, tickCmd(m.tickRate)
}

// Status returns the text of the status line.
func (m Model) Status() string {
	if r := m.loop.Race(); r != nil && r.Finished() {
		return "Finished - click to restart"
	}
	return "Racing"
}

// View renders the last drawn frame with the status and help lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := racingStyle
	if r := m.loop.Race(); r != nil && r.Finished() {
		style = finishedStyle
	}

	return RenderScreen(m.screen) + "\n" +
		style.Render(m.Status()) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}
