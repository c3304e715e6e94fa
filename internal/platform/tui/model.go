package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/game"
)

// Options configures the terminal front end.
type Options struct {
	Runtime core.RuntimeConfig // initial screen size and tick rate
	MapName string             // shown in the HUD
	Logger  *log.Logger
}

// Model is the Bubble Tea model for playing a session.
type Model struct {
	session *game.Session
	opts    Options
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	input   core.InputFrame

	termW, termH int
	paused       bool
	quitting     bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(s *game.Session, opts Options) Model {
	defaults := core.DefaultConfig()
	if opts.Runtime.TickRate < 1 {
		opts.Runtime.TickRate = defaults.TickRate
	}
	if opts.Runtime.ScreenW < 1 || opts.Runtime.ScreenH < 1 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	return Model{
		session: s,
		opts:    opts,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		termW:   rt.ScreenW,
		termH:   rt.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys are collected until
// the next tick; everything else takes effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	done := m.session.Outcome().Done()
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.session.Step(game.Input{Quit: true})
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !done {
			m.paused = !m.paused
			m.opts.Logger.Debug("pause toggled", "paused", m.paused, "tick", m.session.Tick())
		}

	case core.ActionRestart:
		if done {
			m.session.Reset()
			m.paused = false
			m.input.Clear()
			m.opts.Logger.Debug("session restarted", "session", m.session.ID().String())
		}

	case core.ActionAutopilot:
		m.session.SetAutopilot(!m.session.Autopilot())

	case core.ActionNone:

	default:
		if !done && !m.paused {
			m.input.Set(action)
		}
	}
	return m, nil
}

// handleTick advances the session unless it is paused or over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.session.Outcome().Done() {
		m.session.Step(sessionInput(m.input))
		m.input.Clear()
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	h := max(m.termH-lipgloss.Height(footer), 0)
	if m.screen.Width() != m.termW || m.screen.Height() != h {
		m.screen.Resize(m.termW, h)
	}

	m.render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// render draws the HUD, board and any overlay into dst.
func (m Model) render(dst *core.Screen) {
	dst.Clear()
	snap := m.session.Snapshot()
	drawHUD(dst, snap, m.opts.MapName)

	bw, bh := boardSize(m.session)
	if bw > dst.Width() || bh+hudHeight > dst.Height() {
		drawOverlay(dst, "Window too small", "Resize to continue", core.ColorYellow)
		return
	}
	origin := core.NewRect((dst.Width()-bw)/2, hudHeight, bw, bh)
	drawBoard(dst, m.session, origin)

	switch {
	case snap.Outcome.Done():
		title, detail, color := overlayFor(snap.Outcome)
		drawOverlay(dst, title, detail, color)
	case m.paused:
		drawOverlay(dst, "Paused", "Press P to continue", core.ColorYellow)
	}
}

// Run plays s in the terminal until the player quits and returns the final
// outcome. Quitting before the end gives a KindQuit outcome.
func Run(s *game.Session, opts Options) (game.Outcome, error) {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return s.Outcome(), err
	}
	return s.Outcome(), nil
}
