package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

// Model is the Bubble Tea model driving the reflex frame loop. Key events
// land in the latch between frames; each TickMsg runs exactly one frame of
// the game session and re-arms the timer, which caps the frame rate.
type Model struct {
	session  *reflex.Session
	latch    *KeyLatch
	keys     KeyMap
	help     help.Model
	period   time.Duration
	width    int
	height   int
	snap     reflex.Snapshot
	quitting bool
}

// NewModel creates a model for the given session. The latch must be the
// same one the session polls.
func NewModel(session *reflex.Session, latch *KeyLatch, cfg core.RuntimeConfig) Model {
	return Model{
		session: session,
		latch:   latch,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		period:  cfg.FramePeriod(),
		width:   80,
		height:  24,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.period)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.latch.Store(m.keys.Map(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		snap, quit := m.session.Frame(time.Now())
		m.snap = snap
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.period)
	}

	return m, nil
}

// View renders the latest frame snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpLine := "Controls: 4 pad buttons (UP/DOWN/LEFT/RIGHT) or " + m.help.ShortHelpView(m.keys.ShortHelp())
	return renderView(m.snap, m.width, m.height, helpLine)
}

// Run starts the Bubble Tea program for a local game. width and height
// seed the layout until the first WindowSizeMsg arrives.
func Run(session *reflex.Session, latch *KeyLatch, cfg core.RuntimeConfig, width, height int) error {
	model := NewModel(session, latch, cfg)
	if width > 0 {
		model.width = width
	}
	if height > 0 {
		model.height = height
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
