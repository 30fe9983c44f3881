package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghostflap/internal/config"
	"github.com/vovakirdan/ghostflap/internal/core"
	"github.com/vovakirdan/ghostflap/internal/level"
	"github.com/vovakirdan/ghostflap/internal/replay"
	"github.com/vovakirdan/ghostflap/internal/session"
	"github.com/vovakirdan/ghostflap/internal/storage"
)

// Model is the Bubble Tea model for playing ghostflap. It owns one run
// supervisor and one replay ledger; ghosts accumulate for as long as the
// model lives.
type Model struct {
	cfg    config.Config
	lvl    level.Level
	ledger *replay.Ledger
	sv     *session.Supervisor
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper
	frame  core.InputFrame

	best     int
	paused   bool
	quitting bool
}

// NewModel creates a model sized to the given terminal dimensions.
func NewModel(cfg config.Config, lvl level.Level, store *storage.Store, width, height int) Model {
	ledger := replay.NewLedger()

	m := Model{
		cfg:    cfg,
		lvl:    lvl,
		ledger: ledger,
		sv:     session.New(cfg.Params(width, height), lvl, ledger),
		screen: core.NewScreen(width, height),
		store:  store,
		keys:   NewKeyMapper(),
		frame:  core.NewInputFrame(),
	}

	if store != nil {
		if best, err := store.BestScore(); err == nil {
			m.best = best
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Clock.TickPeriodMS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize processes window resize events. Simulation parameters are
// fixed per run, so a new viewport only takes effect when no run is in
// flight; a live run keeps its geometry and is clipped to the new screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)

	if state, ok := m.sv.State(); !ok || state.Over {
		m.sv = session.New(m.cfg.Params(msg.Width, msg.Height), m.lvl, m.ledger)
	}

	return m, nil
}

// handleTick consumes the collected input frame and advances the
// simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.cfg.Clock.TickPeriodMS)

	if m.frame.Has(core.ActionPause) {
		m.paused = !m.paused
	}

	state, running := m.sv.State()
	if m.frame.Has(core.ActionStart) && (!running || state.Over) {
		m.sv.Start()
		m.paused = false
		m.frame.Clear()
		return m, next
	}

	if !running || m.paused {
		m.frame.Clear()
		return m, next
	}

	// Each qualifying key press is one impulse event.
	for i := 0; i < m.frame.Count(core.ActionFlap); i++ {
		m.sv.Flap()
	}

	state, justEnded := m.sv.Advance()
	if justEnded {
		m.saveRun(state.Score, state.Won, state.Tick)
	}

	m.frame.Clear()
	return m, next
}

// saveRun persists a finished run and refreshes the best score.
func (m *Model) saveRun(score int, won bool, ticks int) {
	if score > m.best {
		m.best = score
	}
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveRun(score, won, ticks)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state, running := m.sv.State()
	if !running {
		drawSplash(m.screen, m.best, m.ledger.Len())
	} else {
		drawRun(m.screen, m.sv.Params(), state, m.best, m.paused)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.Config, lvl level.Level, store *storage.Store, width, height int) error {
	model := NewModel(cfg, lvl, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
