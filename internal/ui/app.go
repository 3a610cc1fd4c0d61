package ui

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Timings   carousel.Timings
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration
	Source    string // shown in the header, e.g. a file path or URL
	Logger    zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	timings   carousel.Timings
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration
	source    string
	logger    zerolog.Logger

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	zones    *zone.Manager
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot    state.Snapshot
	revision    uint64
	lastUpdated time.Time

	// Carousels
	views []*domainView
	focus int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	userPrefs := opts.Prefs
	if userPrefs == (prefs.Prefs{}) {
		userPrefs = prefs.Default()
	}
	if userPrefs.Theme == "" {
		userPrefs.Theme = prefs.Default().Theme
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		timings:   opts.Timings.WithDefaults(),
		prefs:     userPrefs,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		source:    opts.Source,
		logger:    opts.Logger,
		theme:     GetTheme(userPrefs.Theme),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		zones:     zone.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model. Engine calls made while handling a message
// queue their timer and frame commands in each view's outbox; those are
// drained into the returned command.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		for _, v := range m.views {
			v.resize(msg.Width)
		}

	case tickMsg:
		cmd = m.handleTick()

	case snapshotMsg:
		m.handleSnapshot(state.Snapshot(msg))

	case timerMsg:
		if m.owns(msg.view) {
			msg.view.sched.fire(msg.kind, msg.gen)
		}

	case frameMsg:
		if m.owns(msg.view) {
			msg.view.anim.step(msg.gen)
		}

	case prefsSavedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("save preferences failed")
		}
	}

	return m, tea.Batch(cmd, m.drain())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.zones.Scan(m.renderMain())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.closeViews()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.AutoAdvance):
		m.prefs.AutoAdvance = !m.prefs.AutoAdvance
		for _, v := range m.views {
			v.setHold(holdPref, !m.prefs.AutoAdvance)
		}
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.Tab):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.moveFocus(-1)
		return m, nil
	}

	v := m.focused()
	if v == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Previous):
		v.engine.Previous()
	case key.Matches(msg, m.keys.Next):
		v.engine.Next()
	case key.Matches(msg, m.keys.Jump):
		if n := int(msg.String()[0] - '1'); n < v.engine.Len() {
			v.binding.SetIndex(n)
		}
	case key.Matches(msg, m.keys.NudgeL):
		v.nudge(-wheelStep)
	case key.Matches(msg, m.keys.NudgeR):
		v.nudge(wheelStep)
	case key.Matches(msg, m.keys.Hold):
		v.setHold(holdTouch, !v.held(holdTouch))
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// handleSnapshot applies a store snapshot. Views are rebuilt only when the
// set of domains changes; otherwise their items are swapped in place.
func (m *Model) handleSnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = time.Now()
	if snap.Revision == m.revision || !snap.HasCatalog() {
		return
	}
	m.revision = snap.Revision

	domains := snap.Catalog.Domains
	if !m.sameDomains(snap) {
		m.rebuildViews(snap)
		return
	}
	for i, v := range m.views {
		if err := v.setDomain(domains[i]); err != nil {
			m.logger.Error().Err(err).Str("domain", domains[i].Name).Msg("replace carousel items failed")
			continue
		}
		v.engine.IndexChanged(m.store.Index(i))
	}
}

func (m *Model) sameDomains(snap state.Snapshot) bool {
	domains := snap.Catalog.Domains
	if len(domains) != len(m.views) {
		return false
	}
	for i, v := range m.views {
		if v.domain.Name != domains[i].Name {
			return false
		}
	}
	return true
}

func (m *Model) rebuildViews(snap state.Snapshot) {
	m.closeViews()
	m.views = nil
	opts := viewOptions{
		store:       m.store,
		width:       m.width,
		timings:     m.timings,
		autoAdvance: m.prefs.AutoAdvance,
		logger:      m.logger,
	}
	for i, d := range snap.Catalog.Domains {
		v, err := newDomainView(i, d, opts)
		if err != nil {
			m.logger.Error().Err(err).Msg("build carousel failed")
			continue
		}
		m.views = append(m.views, v)
	}
	m.focus = min(m.focus, max(len(m.views)-1, 0))
	m.logger.Debug().Int("carousels", len(m.views)).Uint64("revision", snap.Revision).Msg("carousels built")
}

func (m *Model) closeViews() {
	for _, v := range m.views {
		v.close()
	}
}

func (m *Model) moveFocus(delta int) {
	if len(m.views) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.views)) % len(m.views)
}

func (m Model) focused() *domainView {
	if m.focus < 0 || m.focus >= len(m.views) {
		return nil
	}
	return m.views[m.focus]
}

// owns reports whether v is still on screen. Messages for views dropped by a
// rebuild are ignored.
func (m Model) owns(v *domainView) bool {
	return v != nil && slices.Contains(m.views, v)
}

func (m Model) drain() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.views {
		if cmd := v.out.drain(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) savePrefs() tea.Cmd {
	if strings.TrimSpace(m.prefsPath) == "" {
		return nil
	}
	path, p := m.prefsPath, m.prefs
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type prefsSavedMsg struct{ err error }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.zones.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(m.ctx),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.closeViews()
	}
	return err
}
