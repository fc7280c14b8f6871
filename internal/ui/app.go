package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rewined/labelgrid/internal/config"
	"github.com/rewined/labelgrid/internal/grid"
	"github.com/rewined/labelgrid/internal/prefs"
	"github.com/rewined/labelgrid/internal/state"
	"github.com/rewined/labelgrid/internal/toolkit"
)

// View represents the current active view.
type View int

const (
	ViewEntry View = iota
	ViewImport
	ViewResult
)

// Field indexes within a row, in keyboard order.
const (
	fieldSKU = iota
	fieldPrice
	fieldQty
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *toolkit.Client
	Store     *state.Store
	Config    *config.Config
	ThemeName string
	FormatKey string
	PrefsPath string
}

// statusLine is a transient message shown under the grid.
type statusLine struct {
	text  string
	isErr bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *toolkit.Client
	store     *state.Store
	config    *config.Config
	prefsPath string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Grid state. The grid rows are the source of truth; the textinputs
	// mirror them for editing and are synced back on every keystroke.
	grid       *grid.Grid
	inputs     map[int]*rowInputs
	focusRow   int
	focusField int

	// Format state
	formats   []toolkit.Format
	formatIdx int

	// Pending remote calls. Generation is mutually excluded by disabling
	// the submit action, not by queueing.
	generating bool
	uploading  bool
	status     statusLine

	// Import prompt
	importInput textinput.Model

	// Last successful generation
	result toolkit.GenerateResponse
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	formats := toolkit.DefaultFormats()

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		config:    opts.Config,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		grid:      grid.New(),
		inputs:    make(map[int]*rowInputs),
		formats:   formats,
		formatIdx: toolkit.FormatIndex(formats, opts.FormatKey),
	}
	m.rebuildInputs()
	m.importInput = textinput.New()
	m.importInput.Placeholder = "path/to/items.csv"
	m.importInput.CharLimit = 256
	m.importInput.Width = 48
	m.applyFocus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		textinput.Blink,
	}
	if m.client != nil {
		cmds = append(cmds, fetchFormatsCmd(m.ctx, m.client))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case formatsMsg:
		if len(msg.formats) > 0 {
			key := m.currentFormat().Key
			m.formats = msg.formats
			m.formatIdx = toolkit.FormatIndex(m.formats, key)
		}
		return m, nil

	case generateDoneMsg:
		return m.handleGenerateDone(msg)

	case importDoneMsg:
		return m.handleImportDone(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	switch m.currentView {
	case ViewImport:
		return m.renderImport()
	case ViewResult:
		return m.renderResult()
	default:
		return m.renderEntry()
	}
}

// handleKey routes keyboard input to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		return m.handleImportKey(msg)
	case ViewResult:
		// Any key returns to the grid; rows are kept for follow-up runs.
		m.currentView = ViewEntry
		m.applyFocus()
		return m, nil
	default:
		return m.handleEntryKey(msg)
	}
}

// currentFormat returns the selected label format.
func (m Model) currentFormat() toolkit.Format {
	if len(m.formats) == 0 {
		return toolkit.Format{Key: toolkit.DefaultFormatKey}
	}
	if m.formatIdx < 0 || m.formatIdx >= len(m.formats) {
		return m.formats[0]
	}
	return m.formats[m.formatIdx]
}

// cycleFormat advances to the next label format and persists the choice.
func (m *Model) cycleFormat() {
	if len(m.formats) == 0 {
		return
	}
	m.formatIdx = (m.formatIdx + 1) % len(m.formats)
	m.savePrefs()
}

// cycleTheme advances to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.refreshInputStyles()
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:  m.theme.Name,
		Format: m.currentFormat().Key,
	})
}

// setStatus replaces the transient status message.
func (m *Model) setStatus(text string, isErr bool) {
	m.status = statusLine{text: strings.TrimSpace(text), isErr: isErr}
}

func (m *Model) clearStatus() {
	m.status = statusLine{}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
