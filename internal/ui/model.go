package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zellij-session-manager/internal/backend"
	"zellij-session-manager/internal/data/dispatcher"
	"zellij-session-manager/internal/host"
	"zellij-session-manager/internal/logging/events"
	"zellij-session-manager/internal/state"
	"zellij-session-manager/internal/theme"
	"zellij-session-manager/internal/ui/command"
	uistate "zellij-session-manager/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the session manager.
type Model struct {
	screen  Screen
	history []Screen

	sessionList *uistate.List
	layoutList  *uistate.List
	deadList    *uistate.List
	forbidden   []host.Session

	newPhase    NewSessionPhase
	pendingName string
	nameInput   textinput.Model
	renameInput textinput.Model
	renaming    bool

	killAllArmed   bool
	deleteAllArmed bool
	notFoundName   string

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	showFooter bool
	verbose    bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	bus       *command.Bus
	requester host.Requester
	sessions  state.SessionStore
	layouts   state.LayoutStore
	dead      state.DeadStore
	dispatch  *dispatcher.Dispatcher
}

// NewModel initialises the UI state with the starting screen and
// configuration.
func NewModel(requester host.Requester, width, height int, showFooter, verbose, welcome bool, watcher *backend.Watcher) *Model {
	sessions := state.NewSessionStore()
	layouts := state.NewLayoutStore()
	dead := state.NewDeadStore()

	m := &Model{
		screen:       ScreenSessionList,
		sessionList:  uistate.NewList(nil),
		layoutList:   uistate.NewList(nil),
		deadList:     uistate.NewList(nil),
		backend:      watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   showFooter,
		verbose:      verbose,
		bus:          command.New(),
		requester:    requester,
		sessions:     sessions,
		layouts:      layouts,
		dead:         dead,
		dispatch:     dispatcher.New(sessions, layouts, dead),
	}
	if welcome {
		m.screen = ScreenWelcome
	}
	events.Screen.Enter(m.screen.String())
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.nameInput = newNameInput("(empty for a generated name)")
	m.renameInput = newNameInput("")

	m.registerHandlers()
	return m
}

func newNameInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Prompt = "> "
	if styles.FilterPrompt != nil {
		ti.PromptStyle = styles.FilterPrompt.Copy()
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = styles.FilterPlaceholder.Copy()
	}
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// activeList returns the searchable list engine of the active screen, nil
// for screens without one.
func (m *Model) activeList() *uistate.List {
	switch m.screen {
	case ScreenSessionList:
		return m.sessionList
	case ScreenResurrect:
		return m.deadList
	case ScreenNewSession:
		if m.newPhase == PhaseSearchingLayout {
			return m.layoutList
		}
	}
	return nil
}

// gotoScreen transitions the controller, recording the leaving screen for
// Esc. The leaving screen's query is discarded; the entering list screen is
// re-seeded from the current store snapshot.
func (m *Model) gotoScreen(next Screen) {
	if next == m.screen {
		return
	}
	if lst := m.activeList(); lst != nil {
		lst.ClearQuery()
	}
	events.Screen.Transition(m.screen.String(), next.String())
	m.history = append(m.history, m.screen)
	m.screen = next
	m.errMsg = ""
	m.killAllArmed = false
	m.deleteAllArmed = false
	m.renaming = false
	switch next {
	case ScreenSessionList:
		m.refreshSessionItems()
	case ScreenResurrect:
		m.refreshDeadItems()
	case ScreenNewSession:
		m.newPhase = PhaseEnteringName
		m.nameInput.SetValue("")
		m.nameInput.Focus()
	}
	if lst := m.activeList(); lst != nil {
		lst.EnsureVisible(m.maxVisibleItems())
	}
}

// goBack pops the previous screen, quitting from the top of the history.
func (m *Model) goBack() tea.Cmd {
	if len(m.history) == 0 {
		return tea.Quit
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	if lst := m.activeList(); lst != nil {
		lst.ClearQuery()
	}
	events.Screen.Transition(m.screen.String(), prev.String())
	m.screen = prev
	m.errMsg = ""
	m.killAllArmed = false
	m.deleteAllArmed = false
	m.renaming = false
	switch prev {
	case ScreenSessionList:
		m.refreshSessionItems()
	case ScreenResurrect:
		m.refreshDeadItems()
	}
	return nil
}

// gotoNotFound shows the full-screen notice for a vanished session.
func (m *Model) gotoNotFound(name string) {
	m.notFoundName = name
	events.Screen.NotFound(name)
	m.gotoScreen(ScreenNotFound)
}

// backToWelcome resets the history; the welcome screen is the top of the
// machine.
func (m *Model) backToWelcome() {
	m.history = nil
	events.Screen.Transition(m.screen.String(), ScreenWelcome.String())
	m.screen = ScreenWelcome
	m.errMsg = ""
	m.notFoundName = ""
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
