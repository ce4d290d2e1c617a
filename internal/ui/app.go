package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/orchid/internal/browse"
	"github.com/five82/orchid/internal/catalog"
	"github.com/five82/orchid/internal/prefs"
	"github.com/five82/orchid/internal/session"
	"github.com/five82/orchid/internal/state"
)

// screen identifies the active screen.
type screen int

const (
	screenSignIn screen = iota
	screenCatalog
	screenFavorites
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Model     *browse.Model
	Gate      *session.Gate
	Auth      session.Authenticator
	APIBase   string
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string
	Tick      time.Duration // snapshot refresh; zero uses DefaultTick
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	browse    *browse.Model
	gate      *session.Gate
	auth      session.Authenticator
	apiBase   string
	prefs     prefs.Prefs
	prefsPath string
	logPath   string
	tick      time.Duration
	keys      keyMap

	// UI state
	theme    Theme
	screen   screen
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal
	spinner  spinner.Model
	list     viewport.Model

	// Work owned by each screen; cancelled when the screen is left.
	tasks map[screen]*browse.Tasks

	// Data state
	snapshot  state.Snapshot
	favorites []catalog.Item

	// Screen state
	signIn    signInForm
	signingIn bool
	mutating  int

	catalogCursor   int
	favoritesCursor int

	status    string
	statusErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	m := Model{
		ctx:       ctx,
		browse:    opts.Model,
		gate:      opts.Gate,
		auth:      opts.Auth,
		apiBase:   opts.APIBase,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		tick:      tick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
		spinner:   spin,
		list:      viewport.New(0, 0),
		signIn:    newSignInForm(opts.Prefs.LastEmail),
		tasks: map[screen]*browse.Tasks{
			screenSignIn:    {},
			screenCatalog:   {},
			screenFavorites: {},
		},
	}
	if m.gate.InitialScreen() == session.ScreenCatalog {
		m.screen = screenCatalog
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.tick),
		m.spinner.Tick,
		textinput.Blink,
	}
	if m.screen == screenCatalog {
		cmds = append(cmds, m.focusCatalog())
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
		m.layoutList()
		return m, nil

	case tickMsg:
		m.refreshData()
		return m, tickCmd(m.tick)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadDoneMsg:
		m.refreshData()
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.setStatus("Catalog unavailable: "+msg.err.Error(), true)
		}
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case formSubmittedMsg:
		return m.startSubmit(msg)

	case deleteConfirmedMsg:
		return m.startDelete(msg.itemID)

	case mutationDoneMsg:
		return m.handleMutationDone(msg)
	}

	// Forward everything else (cursor blink) to whatever has input focus.
	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	if m.screen == screenSignIn {
		var cmd tea.Cmd
		if m.signIn.focus == 0 {
			m.signIn.email, cmd = m.signIn.email.Update(msg)
		} else {
			m.signIn.password, cmd = m.signIn.password.Update(msg)
		}
		return m, cmd
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
	if m.modal != nil {
		return m.overlay(m.modal.View(m.theme, m.width))
	}
	if m.screen == screenSignIn {
		return m.renderSignIn()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		for _, t := range m.tasks {
			t.CancelAll()
		}
		return m, tea.Quit
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.screen == screenSignIn {
		return m.handleSignInKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.layoutList()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.screen == screenCatalog {
			return m.switchTo(screenFavorites)
		}
		return m.switchTo(screenCatalog)

	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.ShowLog):
		if m.logPath != "" {
			m.modal = newLogModal(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.rowCount())
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.rowCount())
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-max(1, m.list.Height/2))
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(max(1, m.list.Height/2))
		return m, nil
	}

	switch m.screen {
	case screenCatalog:
		return m.handleCatalogKey(msg)
	case screenFavorites:
		return m.handleFavoritesKey(msg)
	}
	return m, nil
}

// switchTo leaves the current screen, cancelling its work, and focuses next.
func (m Model) switchTo(next screen) (tea.Model, tea.Cmd) {
	if t := m.tasks[m.screen]; t != nil && m.screen != next {
		t.CancelAll()
	}
	m.screen = next

	switch next {
	case screenCatalog:
		return m, m.focusCatalog()
	case screenFavorites:
		if err := m.browse.Favorites().Reload(); err != nil {
			log.Printf("favorites reload failed: %v", err)
			m.setStatus("Favorites could not be read", true)
		}
		m.refreshData()
	}
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	for _, t := range m.tasks {
		t.CancelAll()
	}
	m.gate.Logout()
	m.signIn.reset()
	m.signingIn = false
	m.mutating = 0
	m.screen = screenSignIn
	m.setStatus("", false)
	return m, textinput.Blink
}

// focusCatalog reloads favorites and the catalog under the catalog screen.
func (m Model) focusCatalog() tea.Cmd {
	model := m.browse
	return m.runTask(screenCatalog, func(ctx context.Context) tea.Msg {
		return loadDoneMsg{err: model.Focus(ctx)}
	})
}

// runTask runs fn off the UI loop under a context owned by screen s.
func (m Model) runTask(s screen, fn func(ctx context.Context) tea.Msg) tea.Cmd {
	tasks := m.tasks[s]
	ctx, handle := tasks.Go(m.ctx)
	return func() tea.Msg {
		defer tasks.Done(handle)
		return fn(ctx)
	}
}

// refreshData copies the latest shared state into the model.
func (m *Model) refreshData() {
	m.snapshot = m.browse.State().Snapshot()
	m.favorites = m.browse.Favorites().Items()
	m.clampCursor()
	m.layoutList()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m Model) busy() bool {
	return m.snapshot.Loading || m.mutating > 0
}

// renderMain renders the header, the active list, and the footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), footer)
}

// Messages

type tickMsg time.Time

type loadDoneMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
