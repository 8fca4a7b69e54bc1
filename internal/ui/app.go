package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pacer/internal/api"
	"github.com/five82/pacer/internal/config"
	"github.com/five82/pacer/internal/diary"
	"github.com/five82/pacer/internal/field"
	"github.com/five82/pacer/internal/prefs"
	"github.com/five82/pacer/internal/remote"
	"github.com/five82/pacer/internal/state"
)

// Client is what the UI needs from the API client: the diary calls plus
// the ability to replace the token after a login.
type Client interface {
	api.DiaryAPI
	SetToken(token string)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    Client
	Config    config.Config
	ThemeName string
	// Route is the page shown at startup.
	Route     string
	Date      diary.Date
	PrefsPath string
	Policy    field.FailurePolicy
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    Client
	config    config.Config
	prefsPath string

	theme   Theme
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
	ready   bool

	router *Router
	diary  *diaryPage
	stats  *statisticsPage

	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	date := opts.Date
	if date.Start.IsZero() {
		date = diary.Today()
	}

	router := NewRouter(opts.Route, opts.Config.LoginRoute)
	pages := pageOptions{
		ctx:        ctx,
		navigator:  router,
		loginRoute: router.LoginRoute(),
		patterns:   opts.Config.PatternFor,
		policy:     opts.Policy,
	}
	if opts.Client != nil {
		pages.client = opts.Client
	}

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		config:    opts.Config,
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		router:    router,
		diary:     newDiaryPage(pages, date),
		stats:     newStatisticsPage(pages),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.reloadCurrent())
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
		m.help.Width = msg.Width
		m.stats.resize(msg.Width, m.contentHeight())
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.stats.Status().Loading() {
			m.refresh()
		}
		return m, cmd

	case remote.LoadedMsg:
		if m.diary.handleLoaded(msg) || m.stats.handleLoaded(msg) {
			m.afterLoad()
		}
		return m, nil

	case field.WrittenMsg:
		m.diary.handleWritten(msg)
		return m, nil

	case tokenMsg:
		return m.handleToken(msg)

	case reloadMsg:
		return m, m.reloadCurrent()
	}

	// Cursor blinks and similar internal messages.
	var cmd tea.Cmd
	if m.modal != nil {
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}
	if m.diary.editing {
		m.diary.input, cmd = m.diary.input.Update(msg)
	}
	return m, cmd
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
		return m.modal.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Height(m.contentHeight()).Render(m.renderContent()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		var (
			cmd    tea.Cmd
			closed bool
		)
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	// The field editor owns every key but ctrl+c.
	if m.router.Current() == RouteDiary && m.diary.editing {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, m.diary.handleKey(msg, m.keys)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.refresh()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.router.Next()
		m.savePrefs()
		return m, m.reloadIfUnset()

	case key.Matches(msg, m.keys.ViewDiary):
		m.router.Navigate(RouteDiary)
		m.savePrefs()
		return m, m.reloadIfUnset()

	case key.Matches(msg, m.keys.ViewStatistics):
		m.router.Navigate(RouteStatistics)
		m.savePrefs()
		return m, m.reloadIfUnset()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCurrent()
	}

	switch m.router.Current() {
	case RouteDiary:
		return m, m.diary.handleKey(msg, m.keys)
	case RouteStatistics:
		cmd := m.stats.handleKey(msg, m.keys)
		return m, cmd
	}
	return m, nil
}

// handleToken finishes the login route: store the token, go back to the
// page that was rejected and fetch it again.
func (m Model) handleToken(msg tokenMsg) (tea.Model, tea.Cmd) {
	route := m.router.Back()
	if msg.token == "" {
		log.Printf("login cancelled, back to %s", route)
		return m, nil
	}
	if m.client != nil {
		m.client.SetToken(msg.token)
	}
	log.Printf("api token updated, reloading %s", route)
	return m, m.reloadCurrent()
}

// afterLoad opens the dialog a settled fetch calls for: the login view
// after an auth redirect, or the error of the visible page.
func (m *Model) afterLoad() {
	m.refresh()
	if m.modal != nil {
		return
	}
	if m.router.AtLogin() {
		m.modal = newLoginModal()
		return
	}
	if status := m.currentStatus(); status != nil && status.Kind() == state.Failed {
		m.modal = newErrorModal(m.pageTitle()+" failed to load", status)
	}
}

func (m Model) currentStatus() *state.Status {
	switch m.router.Current() {
	case RouteDiary:
		return m.diary.Status()
	case RouteStatistics:
		return m.stats.Status()
	}
	return nil
}

func (m Model) pageTitle() string {
	switch m.router.Current() {
	case RouteStatistics:
		return "Statistics"
	case RouteDiary:
		return "Diary"
	}
	return "Sign in"
}

func (m *Model) reloadCurrent() tea.Cmd {
	var cmd tea.Cmd
	switch m.router.Current() {
	case RouteDiary:
		cmd = m.diary.Reload()
	case RouteStatistics:
		cmd = m.stats.Reload()
	}
	m.refresh()
	return cmd
}

func (m *Model) reloadIfUnset() tea.Cmd {
	if status := m.currentStatus(); status != nil && status.Kind() == state.Unset {
		return m.reloadCurrent()
	}
	return nil
}

func (m *Model) refresh() {
	m.stats.refresh(m.theme.Styles(), m.spinner.View())
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.MutedText
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Route: m.router.Current()}
	if m.router.AtLogin() {
		p.Route = prefs.Defaults().Route
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m Model) contentHeight() int {
	return max(m.height-2, 1)
}

func (m Model) renderContent() string {
	switch m.router.Current() {
	case RouteDiary:
		return m.diary.View(m.theme.Styles(), m.spinner.View(), m.width, m.contentHeight())
	case RouteStatistics:
		return m.stats.View()
	}
	return ""
}

func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
