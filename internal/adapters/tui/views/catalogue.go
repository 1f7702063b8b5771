package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"datacat/internal/adapters/tui/styles"
	"datacat/internal/application"
	"datacat/internal/application/query"
	"datacat/internal/domain"
	"datacat/internal/ports"
)

// CatalogueKeyMap defines key bindings for the catalogue view
type CatalogueKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Toggle    key.Binding
	Sort      key.Binding
	Search    key.Binding
	Leave     key.Binding
	Focus     key.Binding
	Sidebar   key.Binding
	Dataset   key.Binding
	Retry     key.Binding
	Copy      key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var CatalogueKeys = CatalogueKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "expand/collapse"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "sort column"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "leave search"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Sidebar: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sidebar"),
	),
	Dataset: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dataset"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy id"),
	),
	Logout: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logout"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type focusArea int

const (
	focusTable focusArea = iota
	focusSearch
	focusSidebar
)

const sidebarWidth = 34

// CatalogueModel is the searchable, sortable, paginated record table with
// the category sidebar.
type CatalogueModel struct {
	ViewState
	auth   *application.AuthProvider
	data   *application.DataProvider
	view   *query.View
	clip   ports.ClipboardWriter
	logger *zap.Logger

	search      textinput.Model
	sidebar     *SidebarModel
	spinner     spinner.Model
	focus       focusArea
	showSidebar bool
	listening   bool

	requested domain.DatasetName
	shown     domain.DatasetName
	records   []domain.Record
	loading   bool
	loadErr   string
}

type (
	datasetLoadedMsg struct {
		name domain.DatasetName
		err  error
	}

	querySettledMsg struct {
		query string
	}

	copiedMsg struct {
		id  string
		err error
	}

	logoutDoneMsg struct {
		err error
	}
)

// NewCatalogueModel creates a catalogue that will show dataset once
// initialized. clip may be nil when no clipboard is available.
func NewCatalogueModel(auth *application.AuthProvider, data *application.DataProvider, view *query.View, clip ports.ClipboardWriter, dataset domain.DatasetName, logger *zap.Logger) *CatalogueModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Search products, categories, sources..."
	input.Prompt = "🔍 "
	input.CharLimit = 256

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &CatalogueModel{
		auth:        auth,
		data:        data,
		view:        view,
		clip:        clip,
		logger:      logger,
		search:      input,
		sidebar:     NewSidebarModel(),
		spinner:     s,
		showSidebar: true,
		requested:   dataset,
	}
}

// Init starts loading the requested dataset and listening for settled
// search queries.
func (m *CatalogueModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.requestDataset(m.requested, false)}
	if !m.listening {
		m.listening = true
		cmds = append(cmds, m.waitForQuery())
	}
	return tea.Batch(cmds...)
}

func (m *CatalogueModel) requestDataset(name domain.DatasetName, force bool) tea.Cmd {
	m.requested = name
	m.loading = true
	m.loadErr = ""

	load := func() tea.Msg {
		var err error
		if force {
			err = m.data.Load(context.Background(), name)
		} else {
			err = m.data.SwitchDataset(context.Background(), name)
		}
		return datasetLoadedMsg{name: name, err: err}
	}
	return tea.Batch(m.spinner.Tick, load)
}

// waitForQuery blocks until the debounced query settles. A closed channel
// ends the listener.
func (m *CatalogueModel) waitForQuery() tea.Cmd {
	settled := m.view.Settled()
	return func() tea.Msg {
		q, ok := <-settled
		if !ok {
			return nil
		}
		return querySettledMsg{query: q}
	}
}

// syncData pulls the provider's state into the view. The table and tree are
// only replaced when a different record list was published.
func (m *CatalogueModel) syncData() {
	st := m.data.Snapshot()
	m.loading = st.Loading
	m.loadErr = st.ErrorMessage()

	if st.Dataset != m.shown || !sameRecords(st.Records, m.records) {
		m.shown = st.Dataset
		m.records = st.Records
		m.view.SetRecords(st.Records)
		m.sidebar.SetTree(st.Categories)
	}
}

func sameRecords(a, b []domain.Record) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// SetSize updates the view dimensions
func (m *CatalogueModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.search.Width = max(20, width-12)
	m.sidebar.SetSize(sidebarWidth-3, max(5, height-12))
}

// Reset clears per-session state after logout.
func (m *CatalogueModel) Reset() {
	m.search.SetValue("")
	m.search.Blur()
	m.view.SetQuery("")
	m.focus = focusTable
	m.ClearMessage()
}

// Selected returns the record under the table cursor.
func (m *CatalogueModel) Selected() (domain.Record, bool) {
	snap := m.view.Snapshot()
	i := m.view.CursorInPage()
	if i < 0 || i >= len(snap.Rows) {
		return domain.Record{}, false
	}
	return snap.Rows[i], true
}

// Update handles messages for the catalogue
func (m *CatalogueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case datasetLoadedMsg:
		m.syncData()
		if msg.err != nil && msg.name == m.requested {
			m.logger.Debug("dataset load failed in view", zap.String("dataset", msg.name.String()), zap.Error(msg.err))
		}
		return m, nil

	case querySettledMsg:
		return m, m.waitForQuery()

	case copiedMsg:
		if msg.err != nil {
			m.SetMessage(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.SetMessage(fmt.Sprintf("Copied %s", msg.id), false)
		}
		return m, nil

	case logoutDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.Reset()
		return m, func() tea.Msg { return LoggedOutMsg{} }

	case tea.KeyMsg:
		if m.focus == focusSearch {
			return m, m.updateSearch(msg)
		}
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *CatalogueModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, CatalogueKeys.Leave):
		m.focus = focusTable
		m.search.Blur()
		return nil
	case msg.Type == tea.KeyUp:
		m.view.CursorUp()
		return nil
	case msg.Type == tea.KeyDown:
		m.view.CursorDown()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SetQuery(m.search.Value())
	return cmd
}

func (m *CatalogueModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, CatalogueKeys.Quit):
		return tea.Quit

	case key.Matches(msg, CatalogueKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, CatalogueKeys.Search):
		m.focus = focusSearch
		return m.search.Focus()

	case key.Matches(msg, CatalogueKeys.Focus):
		if m.focus == focusTable && m.showSidebar {
			m.focus = focusSidebar
		} else {
			m.focus = focusTable
		}
		return nil

	case key.Matches(msg, CatalogueKeys.Sidebar):
		m.showSidebar = !m.showSidebar
		if !m.showSidebar && m.focus == focusSidebar {
			m.focus = focusTable
		}
		return nil

	case key.Matches(msg, CatalogueKeys.Dataset):
		return m.requestDataset(m.requested.Next(), false)

	case key.Matches(msg, CatalogueKeys.Retry):
		return m.requestDataset(m.requested, true)

	case key.Matches(msg, CatalogueKeys.Copy):
		return m.copySelected()

	case key.Matches(msg, CatalogueKeys.Logout):
		return func() tea.Msg {
			return logoutDoneMsg{err: m.auth.Logout(context.Background())}
		}
	}

	if m.focus == focusSidebar {
		m.handleSidebarKey(msg)
		return nil
	}
	m.handleTableKey(msg)
	return nil
}

func (m *CatalogueModel) handleSidebarKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, CatalogueKeys.Up):
		m.sidebar.CursorUp()
	case key.Matches(msg, CatalogueKeys.Down):
		m.sidebar.CursorDown()
	case key.Matches(msg, CatalogueKeys.PrevPage):
		m.sidebar.Collapse()
	case key.Matches(msg, CatalogueKeys.NextPage):
		m.sidebar.Expand()
	case key.Matches(msg, CatalogueKeys.Toggle):
		m.sidebar.Toggle()
	}
}

func (m *CatalogueModel) handleTableKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, CatalogueKeys.Up):
		m.view.CursorUp()
	case key.Matches(msg, CatalogueKeys.Down):
		m.view.CursorDown()
	case key.Matches(msg, CatalogueKeys.PrevPage):
		m.view.Prev()
	case key.Matches(msg, CatalogueKeys.NextPage):
		m.view.Next()
	case key.Matches(msg, CatalogueKeys.FirstPage):
		m.view.GoTo(1)
	case key.Matches(msg, CatalogueKeys.LastPage):
		m.view.GoTo(m.view.Snapshot().TotalPages)
	case key.Matches(msg, CatalogueKeys.Sort):
		if f, ok := SortFieldForKey(msg.String()); ok {
			m.view.ToggleSort(f)
		}
	}
}

func (m *CatalogueModel) copySelected() tea.Cmd {
	rec, ok := m.Selected()
	if !ok {
		return nil
	}
	if m.clip == nil {
		m.SetMessage("Clipboard unavailable", true)
		return nil
	}
	clip := m.clip
	return func() tea.Msg {
		return copiedMsg{id: rec.ID, err: clip.WriteAll(rec.ID)}
	}
}

// View renders the catalogue
func (m *CatalogueModel) View() string {
	snap := m.view.Snapshot()
	width := m.Width
	if width == 0 {
		width = 120
	}

	var b ViewBuilder
	b.Line(m.renderHeader())
	b.BlankLine()
	b.Line(m.renderSearch(snap))
	b.BlankLine()

	mainWidth := width - 4
	main := m.renderMain(snap, mainWidth-sidebarWidth)
	if m.showSidebar {
		side := m.sidebar.View(m.focus == focusSidebar, m.loading)
		b.Line(lipgloss.JoinHorizontal(lipgloss.Top, side, main))
	} else {
		b.Line(m.renderMain(snap, mainWidth))
	}

	b.BlankLine()
	b.Message(m.Message, m.MessageErr)
	b.Help(m.helpBindings()...)
	return b.String()
}

func (m *CatalogueModel) renderHeader() string {
	parts := []string{styles.Title.Render("Data Catalogue")}
	if m.shown != "" {
		parts = append(parts, RenderDatasetBadge(m.shown))
	}
	parts = append(parts, RenderMuted(fmt.Sprintf("%d records", len(m.records))))
	if m.loading {
		parts = append(parts, m.spinner.View()+styles.Searching.Render("Loading..."))
	}
	if user, ok := m.auth.Current(); ok {
		parts = append(parts, RenderMuted("user: "+user.Username))
	}

	return strings.Join(parts, "  ")
}

func (m *CatalogueModel) renderSearch(snap query.Snapshot) string {
	style := styles.InputField
	if m.focus == focusSearch {
		style = styles.InputFocused
	}
	line := style.Render(m.search.View())
	if snap.Debouncing {
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", styles.Searching.Render("Searching..."))
	}
	return line
}

func (m *CatalogueModel) renderMain(snap query.Snapshot, width int) string {
	var b ViewBuilder

	if m.loadErr != "" {
		panel := styles.ErrorMsg.Render("Error loading data") + "\n" +
			m.loadErr + "\n" +
			RenderHelpLine(CatalogueKeys.Retry)
		b.Line(styles.ErrorPanel.Render(panel))
		b.BlankLine()
	}

	switch {
	case m.loading && len(m.records) == 0:
		b.Line(m.spinner.View() + "Loading data...")

	case snap.Total == 0 && !snap.Debouncing:
		b.Line(styles.Title.Render("No data found"))
		if q := m.view.RawQuery(); q != "" {
			b.Muted(fmt.Sprintf("No results match your search for %q", q))
		} else {
			b.Muted("No data is currently available")
		}

	default:
		cursor := -1
		if m.focus != focusSidebar {
			cursor = m.view.CursorInPage()
		}
		b.Line(RenderTable(snap, cursor, width))
		b.BlankLine()
		summary := RenderMuted(ResultSummary(snap))
		if snap.Debouncing {
			summary += "  " + styles.Searching.Render("Searching...")
		}
		b.Line(summary)
		if strip := RenderPageStrip(snap.Page, snap.TotalPages); strip != "" {
			b.Line(strip)
		}
	}

	return b.b.String()
}

func (m *CatalogueModel) helpBindings() []key.Binding {
	if m.focus == focusSearch {
		return []key.Binding{CatalogueKeys.Leave}
	}
	if m.focus == focusSidebar {
		return []key.Binding{CatalogueKeys.Up, CatalogueKeys.Down, CatalogueKeys.Toggle, CatalogueKeys.Focus, CatalogueKeys.Help, CatalogueKeys.Quit}
	}
	return []key.Binding{
		CatalogueKeys.Search, CatalogueKeys.Sort, CatalogueKeys.PrevPage, CatalogueKeys.NextPage,
		CatalogueKeys.Dataset, CatalogueKeys.Copy, CatalogueKeys.Help, CatalogueKeys.Quit,
	}
}
