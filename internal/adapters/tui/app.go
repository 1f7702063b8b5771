package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"datacat/internal/adapters/tui/views"
	"datacat/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewCatalogue
	ViewHelp
)

// App is the main TUI application model. Without a session only the login
// view is reachable.
type App struct {
	auth *application.AuthProvider

	state     ViewState
	login     *views.LoginModel
	catalogue *views.CatalogueModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. The session must already be
// restored on auth.
func NewApp(auth *application.AuthProvider, catalogue *views.CatalogueModel) *App {
	state := ViewLogin
	if auth.IsAuthenticated() {
		state = ViewCatalogue
	}
	return &App{
		auth:      auth,
		state:     state,
		login:     views.NewLoginModel(auth),
		catalogue: catalogue,
		help:      views.NewHelpModel(),
	}
}

// State returns the active view.
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	if a.state == ViewLogin {
		return a.login.Init()
	}
	return a.catalogue.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.login.SetSize(msg.Width, msg.Height)
		a.catalogue.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.LoggedInMsg:
		a.state = ViewCatalogue
		return a, a.catalogue.Init()

	case views.LoggedOutMsg:
		a.state = ViewLogin
		a.login.Reset()
		return a, a.login.Init()

	case views.SwitchToHelpMsg:
		if a.auth.IsAuthenticated() {
			a.state = ViewHelp
		}
		return a, nil

	case views.SwitchToCatalogueMsg:
		a.state = ViewCatalogue
		return a, nil
	}

	// Guard every protected view behind the session.
	if a.state != ViewLogin && !a.auth.IsAuthenticated() {
		a.state = ViewLogin
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewLogin:
		// Background catalogue work (loads, settled queries) still lands.
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			_, cmd = a.catalogue.Update(msg)
			var loginCmd tea.Cmd
			_, loginCmd = a.login.Update(msg)
			return a, tea.Batch(cmd, loginCmd)
		}
		_, cmd = a.login.Update(msg)
	case ViewCatalogue:
		_, cmd = a.catalogue.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var bg tea.Cmd
			_, bg = a.catalogue.Update(msg)
			cmd = tea.Batch(cmd, bg)
		}
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLogin:
		return a.login.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.catalogue.View()
	}
}
