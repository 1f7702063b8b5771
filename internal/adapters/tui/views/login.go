package views

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datacat/internal/adapters/tui/styles"
	"datacat/internal/application"
	"datacat/internal/domain"
)

const (
	fieldUsername = iota
	fieldPassword
)

// LoginKeyMap defines key bindings for the login view
type LoginKeyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Autofill key.Binding
	Quit     key.Binding
}

var LoginKeys = LoginKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "sign in"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Autofill: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "demo credentials"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// LoginModel is the username/password form shown without a session
type LoginModel struct {
	ViewState
	auth       *application.AuthProvider
	form       *InputForm
	submitting bool
}

type loginResultMsg struct {
	user domain.User
	err  error
}

// NewLoginModel creates a new login view model
func NewLoginModel(auth *application.AuthProvider) *LoginModel {
	return &LoginModel{
		auth: auth,
		form: NewInputForm(
			NewInputField("Username", "Enter your username", 64),
			NewPasswordField("Password", "Enter your password", 64),
		),
	}
}

// Init initializes the login view
func (m *LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

// Reset clears the form and any error.
func (m *LoginModel) Reset() {
	m.form.Reset()
	m.submitting = false
	m.ClearMessage()
}

// Update handles messages for the login view
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, application.ErrInvalidCredentials) {
				m.SetMessage("Invalid username or password", true)
			} else {
				m.SetMessage("An error occurred during login", true)
			}
			return m, nil
		}
		m.Reset()
		return m, func() tea.Msg {
			return LoggedInMsg{User: msg.user}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, LoginKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, LoginKeys.Autofill):
			demo := application.DefaultCredentials()[0]
			m.form.SetValue(fieldUsername, demo.Username)
			m.form.SetValue(fieldPassword, demo.Password)
			m.form.SetFocus(fieldPassword)
			return m, nil

		case key.Matches(msg, LoginKeys.Submit):
			if !m.form.IsLast() {
				m.form.SetFocus(m.form.FocusedField + 1)
				return m, nil
			}
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.ClearMessage()

	username := m.form.Value(fieldUsername)
	password := m.form.Value(fieldPassword)
	return func() tea.Msg {
		user, err := m.auth.Login(context.Background(), username, password)
		return loginResultMsg{user: user, err: err}
	}
}

// View renders the login form
func (m *LoginModel) View() string {
	body := NewViewBuilder()
	body.Raw(styles.Title.Render("Data Catalogue")).BlankLine()
	body.Raw(styles.Subtitle.Render("Sign in to browse the catalogue")).BlankLine().BlankLine()
	body.Line(m.form.RenderField(fieldUsername))
	body.Line(m.form.RenderField(fieldPassword))
	body.BlankLine()

	if m.submitting {
		body.Muted("Signing in...")
	}
	body.Message(m.Message, m.MessageErr)
	body.Muted("Demo: admin / admin123")
	body.BlankLine()
	body.Help(LoginKeys.Submit, LoginKeys.Next, LoginKeys.Autofill, LoginKeys.Quit)

	card := styles.Card.Render(body.b.String())
	if m.Width == 0 || m.Height == 0 {
		return styles.App.Render(card)
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, card)
}
