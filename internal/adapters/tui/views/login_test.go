package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"datacat/internal/application"
)

func newLogin(t *testing.T) (*LoginModel, *application.AuthProvider) {
	t.Helper()
	auth := application.NewAuthProvider(&memoryStore{}, nil, nil)
	return NewLoginModel(auth), auth
}

func TestLogin_AutofillAndSubmit(t *testing.T) {
	m, auth := newLogin(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if got := m.form.Value(fieldUsername); got != "admin" {
		t.Fatalf("username = %q, want admin", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	_, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatal("expected LoggedInMsg command")
	}
	msg, ok := cmd().(LoggedInMsg)
	if !ok || msg.User.Username != "admin" {
		t.Errorf("unexpected message %#v", msg)
	}
	if !auth.IsAuthenticated() {
		t.Error("expected session after login")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m, auth := newLogin(t)

	m.Update(keyRunes("admin"))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(keyRunes("wrong"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	_, cmd = m.Update(cmd())
	if cmd != nil {
		t.Error("failed login should not emit a command")
	}

	if auth.IsAuthenticated() {
		t.Error("failed login must not create a session")
	}
	out := m.View()
	if !strings.Contains(out, "Invalid username or password") {
		t.Error("expected inline error")
	}
	if strings.Contains(out, "wrong") {
		t.Error("password must be masked")
	}
}

func TestLogin_EnterOnUsernameMovesToPassword(t *testing.T) {
	m, _ := newLogin(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on the first field should not submit")
	}
	if m.form.FocusedField != fieldPassword {
		t.Errorf("focused field = %d, want password", m.form.FocusedField)
	}
}

func TestLogin_ResetClearsError(t *testing.T) {
	m, _ := newLogin(t)
	m.Update(loginResultMsg{err: application.ErrInvalidCredentials})
	m.Reset()

	if m.Message != "" || m.form.Value(fieldUsername) != "" {
		t.Error("Reset should clear message and fields")
	}
}
