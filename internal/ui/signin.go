package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/orchid/internal/session"
)

type loginDoneMsg struct {
	email string
	err   error
}

// signInForm holds the email and password inputs.
type signInForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
}

func newSignInForm(lastEmail string) signInForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 32
	email.SetValue(lastEmail)

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	f := signInForm{email: email, password: password}
	if lastEmail != "" {
		f.setFocus(1)
	} else {
		f.setFocus(0)
	}
	return f
}

func (f *signInForm) setFocus(i int) {
	f.focus = i % 2
	if f.focus == 0 {
		f.email.Focus()
		f.password.Blur()
	} else {
		f.password.Focus()
		f.email.Blur()
	}
}

func (f *signInForm) reset() {
	f.password.Reset()
	f.setFocus(1)
}

func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField, m.keys.PrevField):
		m.signIn.setFocus(m.signIn.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.signIn.focus == 0 {
			m.signIn.setFocus(1)
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	if m.signIn.focus == 0 {
		m.signIn.email, cmd = m.signIn.email.Update(msg)
	} else {
		m.signIn.password, cmd = m.signIn.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.signingIn {
		return m, nil
	}
	email := strings.TrimSpace(m.signIn.email.Value())
	password := m.signIn.password.Value()
	gate, auth := m.gate, m.auth

	m.signingIn = true
	return m, m.runTask(screenSignIn, func(ctx context.Context) tea.Msg {
		return loginDoneMsg{email: email, err: gate.Login(ctx, auth, email, password)}
	})
}

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.signingIn = false
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.modal = noticeModal{title: "Sign in failed", body: loginErrorText(msg.err)}
		return m, nil
	}

	m.signIn.reset()
	if m.prefs.LastEmail != msg.email {
		m.prefs.LastEmail = msg.email
		m.savePrefs()
	}
	m.setStatus("Signed in as "+m.gate.Snapshot().User.Display(), false)
	return m.switchTo(screenCatalog)
}

func loginErrorText(err error) string {
	if errors.Is(err, session.ErrMissingCredentials) {
		return "Please enter both email and password."
	}
	return "Could not sign in: " + err.Error()
}

func (m Model) renderSignIn() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Section.Render("orchid"))
	b.WriteString(styles.MutedText.Render("  sign in to " + m.apiBase))
	b.WriteString("\n\n")

	label := styles.MutedText.Width(10)
	b.WriteString(label.Render("Email"))
	b.WriteString(m.signIn.email.View())
	b.WriteString("\n")
	b.WriteString(label.Render("Password"))
	b.WriteString(m.signIn.password.View())
	b.WriteString("\n\n")

	if m.signingIn {
		b.WriteString(m.spinner.View())
		b.WriteString(styles.MutedText.Render(" signing in..."))
	} else {
		b.WriteString(styles.FaintText.Render("enter sign in · tab switch field · ctrl+c quit"))
	}

	return m.overlay(styles.Panel.Padding(1, 3).Render(b.String()))
}
