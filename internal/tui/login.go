// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-flix/internal/app"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (username and password) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel], which
// opens the protected home page.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

// NewLoginModel creates a [LoginModel] with pre-configured username and password inputs.
// The username field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	userNameInput := textinput.New()
	userNameInput.Placeholder = "username"
	userNameInput.CharLimit = 50
	userNameInput.Width = 40
	userNameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{userNameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterSuccessNotice] shows the "please log in" banner and pre-fills the username.
//   - [LoginResult] clears the submitting state and shows the error, if any.
//   - esc goes back to the menu; tab and shift+tab move the focus.
//   - enter validates the inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterSuccessNotice:
		m.resetForm()
		m.status = app.MsgRegisteredPleaseLog
		m.inputs[0].SetValue(msg.Username)
		m.setFocus(1)
		return m, textinput.Blink
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		m.resetForm()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.resetForm()
			return m, navigate(pageMenu)
		case "tab":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			userName := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if userName == "" || password == "" {
				m.errMsg = app.MsgLoginFieldsRequired
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdLogin(models.LoginRequest{UserName: userName, Password: password})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign In]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Login(ctx, req)
		return LoginResult{User: user, Err: err}
	}
}

func (m *LoginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
	m.errMsg = ""
	m.status = ""
	m.setFocus(0)
}
