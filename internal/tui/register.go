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

const (
	fieldUserName = iota
	fieldEmail
	fieldPhone
	fieldPassword
	fieldRepeatPassword
)

var registerLabels = []string{
	fieldUserName:       "Username       ",
	fieldEmail:          "Email          ",
	fieldPhone:          "Phone (opt.)   ",
	fieldPassword:       "Password       ",
	fieldRepeatPassword: "Repeat password",
}

// RegisterModel is the Bubble Tea model for the sign-up screen. On success it
// resets the form and opens the login page with a [RegisterSuccessNotice];
// registering does not sign the user in.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, len(registerLabels))
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Width = 40
	}

	fields[fieldUserName].Placeholder = "username"
	fields[fieldUserName].CharLimit = 50
	fields[fieldUserName].Focus()

	fields[fieldEmail].Placeholder = "you@example.com"
	fields[fieldEmail].CharLimit = 255

	fields[fieldPhone].Placeholder = "+1 555 0100"
	fields[fieldPhone].CharLimit = 20

	for _, i := range []int{fieldPassword, fieldRepeatPassword} {
		fields[i].Placeholder = "password"
		fields[i].CharLimit = 72
		fields[i].EchoMode = textinput.EchoPassword
		fields[i].EchoCharacter = '*'
	}

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Required fields are checked locally before
// the request is sent; everything else is validated by the server.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}

		m.resetForm()
		return m, navigateWith(pageLogin, RegisterSuccessNotice{Username: msg.User.UserName})
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

			req := m.request()
			if req.UserName == "" || req.Email == "" || req.Password == "" {
				m.errMsg = app.MsgRegisterFieldsRequired
				return m, nil
			}
			if req.Password != m.inputs[fieldRepeatPassword].Value() {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	for i, label := range registerLabels {
		b.WriteString(label)
		b.WriteString(" │ ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign Up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) request() models.RegisterRequest {
	req := models.RegisterRequest{
		UserName: strings.TrimSpace(m.inputs[fieldUserName].Value()),
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
	if phone := strings.TrimSpace(m.inputs[fieldPhone].Value()); phone != "" {
		req.PhoneNumber = &phone
	}
	return req
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return RegisterResult{User: user, Err: err}
	}
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.submitting = false
	m.errMsg = ""
	m.setFocus(0)
}
