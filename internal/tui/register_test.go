package tui

import (
	"context"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/app"
	"github.com/MKhiriev/go-flix/internal/mock"
	"github.com/MKhiriev/go-flix/models"
)

func fillRegisterForm(m *RegisterModel, userName, email, phone, password, repeat string) {
	m.inputs[fieldUserName].SetValue(userName)
	m.inputs[fieldEmail].SetValue(email)
	m.inputs[fieldPhone].SetValue(phone)
	m.inputs[fieldPassword].SetValue(password)
	m.inputs[fieldRepeatPassword].SetValue(repeat)
}

func TestRegisterModel_LocalValidation(t *testing.T) {
	tests := []struct {
		name    string
		fill    [5]string
		wantErr string
	}{
		{
			name:    "missing email",
			fill:    [5]string{"alice", "", "", "pw", "pw"},
			wantErr: app.MsgRegisterFieldsRequired,
		},
		{
			name:    "blank user name",
			fill:    [5]string{"   ", "a@b.io", "", "pw", "pw"},
			wantErr: app.MsgRegisterFieldsRequired,
		},
		{
			name:    "passwords differ",
			fill:    [5]string{"alice", "a@b.io", "", "pw", "wp"},
			wantErr: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))
			fillRegisterForm(m, tt.fill[0], tt.fill[1], tt.fill[2], tt.fill[3], tt.fill[4])

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, m.errMsg)
		})
	}
}

func TestRegisterModel_Submit(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewRegisterModel(context.Background(), auth)
	fillRegisterForm(m, "alice", "alice@example.com", "+1 555 0100", "pw", "pw")

	phone := "+1 555 0100"
	user := models.PublicUser{UserID: 1, UserName: "alice", Email: "alice@example.com", PhoneNumber: &phone}
	auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		UserName:    "alice",
		Email:       "alice@example.com",
		PhoneNumber: &phone,
		Password:    "pw",
	}).Return(user, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result := cmd()
	assert.Equal(t, RegisterResult{User: user}, result)

	_, cmd = m.Update(result)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin, Payload: RegisterSuccessNotice{Username: "alice"}}, cmd())
	assert.Empty(t, m.inputs[fieldEmail].Value())
}

func TestRegisterModel_EmptyPhoneIsOmitted(t *testing.T) {
	m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))
	fillRegisterForm(m, "alice", "alice@example.com", "  ", "pw", "pw")

	assert.Nil(t, m.request().PhoneNumber)
}

func TestRegisterModel_ShowsConflict(t *testing.T) {
	m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))
	m.submitting = true

	_, cmd := m.Update(RegisterResult{Err: &adapter.APIError{StatusCode: http.StatusBadRequest, Message: app.MsgUserAlreadyExists}})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), app.MsgUserAlreadyExists)
}

func TestRegisterModel_TabCyclesFocus(t *testing.T) {
	m := NewRegisterModel(context.Background(), mock.NewMockClientAuthService(gomock.NewController(t)))

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldRepeatPassword, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldUserName, m.focus)
}
