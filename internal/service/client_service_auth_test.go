package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/mock"
	"github.com/MKhiriev/go-flix/models"
)

func newTestClientAuthSvc(t *testing.T) (ClientAuthService, *mock.MockClientSession, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sess := mock.NewMockClientSession(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(sess, serverAdapter, logger.Nop()), sess, serverAdapter
}

func TestClientAuthService_Register_DoesNotLogIn(t *testing.T) {
	svc, _, serverAdapter := newTestClientAuthSvc(t)
	req := models.RegisterRequest{UserName: "alice", Email: "a@x.io", Password: "pw1"}

	serverAdapter.EXPECT().Register(gomock.Any(), req).Return(models.PublicUser{UserID: 1, UserName: "alice"}, nil)

	user, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestClientAuthService_Register_Error(t *testing.T) {
	svc, _, serverAdapter := newTestClientAuthSvc(t)
	apiErr := &adapter.APIError{StatusCode: http.StatusBadRequest, Message: "Username or email already exists"}

	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, apiErr)

	_, err := svc.Register(context.Background(), models.RegisterRequest{})

	assert.Equal(t, "Username or email already exists", adapter.UserMessage(err))
}

func TestClientAuthService_Login_PersistsSession(t *testing.T) {
	svc, sess, serverAdapter := newTestClientAuthSvc(t)
	ctx := context.Background()
	alice := models.PublicUser{UserID: 1, UserName: "alice", Email: "a@x.io"}

	gomock.InOrder(
		serverAdapter.EXPECT().Login(ctx, models.LoginRequest{UserName: "alice", Password: "pw1"}).Return("tkn", alice, nil),
		sess.EXPECT().SetAuthData(ctx, "tkn", alice).Return(nil),
	)

	user, err := svc.Login(ctx, models.LoginRequest{UserName: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, alice, user)
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	svc, _, serverAdapter := newTestClientAuthSvc(t)

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return("", models.PublicUser{}, &adapter.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid username or password"})

	_, err := svc.Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "bad"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientAuthService_Login_SessionWriteFails(t *testing.T) {
	svc, sess, serverAdapter := newTestClientAuthSvc(t)
	boom := errors.New("disk full")

	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return("tkn", models.PublicUser{UserID: 1}, nil)
	sess.EXPECT().SetAuthData(gomock.Any(), "tkn", gomock.Any()).Return(boom)

	_, err := svc.Login(context.Background(), models.LoginRequest{UserName: "alice", Password: "pw1"})

	assert.ErrorIs(t, err, boom)
}

func TestClientAuthService_LogoutAndCurrentUser(t *testing.T) {
	svc, sess, _ := newTestClientAuthSvc(t)

	sess.EXPECT().Logout(gomock.Any()).Return(nil)
	sess.EXPECT().CurrentUser().Return(models.PublicUser{}, false)

	require.NoError(t, svc.Logout(context.Background()))
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}
