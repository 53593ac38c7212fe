package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

type clientAuthService struct {
	session ClientSession
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(session ClientSession, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: session, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Info().Err(err).Str("user_name", req.UserName).Msg("registration failed")
		return models.PublicUser{}, err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("registered")
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	token, user, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Info().Err(err).Str("user_name", req.UserName).Msg("login failed")
		return models.PublicUser{}, err
	}

	if err = a.session.SetAuthData(ctx, token, user); err != nil {
		return models.PublicUser{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("logged in")
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.logger.Info().Msg("logged out")
	return nil
}

func (a *clientAuthService) CurrentUser() (models.PublicUser, bool) {
	return a.session.CurrentUser()
}
