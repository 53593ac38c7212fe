package service

import (
	"context"

	"github.com/MKhiriev/go-flix/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSession is the client's persisted login state. It is implemented by
// *session.Session.
type ClientSession interface {
	IsAuthenticated() bool
	Token() string
	CurrentUser() (models.PublicUser, bool)
	SetAuthData(ctx context.Context, token string, user models.PublicUser) error
	Logout(ctx context.Context) error
}

// ClientAuthService registers and logs users in through the server adapter
// and keeps the session in step.
type ClientAuthService interface {
	// Register creates the account. The user still has to log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login authenticates and persists the token and profile.
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// Logout clears the persisted session.
	Logout(ctx context.Context) error

	CurrentUser() (models.PublicUser, bool)
}

// RouteGuard decides whether a protected screen may render.
type RouteGuard interface {
	// Check returns the verified identity, or ErrUnauthenticated. A rejected
	// token clears the session; a transport failure leaves it in place. When
	// ctx is cancelled Check returns ctx.Err() and changes nothing.
	Check(ctx context.Context) (models.Claims, error)
}

// ClientCatalogService loads what the home screen shows.
type ClientCatalogService interface {
	// Home fetches the four lists concurrently and fails if any of them
	// fails.
	Home(ctx context.Context) (models.HomePage, error)

	Details(ctx context.Context, movieID int64) (models.MovieDetails, error)
}
