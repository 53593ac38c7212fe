package service

import (
	"context"

	"github.com/MKhiriev/go-flix/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks their credentials and issues and
// verifies session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)
	// Login returns the signed token and the public profile.
	Login(ctx context.Context, req models.LoginRequest) (string, models.PublicUser, error)
	// Verify checks a raw token. It does not consult the Credential Store.
	Verify(ctx context.Context, rawToken string) (models.Claims, error)

	CreateToken(ctx context.Context, user models.PublicUser) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// CatalogService serves movie lists and details through the catalog cache.
type CatalogService interface {
	List(ctx context.Context, category models.MovieCategory) ([]models.Movie, error)
	Details(ctx context.Context, movieID int64) (models.MovieDetails, error)
	// Refresh fetches category from the catalog and overwrites its cache
	// entry.
	Refresh(ctx context.Context, category models.MovieCategory) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
