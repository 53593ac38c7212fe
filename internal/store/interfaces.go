package store

import (
	"context"

	"github.com/MKhiriev/go-flix/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the Credential Store. Records are created once and never
// updated or deleted.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// It returns ErrUserAlreadyExists when the user name or e-mail is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUserName returns ErrNoUserWasFound for an unknown name.
	FindUserByUserName(ctx context.Context, userName string) (models.User, error)
}

// HealthChecker reports whether a storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator interprets driver errors of a SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
