package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

// memoryUserRepository is the in-process Credential Store. Uniqueness is
// checked and the record stored under one lock.
type memoryUserRepository struct {
	logger *logger.Logger

	mu      sync.RWMutex
	nextID  int64
	byName  map[string]models.User
	byEmail map[string]struct{}
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		logger:  logger,
		nextID:  1,
		byName:  make(map[string]models.User),
		byEmail: make(map[string]struct{}),
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return models.User{}, ErrUserAlreadyExists
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return models.User{}, ErrUserAlreadyExists
	}

	user.UserID = r.nextID
	r.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.PhoneNumber != nil {
		phone := *user.PhoneNumber
		user.PhoneNumber = &phone
	}

	r.byName[user.UserName] = user
	r.byEmail[user.Email] = struct{}{}

	return user, nil
}

func (r *memoryUserRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[userName]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

// Ping implements [HealthChecker]; the in-memory store is always reachable.
func (r *memoryUserRepository) Ping(context.Context) error {
	return nil
}
