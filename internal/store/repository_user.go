package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

// userRepository is the SQL implementation of [UserRepository] used by both
// the PostgreSQL and the SQLite backends. The dialect lives in [DB].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser runs the duplicate lookup and the insert in one transaction.
//
// Error handling:
//   - lookup hit → [ErrUserAlreadyExists];
//   - unique constraint violation on insert → [ErrUserAlreadyExists];
//   - anything else → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildFindConflictingUserQuery(r.db.builder(), user.UserName, user.Email)
		if err != nil {
			return err
		}

		var existingID int64
		err = tx.QueryRowContext(ctx, query, args...).Scan(&existingID)
		switch {
		case err == nil:
			return ErrUserAlreadyExists
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildInsertUserQuery(r.db.builder(), user)
		if err != nil {
			return err
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			if r.db.errorClassificator.IsUniqueViolation(err) {
				return ErrUserAlreadyExists
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserAlreadyExists) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByUserName looks the user up on a dedicated connection.
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.WithConn(ctx, func(ctx context.Context, conn DBTX) error {
		query, args, err := buildFindUserByUserNameQuery(r.db.builder(), userName)
		if err != nil {
			return err
		}

		var phone sql.NullString
		err = conn.QueryRowContext(ctx, query, args...).Scan(
			&found.UserID, &found.UserName, &found.Email, &phone, &found.PasswordHash, &found.CreatedAt,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoUserWasFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if phone.Valid {
			found.PhoneNumber = &phone.String
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.FindUserByUserName").Msg("error finding user")
		}
		return models.User{}, err
	}

	return found, nil
}
