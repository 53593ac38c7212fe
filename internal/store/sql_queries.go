package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-flix/models"
)

const (
	usersTable        = "users"
	localStorageTable = "local_storage"
)

var userColumns = []string{"user_id", "user_name", "email", "phone_number", "password", "created_at"}

func buildFindConflictingUserQuery(b sq.StatementBuilderType, userName, email string) (string, []any, error) {
	query, args, err := b.
		Select("user_id").
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"user_name": userName},
			sq.Eq{"email": email},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("user_name", "email", "phone_number", "password", "created_at").
		Values(user.UserName, user.Email, user.PhoneNumber, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUserNameQuery(b sq.StatementBuilderType, userName string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_name": userName}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetLocalValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertLocalValueQuery(b sq.StatementBuilderType, key, value string) (string, []any, error) {
	query, args, err := b.
		Insert(localStorageTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteLocalValuesQuery(b sq.StatementBuilderType, keys []string) (string, []any, error) {
	query, args, err := b.
		Delete(localStorageTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
