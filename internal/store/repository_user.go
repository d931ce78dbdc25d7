package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// userRepository is the database/sql implementation of [UserRepository].
// The same code serves SQLite and PostgreSQL; the dialect differences are
// hidden behind the squirrel builder carried by [DB].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.Driver()).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUsername looks up the password hash stored for username.
//
// [sql.ErrNoRows] is translated into found == false with a nil error. Any
// other failure is logged and returned wrapped in [ErrStorageUnavailable].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPasswordHashQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByUsername").Msg("error building query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var passwordHash string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&passwordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		r.logFailure(ctx, err, "*userRepository.FindByUsername", "error selecting password hash")
		return "", false, fmt.Errorf("%w: find user: %w", ErrStorageUnavailable, err)
	}

	return passwordHash, true, nil
}

// Seed inserts the user unless the username already exists. The returned
// bool is true only when a new row was written; calling Seed again with the
// same username is a no-op.
func (r *userRepository) Seed(ctx context.Context, username, passwordHash string) (bool, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return false, ErrEmptyUsername
	}

	query, args, err := buildSeedUserQuery(r.db.builder, username, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Seed").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logFailure(ctx, err, "*userRepository.Seed", "error inserting user")
		return false, fmt.Errorf("%w: seed user: %w", ErrStorageUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logFailure(ctx, err, "*userRepository.Seed", "error reading affected rows")
		return false, fmt.Errorf("%w: seed user: %w", ErrStorageUnavailable, err)
	}

	return affected > 0, nil
}

// ListUsernames returns every stored username in ascending order. An empty
// table yields an empty, non-nil slice.
func (r *userRepository) ListUsernames(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsernamesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsernames").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFailure(ctx, err, "*userRepository.ListUsernames", "error selecting usernames")
		return nil, fmt.Errorf("%w: list users: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var username string
		if err = rows.Scan(&username); err != nil {
			r.logFailure(ctx, err, "*userRepository.ListUsernames", "scanning error")
			return nil, fmt.Errorf("%w: list users: %w", ErrStorageUnavailable, err)
		}
		usernames = append(usernames, username)
	}

	if err = rows.Err(); err != nil {
		r.logFailure(ctx, err, "*userRepository.ListUsernames", "error iterating rows")
		return nil, fmt.Errorf("%w: list users: %w", ErrStorageUnavailable, err)
	}

	return usernames, nil
}

func (r *userRepository) logFailure(ctx context.Context, err error, fn, msg string) {
	event := logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("driver", r.db.Driver()).
		Bool("retryable", r.db.retryable(err))
	if code := postgresError(err); code != "" {
		event = event.Str("pg_code", code)
	}
	event.Msg(msg)
}
