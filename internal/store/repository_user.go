// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
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

// CreateUser persists a new user record and returns it with server-assigned
// fields (ID, IsActive, CreatedAt).
//
// Error handling:
//   - unique_violation (23505) → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped by [DB.unexpected].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.Password, user.FirstName, user.LastName, user.PhoneNumber, user.Role)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.db.unexpected(err)
		}
	}

	return created, nil
}

// FindActiveUserByEmail retrieves the active user whose email matches
// exactly. Missing and deactivated users both yield [ErrUserNotFound].
func (r *userRepository) FindActiveUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findActiveUserByEmail, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindActiveUserByEmail").Msg("error selecting user")
		return models.User{}, r.db.unexpected(err)
	}

	return user, nil
}

// FindUserByID retrieves a user by primary key regardless of its active flag.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", id).Msg("error selecting user")
		return models.User{}, r.db.unexpected(err)
	}

	return user, nil
}

// ListUsers returns every user ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting users")
		return nil, r.db.unexpected(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, r.db.unexpected(err)
	}

	return users, nil
}

// UpdateUser writes the supplied fields of update and bumps updated_at in a
// single statement. The password, if present, must already be hashed.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	fields := update.Fields()
	if len(fields) == 0 {
		return r.FindUserByID(ctx, id)
	}

	query, args, err := buildUpdateQuery(models.User{}.TableName(), id, fields, userColumnList)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("error updating user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.db.unexpected(err)
		}
	}

	return user, nil
}
