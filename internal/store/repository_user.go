package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user lifecycle and conversation input state against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// querier (a transaction or the connection pool) and logger.
func NewUserRepository(db Querier, logger *logger.Logger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.IsDisabled, int16(user.InputState), user.Created, user.Updated)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("user_id", user.ID).Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var created models.User
	if err := row.Scan(&created.ID, &created.IsDisabled, &created.InputState, &created.Created, &created.Updated); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("user_id", user.ID).Msg("error scanning created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetUser retrieves the user record with the given id.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, getUser, userID)

	if err := row.Scan(&user.ID, &user.IsDisabled, &user.InputState, &user.Created, &user.Updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetUser").Int64("user_id", userID).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UserExists reports whether a user row with the given id exists.
func (r *userRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, userExists, userID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Int64("user_id", userID).Msg("error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteUser removes the user row. Settings and phrases follow via the
// ON DELETE CASCADE constraints. Deleting a missing user is not an error.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteUser, userID); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// EnableUser clears the disabled flag, touching only the lifecycle columns.
// Enabling a missing user is logged and ignored.
func (r *userRepository) EnableUser(ctx context.Context, userID int64) error {
	return r.setDisabled(ctx, userID, false, "*userRepository.EnableUser")
}

// DisableUser sets the disabled flag, touching only the lifecycle columns.
// Disabling a missing user is logged and ignored.
func (r *userRepository) DisableUser(ctx context.Context, userID int64) error {
	return r.setDisabled(ctx, userID, true, "*userRepository.DisableUser")
}

func (r *userRepository) setDisabled(ctx context.Context, userID int64, disabled bool, funcName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetDisabledQuery(userID, disabled)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error updating disabled flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, affectedErr := result.RowsAffected(); affectedErr == nil && affected == 0 {
		log.Warn().Str("func", funcName).Int64("user_id", userID).Msg("cannot update disabled flag: user doesn't exist")
	}

	return nil
}

// GetInputState reads the persisted conversation cursor for the user.
//
// Returns [ErrUserNotFound] when the user does not exist; a stored value
// outside the declared enum set fails validation immediately.
func (r *userRepository) GetInputState(ctx context.Context, userID int64) (models.UserInputState, error) {
	log := logger.FromContext(ctx)

	var state models.UserInputState
	if err := r.db.QueryRowContext(ctx, getInputState, userID).Scan(&state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InputStateNone, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.GetInputState").Int64("user_id", userID).Msg("error scanning input state")
		return models.InputStateNone, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := state.Validate(); err != nil {
		return models.InputStateNone, err
	}

	return state, nil
}

// SetInputState persists a new conversation cursor, touching only the state
// columns. The value is validated before any SQL is built (fail-fast).
//
// Returns [ErrUserNotFound] when the user does not exist.
func (r *userRepository) SetInputState(ctx context.Context, userID int64, state models.UserInputState) error {
	log := logger.FromContext(ctx)

	if err := state.Validate(); err != nil {
		return err
	}

	query, args, err := buildSetInputStateQuery(userID, state)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetInputState").Int64("user_id", userID).Msg("failed to build query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetInputState").Int64("user_id", userID).Msg("error updating input state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, affectedErr := result.RowsAffected(); affectedErr == nil && affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
