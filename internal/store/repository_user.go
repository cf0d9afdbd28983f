package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

// userRepository is the database/sql implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// that database failures are logged with the request trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the assigned id.
// user.Password must already be hashed.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.insertUserQuery(user))
	if err != nil {
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.classify(err) == ClassUniqueViolation {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUsers returns the users matching filter, without password hashes.
func (r *userRepository) FindUsers(ctx context.Context, filter models.UserSearch) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.findUsersQuery(filter))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Name); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// GetUserByID returns the user with its password hash, or [ErrNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.getUserQuery(id))
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Int64("user_id", id).Msg("error getting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return u, nil
}

// DeleteUser removes the user and returns the number of deleted rows.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.deleteUserQuery(id))
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("error deleting user")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
