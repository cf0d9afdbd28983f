package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/store"
	"github.com/MKhiriev/go-room-chat/internal/utils"
	"github.com/MKhiriev/go-room-chat/internal/validators"
	"github.com/MKhiriev/go-room-chat/models"
)

// userService is the concrete implementation of UserService.
// Passwords are stored as bcrypt hashes and never returned.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a UserService over userRepository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// AddUser validates that the id is the placeholder and that name and
// password are set, hashes the password and stores the account.
//
// Returns ErrInvalidDataProvided on validation failure or a wrapped storage
// error.
func (s *userService) AddUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user, validators.FieldIDPlaceholder, validators.FieldName, validators.FieldPassword); err != nil {
		log.Error().Err(err).Str("name", user.Name).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, err
	}
	user.Password = hashed

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("name", user.Name).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created.Password = ""
	log.Info().Int64("user_id", created.ID).Str("name", created.Name).Msg("user created")
	return created, nil
}

func (s *userService) SearchUsers(ctx context.Context, filter models.UserSearch) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, filter); err != nil {
		log.Error().Err(err).Int64("id", filter.ID).Msg("invalid search filter")
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	users, err := s.userRepository.FindUsers(ctx, filter)
	if err != nil {
		log.Err(err).Any("filter", filter).Msg("user search failed")
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	return users, nil
}

// DeleteUser looks the account up by id. An unknown id deletes nothing and
// is not an error. A name or password that does not match the stored
// account yields ErrWrongPassword.
func (s *userService) DeleteUser(ctx context.Context, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user, validators.FieldID, validators.FieldPassword); err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("invalid user data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := s.userRepository.GetUserByID(ctx, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Int64("user_id", user.ID).Msg("nothing to delete")
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("user lookup failed: %w", err)
	}

	if stored.Name != user.Name {
		log.Warn().Int64("user_id", user.ID).Msg("user name mismatch on delete")
		return 0, ErrWrongPassword
	}
	if err = utils.CheckPassword(stored.Password, user.Password); err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("password check failed on delete")
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return 0, ErrWrongPassword
		}
		return 0, err
	}

	deleted, err := s.userRepository.DeleteUser(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("user deletion failed: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Int64("deleted", deleted).Msg("user deleted")
	return deleted, nil
}
