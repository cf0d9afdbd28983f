// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

type roomService struct {
	roomRepository store.RoomRepository
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewRoomService constructs a RoomService. The user repository is used to
// check that the entering user exists.
func NewRoomService(roomRepository store.RoomRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepository: roomRepository,
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateRoom stores a room from a draft request. Only the name and the
// password of the request are used. Room names are unique.
func (s *roomService) CreateRoom(ctx context.Context, room models.RoomSession) (models.Room, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, room, validators.FieldRoomName, validators.FieldPassword); err != nil {
		log.Error().Err(err).Str("room_name", room.RoomName).Msg("invalid room data provided")
		return models.Room{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hashed, err := utils.HashPassword(room.Password)
	if err != nil {
		return models.Room{}, err
	}

	created, err := s.roomRepository.CreateRoom(ctx, models.Room{Name: room.RoomName, PasswordHash: hashed})
	if errors.Is(err, store.ErrAlreadyExists) {
		return models.Room{}, ErrRoomNameTaken
	}
	if err != nil {
		log.Err(err).Str("room_name", room.RoomName).Msg("room creation ended with error")
		return models.Room{}, fmt.Errorf("room creation ended with error: %w", err)
	}

	log.Info().Int64("room_id", created.ID).Str("room_name", created.Name).Msg("room created")
	return created, nil
}

// EnterRoom checks the room id, name and password, then that the user
// exists.
func (s *roomService) EnterRoom(ctx context.Context, room models.RoomSession) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, room); err != nil {
		log.Error().Err(err).Int64("room_id", room.RoomID).Msg("invalid room request")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := s.roomRepository.GetRoomByID(ctx, room.RoomID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("room lookup failed: %w", err)
	}

	if stored.Name != room.RoomName {
		return ErrRoomNameMismatch
	}
	if err = utils.CheckPassword(stored.PasswordHash, room.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return ErrWrongPassword
		}
		return err
	}

	if _, err = s.userRepository.GetUserByID(ctx, room.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	log.Info().Int64("room_id", room.RoomID).Int64("user_id", room.UserID).Msg("user entered room")
	return nil
}
