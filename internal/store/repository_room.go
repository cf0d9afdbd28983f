// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

type roomRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoomRepository constructs a [RoomRepository] backed by db.
func NewRoomRepository(db *DB, logger *logger.Logger) RoomRepository {
	logger.Debug().Msg("creating room repository")
	return &roomRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRoom inserts room and returns it with the assigned id.
// A taken room name yields [ErrAlreadyExists].
func (r *roomRepository) CreateRoom(ctx context.Context, room models.Room) (models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.insertRoomQuery(room))
	if err != nil {
		return models.Room{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID); err != nil {
		log.Err(err).Str("func", "*roomRepository.CreateRoom").Str("room_name", room.Name).Msg("error inserting room")
		if r.db.classify(err) == ClassUniqueViolation {
			return models.Room{}, ErrAlreadyExists
		}
		return models.Room{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return room, nil
}

// GetRoomByID returns the room with its password hash, or [ErrNotFound].
func (r *roomRepository) GetRoomByID(ctx context.Context, id int64) (models.Room, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.getRoomQuery(id))
	if err != nil {
		return models.Room{}, err
	}

	var room models.Room
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Name, &room.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*roomRepository.GetRoomByID").Int64("room_id", id).Msg("error getting room")
		return models.Room{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return room, nil
}
