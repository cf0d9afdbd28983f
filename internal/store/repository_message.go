// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// AppendMessage stores msg at the end of its room history.
func (r *messageRepository) AppendMessage(ctx context.Context, msg models.Message) error {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.insertMessageQuery(msg))
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*messageRepository.AppendMessage").Int64("room_id", msg.RoomID).Msg("error inserting message")
		if r.db.classify(err) == ClassForeignKeyViolation {
			return ErrRoomDoesNotExist
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListMessages returns the texts of the room history in send order.
func (r *messageRepository) ListMessages(ctx context.Context, roomID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQuery(r.db.listMessagesQuery(roomID))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Int64("room_id", roomID).Msg("error querying messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	texts := make([]string, 0)
	for rows.Next() {
		var text string
		if err = rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		texts = append(texts, text)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.ListMessages").Int64("room_id", roomID).Msg("error iterating message rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return texts, nil
}
