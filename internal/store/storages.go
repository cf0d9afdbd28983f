package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/logger"
)

// Storages groups the repositories of the reference server.
type Storages struct {
	UserRepository    UserRepository
	RoomRepository    RoomRepository
	MessageRepository MessageRepository

	db *DB
}

// NewStorages connects to dsn, applies pending migrations and wires the
// repositories.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		RoomRepository:    NewRoomRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
		db:                db,
	}
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
