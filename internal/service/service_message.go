package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/store"
	"github.com/MKhiriev/go-room-chat/internal/validators"
	"github.com/MKhiriev/go-room-chat/models"
)

type messageService struct {
	messageRepository store.MessageRepository
	roomRepository    store.RoomRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, roomRepository store.RoomRepository, validator validators.Validator, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		roomRepository:    roomRepository,
		validator:         validator,
		logger:            logger,
	}
}

// GetMessages returns the full history of roomID in send order.
func (s *messageService) GetMessages(ctx context.Context, roomID int64) ([]string, error) {
	if _, err := s.roomRepository.GetRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("room lookup failed: %w", err)
	}

	texts, err := s.messageRepository.ListMessages(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("listing messages failed: %w", err)
	}

	return texts, nil
}

func (s *messageService) SendMessage(ctx context.Context, msg models.Message) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, msg); err != nil {
		log.Error().Err(err).Int64("room_id", msg.RoomID).Msg("invalid message")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err := s.messageRepository.AppendMessage(ctx, msg)
	if errors.Is(err, store.ErrRoomDoesNotExist) {
		return ErrRoomNotFound
	}
	if err != nil {
		return fmt.Errorf("storing message failed: %w", err)
	}

	return nil
}
