package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

type clientRoomService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientRoomService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientRoomService {
	return &clientRoomService{adapter: serverAdapter, logger: logger}
}

func (s *clientRoomService) CreateRoom(ctx context.Context, name, password string) (models.RoomOutcome, error) {
	draft := models.NewDraftRoom(name, password)

	return s.negotiate(ctx, models.RoomEventCreate, draft, s.adapter.CreateRoom)
}

func (s *clientRoomService) EnterRoom(ctx context.Context, room models.RoomSession) (models.RoomOutcome, error) {
	return s.negotiate(ctx, models.RoomEventEnter, room, s.adapter.EnterRoom)
}

// negotiate runs one room path from RoomIdle to a terminal state. A
// transport failure is handled as a denial and returned alongside the
// outcome.
func (s *clientRoomService) negotiate(
	ctx context.Context,
	start models.RoomEvent,
	room models.RoomSession,
	submit func(context.Context, models.RoomSession) (models.Envelope[bool], error),
) (models.RoomOutcome, error) {
	log := s.logger.With().Str("room_name", room.RoomName).Logger()

	state, err := models.RoomIdle.Next(start)
	if err != nil {
		return models.RoomOutcome{State: models.RoomIdle, Session: room}, err
	}

	reply, callErr := submit(ctx, room)

	event := models.ResolveReply(reply)
	if callErr != nil {
		event = models.RoomEventDenied
	}

	state, err = state.Next(event)
	if err != nil {
		return models.RoomOutcome{State: state, Session: room}, err
	}

	outcome := models.RoomOutcome{State: state, Session: room, Message: reply.Message}
	log.Debug().Stringer("state", state).Str("reply", reply.Message).Msg("room negotiation finished")

	switch {
	case callErr != nil:
		log.Error().Err(callErr).Stringer("state", state).Msg("room request failed")
		return outcome, callErr
	case event == models.RoomEventDenied:
		return outcome, fmt.Errorf("%w: %s", ErrRejected, reply.Message)
	}

	return outcome, nil
}
