package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/service"
	"github.com/MKhiriev/go-room-chat/models"
)

// RoomScreen runs an entered room in the full-screen view. It owns the
// terminal while running, so console input has to be paused around it.
type RoomScreen struct {
	chat    service.ClientChatService
	options []tea.ProgramOption

	logger *logger.Logger
}

func NewRoomScreen(chat service.ClientChatService, logger *logger.Logger) *RoomScreen {
	return &RoomScreen{
		chat:    chat,
		options: []tea.ProgramOption{tea.WithAltScreen()},
		logger:  logger,
	}
}

// RunRoom joins the room and blocks until the operator leaves it, the room
// poller stops or ctx is done. Typed lines are sent by a single worker in
// typing order. The room is always left before returning.
func (s *RoomScreen) RunRoom(ctx context.Context, outcome models.RoomOutcome) error {
	sink := newBatchSink()
	defer sink.close()

	room, err := s.chat.Join(ctx, outcome, sink)
	if err != nil {
		return err
	}
	defer room.Leave()

	sendCtx, stopSending := context.WithCancel(ctx)
	var group errgroup.Group
	box := newOutbox()
	group.Go(func() error {
		return box.run(sendCtx, room, sink)
	})
	defer func() {
		stopSending()
		_ = group.Wait()
	}()

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, s.options...)
	if _, err = tea.NewProgram(newRoomModel(room, sink, box), options...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("room view: %w", err)
	}

	s.logger.Info().Int64("room_id", outcome.Session.RoomID).Msg("room view closed")
	return nil
}
