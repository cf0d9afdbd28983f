package console

import (
	"context"
	"io"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/service"
	"github.com/MKhiriev/go-room-chat/models"
)

// RoomRunner shows an entered room until the operator leaves it.
type RoomRunner interface {
	RunRoom(ctx context.Context, outcome models.RoomOutcome) error
}

// LineRoom runs the chat loop on the console: operator lines are sent,
// new room messages are printed under them.
type LineRoom struct {
	chat service.ClientChatService
	feed service.LineSource
	out  io.Writer

	logger *logger.Logger
}

func NewLineRoom(chat service.ClientChatService, feed service.LineSource, out io.Writer, logger *logger.Logger) *LineRoom {
	return &LineRoom{chat: chat, feed: feed, out: out, logger: logger}
}

func (r *LineRoom) RunRoom(ctx context.Context, outcome models.RoomOutcome) error {
	return r.chat.Run(ctx, outcome, r.feed, NewLineSink(r.out, r.logger))
}

// Pauser is implemented by [Feed].
type Pauser interface {
	Pause()
	Resume()
}

type exclusiveRoom struct {
	input  Pauser
	runner RoomRunner
}

// Exclusive returns a runner that pauses input around runner, for room
// views that read the terminal themselves.
func Exclusive(input Pauser, runner RoomRunner) RoomRunner {
	return &exclusiveRoom{input: input, runner: runner}
}

func (r *exclusiveRoom) RunRoom(ctx context.Context, outcome models.RoomOutcome) error {
	r.input.Pause()
	defer r.input.Resume()

	return r.runner.RunRoom(ctx, outcome)
}
