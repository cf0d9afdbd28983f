package client

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/config"
	"github.com/MKhiriev/go-room-chat/internal/console"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/service"
	"github.com/MKhiriev/go-room-chat/internal/tui"
	"github.com/MKhiriev/go-room-chat/internal/workers"
)

type App struct {
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp builds the client on top of serverAdapter. Operator input is read
// from in and all console output goes to out.
func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client config is required")
	}

	services := service.NewClientServices(serverAdapter, cfg.Workers.PollInterval, logger)
	feed := console.NewFeed(in, logger)

	var room console.RoomRunner
	switch cfg.App.UI {
	case config.UITUI:
		room = console.Exclusive(feed, tui.NewRoomScreen(services.ChatService, logger))
	default:
		room = console.NewLineRoom(services.ChatService, feed, out, logger)
	}

	dispatcher := console.NewDispatcher(services, room, feed, out, logger)

	logger.Info().Str("ui", cfg.App.UI).Str("server", cfg.Adapter.HTTPAddress).Msg("client app created")

	return &App{
		workers: workers.New(feed, dispatcher),
		logger:  logger,
	}, nil
}

// Run blocks until the operator quits, the input ends, ctx is done or the
// process receives SIGINT or SIGTERM.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("client stopped: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
