// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

// DefaultPollInterval is the inbound poll period used when none is set.
const DefaultPollInterval = 2 * time.Second

type clientChatService struct {
	adapter      adapter.ServerAdapter
	pollInterval time.Duration

	logger *logger.Logger
	now    func() time.Time
}

// NewClientChatService creates the chat loop. A zero or negative
// pollInterval falls back to DefaultPollInterval.
func NewClientChatService(serverAdapter adapter.ServerAdapter, pollInterval time.Duration, logger *logger.Logger) ClientChatService {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &clientChatService{
		adapter:      serverAdapter,
		pollInterval: pollInterval,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *clientChatService) Join(ctx context.Context, outcome models.RoomOutcome, sink MessageSink) (ChatRoom, error) {
	if !outcome.Bound() {
		return nil, fmt.Errorf("%w: state %s", ErrSessionNotBound, outcome.State)
	}

	pollCtx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(pollCtx)

	room := &chatRoom{
		session:  outcome.Session,
		adapter:  s.adapter,
		sink:     sink,
		interval: s.pollInterval,
		now:      s.now,
		logger:   s.logger,
		cancel:   cancel,
		group:    group,
		done:     make(chan struct{}),
	}

	group.Go(func() error {
		defer close(room.done)
		room.poll(groupCtx)
		return nil
	})

	s.logger.Info().
		Int64("room_id", outcome.Session.RoomID).
		Int64("user_id", outcome.Session.UserID).
		Dur("poll_interval", s.pollInterval).
		Msg("joined room")

	return room, nil
}

// Run returns nil when the operator leaves, the input ends or ctx is
// cancelled. Other LineSource errors are returned after leaving the room.
func (s *clientChatService) Run(ctx context.Context, outcome models.RoomOutcome, lines LineSource, sink MessageSink) error {
	room, err := s.Join(ctx, outcome, sink)
	if err != nil {
		return err
	}
	defer room.Leave()

	for {
		line, err := lines.ReadLine(ctx)
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading operator input: %w", err)
		}

		text := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(text)
		if trimmed == LeaveCommand {
			return nil
		}
		if trimmed == "" {
			continue
		}

		if err = room.Send(ctx, text); err != nil {
			sink.SendFailed(text, err)
		}
	}
}

// chatRoom owns one inbound poller. The session is read-only after Join.
type chatRoom struct {
	session  models.RoomSession
	adapter  adapter.ServerAdapter
	sink     MessageSink
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	cancel context.CancelFunc
	group  *errgroup.Group
	done   chan struct{}
}

func (r *chatRoom) Session() models.RoomSession {
	return r.session
}

func (r *chatRoom) Send(ctx context.Context, text string) error {
	msg := models.Message{Text: text, RoomID: r.session.RoomID}

	if _, err := r.adapter.SendMessage(ctx, msg); err != nil {
		r.logger.Err(err).Str("func", "chatRoom.Send").Int64("room_id", msg.RoomID).Msg("message/send failed")
		return err
	}

	return nil
}

func (r *chatRoom) Leave() {
	r.cancel()
	_ = r.group.Wait()
}

func (r *chatRoom) Done() <-chan struct{} {
	return r.done
}

// poll fetches the room history immediately and then once per interval.
// A batch is delivered for every completed cycle, failed or not; a
// request cut short by cancellation is dropped.
func (r *chatRoom) poll(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		reply, err := r.adapter.GetMessages(ctx, r.session.RoomID)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			r.logger.Warn().Err(err).Int64("room_id", r.session.RoomID).Msg("message/get failed")
		}

		r.sink.ShowBatch(models.MessageBatch{
			RoomID:     r.session.RoomID,
			Envelope:   reply,
			Err:        err,
			ReceivedAt: r.now(),
		})

		timer.Reset(r.interval)
	}
}
