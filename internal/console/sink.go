// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

// LineSink prints the messages of an entered room line by line.
//
// Every poll returns the whole room history, so only the messages past the
// already printed ones are written. A history shorter than what was printed
// is printed again from the start. A failed poll or a reply without data is
// reported once per failure streak. The rest of the streak is only logged.
type LineSink struct {
	out    io.Writer
	logger *logger.Logger

	mu         sync.Mutex
	shown      int
	failing    bool
	suppressed int
}

func NewLineSink(out io.Writer, logger *logger.Logger) *LineSink {
	return &LineSink{out: out, logger: logger}
}

func (s *LineSink) ShowBatch(batch models.MessageBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if batch.Err != nil || !batch.Envelope.OK() {
		if !s.failing {
			s.failing = true
			s.writeFailure(batch)
			return
		}
		s.suppressed++
		s.logger.Debug().
			Int64("room_id", batch.RoomID).
			AnErr("poll_error", batch.Err).
			Str("reply", batch.Envelope.Message).
			Int("suppressed", s.suppressed).
			Msg("repeated room failure not printed")
		return
	}
	if s.failing && s.suppressed > 0 {
		s.logger.Debug().
			Int64("room_id", batch.RoomID).
			Int("suppressed", s.suppressed).
			Msg("room polling recovered")
	}
	s.failing = false
	s.suppressed = 0

	texts := batch.Texts()
	if len(texts) < s.shown {
		s.shown = 0
	}

	for _, text := range texts[s.shown:] {
		fmt.Fprintln(s.out, messageStyle.Render(text))
	}
	s.shown = len(texts)
}

func (s *LineSink) SendFailed(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("not sent: %q: %v", text, err)))
}

func (s *LineSink) writeFailure(batch models.MessageBatch) {
	if batch.Err != nil {
		fmt.Fprintln(s.out, warnStyle.Render(fmt.Sprintf("room %d: receiving messages failed: %v", batch.RoomID, batch.Err)))
		return
	}
	fmt.Fprintln(s.out, warnStyle.Render(fmt.Sprintf("room %d: %s", batch.RoomID, batch.Envelope.Message)))
}
