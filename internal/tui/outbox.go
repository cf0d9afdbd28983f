package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-room-chat/internal/service"
)

// outbox queues the lines typed in the room view. One worker sends them in
// the order they were typed, so a slow send holds back the lines after it.
// push never blocks the view.
type outbox struct {
	mu    sync.Mutex
	lines []string

	notify chan struct{}
}

func newOutbox() *outbox {
	return &outbox{notify: make(chan struct{}, 1)}
}

func (o *outbox) push(text string) {
	o.mu.Lock()
	o.lines = append(o.lines, text)
	o.mu.Unlock()

	select {
	case o.notify <- struct{}{}:
	default:
	}
}

func (o *outbox) pop() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.lines) == 0 {
		return "", false
	}
	text := o.lines[0]
	o.lines = o.lines[1:]
	return text, true
}

// run sends queued lines one at a time until ctx is done. Failed lines are
// reported to sink and the next line is sent anyway.
func (o *outbox) run(ctx context.Context, room service.ChatRoom, sink service.MessageSink) error {
	for {
		for {
			text, ok := o.pop()
			if !ok {
				break
			}
			if err := room.Send(ctx, text); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				sink.SendFailed(text, err)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-o.notify:
		}
	}
}
