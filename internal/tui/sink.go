package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-room-chat/models"
)

const failureBuffer = 16

// batchSink hands poll results from the chat loop to the bubbletea program.
//
// The poller never blocks on the view: every batch carries the whole room
// history, so an undelivered batch is replaced by the newer one. Send
// failures beyond the buffer are dropped.
type batchSink struct {
	batches  chan models.MessageBatch
	failures chan sendFailedMsg

	closed    chan struct{}
	closeOnce sync.Once
}

func newBatchSink() *batchSink {
	return &batchSink{
		batches:  make(chan models.MessageBatch, 1),
		failures: make(chan sendFailedMsg, failureBuffer),
		closed:   make(chan struct{}),
	}
}

func (s *batchSink) ShowBatch(batch models.MessageBatch) {
	for {
		select {
		case s.batches <- batch:
			return
		default:
		}

		// drop the stale batch
		select {
		case <-s.batches:
		default:
		}
	}
}

func (s *batchSink) SendFailed(text string, err error) {
	select {
	case s.failures <- sendFailedMsg{text: text, err: err}:
	default:
	}
}

func (s *batchSink) close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

// waitForBatch returns nil once the sink is closed.
func (s *batchSink) waitForBatch() tea.Cmd {
	return func() tea.Msg {
		select {
		case batch := <-s.batches:
			return batchMsg{batch: batch}
		case <-s.closed:
			return nil
		}
	}
}

func (s *batchSink) waitForFailure() tea.Cmd {
	return func() tea.Msg {
		select {
		case failure := <-s.failures:
			return failure
		case <-s.closed:
			return nil
		}
	}
}
