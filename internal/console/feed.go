// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/cancelreader"

	"github.com/MKhiriev/go-room-chat/internal/logger"
)

// Feed reads operator input line by line in one goroutine ([Feed.Run]) and
// serves it to two kinds of consumers: [Feed.ReadLine] for context-aware
// callers such as the chat loop, and [Feed.Read] for go-input prompts.
//
// Reading can be suspended with [Feed.Pause] while another component (the
// full-screen room view) owns the terminal, and continued with
// [Feed.Resume].
type Feed struct {
	source    io.Reader
	newReader func(io.Reader) (cancelreader.CancelReader, error)

	lines  chan string
	resume chan struct{}
	done   chan struct{}

	mu      sync.Mutex
	current *feedSession
	paused  bool

	// pending is the unread rest of the line handed out by Read.
	pending []byte

	logger *logger.Logger
}

// feedSession is one uninterrupted period of reading from the source.
type feedSession struct {
	reader  cancelreader.CancelReader
	pause   chan struct{}
	stopped chan struct{}
}

func NewFeed(source io.Reader, logger *logger.Logger) *Feed {
	return &Feed{
		source:    source,
		newReader: newCancelReader,
		lines:     make(chan string),
		resume:    make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger,
	}
}

// Run reads the source until it ends or ctx is done. It must be called
// once. End of input is not an error.
func (f *Feed) Run(ctx context.Context) error {
	defer close(f.done)

	for {
		s, err := f.open()
		if err != nil {
			return fmt.Errorf("open console input: %w", err)
		}

		stop := context.AfterFunc(ctx, func() { s.reader.Cancel() })
		err = f.pump(ctx, s)
		stop()
		f.end(s)

		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-s.pause:
			f.logger.Debug().Msg("console input paused")
			select {
			case <-f.resume:
				f.logger.Debug().Msg("console input resumed")
				continue
			case <-ctx.Done():
				return nil
			}
		default:
		}

		if errors.Is(err, io.EOF) {
			f.logger.Info().Msg("console input closed")
			return nil
		}
		return fmt.Errorf("read console input: %w", err)
	}
}

// newCancelReader falls back to a non-interruptible reader for sources that
// cannot be polled, such as redirected regular files.
func newCancelReader(r io.Reader) (cancelreader.CancelReader, error) {
	reader, err := cancelreader.NewReader(r)
	if err != nil {
		return cancelreader.NewReader(struct{ io.Reader }{r})
	}
	return reader, nil
}

func (f *Feed) open() (*feedSession, error) {
	reader, err := f.newReader(f.source)
	if err != nil {
		return nil, err
	}

	s := &feedSession{
		reader:  reader,
		pause:   make(chan struct{}),
		stopped: make(chan struct{}),
	}

	f.mu.Lock()
	f.current = s
	f.mu.Unlock()

	return s, nil
}

func (f *Feed) end(s *feedSession) {
	f.mu.Lock()
	if f.current == s {
		f.current = nil
	}
	f.mu.Unlock()

	if err := s.reader.Close(); err != nil {
		f.logger.Debug().Err(err).Msg("closing console reader")
	}
	close(s.stopped)
}

// pump forwards complete lines, newline included. A last line without a
// newline is forwarded before io.EOF is returned.
func (f *Feed) pump(ctx context.Context, s *feedSession) error {
	br := bufio.NewReader(s.reader)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			select {
			case f.lines <- line:
			case <-s.pause:
				return cancelreader.ErrCanceled
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err != nil {
			return err
		}
	}
}

// ReadLine returns the next input line with its trailing newline, io.EOF
// once the input has ended, or the ctx error.
func (f *Feed) ReadLine(ctx context.Context) (string, error) {
	select {
	case line := <-f.lines:
		return line, nil
	case <-f.done:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Read implements io.Reader. A single call never returns more than the rest
// of one line, so a buffered reader on top of Feed never holds input that
// belongs to a later ReadLine.
func (f *Feed) Read(p []byte) (int, error) {
	if len(f.pending) == 0 {
		line, err := f.ReadLine(context.Background())
		if err != nil {
			return 0, err
		}
		f.pending = []byte(line)
	}

	n := copy(p, f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

// Closed reports whether the input has ended.
func (f *Feed) Closed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Pause stops reading the source and waits until the reader goroutine let
// go of it. A line typed ahead and not yet consumed is dropped.
func (f *Feed) Pause() {
	f.mu.Lock()
	s := f.current
	f.current = nil
	if s != nil {
		f.paused = true
	}
	f.mu.Unlock()

	if s == nil {
		return
	}

	close(s.pause)
	if !s.reader.Cancel() {
		f.logger.Warn().Msg("console input cannot be cancelled, waiting for the next line")
	}
	<-s.stopped
}

// Resume continues reading after Pause. It is a no-op when the feed is not
// paused.
func (f *Feed) Resume() {
	f.mu.Lock()
	paused := f.paused
	f.paused = false
	f.mu.Unlock()

	if !paused {
		return
	}

	select {
	case f.resume <- struct{}{}:
	case <-f.done:
	}
}
