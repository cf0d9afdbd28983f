// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-chat/internal/config"
	"github.com/MKhiriev/go-room-chat/internal/handler"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/service"
)

func newTestHandlers(t *testing.T, cfg *config.ServerConfig) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

// ── NewServer ──

func TestNewServer_Errors(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      *config.ServerConfig
	}{
		{name: "nil handlers", handlers: nil, cfg: cfg},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: cfg},
		{name: "empty address", handlers: newTestHandlers(t, cfg), cfg: &config.ServerConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			assert.Nil(t, s)
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

// ── Run ──

// Сервер отвечает на запросы и корректно завершается при отмене контекста.
func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: "127.0.0.1:0", RequestTimeout: 2 * time.Second}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).serve(ctx, listener) }()

	resp, err := http.Post("http://"+listener.Addr().String()+"/no/such/route", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Message)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: "256.0.0.1:bad", RequestTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.Run(context.Background())
	assert.Error(t, err)
}
