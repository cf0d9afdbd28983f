// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/mock"
	"github.com/MKhiriev/go-room-chat/models"
)

func newTestRoomClient(t *testing.T) (ClientRoomService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientRoomService(mockAdapter, logger.Nop()), mockAdapter
}

// ── CreateRoom ───────────────────────────────────────────────────────────────

func TestClientRoomService_CreateRoom_SubmitsDraft(t *testing.T) {
	svc, mockAdapter := newTestRoomClient(t)

	mockAdapter.EXPECT().
		CreateRoom(gomock.Any(), models.NewDraftRoom("lobby", "pw")).
		Return(models.Success("room 'lobby' created with id 3", true), nil)

	outcome, err := svc.CreateRoom(context.Background(), "lobby", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RoomCreated, outcome.State)
	assert.Equal(t, "room 'lobby' created with id 3", outcome.Message)
	// созданная комната никогда не привязывает сессию
	assert.False(t, outcome.Bound())
}

func TestClientRoomService_CreateRoom_Rejected(t *testing.T) {
	svc, mockAdapter := newTestRoomClient(t)

	mockAdapter.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
		Return(models.Failure[bool]("room name is already taken"), nil)

	outcome, err := svc.CreateRoom(context.Background(), "lobby", "pw")
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, models.RoomFailed, outcome.State)
	assert.Equal(t, "room name is already taken", outcome.Message)
}

func TestClientRoomService_CreateRoom_TransportError(t *testing.T) {
	svc, mockAdapter := newTestRoomClient(t)

	mockAdapter.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
		Return(models.Envelope[bool]{}, fmt.Errorf("%w: dial tcp: refused", adapter.ErrTransport))

	outcome, err := svc.CreateRoom(context.Background(), "lobby", "pw")
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.Equal(t, models.RoomFailed, outcome.State)
}

// ── EnterRoom ────────────────────────────────────────────────────────────────

func TestClientRoomService_EnterRoom(t *testing.T) {
	request := models.RoomSession{RoomID: 3, RoomName: "lobby", Password: "pw", UserID: 7}

	tests := []struct {
		name      string
		reply     models.Envelope[bool]
		callErr   error
		wantState models.RoomState
		wantErr   error
	}{
		{"data true binds", models.Success("welcome", true), nil, models.RoomBound, nil},
		{"data false rejects", models.Success("wrong name or password", false), nil, models.RoomRejected, ErrRejected},
		{"data absent rejects", models.Failure[bool]("room not found"), nil, models.RoomRejected, ErrRejected},
		{"transport failure rejects", models.Envelope[bool]{}, adapter.ErrTransport, models.RoomRejected, adapter.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestRoomClient(t)
			mockAdapter.EXPECT().EnterRoom(gomock.Any(), request).Return(tt.reply, tt.callErr)

			outcome, err := svc.EnterRoom(context.Background(), request)
			assert.Equal(t, tt.wantState, outcome.State)
			assert.Equal(t, request, outcome.Session)
			assert.Equal(t, tt.wantState == models.RoomBound, outcome.Bound())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Сценарий с неверным паролем: чат не стартует, message/get не вызывается.
func TestClientRoomService_WrongPassword_ChatLoopNotStarted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	rooms := NewClientRoomService(mockAdapter, logger.Nop())
	chat := NewClientChatService(mockAdapter, 0, logger.Nop())

	request := models.RoomSession{RoomID: 3, RoomName: "lobby", Password: "wrong", UserID: 7}
	mockAdapter.EXPECT().EnterRoom(gomock.Any(), request).
		Return(models.Success("wrong name or password", false), nil)
	mockAdapter.EXPECT().GetMessages(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := rooms.EnterRoom(context.Background(), request)
	require.ErrorIs(t, err, ErrRejected)

	_, err = chat.Join(context.Background(), outcome, &spySink{})
	assert.ErrorIs(t, err, ErrSessionNotBound)
}
