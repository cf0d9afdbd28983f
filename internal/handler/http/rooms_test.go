// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-room-chat/internal/app"
	"github.com/MKhiriev/go-room-chat/internal/service"
	"github.com/MKhiriev/go-room-chat/models"
)

func TestCreateRoom_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	draft := models.NewDraftRoom("lobby", "pw")
	mocks.rooms.EXPECT().CreateRoom(gomock.Any(), draft).Return(models.Room{ID: 3, Name: "lobby"}, nil)

	rec := post(t, router, RouteRoomCreate, draft)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeReply(t, rec)
	assert.Equal(t, "room 'lobby' created with id 3", env.Message)
	assert.JSONEq(t, "true", string(env.Data))
}

func TestCreateRoom_NameTaken(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.rooms.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(models.Room{}, service.ErrRoomNameTaken)

	rec := post(t, router, RouteRoomCreate, models.NewDraftRoom("lobby", "pw"))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeReply(t, rec)
	assert.Equal(t, app.MsgRoomNameTaken, env.Message)
	assert.Empty(t, env.Data)
}

func TestEnterRoom(t *testing.T) {
	request := models.RoomSession{RoomID: 3, RoomName: "lobby", Password: "pw", UserID: 7}

	tests := []struct {
		name     string
		err      error
		wantMsg  string
		wantData bool
	}{
		{"accepted", nil, "user 7 entered room 'lobby'", true},
		{"wrong password", service.ErrWrongPassword, app.MsgWrongCredentials, false},
		{"unknown room", service.ErrRoomNotFound, app.MsgRoomNotFound, false},
		{"name mismatch", service.ErrRoomNameMismatch, app.MsgRoomNameMismatch, false},
		{"unknown user", service.ErrUserNotFound, app.MsgUserNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.rooms.EXPECT().EnterRoom(gomock.Any(), request).Return(tt.err)

			rec := post(t, router, RouteRoomEnter, request)

			assert.Equal(t, http.StatusOK, rec.Code)
			env := decodeReply(t, rec)
			assert.Equal(t, tt.wantMsg, env.Message)
			if tt.wantData {
				assert.JSONEq(t, "true", string(env.Data))
			} else {
				assert.Empty(t, env.Data)
			}
		})
	}
}
