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

func TestGetMessages_BareRoomID(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.messages.EXPECT().GetMessages(gomock.Any(), int64(3)).Return([]string{"hi", "there"}, nil)

	rec := post(t, router, RouteMessageGet, "3")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeReply(t, rec)
	assert.Equal(t, "2 message(s) in room 3", env.Message)
	assert.JSONEq(t, `["hi","there"]`, string(env.Data))
}

func TestGetMessages_ObjectBodyIsInvalid(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := post(t, router, RouteMessageGet, `{"room_id":3}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidJSON, decodeReply(t, rec).Message)
}

func TestGetMessages_UnknownRoom(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.messages.EXPECT().GetMessages(gomock.Any(), int64(9)).Return(nil, service.ErrRoomNotFound)

	rec := post(t, router, RouteMessageGet, "9")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeReply(t, rec)
	assert.Equal(t, app.MsgRoomNotFound, env.Message)
	assert.Empty(t, env.Data)
}

func TestSendMessage(t *testing.T) {
	router, mocks := newTestRouter(t)

	msg := models.Message{Text: "hello", RoomID: 3}
	mocks.messages.EXPECT().SendMessage(gomock.Any(), msg).Return(nil)

	rec := post(t, router, RouteMessageSend, msg)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeReply(t, rec)
	assert.Equal(t, app.MsgMessageSent, env.Message)
	assert.JSONEq(t, "true", string(env.Data))
}
