package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-room-chat/internal/app"
	"github.com/MKhiriev/go-room-chat/models"
)

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var request models.RoomSession
	if !decodeBody(w, r, &request) {
		return
	}

	room, err := h.services.RoomService.CreateRoom(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(fmt.Sprintf(app.MsgRoomCreatedFmt, room.Name, room.ID), true), http.StatusOK)
}

// enterRoom replies with data true only when the user may chat in the room.
func (h *Handler) enterRoom(w http.ResponseWriter, r *http.Request) {
	var request models.RoomSession
	if !decodeBody(w, r, &request) {
		return
	}

	if err := h.services.RoomService.EnterRoom(r.Context(), request); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(fmt.Sprintf(app.MsgRoomEnteredFmt, request.UserID, request.RoomName), true), http.StatusOK)
}
