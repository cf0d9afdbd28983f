package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-room-chat/internal/app"
	"github.com/MKhiriev/go-room-chat/models"
)

// getMessages expects the room id as a bare JSON number.
func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	var roomID int64
	if !decodeBody(w, r, &roomID) {
		return
	}

	texts, err := h.services.MessageService.GetMessages(r.Context(), roomID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(fmt.Sprintf(app.MsgMessagesFmt, len(texts), roomID), texts), http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if !decodeBody(w, r, &msg) {
		return
	}

	if err := h.services.MessageService.SendMessage(r.Context(), msg); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(app.MsgMessageSent, true), http.StatusOK)
}
