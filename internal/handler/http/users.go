package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-room-chat/internal/app"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	created, err := h.services.UserService.AddUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(fmt.Sprintf(app.MsgUserCreatedFmt, created.Name, created.ID), true), http.StatusOK)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	var filter models.UserSearch
	if !decodeBody(w, r, &filter) {
		return
	}

	logger.FromRequest(r).Debug().Int64("id", filter.ID).Str("name", filter.Name).Msg("user search")

	users, err := h.services.UserService.SearchUsers(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(fmt.Sprintf(app.MsgUsersFoundFmt, len(users)), users), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeEnvelope(w, r, models.Success(fmt.Sprintf(app.MsgUsersDeletedFmt, deleted), deleted), http.StatusOK)
}
