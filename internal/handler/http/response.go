// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-room-chat/internal/app"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/utils"
	"github.com/MKhiriev/go-room-chat/models"
)

// writeEnvelope writes env as the JSON reply with status.
func writeEnvelope[T any](w http.ResponseWriter, r *http.Request, env models.Envelope[T], status int) {
	if _, err := utils.WriteJSON(w, env, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing reply failed")
	}
}

// writeFailure writes an envelope without data.
func writeFailure(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeEnvelope(w, r, models.Failure[struct{}](message), status)
}

// decodeBody decodes the request body into v. On failure it answers 400 and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeJSON(r.Body, v); err != nil {
		logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
		writeFailure(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError answers a service error: rejections with 200 and a
// failure envelope, anything else with 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if message, ok := rejectionMessage(err); ok {
		log.Warn().Err(err).Msg("request rejected")
		writeFailure(w, r, message, http.StatusOK)
		return
	}

	log.Err(err).Msg("unexpected error occurred")
	writeFailure(w, r, app.MsgInternalServerError, http.StatusInternalServerError)
}

func noSuchEndpoint(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, app.MsgNoSuchEndpoint, http.StatusNotFound)
}
