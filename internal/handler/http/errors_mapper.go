package http

import (
	"errors"

	"github.com/MKhiriev/go-room-chat/internal/app"
	"github.com/MKhiriev/go-room-chat/internal/service"
)

var rejectionMessages = map[error]string{
	service.ErrWrongPassword:    app.MsgWrongCredentials,
	service.ErrUserNotFound:     app.MsgUserNotFound,
	service.ErrRoomNotFound:     app.MsgRoomNotFound,
	service.ErrRoomNameTaken:    app.MsgRoomNameTaken,
	service.ErrRoomNameMismatch: app.MsgRoomNameMismatch,
}

// rejectionMessage returns the envelope message for a service rejection.
// Validation failures keep their full text so the operator sees which
// field was wrong.
func rejectionMessage(err error) (string, bool) {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error(), true
	}

	for target, message := range rejectionMessages {
		if errors.Is(err, target) {
			return message, true
		}
	}

	return "", false
}
