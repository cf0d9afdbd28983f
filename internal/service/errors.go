package service

import "errors"

// Rejections of the chat server. Handlers answer them with an envelope
// without data instead of an error status.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong name or password")

	ErrUserNotFound     = errors.New("user not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNameTaken    = errors.New("room name is already taken")
	ErrRoomNameMismatch = errors.New("room name does not match room id")
)

// Client side errors.
var (
	// ErrRejected is returned by room flows when the server answered with
	// an envelope without data (or false).
	ErrRejected = errors.New("request rejected by server")

	// ErrSessionNotBound is returned when a room outcome that is not bound
	// is handed to the chat loop.
	ErrSessionNotBound = errors.New("room session is not bound")
)
