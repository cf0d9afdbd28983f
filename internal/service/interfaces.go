package service

import (
	"context"

	"github.com/MKhiriev/go-room-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages the accounts of the chat server.
type UserService interface {
	// AddUser stores a new account. The returned user carries the assigned
	// id and no password.
	AddUser(ctx context.Context, user models.User) (models.User, error)

	// SearchUsers returns the accounts matching filter. A zero id or an
	// empty name does not restrict the result.
	SearchUsers(ctx context.Context, filter models.UserSearch) ([]models.User, error)

	// DeleteUser removes the account identified by user.ID after checking
	// its name and password. It returns the number of deleted accounts,
	// which is 0 for an unknown id.
	DeleteUser(ctx context.Context, user models.User) (int64, error)
}

// RoomService manages chat rooms and room admission.
type RoomService interface {
	CreateRoom(ctx context.Context, room models.RoomSession) (models.Room, error)

	// EnterRoom returns nil when room.UserID may chat in room.RoomID.
	EnterRoom(ctx context.Context, room models.RoomSession) error
}

// MessageService stores and lists room histories.
type MessageService interface {
	GetMessages(ctx context.Context, roomID int64) ([]string, error)
	SendMessage(ctx context.Context, msg models.Message) error
}
