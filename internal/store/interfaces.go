package store

import (
	"context"

	"github.com/MKhiriev/go-room-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists chat accounts. The Password field of the users
// it stores and returns holds the password hash.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUsers(ctx context.Context, filter models.UserSearch) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// RoomRepository persists chat rooms.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room models.Room) (models.Room, error)
	GetRoomByID(ctx context.Context, id int64) (models.Room, error)
}

// MessageRepository persists the history of every room.
type MessageRepository interface {
	AppendMessage(ctx context.Context, msg models.Message) error
	ListMessages(ctx context.Context, roomID int64) ([]string, error)
}
