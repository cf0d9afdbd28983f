package service

import (
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/store"
	"github.com/MKhiriev/go-room-chat/internal/validators"
)

type Services struct {
	UserService    UserService
	RoomService    RoomService
	MessageService MessageService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	validator := validators.NewChatValidator()

	return &Services{
		UserService:    NewUserService(storages.UserRepository, validator, logger),
		RoomService:    NewRoomService(storages.RoomRepository, storages.UserRepository, validator, logger),
		MessageService: NewMessageService(storages.MessageRepository, storages.RoomRepository, validator, logger),
	}
}
