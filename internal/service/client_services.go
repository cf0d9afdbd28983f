package service

import (
	"time"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/logger"
)

type ClientServices struct {
	AccountService ClientAccountService
	RoomService    ClientRoomService
	ChatService    ClientChatService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, pollInterval time.Duration, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AccountService: NewClientAccountService(serverAdapter, logger),
		RoomService:    NewClientRoomService(serverAdapter, logger),
		ChatService:    NewClientChatService(serverAdapter, pollInterval, logger),
	}
}
