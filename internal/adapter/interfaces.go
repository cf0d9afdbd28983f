// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transport layer between the chat client and the
// chat server.
//
// [ServerAdapter] exposes one method per server endpoint. Every call is a
// blocking JSON POST whose reply is decoded into a [models.Envelope].
// Transport failures (connection errors, non-2xx statuses, undecodable
// bodies) are returned as errors wrapping [ErrTransport], so callers can
// tell them apart from application rejections, which arrive as envelopes
// without data.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-room-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the chat server.
// Implementations are safe for concurrent use.
type ServerAdapter interface {
	// AddUser registers user via POST user/add. The data of the reply is
	// true when the account was created.
	AddUser(ctx context.Context, user models.User) (models.Envelope[bool], error)

	// SearchUser looks accounts up via POST user/search.
	SearchUser(ctx context.Context, filter models.UserSearch) (models.Envelope[[]models.User], error)

	// DeleteUser removes an account via POST user/delete. The data of the
	// reply is the number of deleted records.
	DeleteUser(ctx context.Context, user models.User) (models.Envelope[int64], error)

	// CreateRoom submits a draft room via POST room/create.
	CreateRoom(ctx context.Context, room models.RoomSession) (models.Envelope[bool], error)

	// EnterRoom submits a full room request via POST room/enter. The data
	// of the reply is true when the user may chat in the room.
	EnterRoom(ctx context.Context, room models.RoomSession) (models.Envelope[bool], error)

	// GetMessages fetches the history of a room via POST message/get.
	GetMessages(ctx context.Context, roomID int64) (models.Envelope[[]string], error)

	// SendMessage posts a chat line via POST message/send.
	SendMessage(ctx context.Context, msg models.Message) (models.Envelope[bool], error)
}
