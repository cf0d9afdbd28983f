// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-room-chat/internal/adapter"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/models"
)

// clientAccountService forwards account commands to the server. It keeps
// no state between calls.
type clientAccountService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAccountService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{adapter: serverAdapter, logger: logger}
}

func (s *clientAccountService) CreateUser(ctx context.Context, name, password string) (models.Envelope[bool], error) {
	user := models.User{ID: models.PlaceholderID, Name: name, Password: password}

	reply, err := s.adapter.AddUser(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAccountService.CreateUser").Str("name", name).Msg("user/add failed")
		return reply, err
	}

	return reply, nil
}

func (s *clientAccountService) SearchUser(ctx context.Context, id int64, name string) (models.Envelope[[]models.User], error) {
	reply, err := s.adapter.SearchUser(ctx, models.UserSearch{ID: id, Name: name})
	if err != nil {
		s.logger.Err(err).Str("func", "clientAccountService.SearchUser").Int64("id", id).Msg("user/search failed")
		return reply, err
	}

	return reply, nil
}

func (s *clientAccountService) DeleteUser(ctx context.Context, id int64, name, password string) (models.Envelope[int64], error) {
	user := models.User{ID: id, Name: name, Password: password}

	reply, err := s.adapter.DeleteUser(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAccountService.DeleteUser").Int64("id", id).Msg("user/delete failed")
		return reply, err
	}

	return reply, nil
}
