package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-room-chat/internal/config"
	"github.com/MKhiriev/go-room-chat/internal/logger"
	"github.com/MKhiriev/go-room-chat/internal/utils"
	"github.com/MKhiriev/go-room-chat/models"
)

// Endpoint paths, relative to the configured base URL.
const (
	PathUserAdd     = "user/add"
	PathUserSearch  = "user/search"
	PathUserDelete  = "user/delete"
	PathRoomCreate  = "room/create"
	PathRoomEnter   = "room/enter"
	PathMessageGet  = "message/get"
	PathMessageSend = "message/send"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and configures the
// underlying client with the request timeout and trace id propagation.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithTracing(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) AddUser(ctx context.Context, user models.User) (models.Envelope[bool], error) {
	return call[bool](ctx, h, PathUserAdd, user)
}

func (h *httpServerAdapter) SearchUser(ctx context.Context, filter models.UserSearch) (models.Envelope[[]models.User], error) {
	return call[[]models.User](ctx, h, PathUserSearch, filter)
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, user models.User) (models.Envelope[int64], error) {
	return call[int64](ctx, h, PathUserDelete, user)
}

func (h *httpServerAdapter) CreateRoom(ctx context.Context, room models.RoomSession) (models.Envelope[bool], error) {
	return call[bool](ctx, h, PathRoomCreate, room)
}

func (h *httpServerAdapter) EnterRoom(ctx context.Context, room models.RoomSession) (models.Envelope[bool], error) {
	return call[bool](ctx, h, PathRoomEnter, room)
}

// GetMessages sends the room id as a bare JSON number.
func (h *httpServerAdapter) GetMessages(ctx context.Context, roomID int64) (models.Envelope[[]string], error) {
	return call[[]string](ctx, h, PathMessageGet, roomID)
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, msg models.Message) (models.Envelope[bool], error) {
	return call[bool](ctx, h, PathMessageSend, msg)
}

// call POSTs payload to path and decodes the reply envelope.
func call[T any](ctx context.Context, h *httpServerAdapter, path string, payload any) (models.Envelope[T], error) {
	var envelope models.Envelope[T]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return envelope, fmt.Errorf("%w: %s request: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("server replied with error status")
		return envelope, err
	}

	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		h.logger.Err(err).Str("path", path).Msg("undecodable reply")
		return envelope, fmt.Errorf("%w: %w: %s: %w", ErrTransport, ErrMalformedResponse, path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Bool("data", envelope.OK()).
		Str("reply", envelope.Message).
		Msg("server replied")

	return envelope, nil
}
