// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-room-chat/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRoom() models.RoomSession {
	return models.RoomSession{RoomID: 1, RoomName: "lobby", Password: "pw", UserID: 2}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("user value and pointer", func(t *testing.T) {
		u := models.User{Name: "alice", Password: "pw"}
		require.NoError(t, v.Validate(ctx, u))
		require.NoError(t, v.Validate(ctx, &u))
	})

	t.Run("room value and pointer", func(t *testing.T) {
		r := validRoom()
		require.NoError(t, v.Validate(ctx, r))
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("message value and pointer", func(t *testing.T) {
		m := models.Message{RoomID: 1, Text: "hi"}
		require.NoError(t, v.Validate(ctx, m))
		require.NoError(t, v.Validate(ctx, &m))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_User
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		user   models.User
		fields []string
		want   error
	}{
		{"blank name", models.User{Name: "  ", Password: "pw"}, nil, ErrEmptyName},
		{"empty password", models.User{Name: "alice"}, nil, ErrEmptyPassword},
		{"id required", models.User{Name: "alice", Password: "pw"}, []string{FieldID}, ErrInvalidUserID},
		{"placeholder ok", models.User{Name: "alice", Password: "pw"}, []string{FieldIDPlaceholder, FieldName}, nil},
		{"placeholder violated", models.User{ID: 4, Name: "alice", Password: "pw"}, []string{FieldIDPlaceholder}, ErrNotPlaceholder},
		{"unknown field", models.User{}, []string{"nope"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_UserSearch(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	// нулевой фильтр означает "без фильтра"
	assert.NoError(t, v.Validate(ctx, models.UserSearch{}))
	assert.NoError(t, v.Validate(ctx, &models.UserSearch{ID: 3, Name: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.UserSearch{ID: -1}), ErrNegativeFilter)
}

// ---------------------------------------------------------------------------
// TestValidate_Room
// ---------------------------------------------------------------------------

func TestValidate_Room(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	t.Run("draft passes name and password scope", func(t *testing.T) {
		draft := models.NewDraftRoom("lobby", "pw")
		assert.NoError(t, v.Validate(ctx, draft, FieldRoomName, FieldPassword))
	})

	t.Run("draft fails full validation", func(t *testing.T) {
		draft := models.NewDraftRoom("lobby", "pw")
		assert.ErrorIs(t, v.Validate(ctx, draft), ErrInvalidRoomID)
	})

	t.Run("missing user id", func(t *testing.T) {
		r := validRoom()
		r.UserID = 0
		assert.ErrorIs(t, v.Validate(ctx, r), ErrInvalidUserID)
	})

	t.Run("blank room name", func(t *testing.T) {
		r := validRoom()
		r.RoomName = ""
		assert.ErrorIs(t, v.Validate(ctx, r), ErrEmptyRoomName)
	})

	t.Run("empty password", func(t *testing.T) {
		r := validRoom()
		r.Password = ""
		assert.ErrorIs(t, v.Validate(ctx, r), ErrEmptyPassword)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Message
// ---------------------------------------------------------------------------

func TestValidate_Message(t *testing.T) {
	v := NewChatValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Message{RoomID: 1, Text: "   "}), ErrEmptyText)
	assert.ErrorIs(t, v.Validate(ctx, models.Message{Text: "hi"}), ErrInvalidRoomID)
	assert.NoError(t, v.Validate(ctx, models.Message{RoomID: 1}, FieldRoomID))
	assert.ErrorIs(t, v.Validate(ctx, models.Message{RoomID: 1}, FieldName), ErrUnknownField)
}
