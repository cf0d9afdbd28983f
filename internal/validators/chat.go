package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-room-chat/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the id of a user record.
	FieldID = "id"

	// FieldIDPlaceholder enforces that a user id is [models.PlaceholderID]
	// (account creation).
	FieldIDPlaceholder = "id placeholder"

	// FieldName targets the user name.
	FieldName = "name"

	// FieldPassword targets the user or room password.
	FieldPassword = "password"

	// FieldRoomID targets the room id of a room request or message.
	FieldRoomID = "room_id"

	// FieldRoomName targets the room name of a room request.
	FieldRoomName = "room_name"

	// FieldUserID targets the user id of a room request.
	FieldUserID = "user_id"

	// FieldText targets the text of a chat message.
	FieldText = "text"
)

// ChatValidator implements [Validator] for the chat server requests:
// models.User, models.UserSearch, models.RoomSession and models.Message.
// Both value and pointer forms are accepted.
type ChatValidator struct{}

// NewChatValidator constructs a new ChatValidator.
func NewChatValidator() Validator {
	return &ChatValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty a
// default set is checked: name and password for users, every field for
// room requests and messages.
func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.UserSearch:
		return v.validateUserSearch(value)
	case *models.UserSearch:
		return v.validateUserSearch(*value)
	case models.RoomSession:
		return v.validateRoom(value, fields...)
	case *models.RoomSession:
		return v.validateRoom(*value, fields...)
	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChatValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID <= 0 {
				return ErrInvalidUserID
			}
		case FieldIDPlaceholder:
			if user.ID != models.PlaceholderID {
				return ErrNotPlaceholder
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserSearch only rejects negative ids: zero values mean "no filter".
func (v *ChatValidator) validateUserSearch(filter models.UserSearch) error {
	if filter.ID < 0 {
		return ErrNegativeFilter
	}
	return nil
}

func (v *ChatValidator) validateRoom(room models.RoomSession, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomID, FieldRoomName, FieldPassword, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomID:
			if room.RoomID <= 0 {
				return ErrInvalidRoomID
			}
		case FieldRoomName:
			if strings.TrimSpace(room.RoomName) == "" {
				return ErrEmptyRoomName
			}
		case FieldPassword:
			if room.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUserID:
			if room.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ChatValidator) validateMessage(msg models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRoomID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldRoomID:
			if msg.RoomID <= 0 {
				return ErrInvalidRoomID
			}
		case FieldText:
			if strings.TrimSpace(msg.Text) == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
