package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidRoomID  = errors.New("invalid room ID")
	ErrEmptyName      = errors.New("name is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyRoomName  = errors.New("room name is required")
	ErrEmptyText      = errors.New("message text is required")
	ErrNotPlaceholder = errors.New("id must not be set on creation")
	ErrNegativeFilter = errors.New("search id cannot be negative")
)
