package service

import (
	"context"

	"github.com/MKhiriev/go-room-chat/models"
)

// LeaveCommand ends the chat loop when typed as a whole line.
const LeaveCommand = "/leave"

// ClientAccountService is the account manager of the chat client. Replies
// are returned as received: a rejection is an envelope without data, a
// transport failure is an error.
type ClientAccountService interface {
	// CreateUser registers a new account. The id sent is always
	// models.PlaceholderID.
	CreateUser(ctx context.Context, name, password string) (models.Envelope[bool], error)

	// SearchUser passes both filters to the server unvalidated.
	SearchUser(ctx context.Context, id int64, name string) (models.Envelope[[]models.User], error)

	// DeleteUser removes an account. Data 0 means no record was deleted.
	DeleteUser(ctx context.Context, id int64, name, password string) (models.Envelope[int64], error)
}

// ClientRoomService drives the room negotiation state machine
// (see models.RoomState).
type ClientRoomService interface {
	// CreateRoom submits a draft room. The outcome is RoomCreated or
	// RoomFailed and never bound. A rejection is reported as ErrRejected.
	CreateRoom(ctx context.Context, name, password string) (models.RoomOutcome, error)

	// EnterRoom submits a fully specified request. The outcome is RoomBound
	// iff the reply data is present and true, otherwise RoomRejected.
	EnterRoom(ctx context.Context, room models.RoomSession) (models.RoomOutcome, error)
}

// MessageSink receives the output of a chat room. Implementations must be
// safe for calls from the inbound poller and the outbound loop.
type MessageSink interface {
	// ShowBatch is called once per poll cycle, including failed ones.
	ShowBatch(batch models.MessageBatch)

	// SendFailed reports a line that could not be delivered.
	SendFailed(text string, err error)
}

// LineSource yields operator input lines. ReadLine returns io.EOF when the
// input is exhausted.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// ChatRoom is a joined room: a bound session plus its running inbound
// poller.
type ChatRoom interface {
	Session() models.RoomSession

	// Send posts text to the room. The reply is not inspected.
	Send(ctx context.Context, text string) error

	// Leave stops the poller and waits for it. Safe to call more than once.
	Leave()

	// Done is closed once the poller has exited.
	Done() <-chan struct{}
}

// ClientChatService is the chat loop of the client.
type ClientChatService interface {
	// Join starts polling the room of a bound outcome, delivering every
	// batch to sink. Returns ErrSessionNotBound for any other outcome.
	Join(ctx context.Context, outcome models.RoomOutcome, sink MessageSink) (ChatRoom, error)

	// Run joins the room and sends each non-empty line read from lines
	// until LeaveCommand, io.EOF or ctx cancellation. The room is always
	// left before Run returns.
	Run(ctx context.Context, outcome models.RoomOutcome, lines LineSource, sink MessageSink) error
}
