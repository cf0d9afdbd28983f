// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned by [RoomState.Next] when an event is not
// accepted in the current state.
var ErrInvalidTransition = errors.New("invalid room state transition")

// RoomSession is the room request exchanged with room/create and room/enter,
// and the bound session state owned by the chat loop afterwards.
//
// A session built by [NewDraftRoom] has both ids set to [PlaceholderID] and
// is only good for room creation. It becomes bound once room/enter accepted
// a fully specified request.
type RoomSession struct {
	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`
	Password string `json:"password"`
	UserID   int64  `json:"user_id"`
}

// NewDraftRoom returns the room/create request for a new room.
func NewDraftRoom(name, password string) RoomSession {
	return RoomSession{
		RoomID:   PlaceholderID,
		RoomName: name,
		Password: password,
		UserID:   PlaceholderID,
	}
}

// IsDraft reports whether both ids still hold the placeholder.
func (r RoomSession) IsDraft() bool {
	return r.RoomID == PlaceholderID && r.UserID == PlaceholderID
}

// RoomState is a state of the room negotiation.
//
// Creation and entry are two independent paths starting from RoomIdle:
//
//	Idle -> Creating -> Created | Failed
//	Idle -> Entering -> Bound   | Rejected
type RoomState int

const (
	RoomIdle RoomState = iota
	RoomCreating
	RoomCreated
	RoomFailed
	RoomEntering
	RoomBound
	RoomRejected
)

var roomStateNames = map[RoomState]string{
	RoomIdle:     "idle",
	RoomCreating: "creating",
	RoomCreated:  "created",
	RoomFailed:   "failed",
	RoomEntering: "entering",
	RoomBound:    "bound",
	RoomRejected: "rejected",
}

func (s RoomState) String() string {
	if name, ok := roomStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("RoomState(%d)", int(s))
}

// Terminal reports whether no further event is accepted in s.
func (s RoomState) Terminal() bool {
	switch s {
	case RoomCreated, RoomFailed, RoomBound, RoomRejected:
		return true
	default:
		return false
	}
}

// RoomEvent drives [RoomState] transitions.
type RoomEvent int

const (
	// RoomEventCreate submits a draft to room/create.
	RoomEventCreate RoomEvent = iota
	// RoomEventEnter submits a full request to room/enter.
	RoomEventEnter
	// RoomEventAccepted is a reply whose data is present and true.
	RoomEventAccepted
	// RoomEventDenied is any other reply, including transport failures.
	RoomEventDenied
)

// Next returns the state reached from s on event e.
func (s RoomState) Next(e RoomEvent) (RoomState, error) {
	switch {
	case s == RoomIdle && e == RoomEventCreate:
		return RoomCreating, nil
	case s == RoomIdle && e == RoomEventEnter:
		return RoomEntering, nil
	case s == RoomCreating && e == RoomEventAccepted:
		return RoomCreated, nil
	case s == RoomCreating && e == RoomEventDenied:
		return RoomFailed, nil
	case s == RoomEntering && e == RoomEventAccepted:
		return RoomBound, nil
	case s == RoomEntering && e == RoomEventDenied:
		return RoomRejected, nil
	}
	return s, fmt.Errorf("%w: %s on event %d", ErrInvalidTransition, s, e)
}

// ResolveReply maps a room/create or room/enter reply to its event.
func ResolveReply(reply Envelope[bool]) RoomEvent {
	if Truthy(reply) {
		return RoomEventAccepted
	}
	return RoomEventDenied
}

// RoomOutcome is the terminal result of one room negotiation.
type RoomOutcome struct {
	State   RoomState
	Session RoomSession
	// Message is the server status line of the last reply, if any.
	Message string
}

// Bound reports whether the outcome may be handed to the chat loop.
func (o RoomOutcome) Bound() bool {
	return o.State == RoomBound && !o.Session.IsDraft()
}

// Room is a chat room as persisted by the server. The password hash never
// leaves the server.
type Room struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
