// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the chat server writes into the
// "message" member of its reply envelopes.
//
// Keeping them in one place ensures consistent wording throughout the API.
// The *Fmt constants are fmt format strings.
package app

// Failure messages.
const (
	// MsgInvalidJSON is returned when the request body is not a single
	// JSON value of the expected shape.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoSuchEndpoint is returned for unknown paths and methods.
	MsgNoSuchEndpoint = "no such endpoint"

	MsgWrongCredentials = "wrong name or password"
	MsgUserNotFound     = "user not found"
	MsgRoomNotFound     = "room not found"
	MsgRoomNameTaken    = "room name is already taken"
	MsgRoomNameMismatch = "room name does not match room id"
)

// Success messages.
const (
	// MsgUserCreatedFmt carries the assigned id: user/add replies with
	// data true only.
	MsgUserCreatedFmt  = "user '%s' created with id %d"
	MsgUsersFoundFmt   = "found %d user(s)"
	MsgUsersDeletedFmt = "deleted %d user(s)"

	// MsgRoomCreatedFmt carries the assigned room id.
	MsgRoomCreatedFmt = "room '%s' created with id %d"
	MsgRoomEnteredFmt = "user %d entered room '%s'"

	MsgMessagesFmt = "%d message(s) in room %d"
	MsgMessageSent = "message sent"
)
